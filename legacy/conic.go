/*
Copyright © 2019 the GCTP authors.
This file is part of GCTP.

GCTP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GCTP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GCTP.  If not, see <http://www.gnu.org/licenses/>.
*/

package legacy

import (
	"errors"
	"fmt"
	"math"

	"github.com/spatialmodel/gctp/numeric"
	"github.com/spatialmodel/gctp/report"
)

var errOppositeParallels = errors.New("equal latitudes for standard parallels on opposite sides of equator")

// albersConic is the Albers Conical Equal Area projection.
type albersConic struct {
	common
	lat1, lat2, lon0, lat0 float64
	es, e3                 float64
	ns0, c, rh             float64
}

func newAlbers(c common, lat1, lat2, lon0, lat0 float64) (*albersConic, error) {
	if math.Abs(lat1+lat2) < numeric.Epsilon {
		return nil, fmt.Errorf("legacy: albers: %w", errOppositeParallels)
	}
	a := &albersConic{common: c, lat1: lat1, lat2: lat2, lon0: lon0, lat0: lat0}
	a.es, a.e3 = numeric.Eccentricity(c.major, c.minor)

	sinpo, cospo := math.Sincos(lat1)
	con := sinpo
	ms1 := numeric.SmallRadius(a.e3, sinpo, cospo)
	qs1 := numeric.Qsfnz(a.e3, sinpo)
	sinpo, cospo = math.Sincos(lat2)
	ms2 := numeric.SmallRadius(a.e3, sinpo, cospo)
	qs2 := numeric.Qsfnz(a.e3, sinpo)
	qs0 := numeric.Qsfnz(a.e3, math.Sin(lat0))

	if math.Abs(lat1-lat2) > numeric.Epsilon {
		a.ns0 = (ms1*ms1 - ms2*ms2) / (qs2 - qs1)
	} else {
		a.ns0 = con
	}
	a.c = ms1*ms1 + a.ns0*qs1
	a.rh = c.major * math.Sqrt(a.c-a.ns0*qs0) / a.ns0
	return a, nil
}

func (a *albersConic) forward(lon, lat float64) (x, y float64, err error) {
	qs := numeric.Qsfnz(a.e3, math.Sin(lat))
	rh1 := a.major * math.Sqrt(a.c-a.ns0*qs) / a.ns0
	theta := a.ns0 * numeric.AdjustLon(lon-a.lon0)
	x = rh1*math.Sin(theta) + a.falseEasting
	y = a.rh - rh1*math.Cos(theta) + a.falseNorthing
	return x, y, nil
}

func (a *albersConic) inverse(x, y float64) (lon, lat float64, err error) {
	x -= a.falseEasting
	y = a.rh - y + a.falseNorthing
	rh1, con := math.Hypot(x, y), 1.0
	if a.ns0 < 0 {
		rh1, con = -rh1, -1.0
	}
	var theta float64
	if rh1 != 0 {
		theta = math.Atan2(con*x, con*y)
	}
	con = rh1 * a.ns0 / a.major
	qs := (a.c - con*con) / a.ns0
	if a.e3 >= 1e-10 {
		con = 1 - .5*(1.0-a.es)*math.Log((1.0-a.e3)/(1.0+a.e3))/a.e3
		if math.Abs(math.Abs(con)-math.Abs(qs)) > .0000000001 {
			lat, err = numeric.Phi1z(a.e3, qs)
		} else if qs >= 0 {
			lat = .5 * math.Pi
		} else {
			lat = -.5 * math.Pi
		}
	} else {
		lat, err = numeric.Phi1z(a.e3, qs)
	}
	if err != nil {
		return math.NaN(), math.NaN(), fmt.Errorf("legacy: albers: %w", err)
	}
	return numeric.AdjustLon(theta/a.ns0 + a.lon0), lat, nil
}

func (a *albersConic) describe(p *report.Printer) {
	p.Title("ALBERS CONICAL EQUAL-AREA")
	p.Radius2(a.major, a.minor)
	p.StanParl(a.lat1, a.lat2)
	p.CenLonMer(a.lon0)
	p.Origin(a.lat0)
	p.OffsetP(a.falseEasting, a.falseNorthing)
}

// equidistantConic is the Equidistant Conic projection with one
// standard parallel, or two when twoParallels is set.
type equidistantConic struct {
	common
	lat1, lat2, lon0, lat0 float64
	twoParallels           bool
	e0, e1, e2, e3         float64
	ns, g, rh              float64
}

func newEquidistantConic(c common, lat1, lat2, lon0, lat0 float64, twoParallels bool) (*equidistantConic, error) {
	q := &equidistantConic{common: c, lat1: lat1, lat2: lat2, lon0: lon0, lat0: lat0, twoParallels: twoParallels}
	es, e := numeric.Eccentricity(c.major, c.minor)
	q.e0 = numeric.E0(es)
	q.e1 = numeric.E1(es)
	q.e2 = numeric.E2(es)
	q.e3 = numeric.E3(es)

	sinphi, cosphi := math.Sincos(lat1)
	ms1 := numeric.SmallRadius(e, sinphi, cosphi)
	ml1 := numeric.Mlfn(q.e0, q.e1, q.e2, q.e3, lat1)
	q.ns = sinphi
	if twoParallels {
		if math.Abs(lat1+lat2) < numeric.Epsilon {
			return nil, fmt.Errorf("legacy: equidistant conic: %w", errOppositeParallels)
		}
		sinphi, cosphi = math.Sincos(lat2)
		ms2 := numeric.SmallRadius(e, sinphi, cosphi)
		ml2 := numeric.Mlfn(q.e0, q.e1, q.e2, q.e3, lat2)
		if math.Abs(lat1-lat2) >= numeric.Epsilon {
			q.ns = (ms1 - ms2) / (ml2 - ml1)
		} else {
			q.ns = sinphi
		}
	}
	q.g = ml1 + ms1/q.ns
	ml0 := numeric.Mlfn(q.e0, q.e1, q.e2, q.e3, lat0)
	q.rh = c.major * (q.g - ml0)
	return q, nil
}

func (q *equidistantConic) forward(lon, lat float64) (x, y float64, err error) {
	ml := numeric.Mlfn(q.e0, q.e1, q.e2, q.e3, lat)
	rh1 := q.major * (q.g - ml)
	theta := q.ns * numeric.AdjustLon(lon-q.lon0)
	x = q.falseEasting + rh1*math.Sin(theta)
	y = q.falseNorthing + q.rh - rh1*math.Cos(theta)
	return x, y, nil
}

func (q *equidistantConic) inverse(x, y float64) (lon, lat float64, err error) {
	x -= q.falseEasting
	y = q.rh - y + q.falseNorthing
	rh1, con := math.Hypot(x, y), 1.0
	if q.ns < 0 {
		rh1, con = -rh1, -1.0
	}
	var theta float64
	if rh1 != 0 {
		theta = math.Atan2(con*x, con*y)
	}
	ml := q.g - rh1/q.major
	if lat, err = numeric.Phi3z(ml, q.e0, q.e1, q.e2, q.e3); err != nil {
		return math.NaN(), math.NaN(), fmt.Errorf("legacy: equidistant conic: %w", err)
	}
	return numeric.AdjustLon(q.lon0 + theta/q.ns), lat, nil
}

func (q *equidistantConic) describe(p *report.Printer) {
	p.Title("EQUIDISTANT CONIC")
	p.Radius2(q.major, q.minor)
	if q.twoParallels {
		p.StanParl(q.lat1, q.lat2)
	} else {
		p.StParl1(q.lat1)
	}
	p.CenLonMer(q.lon0)
	p.Origin(q.lat0)
	p.OffsetP(q.falseEasting, q.falseNorthing)
}
