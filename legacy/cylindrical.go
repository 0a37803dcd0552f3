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
	"fmt"
	"math"

	"github.com/spatialmodel/gctp/numeric"
	"github.com/spatialmodel/gctp/report"
)

// mercator is the Mercator projection on the ellipsoid.
type mercator struct {
	common
	lon0, lat1 float64
	e, m1      float64
}

func newMercator(c common, lon0, lat1 float64) *mercator {
	m := &mercator{common: c, lon0: lon0, lat1: lat1}
	es, e := numeric.Eccentricity(c.major, c.minor)
	m.e = e
	sin, cos := math.Sincos(lat1)
	m.m1 = cos / math.Sqrt(1.0-es*sin*sin)
	return m
}

func (m *mercator) forward(lon, lat float64) (x, y float64, err error) {
	if math.Abs(math.Abs(lat)-numeric.HalfPi) <= numeric.Epsilon {
		return math.NaN(), math.NaN(), fmt.Errorf("legacy: mercator: transformation cannot be computed at the poles: %w", ErrInfinity)
	}
	ts := numeric.SmallT(m.e, lat, math.Sin(lat))
	x = m.falseEasting + m.major*m.m1*numeric.AdjustLon(lon-m.lon0)
	y = m.falseNorthing - m.major*m.m1*math.Log(ts)
	return x, y, nil
}

func (m *mercator) inverse(x, y float64) (lon, lat float64, err error) {
	x -= m.falseEasting
	y -= m.falseNorthing
	ts := math.Exp(-y / (m.major * m.m1))
	if lat, err = numeric.Phi2z(m.e, ts); err != nil {
		return math.NaN(), math.NaN(), fmt.Errorf("legacy: mercator: %w", err)
	}
	return numeric.AdjustLon(m.lon0 + x/(m.major*m.m1)), lat, nil
}

func (m *mercator) describe(p *report.Printer) {
	p.Title("MERCATOR")
	p.Radius2(m.major, m.minor)
	p.CenLonMer(m.lon0)
	p.Origin(m.lat1)
	p.OffsetP(m.falseEasting, m.falseNorthing)
}

// equirectangular is the Equirectangular projection on the sphere.
type equirectangular struct {
	common
	lon0, lat1 float64
}

func (q *equirectangular) forward(lon, lat float64) (x, y float64, err error) {
	dlon := numeric.AdjustLon(lon - q.lon0)
	x = q.falseEasting + q.radius*dlon*math.Cos(q.lat1)
	y = q.falseNorthing + q.radius*lat
	return x, y, nil
}

func (q *equirectangular) inverse(x, y float64) (lon, lat float64, err error) {
	x -= q.falseEasting
	y -= q.falseNorthing
	lat = y / q.radius
	if math.Abs(lat) > numeric.HalfPi {
		return math.NaN(), math.NaN(), fmt.Errorf("legacy: equirectangular: %w", errInputData)
	}
	return numeric.AdjustLon(q.lon0 + x/(q.radius*math.Cos(q.lat1))), lat, nil
}

func (q *equirectangular) describe(p *report.Printer) {
	p.Title("EQUIRECTANGULAR")
	p.Radius(q.radius)
	p.CenLonMer(q.lon0)
	p.Origin(q.lat1)
	p.OffsetP(q.falseEasting, q.falseNorthing)
}

// millerCylindrical is the Miller Cylindrical projection.
type millerCylindrical struct {
	common
	lon0 float64
}

func (m *millerCylindrical) forward(lon, lat float64) (x, y float64, err error) {
	dlon := numeric.AdjustLon(lon - m.lon0)
	x = m.falseEasting + m.radius*dlon
	y = m.falseNorthing + m.radius*math.Log(math.Tan(math.Pi/4.0+lat/2.5))*1.25
	return x, y, nil
}

func (m *millerCylindrical) inverse(x, y float64) (lon, lat float64, err error) {
	x -= m.falseEasting
	y -= m.falseNorthing
	lon = numeric.AdjustLon(m.lon0 + x/m.radius)
	lat = 2.5*math.Atan(math.Exp(.8*y/m.radius)) - .625*math.Pi
	return lon, lat, nil
}

func (m *millerCylindrical) describe(p *report.Printer) {
	p.Title("MILLER CYLINDRICAL")
	p.Radius(m.radius)
	p.CenLonMer(m.lon0)
	p.OffsetP(m.falseEasting, m.falseNorthing)
}
