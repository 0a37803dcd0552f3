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

package gctp

import (
	"fmt"
	"math"

	"github.com/spatialmodel/gctp/numeric"
	"github.com/spatialmodel/gctp/report"
)

// LCCConfig holds the parameters of a Lambert Conformal Conic
// projection. Angles are in radians and distances in meters.
type LCCConfig struct {
	SemiMajor, SemiMinor        float64
	Lat1, Lat2                  float64 // Standard parallels.
	CenterLon, OriginLat        float64
	FalseEasting, FalseNorthing float64
}

// LCCConfigFromParams reads slots 2 and 3 (standard parallels), 4
// (center longitude), 5 (latitude of origin), and 6/7.
func LCCConfigFromParams(p Params) (LCCConfig, error) {
	c := LCCConfig{FalseEasting: p.P[6], FalseNorthing: p.P[7]}
	c.SemiMajor, c.SemiMinor, _ = p.spheroid()
	var err error
	if c.Lat1, err = p.angle(2, "standard parallel 1"); err != nil {
		return c, err
	}
	if c.Lat2, err = p.angle(3, "standard parallel 2"); err != nil {
		return c, err
	}
	if c.CenterLon, err = p.angle(4, "center longitude"); err != nil {
		return c, err
	}
	if c.OriginLat, err = p.angle(5, "latitude of origin"); err != nil {
		return c, err
	}
	return c, nil
}

// LambertConformalConic implements the Lambert Conformal Conic
// projection.
type LambertConformalConic struct {
	c          LCCConfig
	e          float64
	ns, f0, rh float64
}

// NewLCC returns a Lambert Conformal Conic projection. Standard
// parallels that are equal and on opposite sides of the equator are
// rejected.
func NewLCC(c LCCConfig) (*LambertConformalConic, error) {
	if math.Abs(c.Lat1+c.Lat2) < numeric.Epsilon {
		return nil, fmt.Errorf("gctp: lambert conformal conic: equal latitudes for standard parallels on opposite sides of equator")
	}
	l := &LambertConformalConic{c: c}
	_, l.e = numeric.Eccentricity(c.SemiMajor, c.SemiMinor)

	sinpo, cospo := math.Sincos(c.Lat1)
	con := sinpo
	ms1 := numeric.SmallRadius(l.e, sinpo, cospo)
	ts1 := numeric.SmallT(l.e, c.Lat1, sinpo)
	sinpo, cospo = math.Sincos(c.Lat2)
	ms2 := numeric.SmallRadius(l.e, sinpo, cospo)
	ts2 := numeric.SmallT(l.e, c.Lat2, sinpo)
	ts0 := numeric.SmallT(l.e, c.OriginLat, math.Sin(c.OriginLat))

	if math.Abs(c.Lat1-c.Lat2) > numeric.Epsilon {
		l.ns = math.Log(ms1/ms2) / math.Log(ts1/ts2)
	} else {
		l.ns = con
	}
	l.f0 = ms1 / (l.ns * math.Pow(ts1, l.ns))
	l.rh = c.SemiMajor * l.f0 * math.Pow(ts0, l.ns)
	return l, nil
}

func newLCCUnit(p Params) (Projection, error) {
	c, err := LCCConfigFromParams(p)
	if err != nil {
		return nil, err
	}
	return NewLCC(c)
}

// ConeConstant returns the cone constant ns.
func (l *LambertConformalConic) ConeConstant() float64 { return l.ns }

// Forward implements Projection.
func (l *LambertConformalConic) Forward(lon, lat float64) (x, y float64, err error) {
	c := &l.c
	var rh1 float64
	if math.Abs(math.Abs(lat)-numeric.HalfPi) > numeric.Epsilon {
		ts := numeric.SmallT(l.e, lat, math.Sin(lat))
		rh1 = c.SemiMajor * l.f0 * math.Pow(ts, l.ns)
	} else if lat*l.ns <= 0 {
		return math.NaN(), math.NaN(), fmt.Errorf("gctp: lambert conformal conic: %w", ErrCannotProject)
	}
	theta := l.ns * numeric.AdjustLon(lon-c.CenterLon)
	x = rh1*math.Sin(theta) + c.FalseEasting
	y = l.rh - rh1*math.Cos(theta) + c.FalseNorthing
	return x, y, nil
}

// Inverse implements Projection.
func (l *LambertConformalConic) Inverse(x, y float64) (lon, lat float64, err error) {
	c := &l.c
	x -= c.FalseEasting
	y = l.rh - y + c.FalseNorthing
	var rh1, con float64
	if l.ns > 0 {
		rh1 = math.Sqrt(x*x + y*y)
		con = 1.0
	} else {
		rh1 = -math.Sqrt(x*x + y*y)
		con = -1.0
	}
	var theta float64
	if rh1 != 0 {
		theta = math.Atan2(con*x, con*y)
	}
	if rh1 != 0 || l.ns > 0 {
		ts := math.Pow(rh1/(c.SemiMajor*l.f0), 1.0/l.ns)
		lat, err = numeric.Phi2z(l.e, ts)
		if err != nil {
			return math.NaN(), math.NaN(), fmt.Errorf("gctp: lambert conformal conic: %w", err)
		}
	} else {
		lat = -numeric.HalfPi
	}
	lon = numeric.AdjustLon(theta/l.ns + c.CenterLon)
	return lon, lat, nil
}

// Describe implements Projection.
func (l *LambertConformalConic) Describe(p *report.Printer) {
	c := &l.c
	p.Title("LAMBERT CONFORMAL CONIC")
	p.Radius2(c.SemiMajor, c.SemiMinor)
	p.StanParl(c.Lat1, c.Lat2)
	p.CenLonMer(c.CenterLon)
	p.Origin(c.OriginLat)
	p.OffsetP(c.FalseEasting, c.FalseNorthing)
}

// Destroy implements Projection.
func (l *LambertConformalConic) Destroy() {}
