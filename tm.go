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

// TMConfig holds the parameters of a Transverse Mercator projection.
// Angles are in radians and distances in meters.
type TMConfig struct {
	SemiMajor, SemiMinor        float64
	ScaleFactor                 float64
	CentralMeridian, OriginLat  float64
	FalseEasting, FalseNorthing float64
}

// TMConfigFromParams reads slots 2 (scale factor), 4 (central meridian),
// 5 (latitude of origin), and 6/7 (false easting and northing).
func TMConfigFromParams(p Params) (TMConfig, error) {
	c := TMConfig{
		ScaleFactor:   p.P[2],
		FalseEasting:  p.P[6],
		FalseNorthing: p.P[7],
	}
	c.SemiMajor, c.SemiMinor, _ = p.spheroid()
	var err error
	if c.CentralMeridian, err = p.angle(4, "central meridian"); err != nil {
		return c, err
	}
	if c.OriginLat, err = p.angle(5, "latitude of origin"); err != nil {
		return c, err
	}
	return c, nil
}

// UTMConfig holds the parameters of a UTM projection. Negative zones are
// in the southern hemisphere.
type UTMConfig struct {
	SemiMajor, SemiMinor float64
	Zone                 int
}

// UTMConfigFromParams reads the zone of p. When the zone is 0 it is
// derived from the longitude and latitude in slots 0 and 1. A negative
// spheroid code selects Clarke 1866.
func UTMConfigFromParams(p Params) (UTMConfig, error) {
	sph := p
	if sph.Spheroid < 0 {
		sph.Spheroid = numeric.Clarke1866
	}
	c := UTMConfig{Zone: p.Zone}
	c.SemiMajor, c.SemiMinor, _ = sph.spheroid()
	if c.Zone != 0 {
		return c, nil
	}
	lon, err := p.angle(0, "longitude")
	if err != nil {
		return c, err
	}
	lat, err := p.angle(1, "latitude")
	if err != nil {
		return c, err
	}
	c.Zone = numeric.UTMZone(lon * numeric.R2D)
	if lat < 0 {
		c.Zone = -c.Zone
	}
	return c, nil
}

// TMConfig returns the Transverse Mercator parameters of the zone.
func (c UTMConfig) TMConfig() (TMConfig, error) {
	z := c.Zone
	if z < 0 {
		z = -z
	}
	if z < 1 || z > 60 {
		return TMConfig{}, fmt.Errorf("gctp: illegal UTM zone number: %d", c.Zone)
	}
	tc := TMConfig{
		SemiMajor:       c.SemiMajor,
		SemiMinor:       c.SemiMinor,
		ScaleFactor:     0.9996,
		CentralMeridian: float64(6*z-183) * numeric.D2R,
		FalseEasting:    500000,
	}
	if c.Zone < 0 {
		tc.FalseNorthing = 10000000
	}
	return tc, nil
}

// TransverseMercator implements the Transverse Mercator and UTM
// projections.
type TransverseMercator struct {
	c    TMConfig
	zone int // Non-zero for UTM.

	es, esp        float64
	e0, e1, e2, e3 float64
	ml0            float64
	sphere         bool
}

// NewTM returns a Transverse Mercator projection.
func NewTM(c TMConfig) (*TransverseMercator, error) {
	if c.SemiMajor <= 0 {
		return nil, fmt.Errorf("gctp: transverse mercator: semi-major axis %g must be > 0", c.SemiMajor)
	}
	t := &TransverseMercator{c: c}
	t.es, _ = numeric.Eccentricity(c.SemiMajor, c.SemiMinor)
	t.e0 = numeric.E0(t.es)
	t.e1 = numeric.E1(t.es)
	t.e2 = numeric.E2(t.es)
	t.e3 = numeric.E3(t.es)
	t.ml0 = c.SemiMajor * numeric.Mlfn(t.e0, t.e1, t.e2, t.e3, c.OriginLat)
	t.esp = t.es / (1.0 - t.es)
	t.sphere = t.es < .00001
	return t, nil
}

// NewUTM returns a UTM projection.
func NewUTM(c UTMConfig) (*TransverseMercator, error) {
	tc, err := c.TMConfig()
	if err != nil {
		return nil, err
	}
	t, err := NewTM(tc)
	if err != nil {
		return nil, err
	}
	t.zone = c.Zone
	return t, nil
}

func newTMUnit(p Params) (Projection, error) {
	c, err := TMConfigFromParams(p)
	if err != nil {
		return nil, err
	}
	return NewTM(c)
}

func newUTMUnit(p Params) (Projection, error) {
	c, err := UTMConfigFromParams(p)
	if err != nil {
		return nil, err
	}
	return NewUTM(c)
}

// Zone returns the UTM zone, or 0 for a plain Transverse Mercator.
func (t *TransverseMercator) Zone() int { return t.zone }

// Forward implements Projection.
func (t *TransverseMercator) Forward(lon, lat float64) (x, y float64, err error) {
	c := &t.c
	dlon := numeric.AdjustLon(lon - c.CentralMeridian)
	sinphi, cosphi := math.Sincos(lat)

	if t.sphere {
		b := cosphi * math.Sin(dlon)
		if math.Abs(math.Abs(b)-1.0) < .0000000001 {
			return math.NaN(), math.NaN(), fmt.Errorf("gctp: transverse mercator: %w", ErrInfinity)
		}
		x = 0.5*c.SemiMajor*c.ScaleFactor*math.Log((1.0+b)/(1.0-b)) + c.FalseEasting
		con := math.Acos(cosphi * math.Cos(dlon) / math.Sqrt(1.0-b*b))
		if lat < 0 {
			con = -con
		}
		y = c.SemiMajor*c.ScaleFactor*(con-c.OriginLat) + c.FalseNorthing
		return x, y, nil
	}

	al := cosphi * dlon
	als := al * al
	cc := t.esp * cosphi * cosphi
	tq := math.Tan(lat)
	tt := tq * tq
	con := 1.0 - t.es*sinphi*sinphi
	n := c.SemiMajor / math.Sqrt(con)
	ml := c.SemiMajor * numeric.Mlfn(t.e0, t.e1, t.e2, t.e3, lat)

	x = c.ScaleFactor*n*al*(1.0+als/6.0*(1.0-tt+cc+als/20.0*
		(5.0-18.0*tt+tt*tt+72.0*cc-58.0*t.esp))) + c.FalseEasting
	y = c.ScaleFactor*(ml-t.ml0+n*tq*(als*(0.5+als/24.0*
		(5.0-tt+9.0*cc+4.0*cc*cc+als/30.0*
			(61.0-58.0*tt+tt*tt+600.0*cc-330.0*t.esp))))) + c.FalseNorthing
	return x, y, nil
}

// Inverse implements Projection.
func (t *TransverseMercator) Inverse(x, y float64) (lon, lat float64, err error) {
	c := &t.c
	x -= c.FalseEasting
	y -= c.FalseNorthing

	if t.sphere {
		f := math.Exp(x / (c.SemiMajor * c.ScaleFactor))
		g := 0.5 * (f - 1.0/f)
		temp := c.OriginLat + y/(c.SemiMajor*c.ScaleFactor)
		h := math.Cos(temp)
		con := math.Sqrt((1.0 - h*h) / (1.0 + g*g))
		lat = numeric.Asinz(con)
		if temp < 0 {
			lat = -lat
		}
		if g == 0 && h == 0 {
			return c.CentralMeridian, lat, nil
		}
		return numeric.AdjustLon(math.Atan2(g, h) + c.CentralMeridian), lat, nil
	}

	const maxIter = 6
	con := (t.ml0 + y/c.ScaleFactor) / c.SemiMajor
	phi := con
	for i := 0; ; i++ {
		dphi := (con+t.e1*math.Sin(2.0*phi)-t.e2*math.Sin(4.0*phi)+t.e3*math.Sin(6.0*phi))/t.e0 - phi
		phi += dphi
		if math.Abs(dphi) <= numeric.Epsilon {
			break
		}
		if i >= maxIter {
			return math.NaN(), math.NaN(), fmt.Errorf("gctp: transverse mercator: latitude: %w", numeric.ErrNoConvergence)
		}
	}

	if math.Abs(phi) >= numeric.HalfPi {
		return c.CentralMeridian, numeric.HalfPi * numeric.Sign(y), nil
	}
	sinphi, cosphi := math.Sincos(phi)
	tanphi := math.Tan(phi)
	cc := t.esp * cosphi * cosphi
	cs := cc * cc
	tt := tanphi * tanphi
	ts := tt * tt
	con = 1.0 - t.es*sinphi*sinphi
	n := c.SemiMajor / math.Sqrt(con)
	r := n * (1.0 - t.es) / con
	d := x / (n * c.ScaleFactor)
	ds := d * d
	lat = phi - (n*tanphi*ds/r)*(0.5-ds/24.0*(5.0+3.0*tt+10.0*cc-4.0*cs-9.0*t.esp-
		ds/30.0*(61.0+90.0*tt+298.0*cc+45.0*ts-252.0*t.esp-3.0*cs)))
	lon = numeric.AdjustLon(c.CentralMeridian + (d * (1.0 - ds/6.0*(1.0+2.0*tt+cc-
		ds/20.0*(5.0-2.0*cc+28.0*tt-3.0*cs+8.0*t.esp+24.0*ts))) / cosphi))
	return lon, lat, nil
}

// Describe implements Projection.
func (t *TransverseMercator) Describe(p *report.Printer) {
	c := &t.c
	if t.zone != 0 {
		p.Title("UNIVERSAL TRANSVERSE MERCATOR (UTM)")
		p.GenRptLong("Zone:     ", int64(t.zone))
		p.Radius2(c.SemiMajor, c.SemiMinor)
		p.GenRpt("Scale Factor at C. Meridian:     ", c.ScaleFactor)
		p.CenLonMer(c.CentralMeridian)
		return
	}
	p.Title("TRANSVERSE MERCATOR (TM)")
	p.Radius2(c.SemiMajor, c.SemiMinor)
	p.GenRpt("Scale Factor at C. Meridian:     ", c.ScaleFactor)
	p.CenLonMer(c.CentralMeridian)
	p.Origin(c.OriginLat)
	p.OffsetP(c.FalseEasting, c.FalseNorthing)
}

// Destroy implements Projection.
func (t *TransverseMercator) Destroy() {}
