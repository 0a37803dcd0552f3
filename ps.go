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

// PSConfig holds the parameters of a Polar Stereographic projection.
type PSConfig struct {
	SemiMajor, SemiMinor        float64
	CenterLon                   float64 // Longitude down below the pole.
	TrueScaleLat                float64 // Latitude of true scale.
	FalseEasting, FalseNorthing float64
}

// PSConfigFromParams reads slots 4 (longitude below the pole), 5
// (latitude of true scale), and 6/7.
func PSConfigFromParams(p Params) (PSConfig, error) {
	c := PSConfig{FalseEasting: p.P[6], FalseNorthing: p.P[7]}
	c.SemiMajor, c.SemiMinor, _ = p.spheroid()
	var err error
	if c.CenterLon, err = p.angle(4, "longitude below pole"); err != nil {
		return c, err
	}
	if c.TrueScaleLat, err = p.angle(5, "latitude of true scale"); err != nil {
		return c, err
	}
	return c, nil
}

// PolarStereographic implements the Polar Stereographic projection. The
// hemisphere follows the sign of the latitude of true scale.
type PolarStereographic struct {
	c        PSConfig
	e, e4    float64
	fac      float64
	mcs, tcs float64
	ind      bool
}

// NewPS returns a Polar Stereographic projection.
func NewPS(c PSConfig) (*PolarStereographic, error) {
	if c.SemiMajor <= 0 {
		return nil, fmt.Errorf("gctp: polar stereographic: semi-major axis %g must be > 0", c.SemiMajor)
	}
	s := &PolarStereographic{c: c, fac: 1}
	_, s.e = numeric.Eccentricity(c.SemiMajor, c.SemiMinor)
	s.e4 = numeric.E4(s.e)
	if c.TrueScaleLat < 0 {
		s.fac = -1
	}
	if math.Abs(math.Abs(c.TrueScaleLat)-numeric.HalfPi) > numeric.Epsilon {
		s.ind = true
		con1 := s.fac * c.TrueScaleLat
		sinphi, cosphi := math.Sincos(con1)
		s.mcs = numeric.SmallRadius(s.e, sinphi, cosphi)
		s.tcs = numeric.SmallT(s.e, con1, sinphi)
	}
	return s, nil
}

func newPSUnit(p Params) (Projection, error) {
	c, err := PSConfigFromParams(p)
	if err != nil {
		return nil, err
	}
	return NewPS(c)
}

// Forward implements Projection.
func (s *PolarStereographic) Forward(lon, lat float64) (x, y float64, err error) {
	c := &s.c
	con1 := s.fac * numeric.AdjustLon(lon-c.CenterLon)
	con2 := s.fac * lat
	ts := numeric.SmallT(s.e, con2, math.Sin(con2))
	var rh float64
	if s.ind {
		rh = c.SemiMajor * s.mcs * ts / s.tcs
	} else {
		rh = 2.0 * c.SemiMajor * ts / s.e4
	}
	x = s.fac*rh*math.Sin(con1) + c.FalseEasting
	y = -s.fac*rh*math.Cos(con1) + c.FalseNorthing
	return x, y, nil
}

// Inverse implements Projection.
func (s *PolarStereographic) Inverse(x, y float64) (lon, lat float64, err error) {
	c := &s.c
	x = (x - c.FalseEasting) * s.fac
	y = (y - c.FalseNorthing) * s.fac
	rh := math.Hypot(x, y)
	var ts float64
	if s.ind {
		ts = rh * s.tcs / (c.SemiMajor * s.mcs)
	} else {
		ts = rh * s.e4 / (2.0 * c.SemiMajor)
	}
	lat, err = numeric.Phi2z(s.e, ts)
	if err != nil {
		return math.NaN(), math.NaN(), fmt.Errorf("gctp: polar stereographic: %w", err)
	}
	lat *= s.fac
	if rh == 0 {
		return s.fac * c.CenterLon, lat, nil
	}
	lon = numeric.AdjustLon(s.fac*math.Atan2(x, -y) + c.CenterLon)
	return lon, lat, nil
}

// Describe implements Projection.
func (s *PolarStereographic) Describe(p *report.Printer) {
	c := &s.c
	p.Title("POLAR STEREOGRAPHIC")
	p.Radius2(c.SemiMajor, c.SemiMinor)
	p.CenLon(c.CenterLon)
	p.GenRpt("Latitude of True Scale:     ", c.TrueScaleLat*numeric.R2D)
	p.OffsetP(c.FalseEasting, c.FalseNorthing)
}

// Destroy implements Projection.
func (s *PolarStereographic) Destroy() {}
