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
	"gonum.org/v1/gonum/floats"
)

// landsatRatio locates the beginning and end of a Landsat orbit on the
// transformed longitude.
const landsatRatio = 0.5201613

// SOMConfig holds the parameters of a Space Oblique Mercator projection.
// The orbit is given either directly (Inclination, AscendingLon and
// Period) or by a Landsat satellite and path number.
type SOMConfig struct {
	SemiMajor, SemiMinor        float64
	FalseEasting, FalseNorthing float64

	// Landsat selects the Satellite and Path form.
	Landsat         bool
	Satellite, Path int

	Inclination  float64 // Orbit inclination in radians.
	AscendingLon float64 // Longitude of the ascending orbit at the equator.
	Period       float64 // Satellite revolution period in minutes.

	// Start is 0 for the start of a path and 1 for its end.
	Start int
}

// SOMConfigFromParams reads the Space Oblique Mercator parameters. A
// non-zero slot 12 selects the Landsat form with slots 2 (satellite)
// and 3 (path); otherwise slots 3 (inclination), 4 (ascending
// longitude), and 8 (period) describe the orbit. Slot 10 holds the
// start/end flag and slots 6/7 the false easting and northing.
func SOMConfigFromParams(p Params) (SOMConfig, error) {
	c := SOMConfig{
		FalseEasting:  p.P[6],
		FalseNorthing: p.P[7],
		Start:         int(p.P[10]),
		Landsat:       int(p.P[12]) != 0,
	}
	c.SemiMajor, c.SemiMinor, _ = p.spheroid()
	if c.Landsat {
		c.Satellite = int(p.P[2])
		c.Path = int(p.P[3])
		return c, nil
	}
	var err error
	if c.Inclination, err = p.angle(3, "inclination angle"); err != nil {
		return c, err
	}
	if c.AscendingLon, err = p.angle(4, "longitude of ascending orbit at equator"); err != nil {
		return c, err
	}
	c.Period = p.P[8]
	return c, nil
}

// orbit returns the inclination, ascending longitude, and the period
// as a fraction of a day.
func (c SOMConfig) orbit() (incl, lon, p21 float64) {
	if !c.Landsat {
		return c.Inclination, c.AscendingLon, c.Period / 1440.0
	}
	path := float64(c.Path)
	if c.Satellite < 4 {
		return 99.092 * numeric.D2R, (128.87 - (360.0 / 251.0 * path)) * numeric.D2R, 103.2669323 / 1440.0
	}
	return 98.2 * numeric.D2R, (129.30 - (360.0 / 233.0 * path)) * numeric.D2R, 98.8841202 / 1440.0
}

// SpaceObliqueMercator implements the Space Oblique Mercator projection.
// Its x axis follows the satellite ground track, so the false northing
// is applied to x and the false easting to y.
type SpaceObliqueMercator struct {
	c                 SOMConfig
	incl, lonCenter   float64
	p21, sa, ca, es   float64
	w, q, t, u, xj    float64
	a2, a4, b, c1, c3 float64
}

// NewSOM returns a Space Oblique Mercator projection.
func NewSOM(c SOMConfig) (*SpaceObliqueMercator, error) {
	if c.SemiMajor <= 0 {
		return nil, fmt.Errorf("gctp: space oblique mercator: semi-major axis %g must be > 0", c.SemiMajor)
	}
	s := &SpaceObliqueMercator{c: c}
	s.incl, s.lonCenter, s.p21 = c.orbit()
	s.es, _ = numeric.Eccentricity(c.SemiMajor, c.SemiMinor)
	s.ca = math.Cos(s.incl)
	if math.Abs(s.ca) < 1.e-9 {
		s.ca = 1.e-9
	}
	s.sa = math.Sin(s.incl)
	e2c := s.es * s.ca * s.ca
	e2s := s.es * s.sa * s.sa
	oneEs := 1.0 - s.es
	s.w = (1.0 - e2c) / oneEs
	s.w = s.w*s.w - 1.0
	s.q = e2s / oneEs
	s.t = (e2s * (2.0 - s.es)) / (oneEs * oneEs)
	s.u = e2c / oneEs
	s.xj = oneEs * oneEs * oneEs

	// Simpson's rule over 0..90 degrees in 9 degree steps.
	sum := make([]float64, 5)
	floats.AddScaled(sum, 1, s.series(0))
	for i := 9; i <= 81; i += 18 {
		floats.AddScaled(sum, 4, s.series(float64(i)))
	}
	for i := 18; i <= 72; i += 18 {
		floats.AddScaled(sum, 2, s.series(float64(i)))
	}
	floats.AddScaled(sum, 1, s.series(90))
	s.b = sum[0] / 30.0
	s.a2 = sum[1] / 30.0
	s.a4 = sum[2] / 60.0
	s.c1 = sum[3] / 15.0
	s.c3 = sum[4] / 45.0
	return s, nil
}

// series evaluates the Fourier coefficient integrands b, a2, a4, c1,
// and c3 at dlam degrees.
func (s *SpaceObliqueMercator) series(dlam float64) []float64 {
	dlam *= 0.0174532925
	sd := math.Sin(dlam)
	sdsq := sd * sd
	qTerm := 1.0 + s.q*sdsq
	wTerm := 1.0 + s.w*sdsq
	ss := s.p21 * s.sa * math.Cos(dlam) * math.Sqrt((1.0+s.t*sdsq)/(wTerm*qTerm))
	h := math.Sqrt(qTerm/wTerm) * ((wTerm / (qTerm * qTerm)) - s.p21*s.ca)
	sq := math.Sqrt(s.xj*s.xj + ss*ss)
	fb := (h*s.xj - ss*ss) / sq
	fc := ss * (h + s.xj) / sq
	return []float64{
		fb,
		fb * math.Cos(2.0*dlam),
		fb * math.Cos(4.0*dlam),
		fc * math.Cos(dlam),
		fc * math.Cos(3.0*dlam),
	}
}

func (s *SpaceObliqueMercator) orbitS(tlon float64) float64 {
	sd := math.Sin(tlon)
	sdsq := sd * sd
	return s.p21 * s.sa * math.Cos(tlon) * math.Sqrt((1.0+s.t*sdsq)/((1.0+s.w*sdsq)*(1.0+s.q*sdsq)))
}

func newSOMUnit(p Params) (Projection, error) {
	c, err := SOMConfigFromParams(p)
	if err != nil {
		return nil, err
	}
	return NewSOM(c)
}

// Forward implements Projection.
func (s *SpaceObliqueMercator) Forward(lon, lat float64) (x, y float64, err error) {
	const (
		conv    = 1.e-7
		maxIter = 50
	)
	radlt := math.Max(-1.570796, math.Min(1.570796, lat))
	radln := lon - s.lonCenter

	tlamp := math.Pi / 2.0
	if s.c.Start == 1 {
		tlamp = 2.5 * math.Pi
	}
	if radlt < 0 {
		tlamp = 1.5 * math.Pi
	}

	var tlam, xlamt float64
	for n := 0; ; {
		sav := tlamp
		scl := 1.0
		if math.Cos(radln+s.p21*tlamp) < 0 {
			scl = -1.0
		}
		ab2 := tlamp - scl*math.Sin(tlamp)*numeric.HalfPi
		done, converged := false, false
		for l := 0; l <= maxIter; l++ {
			xlamt = radln + s.p21*sav
			c := math.Cos(xlamt)
			if math.Abs(c) < 1.e-7 {
				xlamt -= 1.e-7
			}
			xlam := ((1.0-s.es)*math.Tan(radlt)*s.sa + math.Sin(xlamt)*s.ca) / c
			tlam = math.Atan(xlam) + ab2
			if math.Abs(math.Abs(sav)-math.Abs(tlam)) < conv {
				converged = true
				rlm := math.Pi * landsatRatio
				rlm2 := rlm + 2.0*math.Pi
				n++
				if n >= 3 || (tlam > rlm && tlam < rlm2) {
					done = true
					break
				}
				if tlam < rlm {
					tlamp = 2.50 * math.Pi
					if s.c.Start == 0 {
						tlamp = numeric.HalfPi
					}
				}
				if tlam >= rlm2 {
					tlamp = numeric.HalfPi
					if s.c.Start == 1 {
						tlamp = 2.50 * math.Pi
					}
				}
				break
			}
			sav = tlam
		}
		if done {
			break
		}
		if !converged {
			return math.NaN(), math.NaN(), fmt.Errorf("gctp: space oblique mercator: forward: %w", numeric.ErrNoConvergence)
		}
	}

	dp := math.Sin(radlt)
	tphi := math.Asin(((1.0-s.es)*s.ca*dp - s.sa*math.Cos(radlt)*math.Sin(xlamt)) / math.Sqrt(1.0-s.es*dp*dp))
	tanlg := math.Log(math.Tan(math.Pi/4.0 + tphi/2.0))
	ss := s.orbitS(tlam)
	d := math.Sqrt(s.xj*s.xj + ss*ss)
	a := s.c.SemiMajor
	x = a * (s.b*tlam + s.a2*math.Sin(2.0*tlam) + s.a4*math.Sin(4.0*tlam) - tanlg*ss/d)
	y = a * (s.c1*math.Sin(tlam) + s.c3*math.Sin(3.0*tlam) + tanlg*s.xj/d)
	return x + s.c.FalseNorthing, y + s.c.FalseEasting, nil
}

// Inverse implements Projection.
func (s *SpaceObliqueMercator) Inverse(x, y float64) (lon, lat float64, err error) {
	const (
		conv    = 1.e-9
		maxIter = 50
	)
	a := s.c.SemiMajor
	y -= s.c.FalseEasting
	x -= s.c.FalseNorthing

	tlon := x / (a * s.b)
	var ss float64
	converged := false
	for i := 0; i < maxIter; i++ {
		sav := tlon
		ss = s.orbitS(tlon)
		blon := x/a + (y/a)*ss/s.xj - s.a2*math.Sin(2.0*tlon) - s.a4*math.Sin(4.0*tlon) -
			(ss/s.xj)*(s.c1*math.Sin(tlon)+s.c3*math.Sin(3.0*tlon))
		tlon = blon / s.b
		if math.Abs(tlon-sav) < conv {
			converged = true
			break
		}
	}
	if !converged {
		return math.NaN(), math.NaN(), fmt.Errorf("gctp: space oblique mercator: inverse: %w", numeric.ErrNoConvergence)
	}

	st := math.Sin(tlon)
	defac := math.Exp(math.Sqrt(1.0+ss*ss/s.xj/s.xj) * (y/a - s.c1*st - s.c3*math.Sin(3.0*tlon)))
	tlat := 2.0 * (math.Atan(defac) - math.Pi/4.0)

	dd := st * st
	if math.Abs(math.Cos(tlon)) < 1.e-7 {
		tlon -= 1.e-7
	}
	bigk := math.Sin(tlat)
	bigk2 := bigk * bigk
	xlamt := math.Atan(((1.0-bigk2/(1.0-s.es))*math.Tan(tlon)*s.ca -
		bigk*s.sa*math.Sqrt((1.0+s.q*dd)*(1.0-bigk2)-bigk2*s.u)/math.Cos(tlon)) /
		(1.0 - bigk2*(1.0+s.u)))

	sl := 1.0
	if xlamt < 0 {
		sl = -1.0
	}
	scl := 1.0
	if math.Cos(tlon) < 0 {
		scl = -1.0
	}
	xlamt -= (math.Pi / 2.0) * (1.0 - scl) * sl
	dlon := xlamt - s.p21*tlon

	if math.Abs(s.sa) < 1.e-7 {
		lat = math.Asin(bigk / math.Sqrt((1.0-s.es)*(1.0-s.es)+s.es*bigk2))
	} else {
		lat = math.Atan((math.Tan(tlon)*math.Cos(xlamt) - s.ca*math.Sin(xlamt)) / ((1.0 - s.es) * s.sa))
	}
	return numeric.AdjustLon(dlon + s.lonCenter), lat, nil
}

// Describe implements Projection.
func (s *SpaceObliqueMercator) Describe(p *report.Printer) {
	c := &s.c
	p.Title("SPACE OBLIQUE MERCATOR")
	p.Radius2(c.SemiMajor, c.SemiMinor)
	if c.Landsat {
		p.GenRptLong("Path Number:    ", int64(c.Path))
		p.GenRptLong("Satellite Number:    ", int64(c.Satellite))
	}
	p.GenRpt("Inclination of Orbit:    ", s.incl*numeric.R2D)
	p.GenRpt("Longitude of Ascending Orbit:    ", s.lonCenter*numeric.R2D)
	p.OffsetP(c.FalseEasting, c.FalseNorthing)
}

// Destroy implements Projection.
func (s *SpaceObliqueMercator) Destroy() {}
