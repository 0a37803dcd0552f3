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

const (
	isinMaxRows = 1296000
	isinTol     = 0.01
)

// integerizedSinusoidal is the Integerized Sinusoidal grid projection.
// Each row of the grid has a whole number of columns, so x is scaled by
// the column count of the row rather than by cos(lat).
type integerizedSinusoidal struct {
	common
	lon0       float64
	nrow       int
	justify    int
	ncol       []float64 // Columns per row of the northern half; the grid is symmetric.
	colDist    float64
	angSizeInv float64
}

func newISIN(c common, lon0, dzone, djustify float64) (*integerizedSinusoidal, error) {
	if c.radius <= 0 {
		return nil, fmt.Errorf("legacy: integerized sinusoidal: bad sphere radius %g: %w", c.radius, errInputData)
	}
	if lon0 < -numeric.TwoPi || lon0 > numeric.TwoPi {
		return nil, fmt.Errorf("legacy: integerized sinusoidal: bad longitude of central meridian: %w", errInputData)
	}
	nrow := int(dzone + 0.5)
	if nrow < 2 || nrow > isinMaxRows {
		return nil, fmt.Errorf("legacy: integerized sinusoidal: bad number of zones %g: %w", dzone, errInputData)
	}
	if math.Abs(dzone-float64(nrow)) > isinTol {
		return nil, fmt.Errorf("legacy: integerized sinusoidal: number of zones %g is not an integer: %w", dzone, errInputData)
	}
	if nrow%2 != 0 {
		return nil, fmt.Errorf("legacy: integerized sinusoidal: number of zones %d is not even: %w", nrow, errInputData)
	}
	justify := int(djustify + 0.5)
	if justify < 0 || justify > 2 || math.Abs(djustify-float64(justify)) > isinTol {
		return nil, fmt.Errorf("legacy: integerized sinusoidal: bad column justification flag %g: %w", djustify, errInputData)
	}

	s := &integerizedSinusoidal{
		common:     c,
		lon0:       lon0,
		nrow:       nrow,
		justify:    justify,
		ncol:       make([]float64, nrow/2),
		angSizeInv: float64(nrow) / math.Pi,
	}
	half := float64(nrow / 2)
	for i := range s.ncol {
		clat := numeric.HalfPi * (1.0 - (float64(i)+0.5)/half)
		var ncol int
		if justify == 2 {
			ncol = 2 * int(float64(nrow)*math.Cos(clat)+0.5)
		} else {
			ncol = int(2.0*float64(nrow)*math.Cos(clat) + 0.5)
		}
		if ncol < 1 {
			ncol = 1
		}
		s.ncol[i] = float64(ncol)
	}
	s.colDist = numeric.TwoPi * c.radius / s.ncol[len(s.ncol)-1]
	return s, nil
}

// columns returns the number of columns in the grid row of lat.
func (s *integerizedSinusoidal) columns(lat float64) float64 {
	i := int((numeric.HalfPi - lat) * s.angSizeInv)
	if i >= len(s.ncol) {
		i = s.nrow - 1 - i
	}
	if i < 0 {
		i = 0
	}
	return s.ncol[i]
}

func (s *integerizedSinusoidal) forward(lon, lat float64) (x, y float64, err error) {
	if lat < -(numeric.HalfPi+numeric.Epsilon) || lat > numeric.HalfPi+numeric.Epsilon {
		return math.NaN(), math.NaN(), fmt.Errorf("legacy: integerized sinusoidal: bad latitude: %w", errInputData)
	}
	if lon < -(numeric.TwoPi+numeric.Epsilon) || lon > numeric.TwoPi+numeric.Epsilon {
		return math.NaN(), math.NaN(), fmt.Errorf("legacy: integerized sinusoidal: bad longitude: %w", errInputData)
	}
	lat = math.Max(-numeric.HalfPi, math.Min(numeric.HalfPi, lat))
	flon := (lon - s.lon0) / numeric.TwoPi
	flon -= math.Floor(flon + 0.5)
	x = s.falseEasting + s.colDist*s.columns(lat)*flon
	y = s.falseNorthing + s.radius*lat
	return x, y, nil
}

func (s *integerizedSinusoidal) inverse(x, y float64) (lon, lat float64, err error) {
	lat = (y - s.falseNorthing) / s.radius
	if lat < -(numeric.HalfPi+numeric.Epsilon) || lat > numeric.HalfPi+numeric.Epsilon {
		return math.NaN(), math.NaN(), fmt.Errorf("legacy: integerized sinusoidal: bad y: %w", errInputData)
	}
	lat = math.Max(-numeric.HalfPi, math.Min(numeric.HalfPi, lat))
	flon := (x - s.falseEasting) / s.colDist / s.columns(lat)
	if flon < -(0.5+numeric.Epsilon) || flon > 0.5+numeric.Epsilon {
		return math.NaN(), math.NaN(), fmt.Errorf("legacy: integerized sinusoidal: column out of range: %w", ErrInBreak)
	}
	lon = s.lon0 + numeric.TwoPi*flon
	if lon > math.Pi {
		lon -= numeric.TwoPi
	} else if lon < -math.Pi {
		lon += numeric.TwoPi
	}
	return lon, lat, nil
}

func (s *integerizedSinusoidal) describe(p *report.Printer) {
	p.Title("INTEGERIZED SINUSOIDAL")
	p.Radius(s.radius)
	p.CenLonMer(s.lon0)
	p.OffsetP(s.falseEasting, s.falseNorthing)
	p.LatZone(float64(s.nrow))
	p.JustifyCols(float64(s.justify))
}
