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
	"math/cmplx"

	"github.com/spatialmodel/gctp/numeric"
	"github.com/spatialmodel/gctp/report"
)

// Modified-stereographic coefficients of the Alaska projection, lowest
// order first.
var alaskaCoef = [6]complex128{
	complex(0.9945303, 0),
	complex(0.0052083, -.0027404),
	complex(0.0072721, 0.0048181),
	complex(-0.0151089, -0.1932526),
	complex(0.0642675, -0.1381226),
	complex(0.3582802, -0.2884586),
}

const (
	alaskaLon0 = -152 * numeric.D2R
	alaskaLat0 = 64 * numeric.D2R
	alaskaES   = .006768657997291094
)

// alaskaConformal is the Modified-Stereographic Conformal projection of Alaska on
// the Clarke 1866 ellipsoid.
type alaskaConformal struct {
	common
	e              float64
	sinP26, cosP26 float64
}

func newAlaska(c common) *alaskaConformal {
	a := &alaskaConformal{common: c, e: math.Sqrt(alaskaES)}
	a.sinP26, a.cosP26 = math.Sincos(a.conformalLat(alaskaLat0))
	return a
}

func (a *alaskaConformal) conformalLat(lat float64) float64 {
	esphi := a.e * math.Sin(lat)
	return 2.0*math.Atan(math.Tan((numeric.HalfPi+lat)/2.0)*math.Pow((1.0-esphi)/(1.0+esphi), a.e/2.0)) - numeric.HalfPi
}

// poly evaluates the mapping polynomial and its derivative at z.
func poly(z complex128) (f, df complex128) {
	for i := len(alaskaCoef) - 1; i >= 0; i-- {
		df = df*z + f
		f = f*z + alaskaCoef[i]
	}
	// f holds Σ c_k z^k for k from 0; shift one order up.
	return f * z, f + df*z
}

func (a *alaskaConformal) forward(lon, lat float64) (x, y float64, err error) {
	dlon := numeric.AdjustLon(lon - alaskaLon0)
	sinchi, coschi := math.Sincos(a.conformalLat(lat))
	sindlon, cosdlon := math.Sincos(dlon)
	s := 2.0 / (1.0 + a.sinP26*sinchi + a.cosP26*coschi*cosdlon)
	zp := complex(s*coschi*sindlon, s*(a.cosP26*sinchi-a.sinP26*coschi*cosdlon))
	w, _ := poly(zp)
	x = real(w)*a.major + a.falseEasting
	y = imag(w)*a.major + a.falseNorthing
	return x, y, nil
}

func (a *alaskaConformal) inverse(x, y float64) (lon, lat float64, err error) {
	w := complex((x-a.falseEasting)/a.major, (y-a.falseNorthing)/a.major)
	z := w
	for n := 0; ; n++ {
		f, df := poly(z)
		dz := -(f - w) / df
		z += dz
		if math.Abs(real(dz))+math.Abs(imag(dz)) <= numeric.Epsilon {
			break
		}
		if n >= 20 {
			return math.NaN(), math.NaN(), fmt.Errorf("legacy: alaska: stereographic coordinates: %w", numeric.ErrNoConvergence)
		}
	}

	rh := cmplx.Abs(z)
	if math.Abs(rh) <= numeric.Epsilon {
		return alaskaLon0, alaskaLat0, nil
	}
	xp, yp := real(z), imag(z)
	sinz, cosz := math.Sincos(2.0 * math.Atan(rh/2.0))
	chi := numeric.Asinz(cosz*a.sinP26 + (yp*sinz*a.cosP26)/rh)
	phi := chi
	for n := 0; ; n++ {
		esphi := a.e * math.Sin(phi)
		dphi := 2.0*math.Atan(math.Tan((numeric.HalfPi+chi)/2.0)*math.Pow((1.0+esphi)/(1.0-esphi), a.e/2.0)) - numeric.HalfPi - phi
		phi += dphi
		if math.Abs(dphi) <= numeric.Epsilon {
			break
		}
		if n >= 20 {
			return math.NaN(), math.NaN(), fmt.Errorf("legacy: alaska: latitude: %w", numeric.ErrNoConvergence)
		}
	}
	lon = numeric.AdjustLon(alaskaLon0 + math.Atan2(xp*sinz, rh*a.cosP26*cosz-yp*a.sinP26*sinz))
	return lon, phi, nil
}

func (a *alaskaConformal) describe(p *report.Printer) {
	p.Title("ALASKA CONFORMAL")
	p.Radius2(a.major, a.minor)
	p.CenLonMer(alaskaLon0)
	p.Origin(alaskaLat0)
	p.OffsetP(a.falseEasting, a.falseNorthing)
}
