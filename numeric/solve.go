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

package numeric

import "math"

// Phi1z computes the latitude from the authalic q value qs for the
// eccentricity eccent (Albers inverse).
func Phi1z(eccent, qs float64) (float64, error) {
	phi := Asinz(0.5 * qs)
	if eccent < Epsilon {
		return phi, nil
	}
	eccnts := eccent * eccent
	const maxIter = 25
	for i := 1; i <= maxIter; i++ {
		sinphi, cosphi := math.Sincos(phi)
		con := eccent * sinphi
		com := 1.0 - con*con
		dphi := 0.5 * com * com / cosphi * (qs/(1.0-eccnts) - sinphi/com +
			0.5/eccent*math.Log((1.0-con)/(1.0+con)))
		phi += dphi
		if math.Abs(dphi) <= 1e-7 {
			return phi, nil
		}
	}
	return math.NaN(), convergenceError("phi1z", maxIter)
}

// Phi2z computes the latitude from the isometric colatitude ts for the
// eccentricity eccent. It is shared by the conformal projections.
func Phi2z(eccent, ts float64) (float64, error) {
	eccnth := 0.5 * eccent
	phi := HalfPi - 2*math.Atan(ts)
	const maxIter = 16
	for i := 0; i < maxIter; i++ {
		con := eccent * math.Sin(phi)
		dphi := HalfPi - 2*math.Atan(ts*math.Pow((1.0-con)/(1.0+con), eccnth)) - phi
		phi += dphi
		if math.Abs(dphi) <= Epsilon {
			return phi, nil
		}
	}
	return math.NaN(), convergenceError("phi2z", maxIter)
}

// Phi3z computes the latitude from the meridian distance ml (Equidistant
// Conic inverse).
func Phi3z(ml, e0, e1, e2, e3 float64) (float64, error) {
	phi := ml
	const maxIter = 15
	for i := 0; i < maxIter; i++ {
		dphi := (ml+e1*math.Sin(2.0*phi)-e2*math.Sin(4.0*phi)+e3*math.Sin(6.0*phi))/e0 - phi
		phi += dphi
		if math.Abs(dphi) <= Epsilon {
			return phi, nil
		}
	}
	return math.NaN(), convergenceError("phi3z", maxIter)
}

// Phi4z solves the polyconic inverse for latitude with Newton's method.
// es is the squared eccentricity, a and b are the reduced coordinates
// of the point. It returns the latitude and the auxiliary value c.
func Phi4z(es, e0, e1, e2, e3, a, b float64) (phi, c float64, err error) {
	phi = a
	const maxIter = 15
	for i := 1; i <= maxIter; i++ {
		sinphi := math.Sin(phi)
		tanphi := math.Tan(phi)
		c = tanphi * math.Sqrt(1.0-es*sinphi*sinphi)
		sin2ph := math.Sin(2.0 * phi)
		ml := e0*phi - e1*sin2ph + e2*math.Sin(4.0*phi) - e3*math.Sin(6.0*phi)
		mlp := e0 - 2.0*e1*math.Cos(2.0*phi) + 4.0*e2*math.Cos(4.0*phi) - 6.0*e3*math.Cos(6.0*phi)
		con1 := 2.0*ml + c*(ml*ml+b) - 2.0*a*(c*ml+1.0)
		con2 := es * sin2ph * (ml*ml + b - 2.0*a*ml) / (2.0 * c)
		con3 := 2.0*(a-ml)*(c*mlp-2.0/sin2ph) - 2.0*mlp
		dphi := con1 / (con2 + con3)
		phi += dphi
		if math.Abs(dphi) <= Epsilon {
			return phi, c, nil
		}
	}
	return math.NaN(), math.NaN(), convergenceError("phi4z", maxIter)
}
