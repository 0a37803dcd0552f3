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

// Package numeric holds the stateless ellipsoid, series and iterative
// latitude helpers shared by every projection.
package numeric

import (
	"errors"
	"fmt"
	"math"
)

// Angular constants.
const (
	HalfPi = math.Pi / 2
	TwoPi  = 2 * math.Pi
	// Epsilon is the tolerance used to detect degenerate angles.
	Epsilon = 1.0e-10
	D2R     = math.Pi / 180
	R2D     = 180 / math.Pi
	// S2R converts arc seconds to radians.
	S2R = 4.848136811095359e-6
)

// ErrNoConvergence is returned when an iterative solver exceeds its
// iteration budget.
var ErrNoConvergence = errors.New("failed to converge to a solution")

func convergenceError(solver string, iterations int) error {
	return fmt.Errorf("%s: %w after %d iterations", solver, ErrNoConvergence, iterations)
}

// E0 through E3 are the meridian distance series coefficients for the
// squared eccentricity x.
func E0(x float64) float64 { return 1.0 - 0.25*x*(1.0+x/16.0*(3.0+1.25*x)) }

// E1 is a meridian distance series coefficient.
func E1(x float64) float64 { return 0.375 * x * (1.0 + 0.25*x*(1.0+0.46875*x)) }

// E2 is a meridian distance series coefficient.
func E2(x float64) float64 { return 0.05859375 * x * x * (1.0 + 0.75*x) }

// E3 is a meridian distance series coefficient.
func E3(x float64) float64 { return x * x * x * (35.0 / 3072.0) }

// E4 is the polar stereographic scale constant for the eccentricity x.
func E4(x float64) float64 {
	con := 1.0 + x
	com := 1.0 - x
	return math.Sqrt(math.Pow(con, con) * math.Pow(com, com))
}

// Mlfn is the meridian distance for latitude phi, in units of the
// semi-major axis.
func Mlfn(e0, e1, e2, e3, phi float64) float64 {
	return e0*phi - e1*math.Sin(2.0*phi) + e2*math.Sin(4.0*phi) - e3*math.Sin(6.0*phi)
}

// SmallRadius (small-m) is the radius of a parallel divided by the
// semi-major axis.
func SmallRadius(eccent, sinphi, cosphi float64) float64 {
	con := eccent * sinphi
	return cosphi / math.Sqrt(1.0-con*con)
}

// SmallT (small-t) is the isometric colatitude function of latitude phi.
func SmallT(eccent, phi, sinphi float64) float64 {
	con := eccent * sinphi
	com := 0.5 * eccent
	con = math.Pow((1.0-con)/(1.0+con), com)
	return math.Tan(0.5*(HalfPi-phi)) / con
}

// Qsfnz is the authalic q function used by the equal-area projections.
func Qsfnz(eccent, sinphi float64) float64 {
	if eccent > 1.0e-7 {
		con := eccent * sinphi
		return (1.0 - eccent*eccent) * (sinphi/(1.0-con*con) - (0.5/eccent)*math.Log((1.0-con)/(1.0+con)))
	}
	return 2.0 * sinphi
}

// Sign returns -1 for negative x and 1 otherwise.
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// Asinz is math.Asin with its argument clamped to [-1, 1].
func Asinz(con float64) float64 {
	if math.Abs(con) > 1.0 {
		if con > 1.0 {
			con = 1.0
		} else {
			con = -1.0
		}
	}
	return math.Asin(con)
}

// maxAdjust bounds the number of reduction steps in AdjustLon.
const maxAdjust = 4

// AdjustLon reduces the longitude x (radians) into (-π, π]; -π itself
// becomes π. Values a single turn out of range are stepped back by 2π;
// larger values are reduced by whole turns. The reduction stops after a
// fixed number of steps, so pathological input cannot loop forever.
func AdjustLon(x float64) float64 {
	for count := 0; count <= maxAdjust; count++ {
		switch {
		case x == -math.Pi:
			return math.Pi
		case math.Abs(x) <= math.Pi:
			return x
		case math.Abs(x/math.Pi) < 2:
			x -= Sign(x) * TwoPi
		case math.IsInf(x, 0):
			return math.NaN()
		default:
			x -= math.Trunc(x/TwoPi) * TwoPi
		}
	}
	return x
}

// UTMZone returns the UTM zone that contains the longitude lon, given in
// degrees.
func UTMZone(lon float64) int {
	return int((lon+180.0)/6.0 + 1.0)
}
