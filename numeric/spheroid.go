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

// Ellipsoid is a reference ellipsoid.
type Ellipsoid struct {
	Name         string
	Major, Minor float64
}

// Ellipsoids is the table of supported spheroids, indexed by spheroid code.
var Ellipsoids = [...]Ellipsoid{
	{"Clarke 1866", 6378206.4, 6356583.8},
	{"Clarke 1880", 6378249.145, 6356514.86955},
	{"Bessel", 6377397.155, 6356078.96284},
	{"International 1967", 6378157.5, 6356772.2},
	{"International 1909", 6378388.0, 6356911.94613},
	{"WGS 72", 6378135.0, 6356750.519915},
	{"Everest", 6377276.3452, 6356075.4133},
	{"WGS 66", 6378145.0, 6356759.769356},
	{"GRS 1980", 6378137.0, 6356752.31414},
	{"Airy", 6377563.396, 6356256.91},
	{"Modified Everest", 6377304.063, 6356103.039},
	{"Modified Airy", 6377340.189, 6356034.448},
	{"WGS 84", 6378137.0, 6356752.314245},
	{"Southeast Asia", 6378155.0, 6356773.3205},
	{"Australian National", 6378160.0, 6356774.719},
	{"Krassovsky", 6378245.0, 6356863.0188},
	{"Hough", 6378270.0, 6356794.343479},
	{"Mercury 1960", 6378166.0, 6356784.283666},
	{"Modified Mercury 1968", 6378150.0, 6356768.337303},
	{"Sphere of Radius 6370997", 6370997.0, 6370997.0},
	{"Bessel 1841 (Namibia)", 6377483.865, 6356165.382966},
	{"Everest (Sabah & Sarawak)", 6377298.556, 6356097.5503},
	{"Everest (India 1956)", 6377301.243, 6356100.228368},
	{"Everest (Malaysia 1969)", 6377295.664, 6356094.667915},
	{"Everest (Malay & Singapore 1948)", 6377304.063, 6356103.038993},
	{"Everest (Pakistan)", 6377309.613, 6356108.570542},
	{"Hayford", 6378388.0, 6356911.946128},
	{"Helmert 1906", 6378200.0, 6356818.169},
	{"Indonesian 1974", 6378160.0, 6356774.504086},
	{"South American 1969", 6378160.0, 6356774.719},
	{"WGS 60", 6378165.0, 6356783.287},
	{"Sphere of Radius 6371007.181", 6371007.181, 6371007.181},
}

// Clarke1866 and GRS1980 are the spheroid codes of the NAD27 and NAD83
// datums.
const (
	Clarke1866 = 0
	GRS1980    = 8
)

// defaultRadius is the radius used when neither axis is given.
const defaultRadius = 6370997.0

// Spheroid resolves a spheroid code to the semi-major axis, semi-minor
// axis, and sphere radius used by the projections.
//
// A negative code takes the axes from p[0] and p[1]: p[1] greater
// than one is the semi-minor axis, p[1] between zero and one is the
// squared eccentricity, and p[1] of zero means a sphere of radius p[0].
// With p[0] of zero, Clarke 1866 is used when p[1] is set and the
// 6370997 m sphere otherwise. Codes outside the table fall back to
// Clarke 1866; the returned flag reports that fallback.
func Spheroid(code int, p []float64) (major, minor, radius float64, reset bool) {
	if code < 0 {
		var tMajor, tMinor float64
		if len(p) > 0 {
			tMajor = math.Abs(p[0])
		}
		if len(p) > 1 {
			tMinor = math.Abs(p[1])
		}
		switch {
		case tMajor > 0 && tMinor > 1:
			return tMajor, tMinor, tMajor, false
		case tMajor > 0 && tMinor > 0:
			return tMajor, math.Sqrt(1.0-tMinor) * tMajor, tMajor, false
		case tMajor > 0:
			return tMajor, tMajor, tMajor, false
		case tMinor > 0:
			e := Ellipsoids[Clarke1866]
			return e.Major, e.Minor, e.Major, false
		default:
			return Ellipsoids[Clarke1866].Major, defaultRadius, defaultRadius, false
		}
	}
	if code >= len(Ellipsoids) {
		code = Clarke1866
		reset = true
	}
	e := Ellipsoids[code]
	return e.Major, e.Minor, e.Major, reset
}

// Eccentricity returns the squared eccentricity and eccentricity of an
// ellipsoid with the given axes.
func Eccentricity(major, minor float64) (es, e float64) {
	temp := minor / major
	es = 1.0 - temp*temp
	return es, math.Sqrt(es)
}
