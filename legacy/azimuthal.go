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

// azimuthal implements the spherical azimuthal projections. They differ
// only in the radial scale of the forward projection and in the angular
// distance recovered by the inverse.
type azimuthal struct {
	common
	code       int
	lon0, lat0 float64
	sinp, cosp float64
	height     float64 // Near-side perspective only.
	p          float64 // 1 + height/radius.
}

var azimuthalNames = map[int]string{
	stereo: "stereographic",
	lamaz:  "lambert azimuthal",
	azmeqd: "azimuthal equidistant",
	gnomon: "gnomonic",
	ortho:  "orthographic",
	gvnsp:  "general vertical near-side perspective",
}

func newAzimuthal(code int, c common, lon0, lat0, height float64) *azimuthal {
	a := &azimuthal{common: c, code: code, lon0: lon0, lat0: lat0, height: height}
	a.sinp, a.cosp = math.Sincos(lat0)
	a.p = 1.0 + height/c.radius
	return a
}

func (a *azimuthal) errorf(err error) error {
	return fmt.Errorf("legacy: %s: %w", azimuthalNames[a.code], err)
}

// scale returns the radial scale for a point whose cosine of angular
// distance from the center is g.
func (a *azimuthal) scale(g float64) (float64, error) {
	switch a.code {
	case stereo:
		if math.Abs(g+1.0) <= numeric.Epsilon {
			return 0, a.errorf(ErrInfinity)
		}
		return 2.0 / (1.0 + g), nil
	case lamaz:
		if g == -1 {
			return 0, a.errorf(fmt.Errorf("point projects to a circle of radius %f: %w", 2*a.radius, ErrCannotProject))
		}
		return math.Sqrt(2.0 / (1.0 + g)), nil
	case azmeqd:
		if math.Abs(math.Abs(g)-1.0) < numeric.Epsilon {
			if g < 0 {
				return 0, a.errorf(fmt.Errorf("point projects into a circle of radius %f: %w", math.Pi*a.radius, ErrCannotProject))
			}
			return 1, nil
		}
		z := math.Acos(g)
		return z / math.Sin(z), nil
	case gnomon:
		if g <= 0 {
			return 0, a.errorf(ErrInfinity)
		}
		return 1.0 / g, nil
	case ortho:
		if g > 0 || math.Abs(g) <= numeric.Epsilon {
			return 1, nil
		}
		return 0, a.errorf(ErrCannotProject)
	default: // gvnsp
		if g < 1.0/a.p {
			return 0, a.errorf(ErrCannotProject)
		}
		return (a.p - 1.0) / (a.p - g), nil
	}
}

// distance returns the angular distance from the center of a point at
// planar distance rh.
func (a *azimuthal) distance(rh float64) (float64, error) {
	r := a.radius
	switch a.code {
	case stereo:
		return 2.0 * math.Atan(rh/(2.0*r)), nil
	case lamaz:
		temp := rh / (2.0 * r)
		if temp > 1 {
			return 0, a.errorf(errInputData)
		}
		return 2.0 * numeric.Asinz(temp), nil
	case azmeqd:
		if rh > math.Pi*r {
			return 0, a.errorf(errInputData)
		}
		return rh / r, nil
	case gnomon:
		return math.Atan(rh / r), nil
	case ortho:
		if rh > r+.0000001 {
			return 0, a.errorf(errInputData)
		}
		return numeric.Asinz(rh / r), nil
	default: // gvnsp
		rr := rh / r
		con := a.p - 1.0
		com := a.p + 1.0
		if rr > math.Sqrt(con/com) {
			return 0, a.errorf(errInputData)
		}
		sinz := (a.p - math.Sqrt(1.0-(rr*rr*com)/con)) / (con/rr + rr/con)
		return numeric.Asinz(sinz), nil
	}
}

func (a *azimuthal) forward(lon, lat float64) (x, y float64, err error) {
	dlon := numeric.AdjustLon(lon - a.lon0)
	sinphi, cosphi := math.Sincos(lat)
	sinlon, coslon := math.Sincos(dlon)
	g := a.sinp*sinphi + a.cosp*cosphi*coslon
	ksp, err := a.scale(g)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	x = a.falseEasting + a.radius*ksp*cosphi*sinlon
	y = a.falseNorthing + a.radius*ksp*(a.cosp*sinphi-a.sinp*cosphi*coslon)
	return x, y, nil
}

func (a *azimuthal) inverse(x, y float64) (lon, lat float64, err error) {
	x -= a.falseEasting
	y -= a.falseNorthing
	rh := math.Hypot(x, y)
	z, err := a.distance(rh)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	if math.Abs(rh) <= numeric.Epsilon {
		return a.lon0, a.lat0, nil
	}
	sinz, cosz := math.Sincos(z)
	lat = numeric.Asinz(cosz*a.sinp + (y*sinz*a.cosp)/rh)
	if math.Abs(math.Abs(a.lat0)-numeric.HalfPi) <= numeric.Epsilon {
		if a.lat0 >= 0 {
			return numeric.AdjustLon(a.lon0 + math.Atan2(x, -y)), lat, nil
		}
		return numeric.AdjustLon(a.lon0 - math.Atan2(-x, y)), lat, nil
	}
	con := cosz - a.sinp*math.Sin(lat)
	if math.Abs(con) < numeric.Epsilon && math.Abs(x) < numeric.Epsilon {
		return a.lon0, lat, nil
	}
	return numeric.AdjustLon(a.lon0 + math.Atan2(x*sinz*a.cosp, con*rh)), lat, nil
}

func (a *azimuthal) describe(p *report.Printer) {
	switch a.code {
	case stereo:
		p.Title("STEREOGRAPHIC")
	case lamaz:
		p.Title("LAMBERT AZIMUTHAL EQUAL-AREA")
	case azmeqd:
		p.Title("AZIMUTHAL EQUIDISTANT")
	case gnomon:
		p.Title("GNOMONIC")
	case ortho:
		p.Title("ORTHOGRAPHIC")
		p.Radius(a.radius)
		p.CenLonMer(a.lon0)
		p.Origin(a.lat0)
		p.OffsetP(a.falseEasting, a.falseNorthing)
		return
	case gvnsp:
		p.Title("GENERAL VERTICAL NEAR-SIDE PERSPECTIVE")
	}
	p.Radius(a.radius)
	if a.code == gvnsp {
		p.GenRpt("Height of Point Above Surface of Sphere:   ", a.height)
	}
	p.CenLon(a.lon0)
	p.CenLat(a.lat0)
	p.OffsetP(a.falseEasting, a.falseNorthing)
}
