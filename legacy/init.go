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

	"github.com/spatialmodel/gctp/numeric"
	"github.com/spatialmodel/gctp/report"
)

// projection is the state of one initialized projection. Forward maps
// radians to meters and inverse does the opposite.
type projection interface {
	forward(lon, lat float64) (x, y float64, err error)
	inverse(x, y float64) (lon, lat float64, err error)
	describe(p *report.Printer)
}

// common holds the values shared by most projections.
type common struct {
	major, minor, radius        float64
	falseEasting, falseNorthing float64
}

// params decodes the positional parameters of a System.
type params struct {
	s   System
	err error
}

// angle decodes the packed DMS value in slot i into radians. The first
// error is kept and later calls return 0.
func (p *params) angle(i int, name string) float64 {
	if p.err != nil {
		return 0
	}
	r, err := numeric.PackedDMSToRadians(p.s.Params[i])
	if err != nil {
		p.err = fmt.Errorf("legacy: converting %s in parameter %d from DMS: %v", name, i, err)
		return 0
	}
	return r
}

func (p *params) common() common {
	var c common
	c.major, c.minor, c.radius, _ = numeric.Spheroid(p.s.Spheroid, p.s.Params[:])
	c.falseEasting = p.s.Params[6]
	c.falseNorthing = p.s.Params[7]
	return c
}

// newProjection initializes the projection of s.
func newProjection(s System) (projection, error) {
	if ported(s.Code) {
		return nil, fmt.Errorf("legacy: projection code %d: %w", s.Code, ErrPorted)
	}
	p := &params{s: s}
	c := p.common()
	var proj projection
	var err error
	switch s.Code {
	case albers:
		lat1, lat2 := p.angle(2, "standard parallel 1"), p.angle(3, "standard parallel 2")
		lat0, lon0 := p.angle(5, "latitude of origin"), p.angle(4, "center longitude")
		if p.err == nil {
			proj, err = newAlbers(c, lat1, lat2, lon0, lat0)
		}
	case mercat:
		lon0, lat1 := p.angle(4, "center longitude"), p.angle(5, "latitude of true scale")
		proj = newMercator(c, lon0, lat1)
	case equidc:
		lat1, lat2 := p.angle(2, "standard parallel 1"), p.angle(3, "standard parallel 2")
		lon0, lat0 := p.angle(4, "center longitude"), p.angle(5, "latitude of origin")
		if p.err == nil {
			proj, err = newEquidistantConic(c, lat1, lat2, lon0, lat0, s.Params[8] != 0)
		}
	case stereo, lamaz, azmeqd, gnomon, ortho:
		lon0, lat0 := p.angle(4, "center longitude"), p.angle(5, "center latitude")
		proj = newAzimuthal(s.Code, c, lon0, lat0, 0)
	case gvnsp:
		lon0, lat0 := p.angle(4, "center longitude"), p.angle(5, "center latitude")
		proj = newAzimuthal(s.Code, c, lon0, lat0, s.Params[2])
	case snsoid, miller, vgrint, hammer, robin, moll, wagiv, wagvii:
		lon0 := p.angle(4, "center longitude")
		proj = newWorld(s.Code, c, lon0)
	case eqrect:
		lon0, lat1 := p.angle(4, "center longitude"), p.angle(5, "latitude of true scale")
		proj = &equirectangular{common: c, lon0: lon0, lat1: lat1}
	case good:
		proj = newGoode(c.radius)
	case imoll:
		proj = newInterruptedMollweide(c.radius)
	case alaska:
		proj = newAlaska(c)
	case obeqa:
		lon0, lat0 := p.angle(4, "center longitude"), p.angle(5, "center latitude")
		theta := p.angle(8, "rotation angle")
		if p.err == nil {
			proj, err = newOblatedEqualArea(c, lon0, lat0, s.Params[2], s.Params[3], theta)
		}
	case isin:
		lon0 := p.angle(4, "center longitude")
		if p.err == nil {
			proj, err = newISIN(c, lon0, s.Params[8], s.Params[10])
		}
	default:
		return nil, fmt.Errorf("legacy: projection code %d is not supported", s.Code)
	}
	if p.err != nil {
		return nil, p.err
	}
	if err != nil {
		return nil, err
	}
	return proj, nil
}
