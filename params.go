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
	"errors"
	"fmt"

	"github.com/spatialmodel/gctp/legacy"
	"github.com/spatialmodel/gctp/numeric"
	"github.com/spatialmodel/gctp/report"
	"github.com/spatialmodel/gctp/units"
)

// NumParams is the number of positional projection parameters.
const NumParams = 15

// Params describes a coordinate reference system in the positional form
// used by projection definitions. The meaning of each slot of P depends
// on Code; slots a projection does not use are ignored. Angles in P are
// packed DMS (deg*1e6 + min*1e3 + sec) and distances are meters.
type Params struct {
	Code     Code
	Zone     int
	Units    units.Unit
	Spheroid int
	P        [NumParams]float64
}

func (p Params) String() string {
	return fmt.Sprintf("%s zone=%d units=%s spheroid=%d params=%v", p.Code, p.Zone, p.Units, p.Spheroid, p.P)
}

// Projection is a transform unit for a single projection kind. Forward
// maps longitude and latitude in radians to x and y in meters; Inverse
// does the opposite. Implementations hold their precomputed
// coefficients and are safe for concurrent use once constructed.
type Projection interface {
	Forward(lon, lat float64) (x, y float64, err error)
	Inverse(x, y float64) (lon, lat float64, err error)
	// Describe prints the projection parameters.
	Describe(p *report.Printer)
	// Destroy releases the coefficients. It is safe to call more than once.
	Destroy()
}

// Errors returned by transforms. The point errors are shared with the
// legacy dispatcher, so errors.Is matches them whichever path served a
// transformation.
var (
	// ErrCannotProject is returned for points that have no representation
	// in a projection.
	ErrCannotProject = legacy.ErrCannotProject
	// ErrInfinity is returned for points that project to infinity.
	ErrInfinity = legacy.ErrInfinity
	// ErrInBreak is returned by the inverse of an interrupted projection
	// for points that fall into one of its breaks.
	ErrInBreak = legacy.ErrInBreak
	// ErrIllegalCode is returned for projection codes outside 0..31.
	ErrIllegalCode = errors.New("illegal projection code")
	// ErrLegacyDisallowed is returned when a threadsafe-only
	// transformation would need the legacy dispatcher.
	ErrLegacyDisallowed = errors.New("projection requires the legacy dispatcher, which is not threadsafe")
	// ErrDestroyed is returned when a destroyed transformation is used.
	ErrDestroyed = errors.New("transformation has been destroyed")
)

// spheroid resolves the spheroid of p.
func (p Params) spheroid() (major, minor, radius float64) {
	major, minor, radius, _ = numeric.Spheroid(p.Spheroid, p.P[:])
	return major, minor, radius
}

// angle decodes the packed DMS value in slot i into radians.
func (p Params) angle(i int, name string) (float64, error) {
	r, err := numeric.PackedDMSToRadians(p.P[i])
	if err != nil {
		return 0, fmt.Errorf("gctp: converting %s in parameter %d from DMS: %v", name, i, err)
	}
	return r, nil
}

// system converts p to the legacy dispatcher's description.
func (p Params) system() legacy.System {
	return legacy.System{Code: int(p.Code), Zone: p.Zone, Units: p.Units, Spheroid: p.Spheroid, Params: p.P}
}
