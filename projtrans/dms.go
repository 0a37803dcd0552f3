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

package projtrans

import (
	"errors"
	"fmt"
	"math"

	"github.com/spatialmodel/gctp/numeric"
)

// Bound is the use of an angle, which limits its range.
type Bound int

// Angle uses.
const (
	Lat     Bound = iota // -90 to 90 degrees.
	Lon                  // -180 to 180 degrees.
	Degrees              // 0 to 360 degrees.
)

func (b Bound) String() string {
	switch b {
	case Lat:
		return "LAT"
	case Lon:
		return "LON"
	default:
		return "DEGREES"
	}
}

// limits returns the range of b in degrees.
func (b Bound) limits() (min, max float64) {
	switch b {
	case Lat:
		return -90, 90
	case Lon:
		return -180, 180
	default:
		return 0, 360
	}
}

// ErrOutOfBounds is returned for angles outside the range of their use.
var ErrOutOfBounds = errors.New("angle outside bounds")

// DMSToDeg converts an angle packed as deg*1e6 + min*1e3 + sec to
// decimal degrees.
func DMSToDeg(dms float64, b Bound) (float64, error) {
	min, max := b.limits()
	if dms > max*1e6 || dms < min*1e6 {
		return 0, fmt.Errorf("projtrans: DMS value %f outside %s bounds of %f to %f: %w", dms, b, min*1e6, max*1e6, ErrOutOfBounds)
	}
	deg, err := numeric.PackedDMSToDegrees(dms)
	if err != nil {
		return 0, fmt.Errorf("projtrans: %v", err)
	}
	return deg, nil
}

// DegToDMS converts decimal degrees to a packed DMS angle. Seconds are
// truncated to thousandths; seconds or minutes that round up to 60 carry
// into the next field.
func DegToDMS(deg float64, b Bound) (float64, error) {
	sign := 1.0
	if deg < 0 {
		sign = -1.0
	}
	a := math.Abs(deg)
	d := math.Trunc(a)
	m := math.Trunc((a - d) * 60)
	s := ((a-d)*60 - m) * 60
	if s >= 60 {
		s -= 60
		m++
	}
	if m >= 60 {
		m -= 60
		d++
	}
	s = math.Trunc(s*1000) / 1000

	dms := sign * (d*1e6 + m*1e3 + s)
	min, max := b.limits()
	if dms > max*1e6 || dms < min*1e6 {
		return 0, fmt.Errorf("projtrans: DMS value %f outside %s bounds of %f to %f: %w", dms, b, min*1e6, max*1e6, ErrOutOfBounds)
	}
	return dms, nil
}
