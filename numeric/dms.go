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

import (
	"fmt"
	"math"
)

// PackedDMSToDegrees converts an angle packed as deg*1e6 + min*1e3 + sec
// into decimal degrees. Degrees above 360 and minutes or seconds above
// 60 are rejected.
func PackedDMSToDegrees(dms float64) (float64, error) {
	sign := 1.0
	if dms < 0 {
		sign = -1.0
	}
	tmp := math.Abs(dms)

	deg := math.Trunc(tmp / 1000000)
	if deg > 360 {
		return 0, fmt.Errorf("numeric: illegal DMS value %g: degrees %g > 360", dms, deg)
	}
	tmp -= deg * 1000000

	min := math.Trunc(tmp / 1000)
	if min > 60 {
		return 0, fmt.Errorf("numeric: illegal DMS value %g: minutes %g > 60", dms, min)
	}
	sec := tmp - min*1000
	if sec > 60 {
		return 0, fmt.Errorf("numeric: illegal DMS value %g: seconds %g > 60", dms, sec)
	}

	total := sign * (deg*3600 + min*60 + sec)
	return total / 3600, nil
}

// PackedDMSToRadians converts a packed DMS angle to radians.
func PackedDMSToRadians(dms float64) (float64, error) {
	deg, err := PackedDMSToDegrees(dms)
	if err != nil {
		return 0, err
	}
	return deg * 3600 * S2R, nil
}

// DMS2To3 converts an angle packed as DDDMMSS.SSS into the
// DDDMMMSSS.SSS packing.
func DMS2To3(ang float64) float64 {
	sign := 1.0
	if ang < 0 {
		sign = -1.0
	}
	con := math.Abs(ang)
	deg := math.Trunc(con/10000 + 0.001)
	con -= deg * 10000
	min := math.Trunc(con/100 + 0.001)
	sec := con - min*100
	return sign * (deg*1000000 + min*1000 + sec)
}
