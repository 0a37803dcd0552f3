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
	"fmt"
	"math"

	"github.com/spatialmodel/gctp/units"
)

// OnceAround returns the length of a full circle of longitude in u, or
// 0 when u is not angular.
func OnceAround(u units.Unit) float64 {
	switch u {
	case units.Radian:
		return 2 * math.Pi
	case units.Second:
		return 360 * 3600
	case units.Degree:
		return 360
	case units.DMS:
		return 360000000
	default:
		return 0
	}
}

// DoesCross180 reports whether the longitudes lons, typically the
// corners of a scene, straddle the 180 degree meridian. Only angular
// units can cross it.
func DoesCross180(u units.Unit, lons []float64) bool {
	once := OnceAround(u)
	if once == 0 {
		return false
	}
	positive := 0
	for _, l := range lons {
		if l > 0 {
			positive++
		}
	}
	if positive == 0 || positive == len(lons) {
		return false
	}
	for i := 0; i < len(lons)-1; i++ {
		for j := i + 1; j < len(lons); j++ {
			if math.Abs(lons[i]-lons[j])/once > 0.5 {
				return true
			}
		}
	}
	return false
}

// AddOnceAround returns the longitude one full circle greater than lon,
// which refers to the same meridian.
func AddOnceAround(lon float64, u units.Unit) (float64, error) {
	once := OnceAround(u)
	if once == 0 {
		return lon, fmt.Errorf("projtrans: %s longitudes do not wrap around", u)
	}
	v := lon + once
	if u != units.DMS || (v < 0) == (lon < 0) {
		return v, nil
	}
	// Packed fields do not carry across zero.
	deg, err := DMSToDeg(lon, Lon)
	if err != nil {
		return lon, err
	}
	return DegToDMS(deg+360, Degrees)
}
