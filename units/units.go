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

// Package units converts coordinate values between the angular and
// linear units accepted at the boundary of a transformation.
package units

import (
	"errors"
	"fmt"

	"github.com/ctessum/unit"
	"github.com/spatialmodel/gctp/numeric"
)

// Unit identifies the units of a coordinate pair.
type Unit int

// The supported units. The numeric values are part of the external
// interface and must not change.
const (
	Radian Unit = iota
	Feet
	Meter
	Second
	Degree
	DMS
)

// count is the number of supported units.
const count = 6

var names = [count]string{"radians", "feet", "meters", "seconds", "degrees", "dms"}

func (u Unit) String() string {
	if u.Valid() {
		return names[u]
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// Valid reports whether u is a supported unit.
func (u Unit) Valid() bool { return u >= 0 && u < count }

// Parse returns the unit with the given name, as printed by String.
func Parse(s string) (Unit, error) {
	for i, n := range names {
		if n == s {
			return Unit(i), nil
		}
	}
	return 0, fmt.Errorf("units: unknown unit %q", s)
}

// ErrIncompatible is returned when converting between an angular and a
// linear unit.
var ErrIncompatible = errors.New("incompatible unit codes")

// factors[in][out] multiplies a value in unit in to give a value in unit
// out. A zero entry marks a pair with no linear conversion. Packed DMS
// angles are unpacked to degrees by callers before they reach a
// transformation, so code 5 only converts to itself.
var factors = [count][count]float64{
	{1.0, 0.0, 0.0, 206264.8062470963, 57.295779513082323, 0.0},
	{0.0, 1.0, .3048006096012192, 0.0, 0.0, 0.0},
	{0.0, 3.280833333333333, 1.0, 0.0, 0.0, 0.0},
	{.484813681109536e-5, 0.0, 0.0, 1.0, .27777777777778e-3, 0.0},
	{.01745329251994329, 0.0, 0.0, 3600, 1.0, 0.0},
	{0.0, 0.0, 0.0, 0.0, 0.0, 1.0},
}

// Factor returns the multiplier that converts a value in unit in to
// unit out. Units of different dimensions are rejected, as is packed
// DMS to or from any other unit.
func Factor(in, out Unit) (float64, error) {
	if !in.Valid() {
		return 0, fmt.Errorf("units: illegal source unit code %d", int(in))
	}
	if !out.Valid() {
		return 0, fmt.Errorf("units: illegal target unit code %d", int(out))
	}
	if !Compatible(in, out) {
		return 0, fmt.Errorf("units: %s (%v) to %s (%v): %w", in, in.Dimensions(), out, out.Dimensions(), ErrIncompatible)
	}
	f := factors[in][out]
	if f == 0 {
		return 0, fmt.Errorf("units: %s to %s: %w", in, out, ErrIncompatible)
	}
	return f, nil
}

// angle is the dimension of an angle.
var angle = unit.Dimensions{unit.AngleDim: 1}

// Dimensions returns the physical dimensions of values in u.
func (u Unit) Dimensions() unit.Dimensions {
	switch u {
	case Feet, Meter:
		return unit.Meter
	case Radian, Second, Degree, DMS:
		return angle
	default:
		return unit.Dimless
	}
}

// Angular reports whether u measures an angle.
func (u Unit) Angular() bool { return u.Dimensions().Matches(angle) }

// toSI converts a value in u to radians or meters.
var toSI = [count]float64{1, .3048006096012192, 1, .484813681109536e-5, .01745329251994329, 1}

// Quantity returns v, given in u, as an SI quantity in radians or meters.
func Quantity(v float64, u Unit) (*unit.Unit, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("units: illegal unit code %d", int(u))
	}
	if u == DMS {
		deg, err := numeric.PackedDMSToDegrees(v)
		if err != nil {
			return nil, err
		}
		v = deg * toSI[Degree]
	} else {
		v *= toSI[u]
	}
	return unit.New(v, u.Dimensions()), nil
}

// Compatible reports whether a and b measure the same dimension.
func Compatible(a, b Unit) bool {
	return unit.DimensionsMatch(unit.New(1, a.Dimensions()), unit.New(1, b.Dimensions()))
}
