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

package units

import (
	"errors"
	"math"
	"testing"

	"github.com/ctessum/unit"
)

func TestFactor(t *testing.T) {
	for _, test := range []struct {
		in, out Unit
		want    float64
		err     error
	}{
		{in: Radian, out: Degree, want: 57.295779513082323},
		{in: Degree, out: Radian, want: .01745329251994329},
		{in: Feet, out: Meter, want: .3048006096012192},
		{in: Meter, out: Meter, want: 1},
		{in: Degree, out: Second, want: 3600},
		{in: Radian, out: Meter, err: ErrIncompatible},
		{in: Meter, out: Degree, err: ErrIncompatible},
		{in: Second, out: Feet, err: ErrIncompatible},
		{in: Meter, out: DMS, err: ErrIncompatible},
		{in: DMS, out: Feet, err: ErrIncompatible},
		{in: DMS, out: Degree, err: ErrIncompatible},
		{in: DMS, out: DMS, want: 1},
	} {
		f, err := Factor(test.in, test.out)
		if !errors.Is(err, test.err) {
			t.Errorf("%s→%s: err %v != %v", test.in, test.out, err, test.err)
			continue
		}
		if f != test.want {
			t.Errorf("%s→%s: %v != %v", test.in, test.out, f, test.want)
		}
	}
	if _, err := Factor(Unit(6), Meter); err == nil {
		t.Error("unit 6 should be rejected")
	}
	for in := Radian; in <= DMS; in++ {
		for out := Radian; out <= DMS; out++ {
			if _, err := Factor(in, out); err == nil && !Compatible(in, out) {
				t.Errorf("%s→%s: converted between %v and %v", in, out, in.Dimensions(), out.Dimensions())
			}
		}
	}
}

func TestDimensions(t *testing.T) {
	if !Compatible(Degree, Radian) {
		t.Error("degrees and radians should be compatible")
	}
	if Compatible(Degree, Meter) {
		t.Error("degrees and meters should not be compatible")
	}
	if !Meter.Dimensions().Matches(unit.Meter) {
		t.Error("meters should have length dimensions")
	}
	if !Second.Angular() || Feet.Angular() {
		t.Error("wrong angular classification")
	}
}

func TestQuantity(t *testing.T) {
	q, err := Quantity(45030000, DMS)
	if err != nil {
		t.Fatal(err)
	}
	if err := q.Check(Radian.Dimensions()); err != nil {
		t.Error(err)
	}
	if want := 45.5 * math.Pi / 180; math.Abs(q.Value()-want) > 1e-12 {
		t.Errorf("%v != %v", q.Value(), want)
	}
	q, err = Quantity(1000, Feet)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(q.Value()-304.8006096012192) > 1e-9 {
		t.Errorf("%v", q.Value())
	}
}

func TestParse(t *testing.T) {
	for u := Radian; u <= DMS; u++ {
		p, err := Parse(u.String())
		if err != nil {
			t.Fatal(err)
		}
		if p != u {
			t.Errorf("%v != %v", p, u)
		}
	}
	if _, err := Parse("furlongs"); err == nil {
		t.Error("expected error")
	}
}
