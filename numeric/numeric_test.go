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
	"errors"
	"math"
	"testing"
)

func TestUTMZone(t *testing.T) {
	for _, test := range []struct {
		lon  float64
		zone int
	}{
		{lon: -179.9, zone: 1},
		{lon: -177, zone: 1},
		{lon: -174, zone: 2},
		{lon: 0, zone: 31},
		{lon: -77.5, zone: 18},
		{lon: 179.9, zone: 60},
	} {
		if z := UTMZone(test.lon); z != test.zone {
			t.Errorf("lon %g: zone %d != %d", test.lon, z, test.zone)
		}
	}
}

func TestAdjustLon(t *testing.T) {
	for _, test := range []struct {
		in, want float64
	}{
		{in: 0, want: 0},
		{in: math.Pi, want: math.Pi},
		{in: -math.Pi, want: math.Pi},
		{in: math.Pi + TwoPi, want: math.Pi},
		{in: 1.5 * math.Pi, want: -0.5 * math.Pi},
		{in: -1.5 * math.Pi, want: 0.5 * math.Pi},
		{in: 7*TwoPi + 0.25, want: 0.25},
		{in: -9*TwoPi - 0.25, want: -0.25},
	} {
		if have := AdjustLon(test.in); math.Abs(have-test.want) > 1e-9 {
			t.Errorf("AdjustLon(%g) = %g, want %g", test.in, have, test.want)
		}
	}
	t.Run("bounded", func(t *testing.T) {
		for _, x := range []float64{1e300, -1e300, math.NaN(), math.Inf(1)} {
			AdjustLon(x) // Must terminate.
		}
	})
}

func TestSeries(t *testing.T) {
	es := 0.006694379990197 // GRS 1980
	if v := E0(es) - 1 + 0.25*es; math.Abs(v) > 1e-5 {
		t.Errorf("e0 leading term off by %g", v)
	}
	if Mlfn(E0(es), E1(es), E2(es), E3(es), 0) != 0 {
		t.Error("meridian distance at the equator should be zero")
	}
	// The quarter meridian of GRS 1980 is 10001965.729 m.
	q := 6378137.0 * Mlfn(E0(es), E1(es), E2(es), E3(es), HalfPi)
	if math.Abs(q-10001965.729) > 0.01 {
		t.Errorf("quarter meridian %f", q)
	}
	if E4(0) != 1 {
		t.Errorf("E4(0) = %g", E4(0))
	}
}

func TestPhi2zRoundTrip(t *testing.T) {
	e := 0.0818191908426
	for lat := -80.0; lat <= 80; lat += 10 {
		phi := lat * D2R
		ts := SmallT(e, phi, math.Sin(phi))
		have, err := Phi2z(e, ts)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(have-phi) > 1e-10 {
			t.Errorf("lat %g: %g != %g", lat, have, phi)
		}
	}
}

func TestPhi1zRoundTrip(t *testing.T) {
	e := 0.0818191908426
	for lat := -80.0; lat <= 80; lat += 20 {
		phi := lat * D2R
		have, err := Phi1z(e, Qsfnz(e, math.Sin(phi)))
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(have-phi) > 1e-6 {
			t.Errorf("lat %g: %g != %g", lat, have, phi)
		}
	}
}

func TestNoConvergence(t *testing.T) {
	t.Run("phi1z", func(t *testing.T) {
		// q beyond its polar value has no solution.
		_, err := Phi1z(0.0818191908426, 2.5)
		if !errors.Is(err, ErrNoConvergence) {
			t.Errorf("err = %v", err)
		}
	})
	t.Run("phi2z", func(t *testing.T) {
		phi, err := Phi2z(0.08, math.NaN())
		if !errors.Is(err, ErrNoConvergence) {
			t.Errorf("err = %v", err)
		}
		if !math.IsNaN(phi) {
			t.Errorf("partial result %g returned", phi)
		}
	})
}

func TestPackedDMS(t *testing.T) {
	for _, test := range []struct {
		dms    float64
		deg    float64
		hasErr bool
	}{
		{dms: 45030000.0, deg: 45.5},
		{dms: -77030036.0, deg: -(77 + 30.0/60 + 36.0/3600)},
		{dms: 0, deg: 0},
		{dms: 360000000.0, deg: 360},
		{dms: 361000000.0, hasErr: true},
		{dms: 45061000.0, hasErr: true},
		{dms: 45000061.0, hasErr: true},
	} {
		deg, err := PackedDMSToDegrees(test.dms)
		if (err != nil) != test.hasErr {
			t.Errorf("%f: err = %v", test.dms, err)
			continue
		}
		if !test.hasErr && math.Abs(deg-test.deg) > 1e-12 {
			t.Errorf("%f: %g != %g", test.dms, deg, test.deg)
		}
	}
	r, err := PackedDMSToRadians(180000000.0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r-math.Pi) > 1e-12 {
		t.Errorf("%g != π", r)
	}
}

func TestDMS2To3(t *testing.T) {
	for _, test := range []struct{ in, want float64 }{
		{in: 1203000.0, want: 120030000.0},
		{in: -853015.5, want: -85030015.5},
		{in: 344000.0, want: 34040000.0},
	} {
		if have := DMS2To3(test.in); math.Abs(have-test.want) > 1e-6 {
			t.Errorf("DMS2To3(%f) = %f, want %f", test.in, have, test.want)
		}
	}
}

func TestSpheroid(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		major, minor, radius, reset := Spheroid(12, nil)
		if major != 6378137.0 || minor != 6356752.314245 || radius != major || reset {
			t.Errorf("%v %v %v %v", major, minor, radius, reset)
		}
	})
	t.Run("out of range", func(t *testing.T) {
		major, _, _, reset := Spheroid(40, nil)
		if major != Ellipsoids[Clarke1866].Major || !reset {
			t.Errorf("%v %v", major, reset)
		}
	})
	t.Run("user axes", func(t *testing.T) {
		major, minor, _, _ := Spheroid(-1, []float64{6378137.0, 6356752.314245})
		if major != 6378137.0 || minor != 6356752.314245 {
			t.Errorf("%v %v", major, minor)
		}
	})
	t.Run("user eccentricity", func(t *testing.T) {
		major, minor, _, _ := Spheroid(-1, []float64{6378137.0, 0.00669438})
		if math.Abs(minor-6356752.31) > 0.1 || major != 6378137.0 {
			t.Errorf("%v %v", major, minor)
		}
	})
	t.Run("user sphere", func(t *testing.T) {
		major, minor, radius, _ := Spheroid(-1, []float64{6371007.181, 0})
		if major != minor || radius != major {
			t.Errorf("%v %v %v", major, minor, radius)
		}
	})
	t.Run("defaults", func(t *testing.T) {
		_, minor, radius, _ := Spheroid(-1, []float64{0, 0})
		if minor != 6370997.0 || radius != 6370997.0 {
			t.Errorf("%v %v", minor, radius)
		}
	})
}
