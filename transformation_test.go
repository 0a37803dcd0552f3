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
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/ctessum/geom/proj"
	"github.com/spatialmodel/gctp/legacy"
	"github.com/spatialmodel/gctp/numeric"
	"github.com/spatialmodel/gctp/report"
	"github.com/spatialmodel/gctp/units"
	"gonum.org/v1/gonum/floats"
)

const (
	sphere = 19 // Sphere of radius 6370997 m.
	wgs84  = 12
)

// dms packs whole degrees.
func dms(deg float64) float64 { return deg * 1e6 }

var geoDeg = Params{Code: GEO, Units: units.Degree}

type point struct{ lon, lat float64 }

func collect() (Option, *[]report.Message) {
	var msgs []report.Message
	var mu sync.Mutex
	return WithSink(func(m report.Message) {
		mu.Lock()
		msgs = append(msgs, m)
		mu.Unlock()
	}), &msgs
}

// roundTrip projects each point from geographic degrees into s and back.
func roundTrip(t *testing.T, s Params, pts []point) {
	t.Helper()
	fwd, err := New(geoDeg, s)
	if err != nil {
		t.Fatal(err)
	}
	defer fwd.Destroy()
	inv, err := New(s, geoDeg)
	if err != nil {
		t.Fatal(err)
	}
	defer inv.Destroy()
	for _, p := range pts {
		x, y, err := fwd.Transform(p.lon, p.lat)
		if err != nil {
			t.Errorf("forward (%g, %g): %v", p.lon, p.lat, err)
			continue
		}
		if math.IsNaN(x) || math.IsNaN(y) {
			t.Errorf("forward (%g, %g) = (%g, %g)", p.lon, p.lat, x, y)
			continue
		}
		lon, lat, err := inv.Transform(x, y)
		if err != nil {
			t.Errorf("inverse (%g, %g) from (%g, %g): %v", x, y, p.lon, p.lat, err)
			continue
		}
		if !floats.EqualWithinAbs(lon, p.lon, 1e-6) || !floats.EqualWithinAbs(lat, p.lat, 1e-6) {
			t.Errorf("round trip (%g, %g) != (%g, %g)", lon, lat, p.lon, p.lat)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	conus := []point{{-100, 40}, {-75, 30}, {-120, 48}, {-96, 23}}
	// The ellipsoidal transverse Mercator series only holds a few degrees
	// either side of the central meridian.
	nearCM := []point{{-96, 40}, {-100, 45}, {-92, 30}, {-96, 23}}
	for _, test := range []struct {
		name string
		s    Params
		pts  []point
	}{
		{"utm", Params{Code: UTM, Zone: 15, Units: units.Meter, Spheroid: wgs84}, []point{{-93, 45}, {-95, 30}, {-90, 60}, {-93, 0}}},
		{"utm south", Params{Code: UTM, Zone: -19, Units: units.Meter, Spheroid: wgs84}, []point{{-69, -33}, {-70.5, -10}}},
		{"utm derived zone", Params{Code: UTM, Units: units.Meter, Spheroid: wgs84, P: [NumParams]float64{dms(-93), dms(45)}}, []point{{-93, 45}, {-91, 47}}},
		{"utm clarke default", Params{Code: UTM, Zone: 15, Units: units.Meter, Spheroid: -1}, []point{{-93, 45}}},
		{"transverse mercator", Params{Code: TM, Units: units.Meter, Spheroid: 0, P: [NumParams]float64{2: 0.9996, 4: dms(-96), 6: 500000}}, nearCM},
		{"transverse mercator sphere", Params{Code: TM, Units: units.Meter, Spheroid: sphere, P: [NumParams]float64{2: 1, 4: dms(-96), 5: dms(30)}}, conus},
		{"lambert conformal conic", Params{Code: LAMCC, Units: units.Meter, Spheroid: 0, P: [NumParams]float64{2: dms(33), 3: dms(45), 4: dms(-96), 5: dms(23)}}, conus},
		{"lambert conformal conic one parallel", Params{Code: LAMCC, Units: units.Meter, Spheroid: 8, P: [NumParams]float64{2: dms(40), 3: dms(40), 4: dms(-96), 5: dms(40), 6: 1000, 7: 2000}}, conus},
		{"lambert conformal conic south", Params{Code: LAMCC, Units: units.Meter, Spheroid: wgs84, P: [NumParams]float64{2: dms(-20), 3: dms(-40), 4: dms(135), 5: dms(-30)}}, []point{{135, -25}, {120, -35}, {150, -15}}},
		{"polar stereographic north", Params{Code: PS, Units: units.Meter, Spheroid: wgs84, P: [NumParams]float64{4: dms(-45), 5: dms(70)}}, []point{{-45, 80}, {100, 70}, {0, 60}}},
		{"polar stereographic south", Params{Code: PS, Units: units.Meter, Spheroid: wgs84, P: [NumParams]float64{4: 0, 5: dms(-71)}}, []point{{30, -80}, {-150, -65}}},
		{"polar stereographic pole", Params{Code: PS, Units: units.Meter, Spheroid: sphere, P: [NumParams]float64{4: dms(-100), 5: dms(90)}}, []point{{-100, 60}, {20, 85}}},
		{"polyconic", Params{Code: POLYC, Units: units.Meter, Spheroid: 0, P: [NumParams]float64{4: dms(-96), 5: dms(30)}}, append(conus, point{-100, 0})},
		{"hotine two points", Params{Code: HOM, Units: units.Meter, Spheroid: 0, P: [NumParams]float64{2: 0.9996, 5: dms(40), 8: dms(-110), 9: dms(35), 10: dms(-90), 11: dms(45)}}, []point{{-100, 40}, {-95, 42}, {-105, 37}}},
		{"hotine azimuth", Params{Code: HOM, Units: units.Meter, Spheroid: 0, P: [NumParams]float64{2: 0.9999, 3: dms(45), 4: dms(-100), 5: dms(40), 12: 1}}, []point{{-100, 40}, {-98, 41}, {-103, 38}}},
		{"space oblique mercator landsat", Params{Code: SOM, Units: units.Meter, Spheroid: wgs84, P: [NumParams]float64{2: 5, 3: 30, 12: 1}}, []point{{-100, 40}, {-95, 30}, {-105, 45}, {-98, 35}}},
		{"state plane", Params{Code: SPCS, Zone: 101, Units: units.Meter, Spheroid: 8}, []point{{-85.8, 32.5}, {-86, 34}}},
	} {
		t.Run(test.name, func(t *testing.T) {
			roundTrip(t, test.s, test.pts)
		})
	}
}

func TestGeographicIdentity(t *testing.T) {
	for _, test := range []struct {
		in, out      units.Unit
		x, y         float64
		wantX, wantY float64
	}{
		{units.Degree, units.Degree, -100, 40, -100, 40},
		{units.Degree, units.Radian, 180, -90, math.Pi, -math.Pi / 2},
		{units.Radian, units.Second, math.Pi / 180, 0, 3600, 0},
	} {
		tr, err := New(Params{Code: GEO, Units: test.in}, Params{Code: GEO, Units: test.out})
		if err != nil {
			t.Fatal(err)
		}
		x, y, err := tr.Transform(test.x, test.y)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(x-test.wantX) > 1e-9 || math.Abs(y-test.wantY) > 1e-9 {
			t.Errorf("%s to %s: (%g, %g) != (%g, %g)", test.in, test.out, x, y, test.wantX, test.wantY)
		}
	}
}

func TestUTMZone(t *testing.T) {
	if z := CalcUTMZone(-93); z != 15 {
		t.Errorf("zone %d != 15", z)
	}
	tr, err := New(geoDeg, Params{Code: UTM, Units: units.Meter, Spheroid: wgs84, P: [NumParams]float64{dms(-93), dms(-45)}})
	if err != nil {
		t.Fatal(err)
	}
	zone := tr.forward.(*TransverseMercator).Zone()
	if zone != -15 {
		t.Errorf("zone %d != -15", zone)
	}
	x, y, err := tr.Transform(-93, 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(x-500000) > 1e-6 || math.Abs(y-10000000) > 1e-6 {
		t.Errorf("(%g, %g) != (500000, 10000000)", x, y)
	}
	sink, _ := collect()
	if _, err := New(geoDeg, Params{Code: UTM, Zone: 61, Units: units.Meter}, sink); err == nil {
		t.Error("zone 61 should fail")
	}
}

func TestOutputUnits(t *testing.T) {
	m := Params{Code: UTM, Zone: 15, Units: units.Meter, Spheroid: wgs84}
	ft := m
	ft.Units = units.Feet
	tm, err := New(geoDeg, m)
	if err != nil {
		t.Fatal(err)
	}
	tf, err := New(geoDeg, ft)
	if err != nil {
		t.Fatal(err)
	}
	xm, ym, _ := tm.Transform(-92, 44)
	xf, yf, _ := tf.Transform(-92, 44)
	const usFoot = .3048006096012192
	if math.Abs(xf*usFoot-xm) > 1e-6 || math.Abs(yf*usFoot-ym) > 1e-6 {
		t.Errorf("(%g, %g) ft != (%g, %g) m", xf, yf, xm, ym)
	}
}

func TestErrors(t *testing.T) {
	utm := Params{Code: UTM, Zone: 15, Units: units.Meter, Spheroid: wgs84}
	albers := Params{Code: ALBERS, Units: units.Meter, Spheroid: 8, P: [NumParams]float64{2: 29030000, 3: 45030000, 4: dms(-96), 5: dms(23)}}
	for _, test := range []struct {
		name     string
		src, dst Params
		opts     []Option
		want     error
	}{
		{"illegal source", Params{Code: 32}, geoDeg, nil, ErrIllegalCode},
		{"illegal target", geoDeg, Params{Code: -1}, nil, ErrIllegalCode},
		{"user defined", geoDeg, Params{Code: USDEF}, nil, ErrIllegalCode},
		{"geographic dms", Params{Code: GEO, Units: units.DMS}, utm, nil, units.ErrIncompatible},
		{"projected degrees", geoDeg, Params{Code: UTM, Zone: 15, Units: units.Degree}, nil, units.ErrIncompatible},
		{"projected dms", geoDeg, Params{Code: UTM, Zone: 15, Units: units.DMS}, nil, units.ErrIncompatible},
		{"projected dms source", Params{Code: UTM, Zone: 15, Units: units.DMS}, geoDeg, nil, units.ErrIncompatible},
		{"threadsafe only", geoDeg, albers, []Option{ThreadsafeOnly()}, ErrLegacyDisallowed},
		{"ported with legacy", utm, albers, nil, legacy.ErrPorted},
	} {
		t.Run(test.name, func(t *testing.T) {
			sink, msgs := collect()
			_, err := New(test.src, test.dst, append(test.opts, sink)...)
			if !errors.Is(err, test.want) {
				t.Errorf("error %v is not %v", err, test.want)
			}
			if len(*msgs) != 1 || (*msgs)[0].Level != report.Error {
				t.Errorf("messages %v", *msgs)
			}
		})
	}
	t.Run("lambert opposite parallels", func(t *testing.T) {
		sink, _ := collect()
		_, err := New(geoDeg, Params{Code: LAMCC, Units: units.Meter, P: [NumParams]float64{2: dms(30), 3: dms(-30)}}, sink)
		if err == nil || !strings.Contains(err.Error(), "opposite sides of equator") {
			t.Errorf("error %v", err)
		}
	})
	t.Run("bad dms", func(t *testing.T) {
		sink, _ := collect()
		if _, err := New(geoDeg, Params{Code: TM, Units: units.Meter, P: [NumParams]float64{2: 1, 4: 10075000}}, sink); err == nil {
			t.Error("minutes of 75 should fail")
		}
	})
	t.Run("hotine equal latitudes", func(t *testing.T) {
		sink, _ := collect()
		_, err := New(geoDeg, Params{Code: HOM, Units: units.Meter, P: [NumParams]float64{2: 1, 5: dms(40), 8: dms(-110), 9: dms(40), 10: dms(-90), 11: dms(40)}}, sink)
		if err == nil {
			t.Error("points at the same latitude should fail")
		}
	})
	t.Run("global threadsafe only", func(t *testing.T) {
		SetThreadsafeOnly(true)
		defer SetThreadsafeOnly(false)
		sink, _ := collect()
		if _, err := New(geoDeg, albers, sink); !errors.Is(err, ErrLegacyDisallowed) {
			t.Errorf("error %v is not %v", err, ErrLegacyDisallowed)
		}
		if _, err := New(geoDeg, utm, sink); err != nil {
			t.Error(err)
		}
	})
}

func TestPointErrors(t *testing.T) {
	t.Run("lambert pole", func(t *testing.T) {
		tr, err := New(geoDeg, Params{Code: LAMCC, Units: units.Meter, Spheroid: 0, P: [NumParams]float64{2: dms(33), 3: dms(45), 4: dms(-96), 5: dms(23)}})
		if err != nil {
			t.Fatal(err)
		}
		if _, _, err := tr.Transform(-96, -90); !errors.Is(err, ErrCannotProject) {
			t.Errorf("error %v is not %v", err, ErrCannotProject)
		}
		if _, _, err := tr.Transform(-96, 90); err != nil {
			t.Errorf("north pole: %v", err)
		}
	})
	t.Run("transverse mercator infinity", func(t *testing.T) {
		tr, err := New(geoDeg, Params{Code: TM, Units: units.Meter, Spheroid: sphere, P: [NumParams]float64{2: 1}})
		if err != nil {
			t.Fatal(err)
		}
		if _, _, err := tr.Transform(90, 0); !errors.Is(err, ErrInfinity) {
			t.Errorf("error %v is not %v", err, ErrInfinity)
		}
	})
	t.Run("goode break", func(t *testing.T) {
		const r = 6370997.0
		tr, err := New(Params{Code: GOOD, Units: units.Meter, Spheroid: sphere}, geoDeg)
		if err != nil {
			t.Fatal(err)
		}
		if _, _, err := tr.Transform(-0.8*r, 1.2*r); !errors.Is(err, ErrInBreak) {
			t.Errorf("error %v is not %v", err, ErrInBreak)
		}
	})
	// Points far outside the domain of an iterative inverse fail as a
	// whole, with no partial coordinates.
	for _, test := range []struct {
		name string
		src  Params
		x, y float64
		want string
	}{
		{"polyconic no convergence", Params{Code: POLYC, Units: units.Meter, Spheroid: 0, P: [NumParams]float64{4: dms(-96), 5: dms(30)}}, 1e7, 3e7, "phi4z"},
		{"space oblique mercator no convergence", Params{Code: SOM, Units: units.Meter, Spheroid: wgs84, P: [NumParams]float64{2: 5, 3: 30, 12: 1}}, 0, 1e8, "space oblique mercator: inverse"},
	} {
		t.Run(test.name, func(t *testing.T) {
			tr, err := New(test.src, geoDeg)
			if err != nil {
				t.Fatal(err)
			}
			defer tr.Destroy()
			x, y, err := tr.Transform(test.x, test.y)
			if !errors.Is(err, numeric.ErrNoConvergence) {
				t.Fatalf("error %v is not %v", err, numeric.ErrNoConvergence)
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("error %q does not contain %q", err, test.want)
			}
			if x != 0 || y != 0 {
				t.Errorf("(%g, %g) != (0, 0)", x, y)
			}
		})
	}
}

func TestLCCConeConstant(t *testing.T) {
	for _, test := range []struct {
		name       string
		lat1, lat2 float64
	}{
		{"north", 40, 40},
		{"south", -14.27, -14.27},
	} {
		t.Run(test.name, func(t *testing.T) {
			l, err := NewLCC(LCCConfig{
				SemiMajor: 6378137, SemiMinor: 6356752.314140356,
				Lat1: test.lat1 * numeric.D2R, Lat2: test.lat2 * numeric.D2R,
				CenterLon: -96 * numeric.D2R, OriginLat: test.lat1 * numeric.D2R,
			})
			if err != nil {
				t.Fatal(err)
			}
			if want := math.Sin(test.lat1 * numeric.D2R); !floats.EqualWithinAbs(l.ConeConstant(), want, 1e-15) {
				t.Errorf("%v != %v", l.ConeConstant(), want)
			}
		})
	}
	t.Run("secant", func(t *testing.T) {
		l, err := NewLCC(LCCConfig{
			SemiMajor: 6378137, SemiMinor: 6356752.314140356,
			Lat1: 33 * numeric.D2R, Lat2: 45 * numeric.D2R, CenterLon: -96 * numeric.D2R,
		})
		if err != nil {
			t.Fatal(err)
		}
		// The cone constant of a secant cone lies between the sines of its
		// standard parallels.
		if ns := l.ConeConstant(); ns <= math.Sin(33*numeric.D2R) || ns >= math.Sin(45*numeric.D2R) {
			t.Errorf("cone constant %v", ns)
		}
	})
}

func TestLegacyDelegation(t *testing.T) {
	albers := Params{Code: ALBERS, Units: units.Meter, Spheroid: 8, P: [NumParams]float64{2: 29030000, 3: 45030000, 4: dms(-96), 5: dms(23)}}
	c := legacy.NewCache()
	tr, err := New(geoDeg, albers, WithLegacyCache(c))
	if err != nil {
		t.Fatal(err)
	}
	if !tr.Legacy() {
		t.Fatal("albers should use the legacy dispatcher")
	}
	x, y, err := tr.Transform(-100, 40)
	if err != nil {
		t.Fatal(err)
	}
	wx, wy, err := legacy.NewCache().Transform(-100, 40, geoDeg.system(), albers.system())
	if err != nil {
		t.Fatal(err)
	}
	if x != wx || y != wy {
		t.Errorf("(%g, %g) != (%g, %g)", x, y, wx, wy)
	}
	if c.Inits() != 1 {
		t.Errorf("inits %d != 1", c.Inits())
	}

	utm, err := New(geoDeg, Params{Code: UTM, Zone: 15, Units: units.Meter, Spheroid: wgs84})
	if err != nil {
		t.Fatal(err)
	}
	if utm.Legacy() {
		t.Error("utm should not use the legacy dispatcher")
	}
}

func TestStatePlane(t *testing.T) {
	sp, err := New(geoDeg, Params{Code: SPCS, Zone: 101, Units: units.Meter, Spheroid: 8})
	if err != nil {
		t.Fatal(err)
	}
	// Alabama East is a transverse mercator zone.
	tm, err := New(geoDeg, Params{Code: TM, Units: units.Meter, Spheroid: 8,
		P: [NumParams]float64{2: 0.99996, 4: -85050000, 5: 30030000, 6: 200000}})
	if err != nil {
		t.Fatal(err)
	}
	x1, y1, err := sp.Transform(-85.8, 32.5)
	if err != nil {
		t.Fatal(err)
	}
	x2, y2, err := tm.Transform(-85.8, 32.5)
	if err != nil {
		t.Fatal(err)
	}
	if x1 != x2 || y1 != y2 {
		t.Errorf("(%g, %g) != (%g, %g)", x1, y1, x2, y2)
	}
	if z := sp.forward.(*StatePlane).Zone(); z.Name != "ALABAMA EAST" {
		t.Errorf("zone name %s", z.Name)
	}

	t.Run("alaska hotine", func(t *testing.T) {
		roundTrip(t, Params{Code: SPCS, Zone: 5001, Units: units.Meter, Spheroid: 0}, []point{{-133.67, 57}, {-135, 56.5}})
	})
	t.Run("guam polyconic", func(t *testing.T) {
		roundTrip(t, Params{Code: SPCS, Zone: 5400, Units: units.Meter, Spheroid: 0}, []point{{144.75, 13.47}})
	})
	for _, test := range []struct {
		name string
		p    Params
	}{
		{"illegal zone", Params{Code: SPCS, Zone: 9999, Units: units.Meter, Spheroid: 8}},
		{"zero zone", Params{Code: SPCS, Zone: 0, Units: units.Meter, Spheroid: 8}},
		{"illegal spheroid", Params{Code: SPCS, Zone: 101, Units: units.Meter, Spheroid: wgs84}},
	} {
		t.Run(test.name, func(t *testing.T) {
			sink, _ := collect()
			if _, err := New(geoDeg, test.p, sink); err == nil {
				t.Error("should fail")
			}
		})
	}
}

// unpack converts a packed DDDMMSS.SSS zone table angle to degrees.
func unpack(t *testing.T, v float64) float64 {
	t.Helper()
	d, err := numeric.PackedDMSToDegrees(numeric.DMS2To3(v))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

// TestStatePlaneZones builds every zone of both datums and projects a
// point near the origin of each zone there and back.
func TestStatePlaneZones(t *testing.T) {
	if len(nad27Zones) != len(nad83Zones) {
		t.Fatalf("%d != %d rows", len(nad27Zones), len(nad83Zones))
	}
	for i := range nad27Zones {
		if nad27Zones[i].ID != nad83Zones[i].ID {
			t.Errorf("row %d: zone %d != %d", i, nad27Zones[i].ID, nad83Zones[i].ID)
		}
	}
	for _, test := range []struct {
		datum    Datum
		spheroid int
		zones    []StatePlaneZone
		valid    int
	}{
		{NAD27, 0, nad27Zones, 134},
		{NAD83, 8, nad83Zones, 123},
	} {
		valid := 0
		for _, z := range test.zones {
			z := z
			p := Params{Code: SPCS, Zone: z.ID, Units: units.Meter, Spheroid: test.spheroid}
			t.Run(fmt.Sprintf("%d/%d %s", test.datum, z.ID, z.Name), func(t *testing.T) {
				if z.Kind == spInvalid {
					if _, ok := LookupZone(test.datum, z.ID); ok {
						t.Error("invalid row should not resolve")
					}
					sink, _ := collect()
					if _, err := New(geoDeg, p, sink); err == nil || !strings.Contains(err.Error(), "illegal zone") {
						t.Errorf("unexpected error %v", err)
					}
					return
				}
				if _, ok := LookupZone(test.datum, z.ID); !ok {
					t.Fatal("zone does not resolve")
				}
				lon, lat := unpack(t, z.Table[2]), unpack(t, z.Table[6])+1
				if z.Kind == spPolyconic {
					lat = unpack(t, z.Table[3]) + 0.1
				}
				roundTrip(t, p, []point{{lon, lat}})
			})
			if z.Kind != spInvalid {
				valid++
			}
		}
		if valid != test.valid {
			t.Errorf("NAD%d: %d != %d zones", test.datum, valid, test.valid)
		}
	}

	// Several states renumbered their zones between the two datums.
	for _, test := range []struct {
		datum Datum
		id    int
		ok    bool
	}{
		{NAD27, 901, true},
		{NAD27, 1601, true},
		{NAD27, 3104, true},
		{NAD27, 4901, true},
		{NAD27, 2601, true},
		{NAD27, 2600, false},
		{NAD83, 2600, true},
		{NAD83, 2601, false},
		{NAD83, 3104, true},
		{NAD83, 5400, false},
	} {
		if _, ok := LookupZone(test.datum, test.id); ok != test.ok {
			t.Errorf("NAD%d zone %d: %v != %v", test.datum, test.id, ok, test.ok)
		}
	}
}

// TestProj compares transformations with the proj package.
func TestProj(t *testing.T) {
	longlat, err := proj.Parse("+proj=longlat")
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		name string
		proj string
		p    Params
		pts  []point
	}{
		{
			name: "wrf lambert",
			proj: "+proj=lcc +lat_1=33.000000 +lat_2=45.000000 +lat_0=40.000000 +lon_0=-97.000000 +x_0=0 +y_0=0 +a=6370997.000000 +b=6370997.000000 +to_meter=1",
			p:    Params{Code: LAMCC, Units: units.Meter, Spheroid: sphere, P: [NumParams]float64{2: dms(33), 3: dms(45), 4: dms(-97), 5: dms(40)}},
			pts:  []point{{-97, 40}, {-120, 48}, {-75, 28}, {-100, 35}},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			sr, err := proj.Parse(test.proj)
			if err != nil {
				t.Fatal(err)
			}
			want, err := longlat.NewTransform(sr)
			if err != nil {
				t.Fatal(err)
			}
			have, err := New(geoDeg, test.p)
			if err != nil {
				t.Fatal(err)
			}
			for _, p := range test.pts {
				wx, wy, err := want(p.lon, p.lat)
				if err != nil {
					t.Fatal(err)
				}
				x, y, err := have.Transform(p.lon, p.lat)
				if err != nil {
					t.Fatal(err)
				}
				if math.Abs(x-wx) > 1e-3 || math.Abs(y-wy) > 1e-3 {
					t.Errorf("(%g, %g): (%g, %g) != (%g, %g)", p.lon, p.lat, x, y, wx, wy)
				}
			}
		})
	}
}

// TestUTMKnownValues compares UTM zone 15 on WGS 84 with coordinates
// from the Krüger series, which is exact to well under a millimeter.
func TestUTMKnownValues(t *testing.T) {
	tr, err := New(geoDeg, Params{Code: UTM, Zone: 15, Units: units.Meter, Spheroid: wgs84})
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		lon, lat, x, y float64
	}{
		{-93, 45, 500000, 4982950.4002},
		{-95, 30, 307084.8948, 3320469.2865},
		{-90, 60, 667294.8211, 6655205.4836},
	} {
		x, y, err := tr.Transform(test.lon, test.lat)
		if err != nil {
			t.Fatal(err)
		}
		if !floats.EqualWithinAbs(x, test.x, 1e-3) || !floats.EqualWithinAbs(y, test.y, 1e-3) {
			t.Errorf("(%g, %g): (%.4f, %.4f) != (%.4f, %.4f)", test.lon, test.lat, x, y, test.x, test.y)
		}
	}
}

func TestDescribe(t *testing.T) {
	sink, msgs := collect()
	if _, err := New(geoDeg, Params{Code: UTM, Zone: 15, Units: units.Meter, Spheroid: wgs84}, sink, WithEcho()); err != nil {
		t.Fatal(err)
	}
	var have []string
	for _, m := range *msgs {
		have = append(have, m.Text)
	}
	if len(have) != 9 {
		t.Fatalf("%d messages: %q", len(have), have)
	}
	for i, want := range map[int]string{
		0: "Forward projection:",
		1: "UNIVERSAL TRANSVERSE MERCATOR (UTM) PROJECTION PARAMETERS:",
		2: "   Zone:      15",
		3: "   Semi-Major Axis of Ellipsoid:     6378137.000000 meters",
		6: "   Longitude of Central Meridian:     -93.000000 degrees",
		7: "Inverse projection:",
		8: "GEOGRAPHIC PROJECTION PARAMETERS:",
	} {
		if have[i] != want {
			t.Errorf("message %d: %q != %q", i, have[i], want)
		}
	}

	t.Run("legacy", func(t *testing.T) {
		sink, msgs := collect()
		albers := Params{Code: ALBERS, Units: units.Meter, Spheroid: 8, P: [NumParams]float64{2: 29030000, 3: 45030000, 4: dms(-96), 5: dms(23)}}
		tr, err := New(geoDeg, albers, sink)
		if err != nil {
			t.Fatal(err)
		}
		tr.Describe()
		if len(*msgs) < 3 {
			t.Fatalf("%d messages", len(*msgs))
		}
		if have, want := (*msgs)[1].Text, "ALBERS CONICAL EQUAL-AREA PROJECTION PARAMETERS:"; have != want {
			t.Errorf("%q != %q", have, want)
		}
		if have, want := (*msgs)[len(*msgs)-1].Text, "GEOGRAPHIC PROJECTION PARAMETERS:"; have != want {
			t.Errorf("%q != %q", have, want)
		}
	})

	t.Run("legacy echo", func(t *testing.T) {
		sink, msgs := collect()
		albers := Params{Code: ALBERS, Units: units.Meter, Spheroid: 8, P: [NumParams]float64{2: 29030000, 3: 45030000, 4: dms(-96), 5: dms(23)}}
		tr, err := New(geoDeg, albers, sink, WithEcho())
		if err != nil {
			t.Fatal(err)
		}
		if tr.legacy.Report == nil {
			t.Fatal("the legacy cache does not echo")
		}
		if n := tr.legacy.Inits(); n != 1 {
			t.Errorf("%d initializations", n)
		}
		var have []string
		for _, m := range *msgs {
			have = append(have, m.Text)
		}
		if len(have) != 12 {
			t.Fatalf("%d messages: %q", len(have), have)
		}
		for i, want := range map[int]string{
			0:  "Forward projection:",
			1:  "ALBERS CONICAL EQUAL-AREA PROJECTION PARAMETERS:",
			10: "Inverse projection:",
			11: "GEOGRAPHIC PROJECTION PARAMETERS:",
		} {
			if have[i] != want {
				t.Errorf("message %d: %q != %q", i, have[i], want)
			}
		}
		// The projection is echoed once, not again when it is first used.
		if _, _, err := tr.Transform(-100, 40); err != nil {
			t.Fatal(err)
		}
		if len(*msgs) != 12 {
			t.Errorf("%d messages after transforming", len(*msgs))
		}
	})
}

func TestDestroy(t *testing.T) {
	tr, err := New(geoDeg, Params{Code: UTM, Zone: 15, Units: units.Meter, Spheroid: wgs84})
	if err != nil {
		t.Fatal(err)
	}
	tr.Destroy()
	tr.Destroy()
	if _, _, err := tr.Transform(-93, 45); err != ErrDestroyed {
		t.Errorf("error %v != %v", err, ErrDestroyed)
	}
	var nilT *Transformation
	nilT.Destroy()
	if _, _, err := nilT.Transform(0, 0); err != ErrDestroyed {
		t.Errorf("error %v != %v", err, ErrDestroyed)
	}
}

func TestConcurrentTransform(t *testing.T) {
	tr, err := New(geoDeg, Params{Code: LAMCC, Units: units.Meter, Spheroid: 0, P: [NumParams]float64{2: dms(33), 3: dms(45), 4: dms(-96), 5: dms(23)}})
	if err != nil {
		t.Fatal(err)
	}
	const n = 200
	type xy struct{ x, y float64 }
	want := make([]xy, n)
	for i := range want {
		want[i].x, want[i].y, _ = tr.Transform(-120+float64(i)*0.25, 25+float64(i)*0.1)
	}
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < n; i++ {
				x, y, err := tr.Transform(-120+float64(i)*0.25, 25+float64(i)*0.1)
				if err != nil {
					t.Error(err)
					return
				}
				if x != want[i].x || y != want[i].y {
					t.Errorf("point %d: (%g, %g) != (%g, %g)", i, x, y, want[i].x, want[i].y)
					return
				}
			}
		}()
	}
	wg.Wait()
}
