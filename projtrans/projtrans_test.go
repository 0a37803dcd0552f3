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
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/gctp"
	"github.com/spatialmodel/gctp/units"
	"gonum.org/v1/gonum/floats"
)

func testLogger() (*logrus.Logger, *bytes.Buffer) {
	var b bytes.Buffer
	l := logrus.New()
	l.Out = &b
	l.Formatter = &logrus.TextFormatter{DisableTimestamp: true, DisableColors: true}
	return l, &b
}

var (
	geoDeg = Projection{Code: gctp.GEO, Units: units.Degree}
	geoDMS = Projection{Code: gctp.GEO, Units: units.DMS}
	utm15  = Projection{Code: gctp.UTM, Zone: 15, Units: units.Meter, Spheroid: 12}
	som    = NewProjection(gctp.SOM, 0, units.Meter, 12, []float64{2: 5, 3: 30, 12: 1})
)

func TestDMSUnits(t *testing.T) {
	log, _ := testLogger()
	want, err := gctp.New(geoDeg.params(), utm15.params())
	if err != nil {
		t.Fatal(err)
	}
	wx, wy, err := want.Transform(-93.5, 45.25)
	if err != nil {
		t.Fatal(err)
	}

	fwd, err := New(geoDMS, utm15, log)
	if err != nil {
		t.Fatal(err)
	}
	defer fwd.Destroy()
	x, y, err := fwd.Transform(-93030000, 45015000)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(x, wx, 1e-6) || !floats.EqualWithinAbs(y, wy, 1e-6) {
		t.Errorf("(%g, %g) != (%g, %g)", x, y, wx, wy)
	}

	inv, err := New(utm15, geoDMS, log)
	if err != nil {
		t.Fatal(err)
	}
	defer inv.Destroy()
	lon, lat, err := inv.Transform(x, y)
	if err != nil {
		t.Fatal(err)
	}
	// Seconds are truncated, so compare in degrees.
	dlon, err := DMSToDeg(lon, Lon)
	if err != nil {
		t.Fatal(err)
	}
	dlat, err := DMSToDeg(lat, Lat)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(dlon, -93.5, 1e-6) || !floats.EqualWithinAbs(dlat, 45.25, 1e-6) {
		t.Errorf("(%f, %f) != (-93030000, 45015000)", lon, lat)
	}

	if _, _, err := fwd.Transform(-93030000, 91000000); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("error %v is not %v", err, ErrOutOfBounds)
	}
}

func TestSOMSwap(t *testing.T) {
	log, _ := testLogger()
	engine, err := gctp.New(geoDeg.params(), som.params())
	if err != nil {
		t.Fatal(err)
	}
	ex, ey, err := engine.Transform(-100, 40)
	if err != nil {
		t.Fatal(err)
	}

	fwd, err := New(geoDeg, som, log)
	if err != nil {
		t.Fatal(err)
	}
	x, y, err := fwd.Transform(-100, 40)
	if err != nil {
		t.Fatal(err)
	}
	if x != ey || y != -ex {
		t.Errorf("(%g, %g) != (%g, %g)", x, y, ey, -ex)
	}

	inv, err := New(som, geoDeg, log)
	if err != nil {
		t.Fatal(err)
	}
	lon, lat, err := inv.Transform(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(lon, -100, 1e-6) || !floats.EqualWithinAbs(lat, 40, 1e-6) {
		t.Errorf("(%g, %g) != (-100, 40)", lon, lat)
	}
}

func TestLogging(t *testing.T) {
	t.Run("in break", func(t *testing.T) {
		log, b := testLogger()
		tr, err := New(Projection{Code: gctp.GOOD, Units: units.Meter, Spheroid: 19}, geoDeg, log)
		if err != nil {
			t.Fatal(err)
		}
		const r = 6370997.0
		if _, _, err := tr.Transform(-0.8*r, 1.2*r); !errors.Is(err, gctp.ErrInBreak) {
			t.Errorf("error %v is not %v", err, gctp.ErrInBreak)
		}
		if !strings.Contains(b.String(), "in projection break") {
			t.Errorf("log %q", b.String())
		}
	})
	t.Run("construction", func(t *testing.T) {
		log, b := testLogger()
		if _, err := New(Projection{Code: gctp.SPCS, Zone: 9999, Units: units.Meter, Spheroid: 8}, geoDeg, log); err == nil {
			t.Fatal("zone 9999 should fail")
		}
		out := b.String()
		if !strings.Contains(out, "level=error") || !strings.Contains(out, "illegal zone") {
			t.Errorf("log %q", out)
		}
	})
	t.Run("echo", func(t *testing.T) {
		log, b := testLogger()
		if _, err := New(geoDeg, utm15, log, gctp.WithEcho()); err != nil {
			t.Fatal(err)
		}
		out := b.String()
		if !strings.Contains(out, "level=info") || !strings.Contains(out, "UNIVERSAL TRANSVERSE MERCATOR") {
			t.Errorf("log %q", out)
		}
	})
	t.Run("nil", func(t *testing.T) {
		var tr *Transformation
		if _, _, err := tr.Transform(0, 0); err == nil {
			t.Error("nil transformation should fail")
		}
		tr.Destroy()
	})
}

func TestDMS(t *testing.T) {
	for _, test := range []struct {
		deg float64
		b   Bound
		dms float64
	}{
		{deg: 45.2625, b: Lat, dms: 45015045},
		{deg: -170.5, b: Lon, dms: -170030000},
		{deg: 0, b: Degrees, dms: 0},
		{deg: 359.75, b: Degrees, dms: 359045000},
	} {
		have, err := DegToDMS(test.deg, test.b)
		if err != nil {
			t.Fatal(err)
		}
		if have != test.dms {
			t.Errorf("DegToDMS(%g): %f != %f", test.deg, have, test.dms)
		}
		deg, err := DMSToDeg(test.dms, test.b)
		if err != nil {
			t.Fatal(err)
		}
		if !floats.EqualWithinAbs(deg, test.deg, 1e-9) {
			t.Errorf("DMSToDeg(%f): %g != %g", test.dms, deg, test.deg)
		}
	}
	for _, test := range []struct {
		deg float64
		b   Bound
	}{
		{91, Lat},
		{-180.5, Lon},
		{-1, Degrees},
	} {
		if _, err := DegToDMS(test.deg, test.b); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("DegToDMS(%g, %s): error %v is not %v", test.deg, test.b, err, ErrOutOfBounds)
		}
	}
	if _, err := DMSToDeg(10075000, Lon); err == nil {
		t.Error("75 minutes should fail")
	}
	if _, err := DMSToDeg(-90000001, Lat); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("error %v is not %v", err, ErrOutOfBounds)
	}
}

func TestCross180(t *testing.T) {
	for _, test := range []struct {
		u    units.Unit
		want float64
	}{
		{units.Radian, 2 * math.Pi},
		{units.Second, 1296000},
		{units.Degree, 360},
		{units.DMS, 360000000},
		{units.Meter, 0},
		{units.Feet, 0},
	} {
		if have := OnceAround(test.u); have != test.want {
			t.Errorf("OnceAround(%s) = %g, want %g", test.u, have, test.want)
		}
	}

	for _, test := range []struct {
		name string
		u    units.Unit
		lons []float64
		want bool
	}{
		{"crossing", units.Degree, []float64{179, -179, 178.5, -178.5}, true},
		{"prime meridian", units.Degree, []float64{-1, 1, -2, 2}, false},
		{"all negative", units.Degree, []float64{-179, -170, -175, -172}, false},
		{"radians", units.Radian, []float64{3.1, -3.1, 3.05, -3.05}, true},
		{"dms", units.DMS, []float64{179000000, -179000000, 178000000, -178000000}, true},
		{"meters", units.Meter, []float64{179, -179, 178, -178}, false},
	} {
		t.Run(test.name, func(t *testing.T) {
			if have := DoesCross180(test.u, test.lons); have != test.want {
				t.Errorf("%v != %v", have, test.want)
			}
		})
	}

	for _, test := range []struct {
		lon  float64
		u    units.Unit
		want float64
	}{
		{-170, units.Degree, 190},
		{-math.Pi / 2, units.Radian, 1.5 * math.Pi},
		{-5030000, units.DMS, 354030000},
		{-170030000, units.DMS, 189030000},
		{10000000, units.DMS, 370000000},
	} {
		have, err := AddOnceAround(test.lon, test.u)
		if err != nil {
			t.Fatal(err)
		}
		if !floats.EqualWithinAbs(have, test.want, 1e-6) {
			t.Errorf("AddOnceAround(%f, %s) = %f, want %f", test.lon, test.u, have, test.want)
		}
	}
	if _, err := AddOnceAround(1000, units.Meter); err == nil {
		t.Error("meters should not wrap around")
	}
}
