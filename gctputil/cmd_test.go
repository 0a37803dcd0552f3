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

package gctputil

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/gctp"
	"github.com/spatialmodel/gctp/projtrans"
	"github.com/spatialmodel/gctp/units"
)

// utmConfig returns a configuration transforming from geographic
// degrees to UTM zone 15 on WGS 84.
func utmConfig() *viper.Viper {
	cfg := viper.New()
	cfg.Set("Source.Code", 0)
	cfg.Set("Source.Zone", 0)
	cfg.Set("Source.Units", "degrees")
	cfg.Set("Source.Spheroid", 12)
	cfg.Set("Source.Params", []string{})
	cfg.Set("Target.Code", 1)
	cfg.Set("Target.Zone", 15)
	cfg.Set("Target.Units", "meters")
	cfg.Set("Target.Spheroid", 12)
	cfg.Set("Target.Params", []string{})
	return cfg
}

func TestTransform(t *testing.T) {
	t.Run("degrees", func(t *testing.T) {
		cfg := utmConfig()
		w := new(bytes.Buffer)
		if err := Transform(cfg, strings.NewReader("-93 0\n-93 0"), w, ioutil.Discard); err != nil {
			t.Fatal(err)
		}
		want := "500000.000000 0.000000\n500000.000000 0.000000\n"
		if w.String() != want {
			t.Errorf("%q != %q", w.String(), want)
		}
	})
	t.Run("dms", func(t *testing.T) {
		cfg := utmConfig()
		cfg.Set("Source.Units", "dms")
		w := new(bytes.Buffer)
		if err := Transform(cfg, strings.NewReader("-93000000 0"), w, ioutil.Discard); err != nil {
			t.Fatal(err)
		}
		want := "500000.000000 0.000000\n"
		if w.String() != want {
			t.Errorf("%q != %q", w.String(), want)
		}
	})
	t.Run("unpaired", func(t *testing.T) {
		err := Transform(utmConfig(), strings.NewReader("-93 0 -92"), ioutil.Discard, ioutil.Discard)
		if err == nil || !strings.Contains(err.Error(), "no pair") {
			t.Errorf("unexpected error %v", err)
		}
	})
	t.Run("not a number", func(t *testing.T) {
		err := Transform(utmConfig(), strings.NewReader("-93 north"), ioutil.Discard, ioutil.Discard)
		if err == nil || !strings.Contains(err.Error(), "invalid coordinate") {
			t.Errorf("unexpected error %v", err)
		}
	})
	t.Run("illegal zone", func(t *testing.T) {
		cfg := utmConfig()
		cfg.Set("Target.Zone", 61)
		logs := new(bytes.Buffer)
		if err := Transform(cfg, strings.NewReader("-93 0"), ioutil.Discard, logs); err == nil {
			t.Fatal("expected an error")
		}
		if !strings.Contains(logs.String(), "level=error") {
			t.Errorf("error was not logged: %s", logs.String())
		}
	})
	t.Run("threadsafe only", func(t *testing.T) {
		cfg := utmConfig()
		cfg.Set("Target.Code", int(gctp.ROBIN))
		cfg.Set("Target.Zone", 0)
		cfg.Set("ThreadsafeOnly", true)
		err := Transform(cfg, strings.NewReader("-93 0"), ioutil.Discard, ioutil.Discard)
		if err == nil || !strings.Contains(err.Error(), gctp.ErrLegacyDisallowed.Error()) {
			t.Errorf("unexpected error %v", err)
		}
	})
}

func TestProjectionFile(t *testing.T) {
	f, err := os.Create("tmp_projection.toml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove("tmp_projection.toml")
	fmt.Fprint(f, `[Source]
Code = 0
Units = "degrees"

[Target]
Code = 4
Spheroid = 19
Params = [0, 0, 33000000, 45000000, -97000000, 40000000, 0, 0]
`)
	f.Close()

	cfg := utmConfig()
	cfg.Set("ProjectionFile", "tmp_projection.toml")
	w := new(bytes.Buffer)
	if err := Transform(cfg, strings.NewReader("-93 45"), w, ioutil.Discard); err != nil {
		t.Fatal(err)
	}

	lcc := projtrans.NewProjection(gctp.LAMCC, 0, units.Meter, 19,
		[]float64{0, 0, 33000000, 45000000, -97000000, 40000000, 0, 0})
	geo := projtrans.NewProjection(gctp.GEO, 0, units.Degree, 0, nil)
	tr, err := projtrans.New(geo, lcc, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer tr.Destroy()
	x, y, err := tr.Transform(-93, 45)
	if err != nil {
		t.Fatal(err)
	}
	want := fmt.Sprintf("%.6f %.6f\n", x, y)
	if w.String() != want {
		t.Errorf("%q != %q", w.String(), want)
	}
}

func TestDescribe(t *testing.T) {
	w := new(bytes.Buffer)
	if err := Describe(utmConfig(), w, ioutil.Discard); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Forward projection:",
		"UNIVERSAL TRANSVERSE MERCATOR (UTM) PROJECTION PARAMETERS:",
		"Inverse projection:",
		"GEOGRAPHIC PROJECTION PARAMETERS:",
	} {
		if !strings.Contains(w.String(), want) {
			t.Errorf("output does not contain %q:\n%s", want, w.String())
		}
	}
}

func TestCommands(t *testing.T) {
	t.Run("version", func(t *testing.T) {
		w := new(bytes.Buffer)
		Root.SetOutput(w)
		Root.SetArgs([]string{"version"})
		if err := Root.Execute(); err != nil {
			t.Fatal(err)
		}
		want := "GCTP v" + gctp.Version + "\n"
		if w.String() != want {
			t.Errorf("%q != %q", w.String(), want)
		}
	})
	t.Run("zone", func(t *testing.T) {
		w := new(bytes.Buffer)
		Root.SetOutput(w)
		Root.SetArgs([]string{"zone", "--", "-93"})
		if err := Root.Execute(); err != nil {
			t.Fatal(err)
		}
		if w.String() != "15\n" {
			t.Errorf("%q != %q", w.String(), "15\n")
		}
	})
	t.Run("zone out of range", func(t *testing.T) {
		Root.SetOutput(ioutil.Discard)
		Root.SetArgs([]string{"zone", "190"})
		if err := Root.Execute(); err == nil {
			t.Error("expected an error")
		}
	})
	t.Run("transform args", func(t *testing.T) {
		w := new(bytes.Buffer)
		Root.SetOutput(w)
		Root.SetArgs([]string{"transform", "--Target.Code=1", "--Target.Zone=15",
			"--Target.Units=meters", "--Target.Spheroid=12", "--Source.Spheroid=12", "--", "-93", "0"})
		if err := Root.Execute(); err != nil {
			t.Fatal(err)
		}
		want := "500000.000000 0.000000\n"
		if w.String() != want {
			t.Errorf("%q != %q", w.String(), want)
		}
	})
}
