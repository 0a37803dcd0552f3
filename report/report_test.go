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

package report

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"
)

func collect() (*Printer, *[]Message) {
	var msgs []Message
	return New(func(m Message) { msgs = append(msgs, m) }), &msgs
}

func TestPrinter(t *testing.T) {
	t.Run("params", func(t *testing.T) {
		p, msgs := collect()
		p.Title("LAMBERT CONFORMAL CONIC")
		p.StanParl(math.Pi/6, math.Pi/4)
		p.OffsetP(500000, 0)
		var have []string
		for _, m := range *msgs {
			have = append(have, m.Text)
		}
		want := []string{
			"LAMBERT CONFORMAL CONIC PROJECTION PARAMETERS:",
			"   1st Standard Parallel:     30.000000 degrees",
			"   2nd Standard Parallel:     45.000000 degrees",
			"   False Easting:      500000.000000 meters",
			"   False Northing:     0.000000 meters",
		}
		if !reflect.DeepEqual(have, want) {
			t.Errorf("%q != %q", have, want)
		}
	})
	t.Run("provenance", func(t *testing.T) {
		p, msgs := collect()
		p.Errorf("Illegal zone #%d", 9999)
		m := (*msgs)[0]
		if m.Level != Error {
			t.Errorf("level %v != %v", m.Level, Error)
		}
		if m.File != "report_test.go" {
			t.Errorf("file %s != report_test.go", m.File)
		}
		if m.Line == 0 {
			t.Error("missing line number")
		}
	})
}

func TestDefaultSink(t *testing.T) {
	var b bytes.Buffer
	old := Logger().Out
	Logger().Out = &b
	defer func() { Logger().Out = old }()

	SetSink(nil)
	var p Printer
	p.Infof("hello")
	p.Errorf("broken")
	out := b.String()
	if !strings.Contains(out, "GCTP Info: hello") {
		t.Errorf("missing info message in %q", out)
	}
	if !strings.Contains(out, "GCTP Error:report_test.go:") {
		t.Errorf("missing error provenance in %q", out)
	}
}

func TestSetSink(t *testing.T) {
	var got []Message
	SetSink(func(m Message) { got = append(got, m) })
	defer SetSink(nil)
	var p *Printer
	p.Infof("x=%d", 1)
	if len(got) != 1 || got[0].Text != "x=1" {
		t.Errorf("unexpected messages %v", got)
	}
}
