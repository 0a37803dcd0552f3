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

// Package projtrans wraps gctp transformations for callers that keep
// their coordinates in packed DMS or in the axis order of Space Oblique
// Mercator image grids, and logs the messages of the engine through
// logrus.
package projtrans

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/gctp"
	"github.com/spatialmodel/gctp/report"
	"github.com/spatialmodel/gctp/units"
)

// Projection describes a coordinate system in the positional form used
// by image metadata.
type Projection struct {
	Code     gctp.Code
	Zone     int
	Units    units.Unit
	Spheroid int
	Params   [gctp.NumParams]float64
}

// NewProjection returns a Projection holding up to the first 15 values
// of params.
func NewProjection(code gctp.Code, zone int, u units.Unit, spheroid int, params []float64) Projection {
	p := Projection{Code: code, Zone: zone, Units: u, Spheroid: spheroid}
	copy(p.Params[:], params)
	return p
}

func (p Projection) params() gctp.Params {
	return gctp.Params{Code: p.Code, Zone: p.Zone, Units: p.Units, Spheroid: p.Spheroid, P: p.Params}
}

// Sink returns a message sink that logs engine messages to log. Info
// messages are logged at the info level, errors at the error level and
// anything else as a warning.
func Sink(log logrus.FieldLogger) report.Sink {
	return func(m report.Message) {
		e := log.WithFields(logrus.Fields{
			"file": m.File,
			"line": m.Line,
		})
		switch m.Level {
		case report.Info:
			e.Info(m.Text)
		case report.Error:
			e.Error(m.Text)
		default:
			e.Warn(m.Text)
		}
	}
}

// OnlyAllowThreadsafe makes every transformation created afterwards
// fail rather than use the projections that are not threadsafe.
// Programs that transform from more than one goroutine should call it
// first.
func OnlyAllowThreadsafe() { gctp.SetThreadsafeOnly(true) }

// Transformation converts coordinates between two Projections.
type Transformation struct {
	t *gctp.Transformation

	srcSOM, dstSOM bool
	srcDMS, dstDMS bool

	log logrus.FieldLogger
}

// New creates a transformation from src to dst. Messages are logged to
// log, or to the standard logrus logger when log is nil.
func New(src, dst Projection, log logrus.FieldLogger, opts ...gctp.Option) (*Transformation, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	t := &Transformation{
		srcSOM: src.Code == gctp.SOM,
		dstSOM: dst.Code == gctp.SOM,
		log:    log,
	}

	// DMS values are converted to degrees here; the engine does not
	// accept them.
	s, d := src.params(), dst.params()
	if s.Units == units.DMS {
		s.Units = units.Degree
		t.srcDMS = true
	}
	if d.Units == units.DMS {
		d.Units = units.Degree
		t.dstDMS = true
	}

	opts = append([]gctp.Option{gctp.WithSink(Sink(log))}, opts...)
	var err error
	if t.t, err = gctp.New(s, d, opts...); err != nil {
		log.Error("projtrans: failed creating a projection transformation")
		return nil, fmt.Errorf("projtrans: %w", err)
	}
	return t, nil
}

// Transform converts (inX, inY) from the source to the target
// projection.
func (t *Transformation) Transform(inX, inY float64) (outX, outY float64, err error) {
	if t == nil || t.t == nil {
		return 0, 0, errors.New("projtrans: invalid transformation provided")
	}
	x, y := inX, inY
	if t.srcSOM {
		x, y = -inY, inX
	}
	if t.srcDMS {
		dx, dy := x, y
		if x, err = DMSToDeg(dx, Lon); err != nil {
			t.log.Errorf("projtrans: failed converting input DMS longitude (%f) to degrees", dx)
			return 0, 0, err
		}
		if y, err = DMSToDeg(dy, Lat); err != nil {
			t.log.Errorf("projtrans: failed converting input DMS latitude (%f) to degrees", dy)
			return 0, 0, err
		}
	}

	lon, lat, err := t.t.Transform(x, y)
	if err != nil {
		if errors.Is(err, gctp.ErrInBreak) {
			t.log.Error("projtrans: in projection break")
		} else {
			t.log.Error("projtrans: failed converting between coordinate systems")
		}
		return 0, 0, fmt.Errorf("projtrans: %w", err)
	}
	outX, outY = lon, lat

	if t.dstDMS {
		if outX, err = DegToDMS(lon, Lon); err != nil {
			t.log.Errorf("projtrans: failed converting output degrees longitude (%f) to DMS", lon)
			return 0, 0, err
		}
		if outY, err = DegToDMS(lat, Lat); err != nil {
			t.log.Errorf("projtrans: failed converting output degrees latitude (%f) to DMS", lat)
			return 0, 0, err
		}
	}
	if t.dstSOM {
		outX, outY = outY, -outX
	}
	return outX, outY, nil
}

// Destroy releases the transformation. It is safe to call more than
// once and on a nil Transformation.
func (t *Transformation) Destroy() {
	if t == nil {
		return
	}
	t.t.Destroy()
	t.t = nil
}
