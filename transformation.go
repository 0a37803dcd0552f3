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
	"fmt"
	"sync/atomic"

	"github.com/spatialmodel/gctp/legacy"
	"github.com/spatialmodel/gctp/numeric"
	"github.com/spatialmodel/gctp/report"
	"github.com/spatialmodel/gctp/units"
)

var threadsafeOnly int32

// SetThreadsafeOnly sets the process-wide default of the ThreadsafeOnly
// option. New reads it once, so it does not affect transformations that
// already exist.
func SetThreadsafeOnly(on bool) {
	var v int32
	if on {
		v = 1
	}
	atomic.StoreInt32(&threadsafeOnly, v)
}

type options struct {
	threadsafeOnly bool
	cache          *legacy.Cache
	printer        *report.Printer
	echo           bool
}

// An Option configures New.
type Option func(*options)

// ThreadsafeOnly makes New fail with ErrLegacyDisallowed instead of
// delegating to the legacy dispatcher.
func ThreadsafeOnly() Option {
	return func(o *options) { o.threadsafeOnly = true }
}

// WithLegacyCache sets the cache used when the transformation delegates
// to the legacy dispatcher. Transformations sharing a cache are
// serialized through it. By default each transformation gets its own.
func WithLegacyCache(c *legacy.Cache) Option {
	return func(o *options) { o.cache = c }
}

// WithSink sends the messages of the transformation to s instead of the
// package-wide sink.
func WithSink(s report.Sink) Option {
	return func(o *options) { o.printer = report.New(s) }
}

// WithEcho prints the parameters of both legs once they are built.
func WithEcho() Option {
	return func(o *options) { o.echo = true }
}

// Transformation converts coordinates from a source system to a target
// system. Unless it delegates to the legacy dispatcher it is immutable
// and safe for concurrent use once New returns.
type Transformation struct {
	src, dst Params

	inverse, forward Projection // Nil for legacy transformations.
	legacy           *legacy.Cache

	inFactor, outFactor float64

	printer   *report.Printer
	destroyed int32
}

// baseUnit is the unit projections work in: radians for geographic
// coordinates and meters otherwise.
func baseUnit(c Code) units.Unit {
	if c == GEO {
		return units.Radian
	}
	return units.Meter
}

// New returns a Transformation from src to dst. Failures are also sent
// to the message sink.
func New(src, dst Params, opts ...Option) (*Transformation, error) {
	o := options{
		threadsafeOnly: atomic.LoadInt32(&threadsafeOnly) == 1,
		printer:        report.New(nil),
	}
	for _, opt := range opts {
		opt(&o)
	}
	t, err := newTransformation(src, dst, &o)
	if err != nil {
		return nil, o.printer.Error(err)
	}
	if o.echo {
		t.Describe()
	}
	return t, nil
}

func newTransformation(src, dst Params, o *options) (*Transformation, error) {
	if !src.Code.Valid() {
		return nil, fmt.Errorf("gctp: source projection code %d: %w", int(src.Code), ErrIllegalCode)
	}
	if !dst.Code.Valid() {
		return nil, fmt.Errorf("gctp: target projection code %d: %w", int(dst.Code), ErrIllegalCode)
	}
	t := &Transformation{src: src, dst: dst, printer: o.printer}

	var err error
	if t.inFactor, err = units.Factor(src.Units, baseUnit(src.Code)); err != nil {
		return nil, fmt.Errorf("gctp: source units: %w", err)
	}
	if t.outFactor, err = units.Factor(baseUnit(dst.Code), dst.Units); err != nil {
		return nil, fmt.Errorf("gctp: target units: %w", err)
	}

	inInit, outInit := src.Code.initializer(), dst.Code.initializer()
	if inInit == nil || outInit == nil {
		if o.threadsafeOnly {
			return nil, fmt.Errorf("gctp: %s to %s: %w", src.Code, dst.Code, ErrLegacyDisallowed)
		}
		for _, c := range []Code{src.Code, dst.Code} {
			if c != GEO && c.Ported() {
				return nil, fmt.Errorf("gctp: %s to %s: %s cannot be paired with a projection served by the legacy dispatcher: %w",
					src.Code, dst.Code, c, legacy.ErrPorted)
			}
		}
		t.legacy = o.cache
		if t.legacy == nil {
			t.legacy = legacy.NewCache()
			if o.echo {
				t.legacy.Report = o.printer
			}
		}
		return t, nil
	}

	if t.inverse, err = inInit(src); err != nil {
		return nil, fmt.Errorf("gctp: initializing inverse %s: %w", src.Code, err)
	}
	if t.forward, err = outInit(dst); err != nil {
		t.inverse.Destroy()
		return nil, fmt.Errorf("gctp: initializing forward %s: %w", dst.Code, err)
	}
	return t, nil
}

// Legacy reports whether t delegates to the legacy dispatcher.
func (t *Transformation) Legacy() bool { return t.legacy != nil }

// Source returns the source system of t.
func (t *Transformation) Source() Params { return t.src }

// Target returns the target system of t.
func (t *Transformation) Target() Params { return t.dst }

// Transform converts the point (x, y) from the source to the target
// system. Points in a break of an interrupted projection return an
// error wrapping ErrInBreak.
func (t *Transformation) Transform(x, y float64) (float64, float64, error) {
	if t == nil || atomic.LoadInt32(&t.destroyed) == 1 {
		return 0, 0, ErrDestroyed
	}
	if t.legacy != nil {
		return t.legacy.Transform(x, y, t.src.system(), t.dst.system())
	}
	lon, lat, err := t.inverse.Inverse(x*t.inFactor, y*t.inFactor)
	if err != nil {
		return 0, 0, err
	}

	// Both systems share one datum; no datum conversion is applied.

	x, y, err = t.forward.Forward(lon, lat)
	if err != nil {
		return 0, 0, err
	}
	return x * t.outFactor, y * t.outFactor, nil
}

// Describe prints the parameters of the forward and inverse legs.
func (t *Transformation) Describe() {
	t.printer.Infof("Forward projection:")
	t.describe(t.dst, t.forward, true)
	t.printer.Infof("Inverse projection:")
	t.describe(t.src, t.inverse, false)
}

func (t *Transformation) describe(p Params, leg Projection, forward bool) {
	if leg != nil {
		leg.Describe(t.printer)
		return
	}
	if t.legacy.Report == t.printer {
		// A cache that echoes to this printer reports the projection
		// as it initializes it.
		echoed, err := t.legacy.Prepare(p.system(), forward)
		if err != nil {
			t.printer.Error(err)
			return
		}
		if echoed {
			return
		}
	}
	if err := legacy.Describe(p.system(), t.printer); err != nil {
		t.printer.Error(err)
	}
}

// Destroy releases both legs. It is safe to call more than once and on
// a nil Transformation.
func (t *Transformation) Destroy() {
	if t == nil || !atomic.CompareAndSwapInt32(&t.destroyed, 0, 1) {
		return
	}
	if t.inverse != nil {
		t.inverse.Destroy()
	}
	if t.forward != nil {
		t.forward.Destroy()
	}
}

// CalcUTMZone returns the UTM zone of the longitude lon, in degrees.
func CalcUTMZone(lon float64) int { return numeric.UTMZone(lon) }
