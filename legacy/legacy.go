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

// Package legacy transforms coordinates through the projections that do
// not have a dedicated transform unit. Projection state is memoized in
// an explicit Cache, so callers decide who shares it.
package legacy

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spatialmodel/gctp/report"
	"github.com/spatialmodel/gctp/units"
)

// Projection codes served here, and the ported codes that are rejected.
const (
	geo    = 0
	utm    = 1
	spcs   = 2
	albers = 3
	lamcc  = 4
	mercat = 5
	ps     = 6
	polyc  = 7
	equidc = 8
	tm     = 9
	stereo = 10
	lamaz  = 11
	azmeqd = 12
	gnomon = 13
	ortho  = 14
	gvnsp  = 15
	snsoid = 16
	eqrect = 17
	miller = 18
	vgrint = 19
	hom    = 20
	robin  = 21
	som    = 22
	alaska = 23
	good   = 24
	moll   = 25
	imoll  = 26
	hammer = 27
	wagiv  = 28
	wagvii = 29
	obeqa  = 30
	isin   = 31

	maxCode = isin
)

// NumParams is the number of positional projection parameters.
const NumParams = 15

// numCompared is the number of leading parameters that decide whether a
// memoized projection can be reused.
const numCompared = 13

// Errors returned by Transform.
var (
	ErrIllegalInsys  = errors.New("illegal input system code")
	ErrIllegalOutsys = errors.New("illegal output system code")
	// ErrPorted is returned for projection codes that are not served by
	// this package.
	ErrPorted = errors.New("projection code is not served by the legacy dispatcher")

	ErrCannotProject = errors.New("point can not be projected")
	ErrInfinity      = errors.New("point projects into infinity")
	// ErrInBreak is returned by the inverse of an interrupted projection
	// for points that fall into one of its breaks.
	ErrInBreak   = errors.New("point is in a break of an interrupted projection")
	errInputData = errors.New("input data error")
)

// System describes one side of a transformation. Angles in Params are
// packed DMS and distances are meters; the sphere radius and the axes
// come from Spheroid and Params[0..1].
//
// Slot use by code:
//
//	ALBERS, EQUIDC        2 lat1, 3 lat2, 4 center lon, 5 origin lat,
//	                      8 two-parallel flag (EQUIDC)
//	MERCAT                4 center lon, 5 latitude of true scale
//	STEREO, LAMAZ,
//	AZMEQD, GNOMON, ORTHO 4 center lon, 5 center lat
//	GVNSP                 2 height, 4 center lon, 5 center lat
//	SNSOID, MILLER,
//	VGRINT, ROBIN, MOLL,
//	HAMMER, WAGIV, WAGVII 4 center lon
//	EQRECT                4 center lon, 5 latitude of true scale
//	GOOD, IMOLL           radius only
//	ALASKA                axes only
//	OBEQA                 2 shape m, 3 shape n, 4 center lon,
//	                      5 center lat, 8 rotation angle
//	ISIN                  4 center lon, 8 latitudinal zones,
//	                      10 column justification flag
//
// Slots 6 and 7 hold the false easting and northing for every code but
// GOOD and IMOLL.
type System struct {
	Code     int
	Zone     int
	Units    units.Unit
	Spheroid int
	Params   [NumParams]float64
}

type key struct {
	code, zone, spheroid int
	params               [numCompared]float64
}

func (s System) key() key {
	k := key{code: s.Code, zone: s.Zone, spheroid: s.Spheroid}
	copy(k.params[:], s.Params[:numCompared])
	return k
}

type entry struct {
	key  key
	proj projection
}

// Cache memoizes the projections used for the input and output sides of
// Transform. A projection is rebuilt only when the code, zone, spheroid,
// or one of the first 13 parameters of its side differ from the last
// call with the same code. Calls through one Cache are serialized.
type Cache struct {
	// Report, if set, receives the parameters of each projection the
	// cache initializes.
	Report *report.Printer

	mu      sync.Mutex
	in, out map[int]*entry
	inits   int
}

// NewCache returns an empty cache. The zero Cache is also ready to use.
func NewCache() *Cache {
	return &Cache{in: make(map[int]*entry), out: make(map[int]*entry)}
}

// Inits returns the number of projections the cache has initialized.
func (c *Cache) Inits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inits
}

// lookup returns the memoized projection for s, initializing it when
// its key changed. c.mu must be held.
func (c *Cache) lookup(side map[int]*entry, s System) (projection, error) {
	k := s.key()
	if e, ok := side[s.Code]; ok && e.key == k {
		return e.proj, nil
	}
	p, err := newProjection(s)
	if err != nil {
		delete(side, s.Code)
		return nil, err
	}
	c.inits++
	if c.Report != nil {
		p.describe(c.Report)
	}
	side[s.Code] = &entry{key: k, proj: p}
	return p, nil
}

// Prepare initializes the projection of s on the output side, or on the
// input side when out is false, ahead of the first Transform. It
// reports whether this call initialized it; geographic systems and
// projections already in the cache report false.
func (c *Cache) Prepare(s System, out bool) (bool, error) {
	if s.Code < geo || s.Code > maxCode {
		if out {
			return false, fmt.Errorf("legacy: outsys %d: %w", s.Code, ErrIllegalOutsys)
		}
		return false, fmt.Errorf("legacy: insys %d: %w", s.Code, ErrIllegalInsys)
	}
	if s.Code == geo {
		return false, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.in == nil {
		c.in, c.out = make(map[int]*entry), make(map[int]*entry)
	}
	side := c.in
	if out {
		side = c.out
	}
	n := c.inits
	if _, err := c.lookup(side, s); err != nil {
		return false, err
	}
	return c.inits > n, nil
}

// Served reports whether code is handled by this package.
func Served(code int) bool {
	if code < geo || code > maxCode {
		return false
	}
	return !ported(code)
}

func ported(code int) bool {
	switch code {
	case utm, spcs, lamcc, ps, polyc, tm, hom, som:
		return true
	}
	return false
}

// baseUnit is the unit projections work in for code: radians for
// geographic coordinates and meters otherwise.
func baseUnit(code int) units.Unit {
	if code == geo {
		return units.Radian
	}
	return units.Meter
}

// Transform converts (x, y) from the in system to the out system.
func (c *Cache) Transform(x, y float64, in, out System) (float64, float64, error) {
	if in.Code < geo || in.Code > maxCode {
		return 0, 0, fmt.Errorf("legacy: insys %d: %w", in.Code, ErrIllegalInsys)
	}
	if out.Code < geo || out.Code > maxCode {
		return 0, 0, fmt.Errorf("legacy: outsys %d: %w", out.Code, ErrIllegalOutsys)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.in == nil {
		c.in, c.out = make(map[int]*entry), make(map[int]*entry)
	}

	factor, err := units.Factor(in.Units, baseUnit(in.Code))
	if err != nil {
		return 0, 0, fmt.Errorf("legacy: input units: %w", err)
	}
	lon, lat := x*factor, y*factor
	if in.Code != geo {
		p, err := c.lookup(c.in, in)
		if err != nil {
			return 0, 0, err
		}
		if lon, lat, err = p.inverse(lon, lat); err != nil {
			return 0, 0, err
		}
	}

	// Both sides share one datum; no datum conversion is applied.

	outX, outY := lon, lat
	if out.Code != geo {
		p, err := c.lookup(c.out, out)
		if err != nil {
			return 0, 0, err
		}
		if outX, outY, err = p.forward(lon, lat); err != nil {
			return 0, 0, err
		}
	}
	factor, err = units.Factor(baseUnit(out.Code), out.Units)
	if err != nil {
		return 0, 0, fmt.Errorf("legacy: output units: %w", err)
	}
	return outX * factor, outY * factor, nil
}

// Describe prints the parameters of the projection of s.
func Describe(s System, p *report.Printer) error {
	if s.Code == geo {
		p.Title("GEOGRAPHIC")
		return nil
	}
	proj, err := newProjection(s)
	if err != nil {
		return err
	}
	proj.describe(p)
	return nil
}
