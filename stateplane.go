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

	"github.com/spatialmodel/gctp/numeric"
	"github.com/spatialmodel/gctp/report"
)

// Datum selects a State Plane zone table.
type Datum int

// Datums with State Plane tables.
const (
	NAD27 Datum = 27
	NAD83 Datum = 83
)

// DatumFromSpheroid maps spheroid code 0 (Clarke 1866) to NAD27 and 8
// (GRS 1980) to NAD83.
func DatumFromSpheroid(spheroid int) (Datum, error) {
	switch spheroid {
	case numeric.Clarke1866:
		return NAD27, nil
	case numeric.GRS1980:
		return NAD83, nil
	default:
		return 0, fmt.Errorf("gctp: state plane: illegal spheroid #%4d", spheroid)
	}
}

// spheroid returns the spheroid code of the datum.
func (d Datum) spheroid() int {
	if d == NAD83 {
		return numeric.GRS1980
	}
	return numeric.Clarke1866
}

type zoneKind int

const (
	spInvalid zoneKind = iota
	spTM
	spLCC
	spPolyconic
	spHOM
)

// StatePlaneZone is a row of a State Plane zone table.
type StatePlaneZone struct {
	ID    int
	Kind  zoneKind
	Table [9]float64
	Name  string
}

// LookupZone returns the row of zone id in the table of datum d.
func LookupZone(d Datum, id int) (StatePlaneZone, bool) {
	if id <= 0 {
		return StatePlaneZone{}, false
	}
	table := nad27Zones
	if d == NAD83 {
		table = nad83Zones
	}
	for _, z := range table {
		if z.ID == id && z.Kind != spInvalid {
			return z, true
		}
	}
	return StatePlaneZone{}, false
}

// params returns the positional parameters of the projection that
// serves the zone.
func (z StatePlaneZone) params(d Datum) Params {
	t := &z.Table
	p := Params{Spheroid: d.spheroid()}
	switch z.Kind {
	case spTM:
		p.Code = TM
		p.P[2] = t[3]
		p.P[4] = numeric.DMS2To3(t[2])
		p.P[5] = numeric.DMS2To3(t[6])
		p.P[6], p.P[7] = t[7], t[8]
	case spLCC:
		p.Code = LAMCC
		p.P[2] = numeric.DMS2To3(t[5])
		p.P[3] = numeric.DMS2To3(t[4])
		p.P[4] = numeric.DMS2To3(t[2])
		p.P[5] = numeric.DMS2To3(t[6])
		p.P[6], p.P[7] = t[7], t[8]
	case spPolyconic:
		p.Code = POLYC
		p.P[4] = numeric.DMS2To3(t[2])
		p.P[5] = numeric.DMS2To3(t[3])
		p.P[6], p.P[7] = t[4], t[5]
	case spHOM:
		p.Code = HOM
		p.P[2] = t[3]
		p.P[3] = numeric.DMS2To3(t[5])
		p.P[4] = numeric.DMS2To3(t[2])
		p.P[5] = numeric.DMS2To3(t[6])
		p.P[6], p.P[7] = t[7], t[8]
		p.P[12] = 1
	}
	return p
}

// StatePlaneConfig selects a State Plane zone.
type StatePlaneConfig struct {
	Zone  int
	Datum Datum
}

// StatePlaneConfigFromParams reads the zone of p and the datum from its
// spheroid code.
func StatePlaneConfigFromParams(p Params) (StatePlaneConfig, error) {
	d, err := DatumFromSpheroid(p.Spheroid)
	if err != nil {
		return StatePlaneConfig{}, err
	}
	return StatePlaneConfig{Zone: p.Zone, Datum: d}, nil
}

// StatePlane implements the State Plane Coordinate System. Each zone is
// served by a Transverse Mercator, Lambert Conformal Conic, Polyconic,
// or Hotine Oblique Mercator child projection.
type StatePlane struct {
	c     StatePlaneConfig
	zone  StatePlaneZone
	child Projection
}

// NewStatePlane returns the State Plane projection of a zone.
func NewStatePlane(c StatePlaneConfig) (*StatePlane, error) {
	z, ok := LookupZone(c.Datum, c.Zone)
	if !ok {
		return nil, fmt.Errorf("gctp: state plane: illegal zone #%4d for spheroid #%4d", c.Zone, c.Datum.spheroid())
	}
	cp := z.params(c.Datum)
	child, err := cp.Code.initializer()(cp)
	if err != nil {
		return nil, fmt.Errorf("gctp: state plane zone %d: %v", c.Zone, err)
	}
	return &StatePlane{c: c, zone: z, child: child}, nil
}

func newStatePlaneUnit(p Params) (Projection, error) {
	c, err := StatePlaneConfigFromParams(p)
	if err != nil {
		return nil, err
	}
	return NewStatePlane(c)
}

// Zone returns the zone table row.
func (s *StatePlane) Zone() StatePlaneZone { return s.zone }

// Forward implements Projection.
func (s *StatePlane) Forward(lon, lat float64) (x, y float64, err error) {
	return s.child.Forward(lon, lat)
}

// Inverse implements Projection.
func (s *StatePlane) Inverse(x, y float64) (lon, lat float64, err error) {
	return s.child.Inverse(x, y)
}

// Describe implements Projection.
func (s *StatePlane) Describe(p *report.Printer) {
	p.Title("STATE PLANE")
	p.GenRptLong("Zone:     ", int64(s.c.Zone))
	p.Infof("   Zone Name:     %s", s.zone.Name)
	p.GenRptLong("Datum:     NAD", int64(s.c.Datum))
	s.child.Describe(p)
}

// Destroy implements Projection.
func (s *StatePlane) Destroy() { s.child.Destroy() }
