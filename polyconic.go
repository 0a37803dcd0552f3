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
	"math"

	"github.com/spatialmodel/gctp/numeric"
	"github.com/spatialmodel/gctp/report"
)

// PolyconicConfig holds the parameters of a Polyconic projection.
type PolyconicConfig struct {
	SemiMajor, SemiMinor        float64
	CenterLon, OriginLat        float64
	FalseEasting, FalseNorthing float64
}

// PolyconicConfigFromParams reads slots 4 (central meridian), 5
// (latitude of origin), and 6/7.
func PolyconicConfigFromParams(p Params) (PolyconicConfig, error) {
	c := PolyconicConfig{FalseEasting: p.P[6], FalseNorthing: p.P[7]}
	c.SemiMajor, c.SemiMinor, _ = p.spheroid()
	var err error
	if c.CenterLon, err = p.angle(4, "center longitude"); err != nil {
		return c, err
	}
	if c.OriginLat, err = p.angle(5, "center latitude"); err != nil {
		return c, err
	}
	return c, nil
}

// Polyconic implements the American Polyconic projection.
type Polyconic struct {
	c              PolyconicConfig
	es, e          float64
	e0, e1, e2, e3 float64
	ml0            float64 // Meridian distance of the origin on the unit ellipsoid.
}

// NewPolyconic returns a Polyconic projection.
func NewPolyconic(c PolyconicConfig) (*Polyconic, error) {
	if c.SemiMajor <= 0 {
		return nil, fmt.Errorf("gctp: polyconic: semi-major axis %g must be > 0", c.SemiMajor)
	}
	p := &Polyconic{c: c}
	p.es, p.e = numeric.Eccentricity(c.SemiMajor, c.SemiMinor)
	p.e0 = numeric.E0(p.es)
	p.e1 = numeric.E1(p.es)
	p.e2 = numeric.E2(p.es)
	p.e3 = numeric.E3(p.es)
	p.ml0 = numeric.Mlfn(p.e0, p.e1, p.e2, p.e3, c.OriginLat)
	return p, nil
}

func newPolyconicUnit(p Params) (Projection, error) {
	c, err := PolyconicConfigFromParams(p)
	if err != nil {
		return nil, err
	}
	return NewPolyconic(c)
}

// Forward implements Projection.
func (p *Polyconic) Forward(lon, lat float64) (x, y float64, err error) {
	c := &p.c
	con := numeric.AdjustLon(lon - c.CenterLon)
	if math.Abs(lat) <= .0000001 {
		return c.FalseEasting + c.SemiMajor*con, c.FalseNorthing - c.SemiMajor*p.ml0, nil
	}
	sinphi, cosphi := math.Sincos(lat)
	ml := numeric.Mlfn(p.e0, p.e1, p.e2, p.e3, lat)
	ms := numeric.SmallRadius(p.e, sinphi, cosphi)
	con *= sinphi
	x = c.FalseEasting + c.SemiMajor*ms*math.Sin(con)/sinphi
	y = c.FalseNorthing + c.SemiMajor*(ml-p.ml0+ms*(1.0-math.Cos(con))/sinphi)
	return x, y, nil
}

// Inverse implements Projection.
func (p *Polyconic) Inverse(x, y float64) (lon, lat float64, err error) {
	c := &p.c
	x -= c.FalseEasting
	y -= c.FalseNorthing
	al := p.ml0 + y/c.SemiMajor
	if math.Abs(al) <= .0000001 {
		return x/c.SemiMajor + c.CenterLon, 0, nil
	}
	b := al*al + (x/c.SemiMajor)*(x/c.SemiMajor)
	lat, cc, err := numeric.Phi4z(p.es, p.e0, p.e1, p.e2, p.e3, al, b)
	if err != nil {
		return math.NaN(), math.NaN(), fmt.Errorf("gctp: polyconic: %w", err)
	}
	lon = numeric.AdjustLon(numeric.Asinz(x*cc/c.SemiMajor)/math.Sin(lat) + c.CenterLon)
	return lon, lat, nil
}

// Describe implements Projection.
func (p *Polyconic) Describe(pr *report.Printer) {
	c := &p.c
	pr.Title("POLYCONIC")
	pr.Radius2(c.SemiMajor, c.SemiMinor)
	pr.CenLonMer(c.CenterLon)
	pr.Origin(c.OriginLat)
	pr.OffsetP(c.FalseEasting, c.FalseNorthing)
}

// Destroy implements Projection.
func (p *Polyconic) Destroy() {}
