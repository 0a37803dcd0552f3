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

	"github.com/spatialmodel/gctp/numeric"
	"github.com/spatialmodel/gctp/report"
)

// HOMConfig holds the parameters of a Hotine Oblique Mercator
// projection. The central line is given either by two points (format A)
// or by an azimuth through a center point (format B).
type HOMConfig struct {
	SemiMajor, SemiMinor        float64
	ScaleFactor                 float64
	OriginLat                   float64
	FalseEasting, FalseNorthing float64

	// Azimuth selects format B when true.
	Azimuth bool

	// Format A.
	Lon1, Lat1, Lon2, Lat2 float64

	// Format B.
	AzimuthAngle, CenterLon float64
}

// HOMConfigFromParams reads slots 2 (scale factor), 5 (latitude of
// origin), and 6/7. A non-zero slot 12 selects format B with slots 3
// (azimuth) and 4 (longitude of the center point); otherwise slots 8
// to 11 hold the two points of format A.
func HOMConfigFromParams(p Params) (HOMConfig, error) {
	c := HOMConfig{
		ScaleFactor:   p.P[2],
		FalseEasting:  p.P[6],
		FalseNorthing: p.P[7],
		Azimuth:       p.P[12] != 0,
	}
	c.SemiMajor, c.SemiMinor, _ = p.spheroid()
	var err error
	if c.OriginLat, err = p.angle(5, "center latitude"); err != nil {
		return c, err
	}
	if c.Azimuth {
		if c.AzimuthAngle, err = p.angle(3, "center azimuth angle"); err != nil {
			return c, err
		}
		if c.CenterLon, err = p.angle(4, "center azimuth point"); err != nil {
			return c, err
		}
		return c, nil
	}
	for i, v := range []*float64{&c.Lon1, &c.Lat1, &c.Lon2, &c.Lat2} {
		if *v, err = p.angle(8+i, "central line point"); err != nil {
			return c, err
		}
	}
	return c, nil
}

// HotineObliqueMercator implements the Hotine Oblique Mercator
// projection.
type HotineObliqueMercator struct {
	c                HOMConfig
	es, e            float64
	bl, al, d, el, u float64
	lonOrigin        float64
	azimuth          float64
	singam, cosgam   float64
	sinaz, cosaz     float64
}

var errHOMInput = errors.New("gctp: oblique mercator: input data error")

// NewHOM returns a Hotine Oblique Mercator projection. Central lines
// through a pole or the equator and format A points at the same
// latitude are rejected.
func NewHOM(c HOMConfig) (*HotineObliqueMercator, error) {
	if c.SemiMajor <= 0 {
		return nil, fmt.Errorf("gctp: oblique mercator: semi-major axis %g must be > 0", c.SemiMajor)
	}
	h := &HotineObliqueMercator{c: c}
	h.es, h.e = numeric.Eccentricity(c.SemiMajor, c.SemiMinor)
	sinp20, cosp20 := math.Sincos(c.OriginLat)
	con := 1.0 - h.es*sinp20*sinp20
	com := math.Sqrt(1.0 - h.es)
	h.bl = math.Sqrt(1.0 + h.es*math.Pow(cosp20, 4.0)/(1.0-h.es))
	h.al = c.SemiMajor * h.bl * c.ScaleFactor * com / con

	var f float64
	if math.Abs(c.OriginLat) < numeric.Epsilon {
		h.d = 1.0
		h.el = 1.0
	} else {
		ts := numeric.SmallT(h.e, c.OriginLat, sinp20)
		con = math.Sqrt(con)
		h.d = h.bl * com / (cosp20 * con)
		f = h.d
		if h.d*h.d-1.0 > 0 {
			if c.OriginLat >= 0 {
				f = h.d + math.Sqrt(h.d*h.d-1.0)
			} else {
				f = h.d - math.Sqrt(h.d*h.d-1.0)
			}
		}
		h.el = f * math.Pow(ts, h.bl)
	}

	var gama float64
	if c.Azimuth {
		g := .5 * (f - 1.0/f)
		gama = numeric.Asinz(math.Sin(c.AzimuthAngle) / h.d)
		h.lonOrigin = c.CenterLon - numeric.Asinz(g*math.Tan(gama))/h.bl
		h.azimuth = c.AzimuthAngle
		con = math.Abs(c.OriginLat)
		if con <= numeric.Epsilon || math.Abs(con-numeric.HalfPi) <= numeric.Epsilon {
			return nil, errHOMInput
		}
	} else {
		ts1 := numeric.SmallT(h.e, c.Lat1, math.Sin(c.Lat1))
		ts2 := numeric.SmallT(h.e, c.Lat2, math.Sin(c.Lat2))
		hh := math.Pow(ts1, h.bl)
		l := math.Pow(ts2, h.bl)
		f = h.el / hh
		g := .5 * (f - 1.0/f)
		j := (h.el*h.el - l*hh) / (h.el*h.el + l*hh)
		p := (l - hh) / (l + hh)
		lon2 := c.Lon2
		dlon := c.Lon1 - lon2
		if dlon < -math.Pi {
			lon2 -= numeric.TwoPi
		}
		if dlon > math.Pi {
			lon2 += numeric.TwoPi
		}
		dlon = c.Lon1 - lon2
		h.lonOrigin = .5*(c.Lon1+lon2) - math.Atan(j*math.Tan(.5*h.bl*dlon)/p)/h.bl
		dlon = numeric.AdjustLon(c.Lon1 - h.lonOrigin)
		gama = math.Atan(math.Sin(h.bl*dlon) / g)
		h.azimuth = numeric.Asinz(h.d * math.Sin(gama))
		if math.Abs(c.Lat1-c.Lat2) <= numeric.Epsilon {
			return nil, errHOMInput
		}
		con = math.Abs(c.Lat1)
		if con <= numeric.Epsilon || math.Abs(con-numeric.HalfPi) <= numeric.Epsilon {
			return nil, errHOMInput
		}
		if math.Abs(math.Abs(c.OriginLat)-numeric.HalfPi) <= numeric.Epsilon {
			return nil, errHOMInput
		}
	}
	h.singam, h.cosgam = math.Sincos(gama)
	h.sinaz, h.cosaz = math.Sincos(h.azimuth)
	h.u = (h.al / h.bl) * math.Atan(math.Sqrt(h.d*h.d-1.0)/h.cosaz)
	if c.OriginLat < 0 {
		h.u = -h.u
	}
	return h, nil
}

func newHOMUnit(p Params) (Projection, error) {
	c, err := HOMConfigFromParams(p)
	if err != nil {
		return nil, err
	}
	return NewHOM(c)
}

// Forward implements Projection.
func (h *HotineObliqueMercator) Forward(lon, lat float64) (x, y float64, err error) {
	c := &h.c
	dlon := numeric.AdjustLon(lon - h.lonOrigin)
	vl := math.Sin(h.bl * dlon)
	var ul, us float64
	if math.Abs(math.Abs(lat)-numeric.HalfPi) > numeric.Epsilon {
		ts1 := numeric.SmallT(h.e, lat, math.Sin(lat))
		q := h.el / math.Pow(ts1, h.bl)
		s := .5 * (q - 1.0/q)
		t := .5 * (q + 1.0/q)
		ul = (s*h.singam - vl*h.cosgam) / t
		con := math.Cos(h.bl * dlon)
		if math.Abs(con) < .0000001 {
			us = h.al * dlon
		} else {
			us = h.al * math.Atan((s*h.cosgam+vl*h.singam)/con) / h.bl
			if con < 0 {
				us += math.Pi * h.al / h.bl
			}
		}
	} else {
		ul = h.singam
		if lat < 0 {
			ul = -ul
		}
		us = h.al * lat / h.bl
	}
	if math.Abs(math.Abs(ul)-1.0) <= numeric.Epsilon {
		return math.NaN(), math.NaN(), fmt.Errorf("gctp: oblique mercator: %w", ErrInfinity)
	}
	vs := .5 * h.al * math.Log((1.0-ul)/(1.0+ul)) / h.bl
	us -= h.u
	x = c.FalseEasting + vs*h.cosaz + us*h.sinaz
	y = c.FalseNorthing + us*h.cosaz - vs*h.sinaz
	return x, y, nil
}

// Inverse implements Projection.
func (h *HotineObliqueMercator) Inverse(x, y float64) (lon, lat float64, err error) {
	c := &h.c
	x -= c.FalseEasting
	y -= c.FalseNorthing
	vs := x*h.cosaz - y*h.sinaz
	us := y*h.cosaz + x*h.sinaz + h.u
	q := math.Exp(-h.bl * vs / h.al)
	s := .5 * (q - 1.0/q)
	t := .5 * (q + 1.0/q)
	vl := math.Sin(h.bl * us / h.al)
	ul := (vl*h.cosgam + s*h.singam) / t
	if math.Abs(math.Abs(ul)-1.0) <= numeric.Epsilon {
		if ul >= 0 {
			return h.lonOrigin, numeric.HalfPi, nil
		}
		return h.lonOrigin, -numeric.HalfPi, nil
	}
	ts1 := math.Pow(h.el/math.Sqrt((1.0+ul)/(1.0-ul)), 1.0/h.bl)
	if lat, err = numeric.Phi2z(h.e, ts1); err != nil {
		return math.NaN(), math.NaN(), fmt.Errorf("gctp: oblique mercator: %w", err)
	}
	con := math.Cos(h.bl * us / h.al)
	lon = numeric.AdjustLon(h.lonOrigin - math.Atan2(s*h.cosgam-vl*h.singam, con)/h.bl)
	return lon, lat, nil
}

// Describe implements Projection.
func (h *HotineObliqueMercator) Describe(p *report.Printer) {
	c := &h.c
	p.Title("OBLIQUE MERCATOR (HOTINE)")
	p.Radius2(c.SemiMajor, c.SemiMinor)
	p.GenRpt("Scale Factor at C. Meridian:    ", c.ScaleFactor)
	p.OffsetP(c.FalseEasting, c.FalseNorthing)
	if !c.Azimuth {
		p.GenRpt("Longitude of First Point:    ", c.Lon1*numeric.R2D)
		p.GenRpt("Latitude of First Point:    ", c.Lat1*numeric.R2D)
		p.GenRpt("Longitude of Second Point:    ", c.Lon2*numeric.R2D)
		p.GenRpt("Latitude of Second Point:    ", c.Lat2*numeric.R2D)
		return
	}
	p.GenRpt("Azimuth of Central Line:    ", h.azimuth*numeric.R2D)
	p.CenLon(h.lonOrigin)
	p.CenLat(c.OriginLat)
}

// Destroy implements Projection.
func (h *HotineObliqueMercator) Destroy() {}
