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

package legacy

import (
	"fmt"
	"math"

	"github.com/spatialmodel/gctp/numeric"
	"github.com/spatialmodel/gctp/report"
)

// lobe is one uninterrupted region of an interrupted projection.
type lobe struct {
	center       float64 // Central meridian.
	west, east   float64 // Longitude extent.
	falseEasting float64 // In units of the sphere radius.
	mollweide    bool    // Mollweide rather than sinusoidal.
}

// contains reports whether lon lies on the lobe, allowing the small
// overshoot at ±π that rounding produces.
func (l lobe) contains(lon float64) bool {
	west, east := l.west, l.east
	if west == -math.Pi {
		west -= numeric.Epsilon
	}
	if east == math.Pi {
		east += numeric.Epsilon
	}
	return lon >= west && lon <= east
}

const (
	goodeLat  = 0.710987989993 // Latitude where the sinusoidal and Mollweide parts meet.
	goodeYOff = 0.0528035274542
)

// goodeLobes are the twelve regions of the Goode homolosine, ordered by
// latitude band from north to south and west to east within a band.
var goodeLobes = [12]lobe{
	{center: -100 * numeric.D2R, west: -math.Pi, east: -40 * numeric.D2R, mollweide: true},
	{center: -100 * numeric.D2R, west: -math.Pi, east: -40 * numeric.D2R},
	{center: 30 * numeric.D2R, west: -40 * numeric.D2R, east: math.Pi, mollweide: true},
	{center: 30 * numeric.D2R, west: -40 * numeric.D2R, east: math.Pi},
	{center: -160 * numeric.D2R, west: -math.Pi, east: -100 * numeric.D2R},
	{center: -60 * numeric.D2R, west: -100 * numeric.D2R, east: -20 * numeric.D2R},
	{center: -160 * numeric.D2R, west: -math.Pi, east: -100 * numeric.D2R, mollweide: true},
	{center: -60 * numeric.D2R, west: -100 * numeric.D2R, east: -20 * numeric.D2R, mollweide: true},
	{center: 20 * numeric.D2R, west: -20 * numeric.D2R, east: 80 * numeric.D2R},
	{center: 140 * numeric.D2R, west: 80 * numeric.D2R, east: math.Pi},
	{center: 20 * numeric.D2R, west: -20 * numeric.D2R, east: 80 * numeric.D2R, mollweide: true},
	{center: 140 * numeric.D2R, west: 80 * numeric.D2R, east: math.Pi, mollweide: true},
}

// goodeBands lists the lobes of each latitude band, west to east.
var goodeBands = [4][]int{{0, 2}, {1, 3}, {4, 5, 8, 9}, {6, 7, 10, 11}}

// goode is the Interrupted Goode Homolosine projection. It has no false
// easting or northing.
type goode struct {
	radius float64
}

func newGoode(radius float64) *goode { return &goode{radius: radius} }

func goodeBand(lat float64) []int {
	switch {
	case lat >= goodeLat:
		return goodeBands[0]
	case lat >= 0:
		return goodeBands[1]
	case lat >= -goodeLat:
		return goodeBands[2]
	default:
		return goodeBands[3]
	}
}

// pick returns the lobe of band containing the longitude-like value v,
// with boundaries scaled by s.
func pick(band []int, v, s float64) int {
	for _, i := range band[:len(band)-1] {
		if v <= goodeLobes[i].east*s {
			return i
		}
	}
	return band[len(band)-1]
}

func (g *goode) forward(lon, lat float64) (x, y float64, err error) {
	region := pick(goodeBand(lat), lon, 1)
	l := goodeLobes[region]
	dlon := numeric.AdjustLon(lon - l.center)
	if !l.mollweide {
		return g.radius * (l.center + dlon*math.Cos(lat)), g.radius * lat, nil
	}
	theta, err := mollweideTheta(lat)
	if err != nil {
		return math.NaN(), math.NaN(), fmt.Errorf("legacy: goode: %w", err)
	}
	if numeric.HalfPi-math.Abs(lat) < numeric.Epsilon {
		dlon = 0
	}
	x = g.radius * (l.center + 0.900316316158*dlon*math.Cos(theta))
	y = g.radius * (1.4142135623731*math.Sin(theta) - goodeYOff*numeric.Sign(lat))
	return x, y, nil
}

func (g *goode) inverse(x, y float64) (lon, lat float64, err error) {
	r := g.radius
	region := pick(goodeBand(y/r), x, r)
	l := goodeLobes[region]
	x -= r * l.center
	if !l.mollweide {
		lat = y / r
		if math.Abs(lat) > numeric.HalfPi {
			return math.NaN(), math.NaN(), fmt.Errorf("legacy: goode: %w", errInputData)
		}
		lon = l.center
		if math.Abs(math.Abs(lat)-numeric.HalfPi) > numeric.Epsilon {
			lon = numeric.AdjustLon(l.center + x/(r*math.Cos(lat)))
		}
	} else {
		arg := (y + goodeYOff*r*numeric.Sign(y)) / (1.4142135623731 * r)
		if math.Abs(arg) > 1.0 {
			return math.NaN(), math.NaN(), fmt.Errorf("legacy: goode: %w", ErrInBreak)
		}
		theta := math.Asin(arg)
		lon = l.center + x/(0.900316316158*r*math.Cos(theta))
		if lon < -(math.Pi + numeric.Epsilon) {
			return math.NaN(), math.NaN(), fmt.Errorf("legacy: goode: %w", ErrInBreak)
		}
		arg = (2.0*theta + math.Sin(2.0*theta)) / math.Pi
		if math.Abs(arg) > 1.0 {
			return math.NaN(), math.NaN(), fmt.Errorf("legacy: goode: %w", ErrInBreak)
		}
		lat = math.Asin(arg)
	}
	// ±180 degrees can come back with the wrong sign.
	if (x < 0 && math.Pi-lon < numeric.Epsilon) || (x > 0 && math.Pi+lon < numeric.Epsilon) {
		lon = -lon
	}
	if !l.contains(lon) {
		return math.NaN(), math.NaN(), fmt.Errorf("legacy: goode: %w", ErrInBreak)
	}
	return lon, lat, nil
}

func (g *goode) describe(p *report.Printer) {
	p.Title("GOODE'S HOMOLOSINE EQUAL-AREA")
	p.Radius(g.radius)
}

// imollLobes are the six regions of the interrupted Mollweide, north
// then south, in the order they are laid out from west to east.
var imollLobes = [6]lobe{
	{center: 60 * numeric.D2R, west: 20 * numeric.D2R, east: 110 * numeric.D2R, falseEasting: -2.19988776387},
	{center: -170 * numeric.D2R, west: 110 * numeric.D2R, east: -100 * numeric.D2R, falseEasting: -0.15713484},
	{center: -30 * numeric.D2R, west: -100 * numeric.D2R, east: 20 * numeric.D2R, falseEasting: 2.04275292359},
	{center: 90 * numeric.D2R, west: 20 * numeric.D2R, east: 140 * numeric.D2R, falseEasting: -1.72848324304},
	{center: -140 * numeric.D2R, west: 140 * numeric.D2R, east: -70 * numeric.D2R, falseEasting: 0.31426968},
	{center: -20 * numeric.D2R, west: -70 * numeric.D2R, east: 20 * numeric.D2R, falseEasting: 2.19988776387},
}

// covers reports whether lon is on the lobe. Lobes whose west edge is
// east of their east edge wrap across the antimeridian.
func (l lobe) covers(lon float64) bool {
	if l.west <= l.east {
		return lon >= l.west && lon <= l.east
	}
	return lon >= l.west || lon <= l.east
}

// interruptedMollweide is the Interrupted Mollweide projection with its
// lobes centered on the oceans. It has no false easting or northing.
type interruptedMollweide struct {
	radius float64
}

func newInterruptedMollweide(radius float64) *interruptedMollweide {
	return &interruptedMollweide{radius: radius}
}

func (m *interruptedMollweide) forward(lon, lat float64) (x, y float64, err error) {
	first := 0
	if lat < 0 {
		first = 3
	}
	region := first + 2
	for i := first; i < first+2; i++ {
		l := imollLobes[i]
		if l.covers(lon) && lon != l.east {
			region = i
			break
		}
	}
	l := imollLobes[region]
	dlon := numeric.AdjustLon(lon - l.center)
	theta, err := mollweideTheta(lat)
	if err != nil {
		return math.NaN(), math.NaN(), fmt.Errorf("legacy: interrupted mollweide: %w", err)
	}
	if numeric.HalfPi-math.Abs(lat) < numeric.Epsilon {
		dlon = 0
	}
	x = m.radius * (l.falseEasting + 0.900316316158*dlon*math.Cos(theta))
	y = m.radius * 1.4142135623731 * math.Sin(theta)
	return x, y, nil
}

func (m *interruptedMollweide) inverse(x, y float64) (lon, lat float64, err error) {
	r := m.radius
	var region int
	if y >= 0 {
		switch {
		case x <= r*-1.41421356248:
			region = 0
		case x <= r*0.942809042:
			region = 1
		default:
			region = 2
		}
	} else {
		switch {
		case x <= r*-0.942809042:
			region = 3
		case x <= r*1.41421356248:
			region = 4
		default:
			region = 5
		}
	}
	l := imollLobes[region]
	x -= r * l.falseEasting
	arg := y / (1.4142135623731 * r)
	if math.Abs(arg) > 1.0 {
		return math.NaN(), math.NaN(), fmt.Errorf("legacy: interrupted mollweide: %w", ErrInBreak)
	}
	theta := math.Asin(arg)
	lon = numeric.AdjustLon(l.center + x/(0.900316316158*r*math.Cos(theta)))
	lat = numeric.Asinz((2.0*theta + math.Sin(2.0*theta)) / math.Pi)
	if !l.covers(lon) {
		return math.NaN(), math.NaN(), fmt.Errorf("legacy: interrupted mollweide: %w", ErrInBreak)
	}
	return lon, lat, nil
}

func (m *interruptedMollweide) describe(p *report.Printer) {
	p.Title("INTERRUPTED MOLLWEIDE EQUAL-AREA")
	p.Radius(m.radius)
}
