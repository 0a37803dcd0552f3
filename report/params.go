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
	"fmt"
	"math"
)

const r2d = 180 / math.Pi

// Title prints the name of a projection.
func (p *Printer) Title(name string) {
	p.send(Info, fmt.Sprintf("%s PROJECTION PARAMETERS:", name))
}

// Radius prints the radius of a sphere.
func (p *Printer) Radius(r float64) {
	p.send(Info, fmt.Sprintf("   Radius of Sphere:     %f meters", r))
}

// Radius2 prints the semi-major and semi-minor axes of an ellipsoid.
func (p *Printer) Radius2(major, minor float64) {
	p.send(Info, fmt.Sprintf("   Semi-Major Axis of Ellipsoid:     %f meters", major))
	p.send(Info, fmt.Sprintf("   Semi-Minor Axis of Ellipsoid:     %f meters", minor))
}

// CenLon prints a center longitude given in radians.
func (p *Printer) CenLon(a float64) {
	p.send(Info, fmt.Sprintf("   Longitude of Center:     %f degrees", a*r2d))
}

// CenLonMer prints a central meridian given in radians.
func (p *Printer) CenLonMer(a float64) {
	p.send(Info, fmt.Sprintf("   Longitude of Central Meridian:     %f degrees", a*r2d))
}

// CenLat prints a center latitude given in radians.
func (p *Printer) CenLat(a float64) {
	p.send(Info, fmt.Sprintf("   Latitude  of Center:     %f degrees", a*r2d))
}

// Origin prints a latitude of origin given in radians.
func (p *Printer) Origin(a float64) {
	p.send(Info, fmt.Sprintf("   Latitude of Origin:     %f degrees", a*r2d))
}

// StanParl prints two standard parallels given in radians.
func (p *Printer) StanParl(a, b float64) {
	p.send(Info, fmt.Sprintf("   1st Standard Parallel:     %f degrees", a*r2d))
	p.send(Info, fmt.Sprintf("   2nd Standard Parallel:     %f degrees", b*r2d))
}

// StParl1 prints a single standard parallel given in radians.
func (p *Printer) StParl1(a float64) {
	p.send(Info, fmt.Sprintf("   Standard Parallel:     %f degrees", a*r2d))
}

// OffsetP prints the false easting and northing.
func (p *Printer) OffsetP(fe, fn float64) {
	p.send(Info, fmt.Sprintf("   False Easting:      %f meters", fe))
	p.send(Info, fmt.Sprintf("   False Northing:     %f meters", fn))
}

// LatZone prints the number of latitudinal zones of a grid.
func (p *Printer) LatZone(a float64) {
	p.send(Info, fmt.Sprintf("Number of Latitudinal Zones:  %f", a))
}

// JustifyCols prints the right-justify-columns flag of a grid.
func (p *Printer) JustifyCols(a float64) {
	p.send(Info, fmt.Sprintf("Right Justify Columns Flag:  %f", a))
}

// GenRpt prints a labeled floating point value.
func (p *Printer) GenRpt(label string, a float64) {
	p.send(Info, fmt.Sprintf("   %s %f", label, a))
}

// GenRptLong prints a labeled integer value.
func (p *Printer) GenRptLong(label string, a int64) {
	p.send(Info, fmt.Sprintf("   %s %d", label, a))
}
