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

import "fmt"

// Code identifies a projection kind.
type Code int

// Projection codes. The numeric values are part of the external
// interface.
const (
	GEO    Code = 0  // Geographic
	UTM    Code = 1  // Universal Transverse Mercator
	SPCS   Code = 2  // State Plane Coordinates
	ALBERS Code = 3  // Albers Conical Equal Area
	LAMCC  Code = 4  // Lambert Conformal Conic
	MERCAT Code = 5  // Mercator
	PS     Code = 6  // Polar Stereographic
	POLYC  Code = 7  // Polyconic
	EQUIDC Code = 8  // Equidistant Conic
	TM     Code = 9  // Transverse Mercator
	STEREO Code = 10 // Stereographic
	LAMAZ  Code = 11 // Lambert Azimuthal Equal Area
	AZMEQD Code = 12 // Azimuthal Equidistant
	GNOMON Code = 13 // Gnomonic
	ORTHO  Code = 14 // Orthographic
	GVNSP  Code = 15 // General Vertical Near-Side Perspective
	SNSOID Code = 16 // Sinusoidal
	EQRECT Code = 17 // Equirectangular
	MILLER Code = 18 // Miller Cylindrical
	VGRINT Code = 19 // Van der Grinten
	HOM    Code = 20 // Hotine Oblique Mercator
	ROBIN  Code = 21 // Robinson
	SOM    Code = 22 // Space Oblique Mercator
	ALASKA Code = 23 // Alaska Conformal
	GOOD   Code = 24 // Interrupted Goode Homolosine
	MOLL   Code = 25 // Mollweide
	IMOLL  Code = 26 // Interrupted Mollweide
	HAMMER Code = 27 // Hammer
	WAGIV  Code = 28 // Wagner IV
	WAGVII Code = 29 // Wagner VII
	OBEQA  Code = 30 // Oblated Equal Area
	ISIN   Code = 31 // Integerized Sinusoidal
	USDEF  Code = 99 // User defined
)

// MaxCode is the largest projection code a transformation accepts.
const MaxCode = ISIN

var codeNames = map[Code]string{
	GEO:    "Geographic",
	UTM:    "UTM",
	SPCS:   "State Plane",
	ALBERS: "Albers Conical Equal Area",
	LAMCC:  "Lambert Conformal Conic",
	MERCAT: "Mercator",
	PS:     "Polar Stereographic",
	POLYC:  "Polyconic",
	EQUIDC: "Equidistant Conic",
	TM:     "Transverse Mercator",
	STEREO: "Stereographic",
	LAMAZ:  "Lambert Azimuthal",
	AZMEQD: "Azimuthal Equidistant",
	GNOMON: "Gnomonic",
	ORTHO:  "Orthographic",
	GVNSP:  "General Vertical Near-Side Perspective",
	SNSOID: "Sinusoidal",
	EQRECT: "Equirectangular",
	MILLER: "Miller Cylindrical",
	VGRINT: "Van der Grinten",
	HOM:    "Hotine Oblique Mercator",
	ROBIN:  "Robinson",
	SOM:    "Space Oblique Mercator",
	ALASKA: "Alaska Conformal",
	GOOD:   "Interrupted Goode Homolosine",
	MOLL:   "Mollweide",
	IMOLL:  "Interrupted Mollweide",
	HAMMER: "Hammer",
	WAGIV:  "Wagner IV",
	WAGVII: "Wagner VII",
	OBEQA:  "Oblated Equal Area",
	ISIN:   "Integerized Sinusoidal",
	USDEF:  "User Defined",
}

func (c Code) String() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Valid reports whether c can be used in a transformation.
func (c Code) Valid() bool { return c >= GEO && c <= MaxCode }

// Ported reports whether c has a dedicated transform unit. Other codes
// are served by the legacy dispatcher.
func (c Code) Ported() bool { return c.initializer() != nil }

// initializer maps the closed set of projection codes to the constructor
// of their transform unit. It returns nil for codes without one.
func (c Code) initializer() func(Params) (Projection, error) {
	switch c {
	case GEO:
		return newGeographicUnit
	case UTM:
		return newUTMUnit
	case TM:
		return newTMUnit
	case LAMCC:
		return newLCCUnit
	case PS:
		return newPSUnit
	case POLYC:
		return newPolyconicUnit
	case HOM:
		return newHOMUnit
	case SOM:
		return newSOMUnit
	case SPCS:
		return newStatePlaneUnit
	default:
		return nil
	}
}
