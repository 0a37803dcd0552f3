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

// Package gctp converts coordinates between geographic longitude and
// latitude and a set of cartographic projections, and between any two
// of those projections through a geographic intermediate.
//
// A coordinate system is described by Params: a projection Code, a
// zone, the units of the coordinates, a spheroid code, and 15
// positional parameters whose meaning depends on the code. New builds a
// Transformation from a source and a target system:
//
//	src := gctp.Params{Code: gctp.GEO, Units: units.Degree}
//	dst := gctp.Params{Code: gctp.UTM, Zone: 15, Units: units.Meter, Spheroid: 12}
//	t, err := gctp.New(src, dst)
//	if err != nil {
//		return err
//	}
//	defer t.Destroy()
//	x, y, err := t.Transform(-93, 45)
//
// Geographic, UTM, State Plane, Transverse Mercator, Lambert Conformal
// Conic, Polar Stereographic, Polyconic, Hotine Oblique Mercator and
// Space Oblique Mercator have their own transform units, and
// transformations between them are safe for concurrent use. The other
// projections are served by package legacy, whose state is shared
// through a legacy.Cache and serialized by it. The ThreadsafeOnly
// option rejects such transformations instead.
//
// Both systems are assumed to share one datum; no datum shift is
// applied.
//
// Messages produced while transformations are built and described go
// to the sink of package report.
package gctp
