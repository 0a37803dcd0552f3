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
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/proj"
)

// Transformer returns the Transform method of t as a proj.Transformer.
func (t *Transformation) Transformer() proj.Transformer { return t.Transform }

// TransformGeom returns a copy of g with every vertex transformed by t.
func (t *Transformation) TransformGeom(g geom.Geom) (geom.Geom, error) {
	return g.Transform(t.Transformer())
}
