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

import "github.com/spatialmodel/gctp/report"

// Geographic is the identity projection over longitude and latitude.
type Geographic struct{}

func newGeographicUnit(Params) (Projection, error) { return Geographic{}, nil }

// Forward returns lon and lat unchanged.
func (Geographic) Forward(lon, lat float64) (x, y float64, err error) { return lon, lat, nil }

// Inverse returns x and y unchanged.
func (Geographic) Inverse(x, y float64) (lon, lat float64, err error) { return x, y, nil }

// Describe prints the projection title.
func (Geographic) Describe(p *report.Printer) { p.Title("GEOGRAPHIC") }

// Destroy is a no-op.
func (Geographic) Destroy() {}
