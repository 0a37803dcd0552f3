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

// oblatedEqualArea is the Oblated Equal-Area projection. It stretches a
// Lambert azimuthal equal-area projection of the unit sphere into an
// oval whose shape is set by m and n.
type oblatedEqualArea struct {
	common
	lon0, lat0       float64
	m, n, theta      float64
	sinLat0, cosLat0 float64
}

func newOblatedEqualArea(c common, lon0, lat0, m, n, theta float64) (*oblatedEqualArea, error) {
	if m == 0 || n == 0 {
		return nil, fmt.Errorf("legacy: oblated equal area: shape parameters m=%g and n=%g must be non-zero: %w", m, n, errInputData)
	}
	o := &oblatedEqualArea{common: c, lon0: lon0, lat0: lat0, m: m, n: n, theta: theta}
	o.sinLat0, o.cosLat0 = math.Sincos(lat0)
	return o, nil
}

func (o *oblatedEqualArea) forward(lon, lat float64) (x, y float64, err error) {
	sinLat, cosLat := math.Sincos(lat)
	sinDlon, cosDlon := math.Sincos(numeric.AdjustLon(lon - o.lon0))
	z := math.Acos(math.Max(-1, math.Min(1, o.sinLat0*sinLat+o.cosLat0*cosLat*cosDlon)))
	az := math.Atan2(cosLat*sinDlon, o.cosLat0*sinLat-o.sinLat0*cosLat*cosDlon) + o.theta
	sinAz, cosAz := math.Sincos(az)
	temp := 2.0 * math.Sin(z/2.0)
	xp := temp * sinAz
	yp := temp * cosAz
	m := numeric.Asinz(xp / 2.0)
	nn := numeric.Asinz(yp / 2.0 * math.Cos(m) / math.Cos(2.0*m/o.m))
	x = o.m*o.radius*math.Sin(2.0*m/o.m)*math.Cos(nn)/math.Cos(2.0*nn/o.n) + o.falseEasting
	y = o.n*o.radius*math.Sin(2.0*nn/o.n) + o.falseNorthing
	return x, y, nil
}

func (o *oblatedEqualArea) inverse(x, y float64) (lon, lat float64, err error) {
	x = (x - o.falseEasting) / o.radius
	y = (y - o.falseNorthing) / o.radius
	nn := o.n / 2.0 * numeric.Asinz(y/o.n)
	m := o.m / 2.0 * numeric.Asinz(x/o.m*math.Cos(2.0*nn/o.n)/math.Cos(nn))
	xp := 2.0 * math.Sin(m)
	yp := 2.0 * math.Sin(nn) * math.Cos(2.0*m/o.m) / math.Cos(m)
	rh := math.Hypot(xp, yp)
	if rh <= numeric.Epsilon {
		return o.lon0, o.lat0, nil
	}
	z := 2.0 * numeric.Asinz(rh/2.0)
	az := math.Atan2(xp, yp) - o.theta
	sinAz, cosAz := math.Sincos(az)
	sinZ, cosZ := math.Sincos(z)
	lat = numeric.Asinz(o.sinLat0*cosZ + o.cosLat0*sinZ*cosAz)
	lon = numeric.AdjustLon(o.lon0 + math.Atan2(sinAz*sinZ*o.cosLat0, cosZ-o.sinLat0*math.Sin(lat)))
	return lon, lat, nil
}

func (o *oblatedEqualArea) describe(p *report.Printer) {
	p.Title("OBLATED EQUAL-AREA")
	p.Radius(o.radius)
	p.CenLon(o.lon0)
	p.CenLat(o.lat0)
	p.GenRpt("Parameter m:      ", o.m)
	p.GenRpt("Parameter n:      ", o.n)
	p.GenRpt("Theta:      ", o.theta*numeric.R2D)
	p.OffsetP(o.falseEasting, o.falseNorthing)
}
