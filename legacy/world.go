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

// newWorld returns one of the spherical world projections that take
// only a central meridian.
func newWorld(code int, c common, lon0 float64) projection {
	switch code {
	case snsoid:
		return &sinusoidal{common: c, lon0: lon0}
	case miller:
		return &millerCylindrical{common: c, lon0: lon0}
	case vgrint:
		return &vanDerGrinten{common: c, lon0: lon0}
	case hammer:
		return &hammerAitoff{common: c, lon0: lon0}
	case robin:
		return newRobinson(c, lon0)
	case moll:
		return &mollweide{common: c, lon0: lon0}
	case wagiv:
		return &wagnerIV{common: c, lon0: lon0}
	default: // wagvii
		return &wagnerVII{common: c, lon0: lon0}
	}
}

// auxTheta solves θ + sin θ = k·sin(lat) by Newton's method and returns
// θ/2.
func auxTheta(lat, k float64, maxIter int) (float64, error) {
	theta := lat
	con := k * math.Sin(lat)
	for i := 0; ; i++ {
		dtheta := -(theta + math.Sin(theta) - con) / (1.0 + math.Cos(theta))
		theta += dtheta
		if math.Abs(dtheta) < numeric.Epsilon {
			break
		}
		if i >= maxIter {
			return 0, fmt.Errorf("auxiliary angle: %w", numeric.ErrNoConvergence)
		}
	}
	return theta / 2.0, nil
}

// mollweideTheta returns the Mollweide auxiliary angle of lat. The
// Newton iteration converges slowly at the poles, where the result is
// known.
func mollweideTheta(lat float64) (float64, error) {
	if numeric.HalfPi-math.Abs(lat) < numeric.Epsilon {
		return numeric.Sign(lat) * numeric.HalfPi, nil
	}
	return auxTheta(lat, math.Pi, 50)
}

type sinusoidal struct {
	common
	lon0 float64
}

func (s *sinusoidal) forward(lon, lat float64) (x, y float64, err error) {
	dlon := numeric.AdjustLon(lon - s.lon0)
	x = s.radius*dlon*math.Cos(lat) + s.falseEasting
	y = s.radius*lat + s.falseNorthing
	return x, y, nil
}

func (s *sinusoidal) inverse(x, y float64) (lon, lat float64, err error) {
	x -= s.falseEasting
	y -= s.falseNorthing
	lat = y / s.radius
	if math.Abs(lat) > numeric.HalfPi {
		return math.NaN(), math.NaN(), fmt.Errorf("legacy: sinusoidal: %w", errInputData)
	}
	if math.Abs(math.Abs(lat)-numeric.HalfPi) > numeric.Epsilon {
		return numeric.AdjustLon(s.lon0 + x/(s.radius*math.Cos(lat))), lat, nil
	}
	return s.lon0, lat, nil
}

func (s *sinusoidal) describe(p *report.Printer) {
	p.Title("SINUSOIDAL")
	p.Radius(s.radius)
	p.CenLonMer(s.lon0)
	p.OffsetP(s.falseEasting, s.falseNorthing)
}

type vanDerGrinten struct {
	common
	lon0 float64
}

func (v *vanDerGrinten) forward(lon, lat float64) (x, y float64, err error) {
	r := v.radius
	dlon := numeric.AdjustLon(lon - v.lon0)
	if math.Abs(lat) <= numeric.Epsilon {
		return v.falseEasting + r*dlon, v.falseNorthing, nil
	}
	theta := numeric.Asinz(2.0 * math.Abs(lat/math.Pi))
	if math.Abs(dlon) <= numeric.Epsilon || math.Abs(math.Abs(lat)-numeric.HalfPi) <= numeric.Epsilon {
		y = math.Pi * r * math.Tan(.5*theta)
		if lat < 0 {
			y = -y
		}
		return v.falseEasting, v.falseNorthing + y, nil
	}
	al := .5 * math.Abs(math.Pi/dlon-dlon/math.Pi)
	asq := al * al
	sinth, costh := math.Sincos(theta)
	g := costh / (sinth + costh - 1.0)
	gsq := g * g
	m := g * (2.0/sinth - 1.0)
	msq := m * m
	con := math.Pi * r * (al*(g-msq) + math.Sqrt(asq*(g-msq)*(g-msq)-(msq+asq)*(gsq-msq))) / (msq + asq)
	if dlon < 0 {
		con = -con
	}
	x = v.falseEasting + con
	con = math.Abs(con / (math.Pi * r))
	y = math.Pi * r * math.Sqrt(1.0-con*con-2.0*al*con)
	if lat < 0 {
		y = -y
	}
	return x, v.falseNorthing + y, nil
}

func (v *vanDerGrinten) inverse(x, y float64) (lon, lat float64, err error) {
	x -= v.falseEasting
	y -= v.falseNorthing
	con := math.Pi * v.radius
	xx := x / con
	yy := y / con
	xys := xx*xx + yy*yy
	if math.Abs(yy) > numeric.Epsilon {
		c1 := -math.Abs(yy) * (1.0 + xys)
		c2 := c1 - 2.0*yy*yy + xx*xx
		c3 := -2.0*c1 + 1.0 + 2.0*yy*yy + xys*xys
		d := yy*yy/c3 + (2.0*c2*c2*c2/c3/c3/c3-9.0*c1*c2/c3/c3)/27.0
		a1 := (c1 - c2*c2/3.0/c3) / c3
		m1 := 2.0 * math.Sqrt(-a1/3.0)
		con = ((3.0 * d) / a1) / m1
		if math.Abs(con) > 1.0 {
			con = numeric.Sign(con)
		}
		th1 := math.Acos(con) / 3.0
		lat = (-m1*math.Cos(th1+math.Pi/3.0) - c2/3.0/c3) * math.Pi
		if y < 0 {
			lat = -lat
		}
	}
	if math.Abs(xx) < numeric.Epsilon {
		return v.lon0, lat, nil
	}
	lon = math.Pi * (xys - 1.0 + math.Sqrt(1.0+2.0*(xx*xx-yy*yy)+xys*xys)) / 2.0 / xx
	return numeric.AdjustLon(lon + v.lon0), lat, nil
}

func (v *vanDerGrinten) describe(p *report.Printer) {
	p.Title("VAN DER GRINTEN")
	p.Radius(v.radius)
	p.CenLonMer(v.lon0)
	p.OffsetP(v.falseEasting, v.falseNorthing)
}

type hammerAitoff struct {
	common
	lon0 float64
}

func (h *hammerAitoff) forward(lon, lat float64) (x, y float64, err error) {
	dlon := numeric.AdjustLon(lon - h.lon0)
	cosphi := math.Cos(lat)
	fac := h.radius * math.Sqrt2 / math.Sqrt(1.0+cosphi*math.Cos(dlon/2.0))
	x = h.falseEasting + fac*2.0*cosphi*math.Sin(dlon/2.0)
	y = h.falseNorthing + fac*math.Sin(lat)
	return x, y, nil
}

func (h *hammerAitoff) inverse(x, y float64) (lon, lat float64, err error) {
	x -= h.falseEasting
	y -= h.falseNorthing
	r := h.radius
	fac := math.Sqrt(4.0*r*r-(x*x)/4.0-y*y) / 2.0
	lon = numeric.AdjustLon(h.lon0 + 2.0*math.Atan2(x*fac, 2.0*r*r-x*x/4-y*y))
	lat = numeric.Asinz(y * fac / r / r)
	return lon, lat, nil
}

func (h *hammerAitoff) describe(p *report.Printer) {
	p.Title("HAMMER")
	p.Radius(h.radius)
	p.CenLonMer(h.lon0)
	p.OffsetP(h.falseEasting, h.falseNorthing)
}

// Robinson tables, every 5 degrees of latitude from -5 to 90.
var (
	robinsonY = [20]float64{
		-0.062, 0, 0.062, 0.124, 0.186, 0.248, 0.31, 0.372, 0.434, 0.4958,
		0.5571, 0.6176, 0.6769, 0.7346, 0.7903, 0.8435, 0.8936, 0.9394, 0.9761, 1.0,
	}
	robinsonX = [20]float64{
		0.9986, 1.0, 0.9986, 0.9954, 0.99, 0.9822, 0.973, 0.96, 0.9427, 0.9216,
		0.8962, 0.8679, 0.835, 0.7986, 0.7597, 0.7186, 0.6732, 0.6213, 0.5722, 0.5322,
	}
)

type robinson struct {
	common
	lon0   float64
	xr, pr [20]float64
}

func newRobinson(c common, lon0 float64) *robinson {
	r := &robinson{common: c, lon0: lon0, pr: robinsonY}
	for i, v := range robinsonX {
		r.xr[i] = v * 0.9858
	}
	return r
}

// interp is Stirling's interpolation in t between rows i and i+2 at
// fraction p.
func interp(t *[20]float64, i int, p float64) float64 {
	return t[i+1] + p*(t[i+2]-t[i])/2.0 + p*p*(t[i+2]-2.0*t[i+1]+t[i])/2.0
}

// row returns the table row and fraction of phid degrees.
func robinsonRow(phid float64) (int, float64) {
	p2 := math.Abs(phid / 5.0)
	ip1 := int(p2 - numeric.Epsilon)
	if ip1 > 17 {
		ip1 = 17
	}
	if ip1 < 0 {
		ip1 = 0
	}
	return ip1, p2 - float64(ip1)
}

func (r *robinson) forward(lon, lat float64) (x, y float64, err error) {
	dlon := numeric.AdjustLon(lon - r.lon0)
	ip1, p2 := robinsonRow(lat * numeric.R2D)
	x = r.radius*interp(&r.xr, ip1, p2)*dlon + r.falseEasting
	y = r.radius * interp(&r.pr, ip1, p2) * numeric.HalfPi
	if lat < 0 {
		y = -y
	}
	return x, y + r.falseNorthing, nil
}

func (r *robinson) inverse(x, y float64) (lon, lat float64, err error) {
	x -= r.falseEasting
	y -= r.falseNorthing
	yy := 2.0 * y / math.Pi / r.radius
	phid := yy * 90.0
	ip1, _ := robinsonRow(phid)
	if ip1 == 0 {
		ip1 = 1
	}
	var p2 float64
	for iter := 0; ; {
		u := r.pr[ip1+2] - r.pr[ip1]
		v := r.pr[ip1+2] - 2.0*r.pr[ip1+1] + r.pr[ip1]
		t := 2.0 * (math.Abs(yy) - r.pr[ip1+1]) / u
		c := v / u
		p2 = t * (1.0 - c*t*(1.0-2.0*c*t))
		if p2 < 0 && ip1 != 1 {
			ip1--
			continue
		}
		phid = (p2 + float64(ip1)) * 5.0
		if y < 0 {
			phid = -phid
		}
		for {
			ip1, p2 = robinsonRow(phid)
			y1 := r.radius * interp(&r.pr, ip1, p2) * numeric.HalfPi
			if y < 0 {
				y1 = -y1
			}
			phid -= 180.0 * (y1 - y) / math.Pi / r.radius
			iter++
			if iter > 75 {
				return math.NaN(), math.NaN(), fmt.Errorf("legacy: robinson: inverse: %w", numeric.ErrNoConvergence)
			}
			if math.Abs(y1-y) <= .00001 {
				break
			}
		}
		break
	}
	lat = phid * numeric.D2R
	lon = numeric.AdjustLon(r.lon0 + x/r.radius/interp(&r.xr, ip1, p2))
	return lon, lat, nil
}

func (r *robinson) describe(p *report.Printer) {
	p.Title("ROBINSON")
	p.Radius(r.radius)
	p.CenLonMer(r.lon0)
	p.OffsetP(r.falseEasting, r.falseNorthing)
}

type mollweide struct {
	common
	lon0 float64
}

func (m *mollweide) forward(lon, lat float64) (x, y float64, err error) {
	dlon := numeric.AdjustLon(lon - m.lon0)
	theta, err := mollweideTheta(lat)
	if err != nil {
		return math.NaN(), math.NaN(), fmt.Errorf("legacy: mollweide: %w", err)
	}
	if numeric.HalfPi-math.Abs(lat) < numeric.Epsilon {
		dlon = 0
	}
	x = 0.900316316158*m.radius*dlon*math.Cos(theta) + m.falseEasting
	y = 1.4142135623731*m.radius*math.Sin(theta) + m.falseNorthing
	return x, y, nil
}

func (m *mollweide) inverse(x, y float64) (lon, lat float64, err error) {
	x -= m.falseEasting
	y -= m.falseNorthing
	arg := y / (1.4142135623731 * m.radius)
	if math.Abs(arg) > 0.999999999999 {
		arg = numeric.Sign(arg) * 0.999999999999
	}
	theta := math.Asin(arg)
	lon = numeric.AdjustLon(m.lon0 + x/(0.900316316158*m.radius*math.Cos(theta)))
	lon = math.Max(-math.Pi, math.Min(math.Pi, lon))
	arg = (2.0*theta + math.Sin(2.0*theta)) / math.Pi
	return lon, numeric.Asinz(arg), nil
}

func (m *mollweide) describe(p *report.Printer) {
	p.Title("MOLLWEIDE")
	p.Radius(m.radius)
	p.CenLonMer(m.lon0)
	p.OffsetP(m.falseEasting, m.falseNorthing)
}

type wagnerIV struct {
	common
	lon0 float64
}

func (w *wagnerIV) forward(lon, lat float64) (x, y float64, err error) {
	dlon := numeric.AdjustLon(lon - w.lon0)
	theta, err := auxTheta(lat, 2.9604205062, 30)
	if err != nil {
		return math.NaN(), math.NaN(), fmt.Errorf("legacy: wagner iv: %w", err)
	}
	x = 0.86310*w.radius*dlon*math.Cos(theta) + w.falseEasting
	y = 1.56548*w.radius*math.Sin(theta) + w.falseNorthing
	return x, y, nil
}

func (w *wagnerIV) inverse(x, y float64) (lon, lat float64, err error) {
	x -= w.falseEasting
	y -= w.falseNorthing
	theta := numeric.Asinz(y / (1.56548 * w.radius))
	lon = numeric.AdjustLon(w.lon0 + x/(0.86310*w.radius*math.Cos(theta)))
	lat = numeric.Asinz((2.0*theta + math.Sin(2.0*theta)) / 2.9604205062)
	return lon, lat, nil
}

func (w *wagnerIV) describe(p *report.Printer) {
	p.Title("WAGNER IV")
	p.Radius(w.radius)
	p.CenLonMer(w.lon0)
	p.OffsetP(w.falseEasting, w.falseNorthing)
}

type wagnerVII struct {
	common
	lon0 float64
}

func (w *wagnerVII) forward(lon, lat float64) (x, y float64, err error) {
	dlon := numeric.AdjustLon(lon - w.lon0)
	sinlon, coslon := math.Sincos(dlon / 3.0)
	s := 0.90631 * math.Sin(lat)
	c0 := math.Sqrt(1 - s*s)
	c1 := math.Sqrt(2.0 / (1.0 + c0*coslon))
	x = 2.66723*w.radius*c0*c1*sinlon + w.falseEasting
	y = 1.24104*w.radius*s*c1 + w.falseNorthing
	return x, y, nil
}

func (w *wagnerVII) inverse(x, y float64) (lon, lat float64, err error) {
	x -= w.falseEasting
	y -= w.falseNorthing
	t1 := x / 2.66723
	t2 := y / 1.24104
	p := math.Sqrt(t1*t1 + t2*t2)
	if p == 0 {
		return w.lon0, 0, nil
	}
	c := 2.0 * numeric.Asinz(p/(2.0*w.radius))
	lat = numeric.Asinz(y * math.Sin(c) / (1.24104 * 0.90631 * p))
	lon = numeric.AdjustLon(w.lon0 + 3.0*math.Atan2(x*math.Tan(c), 2.66723*p))
	return lon, lat, nil
}

func (w *wagnerVII) describe(p *report.Printer) {
	p.Title("WAGNER VII")
	p.Radius(w.radius)
	p.CenLonMer(w.lon0)
	p.OffsetP(w.falseEasting, w.falseNorthing)
}
