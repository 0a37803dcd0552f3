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

package gctputil

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/lnashier/viper"
	"github.com/spatialmodel/gctp"
	"github.com/spatialmodel/gctp/projtrans"
	"github.com/spatialmodel/gctp/units"
	"github.com/spf13/cast"
)

// projectionConfig is a single table of a projection file. Units may be
// a unit name or a unit code, and Params may mix integers and floats.
type projectionConfig struct {
	Code     int
	Zone     int
	Units    interface{}
	Spheroid int
	Params   []interface{}
}

// projectionFile is the layout of a ProjectionFile, for example:
//
//	[Source]
//	Code = 0
//	Units = "degrees"
//
//	[Target]
//	Code = 4
//	Units = "meters"
//	Spheroid = 19
//	Params = [0, 0, 33000000, 45000000, -97000000, 40000000, 0, 0]
type projectionFile struct {
	Source, Target projectionConfig
}

// readProjectionFile reads the source and target projections from the
// TOML file at path.
func readProjectionFile(path string) (src, dst projtrans.Projection, err error) {
	var f projectionFile
	if _, err = toml.DecodeFile(path, &f); err != nil {
		return src, dst, fmt.Errorf("gctp: reading ProjectionFile: %v", err)
	}
	if src, err = f.Source.projection(); err != nil {
		return src, dst, fmt.Errorf("gctp: ProjectionFile [Source]: %v", err)
	}
	if dst, err = f.Target.projection(); err != nil {
		return src, dst, fmt.Errorf("gctp: ProjectionFile [Target]: %v", err)
	}
	return src, dst, nil
}

func (c projectionConfig) projection() (projtrans.Projection, error) {
	u := c.Units
	if u == nil {
		u = units.Degree.String()
		if gctp.Code(c.Code) != gctp.GEO {
			u = units.Meter.String()
		}
	}
	return newProjection(c.Code, c.Zone, u, c.Spheroid, c.Params)
}

// loadProjections returns the source and target projections configured
// in cfg. A ProjectionFile, when set, takes precedence over the
// individual Source and Target variables.
func loadProjections(cfg *viper.Viper) (src, dst projtrans.Projection, err error) {
	if f := cfg.GetString("ProjectionFile"); f != "" {
		return readProjectionFile(os.ExpandEnv(f))
	}
	if src, err = configProjection(cfg, "Source"); err != nil {
		return src, dst, err
	}
	dst, err = configProjection(cfg, "Target")
	return src, dst, err
}

// configProjection reads the projection whose variables are prefixed
// with prefix.
func configProjection(cfg *viper.Viper, prefix string) (projtrans.Projection, error) {
	code, err := cast.ToIntE(cfg.Get(prefix + ".Code"))
	if err != nil {
		return projtrans.Projection{}, fmt.Errorf("gctp: reading '%s.Code': %v", prefix, err)
	}
	zone, err := cast.ToIntE(cfg.Get(prefix + ".Zone"))
	if err != nil {
		return projtrans.Projection{}, fmt.Errorf("gctp: reading '%s.Zone': %v", prefix, err)
	}
	spheroid, err := cast.ToIntE(cfg.Get(prefix + ".Spheroid"))
	if err != nil {
		return projtrans.Projection{}, fmt.Errorf("gctp: reading '%s.Spheroid': %v", prefix, err)
	}
	p, err := newProjection(code, zone, cfg.Get(prefix+".Units"), spheroid, cfg.Get(prefix+".Params"))
	if err != nil {
		return p, fmt.Errorf("gctp: reading '%s': %v", prefix, err)
	}
	return p, nil
}

func newProjection(code, zone int, u interface{}, spheroid int, params interface{}) (projtrans.Projection, error) {
	unit, err := parseUnits(u)
	if err != nil {
		return projtrans.Projection{}, err
	}
	p, err := parseParams(params)
	if err != nil {
		return projtrans.Projection{}, err
	}
	return projtrans.NewProjection(gctp.Code(code), zone, unit, spheroid, p), nil
}

// parseUnits accepts either a unit name ("meters", "dms", ...) or a
// numeric unit code.
func parseUnits(v interface{}) (units.Unit, error) {
	if s, ok := v.(string); ok {
		if u, err := units.Parse(strings.ToLower(strings.TrimSpace(s))); err == nil {
			return u, nil
		}
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("invalid units %v", v)
	}
	u := units.Unit(n)
	if !u.Valid() {
		return 0, fmt.Errorf("invalid unit code %d", n)
	}
	return u, nil
}

// parseParams converts a list of projection parameters, given as a
// slice or as a comma or space separated string, to floats.
func parseParams(v interface{}) ([]float64, error) {
	var vals []interface{}
	switch t := v.(type) {
	case nil:
		return nil, nil
	case []float64:
		vals = make([]interface{}, len(t))
		for i, f := range t {
			vals[i] = f
		}
	case string:
		for _, s := range strings.FieldsFunc(t, func(r rune) bool { return r == ',' || unicode.IsSpace(r) }) {
			vals = append(vals, s)
		}
	case []string:
		for _, s := range t {
			for _, ss := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || unicode.IsSpace(r) }) {
				vals = append(vals, ss)
			}
		}
	default:
		var err error
		if vals, err = cast.ToSliceE(v); err != nil {
			return nil, fmt.Errorf("invalid projection parameters %v", v)
		}
	}
	if len(vals) > gctp.NumParams {
		return nil, fmt.Errorf("%d projection parameters given but at most %d are allowed", len(vals), gctp.NumParams)
	}
	p := make([]float64, len(vals))
	for i, val := range vals {
		f, err := cast.ToFloat64E(val)
		if err != nil {
			return nil, fmt.Errorf("projection parameter %d: %v", i, err)
		}
		p[i] = f
	}
	return p, nil
}
