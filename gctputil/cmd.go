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

// Package gctputil holds the configuration and command-line interface
// of the gctp command.
package gctputil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/gctp"
	"github.com/spatialmodel/gctp/projtrans"
	"github.com/spatialmodel/gctp/report"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	projectionFlags := []*pflag.FlagSet{transformCmd.Flags(), describeCmd.Flags()}

	// Options are the configuration options available to GCTP.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "ProjectionFile",
			usage: `
              ProjectionFile is the path to a TOML file with [Source] and [Target]
              tables, each holding Code, Zone, Units, Spheroid and Params. When it
              is set the Source and Target variables are ignored.`,
			defaultVal: "",
			flagsets:   projectionFlags,
		},
		{
			name: "ThreadsafeOnly",
			usage: `
              ThreadsafeOnly makes the transformation fail rather than use a
              projection that is not threadsafe.`,
			defaultVal: false,
			flagsets:   projectionFlags,
		},
	}

	for _, leg := range []string{"Source", "Target"} {
		options = append(options, []struct {
			name, usage, shorthand string
			defaultVal             interface{}
			flagsets               []*pflag.FlagSet
		}{
			{
				name: leg + ".Code",
				usage: fmt.Sprintf(`
              %s.Code is the projection code, between 0 (geographic) and 31.`, leg),
				defaultVal: 0,
				flagsets:   projectionFlags,
			},
			{
				name: leg + ".Zone",
				usage: fmt.Sprintf(`
              %s.Zone is the UTM or State Plane zone. It is ignored by other
              projections.`, leg),
				defaultVal: 0,
				flagsets:   projectionFlags,
			},
			{
				name: leg + ".Units",
				usage: fmt.Sprintf(`
              %s.Units is the unit of the coordinates: radians, feet, meters,
              seconds, degrees or dms.`, leg),
				defaultVal: "degrees",
				flagsets:   projectionFlags,
			},
			{
				name: leg + ".Spheroid",
				usage: fmt.Sprintf(`
              %s.Spheroid is the spheroid code. A negative value takes the axes
              from the first two projection parameters.`, leg),
				defaultVal: 0,
				flagsets:   projectionFlags,
			},
			{
				name: leg + ".Params",
				usage: fmt.Sprintf(`
              %s.Params holds up to 15 projection parameters. Angles are in
              packed degrees, minutes and seconds (DDDMMMSSS.SS).`, leg),
				defaultVal: []string{},
				flagsets:   projectionFlags,
			},
		}...)
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("GCTP")
	Cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(transformCmd)
	Root.AddCommand(describeCmd)
	Root.AddCommand(zoneCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("gctp: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// newLogger returns a logger that writes engine messages to w.
func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.Out = w
	l.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	return l
}

// engineOptions returns the transformation options set in cfg.
func engineOptions(cfg *viper.Viper) []gctp.Option {
	var opts []gctp.Option
	if cfg.GetBool("ThreadsafeOnly") {
		opts = append(opts, gctp.ThreadsafeOnly())
	}
	return opts
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "gctp",
	Short: "A cartographic coordinate transformation tool.",
	Long: `GCTP converts coordinates between geographic longitude and latitude and
a set of cartographic projections, and between any two of those projections.
Use the subcommands specified below to access the functionality.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'GCTP_var' where 'var' is the
name of the variable to be set, with '.' replaced by '_' (for example
GCTP_SOURCE_CODE).
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of GCTP.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "GCTP v%s\n", gctp.Version)
	},
	DisableAutoGenTag: true,
}

// transformCmd converts coordinate pairs between the configured
// projections.
var transformCmd = &cobra.Command{
	Use:   "transform [x y]...",
	Short: "Transform coordinates.",
	Long: `transform converts coordinate pairs from the Source to the Target projection.
Pairs are read from the arguments, or from standard input when no arguments are
given, and each converted pair is printed on its own line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var r io.Reader = os.Stdin
		if len(args) > 0 {
			r = strings.NewReader(strings.Join(args, " "))
		}
		return Transform(Cfg, r, cmd.OutOrStdout(), os.Stderr)
	},
	DisableAutoGenTag: true,
}

// describeCmd prints the parameters of the configured projections.
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Describe the projections.",
	Long: `describe prints the parameters of the inverse projection from the Source
and of the forward projection to the Target.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Describe(Cfg, cmd.OutOrStdout(), os.Stderr)
	},
	DisableAutoGenTag: true,
}

// zoneCmd prints the UTM zone of a longitude.
var zoneCmd = &cobra.Command{
	Use:   "zone lon",
	Short: "Print the UTM zone of a longitude.",
	Long:  `zone prints the UTM zone containing the given longitude in degrees.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lon, err := cast.ToFloat64E(args[0])
		if err != nil {
			return fmt.Errorf("gctp: invalid longitude %q", args[0])
		}
		if lon < -180 || lon > 180 {
			return fmt.Errorf("gctp: longitude %g is out of range", lon)
		}
		fmt.Fprintln(cmd.OutOrStdout(), gctp.CalcUTMZone(lon))
		return nil
	},
	DisableAutoGenTag: true,
}

// Transform reads whitespace-separated coordinate pairs from r,
// transforms them between the projections configured in cfg and writes
// the results to w, one pair per line. Engine messages are logged to
// logOut.
func Transform(cfg *viper.Viper, r io.Reader, w, logOut io.Writer) error {
	src, dst, err := loadProjections(cfg)
	if err != nil {
		return err
	}
	t, err := projtrans.New(src, dst, newLogger(logOut), engineOptions(cfg)...)
	if err != nil {
		return err
	}
	defer t.Destroy()

	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	var xy [2]float64
	n := 0
	for s.Scan() {
		v, err := cast.ToFloat64E(s.Text())
		if err != nil {
			return fmt.Errorf("gctp: invalid coordinate %q", s.Text())
		}
		xy[n%2] = v
		n++
		if n%2 == 1 {
			continue
		}
		x, y, err := t.Transform(xy[0], xy[1])
		if err != nil {
			return fmt.Errorf("gctp: transforming (%g, %g): %v", xy[0], xy[1], err)
		}
		fmt.Fprintf(w, "%.6f %.6f\n", x, y)
	}
	if err := s.Err(); err != nil {
		return err
	}
	if n%2 != 0 {
		return fmt.Errorf("gctp: coordinate %g has no pair", xy[0])
	}
	return nil
}

// Describe writes the parameters of the projections configured in cfg,
// and any message from building them, to w.
func Describe(cfg *viper.Viper, w, logOut io.Writer) error {
	src, dst, err := loadProjections(cfg)
	if err != nil {
		return err
	}
	text := func(m report.Message) { fmt.Fprintln(w, m.Text) }
	opts := append(engineOptions(cfg), gctp.WithSink(text), gctp.WithEcho())
	t, err := projtrans.New(src, dst, newLogger(logOut), opts...)
	if err != nil {
		return err
	}
	t.Destroy()
	return nil
}
