/*
Copyright © 2026 the aqeq authors.
This file is part of aqeq.

aqeq is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

aqeq is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with aqeq.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package aqequtil contains the command-line interface for aqeq.
package aqequtil

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/wwtp/aqeq"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to aqeq.
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
			name: "LogLevel",
			usage: `
              LogLevel is the minimum level of log messages to print.
              Valid options are "debug", "info", "warn", and "error".`,
			defaultVal: "warn",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Streams",
			usage: `
              Streams is the path to the TOML file holding the streams to
              process. It can include environment variables.`,
			shorthand:  "s",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{annotateCmd.Flags(), checkCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path to write the report to. It can include
              environment variables. If OutputFile is left blank, the report
              is written to standard output.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{annotateCmd.Flags(), solveCmd.Flags(), checkCmd.Flags()},
		},
		{
			name: "OutputFormat",
			usage: `
              OutputFormat is the format of the report. Valid options are
              "table" and "json".`,
			shorthand:  "f",
			defaultVal: TableFormat,
			flagsets:   []*pflag.FlagSet{annotateCmd.Flags(), solveCmd.Flags()},
		},
		{
			name: "DegenerateAlkalinity",
			usage: `
              DegenerateAlkalinity is the alkalinity [meq/L] reported for liquid
              streams that contain none of the equilibrium components. The
              default reproduces earlier simulation results; 2.5 is typical of
              dilute natural water.`,
			defaultVal: aqeq.LegacyDegenerateAlkalinity,
			flagsets:   []*pflag.FlagSet{annotateCmd.Flags(), solveCmd.Flags(), checkCmd.Flags()},
		},
		{
			name: "Solver.Lower",
			usage: `
              Solver.Lower is the lower end of the bracket [mol/L] searched for
              the hydrogen ion concentration.`,
			defaultVal: aqeq.DefaultSolver().Lower,
			flagsets:   []*pflag.FlagSet{annotateCmd.Flags(), solveCmd.Flags(), checkCmd.Flags()},
		},
		{
			name: "Solver.Upper",
			usage: `
              Solver.Upper is the upper end of the bracket [mol/L] searched for
              the hydrogen ion concentration.`,
			defaultVal: aqeq.DefaultSolver().Upper,
			flagsets:   []*pflag.FlagSet{annotateCmd.Flags(), solveCmd.Flags(), checkCmd.Flags()},
		},
		{
			name: "Solver.XTol",
			usage: `
              Solver.XTol is the absolute tolerance [mol/L] on the hydrogen ion
              concentration. Values much larger than the hydrogen ion
              concentration make the solution imprecise at high pH.`,
			defaultVal: aqeq.DefaultSolver().XTol,
			flagsets:   []*pflag.FlagSet{annotateCmd.Flags(), solveCmd.Flags(), checkCmd.Flags()},
		},
		{
			name: "Solver.MaxIter",
			usage: `
              Solver.MaxIter is the maximum number of root finding iterations.`,
			defaultVal: aqeq.DefaultSolver().MaxIter,
			flagsets:   []*pflag.FlagSet{annotateCmd.Flags(), solveCmd.Flags(), checkCmd.Flags()},
		},
		{
			name: "ChargeTolerance",
			usage: `
              ChargeTolerance is the largest charge imbalance [eq/L] that
              check accepts.`,
			defaultVal: aqeq.DefaultChargeTolerance,
			flagsets:   []*pflag.FlagSet{checkCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("AQEQ")
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
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
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
	Root.AddCommand(annotateCmd)
	Root.AddCommand(solveCmd)
	Root.AddCommand(checkCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets the log level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("aqequtil: problem reading configuration file: %v", err)
		}
	}
	lvl, err := logrus.ParseLevel(Cfg.GetString("LogLevel"))
	if err != nil {
		return fmt.Errorf("aqequtil: %v", err)
	}
	logrus.SetLevel(lvl)
	return nil
}

// output returns the writer the report should be written to and a
// function to close it.
func output(cmd *cobra.Command) (io.Writer, func() error, error) {
	path := os.ExpandEnv(Cfg.GetString("OutputFile"))
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("aqequtil: creating OutputFile: %v", err)
	}
	return f, f.Close, nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "aqeq",
	Short: "Acid-base equilibrium for anaerobic digester streams.",
	Long: `aqeq calculates the pH and alkalinity of ADM1 liquid streams from the
total concentrations of strong ions, inorganic nitrogen and carbon, and
volatile fatty acids by solving the charge balance.

Use the subcommands specified below to access the functionality.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'AQEQ_var' where 'var' is the
name of the variable to be set, with '.' replaced by '_'.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of aqeq.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("aqeq v%s\n", aqeq.Version)
	},
	DisableAutoGenTag: true,
}

// annotateCmd calculates the pH and alkalinity of the streams in a file.
var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Calculate pH and alkalinity of streams in a file.",
	Long: `annotate reads the streams in the TOML file given by --Streams,
calculates the pH and alkalinity of each, and writes a report.
Streams that are not liquid, that contain none of the equilibrium
components, or for which the charge balance cannot be solved are reported
with default values and a reason.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := NewAnnotator(Cfg)
		if err != nil {
			return err
		}
		streams, err := ReadStreamFile(Cfg.GetString("Streams"))
		if err != nil {
			return err
		}
		w, closeFunc, err := output(cmd)
		if err != nil {
			return err
		}
		if err := Annotate(w, streams, Cfg.GetString("OutputFormat"), a); err != nil {
			closeFunc()
			return err
		}
		return closeFunc()
	},
	DisableAutoGenTag: true,
}

// solveCmd calculates the pH and alkalinity of one stream.
var solveCmd = &cobra.Command{
	Use:   "solve ID=value...",
	Short: "Calculate pH and alkalinity of a single liquid stream.",
	Long: `solve calculates the pH and alkalinity of a liquid stream with the
component concentrations given as arguments, for example

	aqeq solve S_cat=40 S_an=20 S_IN=0.05 S_IC=0.6 S_ac=0.5

Valid component IDs are S_cat, S_an, S_IN, S_IC, S_ac, S_pro, S_bu, and S_va.
Components that are not given are zero.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := NewAnnotator(Cfg)
		if err != nil {
			return err
		}
		w, closeFunc, err := output(cmd)
		if err != nil {
			return err
		}
		if err := Solve(w, args, Cfg.GetString("OutputFormat"), a); err != nil {
			closeFunc()
			return err
		}
		return closeFunc()
	},
	DisableAutoGenTag: true,
}

// checkCmd checks the charge balance of streams at their measured pH.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the charge balance of streams at their measured pH.",
	Long: `check evaluates the charge balance of each liquid stream in the
file given by --Streams that has a MeasuredPH, and fails if any imbalance
is larger than --ChargeTolerance.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := NewAnnotator(Cfg)
		if err != nil {
			return err
		}
		tol, err := cast.ToFloat64E(Cfg.Get("ChargeTolerance"))
		if err != nil {
			return fmt.Errorf("aqequtil: reading 'ChargeTolerance': %v", err)
		}
		streams, err := ReadStreamFile(Cfg.GetString("Streams"))
		if err != nil {
			return err
		}
		w, closeFunc, err := output(cmd)
		if err != nil {
			return err
		}
		if err := Check(w, streams, a, tol); err != nil {
			closeFunc()
			return err
		}
		return closeFunc()
	},
	DisableAutoGenTag: true,
}
