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

package aqequtil

import (
	"fmt"
	"io"
	"strings"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/wwtp/aqeq"
)

// NewAnnotator creates an annotator from the solver and default
// alkalinity settings in cfg.
func NewAnnotator(cfg *viper.Viper) (*aqeq.Annotator, error) {
	a := aqeq.NewAnnotator()
	var err error
	if a.DegenerateAlkalinity, err = cast.ToFloat64E(cfg.Get("DegenerateAlkalinity")); err != nil {
		return nil, fmt.Errorf("aqequtil: reading 'DegenerateAlkalinity': %v", err)
	}
	if a.Solver.Lower, err = cast.ToFloat64E(cfg.Get("Solver.Lower")); err != nil {
		return nil, fmt.Errorf("aqequtil: reading 'Solver.Lower': %v", err)
	}
	if a.Solver.Upper, err = cast.ToFloat64E(cfg.Get("Solver.Upper")); err != nil {
		return nil, fmt.Errorf("aqequtil: reading 'Solver.Upper': %v", err)
	}
	if a.Solver.XTol, err = cast.ToFloat64E(cfg.Get("Solver.XTol")); err != nil {
		return nil, fmt.Errorf("aqequtil: reading 'Solver.XTol': %v", err)
	}
	if a.Solver.MaxIter, err = cast.ToIntE(cfg.Get("Solver.MaxIter")); err != nil {
		return nil, fmt.Errorf("aqequtil: reading 'Solver.MaxIter': %v", err)
	}
	if !(a.Solver.Lower > 0 && a.Solver.Upper > a.Solver.Lower) {
		return nil, fmt.Errorf("aqequtil: the solver bracket [%g, %g] must be positive and increasing",
			a.Solver.Lower, a.Solver.Upper)
	}
	return a, nil
}

// Annotate calculates the pH and alkalinity of each stream and writes
// a report to w in the given format.
func Annotate(w io.Writer, streams []*WasteStream, format string, a *aqeq.Annotator) error {
	rows := make([]Row, 0, len(streams))
	for _, s := range streams {
		r, err := a.Annotate(s)
		if err != nil {
			return fmt.Errorf("aqequtil: stream %s: %v", s.ID, err)
		}
		if a.Log != nil {
			a.Log.WithFields(logrus.Fields{
				"stream":     s.ID,
				"pH":         r.PH,
				"alkalinity": r.Alkalinity,
				"status":     r.Status.String(),
			}).Info("annotated stream")
		}
		rows = append(rows, NewRow(s, r))
	}
	return WriteReport(w, format, rows)
}

// ParseConcentrations parses component concentrations given as
// ID=value pairs, e.g. S_IC=600.
func ParseConcentrations(args []string) (map[string]float64, error) {
	conc := make(map[string]float64, len(args))
	for _, arg := range args {
		kv := strings.SplitN(arg, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("aqequtil: invalid concentration '%s'; the format is ID=value", arg)
		}
		if _, err := aqeq.ParseComponent(kv[0]); err != nil {
			return nil, fmt.Errorf("aqequtil: %v", err)
		}
		v, err := cast.ToFloat64E(kv[1])
		if err != nil {
			return nil, fmt.Errorf("aqequtil: invalid value for %s: %v", kv[0], err)
		}
		conc[kv[0]] = v
	}
	return conc, nil
}

// Solve calculates the pH and alkalinity of a single liquid stream with
// the concentrations given in args (see ParseConcentrations).
func Solve(w io.Writer, args []string, format string, a *aqeq.Annotator) error {
	conc, err := ParseConcentrations(args)
	if err != nil {
		return err
	}
	s, err := NewWasteStream("cli", conc)
	if err != nil {
		return err
	}
	return Annotate(w, []*WasteStream{s}, format, a)
}

// Check evaluates the charge balance of each liquid stream with a
// measured pH and writes the residuals to w. It returns an error if any
// residual is larger than tol.
func Check(w io.Writer, streams []*WasteStream, a *aqeq.Annotator, tol float64) error {
	var rows []CheckRow
	var failed int
	for _, s := range streams {
		if s.MeasuredPH == nil || s.Phase() != aqeq.Liquid {
			continue
		}
		snap := aqeq.TakeSnapshot(s)
		tot, err := aqeq.Normalize(snap.Concentrations, a.Conversions)
		if err != nil {
			return err
		}
		r, err := aqeq.CheckChargeBalance(tot, *s.MeasuredPH, a.Constants, tol)
		row := CheckRow{ID: s.ID, MeasuredPH: *s.MeasuredPH, Residual: r, OK: err == nil}
		if err != nil {
			failed++
			if a.Log != nil {
				a.Log.WithFields(logrus.Fields{"stream": s.ID, "residual": r}).Warn(err)
			}
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return fmt.Errorf("aqequtil: no liquid streams with a MeasuredPH to check")
	}
	if err := writeCheckTable(w, rows); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("aqequtil: %d of %d streams are not charge balanced", failed, len(rows))
	}
	return nil
}
