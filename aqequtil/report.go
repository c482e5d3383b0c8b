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
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/wwtp/aqeq"
	"github.com/wwtp/aqeq/internal/hash"
)

// Row is one line of a report.
type Row struct {
	ID     string
	Phase  string
	Status string
	Reason string `json:",omitempty"`
	PH     float64

	// Alkalinity in meq/L and in mg/L as CaCO3.
	Alkalinity      float64
	AlkalinityCaCO3 float64

	// Fingerprint identifies the inputs the row was computed from.
	Fingerprint string

	Error string `json:",omitempty"`
}

// NewRow creates a report row for stream s annotated with result r.
func NewRow(s *WasteStream, r aqeq.Result) Row {
	row := Row{
		ID:              s.ID,
		Phase:           s.Phase().String(),
		Status:          r.Status.String(),
		Reason:          r.Reason.String(),
		PH:              r.PH,
		Alkalinity:      r.Alkalinity,
		AlkalinityCaCO3: aqeq.AsCaCO3(r.Alkalinity),
		Fingerprint:     hash.Short(aqeq.TakeSnapshot(s)),
	}
	if r.Err != nil {
		row.Error = r.Err.Error()
	}
	return row
}

// Report formats.
const (
	TableFormat = "table"
	JSONFormat  = "json"
)

// WriteReport writes rows to w in the given format.
func WriteReport(w io.Writer, format string, rows []Row) error {
	switch format {
	case TableFormat:
		return writeTable(w, rows)
	case JSONFormat:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(rows)
	default:
		return fmt.Errorf("aqequtil: invalid OutputFormat '%s'; valid options are %s and %s", format, TableFormat, JSONFormat)
	}
}

func writeTable(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPhase\tpH\tAlk [meq/L]\tAlk [mg/L CaCO3]\tStatus\tInputs")
	for _, r := range rows {
		status := r.Status
		if r.Reason != "" {
			status += " (" + r.Reason + ")"
		}
		fmt.Fprintf(tw, "%s\t%s\t%.3f\t%.4g\t%.4g\t%s\t%s\n",
			r.ID, r.Phase, r.PH, r.Alkalinity, r.AlkalinityCaCO3, status, r.Fingerprint)
	}
	return tw.Flush()
}

// CheckRow is one line of a charge balance check report.
type CheckRow struct {
	ID         string
	MeasuredPH float64
	Residual   float64
	OK         bool
}

func writeCheckTable(w io.Writer, rows []CheckRow) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tMeasured pH\tResidual [eq/L]\tBalanced")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.3f\t%.3g\t%v\n", r.ID, r.MeasuredPH, r.Residual, r.OK)
	}
	return tw.Flush()
}
