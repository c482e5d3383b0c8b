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

package aqeq

import (
	"fmt"
	"math"
)

// Neutral water.
const (
	NeutralH  = 1e-7 // mol/L
	NeutralPH = 7.0
)

// EquilibriumState is the solution of the charge balance for one set of
// total concentrations.
type EquilibriumState struct {
	// H is the hydrogen ion concentration [mol/L].
	H float64

	// PH is -log10(H).
	PH float64

	// Species holds the dissociated species concentrations at H.
	Species Speciation

	// Residual is the charge balance [eq/L] evaluated at H.
	Residual float64

	// Iterations is the number of root finding iterations used.
	Iterations int
}

func newState(h float64, tot TotalConcentrations, k DissociationConstants, iterations int) EquilibriumState {
	return EquilibriumState{
		H:          h,
		PH:         -math.Log10(h),
		Species:    Speciate(h, tot, k),
		Residual:   ChargeBalance(h, tot, k),
		Iterations: iterations,
	}
}

// Equilibrate finds the hydrogen ion concentration at which a solution
// with totals tot is electrically neutral. Errors from the root finder
// are returned unchanged so they can be matched with errors.Is against
// ErrNoSignChange and ErrNotConverged.
func Equilibrate(tot TotalConcentrations, k DissociationConstants, s Solver) (EquilibriumState, error) {
	h, n, err := s.Root(chargeBalanceFunc(tot, k))
	if err != nil {
		return EquilibriumState{}, err
	}
	return newState(h, tot, k, n), nil
}

// Status tells whether a Result was computed or substituted.
type Status int

const (
	// Solved means the pH and alkalinity were calculated from the
	// charge balance.
	Solved Status = iota

	// Defaulted means that conventional values were substituted;
	// Result.Reason says why.
	Defaulted
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "solved"
	case Defaulted:
		return "defaulted"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Reason explains why a Result is Defaulted.
type Reason int

// Reasons for substituting default values.
const (
	NoReason        Reason = iota
	NonLiquidPhase         // gas and solid streams have no aqueous equilibrium
	DegenerateInput        // none of the equilibrium components are present
	SolverFailure          // the charge balance could not be solved
)

func (r Reason) String() string {
	switch r {
	case NoReason:
		return ""
	case NonLiquidPhase:
		return "non-liquid phase"
	case DegenerateInput:
		return "degenerate input"
	case SolverFailure:
		return "solver failure"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Result is the outcome of solving the equilibrium of one stream.
type Result struct {
	Status Status
	Reason Reason

	// PH and Alkalinity [meq/L] are the values to annotate the stream
	// with.
	PH, Alkalinity float64

	// Totals are the normalized concentrations the result was computed
	// from. They are zero for non-liquid streams.
	Totals TotalConcentrations

	// State is the equilibrium the result was computed from. It is nil
	// when the calculation was short-circuited. After a solver failure
	// it holds the speciation at neutral pH.
	State *EquilibriumState

	// Err holds the root finding error after a solver failure.
	Err error
}

// Solved reports whether r was calculated rather than substituted.
func (r Result) Solved() bool {
	return r.Status == Solved
}

func (r Result) String() string {
	if r.Status == Solved {
		return fmt.Sprintf("pH %.2f, alkalinity %.3g meq/L", r.PH, r.Alkalinity)
	}
	return fmt.Sprintf("pH %.2f, alkalinity %.3g meq/L (%v: %v)", r.PH, r.Alkalinity, r.Status, r.Reason)
}
