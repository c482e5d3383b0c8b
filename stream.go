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

	"github.com/sirupsen/logrus"
)

// Phase is the physical phase of a stream.
type Phase byte

// Stream phases.
const (
	Liquid Phase = 'l'
	Gas    Phase = 'g'
	Solid  Phase = 's'
)

func (p Phase) String() string {
	return string(p)
}

// ParsePhase returns the phase with the given tag ("l", "g" or "s").
func ParsePhase(tag string) (Phase, error) {
	switch tag {
	case "l":
		return Liquid, nil
	case "g":
		return Gas, nil
	case "s":
		return Solid, nil
	}
	return 0, fmt.Errorf("aqeq: invalid phase '%s'; valid options are l, g, and s", tag)
}

// Stream is a simulated stream that can be annotated with its pH and
// alkalinity.
type Stream interface {
	// Phase returns the phase of the stream.
	Phase() Phase

	// Concentration returns the concentration of component c in
	// kg/m³ (kg COD/m³ for volatile fatty acids, keq/m³ for strong
	// ions). ok is false if the stream does not carry c.
	Concentration(c Component) (v float64, ok bool)

	// SetPH sets the pH of the stream.
	SetPH(float64)

	// SetAlkalinity sets the alkalinity of the stream in meq/L.
	SetAlkalinity(float64)
}

// Snapshot is a copy of the inputs a Stream provides for the
// equilibrium calculation.
type Snapshot struct {
	Phase          Phase
	Concentrations map[Component]float64
}

// TakeSnapshot copies the phase and equilibrium component
// concentrations of s. Missing and non-finite concentrations are
// recorded as zero.
func TakeSnapshot(s Stream) Snapshot {
	snap := Snapshot{
		Phase:          s.Phase(),
		Concentrations: make(map[Component]float64, numComponents),
	}
	for _, c := range Components {
		v, ok := s.Concentration(c)
		if !ok {
			v = 0
		}
		snap.Concentrations[c] = sanitize(v)
	}
	return snap
}

// empty reports whether every equilibrium component is zero.
func (s Snapshot) empty() bool {
	for _, c := range Components {
		if sanitize(s.Concentrations[c]) != 0 {
			return false
		}
	}
	return true
}

// Alkalinity defaults [meq/L] for streams in which none of the
// equilibrium components are present. LegacyDegenerateAlkalinity
// matches results from earlier simulations; DiluteWaterAlkalinity is
// typical of dilute natural water.
const (
	LegacyDegenerateAlkalinity = 2500.0
	DiluteWaterAlkalinity      = 2.5
)

// Annotator calculates stream pH and alkalinity.
// The zero value is not usable; use NewAnnotator.
type Annotator struct {
	Constants   DissociationConstants
	Conversions ConversionTable
	Solver      Solver

	// DegenerateAlkalinity [meq/L] is reported for liquid streams that
	// contain none of the equilibrium components.
	DegenerateAlkalinity float64

	Log logrus.FieldLogger
}

// NewAnnotator returns an Annotator with the reference dissociation
// constants, the ADM1 unit conversions and the default solver.
func NewAnnotator() *Annotator {
	return &Annotator{
		Constants:            ReferenceConstants(),
		Conversions:          DefaultConversions(),
		Solver:               DefaultSolver(),
		DegenerateAlkalinity: LegacyDegenerateAlkalinity,
		Log:                  logrus.StandardLogger(),
	}
}

// Solve calculates the pH and alkalinity of the stream described by
// snap. It does not modify anything. The returned error is only
// non-nil if the Annotator is misconfigured; problems with the stream
// itself are reported through Result.Status.
func (a *Annotator) Solve(snap Snapshot) (Result, error) {
	if snap.Phase != Liquid {
		return Result{Status: Defaulted, Reason: NonLiquidPhase, PH: NeutralPH, Alkalinity: 0}, nil
	}
	if snap.empty() {
		return Result{Status: Defaulted, Reason: DegenerateInput, PH: NeutralPH, Alkalinity: a.DegenerateAlkalinity}, nil
	}

	tot, err := Normalize(snap.Concentrations, a.Conversions)
	if err != nil {
		return Result{}, err
	}

	state, err := Equilibrate(tot, a.Constants, a.Solver)
	if err != nil {
		state = newState(NeutralH, tot, a.Constants, 0)
		state.PH = NeutralPH
		return Result{
			Status:     Defaulted,
			Reason:     SolverFailure,
			PH:         NeutralPH,
			Alkalinity: Alkalinity(NeutralPH, tot, a.Constants),
			Totals:     tot,
			State:      &state,
			Err:        err,
		}, nil
	}
	return Result{
		Status:     Solved,
		PH:         state.PH,
		Alkalinity: Alkalinity(state.PH, tot, a.Constants),
		Totals:     tot,
		State:      &state,
	}, nil
}

// Annotate calculates the pH and alkalinity of s and writes them onto
// s. Solver failures are logged as warnings and annotated with neutral
// pH; they can be told apart from real solutions by the Status of the
// returned Result.
func (a *Annotator) Annotate(s Stream) (Result, error) {
	r, err := a.Solve(TakeSnapshot(s))
	if err != nil {
		return r, err
	}
	if r.Reason == SolverFailure && a.Log != nil {
		a.Log.WithFields(logrus.Fields{
			"reason": r.Reason.String(),
			"error":  r.Err,
		}).Warn("aqeq: pH solver failed to find root; using neutral pH")
	}
	s.SetPH(r.PH)
	s.SetAlkalinity(r.Alkalinity)
	return r, nil
}
