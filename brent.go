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
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoSignChange is returned when a function has the same sign at
	// both ends of the search bracket.
	ErrNoSignChange = errors.New("no sign change in bracket")

	// ErrNotConverged is returned when the iteration budget is spent
	// before the tolerance is met.
	ErrNotConverged = errors.New("root finding did not converge")
)

// Solver finds roots of scalar functions in a bracket using Brent's
// method with hyperbolic extrapolation.
type Solver struct {
	// Lower and Upper are the ends of the bracket.
	Lower, Upper float64

	// XTol and RTol are the absolute and relative tolerances on the
	// location of the root. Iteration stops once the bracket is
	// narrower than the smaller of the two, so the relative tolerance
	// governs for roots much smaller than XTol.
	XTol, RTol float64

	// MaxIter is the maximum number of iterations.
	MaxIter int
}

// DefaultSolver returns the solver used for hydrogen ion
// concentrations: the bracket (1e-14, 1) mol/L, an absolute tolerance
// of 1e-12 mol/L that tightens to 4 machine epsilons relative at high
// pH, and at most 100 iterations.
func DefaultSolver() Solver {
	return Solver{
		Lower:   1e-14,
		Upper:   1,
		XTol:    1e-12,
		RTol:    4 * 2.220446049250313e-16,
		MaxIter: 100,
	}
}

// check returns an error if the solver settings are unusable.
func (s Solver) check() error {
	if !(s.Lower < s.Upper) {
		return fmt.Errorf("aqeq: invalid bracket [%g, %g]", s.Lower, s.Upper)
	}
	if !(s.XTol > 0) || !(s.RTol > 0) {
		return fmt.Errorf("aqeq: invalid tolerances xtol=%g rtol=%g", s.XTol, s.RTol)
	}
	if s.MaxIter < 1 {
		return fmt.Errorf("aqeq: MaxIter=%d but should be >= 1", s.MaxIter)
	}
	return nil
}

// tolerance returns the bracket width at which x is accepted as the
// root. RTol*|x| is at least one ulp of x for RTol >= 2*eps, so the
// iteration can always make progress.
func (s Solver) tolerance(x float64) float64 {
	return math.Min(s.XTol, s.RTol*math.Abs(x))
}

// Root returns the root of f in the solver's bracket and the number of
// iterations used. f must change sign over the bracket; otherwise the
// returned error wraps ErrNoSignChange. If the tolerance is not met
// within MaxIter iterations the best estimate is returned along with an
// error wrapping ErrNotConverged.
func (s Solver) Root(f func(float64) float64) (float64, int, error) {
	if err := s.check(); err != nil {
		return math.NaN(), 0, err
	}
	xpre, xcur := s.Lower, s.Upper
	fpre, fcur := f(xpre), f(xcur)
	if math.IsNaN(fpre) || math.IsNaN(fcur) {
		return math.NaN(), 0, fmt.Errorf("aqeq: function is NaN at bracket end: %w", ErrNoSignChange)
	}
	if fpre*fcur > 0 {
		return math.NaN(), 0, fmt.Errorf("aqeq: f(%g)=%g, f(%g)=%g: %w", xpre, fpre, xcur, fcur, ErrNoSignChange)
	}
	if fpre == 0 {
		return xpre, 0, nil
	}
	if fcur == 0 {
		return xcur, 0, nil
	}

	// xblk is the contrapoint: the root always lies between xcur and xblk.
	var xblk, fblk, spre, scur float64
	for i := 1; i <= s.MaxIter; i++ {
		if fpre != 0 && fcur != 0 && math.Signbit(fpre) != math.Signbit(fcur) {
			xblk, fblk = xpre, fpre
			spre = xcur - xpre
			scur = spre
		}
		if math.Abs(fblk) < math.Abs(fcur) {
			xpre, xcur, xblk = xcur, xblk, xcur
			fpre, fcur, fblk = fcur, fblk, fcur
		}

		delta := s.tolerance(xcur) / 2
		sbis := (xblk - xcur) / 2
		if fcur == 0 || math.Abs(sbis) < delta {
			return xcur, i, nil
		}

		if math.Abs(spre) > delta && math.Abs(fcur) < math.Abs(fpre) {
			var stry float64
			if xpre == xblk {
				// secant
				stry = -fcur * (xcur - xpre) / (fcur - fpre)
			} else {
				// hyperbolic extrapolation
				dpre := (fpre - fcur) / (xpre - xcur)
				dblk := (fblk - fcur) / (xblk - xcur)
				stry = -fcur * (fblk - fpre) / (fblk*dpre - fpre*dblk)
			}
			if 2*math.Abs(stry) < math.Min(math.Abs(spre), 3*math.Abs(sbis)-delta) {
				spre, scur = scur, stry
			} else {
				spre, scur = sbis, sbis
			}
		} else {
			spre, scur = sbis, sbis
		}

		xpre, fpre = xcur, fcur
		switch {
		case math.Abs(scur) > delta:
			xcur += scur
		case sbis > 0:
			xcur += delta
		default:
			xcur -= delta
		}
		fcur = f(xcur)
	}
	return xcur, s.MaxIter, fmt.Errorf("aqeq: %d iterations: %w", s.MaxIter, ErrNotConverged)
}
