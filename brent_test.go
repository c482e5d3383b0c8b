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
	"math"
	"testing"
)

func TestSolverRoot(t *testing.T) {
	s := Solver{XTol: 1e-12, RTol: 4 * 2.220446049250313e-16, MaxIter: 100}
	tests := []struct {
		name         string
		f            func(float64) float64
		lower, upper float64
		want         float64
	}{
		{name: "sqrt2", f: func(x float64) float64 { return x*x - 2 }, lower: 0, upper: 2, want: math.Sqrt2},
		{name: "cubic", f: func(x float64) float64 { return x*x*x - x - 1 }, lower: 1, upper: 2, want: 1.324717957244746},
		{name: "cos", f: math.Cos, lower: 0, upper: 3, want: math.Pi / 2},
		{name: "decreasing", f: func(x float64) float64 { return math.Exp(-x) - 0.5 }, lower: 0, upper: 5, want: math.Ln2},
		{name: "root at end", f: func(x float64) float64 { return x - 1 }, lower: 0, upper: 1, want: 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s.Lower, s.Upper = test.lower, test.upper
			x, n, err := s.Root(test.f)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(x-test.want) > 1e-11 {
				t.Errorf("have %.15g, want %.15g", x, test.want)
			}
			if n > s.MaxIter {
				t.Errorf("%d iterations", n)
			}
		})
	}
}

func TestSolverNoSignChange(t *testing.T) {
	s := DefaultSolver()
	_, _, err := s.Root(func(x float64) float64 { return x + 1 })
	if !errors.Is(err, ErrNoSignChange) {
		t.Errorf("have %v, want ErrNoSignChange", err)
	}
	_, _, err = s.Root(func(x float64) float64 { return math.NaN() })
	if !errors.Is(err, ErrNoSignChange) {
		t.Errorf("have %v, want ErrNoSignChange", err)
	}
}

func TestSolverNotConverged(t *testing.T) {
	s := Solver{Lower: 0, Upper: 2, XTol: 1e-12, RTol: 1e-15, MaxIter: 1}
	_, n, err := s.Root(func(x float64) float64 { return x*x - 2 })
	if !errors.Is(err, ErrNotConverged) {
		t.Errorf("have %v, want ErrNotConverged", err)
	}
	if n != 1 {
		t.Errorf("have %d iterations, want 1", n)
	}
}

func TestSolverInvalid(t *testing.T) {
	for _, s := range []Solver{
		{Lower: 1, Upper: 0, XTol: 1e-12, RTol: 1e-15, MaxIter: 10},
		{Lower: 0, Upper: 1, XTol: 0, RTol: 1e-15, MaxIter: 10},
		{Lower: 0, Upper: 1, XTol: 1e-12, RTol: 0, MaxIter: 10},
		{Lower: 0, Upper: 1, XTol: 1e-12, RTol: 1e-15, MaxIter: 0},
	} {
		if _, _, err := s.Root(math.Sin); err == nil {
			t.Errorf("%+v: should be an error", s)
		}
	}
}

// Roots much smaller than XTol are located to within the relative
// tolerance.
func TestSolverSmallRoot(t *testing.T) {
	s := DefaultSolver()
	for _, want := range []float64{1e-13, 7.5e-13, 3e-14} {
		x, _, err := s.Root(func(x float64) float64 { return 1 - want/x })
		if err != nil {
			t.Fatal(err)
		}
		if different(x, want, 1e-9) {
			t.Errorf("have %g, want %g", x, want)
		}
	}
}
