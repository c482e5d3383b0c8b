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

func TestSpeciateLimits(t *testing.T) {
	k := ReferenceConstants()
	low := Speciate(1e-14, digesterTotals, k)
	if different(low.Ac, digesterTotals[Acetate], 1e-6) {
		t.Errorf("acetate at high pH: have %g, want %g", low.Ac, digesterTotals[Acetate])
	}
	if different(low.NH3, digesterTotals[InorganicNitrogen], 1e-3) {
		t.Errorf("ammonia at high pH: have %g, want %g", low.NH3, digesterTotals[InorganicNitrogen])
	}
	high := Speciate(1, digesterTotals, k)
	if high.Ac > 1e-7 || high.HCO3 > 1e-8 || high.NH3 > 1e-11 {
		t.Errorf("deprotonated forms should vanish at pH 0: %+v", high)
	}
	if different(high.NH4, digesterTotals[InorganicNitrogen], 1e-9) {
		t.Errorf("ammonium at pH 0: have %g, want %g", high.NH4, digesterTotals[InorganicNitrogen])
	}
	mid := Speciate(1e-8, digesterTotals, k)
	if different(mid.CO3, mid.HCO3*math.Pow(10, -10.3)/1e-8, 1e-12) {
		t.Errorf("carbonate: have %g", mid.CO3)
	}
	if different(mid.OH, 1e-6, 1e-12) {
		t.Errorf("hydroxide: have %g, want 1e-6", mid.OH)
	}
}

func TestChargeBalanceMonotone(t *testing.T) {
	k := ReferenceConstants()
	prev := ChargeBalance(1e-14, digesterTotals, k)
	for pH := 13.5; pH >= 0; pH -= 0.5 {
		f := ChargeBalance(math.Pow(10, -pH), digesterTotals, k)
		if !(f > prev) {
			t.Errorf("pH %g: charge balance %g is not greater than %g", pH, f, prev)
		}
		prev = f
	}
}

func TestChargeBalanceTerms(t *testing.T) {
	k := ReferenceConstants()
	h := 1e-7
	s := Speciate(h, digesterTotals, k)
	want := digesterTotals[StrongCation] + h + s.NH4 -
		digesterTotals[StrongAnion] - s.OH - s.HCO3 - 2*s.CO3 - s.Ac - s.Pro - s.Bu - s.Va
	have := ChargeBalance(h, digesterTotals, k)
	if math.Abs(have-want) > 1e-15 {
		t.Errorf("have %g, want %g", have, want)
	}
}

func TestEquilibrateResidual(t *testing.T) {
	k := ReferenceConstants()
	for _, tot := range []TotalConcentrations{
		digesterTotals,
		{StrongAnion: 0.002},
		{StrongCation: 0.001, InorganicCarbon: 0.001},
		{InorganicNitrogen: 0.001, Acetate: 0.001},
		{StrongCation: 0.04, StrongAnion: 0.02, InorganicCarbon: 5e-5},
		{},
	} {
		s, err := Equilibrate(tot, k, DefaultSolver())
		if err != nil {
			t.Fatal(err)
		}
		if !(s.H > 1e-14 && s.H < 1) {
			t.Errorf("%v: H=%g out of bounds", tot, s.H)
		}
		if math.Abs(s.Residual) > 1e-8 {
			t.Errorf("%v: residual %g", tot, s.Residual)
		}
		if r := ChargeBalance(s.H, tot, k); r != s.Residual {
			t.Errorf("%v: residual %g != %g", tot, s.Residual, r)
		}
	}
}

func TestEquilibrateMonotone(t *testing.T) {
	k := ReferenceConstants()
	solve := func(tot TotalConcentrations) float64 {
		s, err := Equilibrate(tot, k, DefaultSolver())
		if err != nil {
			t.Fatal(err)
		}
		return s.H
	}
	t.Run("cation", func(t *testing.T) {
		tot := digesterTotals
		prev := math.Inf(1)
		for cat := 0.001; cat <= 0.004; cat += 0.0005 {
			tot[StrongCation] = cat
			h := solve(tot)
			if !(h < prev) {
				t.Errorf("S_cat=%g: H=%g is not less than %g", cat, h, prev)
			}
			prev = h
		}
	})
	t.Run("anion", func(t *testing.T) {
		tot := digesterTotals
		prev := 0.
		for an := 0.001; an <= 0.004; an += 0.0005 {
			tot[StrongAnion] = an
			h := solve(tot)
			if !(h > prev) {
				t.Errorf("S_an=%g: H=%g is not greater than %g", an, h, prev)
			}
			prev = h
		}
	})
}

func TestEquilibrateNeutralWater(t *testing.T) {
	s, err := Equilibrate(TotalConcentrations{}, ReferenceConstants(), DefaultSolver())
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(s.PH-7) > 1e-3 {
		t.Errorf("have pH %g, want 7", s.PH)
	}
}

func TestEquilibrateAcidExcess(t *testing.T) {
	s, err := Equilibrate(TotalConcentrations{StrongAnion: 0.002}, ReferenceConstants(), DefaultSolver())
	if err != nil {
		t.Fatal(err)
	}
	if !(s.PH < 7) {
		t.Errorf("have pH %g, want < 7", s.PH)
	}
	// [H+] ≈ S_an
	if math.Abs(s.PH+math.Log10(0.002)) > 0.01 {
		t.Errorf("have pH %g, want %g", s.PH, -math.Log10(0.002))
	}
}

func TestEquilibrateDigester(t *testing.T) {
	s, err := Equilibrate(digesterTotals, ReferenceConstants(), DefaultSolver())
	if err != nil {
		t.Fatal(err)
	}
	if s.PH < 6 || s.PH > 7 {
		t.Errorf("have pH %g, want about 6.5", s.PH)
	}
	if s.Iterations < 1 || s.Iterations > 100 {
		t.Errorf("%d iterations", s.Iterations)
	}
}

func TestEquilibrateStrongAnionExcess(t *testing.T) {
	_, err := Equilibrate(TotalConcentrations{StrongAnion: 2}, ReferenceConstants(), DefaultSolver())
	if !errors.Is(err, ErrNoSignChange) {
		t.Errorf("have %v, want ErrNoSignChange", err)
	}
}

func TestCheckChargeBalance(t *testing.T) {
	k := ReferenceConstants()
	s, err := Equilibrate(digesterTotals, k, DefaultSolver())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := CheckChargeBalance(digesterTotals, s.PH, k, DefaultChargeTolerance); err != nil {
		t.Error(err)
	}
	r, err := CheckChargeBalance(digesterTotals, s.PH+1, k, DefaultChargeTolerance)
	if err == nil {
		t.Error("should be an error")
	}
	if !(r < 0) {
		t.Errorf("residual %g should be negative above the equilibrium pH", r)
	}
	if _, err := CheckChargeBalance(digesterTotals, math.NaN(), k, DefaultChargeTolerance); err == nil {
		t.Error("should be an error")
	}
}
