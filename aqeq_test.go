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
	"math"
	"testing"
)

// digesterTotals is a moderately buffered digester liquor [mol/L] with
// a pH of about 6.5.
var digesterTotals = TotalConcentrations{
	StrongCation:      0.003,
	StrongAnion:       0.002,
	InorganicNitrogen: 0.002,
	InorganicCarbon:   0.002,
	Acetate:           0.001,
	Propionate:        0.0005,
	Butyrate:          0.0002,
	Valerate:          0.0001,
}

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func TestParseComponent(t *testing.T) {
	for _, c := range Components {
		c2, err := ParseComponent(c.String())
		if err != nil {
			t.Fatal(err)
		}
		if c2 != c {
			t.Errorf("have %v, want %v", c2, c)
		}
	}
	if _, err := ParseComponent("S_su"); err == nil {
		t.Error("should be an error")
	}
	if s := Component(42).String(); s != "Component(42)" {
		t.Errorf("have %s", s)
	}
}

func TestReferenceConstants(t *testing.T) {
	k := ReferenceConstants()
	want := []struct {
		have, pKa float64
	}{
		{k.Kw, 14}, {k.Knh, 9.25}, {k.Kco2, 6.35}, {k.Kac, 4.76},
		{k.Kpro, 4.88}, {k.Kbu, 4.82}, {k.Kva, 4.86},
	}
	for i, w := range want {
		if different(-math.Log10(w.have), w.pKa, 1e-12) {
			t.Errorf("%d: have pKa %g, want %g", i, -math.Log10(w.have), w.pKa)
		}
	}
	if _, err := NewDissociationConstants([7]float64{math.NaN()}); err == nil {
		t.Error("should be an error")
	}
}
