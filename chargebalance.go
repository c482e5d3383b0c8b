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

import "gonum.org/v1/gonum/floats"

// ChargeBalance returns the net charge [eq/L] of a solution with
// totals tot at hydrogen ion concentration h [mol/L]: the sum of
// cation equivalents minus the sum of anion equivalents. It is zero at
// equilibrium. Raising h adds free protons and suppresses every
// deprotonated anion, so the balance increases with h and changes sign
// at most once.
func ChargeBalance(h float64, tot TotalConcentrations, k DissociationConstants) float64 {
	s := Speciate(h, tot, k)
	cations := []float64{tot[StrongCation], h, s.NH4}
	anions := []float64{tot[StrongAnion], s.OH, s.HCO3, 2 * s.CO3, s.Ac, s.Pro, s.Bu, s.Va}
	return floats.Sum(cations) - floats.Sum(anions)
}

// chargeBalanceFunc returns the charge balance of tot as a function of
// hydrogen ion concentration only.
func chargeBalanceFunc(tot TotalConcentrations, k DissociationConstants) func(float64) float64 {
	return func(h float64) float64 {
		return ChargeBalance(h, tot, k)
	}
}
