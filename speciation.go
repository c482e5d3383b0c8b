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

// Speciation holds the concentrations [mol/L] of the dissociated
// species at a given hydrogen ion concentration.
type Speciation struct {
	NH3  float64 // free ammonia
	NH4  float64 // ammonium
	HCO3 float64 // bicarbonate
	CO3  float64 // carbonate
	Ac   float64 // acetate
	Pro  float64 // propionate
	Bu   float64 // butyrate
	Va   float64 // valerate
	OH   float64 // hydroxide
}

// Deprotonated returns the concentration of the deprotonated form of
// an acid-base pair with dissociation constant k and total
// concentration total at hydrogen ion concentration h [mol/L].
func Deprotonated(total, k, h float64) float64 {
	return total * k / (k + h)
}

// Speciate partitions the totals in tot between their protonated and
// deprotonated forms at hydrogen ion concentration h [mol/L].
func Speciate(h float64, tot TotalConcentrations, k DissociationConstants) Speciation {
	var s Speciation
	s.OH = k.Kw / h
	s.NH3 = Deprotonated(tot[InorganicNitrogen], k.Knh, h)
	s.NH4 = tot[InorganicNitrogen] - s.NH3
	s.HCO3 = Deprotonated(tot[InorganicCarbon], k.Kco2, h)
	s.CO3 = s.HCO3 * kCO2Second / h
	s.Ac = Deprotonated(tot[Acetate], k.Kac, h)
	s.Pro = Deprotonated(tot[Propionate], k.Kpro, h)
	s.Bu = Deprotonated(tot[Butyrate], k.Kbu, h)
	s.Va = Deprotonated(tot[Valerate], k.Kva, h)
	return s
}
