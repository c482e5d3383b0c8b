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

import "math"

// MeqToCaCO3 converts alkalinity in meq/L to mg/L as CaCO3
// (half the molar mass of CaCO3).
const MeqToCaCO3 = 50.0

// Alkalinity returns the alkalinity [meq/L] of a solution with totals
// tot at the given pH. It is the titration capacity to the carbonic
// acid endpoint,
//
//	[HCO3-] + 2[CO3--] + [NH3] + [Ac-] + [Pro-] + [Bu-] + [Va-] + [OH-] - [H+],
//
// and excludes the strong ion background. Negative values are reported
// as zero.
func Alkalinity(pH float64, tot TotalConcentrations, k DissociationConstants) float64 {
	h := math.Pow(10, -pH)
	s := Speciate(h, tot, k)
	alk := s.HCO3 + 2*s.CO3 + s.NH3 + s.Ac + s.Pro + s.Bu + s.Va + s.OH - h // mol/L
	return math.Max(0, alk*1000)
}

// AsCaCO3 converts alkalinity in meq/L to mg/L as CaCO3.
func AsCaCO3(meq float64) float64 {
	return meq * MeqToCaCO3
}
