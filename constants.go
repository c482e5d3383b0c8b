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

// ReferencePKa are literature pKa values at 25 °C for
// water, ammonium, carbonic acid (first dissociation), acetic,
// propionic, butyric and valeric acid, in that order.
var ReferencePKa = [7]float64{14.0, 9.25, 6.35, 4.76, 4.88, 4.82, 4.86}

// pKaCO2Second is the pKa of the second dissociation of carbonic acid
// (HCO3- <-> CO3-- + H+).
const pKaCO2Second = 10.3

// kCO2Second is the dissociation constant for HCO3- <-> CO3-- + H+.
var kCO2Second = math.Pow(10, -pKaCO2Second)

// DissociationConstants holds the equilibrium constants of the
// acid-base pairs in the charge balance.
type DissociationConstants struct {
	Kw   float64 // water
	Knh  float64 // NH4+ / NH3
	Kco2 float64 // CO2 / HCO3-
	Kac  float64 // acetic acid
	Kpro float64 // propionic acid
	Kbu  float64 // butyric acid
	Kva  float64 // valeric acid
}

// NewDissociationConstants returns the constants corresponding to the
// given pKa values, ordered as in ReferencePKa.
func NewDissociationConstants(pKa [7]float64) (DissociationConstants, error) {
	var k [7]float64
	for i, p := range pKa {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return DissociationConstants{}, fmt.Errorf("aqeq: pKa[%d]=%g is not finite", i, p)
		}
		k[i] = math.Pow(10, -p)
	}
	return DissociationConstants{
		Kw:   k[0],
		Knh:  k[1],
		Kco2: k[2],
		Kac:  k[3],
		Kpro: k[4],
		Kbu:  k[5],
		Kva:  k[6],
	}, nil
}

// ReferenceConstants returns the dissociation constants at the
// reference temperature.
func ReferenceConstants() DissociationConstants {
	k, err := NewDissociationConstants(ReferencePKa)
	if err != nil {
		panic(err)
	}
	return k
}
