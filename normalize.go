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

	"github.com/ctessum/unit"
)

// physical constants
const (
	// Molar masses [grams per mole]
	mwN = 14.0067 // g/mol, molar mass of nitrogen
	mwC = 12.0107 // g/mol, molar mass of carbon

	// COD-equivalent weights [g COD per mole of acid]. These are the
	// oxygen demand of complete oxidation, e.g.
	// CH3COOH + 2 O2 -> 2 CO2 + 2 H2O gives 64 g O2/mol, and are not
	// molecular weights.
	codAc  = 64.0
	codPro = 112.0
	codBu  = 160.0
	codVa  = 208.0

	// strongIonScale converts strong ion concentrations to eq/L.
	strongIonScale = 1. / 1000
)

var (
	// moleDim is the dimension representing amount of substance.
	moleDim = unit.NewDimension("mole")

	// KilogramPerMole is the dimension of a molar mass.
	KilogramPerMole = unit.Dimensions{
		unit.MassDim: 1,
		moleDim:      -1,
	}
)

// GramsPerMole returns a molar mass of v g/mol.
func GramsPerMole(v float64) *unit.Unit {
	return unit.New(v/1000, KilogramPerMole)
}

// Conversion describes how the concentration a stream reports for a
// component becomes a molar concentration.
type Conversion struct {
	// MolarMass is the mass of one mole of the component or, for the
	// volatile fatty acids, its COD-equivalent weight. Strong ions
	// are lumped charge carriers and have no molar mass; for them
	// MolarMass is nil.
	MolarMass *unit.Unit
}

// Factor returns the number that a stream concentration (kg/m³,
// kg COD/m³, or keq/m³ for strong ions) is multiplied by to give
// mol/L (eq/L for strong ions).
func (c Conversion) Factor() (float64, error) {
	if c.MolarMass == nil {
		return strongIonScale, nil
	}
	if err := c.MolarMass.Check(KilogramPerMole); err != nil {
		return math.NaN(), fmt.Errorf("aqeq: invalid molar mass: %v", err)
	}
	g := c.MolarMass.Value() * 1000 // g/mol
	if !(g > 0) || math.IsInf(g, 0) {
		return math.NaN(), fmt.Errorf("aqeq: molar mass must be positive and finite but is %g g/mol", g)
	}
	return 1 / (g * 1000), nil
}

// ConversionTable holds a Conversion for each equilibrium component.
type ConversionTable [numComponents]Conversion

// DefaultConversions returns the conversions for ADM1 streams:
// strong ions are scaled to eq/L, inorganic nitrogen and carbon are
// divided by the elemental molar mass and the volatile fatty acids by
// their COD-equivalent weights.
func DefaultConversions() ConversionTable {
	return ConversionTable{
		StrongCation:      {},
		StrongAnion:       {},
		InorganicNitrogen: {MolarMass: GramsPerMole(mwN)},
		InorganicCarbon:   {MolarMass: GramsPerMole(mwC)},
		Acetate:           {MolarMass: GramsPerMole(codAc)},
		Propionate:        {MolarMass: GramsPerMole(codPro)},
		Butyrate:          {MolarMass: GramsPerMole(codBu)},
		Valerate:          {MolarMass: GramsPerMole(codVa)},
	}
}

// factors returns the conversion factor of every component.
func (t ConversionTable) factors() ([numComponents]float64, error) {
	var f [numComponents]float64
	for i, c := range t {
		v, err := c.Factor()
		if err != nil {
			return f, fmt.Errorf("%v (%s)", err, Component(i))
		}
		f[i] = v
	}
	return f, nil
}

// sanitize returns v, or zero if v is not a finite nonnegative number.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Normalize converts stream concentrations to TotalConcentrations.
// Components that are missing from conc or whose values are not finite
// are set to zero. An error is only returned if table is invalid.
func Normalize(conc map[Component]float64, table ConversionTable) (TotalConcentrations, error) {
	var tot TotalConcentrations
	f, err := table.factors()
	if err != nil {
		return tot, err
	}
	for _, c := range Components {
		tot[c] = sanitize(conc[c]) * f[c]
	}
	return tot, nil
}

// Denormalize is the inverse of Normalize: it converts molar
// concentrations back to stream units.
func Denormalize(tot TotalConcentrations, table ConversionTable) (map[Component]float64, error) {
	f, err := table.factors()
	if err != nil {
		return nil, err
	}
	conc := make(map[Component]float64, numComponents)
	for _, c := range Components {
		conc[c] = tot[c] / f[c]
	}
	return conc, nil
}
