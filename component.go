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

import "fmt"

// Component identifies one of the ADM1 state variables that take part
// in the acid-base equilibrium.
type Component int

// Indices of the equilibrium components in a TotalConcentrations array.
const (
	StrongCation      Component = iota // S_cat
	StrongAnion                        // S_an
	InorganicNitrogen                  // S_IN
	InorganicCarbon                    // S_IC
	Acetate                            // S_ac
	Propionate                         // S_pro
	Butyrate                           // S_bu
	Valerate                           // S_va

	numComponents = iota
)

// Components lists every equilibrium component in array order.
var Components = []Component{
	StrongCation, StrongAnion, InorganicNitrogen, InorganicCarbon,
	Acetate, Propionate, Butyrate, Valerate,
}

var componentIDs = [numComponents]string{
	StrongCation:      "S_cat",
	StrongAnion:       "S_an",
	InorganicNitrogen: "S_IN",
	InorganicCarbon:   "S_IC",
	Acetate:           "S_ac",
	Propionate:        "S_pro",
	Butyrate:          "S_bu",
	Valerate:          "S_va",
}

// String returns the ADM1 identifier of the component, e.g. "S_IC".
func (c Component) String() string {
	if c < 0 || int(c) >= numComponents {
		return fmt.Sprintf("Component(%d)", int(c))
	}
	return componentIDs[c]
}

// ParseComponent returns the Component with the given ADM1 identifier.
func ParseComponent(id string) (Component, error) {
	for i, s := range componentIDs {
		if s == id {
			return Component(i), nil
		}
	}
	return -1, fmt.Errorf("aqeq: '%s' is not an equilibrium component; valid options are %v", id, Components)
}

// TotalConcentrations holds the total (protonated plus deprotonated)
// concentration of each component in mol/L. The strong ion entries
// are in eq/L.
type TotalConcentrations [numComponents]float64

// Zero reports whether every concentration is zero.
func (t TotalConcentrations) Zero() bool {
	for _, v := range t {
		if v != 0 {
			return false
		}
	}
	return true
}
