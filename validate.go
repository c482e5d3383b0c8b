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

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultChargeTolerance is the largest charge imbalance [eq/L] that
// CheckChargeBalance accepts by default.
const DefaultChargeTolerance = 1e-8

// CheckChargeBalance evaluates the charge balance of tot at the given
// pH, for example a measured pH or one reported by another model, and
// returns the residual [eq/L]. An error is returned if the magnitude of
// the residual is greater than tol.
func CheckChargeBalance(tot TotalConcentrations, pH float64, k DissociationConstants, tol float64) (float64, error) {
	if math.IsNaN(pH) || math.IsInf(pH, 0) {
		return math.NaN(), fmt.Errorf("aqeq: pH %g is not finite", pH)
	}
	residual := ChargeBalance(math.Pow(10, -pH), tot, k)
	if !scalar.EqualWithinAbs(residual, 0, tol) {
		return residual, fmt.Errorf("aqeq: charge imbalance of %.3g eq/L at pH %.2f exceeds tolerance %g", residual, pH, tol)
	}
	return residual, nil
}
