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

// Package aqeq calculates the pH and alkalinity of anaerobic digester
// (ADM1) liquid streams from their total concentrations of strong ions,
// inorganic nitrogen and carbon, and volatile fatty acids.
//
// The hydrogen ion concentration is found by solving the charge balance
//
//	S_cat + [H+] + [NH4+] - S_an - [OH-] - [HCO3-] - 2[CO3--] - [Ac-] - [Pro-] - [Bu-] - [Va-] = 0
//
// with a bracketing root finder. Dissociation constants are fixed at
// 25 °C.
package aqeq

// Version gives the version number.
const Version = "1.0.0"
