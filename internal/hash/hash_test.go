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

package hash

import (
	"math"
	"testing"

	"github.com/wwtp/aqeq"
)

func TestHash(t *testing.T) {
	a := aqeq.Snapshot{Phase: aqeq.Liquid, Concentrations: map[aqeq.Component]float64{}}
	b := aqeq.Snapshot{Phase: aqeq.Liquid, Concentrations: map[aqeq.Component]float64{}}
	for i, c := range aqeq.Components {
		a.Concentrations[c] = float64(i) / 3
	}
	for i := len(aqeq.Components) - 1; i >= 0; i-- {
		b.Concentrations[aqeq.Components[i]] = float64(i) / 3
	}
	if Hash(a) != Hash(b) {
		t.Errorf("equal snapshots: %s != %s", Hash(a), Hash(b))
	}
	if len(Hash(a)) != 32 {
		t.Errorf("have length %d, want 32", len(Hash(a)))
	}
	if Short(a) != Hash(a)[:8] {
		t.Error("short hash should be a prefix")
	}

	b.Concentrations[aqeq.Acetate] = 1
	if Hash(a) == Hash(b) {
		t.Error("different snapshots should have different hashes")
	}
	b.Concentrations[aqeq.Acetate] = a.Concentrations[aqeq.Acetate]
	b.Phase = aqeq.Gas
	if Hash(a) == Hash(b) {
		t.Error("phase should change the hash")
	}

	b.Phase = aqeq.Liquid
	b.Concentrations[aqeq.Valerate] = math.NaN()
	if Hash(b) != Hash(b) {
		t.Error("NaN values should hash consistently")
	}
}
