package kitaev

import (
	"fmt"
	"hash/fnv"
	"path"
)

// KitaevHamiltonianTask describes one experiment run: the chain parameters,
// the occupied quasiparticle orbitals of the prepared state and the shot
// counts. Tasks are immutable value objects; their identity for caching is
// the derived Filename, never the raw fields.
type KitaevHamiltonianTask struct {
	ExperimentID      string
	NModes            int
	Tunneling         float64
	Superconducting   float64
	ChemicalPotential float64
	OccupiedOrbitals  []int
	Shots             []int
}

// Filename derives the canonical storage key of the task. Numeric model
// parameters are formatted with fixed two-decimal precision, so tasks whose
// parameters render identically share a key.
func (t KitaevHamiltonianTask) Filename() string {
	return path.Join(
		t.ExperimentID,
		fmt.Sprintf("n%dt%.2f_Delta%.2f_mu%.2f",
			t.NModes, t.Tunneling, t.Superconducting, t.ChemicalPotential),
		fmt.Sprintf("shots%v", t.Shots),
		fmt.Sprintf("%v", t.OccupiedOrbitals),
	)
}

// Hash returns the task's hash, computed over the derived Filename only so
// that key-equal tasks always collide as cache entries.
func (t KitaevHamiltonianTask) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(t.Filename()))
	return h.Sum64()
}

// Equal reports cache-equivalence: two tasks are equal iff their derived
// filenames match.
func (t KitaevHamiltonianTask) Equal(o KitaevHamiltonianTask) bool {
	return t.Filename() == o.Filename()
}

// TotalShots returns the sum of the task's shot counts, the number submitted
// with the batch job.
func (t KitaevHamiltonianTask) TotalShots() int {
	total := 0
	for _, s := range t.Shots {
		total += s
	}
	return total
}
