package kitaev

import (
	"fmt"
	"math/cmplx"

	"github.com/theapemachine/errnie"
)

// FermionicGaussianState builds the state-preparation circuit for the
// fermionic Gaussian state selected by a Bogoliubov transformation and a set
// of occupied quasiparticle orbitals.
//
// transform is the n×2n matrix W returned by
// DiagonalizingBogoliubovTransform: row k defines the quasiparticle
// annihilation operator b_k = Σ_j W[k][j] c_j + W[k][n+j] c†_j. The prepared
// state |ψ⟩ is the unique state with b_k|ψ⟩ = 0 for every empty orbital and
// b†_k|ψ⟩ = 0 for every occupied one; its amplitudes are computed as the
// common kernel of those operators and embedded in the circuit as an
// explicit state-preparation instruction.
func FermionicGaussianState(transform Matrix, occupiedOrbitals []int) (*Circuit, error) {
	n := transform.Rows()
	if n == 0 || transform.Cols() != 2*n {
		return nil, fmt.Errorf("gaussian state: transformation matrix must be n x 2n, got %dx%d",
			transform.Rows(), transform.Cols())
	}
	occupied := make(map[int]bool, len(occupiedOrbitals))
	for _, k := range occupiedOrbitals {
		if k < 0 || k >= n {
			return nil, fmt.Errorf("gaussian state: occupied orbital %d out of range for %d modes", k, n)
		}
		if occupied[k] {
			return nil, fmt.Errorf("gaussian state: occupied orbital %d listed twice", k)
		}
		occupied[k] = true
	}

	dim := 1 << n
	stacked := NewMatrix(0, 0)
	for k := 0; k < n; k++ {
		op := quasiparticleOp(transform, k, occupied[k])
		mat, err := op.ToMatrix(n)
		if err != nil {
			return nil, err
		}
		stacked = append(stacked, mat...)
	}

	kernel := nullSpace(stacked, 1e-9)
	if len(kernel) != 1 {
		return nil, fmt.Errorf("gaussian state: expected a unique state, kernel dimension is %d", len(kernel))
	}
	amplitudes := fixGlobalPhase(kernel[0])
	if len(amplitudes) != dim {
		return nil, fmt.Errorf("gaussian state: statevector has %d amplitudes, want %d", len(amplitudes), dim)
	}

	errnie.Info(
		"FermionicGaussianState - modes %v, occupied orbitals %v",
		n,
		occupiedOrbitals,
	)

	circuit := NewCircuit(n, "fermionic_gaussian_state")
	circuit.SetStateVector(amplitudes)
	return circuit, nil
}

// quasiparticleOp returns b_k, or b†_k when dagger is set, as a symbolic
// operator built from row k of the transformation matrix.
func quasiparticleOp(transform Matrix, k int, dagger bool) FermionicOp {
	n := transform.Rows()
	op := ZeroOp()
	for j := 0; j < n; j++ {
		lower, raise := transform[k][j], transform[k][n+j]
		if dagger {
			// (w c + u c†)† = conj(w) c† + conj(u) c
			lower, raise = cmplx.Conj(transform[k][n+j]), cmplx.Conj(transform[k][j])
		}
		if lower != 0 {
			op = op.Add(LowerOp(j).Scale(lower))
		}
		if raise != 0 {
			op = op.Add(RaiseOp(j).Scale(raise))
		}
	}
	return op
}

// fixGlobalPhase rotates the statevector so its largest amplitude is real
// and positive, making the preparation deterministic.
func fixGlobalPhase(state []complex128) []complex128 {
	best := 0
	for i := range state {
		if cmplx.Abs(state[i]) > cmplx.Abs(state[best]) {
			best = i
		}
	}
	out := make([]complex128, len(state))
	if state[best] == 0 {
		copy(out, state)
		return out
	}
	phase := state[best] / complex(cmplx.Abs(state[best]), 0)
	for i := range state {
		out[i] = state[i] / phase
	}
	return out
}
