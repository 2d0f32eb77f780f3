package kitaev

import (
	"fmt"
)

// QuadraticHamiltonian is a quadratic fermionic Hamiltonian
//
//	H = Σ_jk M_jk c†_j c_k + ½ Σ_jk (Δ_jk c†_j c†_k + conj(Δ_jk) c_k c_j)
//
// described by its Hermitian part M and antisymmetric part Δ. Both matrices
// are derived once and never mutated.
type QuadraticHamiltonian struct {
	HermitianPart     Matrix
	AntisymmetricPart Matrix
}

// NumModes returns the number of fermionic modes n.
func (h QuadraticHamiltonian) NumModes() int { return h.HermitianPart.Rows() }

// KitaevHamiltonian builds the quadratic Hamiltonian of an open Kitaev chain
// with nModes sites: nearest-neighbor hopping -t, nearest-neighbor pairing Δ
// and on-site potential μ.
func KitaevHamiltonian(nModes int, tunneling, superconducting, chemicalPotential float64) QuadraticHamiltonian {
	hermitian := NewMatrix(nModes, nModes)
	antisymmetric := NewMatrix(nModes, nModes)
	for i := 0; i < nModes; i++ {
		hermitian[i][i] = complex(chemicalPotential, 0)
	}
	for i := 0; i+1 < nModes; i++ {
		hermitian[i][i+1] = complex(-tunneling, 0)
		hermitian[i+1][i] = complex(-tunneling, 0)
		antisymmetric[i][i+1] = complex(superconducting, 0)
		antisymmetric[i+1][i] = complex(-superconducting, 0)
	}
	return QuadraticHamiltonian{
		HermitianPart:     hermitian,
		AntisymmetricPart: antisymmetric,
	}
}

// BdGHamiltonian assembles the 2n×2n Bogoliubov-de Gennes matrix
//
//	[ -conj(M)   -conj(Δ) ]
//	[     Δ          M    ]
//
// whose spectrum gives the quasiparticle excitation energies. The block
// layout, including the sign and conjugation on the top row, is fixed.
func BdGHamiltonian(h QuadraticHamiltonian) Matrix {
	n := h.NumModes()
	mConj := h.HermitianPart.Conj()
	dConj := h.AntisymmetricPart.Conj()
	out := NewMatrix(2*n, 2*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i][j] = -mConj[i][j]
			out[i][n+j] = -dConj[i][j]
			out[n+i][j] = h.AntisymmetricPart[i][j]
			out[n+i][n+j] = h.HermitianPart[i][j]
		}
	}
	return out
}

// DiagonalizingBogoliubovTransform returns the n×2n transformation matrix W
// and the quasiparticle energies ε (ascending) such that the operators
//
//	b_k = Σ_j W[k][j] c_j + W[k][n+j] c†_j
//
// diagonalize the quadratic form: H = Σ_k ε_k b†_k b_k + const. The rows of
// W are the non-negative-energy eigenvectors of the BdG matrix.
//
// Only real model parameters are supported; a materially complex Hermitian
// or antisymmetric part is rejected.
func (h QuadraticHamiltonian) DiagonalizingBogoliubovTransform() (Matrix, []float64, error) {
	const tol = 1e-12
	n := h.NumModes()
	if n == 0 {
		return nil, nil, fmt.Errorf("diagonalize: empty hamiltonian")
	}
	if h.AntisymmetricPart.Rows() != n || h.AntisymmetricPart.Cols() != n || h.HermitianPart.Cols() != n {
		return nil, nil, fmt.Errorf("diagonalize: hermitian part is %dx%d, antisymmetric part is %dx%d",
			h.HermitianPart.Rows(), h.HermitianPart.Cols(),
			h.AntisymmetricPart.Rows(), h.AntisymmetricPart.Cols())
	}
	if !h.HermitianPart.isReal(tol) || !h.AntisymmetricPart.isReal(tol) {
		return nil, nil, fmt.Errorf("diagonalize: complex model parameters are not supported")
	}

	bdg := BdGHamiltonian(h)
	a := make([][]float64, 2*n)
	for i := range a {
		a[i] = make([]float64, 2*n)
		for j := range a[i] {
			a[i][j] = real(bdg[i][j])
		}
	}
	vals, vecs := eighSym(a)

	// The spectrum is symmetric around zero; the upper half carries the
	// quasiparticle energies.
	transform := NewMatrix(n, 2*n)
	energies := make([]float64, n)
	for k := 0; k < n; k++ {
		col := n + k
		energies[k] = vals[col]
		for j := 0; j < n; j++ {
			transform[k][j] = complex(vecs[n+j][col], 0)
			transform[k][n+j] = complex(vecs[j][col], 0)
		}
	}
	return transform, energies, nil
}
