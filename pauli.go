package kitaev

// PauliTerm is one tensor product of single-qubit Pauli factors, represented
// by parallel boolean masks: Z[i] marks a Z factor on qubit i, X[i] an X
// factor. A position with both flags set would denote a Y factor, which the
// estimators in this package do not support.
type PauliTerm struct {
	Z []bool
	X []bool
}

// HasZ reports whether the term carries any Z factor.
func (t PauliTerm) HasZ() bool {
	for _, z := range t.Z {
		if z {
			return true
		}
	}
	return false
}

// HasX reports whether the term carries any X factor.
func (t PauliTerm) HasX() bool {
	for _, x := range t.X {
		if x {
			return true
		}
	}
	return false
}

// IsIdentity reports whether the term has no Pauli factors at all.
func (t PauliTerm) IsIdentity() bool { return !t.HasZ() && !t.HasX() }

// IdentityTerm returns the identity over numQubits qubits.
func IdentityTerm(numQubits int) PauliTerm {
	return PauliTerm{Z: make([]bool, numQubits), X: make([]bool, numQubits)}
}

// ZTerm returns the term with Z factors at the given qubit positions.
func ZTerm(numQubits int, positions ...int) PauliTerm {
	t := IdentityTerm(numQubits)
	for _, p := range positions {
		t.Z[p] = true
	}
	return t
}

// XTerm returns the term with X factors at the given qubit positions.
func XTerm(numQubits int, positions ...int) PauliTerm {
	t := IdentityTerm(numQubits)
	for _, p := range positions {
		t.X[p] = true
	}
	return t
}

// PauliSum is a Hamiltonian expressed as a weighted sum of Pauli terms:
// Paulis and Coeffs are parallel.
type PauliSum struct {
	Paulis []PauliTerm
	Coeffs []complex128
}

// Append adds a weighted term to the sum.
func (s *PauliSum) Append(term PauliTerm, coeff complex128) {
	s.Paulis = append(s.Paulis, term)
	s.Coeffs = append(s.Coeffs, coeff)
}
