package kitaev

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports malformed measurement counts: inconsistent
// bitstring lengths, characters outside {0,1} or negative counts.
var ErrInvalidInput = errors.New("invalid input")

// ComputeMeasureEdgeCorrelation converts the histogram of an
// edge-correlation measurement circuit into the edge-Majorana correlation
// expectation: each bitstring contributes −(−1)^parity of its total number
// of '1' characters, normalized by the shot total.
//
// The shot total is a precondition, not a guard: empty or all-zero counts
// divide by zero and propagate NaN.
func ComputeMeasureEdgeCorrelation(counts Counts) (float64, error) {
	if err := validateCounts(counts); err != nil {
		return 0, err
	}
	shots := counts.Shots()
	correlation := 0.0
	for bitstring, count := range counts {
		if onesParity(bitstring, nil) == 0 {
			correlation -= float64(count)
		} else {
			correlation += float64(count)
		}
	}
	correlation /= float64(shots)
	return correlation, nil
}

// ComputeMeasureHamiltonian estimates the expectation of a Pauli-sum
// Hamiltonian from the all-Z and all-X measurement histograms of the same
// state.
//
// Every term must be pure-Z, pure-X or identity. Terms with any Z factor are
// read from countsZ, otherwise terms with any X factor from countsX, and
// identity terms contribute their coefficient directly. A term carrying both
// Z and X factors (a Y or mixed term) is silently treated as a Z term — a
// known limitation of this estimator, not a checked error.
func ComputeMeasureHamiltonian(countsZ, countsX Counts, hamiltonian PauliSum) (float64, error) {
	if err := validateCounts(countsZ); err != nil {
		return 0, err
	}
	if err := validateCounts(countsX); err != nil {
		return 0, err
	}
	if len(hamiltonian.Paulis) != len(hamiltonian.Coeffs) {
		return 0, fmt.Errorf("hamiltonian has %d terms but %d coefficients: %w",
			len(hamiltonian.Paulis), len(hamiltonian.Coeffs), ErrInvalidInput)
	}

	shotsZ := countsZ.Shots()
	shotsX := countsX.Shots()

	var total complex128
	for i, term := range hamiltonian.Paulis {
		coeff := hamiltonian.Coeffs[i]

		var counts Counts
		var shots int
		var mask []bool
		switch {
		case term.HasZ():
			counts, shots, mask = countsZ, shotsZ, term.Z
		case term.HasX():
			counts, shots, mask = countsX, shotsX, term.X
		default:
			total += coeff
			continue
		}

		termExpectation := 0.0
		for bitstring, count := range counts {
			if len(bitstring) != len(mask) {
				return 0, fmt.Errorf("bitstring length %d does not match term over %d qubits: %w",
					len(bitstring), len(mask), ErrInvalidInput)
			}
			if onesParity(bitstring, mask) == 0 {
				termExpectation += float64(count)
			} else {
				termExpectation -= float64(count)
			}
		}
		termExpectation /= float64(shots)
		total += coeff * complex(termExpectation, 0)
	}
	return real(total), nil
}

// onesParity returns the parity (0 or 1) of '1' characters in bitstring,
// restricted to positions flagged by mask when mask is non-nil.
func onesParity(bitstring string, mask []bool) int {
	parity := 0
	for i := 0; i < len(bitstring); i++ {
		if mask != nil && !mask[i] {
			continue
		}
		if bitstring[i] == '1' {
			parity ^= 1
		}
	}
	return parity
}

// validateCounts checks that every bitstring has the same length, contains
// only '0'/'1' and that no count is negative.
func validateCounts(counts Counts) error {
	length := -1
	for bitstring, count := range counts {
		if count < 0 {
			return fmt.Errorf("negative count %d for %q: %w", count, bitstring, ErrInvalidInput)
		}
		if length == -1 {
			length = len(bitstring)
		} else if len(bitstring) != length {
			return fmt.Errorf("bitstring %q has length %d, expected %d: %w",
				bitstring, len(bitstring), length, ErrInvalidInput)
		}
		for i := 0; i < len(bitstring); i++ {
			if bitstring[i] != '0' && bitstring[i] != '1' {
				return fmt.Errorf("bitstring %q contains %q: %w", bitstring, bitstring[i], ErrInvalidInput)
			}
		}
	}
	return nil
}
