package kitaev

import "math"

// MeasureZ returns a copy of circuit with a computational-basis measurement
// appended on every qubit. The input circuit is never mutated.
func MeasureZ(circuit *Circuit) *Circuit {
	out := circuit.Copy()
	out.Name = circuit.Name + "_measure_z"
	out.MeasureAll()
	return out
}

// MeasureX returns a copy of circuit that measures every qubit in the X
// basis: a Hadamard on each qubit followed by a computational-basis
// measurement. The input circuit is never mutated.
func MeasureX(circuit *Circuit) *Circuit {
	out := circuit.Copy()
	out.Name = circuit.Name + "_measure_x"
	for q := 0; q < out.NumQubits; q++ {
		out.H(q)
	}
	out.MeasureAll()
	return out
}

// MeasureEdgeCorrelation returns a copy of circuit rotated into the basis
// that exposes the edge-Majorana correlation: RX(π/2) on the first and last
// qubit only, then a full measurement. The input circuit is never mutated.
func MeasureEdgeCorrelation(circuit *Circuit) *Circuit {
	out := circuit.Copy()
	out.Name = circuit.Name + "_measure_edge_correlation"
	out.RX(math.Pi/2, 0)
	out.RX(math.Pi/2, out.NumQubits-1)
	out.MeasureAll()
	return out
}
