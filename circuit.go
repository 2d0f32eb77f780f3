package kitaev

// Gate names understood by the statevector backend.
const (
	GateStatePreparation = "state_preparation"
	GateH                = "h"
	GateX                = "x"
	GateRX               = "rx"
	GateMeasure          = "measure"
)

// Gate is a single circuit instruction. For GateStatePreparation the
// Amplitudes field carries the full target statevector; all other gates act
// on the qubits listed in Qubits.
type Gate struct {
	Name       string
	Qubits     []int
	Params     []float64
	Amplitudes []complex128
}

// Circuit is an ordered list of gate instructions on a fixed qubit register.
type Circuit struct {
	Name      string
	NumQubits int
	Gates     []Gate
}

// NewCircuit returns an empty circuit over numQubits qubits.
func NewCircuit(numQubits int, name string) *Circuit {
	return &Circuit{Name: name, NumQubits: numQubits}
}

// Copy returns a deep copy; mutating the copy never affects the original.
func (c *Circuit) Copy() *Circuit {
	gates := make([]Gate, len(c.Gates))
	for i, g := range c.Gates {
		gates[i] = Gate{
			Name:       g.Name,
			Qubits:     append([]int(nil), g.Qubits...),
			Params:     append([]float64(nil), g.Params...),
			Amplitudes: append([]complex128(nil), g.Amplitudes...),
		}
	}
	return &Circuit{Name: c.Name, NumQubits: c.NumQubits, Gates: gates}
}

// H appends a Hadamard gate on qubit q.
func (c *Circuit) H(q int) {
	c.Gates = append(c.Gates, Gate{Name: GateH, Qubits: []int{q}})
}

// X appends a Pauli-X gate on qubit q.
func (c *Circuit) X(q int) {
	c.Gates = append(c.Gates, Gate{Name: GateX, Qubits: []int{q}})
}

// RX appends a rotation about X by theta on qubit q.
func (c *Circuit) RX(theta float64, q int) {
	c.Gates = append(c.Gates, Gate{Name: GateRX, Qubits: []int{q}, Params: []float64{theta}})
}

// SetStateVector appends a state-preparation instruction carrying the target
// amplitudes for the whole register.
func (c *Circuit) SetStateVector(amplitudes []complex128) {
	qubits := make([]int, c.NumQubits)
	for i := range qubits {
		qubits[i] = i
	}
	c.Gates = append(c.Gates, Gate{
		Name:       GateStatePreparation,
		Qubits:     qubits,
		Amplitudes: append([]complex128(nil), amplitudes...),
	})
}

// MeasureAll appends a computational-basis measurement on every qubit.
func (c *Circuit) MeasureAll() {
	for q := 0; q < c.NumQubits; q++ {
		c.Gates = append(c.Gates, Gate{Name: GateMeasure, Qubits: []int{q}})
	}
}

// GateCount returns the number of instructions in the circuit.
func (c *Circuit) GateCount() int { return len(c.Gates) }

// Measured reports whether the circuit contains any measurement.
func (c *Circuit) Measured() bool {
	for _, g := range c.Gates {
		if g.Name == GateMeasure {
			return true
		}
	}
	return false
}
