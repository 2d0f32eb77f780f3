package kitaev

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
	"sort"
	"sync"

	"github.com/theapemachine/errnie"
)

// ErrUnsupportedGate is returned by Transpile when a circuit uses an
// instruction outside the backend's basis gate set.
var ErrUnsupportedGate = errors.New("unsupported gate")

// Backend executes batches of measurement circuits. Run returns immediately
// with an asynchronous job handle.
type Backend interface {
	Name() string
	NumQubits() int
	BasisGates() []string
	Run(circuits []*Circuit, shots int) (*Job, error)
}

// Transpile compiles a circuit for the target backend. It validates the
// register size and the gate set and returns a copy, leaving the input
// untouched. Errors are reported to the caller unchanged; there is no
// rewriting or optimization pass.
func Transpile(circuit *Circuit, backend Backend) (*Circuit, error) {
	if circuit.NumQubits > backend.NumQubits() {
		return nil, fmt.Errorf("transpile: circuit needs %d qubits, backend %s has %d",
			circuit.NumQubits, backend.Name(), backend.NumQubits())
	}
	basis := make(map[string]bool, len(backend.BasisGates()))
	for _, g := range backend.BasisGates() {
		basis[g] = true
	}
	for _, g := range circuit.Gates {
		if !basis[g.Name] {
			return nil, fmt.Errorf("transpile: %q on backend %s: %w", g.Name, backend.Name(), ErrUnsupportedGate)
		}
	}
	return circuit.Copy(), nil
}

// StatevectorBackend is an in-process noiseless simulator. It executes each
// submitted circuit on a dense statevector and samples measurement counts
// with a seeded RNG, so runs are reproducible for a given seed.
type StatevectorBackend struct {
	name      string
	numQubits int
	seed      int64
	metrics   *Metrics

	mu  sync.Mutex
	seq int64
}

// NewStatevectorBackend returns a simulator named name with a register of
// numQubits qubits, drawing its RNG seed from cfg.
func NewStatevectorBackend(name string, numQubits int, cfg *Config) *StatevectorBackend {
	if cfg == nil {
		cfg = NewConfig()
	}
	errnie.Info(
		"NewStatevectorBackend - name %v, qubits %v, seed %v",
		name,
		numQubits,
		cfg.Seed,
	)
	return &StatevectorBackend{
		name:      name,
		numQubits: numQubits,
		seed:      cfg.Seed,
		metrics:   newMetrics(),
	}
}

func (b *StatevectorBackend) Name() string   { return b.name }
func (b *StatevectorBackend) NumQubits() int { return b.numQubits }

// BasisGates lists the instructions the simulator understands.
func (b *StatevectorBackend) BasisGates() []string {
	return []string{GateStatePreparation, GateH, GateX, GateRX, GateMeasure}
}

// Metrics returns a snapshot of the backend's submission counters.
func (b *StatevectorBackend) Metrics() MetricsSnapshot { return b.metrics.Snapshot() }

// Run validates the batch, then executes it in the background and resolves
// the returned job with one histogram per circuit.
func (b *StatevectorBackend) Run(circuits []*Circuit, shots int) (*Job, error) {
	if len(circuits) == 0 {
		return nil, fmt.Errorf("backend %s: empty circuit batch", b.name)
	}
	if shots <= 0 {
		return nil, fmt.Errorf("backend %s: shots must be positive, got %d", b.name, shots)
	}
	for _, c := range circuits {
		if c.NumQubits > b.numQubits {
			return nil, fmt.Errorf("backend %s: circuit %q needs %d qubits, have %d",
				b.name, c.Name, c.NumQubits, b.numQubits)
		}
		if !c.Measured() {
			return nil, fmt.Errorf("backend %s: circuit %q has no measurements", b.name, c.Name)
		}
	}

	b.mu.Lock()
	b.seq++
	id := fmt.Sprintf("%s-job-%d", b.name, b.seq)
	rng := rand.New(rand.NewSource(b.seed + b.seq))
	b.mu.Unlock()

	b.metrics.recordJob(len(circuits), shots)
	job := newJob(id, b.name)
	// Copy the batch so callers can keep mutating their circuits.
	batch := make([]*Circuit, len(circuits))
	for i, c := range circuits {
		batch[i] = c.Copy()
	}

	go func() {
		results := make([]Counts, len(batch))
		for i, c := range batch {
			counts, err := b.execute(c, shots, rng)
			if err != nil {
				log.Printf("Job %s failed on circuit %q: %v", id, c.Name, err)
				job.complete(nil, err)
				return
			}
			results[i] = counts
		}
		job.complete(results, nil)
	}()
	return job, nil
}

// execute runs one circuit to its final statevector and samples shots
// measurement outcomes from it.
func (b *StatevectorBackend) execute(circuit *Circuit, shots int, rng *rand.Rand) (Counts, error) {
	dim := 1 << circuit.NumQubits
	state := make([]complex128, dim)
	state[0] = 1

	for _, g := range circuit.Gates {
		switch g.Name {
		case GateStatePreparation:
			if len(g.Amplitudes) != dim {
				return nil, fmt.Errorf("state preparation carries %d amplitudes, register needs %d",
					len(g.Amplitudes), dim)
			}
			copy(state, g.Amplitudes)
		case GateH:
			applyH(state, g.Qubits[0])
		case GateX:
			applyX(state, g.Qubits[0])
		case GateRX:
			applyRX(state, g.Qubits[0], g.Params[0])
		case GateMeasure:
			// Terminal measurement; sampling happens below.
		default:
			return nil, fmt.Errorf("simulator: %q: %w", g.Name, ErrUnsupportedGate)
		}
	}

	// Cumulative distribution over basis states.
	cumulative := make([]float64, dim)
	total := 0.0
	for i, amp := range state {
		total += real(amp)*real(amp) + imag(amp)*imag(amp)
		cumulative[i] = total
	}

	counts := make(Counts)
	for s := 0; s < shots; s++ {
		r := rng.Float64() * total
		idx := sort.SearchFloat64s(cumulative, r)
		if idx >= dim {
			idx = dim - 1
		}
		counts[bitstringOf(idx, circuit.NumQubits)]++
	}
	return counts, nil
}

// bitstringOf renders basis index state as a bitstring whose character i
// reports qubit i.
func bitstringOf(state, numQubits int) string {
	buf := make([]byte, numQubits)
	for q := 0; q < numQubits; q++ {
		buf[q] = '0' + byte((state>>q)&1)
	}
	return string(buf)
}

func applyH(state []complex128, q int) {
	factor := complex(1/math.Sqrt2, 0)
	bit := 1 << q
	for i := range state {
		if i&bit == 0 {
			j := i | bit
			a, b := state[i], state[j]
			state[i] = factor * (a + b)
			state[j] = factor * (a - b)
		}
	}
}

func applyX(state []complex128, q int) {
	bit := 1 << q
	for i := range state {
		if i&bit == 0 {
			j := i | bit
			state[i], state[j] = state[j], state[i]
		}
	}
}

func applyRX(state []complex128, q int, theta float64) {
	bit := 1 << q
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, -math.Sin(theta/2))
	for i := range state {
		if i&bit == 0 {
			j := i | bit
			a, b := state[i], state[j]
			state[i] = c*a + js*b
			state[j] = js*a + c*b
		}
	}
}
