package kitaev

import (
	"fmt"
	"math/bits"
	"math/cmplx"
	"strconv"
	"strings"
)

// FermionicOp is a symbolic operator over fermionic modes: a weighted sum of
// products of elementary creation (+), annihilation (-) and number (N)
// factors. Operators are value-like; every method returns a new operator and
// never mutates its receiver. Composition is non-commutative and follows the
// written order: a.Compose(b) is the operator "a then b applied first", i.e.
// the product a·b.
type FermionicOp struct {
	terms map[string]complex128
}

// ZeroOp returns the zero operator.
func ZeroOp() FermionicOp {
	return FermionicOp{terms: map[string]complex128{}}
}

// OneOp returns the identity operator.
func OneOp() FermionicOp {
	return FermionicOp{terms: map[string]complex128{"": 1}}
}

// RaiseOp returns the creation operator c†_index.
func RaiseOp(index int) FermionicOp {
	return FermionicOp{terms: map[string]complex128{fmt.Sprintf("+_%d", index): 1}}
}

// LowerOp returns the annihilation operator c_index.
func LowerOp(index int) FermionicOp {
	return FermionicOp{terms: map[string]complex128{fmt.Sprintf("-_%d", index): 1}}
}

// NumberTermOp returns the number operator N_index = c†_index c_index.
func NumberTermOp(index int) FermionicOp {
	return FermionicOp{terms: map[string]complex128{fmt.Sprintf("N_%d", index): 1}}
}

// NumTerms returns the number of distinct product terms.
func (op FermionicOp) NumTerms() int { return len(op.terms) }

// Add returns op + o.
func (op FermionicOp) Add(o FermionicOp) FermionicOp {
	out := make(map[string]complex128, len(op.terms)+len(o.terms))
	for label, coeff := range op.terms {
		out[label] = coeff
	}
	for label, coeff := range o.terms {
		c := out[label] + coeff
		if c == 0 {
			delete(out, label)
			continue
		}
		out[label] = c
	}
	return FermionicOp{terms: out}
}

// Sub returns op - o.
func (op FermionicOp) Sub(o FermionicOp) FermionicOp {
	return op.Add(o.Scale(-1))
}

// Scale returns s·op.
func (op FermionicOp) Scale(s complex128) FermionicOp {
	out := make(map[string]complex128, len(op.terms))
	if s != 0 {
		for label, coeff := range op.terms {
			out[label] = s * coeff
		}
	}
	return FermionicOp{terms: out}
}

// Compose returns the operator product op·o, with o acting first on states.
func (op FermionicOp) Compose(o FermionicOp) FermionicOp {
	out := make(map[string]complex128, len(op.terms)*len(o.terms))
	for la, ca := range op.terms {
		for lb, cb := range o.terms {
			label := la
			switch {
			case la == "":
				label = lb
			case lb == "":
			default:
				label = la + " " + lb
			}
			c := out[label] + ca*cb
			if c == 0 {
				delete(out, label)
				continue
			}
			out[label] = c
		}
	}
	return FermionicOp{terms: out}
}

// MajoranaOp returns one of the two Majorana operators of a fermionic mode:
// action 0 gives c†_index + c_index, any other action gives
// i·(c_index − c†_index).
func MajoranaOp(index, action int) FermionicOp {
	if action == 0 {
		return LowerOp(index).Add(RaiseOp(index))
	}
	return LowerOp(index).Sub(RaiseOp(index)).Scale(1i)
}

// EdgeCorrelationOp returns i·γ_0(0)·γ_1(n−1), the correlator of the two
// edge Majorana modes of an n-mode chain.
func EdgeCorrelationOp(nModes int) FermionicOp {
	return MajoranaOp(0, 0).Compose(MajoranaOp(nModes-1, 1)).Scale(1i)
}

// ParityOp returns the total fermionic parity Π_i (1 − 2·N_i).
func ParityOp(nModes int) FermionicOp {
	op := OneOp()
	for i := 0; i < nModes; i++ {
		op = op.Compose(OneOp().Sub(NumberTermOp(i).Scale(2)))
	}
	return op
}

// NumberOp returns the total particle number Σ_i N_i.
func NumberOp(nModes int) FermionicOp {
	op := ZeroOp()
	for i := 0; i < nModes; i++ {
		op = op.Add(NumberTermOp(i))
	}
	return op
}

// HamiltonianOp returns the many-body operator of a quadratic Hamiltonian,
//
//	Σ_jk M_jk c†_j c_k + ½ Σ_jk (Δ_jk c†_j c†_k + conj(Δ_jk) c_k c_j).
func HamiltonianOp(h QuadraticHamiltonian) FermionicOp {
	n := h.NumModes()
	op := ZeroOp()
	for j := 0; j < n; j++ {
		for k := 0; k < n; k++ {
			if m := h.HermitianPart[j][k]; m != 0 {
				op = op.Add(RaiseOp(j).Compose(LowerOp(k)).Scale(m))
			}
			if d := h.AntisymmetricPart[j][k]; d != 0 {
				op = op.Add(RaiseOp(j).Compose(RaiseOp(k)).Scale(d / 2))
				op = op.Add(LowerOp(k).Compose(LowerOp(j)).Scale(cmplx.Conj(d) / 2))
			}
		}
	}
	return op
}

// ToMatrix builds the dense 2^nModes matrix representation in the occupation
// basis. Bit i of a basis index is the occupation of mode i; annihilation of
// mode j carries the Jordan-Wigner sign (−1)^(occupations below j).
func (op FermionicOp) ToMatrix(nModes int) (Matrix, error) {
	dim := 1 << nModes
	out := NewMatrix(dim, dim)
	for label, coeff := range op.terms {
		factors, err := parseLabel(label, nModes)
		if err != nil {
			return nil, err
		}
		for in := 0; in < dim; in++ {
			state := in
			sign := 1.0
			ok := true
			// Rightmost factor acts first.
			for f := len(factors) - 1; f >= 0; f-- {
				state, sign, ok = factors[f].apply(state, sign)
				if !ok {
					break
				}
			}
			if ok {
				out[state][in] += coeff * complex(sign, 0)
			}
		}
	}
	return out, nil
}

// Expectation returns ⟨state|operator|state⟩, conjugate-linear in the state
// on the left.
func Expectation(operator Matrix, state []complex128) complex128 {
	return Vdot(state, operator.MulVec(state))
}

type fermiFactor struct {
	action byte // '+', '-' or 'N'
	index  int
}

func (f fermiFactor) apply(state int, sign float64) (int, float64, bool) {
	bit := 1 << f.index
	below := state & (bit - 1)
	switch f.action {
	case '-':
		if state&bit == 0 {
			return 0, 0, false
		}
		if bits.OnesCount(uint(below))%2 == 1 {
			sign = -sign
		}
		return state &^ bit, sign, true
	case '+':
		if state&bit != 0 {
			return 0, 0, false
		}
		if bits.OnesCount(uint(below))%2 == 1 {
			sign = -sign
		}
		return state | bit, sign, true
	default: // 'N'
		if state&bit == 0 {
			return 0, 0, false
		}
		return state, sign, true
	}
}

func parseLabel(label string, nModes int) ([]fermiFactor, error) {
	if label == "" {
		return nil, nil
	}
	parts := strings.Split(label, " ")
	factors := make([]fermiFactor, len(parts))
	for i, p := range parts {
		if len(p) < 3 || p[1] != '_' {
			return nil, fmt.Errorf("fermionic operator: malformed factor %q", p)
		}
		idx, err := strconv.Atoi(p[2:])
		if err != nil {
			return nil, fmt.Errorf("fermionic operator: malformed factor %q: %w", p, err)
		}
		if idx < 0 || idx >= nModes {
			return nil, fmt.Errorf("fermionic operator: mode %d out of range for %d modes", idx, nModes)
		}
		factors[i] = fermiFactor{action: p[0], index: idx}
	}
	return factors, nil
}
