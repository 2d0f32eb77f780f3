package kitaev

import (
	"math"
	"math/cmplx"
)

// Matrix is a dense complex matrix stored row-major.
type Matrix [][]complex128

// NewMatrix allocates a zero-filled rows×cols matrix.
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]complex128, cols)
	}
	return m
}

// Eye returns the n×n identity matrix.
func Eye(n int) Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m[i][i] = 1
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the number of columns (0 for an empty matrix).
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Conj returns the elementwise complex conjugate.
func (m Matrix) Conj() Matrix {
	out := NewMatrix(m.Rows(), m.Cols())
	for i := range m {
		for j := range m[i] {
			out[i][j] = cmplx.Conj(m[i][j])
		}
	}
	return out
}

// Dagger returns the conjugate transpose.
func (m Matrix) Dagger() Matrix {
	out := NewMatrix(m.Cols(), m.Rows())
	for i := range m {
		for j := range m[i] {
			out[j][i] = cmplx.Conj(m[i][j])
		}
	}
	return out
}

// Add returns m + o. Panics on shape mismatch.
func (m Matrix) Add(o Matrix) Matrix {
	out := NewMatrix(m.Rows(), m.Cols())
	for i := range m {
		for j := range m[i] {
			out[i][j] = m[i][j] + o[i][j]
		}
	}
	return out
}

// Scale returns s·m.
func (m Matrix) Scale(s complex128) Matrix {
	out := NewMatrix(m.Rows(), m.Cols())
	for i := range m {
		for j := range m[i] {
			out[i][j] = s * m[i][j]
		}
	}
	return out
}

// Mul returns the matrix product m·o.
func (m Matrix) Mul(o Matrix) Matrix {
	out := NewMatrix(m.Rows(), o.Cols())
	for i := range m {
		for k := range m[i] {
			if m[i][k] == 0 {
				continue
			}
			for j := range o[k] {
				out[i][j] += m[i][k] * o[k][j]
			}
		}
	}
	return out
}

// MulVec returns the matrix-vector product m·v.
func (m Matrix) MulVec(v []complex128) []complex128 {
	out := make([]complex128, m.Rows())
	for i := range m {
		var acc complex128
		for j, x := range m[i] {
			acc += x * v[j]
		}
		out[i] = acc
	}
	return out
}

// IsHermitian reports whether m equals its conjugate transpose within tol.
func (m Matrix) IsHermitian(tol float64) bool {
	if m.Rows() != m.Cols() {
		return false
	}
	for i := range m {
		for j := range m[i] {
			if cmplx.Abs(m[i][j]-cmplx.Conj(m[j][i])) > tol {
				return false
			}
		}
	}
	return true
}

// isReal reports whether every entry has an imaginary part below tol.
func (m Matrix) isReal(tol float64) bool {
	for i := range m {
		for j := range m[i] {
			if math.Abs(imag(m[i][j])) > tol {
				return false
			}
		}
	}
	return true
}

// Vdot returns ⟨a|b⟩, conjugate-linear in the first argument.
func Vdot(a, b []complex128) complex128 {
	var acc complex128
	for i := range a {
		acc += cmplx.Conj(a[i]) * b[i]
	}
	return acc
}

// norm2 returns the Euclidean norm of v.
func norm2(v []complex128) float64 {
	var acc float64
	for _, x := range v {
		acc += real(x)*real(x) + imag(x)*imag(x)
	}
	return math.Sqrt(acc)
}

// eighSym diagonalizes a real symmetric matrix with the cyclic Jacobi
// method. It returns the eigenvalues in ascending order and the matching
// orthonormal eigenvectors as columns of vecs (vecs[i][k] is component i of
// eigenvector k).
func eighSym(a [][]float64) (vals []float64, vecs [][]float64) {
	n := len(a)
	// Work on a copy; accumulate rotations into v.
	w := make([][]float64, n)
	v := make([][]float64, n)
	for i := 0; i < n; i++ {
		w[i] = make([]float64, n)
		copy(w[i], a[i])
		v[i] = make([]float64, n)
		v[i][i] = 1
	}

	const maxSweeps = 100
	for sweep := 0; sweep < maxSweeps; sweep++ {
		var off float64
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				off += w[i][j] * w[i][j]
			}
		}
		if off < 1e-24 {
			break
		}
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				if math.Abs(w[p][q]) < 1e-15 {
					continue
				}
				theta := (w[q][q] - w[p][p]) / (2 * w[p][q])
				t := math.Copysign(1, theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
				c := 1 / math.Sqrt(t*t+1)
				s := t * c
				for i := 0; i < n; i++ {
					wip, wiq := w[i][p], w[i][q]
					w[i][p] = c*wip - s*wiq
					w[i][q] = s*wip + c*wiq
				}
				for j := 0; j < n; j++ {
					wpj, wqj := w[p][j], w[q][j]
					w[p][j] = c*wpj - s*wqj
					w[q][j] = s*wpj + c*wqj
				}
				for i := 0; i < n; i++ {
					vip, viq := v[i][p], v[i][q]
					v[i][p] = c*vip - s*viq
					v[i][q] = s*vip + c*viq
				}
			}
		}
	}

	// Sort eigenpairs ascending.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w[idx[j]][idx[j]] < w[idx[i]][idx[i]] {
				idx[i], idx[j] = idx[j], idx[i]
			}
		}
	}
	vals = make([]float64, n)
	vecs = make([][]float64, n)
	for i := 0; i < n; i++ {
		vecs[i] = make([]float64, n)
	}
	for k, id := range idx {
		vals[k] = w[id][id]
		for i := 0; i < n; i++ {
			vecs[i][k] = v[i][id]
		}
	}
	return vals, vecs
}

// nullSpace returns an orthonormal-ish basis of the kernel of a, computed by
// Gaussian elimination with partial pivoting. Entries below tol are treated
// as zero. Each basis vector is normalized.
func nullSpace(a Matrix, tol float64) [][]complex128 {
	rows := a.Rows()
	cols := a.Cols()
	// Copy; the elimination is destructive.
	w := NewMatrix(rows, cols)
	for i := range a {
		copy(w[i], a[i])
	}

	pivotCol := make([]int, 0, cols)
	r := 0
	for c := 0; c < cols && r < rows; c++ {
		// Partial pivot on column c.
		best, bestAbs := -1, tol
		for i := r; i < rows; i++ {
			if ab := cmplx.Abs(w[i][c]); ab > bestAbs {
				best, bestAbs = i, ab
			}
		}
		if best < 0 {
			continue
		}
		w[r], w[best] = w[best], w[r]
		inv := 1 / w[r][c]
		for j := c; j < cols; j++ {
			w[r][j] *= inv
		}
		for i := 0; i < rows; i++ {
			if i == r || w[i][c] == 0 {
				continue
			}
			f := w[i][c]
			for j := c; j < cols; j++ {
				w[i][j] -= f * w[r][j]
			}
		}
		pivotCol = append(pivotCol, c)
		r++
	}

	isPivot := make([]bool, cols)
	for _, c := range pivotCol {
		isPivot[c] = true
	}

	var basis [][]complex128
	for c := 0; c < cols; c++ {
		if isPivot[c] {
			continue
		}
		vec := make([]complex128, cols)
		vec[c] = 1
		for ri, pc := range pivotCol {
			vec[pc] = -w[ri][c]
		}
		if n := norm2(vec); n > 0 {
			for i := range vec {
				vec[i] /= complex(n, 0)
			}
		}
		basis = append(basis, vec)
	}
	return basis
}
