// SPDX-License-Identifier: MIT

// Package matrix - LU factorization with partial pivoting and linear solves.
//
// Purpose:
//   - Factor a square Dense as P·A = L·U (Doolittle, unit lower L).
//   - Solve A·x = b by forward/back substitution on the packed factors.
//
// Determinism:
//   - Fixed loop order; ties between equal pivot candidates keep the lowest row.

package matrix

import (
	"fmt"
	"math"
)

// pivotTol is the magnitude below which a pivot is treated as zero.
const pivotTol = 1e-13

// LU holds a packed factorization: the strict lower triangle of lu is L
// (unit diagonal implied), the upper triangle including the diagonal is U.
// piv[i] is the row of the original matrix stored at row i.
type LU struct {
	lu  *Dense
	piv []int
}

// Factorize computes the LU factorization of the square matrix a with
// partial (row) pivoting. The input is not modified.
//
// Implementation:
//   - Stage 1: validate a is square.
//   - Stage 2: for each column k pick the largest |a[i][k]|, i ≥ k, swap rows.
//   - Stage 3: eliminate below the pivot, storing multipliers in place.
//
// Errors:
//   - ErrNonSquare, ErrSingular (wrapped with "LU" context).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Factorize(a *Dense) (*LU, error) {
	if a.r != a.c {
		return nil, fmt.Errorf("LU: %dx%d: %w", a.r, a.c, ErrNonSquare)
	}
	n := a.r
	lu := a.Clone()
	piv := make([]int, n)
	for i := range piv {
		piv[i] = i
	}

	var i, j, k int
	d := lu.data
	for k = 0; k < n; k++ {
		// Pick the pivot row.
		p := k
		best := math.Abs(d[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(d[i*n+k]); v > best {
				best, p = v, i
			}
		}
		if best < pivotTol {
			return nil, fmt.Errorf("LU: zero pivot in column %d: %w", k, ErrSingular)
		}
		if p != k {
			for j = 0; j < n; j++ {
				d[k*n+j], d[p*n+j] = d[p*n+j], d[k*n+j]
			}
			piv[k], piv[p] = piv[p], piv[k]
		}

		// Eliminate entries below the pivot.
		pivot := d[k*n+k]
		for i = k + 1; i < n; i++ {
			f := d[i*n+k] / pivot
			d[i*n+k] = f // multiplier kept in the L part
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				d[i*n+j] -= f * d[k*n+j]
			}
		}
	}

	return &LU{lu: lu, piv: piv}, nil
}

// Solve returns x such that A·x = b for the factored matrix A.
// Returns ErrDimensionMismatch when len(b) differs from the matrix order.
// Complexity: O(n²).
func (f *LU) Solve(b []float64) ([]float64, error) {
	n := f.lu.r
	if len(b) != n {
		return nil, fmt.Errorf("LU.Solve: len(b)=%d, n=%d: %w", len(b), n, ErrDimensionMismatch)
	}
	d := f.lu.data
	x := make([]float64, n)
	var i, j int

	// Forward substitution: L·y = P·b (y stored in x).
	for i = 0; i < n; i++ {
		sum := b[f.piv[i]]
		for j = 0; j < i; j++ {
			sum -= d[i*n+j] * x[j]
		}
		x[i] = sum
	}
	// Back substitution: U·x = y.
	for i = n - 1; i >= 0; i-- {
		sum := x[i]
		for j = i + 1; j < n; j++ {
			sum -= d[i*n+j] * x[j]
		}
		x[i] = sum / d[i*n+i]
	}
	for i = 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			return nil, fmt.Errorf("LU.Solve: x[%d]: %w", i, ErrNaNInf)
		}
	}

	return x, nil
}

// L returns the unit lower-triangular factor as a new Dense.
func (f *LU) L() *Dense {
	n := f.lu.r
	l := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		l.data[i*n+i] = 1
		copy(l.data[i*n:i*n+i], f.lu.data[i*n:i*n+i])
	}

	return l
}

// U returns the upper-triangular factor as a new Dense.
func (f *LU) U() *Dense {
	n := f.lu.r
	u := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		copy(u.data[i*n+i:(i+1)*n], f.lu.data[i*n+i:(i+1)*n])
	}

	return u
}

// Pivots returns a copy of the row permutation: row i of L·U is row
// Pivots()[i] of the original matrix.
func (f *LU) Pivots() []int {
	out := make([]int, len(f.piv))
	copy(out, f.piv)

	return out
}

// Solve factors a and solves a·x = b in one call.
func Solve(a *Dense, b []float64) ([]float64, error) {
	f, err := Factorize(a)
	if err != nil {
		return nil, err
	}

	return f.Solve(b)
}
