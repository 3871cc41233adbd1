// Package matrix provides the small dense linear-algebra kernel used by the
// interpolation code in this module.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that
//     return sentinel errors instead of panicking.
//   - LU factorization with partial pivoting (Factorize) and a Solve helper
//     for square systems A·x = b.
//
// Systems here are tiny (one row per spline knot), so the kernel favours
// determinism and clear error reporting over blocking or BLAS fast paths.
//
// See example_test.go for usage patterns.
package matrix
