// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lapack128 provides a set of convenient wrapper functions for
// complex128 LAPACK calls, in the same manner as gonum's lapack64 package.
//
// The wrapped routines are only those required by the custom-call runtime,
// which gonum does not implement for complex128.
package lapack128 // import "github.com/nkushida-oqc/catalyst/lapack/lapack128"

import (
	"gonum.org/v1/gonum/blas/cblas128"

	"github.com/nkushida-oqc/catalyst/lapack/gonum"
)

// Complex128 defines the complex128 LAPACK routines used by this package.
type Complex128 interface {
	Zgetrf(m, n int, a []complex128, lda int, ipiv []int) (ok bool)
}

var lapack128 Complex128 = gonum.Implementation{}

// Use sets the LAPACK complex128 implementation to be used by subsequent
// calls. The default implementation is gonum.Implementation.
func Use(l Complex128) {
	lapack128 = l
}

// Implementation returns the current LAPACK complex128 implementation.
//
// Implementation allows direct calls to the current LAPACK complex128
// implementation giving finer control of parameters.
func Implementation() Complex128 {
	return lapack128
}

// Getrf computes the LU decomposition of an m×n matrix A using partial
// pivoting with row interchanges.
//
// The LU decomposition is a factorization of A into
//
//	A = P * L * U
//
// where P is a permutation matrix, L is a lower triangular with unit diagonal
// elements (lower trapezoidal if m > n), and U is upper triangular (upper
// trapezoidal if m < n).
//
// On entry, a contains the matrix A. On return, L and U are stored in place
// into a, and P is represented by ipiv.
//
// ipiv contains a sequence of row swaps. It indicates that row i of the matrix
// was interchanged with ipiv[i]. ipiv must have length min(m,n), and Getrf will
// panic otherwise. ipiv is zero-indexed.
//
// Getrf returns whether the matrix A is nonsingular.
func Getrf(a cblas128.General, ipiv []int) bool {
	return lapack128.Zgetrf(a.Rows, a.Cols, a.Data, max(1, a.Stride), ipiv)
}
