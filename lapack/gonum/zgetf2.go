// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gonum

import (
	"math/cmplx"

	"gonum.org/v1/gonum/blas/cblas128"
)

// Zgetf2 computes the LU decomposition of an m×n complex matrix A using
// partial pivoting with row interchanges.
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
// ipiv contains a sequence of row interchanges. It indicates that row i of the
// matrix was interchanged with ipiv[i]. ipiv must have length min(m,n), and
// Zgetf2 will panic otherwise. ipiv is zero-indexed.
//
// The pivot in each column is the element with the largest |Re|+|Im|, as
// selected by Izamax.
//
// Zgetf2 returns whether the matrix A is nonsingular. The LU decomposition will
// be computed regardless of the singularity of A, but the result should not be
// used to solve a system of equation.
//
// Zgetf2 is an internal routine. It is exported for testing purposes.
func (Implementation) Zgetf2(m, n int, a []complex128, lda int, ipiv []int) (ok bool) {
	mn := min(m, n)
	switch {
	case m < 0:
		panic(mLT0)
	case n < 0:
		panic(nLT0)
	case lda < max(1, n):
		panic(badLdA)
	}

	// Quick return if possible.
	if mn == 0 {
		return true
	}

	switch {
	case len(a) < (m-1)*lda+n:
		panic(shortA)
	case len(ipiv) != mn:
		panic(badLenIpiv)
	}

	bi := cblas128.Implementation()

	ok = true
	for j := 0; j < mn; j++ {
		// Find a pivot and test for singularity.
		jp := j + bi.Izamax(m-j, a[j*lda+j:], lda)
		ipiv[j] = jp
		if a[jp*lda+j] == 0 {
			ok = false
		} else {
			// Swap the rows if necessary.
			if jp != j {
				bi.Zswap(n, a[j*lda:], 1, a[jp*lda:], 1)
			}
			if j < m-1 {
				ajj := a[j*lda+j]
				if cmplx.Abs(ajj) >= dlamchS {
					bi.Zscal(m-j-1, 1/ajj, a[(j+1)*lda+j:], lda)
				} else {
					for i := j + 1; i < m; i++ {
						a[i*lda+j] /= ajj
					}
				}
			}
		}
		if j < mn-1 {
			bi.Zgeru(m-j-1, n-j-1, -1, a[(j+1)*lda+j:], lda, a[j*lda+j+1:], 1, a[(j+1)*lda+j+1:], lda)
		}
	}
	return ok
}
