// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package customcall

import (
	"math"

	"gonum.org/v1/gonum/lapack"
)

// GesddWorkSize returns the number of float64 elements of the work buffer
// that a compiled program allocates for an m×n SVD with the given job. It is
// the minimum workspace of LAPACK's DGESDD, which is never smaller than the
// minimum of the SVD routine used as backend.
func GesddWorkSize(m, n int, job lapack.SVDJob) int {
	mn := int64(min(m, n))
	mx := int64(max(m, n))
	var lwork int64
	switch job {
	case lapack.SVDNone:
		lwork = 3*mn + max(mx, 7*mn)
	default:
		lwork = 4*mn*mn + 6*mn + mx
	}
	return capInt32(max(1, lwork))
}

// GesddIworkSize returns the number of int32 elements of the iwork buffer of
// an m×n SVD.
func GesddIworkSize(m, n int) int {
	return capInt32(max(1, 8*int64(min(m, n))))
}

// SyevdWorkSize returns the number of float64 elements of the work buffer of
// an n×n symmetric eigendecomposition.
func SyevdWorkSize(n int) int {
	n64 := int64(n)
	return capInt32(1 + 6*n64 + 2*n64*n64)
}

// SyevdIworkSize returns the number of int32 elements of the iwork buffer of
// an n×n symmetric eigendecomposition.
func SyevdIworkSize(n int) int {
	return capInt32(3 + 5*int64(n))
}

// capInt32 clamps v to the range of the 32-bit integers the compiled code uses
// for buffer sizes.
func capInt32(v int64) int {
	return int(min(v, math.MaxInt32))
}
