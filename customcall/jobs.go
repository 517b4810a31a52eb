// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package customcall

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack"
)

// SVDJob returns the singular vector job for the compute_uv and
// full_matrices flags. compute_uv takes precedence: without it no vectors are
// computed whatever full_matrices says.
func SVDJob(computeUV, fullMatrices bool) lapack.SVDJob {
	switch {
	case !computeUV:
		return lapack.SVDNone
	case !fullMatrices:
		return lapack.SVDStore
	}
	return lapack.SVDAll
}

// Side returns blas.Left when the triangular matrix multiplies from the left.
func Side(left bool) blas.Side {
	if left {
		return blas.Left
	}
	return blas.Right
}

// Uplo returns the referenced triangle.
func Uplo(lower bool) blas.Uplo {
	if lower {
		return blas.Lower
	}
	return blas.Upper
}

// Transpose maps the transpose code of a triangular solve: 1 is the
// transpose, 2 the conjugate transpose and any other value no transpose.
func Transpose(code int) blas.Transpose {
	switch code {
	case 1:
		return blas.Trans
	case 2:
		return blas.ConjTrans
	}
	return blas.NoTrans
}

// Diag returns blas.Unit when the diagonal of the triangular matrix is
// implicitly one.
func Diag(unit bool) blas.Diag {
	if unit {
		return blas.Unit
	}
	return blas.NonUnit
}
