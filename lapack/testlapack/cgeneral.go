// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testlapack

import (
	"math"
	"math/cmplx"
	"math/rand/v2"

	"gonum.org/v1/gonum/blas/cblas128"
)

// nanCGeneral returns a cblas128.General of size m×n with stride and all
// elements set to NaN.
func nanCGeneral(m, n, stride int) cblas128.General {
	stride = max(1, stride)
	data := make([]complex128, max(0, (m-1)*stride+n))
	for i := range data {
		data[i] = cmplx.NaN()
	}
	return cblas128.General{
		Rows:   m,
		Cols:   n,
		Stride: stride,
		Data:   data,
	}
}

// randomCGeneral returns a cblas128.General of size m×n with stride whose
// elements have independent standard normal real and imaginary parts. The
// padding between rows is filled with NaN.
func randomCGeneral(m, n, stride int, rnd *rand.Rand) cblas128.General {
	a := nanCGeneral(m, n, stride)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			a.Data[i*a.Stride+j] = complex(rnd.NormFloat64(), rnd.NormFloat64())
		}
	}
	return a
}

// cloneCGeneral allocates and returns an exact copy of the given matrix.
func cloneCGeneral(a cblas128.General) cblas128.General {
	c := a
	c.Data = make([]complex128, len(a.Data))
	copy(c.Data, a.Data)
	return c
}

// equalApproxCGeneral returns whether the elements of a and b are equal to
// within tol, measured by the modulus of the difference.
func equalApproxCGeneral(a, b cblas128.General, tol float64) bool {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		panic("bad input")
	}
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < a.Cols; j++ {
			if cmplx.Abs(a.Data[i*a.Stride+j]-b.Data[i*b.Stride+j]) > tol {
				return false
			}
		}
	}
	return true
}

// maxAbsCGeneral returns the largest modulus of the elements of a.
func maxAbsCGeneral(a cblas128.General) float64 {
	var v float64
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < a.Cols; j++ {
			v = math.Max(v, cmplx.Abs(a.Data[i*a.Stride+j]))
		}
	}
	return v
}

// isNaNPadding returns whether all elements of a outside the m×n submatrix
// described by a.Rows and a.Cols are still NaN.
func isNaNPadding(a cblas128.General) bool {
	for i := 0; i < a.Rows; i++ {
		for j := a.Cols; j < a.Stride; j++ {
			k := i*a.Stride + j
			if k >= len(a.Data) {
				break
			}
			if !cmplx.IsNaN(a.Data[k]) {
				return false
			}
		}
	}
	return true
}

// constructCPLU reconstructs the product P*L*U from the LU factors stored in
// a by Zgetrf and the zero-based row interchanges in ipiv.
func constructCPLU(a cblas128.General, ipiv []int) cblas128.General {
	m, n := a.Rows, a.Cols
	k := min(m, n)

	// L*U.
	lu := nanCGeneral(m, n, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum complex128
			for l := 0; l <= min(i, j, k-1); l++ {
				lil := a.Data[i*a.Stride+l]
				if l == i {
					lil = 1
				}
				sum += lil * a.Data[l*a.Stride+j]
			}
			lu.Data[i*lu.Stride+j] = sum
		}
	}

	// Undo the row interchanges in reverse order.
	for i := k - 1; i >= 0; i-- {
		p := ipiv[i]
		if p == i {
			continue
		}
		for j := 0; j < n; j++ {
			lu.Data[i*lu.Stride+j], lu.Data[p*lu.Stride+j] = lu.Data[p*lu.Stride+j], lu.Data[i*lu.Stride+j]
		}
	}
	return lu
}
