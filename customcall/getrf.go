// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package customcall

import (
	"unsafe"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/lapack/lapack64"

	"github.com/nkushida-oqc/catalyst/lapack/lapack128"
)

func getrfSchema(name string, t DType) *Schema {
	return &Schema{
		Name: name,
		Inputs: []Slot{
			{Name: "batch", DType: I32, Scalar: true},
			{Name: "m", DType: I32, Scalar: true},
			{Name: "n", DType: I32, Scalar: true},
			{Name: "a", DType: t},
		},
		Outputs: []Slot{
			{Name: "a_out", DType: t},
			{Name: "ipiv", DType: I32},
			{Name: "info", DType: I32},
		},
	}
}

var (
	dgetrfSchema = getrfSchema("lapack_dgetrf", F64)
	zgetrfSchema = getrfSchema("lapack_zgetrf", C128)
)

// getrfFunc factorizes the m×n matrix a in place, storing zero-based row
// interchanges in ipiv.
type getrfFunc[T Scalar] func(m, n int, a []T, lda int, ipiv []int) bool

func dgetrf(m, n int, a []float64, lda int, ipiv []int) bool {
	return lapack64.Getrf(blas64.General{Rows: m, Cols: n, Stride: lda, Data: a}, ipiv)
}

func zgetrf(m, n int, a []complex128, lda int, ipiv []int) bool {
	return lapack128.Getrf(cblas128.General{Rows: m, Cols: n, Stride: lda, Data: a}, ipiv)
}

// Dgetrf computes the LU factorization with partial pivoting
//
//	A = P * L * U
//
// of every m×n matrix of a batch. L (unit diagonal not stored) and U
// overwrite the staged copy of A. ipiv receives min(m,n) one-based pivot
// indices per matrix: row i was interchanged with row ipiv[i]. info receives
// StatusOK, or j+1 when U[j,j] is the first diagonal element that is exactly
// zero, in which case the factorization is complete but U is singular.
func Dgetrf(inputs, outputs []unsafe.Pointer) {
	getrfBatch[float64](dgetrfSchema, inputs, outputs, dgetrf)
}

// Zgetrf is the complex128 variant of Dgetrf.
func Zgetrf(inputs, outputs []unsafe.Pointer) {
	getrfBatch[complex128](zgetrfSchema, inputs, outputs, zgetrf)
}

func getrfBatch[T Scalar](s *Schema, inputs, outputs []unsafe.Pointer, getrf getrfFunc[T]) {
	f := Decode(s, inputs, outputs)
	batch, m, n := f.Int32(0), f.Int32(1), f.Int32(2)
	if batch <= 0 {
		return
	}
	mn := min(m, n)

	src := InputArray[T](f, 3, batch*m*n)
	aOut := OutputArray[T](f, 0, batch*m*n)
	stage(aOut, src)
	a := NewStrided(aOut, m*n, m*n)
	pivots := NewStrided(OutputArray[int32](f, 1, batch*mn), mn, mn)
	info := OutputArray[int32](f, 2, batch)

	forEachChunk(batch, func(_, start, end int) {
		ipiv := make([]int, mn)
		for i := start; i < end; i++ {
			ai := a.At(i)
			pi := pivots.At(i)
			info[i] = runElement(s.Name, i, func() int32 {
				getrf(m, n, ai, max(1, n), ipiv)
				for j, p := range ipiv {
					pi[j] = int32(p + 1)
				}
				return firstZeroPivot(ai, mn, max(1, n))
			})
		}
	})
}

// firstZeroPivot returns the one-based index of the first exactly zero
// diagonal element of the k×k leading block of the row-major matrix a, or
// StatusOK if there is none.
func firstZeroPivot[T Scalar](a []T, k, lda int) int32 {
	for j := 0; j < k; j++ {
		if a[j*lda+j] == 0 {
			return int32(j + 1)
		}
	}
	return StatusOK
}
