// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package customcall

import (
	"unsafe"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
)

func trsmSchema(name string, t DType) *Schema {
	return &Schema{
		Name: name,
		Inputs: []Slot{
			{Name: "left_side", DType: I32, Scalar: true},
			{Name: "lower", DType: I32, Scalar: true},
			{Name: "trans_a", DType: I32, Scalar: true},
			{Name: "unit_diag", DType: I32, Scalar: true},
			{Name: "m", DType: I32, Scalar: true},
			{Name: "n", DType: I32, Scalar: true},
			{Name: "batch", DType: I32, Scalar: true},
			{Name: "alpha", DType: t, Scalar: true},
			{Name: "a", DType: t},
			{Name: "b", DType: t},
		},
		Outputs: []Slot{
			{Name: "x", DType: t},
		},
	}
}

var (
	dtrsmSchema = trsmSchema("blas_dtrsm", F64)
	ztrsmSchema = trsmSchema("blas_ztrsm", C128)
)

// trsmFunc is the signature shared by blas.Float64.Dtrsm and
// blas.Complex128.Ztrsm.
type trsmFunc[T Scalar] func(s blas.Side, ul blas.Uplo, tA blas.Transpose, d blas.Diag, m, n int, alpha T, a []T, lda int, b []T, ldb int)

// Dtrsm solves
//
//	op(A) * X = alpha * B  if left_side is set,
//	X * op(A) = alpha * B  otherwise,
//
// for every element of a batch, where A is a triangular matrix of order m
// (left) or n (right), B and X are m×n and op(A) is A, Aᵀ or Aᴴ as selected
// by trans_a. X is written to the output, which may be the buffer of B.
func Dtrsm(inputs, outputs []unsafe.Pointer) {
	trsmBatch[float64](dtrsmSchema, inputs, outputs, blas64.Implementation().Dtrsm)
}

// Ztrsm is the complex128 variant of Dtrsm.
func Ztrsm(inputs, outputs []unsafe.Pointer) {
	trsmBatch[complex128](ztrsmSchema, inputs, outputs, cblas128.Implementation().Ztrsm)
}

func trsmBatch[T Scalar](s *Schema, inputs, outputs []unsafe.Pointer, trsm trsmFunc[T]) {
	f := Decode(s, inputs, outputs)
	side := Side(f.Flag(0))
	uplo := Uplo(f.Flag(1))
	tA := Transpose(f.Int32(2))
	diag := Diag(f.Flag(3))
	m, n, batch := f.Int32(4), f.Int32(5), f.Int32(6)
	if batch <= 0 {
		return
	}
	alpha := InputScalar[T](f, 7)

	k := n
	if side == blas.Left {
		k = m
	}
	a := NewStrided(InputArray[T](f, 8, batch*k*k), k*k, k*k)
	src := InputArray[T](f, 9, batch*m*n)
	xOut := OutputArray[T](f, 0, batch*m*n)
	stage(xOut, src)
	x := NewStrided(xOut, m*n, m*n)

	forEachChunk(batch, func(_, start, end int) {
		for i := start; i < end; i++ {
			trsm(side, uplo, tA, diag, m, n, alpha, a.At(i), max(1, k), x.At(i), max(1, n))
		}
	})
}
