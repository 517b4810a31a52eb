// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package customcall

import (
	"unsafe"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"
)

var syevdSchema = &Schema{
	Name: "lapack_dsyevd",
	Inputs: []Slot{
		{Name: "lower", DType: I32, Scalar: true},
		{Name: "batch", DType: I32, Scalar: true},
		{Name: "n", DType: I32, Scalar: true},
		{Name: "a", DType: F64},
	},
	Outputs: []Slot{
		{Name: "a_out", DType: F64},
		{Name: "w", DType: F64},
		{Name: "info", DType: I32},
		{Name: "work", DType: F64},
		{Name: "iwork", DType: I32},
	},
}

// Dsyevd computes all eigenvalues and eigenvectors of every n×n symmetric
// matrix of a batch.
//
// Only the triangle selected by lower is read. On return a_out holds the
// orthonormal eigenvectors in its columns and w the eigenvalues in ascending
// order. The work output must hold SyevdWorkSize(n) elements; iwork is not
// used by the gonum backend. info receives StatusOK, StatusNotConverged if
// the QR iteration failed or StatusIllegalArgument if the backend rejected
// the parameters.
func Dsyevd(inputs, outputs []unsafe.Pointer) {
	f := Decode(syevdSchema, inputs, outputs)
	uplo := Uplo(f.Flag(0))
	batch, n := f.Int32(1), f.Int32(2)
	if batch <= 0 {
		return
	}

	src := InputArray[float64](f, 3, batch*n*n)
	aOut := OutputArray[float64](f, 0, batch*n*n)
	stage(aOut, src)
	a := NewStrided(aOut, n*n, n*n)
	w := NewStrided(OutputArray[float64](f, 1, batch*n), n, n)
	info := OutputArray[int32](f, 2, batch)
	lwork := SyevdWorkSize(n)
	work := OutputArray[float64](f, 3, lwork)

	forEachChunk(batch, func(chunk, start, end int) {
		buf := work
		if chunk > 0 {
			buf = make([]float64, lwork)
		}
		for i := start; i < end; i++ {
			ai := blas64.Symmetric{N: n, Stride: max(1, n), Data: a.At(i), Uplo: uplo}
			wi := w.At(i)
			info[i] = runElement(syevdSchema.Name, i, func() int32 {
				if !lapack64.Syev(lapack.EVCompute, ai, wi, buf, lwork) {
					return StatusNotConverged
				}
				return StatusOK
			})
		}
	})
}
