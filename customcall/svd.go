// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package customcall

import (
	"unsafe"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
)

var gesddSchema = &Schema{
	Name: "lapack_dgesdd",
	Inputs: []Slot{
		{Name: "full_matrices", DType: I32, Scalar: true},
		{Name: "compute_uv", DType: I32, Scalar: true},
		{Name: "batch", DType: I32, Scalar: true},
		{Name: "m", DType: I32, Scalar: true},
		{Name: "n", DType: I32, Scalar: true},
		{Name: "lwork", DType: I32, Scalar: true},
		{Name: "a", DType: F64},
	},
	Outputs: []Slot{
		{Name: "a_out", DType: F64},
		{Name: "s", DType: F64},
		{Name: "vt", DType: F64},
		{Name: "u", DType: F64},
		{Name: "info", DType: I32},
		{Name: "iwork", DType: I32},
		{Name: "work", DType: F64},
	},
}

// Dgesdd computes the singular value decomposition
//
//	A = U * Σ * Vᵀ
//
// of every m×n matrix of a batch.
//
// The singular values are written to s in descending order, min(m,n) per
// matrix. When compute_uv is set the singular vectors are computed as well:
// output 2 receives Vᵀ and output 3 receives U. With full_matrices U is m×m
// and Vᵀ is n×n, otherwise U is m×min(m,n) and Vᵀ is min(m,n)×n. Without
// compute_uv outputs 2 and 3 are not touched.
//
// The staged copy of A is destroyed. The work output must hold lwork
// elements with lwork at least GesddWorkSize(m, n, SVDJob(compute_uv,
// full_matrices)); iwork is not used by the gonum backend. info receives
// StatusOK, StatusNotConverged if the bidiagonal QR iteration failed to
// converge or StatusIllegalArgument if the backend rejected the parameters.
func Dgesdd(inputs, outputs []unsafe.Pointer) {
	f := Decode(gesddSchema, inputs, outputs)
	full := f.Flag(0)
	computeUV := f.Flag(1)
	batch, m, n, lwork := f.Int32(2), f.Int32(3), f.Int32(4), f.Int32(5)
	if batch <= 0 {
		return
	}

	job := SVDJob(computeUV, full)
	mn := min(m, n)
	uCols, vtRows := mn, mn
	if full {
		uCols, vtRows = m, n
	}

	src := InputArray[float64](f, 6, batch*m*n)
	aOut := OutputArray[float64](f, 0, batch*m*n)
	stage(aOut, src)
	a := NewStrided(aOut, m*n, m*n)
	s := NewStrided(OutputArray[float64](f, 1, batch*mn), mn, mn)
	info := OutputArray[int32](f, 4, batch)
	var u, vt Strided[float64]
	if computeUV {
		vt = NewStrided(OutputArray[float64](f, 2, batch*vtRows*n), vtRows*n, vtRows*n)
		u = NewStrided(OutputArray[float64](f, 3, batch*m*uCols), m*uCols, m*uCols)
	}
	work := OutputArray[float64](f, 6, lwork)

	forEachChunk(batch, func(chunk, start, end int) {
		w := work
		if chunk > 0 {
			w = make([]float64, len(work))
		}
		for i := start; i < end; i++ {
			ai := blas64.General{Rows: m, Cols: n, Stride: max(1, n), Data: a.At(i)}
			ui := blas64.General{Stride: 1}
			vti := blas64.General{Stride: 1}
			if computeUV {
				ui = blas64.General{Rows: m, Cols: uCols, Stride: max(1, uCols), Data: u.At(i)}
				vti = blas64.General{Rows: vtRows, Cols: n, Stride: max(1, n), Data: vt.At(i)}
			}
			si := s.At(i)
			info[i] = runElement(gesddSchema.Name, i, func() int32 {
				if !lapack64.Gesvd(job, job, ai, ui, vti, si, w, lwork) {
					return StatusNotConverged
				}
				return StatusOK
			})
		}
	})
}

