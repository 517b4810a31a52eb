// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gonum is a pure-go implementation of the complex128 LAPACK routines
// needed by the custom-call kernels that gonum.org/v1/gonum/lapack/gonum does
// not provide.
//
// The routines follow the conventions of gonum's LAPACK implementation:
// matrices are stored in row-major order, pivot indices are zero-based and
// invalid parameters cause a panic with a message that starts with
// "lapack: ". The Level 2 and 3 BLAS operations are performed through
// gonum.org/v1/gonum/blas/cblas128, so registering a different
// blas.Complex128 implementation with cblas128.Use also changes the BLAS used
// here.
package gonum // import "github.com/nkushida-oqc/catalyst/lapack/gonum"

// Implementation is the native Go implementation of the LAPACK routines of
// this package. It is built on top of calls to the return of
// cblas128.Implementation(), so while the LAPACK code is in pure Go, the
// underlying BLAS implementation may not be.
type Implementation struct{}

// dlamchS is the safe minimum: the smallest number such that 1/dlamchS does
// not overflow.
const dlamchS = 0x1p-1022
