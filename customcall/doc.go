// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package customcall implements the batched dense linear-algebra kernels that
// compiled programs reach through custom calls.
//
// Every kernel has the signature
//
//	func(inputs, outputs []unsafe.Pointer)
//
// where each element points to a Descriptor laid out exactly as the C struct
//
//	struct { int64_t rank; void *data_aligned; int8_t dtype; }
//
// The order, element type and rank class of the descriptors is fixed per
// kernel by its Schema and is trusted: the compiler emitting the call is
// responsible for honouring it. Building with the catalystdebug tag turns on
// assertions that check every call against its schema.
//
// All matrices are dense and row-major with the leading dimension equal to
// the number of columns. Batched operands hold the matrices of a batch one
// after another. When an output buffer is not the same buffer as the input it
// is derived from, the input is first copied into the output and the kernel
// then works in place.
//
// The numerical work is carried out by gonum: blas64 and cblas128 for the
// triangular solves, lapack64 for the real factorizations and
// lapack/lapack128 from this module for the complex LU factorization.
// Building with the netlib tag and cgo enabled routes the BLAS calls through
// gonum.org/v1/netlib instead.
package customcall
