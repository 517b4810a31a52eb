// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cabi builds the shared library that compiled programs link against
// for their linear-algebra custom calls:
//
//	go build -buildmode=c-shared -o libcustom_calls.so ./cabi
//
// Every exported symbol has the C signature
//
//	void f(void **inputs, void **outputs);
//
// and forwards to the customcall kernel of the same name.
package main

import "C"

import (
	"unsafe"

	"github.com/nkushida-oqc/catalyst/customcall"
)

//export lapack_dgesdd
func lapack_dgesdd(inputs, outputs *unsafe.Pointer) { call("lapack_dgesdd", inputs, outputs) }

//export lapack_dsyevd
func lapack_dsyevd(inputs, outputs *unsafe.Pointer) { call("lapack_dsyevd", inputs, outputs) }

//export blas_dtrsm
func blas_dtrsm(inputs, outputs *unsafe.Pointer) { call("blas_dtrsm", inputs, outputs) }

//export blas_ztrsm
func blas_ztrsm(inputs, outputs *unsafe.Pointer) { call("blas_ztrsm", inputs, outputs) }

//export lapack_dgetrf
func lapack_dgetrf(inputs, outputs *unsafe.Pointer) { call("lapack_dgetrf", inputs, outputs) }

//export lapack_zgetrf
func lapack_zgetrf(inputs, outputs *unsafe.Pointer) { call("lapack_zgetrf", inputs, outputs) }

// call converts the C descriptor arrays into slices of the length fixed by
// the target's schema and runs the kernel.
func call(target string, inputs, outputs *unsafe.Pointer) {
	k, ok := customcall.Lookup(target)
	if !ok {
		panic("cabi: unknown target " + target)
	}
	k.Call(
		unsafe.Slice(inputs, len(k.Schema.Inputs)),
		unsafe.Slice(outputs, len(k.Schema.Outputs)),
	)
}

func main() {}
