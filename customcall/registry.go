// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package customcall

import (
	"maps"
	"slices"
	"unsafe"
)

// Kernel is a custom-call target together with its calling convention.
type Kernel struct {
	Schema *Schema
	Call   func(inputs, outputs []unsafe.Pointer)
}

var kernels = map[string]Kernel{
	gesddSchema.Name:  {Schema: gesddSchema, Call: Dgesdd},
	syevdSchema.Name:  {Schema: syevdSchema, Call: Dsyevd},
	dtrsmSchema.Name:  {Schema: dtrsmSchema, Call: Dtrsm},
	ztrsmSchema.Name:  {Schema: ztrsmSchema, Call: Ztrsm},
	dgetrfSchema.Name: {Schema: dgetrfSchema, Call: Dgetrf},
	zgetrfSchema.Name: {Schema: zgetrfSchema, Call: Zgetrf},
}

// Lookup returns the kernel registered for the custom-call target name.
func Lookup(name string) (Kernel, bool) {
	k, ok := kernels[name]
	return k, ok
}

// Targets returns the names of all registered targets in sorted order.
func Targets() []string {
	return slices.Sorted(maps.Keys(kernels))
}

// backendName identifies the BLAS implementation the kernels run on.
var backendName = "gonum"

// Backend returns the name of the BLAS implementation in use, "gonum" or
// "netlib".
func Backend() string { return backendName }
