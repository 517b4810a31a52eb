// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package customcall

import (
	"fmt"
	"unsafe"
)

// check panics if the descriptor arrays do not follow s.
func (s *Schema) check(inputs, outputs []unsafe.Pointer) {
	if len(inputs) != len(s.Inputs) {
		panic(fmt.Sprintf("customcall: %s: got %d inputs, want %d", s.Name, len(inputs), len(s.Inputs)))
	}
	if len(outputs) != len(s.Outputs) {
		panic(fmt.Sprintf("customcall: %s: got %d outputs, want %d", s.Name, len(outputs), len(s.Outputs)))
	}
	for i, slot := range s.Inputs {
		s.checkSlot("input", i, slot, inputs[i])
	}
	for i, slot := range s.Outputs {
		s.checkSlot("output", i, slot, outputs[i])
	}
}

func (s *Schema) checkSlot(kind string, i int, slot Slot, p unsafe.Pointer) {
	if p == nil {
		panic(fmt.Sprintf("customcall: %s: nil descriptor for %s %d (%s)", s.Name, kind, i, slot.Name))
	}
	d := (*Descriptor)(p)
	if d.DType != slot.DType {
		panic(fmt.Sprintf("customcall: %s: %s %d (%s) has dtype %v, want %v", s.Name, kind, i, slot.Name, d.DType, slot.DType))
	}
	switch {
	case slot.Scalar && d.Rank != 0:
		panic(fmt.Sprintf("customcall: %s: %s %d (%s) has rank %d, want a scalar", s.Name, kind, i, slot.Name, d.Rank))
	case !slot.Scalar && d.Rank < 1:
		panic(fmt.Sprintf("customcall: %s: %s %d (%s) has rank %d, want an array", s.Name, kind, i, slot.Name, d.Rank))
	case slot.Scalar && d.Data == nil:
		panic(fmt.Sprintf("customcall: %s: %s %d (%s) has no data", s.Name, kind, i, slot.Name))
	}
}

// checkElem panics if a Go element of size bytes cannot represent the
// elements of the slot.
func (f Frame) checkElem(slot Slot, d *Descriptor, size uintptr) {
	if int(size) != d.DType.Size() {
		panic(fmt.Sprintf("customcall: %s: %s accessed with %d-byte elements, dtype %v has %d", f.schema.Name, slot.Name, size, d.DType, d.DType.Size()))
	}
}
