// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package customcall

import (
	"strconv"
	"unsafe"
)

// DType is the element type tag carried by a Descriptor.
type DType int8

// Element type tags. The numbering is fixed by the compiler runtime.
const (
	Index DType = iota
	I1
	I8
	I16
	I32
	I64
	F32
	F64
	C64
	C128
)

func (t DType) String() string {
	switch t {
	case Index:
		return "index"
	case I1:
		return "i1"
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case C64:
		return "complex64"
	case C128:
		return "complex128"
	}
	return "dtype(" + strconv.Itoa(int(t)) + ")"
}

// Size returns the size in bytes of one element of type t, or 0 if t is not
// a known tag.
func (t DType) Size() int {
	switch t {
	case I1, I8:
		return 1
	case I16:
		return 2
	case I32, F32:
		return 4
	case Index, I64, F64, C64:
		return 8
	case C128:
		return 16
	}
	return 0
}

// Descriptor is the buffer descriptor passed across the compiled code
// boundary. Its memory layout matches the C struct
//
//	struct { int64_t rank; void *data_aligned; int8_t dtype; }
type Descriptor struct {
	Rank  int64
	Data  unsafe.Pointer
	DType DType
}

// Slot describes one descriptor position of a kernel's calling convention.
type Slot struct {
	Name   string
	DType  DType
	Scalar bool // rank 0 when true, rank 1 or more otherwise
}

// Schema is the fixed calling convention of a kernel.
type Schema struct {
	Name    string
	Inputs  []Slot
	Outputs []Slot
}

// Frame gives typed access to the descriptors of one kernel call.
type Frame struct {
	schema  *Schema
	inputs  []unsafe.Pointer
	outputs []unsafe.Pointer
}

// Decode binds the descriptor arrays of a call to the schema s. The arrays
// are trusted to follow s; in builds with the catalystdebug tag Decode panics
// if they do not.
func Decode(s *Schema, inputs, outputs []unsafe.Pointer) Frame {
	if debugAssertions {
		s.check(inputs, outputs)
	}
	return Frame{schema: s, inputs: inputs, outputs: outputs}
}

// Int32 returns the value of the i32 scalar input i.
func (f Frame) Int32(i int) int {
	return int(InputScalar[int32](f, i))
}

// Flag returns whether the i32 scalar input i is non-zero.
func (f Frame) Flag(i int) bool {
	return InputScalar[int32](f, i) != 0
}

// InputScalar returns the value of the scalar input i.
func InputScalar[T any](f Frame, i int) T {
	d := f.input(i)
	if debugAssertions {
		f.checkElem(f.schema.Inputs[i], d, unsafe.Sizeof(*new(T)))
	}
	return *(*T)(d.Data)
}

// InputArray returns the buffer of input i as a slice of n elements.
func InputArray[T any](f Frame, i, n int) []T {
	d := f.input(i)
	if debugAssertions {
		f.checkElem(f.schema.Inputs[i], d, unsafe.Sizeof(*new(T)))
	}
	return asSlice[T](d.Data, n)
}

// OutputArray returns the buffer of output i as a slice of n elements.
func OutputArray[T any](f Frame, i, n int) []T {
	d := f.output(i)
	if debugAssertions {
		f.checkElem(f.schema.Outputs[i], d, unsafe.Sizeof(*new(T)))
	}
	return asSlice[T](d.Data, n)
}

func (f Frame) input(i int) *Descriptor  { return (*Descriptor)(f.inputs[i]) }
func (f Frame) output(i int) *Descriptor { return (*Descriptor)(f.outputs[i]) }

func asSlice[T any](p unsafe.Pointer, n int) []T {
	if n <= 0 {
		return nil
	}
	return unsafe.Slice((*T)(p), n)
}
