// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package customcall

// Strided is a view of a batch of equally sized operands stored back to back
// in one buffer. Element i occupies data[i*stride : i*stride+extent].
type Strided[T any] struct {
	data   []T
	stride int
	extent int
}

// NewStrided returns a view of data with the given per-element stride and
// extent. extent must not exceed stride.
func NewStrided[T any](data []T, stride, extent int) Strided[T] {
	return Strided[T]{data: data, stride: stride, extent: extent}
}

// At returns element i of the batch. The capacity of the returned slice is
// limited to its length so that no operation on it can reach element i+1.
func (s Strided[T]) At(i int) []T {
	off := i * s.stride
	return s.data[off : off+s.extent : off+s.extent]
}

// Scalar is the element type of the kernels that exist in a real and a
// complex variant.
type Scalar interface {
	~float64 | ~complex128
}
