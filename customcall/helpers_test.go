// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package customcall

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"
	"unsafe"
)

// scalarArg returns a rank-0 descriptor holding v.
func scalarArg[T any](v T, t DType) unsafe.Pointer {
	p := new(T)
	*p = v
	return unsafe.Pointer(&Descriptor{Rank: 0, Data: unsafe.Pointer(p), DType: t})
}

// arrayArg returns a rank-1 descriptor over the elements of v.
func arrayArg[T any](v []T, t DType) unsafe.Pointer {
	return unsafe.Pointer(&Descriptor{Rank: 1, Data: unsafe.Pointer(unsafe.SliceData(v)), DType: t})
}

func i32(v int) unsafe.Pointer { return scalarArg(int32(v), I32) }

func flag(v bool) unsafe.Pointer {
	if v {
		return i32(1)
	}
	return i32(0)
}

func nanSlice(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}

func randomSlice(n int, rnd *rand.Rand) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = rnd.NormFloat64()
	}
	return s
}

func randomCSlice(n int, rnd *rand.Rand) []complex128 {
	s := make([]complex128, n)
	for i := range s {
		s[i] = complex(rnd.NormFloat64(), rnd.NormFloat64())
	}
	return s
}

// randomScalars returns n standard normal values of type T.
func randomScalars[T Scalar](n int, rnd *rand.Rand) []T {
	s := make([]T, n)
	for i := range s {
		switch p := any(&s[i]).(type) {
		case *float64:
			*p = rnd.NormFloat64()
		case *complex128:
			*p = complex(rnd.NormFloat64(), rnd.NormFloat64())
		}
	}
	return s
}

func fromFloat[T Scalar](f float64) T {
	var v T
	switch p := any(&v).(type) {
	case *float64:
		*p = f
	case *complex128:
		*p = complex(f, 0)
	}
	return v
}

func dtypeOf[T Scalar]() DType {
	var v T
	if _, ok := any(v).(complex128); ok {
		return C128
	}
	return F64
}

func conj[T Scalar](v T) T {
	if c, ok := any(v).(complex128); ok {
		return any(cmplx.Conj(c)).(T)
	}
	return v
}

func abs[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return math.Abs(x)
	case complex128:
		return cmplx.Abs(x)
	}
	panic("unreachable")
}

func maxAbs[T Scalar](s []T) float64 {
	var m float64
	for _, v := range s {
		m = math.Max(m, abs(v))
	}
	return m
}

// equalApprox reports whether a and b have the same length and differ
// element-wise by at most tol.
func equalApprox[T Scalar](a, b []T, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !(abs(a[i]-b[i]) <= tol) {
			return false
		}
	}
	return true
}

// isAllNaN reports whether every element of s is NaN.
func isAllNaN(s []float64) bool {
	for _, v := range s {
		if !math.IsNaN(v) {
			return false
		}
	}
	return true
}

// withWorkers runs the rest of the test with the given worker count.
func withWorkers(t *testing.T, workers int) {
	t.Helper()
	prev := CurrentConfig()
	cfg := prev
	cfg.Workers = workers
	Configure(cfg)
	t.Cleanup(func() { Configure(prev) })
}
