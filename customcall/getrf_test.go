// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package customcall

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

type getrfResult[T Scalar] struct {
	a    []T
	ipiv []int32
	info []int32
}

func getrfCall[T Scalar](batch, m, n int, a []T, inPlace bool) getrfResult[T] {
	dt := dtypeOf[T]()
	r := getrfResult[T]{
		a:    make([]T, batch*m*n),
		ipiv: make([]int32, batch*min(m, n)),
		info: make([]int32, batch),
	}
	if inPlace {
		r.a = a
	}
	in := []unsafe.Pointer{i32(batch), i32(m), i32(n), arrayArg(a, dt)}
	out := []unsafe.Pointer{arrayArg(r.a, dt), arrayArg(r.ipiv, I32), arrayArg(r.info, I32)}
	if dt == C128 {
		Zgetrf(in, out)
	} else {
		Dgetrf(in, out)
	}
	return r
}

// reconstructPLU returns P*L*U for the row-major m×n factors in lu and the
// one-based pivots in ipiv.
func reconstructPLU[T Scalar](lu []T, ipiv []int32, m, n int) []T {
	k := min(m, n)
	l := make([]T, m*k)
	u := make([]T, k*n)
	for i := 0; i < m; i++ {
		for j := 0; j < k; j++ {
			switch {
			case i == j:
				l[i*k+j] = 1
			case i > j:
				l[i*k+j] = lu[i*n+j]
			}
		}
	}
	for i := 0; i < k; i++ {
		for j := i; j < n; j++ {
			u[i*n+j] = lu[i*n+j]
		}
	}
	a := matMul(l, u, m, k, n)
	for i := k - 1; i >= 0; i-- {
		p := int(ipiv[i]) - 1
		for j := 0; j < n; j++ {
			a[i*n+j], a[p*n+j] = a[p*n+j], a[i*n+j]
		}
	}
	return a
}

func testGetrf[T Scalar](t *testing.T) {
	const tol = 1e-12

	rnd := rand.New(rand.NewPCG(1, 1))
	for _, dims := range [][2]int{{1, 1}, {2, 2}, {3, 5}, {5, 3}, {8, 8}, {70, 70}, {66, 80}} {
		m, n := dims[0], dims[1]
		const batch = 3
		prefix := fmt.Sprintf("m=%v, n=%v", m, n)

		a := randomScalars[T](batch*m*n, rnd)
		r := getrfCall(batch, m, n, a, false)

		k := min(m, n)
		for i := 0; i < batch; i++ {
			require.Equal(t, StatusOK, r.info[i], "%v: element %d", prefix, i)
			piv := r.ipiv[i*k : (i+1)*k]
			for j, p := range piv {
				require.True(t, int(p) >= j+1 && int(p) <= m, "%v: element %d: pivot %d = %d out of range", prefix, i, j, p)
			}
			want := a[i*m*n : (i+1)*m*n]
			got := reconstructPLU(r.a[i*m*n:(i+1)*m*n], piv, m, n)
			if !equalApprox(got, want, tol*float64(max(m, n))*maxAbs(want)) {
				t.Errorf("%v: element %d: P*L*U != A", prefix, i)
			}
		}
	}
}

func TestDgetrf(t *testing.T) { testGetrf[float64](t) }
func TestZgetrf(t *testing.T) { testGetrf[complex128](t) }

func testGetrfSingular[T Scalar](t *testing.T) {
	const (
		n     = 4
		batch = 3
	)
	rnd := rand.New(rand.NewPCG(2, 2))
	a := randomScalars[T](batch*n*n, rnd)
	// Zero row 2 of the middle element.
	for j := 0; j < n; j++ {
		a[n*n+2*n+j] = 0
	}
	r := getrfCall(batch, n, n, a, false)
	require.Equal(t, []int32{StatusOK, n, StatusOK}, r.info)
}

func TestDgetrfSingular(t *testing.T) { testGetrfSingular[float64](t) }
func TestZgetrfSingular(t *testing.T) { testGetrfSingular[complex128](t) }

func TestDgetrfKnown(t *testing.T) {
	// Partial pivoting picks the 4 in the first column and leaves a zero on
	// the diagonal of U in the second.
	a := []float64{
		1, 2,
		4, 8,
	}
	r := getrfCall(1, 2, 2, a, false)
	require.Equal(t, []int32{2, 2}, r.ipiv)
	require.Equal(t, []int32{2}, r.info)
	require.Equal(t, []float64{4, 8, 0.25, 0}, r.a)
}

func TestGetrfInPlace(t *testing.T) {
	const (
		m, n  = 6, 4
		batch = 2
	)
	rnd := rand.New(rand.NewPCG(3, 3))
	a := randomCSlice(batch*m*n, rnd)
	want := getrfCall(batch, m, n, a, false)

	got := getrfCall(batch, m, n, a, true)
	require.Equal(t, want.a, a)
	require.Equal(t, want.ipiv, got.ipiv)
	require.Equal(t, want.info, got.info)
}

func TestGetrfParallel(t *testing.T) {
	const (
		n     = 9
		batch = 11
	)
	rnd := rand.New(rand.NewPCG(4, 4))
	a := randomSlice(batch*n*n, rnd)
	for j := 0; j < n; j++ {
		a[5*n*n+j] = 0
	}
	want := getrfCall(batch, n, n, a, false)

	for _, workers := range []int{2, 3, 16} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			withWorkers(t, workers)
			got := getrfCall(batch, n, n, a, false)
			require.Equal(t, want, got)
		})
	}
}

func TestGetrfEmpty(t *testing.T) {
	r := getrfCall[float64](2, 0, 3, nil, false)
	require.Equal(t, []int32{StatusOK, StatusOK}, r.info)
	require.Empty(t, r.ipiv)

	require.NotPanics(t, func() { getrfCall[complex128](0, 3, 3, nil, false) })
}

