// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package customcall

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type gesddResult struct {
	a, s, vt, u []float64
	info        []int32
}

// gesdd runs Dgesdd on a batch. When inPlace is set the a_out descriptor
// refers to the buffer of a.
func gesdd(full, computeUV bool, batch, m, n, lwork int, a []float64, inPlace bool) gesddResult {
	mn := min(m, n)
	uCols, vtRows := mn, mn
	if full {
		uCols, vtRows = m, n
	}
	r := gesddResult{
		a:    make([]float64, batch*m*n),
		s:    nanSlice(batch * mn),
		vt:   nanSlice(batch * vtRows * n),
		u:    nanSlice(batch * m * uCols),
		info: make([]int32, batch),
	}
	if inPlace {
		r.a = a
	}
	iwork := make([]int32, GesddIworkSize(m, n))
	work := make([]float64, max(1, lwork))
	in := []unsafe.Pointer{flag(full), flag(computeUV), i32(batch), i32(m), i32(n), i32(lwork), arrayArg(a, F64)}
	out := []unsafe.Pointer{
		arrayArg(r.a, F64), arrayArg(r.s, F64), arrayArg(r.vt, F64), arrayArg(r.u, F64),
		arrayArg(r.info, I32), arrayArg(iwork, I32), arrayArg(work, F64),
	}
	Dgesdd(in, out)
	return r
}

func TestDgesdd(t *testing.T) {
	const tol = 1e-12

	rnd := rand.New(rand.NewPCG(1, 1))
	for _, full := range []bool{false, true} {
		for _, dims := range [][2]int{{1, 1}, {3, 3}, {5, 2}, {2, 5}, {7, 4}, {4, 7}, {10, 10}} {
			m, n := dims[0], dims[1]
			const batch = 3
			prefix := fmt.Sprintf("full=%v, m=%v, n=%v", full, m, n)

			a := randomSlice(batch*m*n, rnd)
			aCopy := append([]float64(nil), a...)
			lwork := GesddWorkSize(m, n, SVDJob(true, full))
			r := gesdd(full, true, batch, m, n, lwork, a, false)

			require.Equal(t, aCopy, a, "%v: input modified", prefix)
			mn := min(m, n)
			uCols, vtRows := mn, mn
			if full {
				uCols, vtRows = m, n
			}
			for i := 0; i < batch; i++ {
				require.Equal(t, StatusOK, r.info[i], "%v: element %d", prefix, i)

				s := r.s[i*mn : (i+1)*mn]
				require.True(t, sort.IsSorted(sort.Reverse(sort.Float64Slice(s))), "%v: singular values not descending: %v", prefix, s)
				require.GreaterOrEqual(t, floats.Min(s), 0.0, "%v: negative singular value", prefix)

				u := mat.NewDense(m, uCols, r.u[i*m*uCols:(i+1)*m*uCols])
				vt := mat.NewDense(vtRows, n, r.vt[i*vtRows*n:(i+1)*vtRows*n])
				checkOrthonormalColumns(t, prefix+": U", u, tol)
				checkOrthonormalColumns(t, prefix+": V", vt.T(), tol)

				// A = U[:, :mn] * Σ * Vᵀ[:mn, :].
				var us, usvt mat.Dense
				us.Mul(u.Slice(0, m, 0, mn), mat.NewDiagDense(mn, s))
				usvt.Mul(&us, vt.Slice(0, mn, 0, n))
				want := mat.NewDense(m, n, aCopy[i*m*n:(i+1)*m*n])
				if !mat.EqualApprox(&usvt, want, tol*float64(max(m, n))) {
					t.Errorf("%v: element %d: U*Σ*Vᵀ != A", prefix, i)
				}
			}
		}
	}
}

func checkOrthonormalColumns(t *testing.T, name string, q mat.Matrix, tol float64) {
	t.Helper()
	_, c := q.Dims()
	var qtq mat.Dense
	qtq.Mul(q.T(), q)
	if !mat.EqualApprox(&qtq, eye(c), tol*float64(c)) {
		t.Errorf("%s: columns not orthonormal", name)
	}
}

func eye(n int) *mat.Dense {
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.Set(i, i, 1)
	}
	return d
}

// The singular vector outputs are swapped with respect to their names in the
// compiler's result list: output 2 holds Vᵀ and output 3 holds U. For a
// non-square matrix the shapes tell them apart.
func TestDgesddVectorSlots(t *testing.T) {
	const (
		m, n = 3, 5
		tol  = 1e-12
	)
	rnd := rand.New(rand.NewPCG(2, 2))
	a := randomSlice(m*n, rnd)
	r := gesdd(true, true, 1, m, n, GesddWorkSize(m, n, SVDJob(true, true)), a, false)
	require.Equal(t, StatusOK, r.info[0])
	require.Len(t, r.vt, n*n)
	require.Len(t, r.u, m*m)

	// A * v_j = s_j * u_j where v_j is row j of output 2 and u_j is column
	// j of output 3.
	am := mat.NewDense(m, n, a)
	vt := mat.NewDense(n, n, r.vt)
	u := mat.NewDense(m, m, r.u)
	for j := 0; j < m; j++ {
		var av mat.VecDense
		av.MulVec(am, vt.RowView(j))
		var su mat.VecDense
		su.ScaleVec(r.s[j], u.ColView(j))
		if !mat.EqualApprox(&av, &su, tol) {
			t.Errorf("A*v_%d != s_%d*u_%d", j, j, j)
		}
	}
}

func TestDgesddNoVectors(t *testing.T) {
	const (
		m, n  = 6, 4
		batch = 2
	)
	rnd := rand.New(rand.NewPCG(3, 3))
	a := randomSlice(batch*m*n, rnd)

	with := gesdd(true, true, batch, m, n, GesddWorkSize(m, n, SVDJob(true, true)), a, false)
	// compute_uv takes precedence over full_matrices.
	without := gesdd(true, false, batch, m, n, GesddWorkSize(m, n, SVDJob(false, true)), a, false)

	require.Equal(t, []int32{StatusOK, StatusOK}, without.info)
	require.True(t, floats.EqualApprox(with.s, without.s, 1e-12), "singular values differ: %v vs %v", with.s, without.s)
	require.True(t, isAllNaN(without.u), "U written without compute_uv")
	require.True(t, isAllNaN(without.vt), "Vᵀ written without compute_uv")
}

func TestDgesddBatchMatchesSingle(t *testing.T) {
	const (
		m, n  = 5, 3
		batch = 4
	)
	rnd := rand.New(rand.NewPCG(4, 4))
	a := randomSlice(batch*m*n, rnd)
	lwork := GesddWorkSize(m, n, SVDJob(true, false))
	all := gesdd(false, true, batch, m, n, lwork, a, false)

	mn := min(m, n)
	for i := 0; i < batch; i++ {
		one := gesdd(false, true, 1, m, n, lwork, a[i*m*n:(i+1)*m*n], false)
		require.Equal(t, all.info[i], one.info[0])
		require.Equal(t, all.s[i*mn:(i+1)*mn], one.s, "element %d", i)
		require.Equal(t, all.u[i*m*mn:(i+1)*m*mn], one.u, "element %d", i)
		require.Equal(t, all.vt[i*mn*n:(i+1)*mn*n], one.vt, "element %d", i)
	}
}

func TestDgesddInPlace(t *testing.T) {
	const (
		m, n  = 4, 4
		batch = 2
	)
	rnd := rand.New(rand.NewPCG(5, 5))
	a := randomSlice(batch*m*n, rnd)
	lwork := GesddWorkSize(m, n, SVDJob(true, true))
	want := gesdd(true, true, batch, m, n, lwork, a, false)

	b := append([]float64(nil), a...)
	got := gesdd(true, true, batch, m, n, lwork, b, true)
	require.Equal(t, want.info, got.info)
	require.Equal(t, want.s, got.s)
	require.Equal(t, want.u, got.u)
	require.Equal(t, want.vt, got.vt)
}

func TestDgesddShortWork(t *testing.T) {
	const m, n = 4, 3
	rnd := rand.New(rand.NewPCG(6, 6))
	a := randomSlice(2*m*n, rnd)
	r := gesdd(true, true, 2, m, n, 1, a, false)
	require.Equal(t, []int32{StatusIllegalArgument, StatusIllegalArgument}, r.info)
}

func TestDgesddParallel(t *testing.T) {
	const (
		m, n  = 6, 5
		batch = 7
	)
	rnd := rand.New(rand.NewPCG(7, 7))
	a := randomSlice(batch*m*n, rnd)
	lwork := GesddWorkSize(m, n, SVDJob(true, true))
	want := gesdd(true, true, batch, m, n, lwork, a, false)

	withWorkers(t, 3)
	got := gesdd(true, true, batch, m, n, lwork, a, false)
	require.Equal(t, want.info, got.info)
	require.Equal(t, want.s, got.s)
	require.Equal(t, want.u, got.u)
	require.Equal(t, want.vt, got.vt)
}
