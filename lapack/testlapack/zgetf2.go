// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testlapack

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

type Zgetf2er interface {
	Zgetf2(m, n int, a []complex128, lda int, ipiv []int) bool
}

func Zgetf2Test(t *testing.T, impl Zgetf2er) {
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, m := range []int{0, 1, 2, 3, 4, 5, 10, 20} {
		for _, n := range []int{0, 1, 2, 3, 4, 5, 10, 20} {
			for _, extra := range []int{0, 7} {
				testZgetrfResidual(t, "Zgetf2", impl.Zgetf2, m, n, extra, rnd)
			}
		}
	}
	testZgetrfSingular(t, "Zgetf2", impl.Zgetf2)
}

// zgetrfFunc is the common signature of Zgetf2 and Zgetrf.
type zgetrfFunc func(m, n int, a []complex128, lda int, ipiv []int) bool

func testZgetrfResidual(t *testing.T, name string, zgetrf zgetrfFunc, m, n, extra int, rnd *rand.Rand) {
	const tol = 1e-13

	prefix := fmt.Sprintf("%s: m=%v, n=%v, extra=%v", name, m, n, extra)

	a := randomCGeneral(m, n, n+extra, rnd)
	aCopy := cloneCGeneral(a)
	mn := min(m, n)
	ipiv := make([]int, mn)
	for i := range ipiv {
		ipiv[i] = -1
	}

	ok := zgetrf(m, n, a.Data, a.Stride, ipiv)
	if !ok {
		t.Errorf("%v: unexpected singular result for a random matrix", prefix)
	}
	if !isNaNPadding(a) {
		t.Errorf("%v: padding between rows was modified", prefix)
	}
	for i, p := range ipiv {
		if p < i || p >= m {
			t.Errorf("%v: ipiv[%d]=%d out of range [%d,%d)", prefix, i, p, i, m)
			return
		}
	}
	if mn == 0 {
		return
	}

	plu := constructCPLU(a, ipiv)
	scale := max(1, maxAbsCGeneral(aCopy)) * float64(max(m, n))
	if !equalApproxCGeneral(plu, aCopy, tol*scale) {
		t.Errorf("%v: P*L*U != A", prefix)
	}
}

func testZgetrfSingular(t *testing.T, name string, zgetrf zgetrfFunc) {
	for _, n := range []int{1, 2, 3, 5, 10} {
		for zero := 0; zero < n; zero++ {
			prefix := fmt.Sprintf("%s: n=%v, zero row=%v", name, n, zero)

			rnd := rand.New(rand.NewPCG(uint64(n), uint64(zero)))
			a := randomCGeneral(n, n, n, rnd)
			for j := 0; j < n; j++ {
				a.Data[zero*a.Stride+j] = 0
			}
			ipiv := make([]int, n)
			if zgetrf(n, n, a.Data, a.Stride, ipiv) {
				t.Errorf("%v: singular matrix not detected", prefix)
			}
			// A zero row is never combined with another row, so it is
			// pivoted to the bottom and leaves an exact zero on the
			// diagonal of U.
			if u := a.Data[(n-1)*a.Stride+n-1]; u != 0 {
				t.Errorf("%v: U[n-1,n-1]=%v, want 0", prefix, u)
			}
		}
	}
}
