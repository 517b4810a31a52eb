// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testlapack

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

type Zlaswper interface {
	Zlaswp(n int, a []complex128, lda int, k1, k2 int, ipiv []int, incX int)
}

func ZlaswpTest(t *testing.T, impl Zlaswper) {
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, m := range []int{1, 2, 3, 4, 10} {
		for _, n := range []int{0, 1, 2, 5} {
			for _, extra := range []int{0, 3} {
				for _, incX := range []int{1, -1} {
					for k1 := 0; k1 < m; k1++ {
						for k2 := k1; k2 < m; k2++ {
							testZlaswp(t, impl, m, n, extra, k1, k2, incX, rnd)
						}
					}
				}
			}
		}
	}
}

func testZlaswp(t *testing.T, impl Zlaswper, m, n, extra, k1, k2, incX int, rnd *rand.Rand) {
	prefix := fmt.Sprintf("m=%v, n=%v, extra=%v, k1=%v, k2=%v, incX=%v", m, n, extra, k1, k2, incX)

	a := randomCGeneral(m, n, n+extra, rnd)
	ipiv := make([]int, k2+1)
	for i := range ipiv {
		ipiv[i] = i + rnd.IntN(m-i)
	}

	// Apply the interchanges to a copy one row at a time.
	want := cloneCGeneral(a)
	swap := func(k int) {
		p := ipiv[k]
		for j := 0; j < n; j++ {
			want.Data[k*want.Stride+j], want.Data[p*want.Stride+j] = want.Data[p*want.Stride+j], want.Data[k*want.Stride+j]
		}
	}
	if incX == 1 {
		for k := k1; k <= k2; k++ {
			swap(k)
		}
	} else {
		for k := k2; k >= k1; k-- {
			swap(k)
		}
	}

	impl.Zlaswp(n, a.Data, a.Stride, k1, k2, ipiv, incX)
	if !equalApproxCGeneral(a, want, 0) {
		t.Errorf("%v: unexpected result", prefix)
	}
	if !isNaNPadding(a) {
		t.Errorf("%v: padding between rows was modified", prefix)
	}
}

