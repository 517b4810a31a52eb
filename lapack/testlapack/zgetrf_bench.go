// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testlapack

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func ZgetrfBenchmark(b *testing.B, impl Zgetrfer) {
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, n := range []int{10, 50, 100, 200} {
		a := randomCGeneral(n, n, n, rnd)
		work := make([]complex128, len(a.Data))
		ipiv := make([]int, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				copy(work, a.Data)
				impl.Zgetrf(n, n, work, n, ipiv)
			}
		})
	}
}
