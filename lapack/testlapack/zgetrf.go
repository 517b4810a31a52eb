// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testlapack

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
)

type Zgetrfer interface {
	Zgetrf(m, n int, a []complex128, lda int, ipiv []int) bool
}

func ZgetrfTest(t *testing.T, impl Zgetrfer) {
	rnd := rand.New(rand.NewPCG(1, 1))
	// Sizes around 64 exercise the boundary between the unblocked and the
	// blocked code paths.
	for _, m := range []int{0, 1, 2, 3, 5, 10, 63, 64, 65, 130} {
		for _, n := range []int{0, 1, 2, 3, 5, 10, 63, 64, 65, 130} {
			for _, extra := range []int{0, 11} {
				testZgetrfResidual(t, "Zgetrf", impl.Zgetrf, m, n, extra, rnd)
			}
		}
	}
	testZgetrfSingular(t, "Zgetrf", impl.Zgetrf)
	testZgetrfReal(t, impl, rnd)
}

// testZgetrfReal checks that factorizing a matrix with zero imaginary part
// selects the same pivots and produces the same factors as the real Getrf.
func testZgetrfReal(t *testing.T, impl Zgetrfer, rnd *rand.Rand) {
	const tol = 1e-12

	for _, m := range []int{1, 2, 3, 4, 7, 12} {
		for _, n := range []int{1, 2, 3, 4, 7, 12} {
			prefix := fmt.Sprintf("m=%v, n=%v", m, n)

			ra := blas64.General{Rows: m, Cols: n, Stride: n, Data: make([]float64, m*n)}
			ca := make([]complex128, m*n)
			for i := range ra.Data {
				v := rnd.NormFloat64()
				ra.Data[i] = v
				ca[i] = complex(v, 0)
			}
			mn := min(m, n)
			rpiv := make([]int, mn)
			cpiv := make([]int, mn)

			rok := lapack64.Getrf(ra, rpiv)
			cok := impl.Zgetrf(m, n, ca, n, cpiv)
			if rok != cok {
				t.Errorf("%v: mismatched singularity: real=%v, complex=%v", prefix, rok, cok)
			}
			for i := range rpiv {
				if rpiv[i] != cpiv[i] {
					t.Errorf("%v: pivot %d mismatch: real=%d, complex=%d", prefix, i, rpiv[i], cpiv[i])
				}
			}
			for i, v := range ca {
				if imag(v) != 0 {
					t.Errorf("%v: element %d gained an imaginary part %v", prefix, i, imag(v))
					break
				}
				if d := real(v) - ra.Data[i]; d > tol || d < -tol {
					t.Errorf("%v: element %d mismatch: real=%v, complex=%v", prefix, i, ra.Data[i], real(v))
					break
				}
			}
		}
	}
}
