// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package customcall

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// forEachChunk splits the batch [0, n) into contiguous chunks and calls fn
// once per chunk with the chunk number and its bounds. With a single worker
// fn is called once on the calling goroutine with chunk 0 covering the whole
// batch. Otherwise up to Config.Workers chunks run concurrently and a panic
// in any of them is re-raised on the caller after all chunks finished.
func forEachChunk(n int, fn func(chunk, start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(CurrentConfig().Workers, n)
	if workers <= 1 {
		fn(0, 0, n)
		return
	}

	size := (n + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for c := 0; c*size < n; c++ {
		start := c * size
		end := min(start+size, n)
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &chunkPanic{chunk: c, value: r}
				}
			}()
			fn(c, start, end)
			return nil
		})
	}

	var p *chunkPanic
	if err := g.Wait(); errors.As(err, &p) {
		panic(p.value)
	}
}

// chunkPanic carries a panic out of a chunk goroutine.
type chunkPanic struct {
	chunk int
	value any
}

func (p *chunkPanic) Error() string {
	return fmt.Sprintf("customcall: panic in batch chunk %d: %v", p.chunk, p.value)
}
