// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import "golang.org/x/sync/errgroup"

// Concurrently evaluates every fn in its own goroutine, at most limit at
// a time (no limit if limit <= 0), and combines the results as Sequence
// does. Values and failures are always reported in argument order,
// regardless of completion order.
func Concurrently[T any](limit int, fns ...func() Validated[T]) Validated[[]T] {
	results := make([]Validated[T], len(fns))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, fn := range fns {
		g.Go(func() error {
			results[i] = fn()
			return nil
		})
	}

	// every goroutine returns nil
	_ = g.Wait()

	return Sequence(results)
}
