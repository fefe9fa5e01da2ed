// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package iterate

import "iter"

// A Stream is a sequence whose iterator may be obtained at most once.
// Implementations should panic if All is called a second time.
type Stream[T any] interface {
	All() iter.Seq[T]
}

// Stream2 is a pairwise version of [Stream].
type Stream2[K, V any] interface {
	All() iter.Seq2[K, V]
}

// Once returns a sequence that may be ranged over only once. It's
// strongly recommended to keep it restricted to the scope of a single
// for loop, since each range calls [Stream.All].
//
// The Stream is not examined until the loop begins.
func Once[T any](s Stream[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		s.All()(yield)
	}
}

// Once2 is a pairwise version of [Once].
func Once2[K, V any](s Stream2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		s.All()(yield)
	}
}
