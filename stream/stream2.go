// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stream

import (
	"iter"
	"slices"
	"sync/atomic"
)

// Stream2 is a pairwise version of [Stream].
type Stream2[K, V any] struct {
	consumed atomic.Bool
	seq      iter.Seq2[K, V]
}

// From2 is a pairwise version of [From].
func From2[K, V any](seq iter.Seq2[K, V]) *Stream2[K, V] {
	return &Stream2[K, V]{seq: seq}
}

// Indexed returns a Stream2 over the given values, paired with their
// indexes.
func Indexed[T any](values ...T) *Stream2[int, T] {
	return From2(slices.All(values))
}

// All is a pairwise version of [Stream.All].
func (s *Stream2[K, V]) All() iter.Seq2[K, V] {
	claim(&s.consumed)
	var ranged atomic.Bool
	return func(yield func(K, V) bool) {
		claim(&ranged)
		s.seq(yield)
	}
}

// Consumed returns true once the Stream2 has been traversed.
func (s *Stream2[K, V]) Consumed() bool { return s.consumed.Load() }
