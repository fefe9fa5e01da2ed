// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package stream contains one-shot sequences: lazily-produced values
// that may be traversed at most once.
//
// A [Stream] is consumed by the first call to [Stream.All] or
// [Stream.Iterator]. Any further attempt to traverse it panics with
// [ErrConsumed]. Streams are not safe for concurrent traversal.
package stream

import (
	"errors"
	"iter"
	"slices"
	"sync/atomic"
)

// ErrConsumed is the panic value used when a stream is traversed more
// than once.
var ErrConsumed = errors.New("stream has already been operated upon or closed")

// A Stream is a one-shot sequence of values.
type Stream[T any] struct {
	consumed atomic.Bool
	seq      iter.Seq[T]
}

// From returns a Stream that will draw its values from the sequence.
// The sequence is not invoked until the Stream is traversed.
func From[T any](seq iter.Seq[T]) *Stream[T] {
	return &Stream[T]{seq: seq}
}

// Of returns a Stream over the given values.
func Of[T any](values ...T) *Stream[T] {
	return From(slices.Values(values))
}

// Empty returns a Stream with no values.
func Empty[T any]() *Stream[T] {
	return From(func(func(T) bool) {})
}

// Generate returns a Stream that calls next to produce each value. The
// Stream ends when next returns false.
func Generate[T any](next func() (T, bool)) *Stream[T] {
	return From(func(yield func(T) bool) {
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	})
}

// FromChannel returns a Stream that receives values from the channel
// until it is closed.
func FromChannel[T any](ch <-chan T) *Stream[T] {
	return From(func(yield func(T) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	})
}

// All consumes the Stream and returns an iterator over its values. The
// returned iterator may be ranged over only once.
//
// All panics with [ErrConsumed] if the Stream has already been
// consumed.
func (s *Stream[T]) All() iter.Seq[T] {
	claim(&s.consumed)
	var ranged atomic.Bool
	return func(yield func(T) bool) {
		claim(&ranged)
		s.seq(yield)
	}
}

// Consumed returns true once the Stream has been traversed.
func (s *Stream[T]) Consumed() bool { return s.consumed.Load() }

// Iterator consumes the Stream and returns a pull-style [Cursor] over
// its values. Callers must call [Cursor.Stop] unless the Cursor is
// drained.
//
// Iterator panics with [ErrConsumed] if the Stream has already been
// consumed.
func (s *Stream[T]) Iterator() *Cursor[T] {
	next, stop := iter.Pull(s.All())
	return &Cursor[T]{next: next, stop: stop}
}

// claim panics if the flag has already been set.
func claim(flag *atomic.Bool) {
	if flag.Swap(true) {
		panic(ErrConsumed)
	}
}
