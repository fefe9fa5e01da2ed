// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stream

// A Cursor yields successive values of a [Stream] on demand.
type Cursor[T any] struct {
	next func() (T, bool)
	stop func()
}

// Next returns the next value and true, or the zero value and false
// once the Stream is exhausted or the Cursor has been stopped.
func (c *Cursor[T]) Next() (T, bool) { return c.next() }

// Stop releases the Cursor. It is safe to call Stop more than once.
func (c *Cursor[T]) Stop() { c.stop() }
