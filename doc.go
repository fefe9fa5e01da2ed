// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package iterate makes it easier to iterate through one-shot
// sequences.
//
// A [Stream] is any value whose All method returns an iterator that
// may be obtained at most once. The [stream] sub-package provides
// ready-made implementations.
//
// # Single-use loops
//
// [Once] adapts a Stream for use in exactly one range loop. The
// returned sequence calls the Stream's All method when the loop starts,
// so it should be bound directly into the loop rather than stored for
// later use:
//
//	for foo := range iterate.Once(s) {
//	    ...
//	}
//
// Ranging over the same value twice is a misuse; the resulting panic is
// raised by the Stream, not by this package.
//
// # Propagating errors
//
// [Through] passes each element of a Stream to a callback, in order,
// and returns the first error that the callback returns. The error is
// returned as-is and no further elements are visited:
//
//	func writeAll(s iterate.Stream[Record], w *csv.Writer) error {
//	    return iterate.Through(s, func(rec Record) error {
//	        return w.Write(rec.Fields())
//	    })
//	}
//
// The callback's error type is a type parameter, so a callback that
// returns a concrete error type such as *MyError produces a result of
// that same type.
//
// [Once2] and [Through2] are pairwise versions for [iter.Seq2]
// sequences.
//
// Nothing in this package is safe for concurrent use against the same
// Stream.
package iterate
