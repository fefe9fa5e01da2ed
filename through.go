// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package iterate

import (
	"errors"
	"fmt"
)

// ErrMissingHandler is wrapped by the panic value used when a nil
// callback is passed to [Through] or [Through2].
var ErrMissingHandler = errors.New("required value missing")

// Failure is the set of error types that a callback may return. The
// zero value of the type means success.
type Failure interface {
	comparable
	error
}

// Through iterates through the Stream sequentially and passes each
// element to the callback. The first non-nil error returned by the
// callback stops the iteration and is returned unchanged. Elements that
// were handled before the error are not revisited.
//
// Through panics if fn is nil. The Stream is not traversed in that
// case.
func Through[T any, E Failure](s Stream[T], fn func(T) E) E {
	if fn == nil {
		panic(fmt.Errorf("iterate.Through: callback: %w", ErrMissingHandler))
	}
	var zero E
	for item := range Once(s) {
		if err := fn(item); err != zero {
			return err
		}
	}
	return zero
}

// Through2 is a pairwise version of [Through].
func Through2[K, V any, E Failure](s Stream2[K, V], fn func(K, V) E) E {
	if fn == nil {
		panic(fmt.Errorf("iterate.Through2: callback: %w", ErrMissingHandler))
	}
	var zero E
	for k, v := range Once2(s) {
		if err := fn(k, v); err != zero {
			return err
		}
	}
	return zero
}
