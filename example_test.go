// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package iterate_test

import (
	"errors"
	"fmt"
	"strings"

	"vawter.tech/iterate"
	"vawter.tech/iterate/stream"
)

func ExampleOnce() {
	// Bind the view directly into the loop.
	s := stream.Of("alpha", "bravo", "charlie")
	for v := range iterate.Once(s) {
		fmt.Println(strings.ToUpper(v))
	}

	// Output:
	// ALPHA
	// BRAVO
	// CHARLIE
}

func ExampleThrough() {
	var sb strings.Builder
	err := iterate.Through(stream.Of("a", "b", "c"), func(s string) error {
		_, err := sb.WriteString(s)
		return err
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(sb.String())

	// Output:
	// abc
}

func ExampleThrough_error() {
	errTooBig := errors.New("too big")

	err := iterate.Through(stream.Of(1, 2, 3, 4), func(v int) error {
		if v > 2 {
			return fmt.Errorf("%d: %w", v, errTooBig)
		}
		fmt.Println(v)
		return nil
	})
	fmt.Println(err, errors.Is(err, errTooBig))

	// Output:
	// 1
	// 2
	// 3: too big true
}

func ExampleThrough2() {
	err := iterate.Through2(stream.Indexed("x", "y"), func(idx int, v string) error {
		fmt.Printf("%d=%s\n", idx, v)
		return nil
	})
	if err != nil {
		panic(err)
	}

	// Output:
	// 0=x
	// 1=y
}
