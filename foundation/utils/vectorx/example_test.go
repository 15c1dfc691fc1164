// File: example_test.go
// Title: Example Tests for vectorx
// Description: Executable examples for the package documentation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package vectorx_test

import (
	"fmt"

	"github.com/msto63/textkit/foundation/utils/vectorx"
)

func ExampleVector_Dup() {
	var absent *vectorx.Vector
	fmt.Println(absent.Dup() == nil)

	empty := vectorx.New()
	d := empty.Dup()
	fmt.Println(d != nil, d.Len())
	// Output:
	// true
	// true 0
}

func ExampleVector_Terminated() {
	raw := vectorx.New("ls", "-l").Terminated()
	for i := 0; raw[i] != nil; i++ {
		fmt.Println(*raw[i])
	}
	// Output:
	// ls
	// -l
}
