// Command dequectl replays scripts of operations against a fixed-capacity
// deque of ints and prints what each operation observed.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
