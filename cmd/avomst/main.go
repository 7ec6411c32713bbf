// SPDX-License-Identifier: MIT

// Command avomst builds the minimum spanning tree of regional avocado price
// correlations and writes it to a text file.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
