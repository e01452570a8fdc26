// Command homkit decides graph homomorphism existence, core-ness, and
// polymorphism satisfaction for finite directed graphs, and generates
// oriented trees and triads.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
