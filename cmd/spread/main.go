// Command spread samples, scores and renders the spread sequence.
//
//	spread sample --count 16
//	spread score 0 0.5 0.25
//	spread render --steps 64 --out ring.svg
//	spread run --frames 120
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
