// Package main provides the todayiran CLI: it parses the distance and time of
// a run and prints the average velocity, optionally with projections for
// other distances and comparisons with notable performances.
package main

import (
	"fmt"
	"os"
	"todayiran/pkg/serrors"
)

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	switch serrors.KindOf(err) {
	case serrors.ErrParse, serrors.ErrInvalidUnit:
		return 2
	case serrors.ErrDivisionByZero:
		return 3
	case serrors.ErrInvalidReferenceData:
		return 4
	default:
		return 1
	}
}

func main() {
	defer func() {
		if p := recover(); p != nil {
			fmt.Fprintln(os.Stderr, "captured panic, exiting...") //nolint: forbidigo
			panic(p)
		}
	}()

	err := rootCommand().Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "Error:", err) //nolint: forbidigo
	os.Exit(exitCode(err)) //nolint: gocritic
}
