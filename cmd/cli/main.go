// Package main is the entry point for the sliceql CLI binary.
package main

import (
	"os"

	cli "sliceql/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
