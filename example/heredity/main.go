// Command heredity runs exact inference over a pedigree and prints every
// person's posterior gene and trait distributions.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/carbocation/heredity"
)

const usage = "Usage: heredity data.csv"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) != 1 {
		return errors.New(usage)
	}

	pedigree, err := heredity.Open(args[0])
	if err != nil {
		return err
	}

	results, err := heredity.Infer(pedigree, heredity.DefaultProbs())
	if err != nil {
		return err
	}

	return heredity.WriteReport(out, pedigree, results)
}
