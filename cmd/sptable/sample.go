// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/sptable/samples"
)

func runSample(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	fs.SetOutput(stderr)
	name := fs.String("name", samples.NameSmall, "sample to write: small, medium or large")
	out := fs.String("out", "", "output file (default standard output)")
	list := fs.Bool("list", false, "list the bundled samples")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		for _, s := range samples.All() {
			fmt.Fprintf(stdout, "%-8s %s\n", s.Name, s.Description)
		}
		return nil
	}

	s, err := samples.ByName(*name)
	if err != nil {
		return err
	}
	if *out == "" {
		return samples.WriteCSV(stdout, s.Raw)
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := samples.WriteCSV(f, s.Raw); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
