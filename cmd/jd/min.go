package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jdom/minify"

	"github.com/scott-cotton/cli"
)

// min operates on text, not trees: comments and insignificant
// whitespace go away, everything else stays byte for byte.
func jdMin(cfg *MinConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Min.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		var r io.Reader
		if arg == "-" {
			r = os.Stdin
		} else {
			f, err := os.Open(arg)
			if err != nil {
				return fmt.Errorf("could not open %q: %w", arg, err)
			}
			defer f.Close()
			r = f
		}
		d, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		if _, err := cc.Out.Write(minify.Minify(d)); err != nil {
			return err
		}
		if _, err := cc.Out.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}
