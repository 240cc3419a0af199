package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func jdFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		node, err := cfg.readDoc(arg)
		if err != nil {
			return err
		}
		if err := cfg.encodeOut(cc.Out, node); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
