package main

import (
	"fmt"
	"strings"

	"github.com/signadot/jdom/ir"

	"github.com/scott-cotton/cli"
)

func jdGet(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	var steps []string
	if path != "" && path != "." {
		steps = strings.Split(strings.TrimPrefix(path, "."), ".")
	}
	for _, arg := range args {
		node, err := cfg.readDoc(arg)
		if err != nil {
			return err
		}
		res := ir.GetPath(node, steps...)
		if res == nil {
			// absent elements encode nothing, like an empty query result
			continue
		}
		if err := cfg.encodeOut(cc.Out, res); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
