package main

import (
	"fmt"

	"github.com/signadot/jdom/patch"

	"github.com/scott-cotton/cli"
)

func jdPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	patchDoc, err := cfg.readDoc(args[0])
	if err != nil {
		return err
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := cfg.readDoc(arg)
		if err != nil {
			return err
		}
		apply := patch.Apply
		if cfg.Merge {
			apply = patch.Merge
		}
		res, err := apply(doc, patchDoc)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := cfg.encodeOut(cc.Out, res); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
