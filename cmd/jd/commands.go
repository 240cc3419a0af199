package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "jd").
		WithSynopsis("jd [opts] command [opts]").
		WithDescription("jd is a tool for working with JSON documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jdMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			MinCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			EvalCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [files]").
		WithDescription("parse documents and render them formatted").
		WithRun(func(cc *cli.Context, args []string) error {
			return jdFmt(cfg, cc, args)
		})
}

func MinCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MinConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Min, "min").
		WithAliases("m", "minify").
		WithSynopsis("min [files]").
		WithDescription("strip whitespace and comments without parsing").
		WithRun(func(cc *cli.Context, args []string) error {
			return jdMin(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get document elements by dotted path").
		WithRun(func(cc *cli.Context, args []string) error {
			return jdGet(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff a b").
		WithDescription("diff two documents structurally").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jdDiff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch [-m] <patchfile> [files]").
		WithDescription("apply an RFC 6902 patch, or with -m an RFC 7386 merge patch").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jdPatch(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts := []*cli.Opt{
		{
			Name:        "e",
			Description: "extra expression binding",
			Type:        cli.NamedFuncOpt(envOptTypeFunc(cfg.Env), "(key=val)"),
		},
	}
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e").
		WithSynopsis("eval [-e key=val]... <expr> [files]").
		WithDescription("evaluate an expression against documents bound as 'doc'").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jdEval(cfg, cc, args)
		})
}

func envOptTypeFunc(env map[string]any) cli.FuncOpt {
	return cli.FuncOpt(func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	})
}
