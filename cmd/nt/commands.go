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
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "nt").
		WithSynopsis("nt [opts] command [opts]").
		WithDescription("nt reads, writes and reshapes nested data through notation paths.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ntMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			DelCommand(cfg),
			FilterCommand(cfg),
			SelectCommand(cfg),
			FlattenCommand(cfg),
			ExpandCommand(cfg),
			PatchCommand(cfg),
			DiffCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("parse documents and render them").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get the value at a notation path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("set").
		WithAliases("s").
		WithSynopsis("set [-i|-n] <path> <value> [files]").
		WithDescription("set a value at a notation path and render the document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func DelCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DelConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("del").
		WithAliases("rm", "remove").
		WithSynopsis("del <path> [files]").
		WithDescription("remove the value at a notation path and render the document").
		WithRun(func(cc *cli.Context, args []string) error {
			return del(cfg, cc, args)
		})
	cfg.Del = cmd
	return cmd
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("filter").
		WithAliases("f").
		WithSynopsis("filter <pattern[,pattern...]> [files]").
		WithDescription("project documents through glob patterns ('car.*', '!id')").
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
	cfg.Filter = cmd
	return cmd
}

func SelectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SelectConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("select").
		WithAliases("sel").
		WithSynopsis("select -w <expr> [files]").
		WithDescription("keep array elements satisfying an expression over their fields").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return selectRun(cfg, cc, args)
		})
	cfg.Select = cmd
	return cmd
}

func FlattenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FlattenConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("flatten").
		WithAliases("fl").
		WithSynopsis("flatten [files]").
		WithDescription("render documents as a flat notation-to-value map").
		WithRun(func(cc *cli.Context, args []string) error {
			return flatten(cfg, cc, args)
		})
	cfg.Flatten = cmd
	return cmd
}

func ExpandCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FlattenConfig{MainConfig: mainCfg, Expand: true}
	cmd := cli.NewCommand("expand").
		WithAliases("ex").
		WithSynopsis("expand [files]").
		WithDescription("rebuild nesting from a flat notation-to-value map").
		WithRun(func(cc *cli.Context, args []string) error {
			return flatten(cfg, cc, args)
		})
	cfg.Flatten = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch <patchfile> [files]").
		WithDescription("apply a JSON patch (RFC 6902 array) or merge patch (object)").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <a> <b>").
		WithDescription("diff two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
