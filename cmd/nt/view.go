package main

import (
	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range orStdin(args) {
		n, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := emit(cfg.MainConfig, cc.Out, n.Value()); err != nil {
			return err
		}
	}
	return nil
}
