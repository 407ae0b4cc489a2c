package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func flatten(cfg *FlattenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Flatten.Parse(cc, args)
	if err != nil {
		cfg.Flatten.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range orStdin(args) {
		n, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if cfg.Expand {
			err = n.Expand()
		} else {
			err = n.Flatten()
		}
		if err != nil {
			return fmt.Errorf("error reshaping %s: %w", arg, err)
		}
		if err := emit(cfg.MainConfig, cc.Out, n.Value()); err != nil {
			return err
		}
	}
	return nil
}
