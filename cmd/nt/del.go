package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		cfg.Del.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: del requires a notation path", cli.ErrUsage)
	}
	path := args[0]
	for _, arg := range orStdin(args[1:]) {
		n, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := n.Remove(path); err != nil {
			return fmt.Errorf("error removing %s from %s: %w", path, arg, err)
		}
		if err := emit(cfg.MainConfig, cc.Out, n.Value()); err != nil {
			return err
		}
	}
	return nil
}
