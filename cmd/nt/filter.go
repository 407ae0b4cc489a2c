package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		cfg.Filter.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: filter requires a pattern list", cli.ErrUsage)
	}
	patterns := strings.Split(args[0], ",")
	for i := range patterns {
		patterns[i] = strings.TrimSpace(patterns[i])
	}
	for _, arg := range orStdin(args[1:]) {
		n, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		out, err := n.Filter(patterns)
		if err != nil {
			return fmt.Errorf("error filtering %s: %w", arg, err)
		}
		if err := emit(cfg.MainConfig, cc.Out, out.Value()); err != nil {
			return err
		}
	}
	return nil
}
