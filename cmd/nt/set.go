package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/notatree/notation"
	"github.com/notatree/notation/ir"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a notation path and a value", cli.ErrUsage)
	}
	if cfg.Insert && cfg.NoOverwrite {
		return fmt.Errorf("%w: -i and -n are mutually exclusive", cli.ErrUsage)
	}
	path := args[0]
	value, err := ir.UnmarshalYAML([]byte(args[1]))
	if err != nil {
		return fmt.Errorf("error decoding value %q: %w", args[1], err)
	}
	mode := notation.Overwrite
	switch {
	case cfg.Insert:
		mode = notation.Insert
	case cfg.NoOverwrite:
		mode = notation.NoOverwrite
	}
	for _, arg := range orStdin(args[2:]) {
		n, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := n.Set(path, value.Clone(), mode); err != nil {
			return fmt.Errorf("error setting %s in %s: %w", path, arg, err)
		}
		if err := emit(cfg.MainConfig, cc.Out, n.Value()); err != nil {
			return err
		}
	}
	return nil
}
