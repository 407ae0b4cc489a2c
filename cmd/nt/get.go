package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/notatree/notation/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a notation path", cli.ErrUsage)
	}
	path := args[0]
	for _, arg := range orStdin(args[1:]) {
		n, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		var def []*ir.Node
		if cfg.Default != "" {
			def = append(def, ir.FromString(cfg.Default))
		}
		v, err := n.Get(path, def...)
		if err != nil {
			return fmt.Errorf("error getting %s from %s: %w", path, arg, err)
		}
		if v.Type == ir.UndefinedType {
			continue
		}
		if err := emit(cfg.MainConfig, cc.Out, v); err != nil {
			return err
		}
	}
	return nil
}
