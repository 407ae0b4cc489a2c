package main

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/notatree/notation/ir"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	pNode, err := loadNode(args[0])
	if err != nil {
		return err
	}
	pJSON, err := ir.MarshalJSON(pNode)
	if err != nil {
		return fmt.Errorf("error encoding patch: %w", err)
	}
	for _, arg := range orStdin(args[1:]) {
		n, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		docJSON, err := ir.MarshalJSON(n.Value())
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		var patched []byte
		if pNode.Type == ir.ArrayType {
			p, err := jsonpatch.DecodePatch(pJSON)
			if err != nil {
				return fmt.Errorf("error decoding patch %s: %w", args[0], err)
			}
			patched, err = p.Apply(docJSON)
			if err != nil {
				return fmt.Errorf("error patching %s: %w", arg, err)
			}
		} else {
			patched, err = jsonpatch.MergePatch(docJSON, pJSON)
			if err != nil {
				return fmt.Errorf("error merge-patching %s: %w", arg, err)
			}
		}
		out, err := ir.UnmarshalYAML(patched)
		if err != nil {
			return fmt.Errorf("error decoding patched %s: %w", arg, err)
		}
		if err := emit(cfg.MainConfig, cc.Out, out); err != nil {
			return err
		}
	}
	return nil
}
