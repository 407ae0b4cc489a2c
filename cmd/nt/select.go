package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/notatree/notation/ir"
)

func selectRun(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		cfg.Select.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Where == "" {
		return fmt.Errorf("%w: select requires -w <expr>", cli.ErrUsage)
	}
	prog, err := expr.Compile(cfg.Where, expr.AllowUndefinedVariables())
	if err != nil {
		return fmt.Errorf("error compiling %q: %w", cfg.Where, err)
	}
	for _, arg := range orStdin(args) {
		n, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if !n.IsArrayRoot() {
			return fmt.Errorf("select: %s is not an array document", arg)
		}
		res := ir.Array()
		for _, elem := range n.Value().Values {
			keep, err := matchElem(prog, elem)
			if err != nil {
				return fmt.Errorf("error evaluating %q on %s: %w", cfg.Where, arg, err)
			}
			if keep {
				res.SetIndex(len(res.Values), elem.Clone())
			}
		}
		if err := emit(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

func matchElem(prog *vm.Program, elem *ir.Node) (bool, error) {
	env := map[string]any{}
	for field, val := range ir.ToMap(elem) {
		env[field] = plainValue(ir.ToAny(val))
	}
	out, err := expr.Run(prog, env)
	if err != nil {
		return false, err
	}
	keep, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("expression yields %T, not bool", out)
	}
	return keep, nil
}

// plainValue rewrites yaml.MapSlice values as plain maps so expressions can
// index into them.
func plainValue(v any) any {
	switch x := v.(type) {
	case yaml.MapSlice:
		m := make(map[string]any, len(x))
		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprintf("%v", item.Key)
			}
			m[key] = plainValue(item.Value)
		}
		return m
	case []any:
		for i := range x {
			x[i] = plainValue(x[i])
		}
		return x
	default:
		return v
	}
}
