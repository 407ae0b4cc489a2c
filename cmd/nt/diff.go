package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/notatree/notation/ir"
)

var (
	delColor = color.New(color.FgRed)
	insColor = color.New(color.FgGreen)
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two documents", cli.ErrUsage)
	}
	a, err := loadNode(args[0])
	if err != nil {
		return err
	}
	b, err := loadNode(args[1])
	if err != nil {
		return err
	}
	if ir.Equal(a, b) {
		return nil
	}
	aYAML, err := ir.MarshalYAML(a)
	if err != nil {
		return err
	}
	bYAML, err := ir.MarshalYAML(b)
	if err != nil {
		return err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(aYAML), string(bYAML), true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	colored := cfg.useColor(cc.Out)
	for _, d := range diffs {
		if err := writeDiff(cc.Out, d, colored); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}

func writeDiff(w io.Writer, d diffmatchpatch.Diff, colored bool) error {
	switch d.Type {
	case diffmatchpatch.DiffDelete:
		if colored {
			_, err := delColor.Fprint(w, d.Text)
			return err
		}
		_, err := fmt.Fprintf(w, "[-%s-]", d.Text)
		return err
	case diffmatchpatch.DiffInsert:
		if colored {
			_, err := insColor.Fprint(w, d.Text)
			return err
		}
		_, err := fmt.Fprintf(w, "{+%s+}", d.Text)
		return err
	default:
		_, err := io.WriteString(w, d.Text)
		return err
	}
}
