package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/notatree/notation"
)

type MainConfig struct {
	J     bool `cli:"name=j aliases=json desc='output in json'"`
	Color bool `cli:"name=color desc='output with color'"`

	Strict bool `cli:"name=strict desc='fail on absent paths'"`
	Holes  bool `cli:"name=holes aliases=preserveIndices desc='array removal leaves holes instead of splicing'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) notationOpts() []notation.Option {
	return []notation.Option{
		notation.Strict(cfg.Strict),
		notation.PreserveIndices(cfg.Holes),
	}
}

// useColor follows the -color flag when given, and otherwise colors only
// terminal output.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.J {
		return false
	}
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false // explicitly disabled
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Default string `cli:"name=d aliases=default desc='value to print when the path is absent'"`

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	Insert      bool `cli:"name=i aliases=insert desc='splice into an array instead of overwriting'"`
	NoOverwrite bool `cli:"name=n aliases=noOverwrite desc='keep an existing value'"`

	Set *cli.Command
}

type DelConfig struct {
	*MainConfig

	Del *cli.Command
}

type FilterConfig struct {
	*MainConfig

	Filter *cli.Command
}

type SelectConfig struct {
	*MainConfig
	Where string `cli:"name=w aliases=where desc='expression each element must satisfy'"`

	Select *cli.Command
}

type FlattenConfig struct {
	*MainConfig
	Expand bool

	Flatten *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
