package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/notatree/notation"
	"github.com/notatree/notation/ir"
)

// loadArg reads one document argument; "-" reads stdin. Input is YAML or
// JSON.
func loadArg(cfg *MainConfig, arg string) (*notation.Notation, error) {
	var (
		data []byte
		err  error
	)
	if arg == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(arg)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	node, err := ir.UnmarshalYAML(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	n, err := notation.New(node, cfg.notationOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", arg, err)
	}
	return n, nil
}

// loadNode is loadArg without the container requirement, for documents that
// may be scalar (patch values, diff operands).
func loadNode(arg string) (*ir.Node, error) {
	var (
		data []byte
		err  error
	)
	if arg == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(arg)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	node, err := ir.UnmarshalYAML(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return node, nil
}

// orStdin defaults an empty file list to stdin.
func orStdin(files []string) []string {
	if len(files) == 0 {
		return []string{"-"}
	}
	return files
}

func emit(cfg *MainConfig, w io.Writer, node *ir.Node) error {
	if cfg.J {
		data, err := ir.MarshalJSON(node)
		if err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}
	data, err := ir.MarshalYAML(node)
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if cfg.useColor(w) {
		return writeColored(w, data)
	}
	_, err = w.Write(data)
	return err
}

var keyColor = color.New(color.FgCyan)

// writeColored renders YAML with mapping keys in color.
func writeColored(w io.Writer, data []byte) error {
	lines := strings.SplitAfter(string(data), "\n")
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " -")
		colon := strings.Index(trimmed, ": ")
		if colon == -1 && !strings.HasSuffix(strings.TrimRight(trimmed, "\n"), ":") {
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
			continue
		}
		head := line[:len(line)-len(trimmed)]
		var key, rest string
		if colon >= 0 {
			key, rest = trimmed[:colon], trimmed[colon:]
		} else {
			key = strings.TrimRight(trimmed, ":\n")
			rest = trimmed[len(key):]
		}
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if _, err := keyColor.Fprint(w, key); err != nil {
			return err
		}
		if _, err := io.WriteString(w, rest); err != nil {
			return err
		}
	}
	return nil
}
