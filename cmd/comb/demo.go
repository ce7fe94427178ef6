package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tef/comb"
	"github.com/tef/comb/examples/json"
	"github.com/tef/comb/examples/yaml"
)

// readSource reads the grammar's input from path, or from stdin if path is
// empty.
func readSource(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// runDemo parses src against the named bundled grammar. When trace is
// non-nil it receives one formatted line per production enter/exit and
// token match.
func runDemo(name, src string, trace comb.TraceFunc) (any, []error, error) {
	switch name {
	case "json":
		parser, err := json.Build()
		if err != nil {
			return nil, nil, fmt.Errorf("build json grammar: %w", err)
		}
		if trace != nil {
			parser.SetTrace(comb.LogFunc(trace))
		}
		value, errs := parser.Parse(src, "json")
		return value, errs, nil
	case "yaml":
		value, errs := yaml.Parse(src, trace)
		return value, errs, nil
	default:
		return nil, nil, fmt.Errorf("unknown demo grammar %q (expected json or yaml)", name)
	}
}
