package main

import (
	"fmt"

	"github.com/ashpursglove/ashs-construction-calculator/pkg/calc"
	"github.com/ashpursglove/ashs-construction-calculator/pkg/engine"
	"github.com/ashpursglove/ashs-construction-calculator/pkg/project"
)

func parseDomainArg(arg string) (calc.Domain, error) {
	d := calc.Domain(arg)
	for _, known := range calc.Domains() {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown domain %q (one of: %v)", arg, calc.Domains())
}

// loadEngine reads a project file and commits it onto a fresh engine.
func loadEngine(path string) (*engine.Engine, error) {
	state, err := project.Load(path)
	if err != nil {
		return nil, err
	}
	e := engine.New()
	if err := e.LoadState(state); err != nil {
		return nil, fmt.Errorf("project %s: %w", path, err)
	}
	return e, nil
}
