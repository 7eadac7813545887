package main

import (
	"context"
	"fmt"

	"github.com/gatesim/gatebind/internal/bindings"
	"github.com/gatesim/gatebind/internal/fancy"
	"github.com/urfave/cli/v3"
)

var typesCmd = &cli.Command{
	Name:  "types",
	Usage: "List the registered binding types",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		module, err := bindings.NewStandardModule()
		if err != nil {
			return fmt.Errorf("failed to build module table: %w", err)
		}

		t := fancy.ModuleTree(module.Name())
		for _, name := range module.Types() {
			desc, ok := module.Lookup(name)
			if !ok {
				continue
			}
			t.AddChild(desc.String())
		}

		fmt.Println(t.Tree().String())
		return nil
	},
}
