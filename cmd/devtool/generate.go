package main

import "fmt"

// generators are run through `go run` at the versions pinned in tools.go
var generators = map[string][]string{
	"docs": {"run", "github.com/swaggo/swag/cmd/swag", "init",
		"-g", "cmd/app/main.go", "-o", "docs", "--outputTypes", "go", "--parseInternal"},
	"mocks": {"run", "github.com/vektra/mockery/v2",
		"--name", "User", "--dir", "internal/repository",
		"--output", "internal/repository/mocks", "--outpkg", "mocks"},
}

type GenerateCommand struct{}

func (c *GenerateCommand) Name() string {
	return "generate"
}

func (c *GenerateCommand) Description() string {
	return "Regenerate swagger docs or repository mocks (docs, mocks, all)"
}

func (c *GenerateCommand) Run(args []string) error {
	targets := []string{"docs", "mocks"}
	if len(args) > 0 && args[0] != "all" {
		if _, ok := generators[args[0]]; !ok {
			return fmt.Errorf("unknown generator %q: want docs, mocks or all", args[0])
		}
		targets = args[:1]
	}

	for _, target := range targets {
		PrintHeader("Generating " + target + "...")
		if err := runCommandVerbose("go", generators[target]...); err != nil {
			return fmt.Errorf("generating %s: %w", target, err)
		}
		PrintSuccess("Generated %s", target)
	}
	return nil
}
