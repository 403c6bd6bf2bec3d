package main

import "fmt"

type LintCommand struct{}

func (c *LintCommand) Name() string {
	return "lint"
}

func (c *LintCommand) Description() string {
	return "Run golangci-lint (pass --changed to lint only uncommitted changes)"
}

func (c *LintCommand) Run(args []string) error {
	PrintHeader("Running linter...")

	// go run keeps the linter at the version pinned in tools.go
	cmdArgs := []string{"run", "github.com/golangci/golangci-lint/cmd/golangci-lint", "run"}
	if len(args) > 0 && args[0] == "--changed" {
		cmdArgs = append(cmdArgs, "--new-from-rev=HEAD")
	}
	cmdArgs = append(cmdArgs, "./...")

	if err := runCommandVerbose("go", cmdArgs...); err != nil {
		return fmt.Errorf("linter failed: %w", err)
	}
	PrintSuccess("No lint issues")
	return nil
}
