package main

import (
	"fmt"
	"strings"
)

type CheckDepsCommand struct{}

func (c *CheckDepsCommand) Name() string {
	return "check-deps"
}

func (c *CheckDepsCommand) Description() string {
	return "Check for required dependencies"
}

// tool describes an external program and how to read its version
type tool struct {
	name     string
	args     []string
	field    int
	required bool
	install  string
}

var tools = []tool{
	{name: "go", args: []string{"version"}, field: 2, required: true, install: "https://go.dev/dl/"},
	{name: "docker", args: []string{"--version"}, field: 2, required: true, install: "https://docs.docker.com/get-docker/"},
	{name: "docker", args: []string{"compose", "version"}, field: 3, install: "https://docs.docker.com/compose/install/"},
	{name: "swag", args: []string{"--version"}, field: 2, install: "go install github.com/swaggo/swag/cmd/swag@latest"},
}

func (c *CheckDepsCommand) Run(args []string) error {
	PrintHeader("Checking dependencies...")

	hasError := false
	for _, t := range tools {
		label := strings.Join(append([]string{t.name}, t.args[:len(t.args)-1]...), " ")

		out, err := getCommandOutput(t.name, t.args...)
		if err != nil {
			if t.required {
				PrintError("%s not found. Install from: %s", label, t.install)
				hasError = true
			} else {
				PrintWarning("%s not found (optional). Install: %s", label, t.install)
			}
			continue
		}

		PrintSuccess("%s installed: %s", label, versionField(out, t.field))
	}

	if hasError {
		return fmt.Errorf("missing required dependencies")
	}
	return nil
}

// versionField picks the version out of a tool's first output line,
// e.g. "go version go1.24.0 linux/amd64" or "Docker version 24.0.5, build ced0996"
func versionField(out string, field int) string {
	line, _, _ := strings.Cut(out, "\n")
	parts := strings.Fields(line)
	if field < len(parts) {
		return strings.TrimRight(parts[field], ",")
	}
	return line
}
