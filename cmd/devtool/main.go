package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; the shell environment wins
	_ = godotenv.Load()

	registry := NewRegistry(
		&BenchCommand{},
		&CheckDBCommand{},
		&CheckDepsCommand{},
		&DoctorCommand{},
		&GenerateCommand{},
		&GenSessionKeyCommand{},
		&HealthCheckCommand{},
		&LintCommand{},
		&MigrateCommand{},
		&WaitForDBCommand{},
	)

	args := os.Args[1:]
	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		registry.WriteHelp(os.Stdout)
		return
	}

	if err := registry.Dispatch(args); err != nil {
		PrintError("%v", err)
		if errors.Is(err, errUnknownCommand) {
			registry.WriteHelp(os.Stderr)
		}
		os.Exit(1)
	}
}
