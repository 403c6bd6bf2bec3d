package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
)

const (
	envStaging    = "staging"
	envProduction = "production"
	appName       = "londontravel"
)

var errUnknownCommand = errors.New("unknown command")

// Command is one devtool subcommand
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// Registry holds the subcommands by name
type Registry struct {
	commands map[string]Command
}

func NewRegistry(cmds ...Command) *Registry {
	r := &Registry{commands: make(map[string]Command, len(cmds))}
	for _, cmd := range cmds {
		r.Register(cmd)
	}
	return r
}

// Register adds cmd, replacing any command of the same name
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns the commands ordered by name
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}

// Dispatch runs the command named by args[0] with the remaining arguments
func (r *Registry) Dispatch(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: none given", errUnknownCommand)
	}
	cmd, ok := r.Get(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownCommand, args[0])
	}
	if err := cmd.Run(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name(), err)
	}
	return nil
}

// WriteHelp prints usage and a two-column command table
func (r *Registry) WriteHelp(w io.Writer) {
	fmt.Fprintf(w, "Usage: go run ./cmd/devtool <command> [args...]\n\n")
	fmt.Fprintf(w, "Development tasks for %s.\n\nCommands:\n", appName)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, cmd := range r.List() {
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.Name(), cmd.Description())
	}
	_ = tw.Flush()
}
