package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// useColor is false when NO_COLOR is set or stdout is not a terminal
var useColor = os.Getenv("NO_COLOR") == "" && isTerminal(os.Stdout)

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

func printLine(color, symbol, format string, a ...interface{}) {
	msg := symbol + " " + fmt.Sprintf(format, a...)
	if useColor {
		msg = color + msg + colorReset
	}
	fmt.Println(msg)
}

func PrintInfo(format string, a ...interface{})    { printLine(colorBlue, "ℹ", format, a...) }
func PrintSuccess(format string, a ...interface{}) { printLine(colorGreen, "✓", format, a...) }
func PrintWarning(format string, a ...interface{}) { printLine(colorYellow, "⚠", format, a...) }
func PrintError(format string, a ...interface{})   { printLine(colorRed, "✗", format, a...) }

func PrintHeader(title string) {
	fmt.Println()
	printLine(colorYellow, "===", "%s ===", title)
}

// hostilePatterns would split or redirect a command if an argument ever reached a shell
var hostilePatterns = []string{"\n", "\r", "\x00", "|", "`", "$(", "&&", "||", ">", "<"}

// checkHostile rejects arguments carrying shell metacharacters. URLs with a
// single '&' and SQL with ';' are allowed.
func checkHostile(inputs ...string) error {
	for _, s := range inputs {
		for _, p := range hostilePatterns {
			if strings.Contains(s, p) {
				return fmt.Errorf("hostile input detected: pattern %q in %q", p, s)
			}
		}
	}
	return nil
}

// command builds an exec.Cmd after screening its arguments
func command(name string, args ...string) (*exec.Cmd, error) {
	if err := checkHostile(append([]string{name}, args...)...); err != nil {
		return nil, err
	}
	// #nosec G204 - arguments screened by checkHostile
	return exec.Command(name, args...), nil
}

func getCommandOutput(name string, args ...string) (string, error) {
	cmd, err := command(name, args...)
	if err != nil {
		return "", err
	}
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// runCommandVerbose runs a command and pipes output to stdout/stderr
func runCommandVerbose(name string, args ...string) error {
	cmd, err := command(name, args...)
	if err != nil {
		return err
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
