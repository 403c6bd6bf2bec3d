package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

const (
	benchResultsDir = "benchmarks/results"
	benchBaseline   = benchResultsDir + "/baseline.txt"
	benchCurrent    = benchResultsDir + "/current.txt"
	benchTime       = "-benchtime=2s"
)

// hotPaths are the benchmarks that gate the authorize endpoint
var hotPaths = []struct {
	label   string
	dir     string
	pattern string
}{
	{"Service: Authorize", "./benchmarks/alexa", "BenchmarkService_Authorize$"},
	{"Token: Generate", "./benchmarks/alexa", "BenchmarkAccessTokenGenerator_Generate"},
	{"Redirect: Validate", "./benchmarks/alexa", "BenchmarkRedirectURIValidator_Validate"},
}

type BenchCommand struct{}

func (c *BenchCommand) Name() string {
	return "bench"
}

func (c *BenchCommand) Description() string {
	return "Run and compare benchmarks [run|hot|baseline|save|compare]"
}

func (c *BenchCommand) Run(args []string) error {
	if len(args) == 0 {
		return c.runAll()
	}

	switch args[0] {
	case "run":
		return c.runAll()
	case "hot":
		return c.runHot()
	case "save":
		return c.runAndSave(fmt.Sprintf("%s/%s.txt", benchResultsDir, time.Now().Format("20060102-150405")))
	case "baseline":
		return c.runAndSave(benchBaseline)
	case "compare":
		return c.compare()
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

func (c *BenchCommand) runAll() error {
	PrintHeader("Running all benchmarks...")
	return runCommandVerbose("go", "test", "-run=^$", "-bench=.", "-benchmem", benchTime, "./...")
}

func (c *BenchCommand) runHot() error {
	PrintHeader("Running hot path benchmarks...")

	for _, hp := range hotPaths {
		fmt.Printf("  → %s\n", hp.label)
		if strings.ContainsAny(hp.dir+hp.pattern, ";|&`") {
			return fmt.Errorf("invalid benchmark parameters: %s", hp.label)
		}
		//nolint:gosec // G204: arguments come from the hotPaths table
		cmd := exec.Command("go", "test", "-run=^$", "-bench="+hp.pattern, "-benchmem", benchTime, hp.dir)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%s: %w", hp.label, err)
		}
	}
	return nil
}

func (c *BenchCommand) runAndSave(path string) error {
	PrintHeader("Running benchmarks and saving results...")
	if err := os.MkdirAll(benchResultsDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	mw := io.MultiWriter(os.Stdout, f)

	cmd := exec.Command("go", "test", "-run=^$", "-bench=.", "-benchmem", "-count=6", benchTime, "./...")
	cmd.Stdout = mw
	cmd.Stderr = mw

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("benchmark execution failed: %w", err)
	}

	PrintSuccess("Results saved to %s", path)
	return nil
}

// compare runs the benchmarks again and feeds both result files to the
// benchstat version pinned in tools.go
func (c *BenchCommand) compare() error {
	if _, err := os.Stat(benchBaseline); os.IsNotExist(err) {
		return fmt.Errorf("no baseline found. Run 'devtool bench baseline' first")
	}

	if err := c.runAndSave(benchCurrent); err != nil {
		return err
	}

	PrintHeader("Comparing to baseline...")
	return runCommandVerbose("go", "run", "golang.org/x/perf/cmd/benchstat", benchBaseline, benchCurrent)
}
