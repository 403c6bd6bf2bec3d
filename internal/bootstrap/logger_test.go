package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LondonTravel_Go/internal/config"
	"github.com/osse101/LondonTravel_Go/internal/logger"
)

func TestLoggerConfig_SourceOnlyInDevelopment(t *testing.T) {
	tests := []struct {
		environment string
		wantSource  bool
	}{
		{logger.EnvironmentDev, true},
		{logger.EnvironmentDevelopment, true},
		{logger.EnvironmentProduction, false},
		{logger.EnvironmentTest, false},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			cfg := LoggerConfig(&config.Config{Environment: tt.environment})
			assert.Equal(t, tt.wantSource, cfg.AddSource)
			assert.Equal(t, tt.environment, cfg.Environment)
		})
	}
}

func TestPruneLogs(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"londontravel_2026-01-01_00-00-00.log",
		"londontravel_2026-01-02_00-00-00.log",
		"londontravel_2026-01-03_00-00-00.log",
		"londontravel_2026-01-04_00-00-00.log",
		"notes.log",
		"londontravel_readme.txt",
	}
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), nil, LogFilePermission))
	}

	pruneLogs(dir, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var left []string
	for _, e := range entries {
		left = append(left, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"londontravel_2026-01-03_00-00-00.log",
		"londontravel_2026-01-04_00-00-00.log",
		"notes.log",
		"londontravel_readme.txt",
	}, left)
}

func TestPruneLogs_UnderLimit(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "londontravel_2026-01-01_00-00-00.log")
	require.NoError(t, os.WriteFile(name, nil, LogFilePermission))

	pruneLogs(dir, LogFilesKept-1)

	assert.FileExists(t, name)
}

func TestPruneLogs_MissingDir(t *testing.T) {
	assert.NotPanics(t, func() { pruneLogs(filepath.Join(t.TempDir(), "absent"), 1) })
}
