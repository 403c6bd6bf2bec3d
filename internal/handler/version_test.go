package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVersionInfo(t *testing.T) {
	vcs := vcsInfo{revision: "abc123", time: "2026-10-01T10:00:00Z", modified: true}

	t.Run("falls back to configuration and vcs", func(t *testing.T) {
		info := buildVersionInfo("london-travel", "1.4.0", vcs)
		assert.Equal(t, "1.4.0", info.Version)
		assert.Equal(t, "abc123", info.GitCommit)
		assert.Equal(t, vcs.time, info.BuildTime)
		assert.True(t, info.Modified)
	})

	t.Run("defaults to dev", func(t *testing.T) {
		info := buildVersionInfo("london-travel", "", vcsInfo{})
		assert.Equal(t, devVersion, info.Version)
		assert.Empty(t, info.GitCommit)
	})

	t.Run("ldflags win", func(t *testing.T) {
		Version, GitCommit = "2.0.0", "feedbeef"
		t.Cleanup(func() { Version, GitCommit = "", "" })

		info := buildVersionInfo("london-travel", "1.4.0", vcs)
		assert.Equal(t, "2.0.0", info.Version)
		assert.Equal(t, "feedbeef", info.GitCommit)
		assert.False(t, info.Modified)
	})
}

func TestHandleVersion(t *testing.T) {
	w := httptest.NewRecorder()
	HandleVersion("london-travel", "1.4.0").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var info VersionInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "london-travel", info.Service)
	assert.Equal(t, "1.4.0", info.Version)
	assert.NotEmpty(t, info.GoVersion)
}
