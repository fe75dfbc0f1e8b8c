package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis/analysistest"
	"golang.org/x/tools/go/analysis/passes/copylock"
)

func TestOsExitCheckAnalyzer(t *testing.T) {
	// reports os.Exit in main.main only; helper() and non-main packages stay clean
	analysistest.Run(t, analysistest.TestData(), OsExitCheckAnalyzer, "osexit", "notmain")
}

func TestCopylock(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), copylock.Analyzer, "copylock")
}

func TestLoadChecks(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file uses defaults", func(t *testing.T) {
		checks, err := loadChecks(filepath.Join(dir, "none.json"))
		require.NoError(t, err)
		assert.Equal(t, checkSet(defaultChecks), checks)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(dir, Config)
		require.NoError(t, os.WriteFile(path, []byte(`{"staticcheck": ["ST1003"]}`), 0o600))

		checks, err := loadChecks(path)
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{"ST1003": true}, checks)
	})

	t.Run("broken file", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{`), 0o600))

		_, err := loadChecks(path)
		require.Error(t, err)
	})

	t.Run("repository config", func(t *testing.T) {
		checks, err := loadChecks(Config)
		require.NoError(t, err)
		assert.Equal(t, checkSet(defaultChecks), checks)
	})
}

func TestAllChecks(t *testing.T) {
	mychecks := allChecks(checkSet(defaultChecks))

	names := make(map[string]bool, len(mychecks))
	for _, a := range mychecks {
		names[a.Name] = true
	}

	for _, want := range []string{"copylock", "printf", "SA4006", "ST1005", "S1008", "bodyclose", "errcheck", "gocritic", "osexitcheck"} {
		assert.True(t, names[want], "missing analyzer %s", want)
	}
	assert.False(t, names["ST1003"], "ST1003 is not enabled by default")
}
