package cmd

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dendrascience/mdfiles/finder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeStyled runs a fresh root command through Execute, as main does.
func executeStyled(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(append([]string{}, args...))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	err := Execute(context.Background(), rootCmd)
	return stdout.String(), stderr.String(), err
}

func TestExecute_FatalErrorsAreOneLine(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing")

	tests := []struct {
		name     string
		args     []string
		sentinel error
		contains string
	}{
		{
			name:     "invalid date",
			args:     []string{"--date", "25-12-2025", "--root", dir},
			sentinel: finder.ErrInvalidDate,
			contains: `invalid date format "25-12-2025"`,
		},
		{
			name:     "invalid root",
			args:     []string{"--root", missing},
			sentinel: finder.ErrInvalidRoot,
			contains: "invalid root",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := executeStyled(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel))
			assert.Empty(t, stdout)

			assert.Equal(t, "Error: "+err.Error()+"\n", stderr)
			assert.Equal(t, 1, strings.Count(stderr, "\n"), "stderr should be one line: %q", stderr)
			assert.Contains(t, stderr, tt.contains)
		})
	}
}

func TestExecute_SuccessWritesNothingToStderr(t *testing.T) {
	stdout, stderr, err := executeStyled(t, "--root", t.TempDir(), "--date", "2025-01-01")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}
