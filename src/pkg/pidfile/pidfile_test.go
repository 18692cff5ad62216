package pidfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePidfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "daemon.pid")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveExplicitPidWins(t *testing.T) {
	path := writePidfile(t, "999\n")
	pid, ok, err := Resolve(42, path)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int32(42), pid)
}

func TestResolveNothingGiven(t *testing.T) {
	pid, ok, err := Resolve(0, "")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, pid)
}

func TestResolveMissingFile(t *testing.T) {
	_, _, err := Resolve(0, filepath.Join(t.TempDir(), "absent.pid"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestResolveFromFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantPid int32
		wantOK  bool
	}{
		{"plain number", "1234", 1234, true},
		{"trailing newline", "1234\n", 1234, true},
		{"surrounding whitespace", "  1234 \n", 1234, true},
		{"only first line read", "1234\nsecond line\n", 1234, true},
		{"non-numeric is lenient", "abc\n", 0, false},
		{"empty file", "", 0, false},
		{"blank first line", "\n1234\n", 0, false},
		{"zero pid rejected", "0\n", 0, false},
		{"negative pid rejected", "-5\n", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pid, ok, err := Resolve(0, writePidfile(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPid, pid)
		})
	}
}
