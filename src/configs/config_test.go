package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kb(v int64) *int64 { return &v }

func TestNewConfigDefaults(t *testing.T) {
	config := NewConfig()
	assert.Equal(t, DefaultTimeoutSeconds, config.TimeoutSeconds)
	assert.Nil(t, config.WarningKB)
	assert.Nil(t, config.CriticalKB)
	assert.False(t, config.NoMatchOK)
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name: "warning above critical",
			mutate: func(c *Config) {
				c.WarningKB = kb(500)
				c.CriticalKB = kb(200)
			},
			wantErr: "must not exceed",
		},
		{
			name: "warning equal to critical is allowed",
			mutate: func(c *Config) {
				c.WarningKB = kb(500)
				c.CriticalKB = kb(500)
			},
		},
		{
			name:   "warning alone is allowed",
			mutate: func(c *Config) { c.WarningKB = kb(500) },
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.TimeoutSeconds = 0 },
			wantErr: "timeout must be positive",
		},
		{
			name:    "negative pid",
			mutate:  func(c *Config) { c.PID = -1 },
			wantErr: "pid must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := NewConfig()
			tt.mutate(config)
			err := config.Verify()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestNewConfigWithBytes(t *testing.T) {
	config, err := NewConfigWithBytes([]byte(`
warning: 204800
critical: 512000
fname: postgres
no_filter_match: true
timeout: 30
`))
	require.NoError(t, err)
	require.NotNil(t, config.WarningKB)
	require.NotNil(t, config.CriticalKB)
	assert.Equal(t, int64(204800), *config.WarningKB)
	assert.Equal(t, int64(512000), *config.CriticalKB)
	assert.Equal(t, "postgres", config.FName)
	assert.True(t, config.NoMatchOK)
	assert.Equal(t, 30, config.TimeoutSeconds)
}

func TestNewConfigWithBytesKeepsDefaults(t *testing.T) {
	config, err := NewConfigWithBytes([]byte(`fname: sshd`))
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeoutSeconds, config.TimeoutSeconds)
	assert.Nil(t, config.WarningKB)
}

func TestNewConfigWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "check.yml")
	require.NoError(t, os.WriteFile(path, []byte("critical: 1024\n"), 0o644))

	config, err := NewConfigWithFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, config.File)
	require.NotNil(t, config.CriticalKB)
	assert.Equal(t, int64(1024), *config.CriticalKB)

	_, err = NewConfigWithFile(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}
