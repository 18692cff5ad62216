package flag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndGenConfig(t *testing.T) {
	err := Parse([]string{
		"-w", "204800",
		"-c", "512000",
		"-f", "postgres",
		"-C", "checkpointer",
		"-u", "26",
		"-g", "postgres",
		"-n",
		"-t", "30",
		"-v",
	})
	require.NoError(t, err)

	config := GenConfigFromFlags()
	require.NotNil(t, config.WarningKB)
	require.NotNil(t, config.CriticalKB)
	assert.Equal(t, int64(204800), *config.WarningKB)
	assert.Equal(t, int64(512000), *config.CriticalKB)
	assert.Equal(t, "postgres", config.FName)
	assert.Equal(t, "checkpointer", config.CmdLine)
	assert.Equal(t, "26", config.UID)
	assert.Equal(t, "postgres", config.GID)
	assert.True(t, config.NoMatchOK)
	assert.Equal(t, 30, config.TimeoutSeconds)
	assert.True(t, config.Verbose)
	assert.NoError(t, config.Verify())
}

func TestParseUnknownFlag(t *testing.T) {
	assert.Error(t, Parse([]string{"--no-such-flag"}))
}

func TestParseBadThresholdValue(t *testing.T) {
	assert.Error(t, Parse([]string{"-c", "lots"}))
}
