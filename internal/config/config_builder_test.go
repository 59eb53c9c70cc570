package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T, args ...string) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	oldArgs := os.Args
	os.Args = append([]string{"cmd"}, args...)
	t.Cleanup(func() { os.Args = oldArgs })
}

// TestGetClientConfig_EnvWinsOverFlags tests source priority: an env value
// must survive a competing flag value.
func TestGetClientConfig_EnvWinsOverFlags(t *testing.T) {
	resetFlags(t, "-s", "http://flags.example", "-refresh-interval", "1m")
	t.Setenv("DAYSTAR_SERVER_BASE_URL", "http://env.example")

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://env.example", cfg.Server.BaseURL)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
}

// TestGetClientConfig_DefaultsFillGaps tests that built-in defaults apply
// only where no other source supplied a value.
func TestGetClientConfig_DefaultsFillGaps(t *testing.T) {
	resetFlags(t, "-s", "http://localhost:3000")

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.Server.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Workers.RefreshInterval)
}

// TestGetClientConfig_JSONFileMergedUnderneath tests that a JSON file
// referenced by flag contributes values below env and flags.
func TestGetClientConfig_JSONFileMergedUnderneath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server": {"base_url": "http://json.example", "request_timeout": "45s"},
		"storage": {"dir": "/from/json"}
	}`), 0o600))

	resetFlags(t, "-c", path, "-s", "http://flags.example")

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://flags.example", cfg.Server.BaseURL, "flags outrank the json file")
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/from/json", cfg.Storage.Dir)
}

// TestGetClientConfig_ValidationFailures tests that the merged result is
// rejected when the startup invariants do not hold.
func TestGetClientConfig_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{
			name: "missing base url",
			args: []string{},
			want: ErrInvalidServerConfigs,
		},
		{
			name: "relative base url",
			args: []string{"-s", "api.daystar.app"},
			want: ErrInvalidServerConfigs,
		},
		{
			name: "oauth secret without client id",
			args: []string{"-s", "http://localhost:3000", "-google-client-secret", "secret"},
			want: ErrInvalidOAuthConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t, tt.args...)

			_, err := GetClientConfig()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// TestGetClientConfig_BrokenJSONSurfacesError tests that a bad file path
// fails the whole build instead of being silently skipped.
func TestGetClientConfig_BrokenJSONSurfacesError(t *testing.T) {
	resetFlags(t, "-s", "http://localhost:3000", "-c", filepath.Join(t.TempDir(), "missing.json"))

	_, err := GetClientConfig()
	require.Error(t, err)
}
