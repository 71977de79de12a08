package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/slumber/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SLUMBER_CONFIG", "SLUMBER_DB", "SLUMBER_THEME", "SLUMBER_TREND_WINDOW",
		"SLUMBER_ID_STRATEGY", "SLUMBER_LOG_USE_CASES", "SLUMBER_HISTORY_ROWS",
	} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.DBPath, cfg.DBPath)
	assert.Equal(t, domain.ThemeLight, cfg.DefaultTheme())
	assert.Equal(t, 5, cfg.TrendWindow)
	assert.Equal(t, "uuid", cfg.IDStrategy)
	assert.False(t, cfg.LogUseCases)
}

func TestLoad_FileValues(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
db_path = "/tmp/sleep.db"
theme = "Dark"
trend_window = 7
id_strategy = "timestamp"
log_use_cases = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/sleep.db", cfg.DBPath)
	assert.Equal(t, domain.ThemeDark, cfg.DefaultTheme())
	assert.Equal(t, 7, cfg.TrendWindow)
	assert.Equal(t, "timestamp", cfg.IDStrategy)
	assert.True(t, cfg.LogUseCases)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `theme = "dark"
trend_window = 7`)
	t.Setenv("SLUMBER_THEME", "light")
	t.Setenv("SLUMBER_TREND_WINDOW", "3")
	t.Setenv("SLUMBER_DB", ":memory:")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, cfg.DefaultTheme())
	assert.Equal(t, 3, cfg.TrendWindow)
	assert.Equal(t, MemoryDBPath, cfg.DBPath)
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `history_rows = 3`)
	t.Setenv("SLUMBER_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.HistoryRows)
}

func TestLoad_ExpandsHome(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeConfig(t, `db_path = "~/sleep/slumber.db"`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "sleep", "slumber.db"), cfg.DBPath)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad theme", `theme = "sepia"`, "theme"},
		{"zero window", `trend_window = 0`, "trend_window"},
		{"bad strategy", `id_strategy = "snowflake"`, "id_strategy"},
		{"negative rows", `history_rows = -1`, "history_rows"},
		{"malformed toml", `theme = `, "parsing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{"SLUMBER_TREND_WINDOW", "five", "SLUMBER_TREND_WINDOW must be an integer"},
		{"SLUMBER_HISTORY_ROWS", "lots", "SLUMBER_HISTORY_ROWS must be an integer"},
		{"SLUMBER_LOG_USE_CASES", "sometimes", "SLUMBER_LOG_USE_CASES must be a boolean"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := Load(writeConfig(t, `log_use_cases = true`))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_EnvBoolOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("SLUMBER_LOG_USE_CASES", "false")
	cfg, err := Load(writeConfig(t, `log_use_cases = true`))
	require.NoError(t, err)
	assert.False(t, cfg.LogUseCases)
}
