package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into a fresh directory so no stray rowify.yaml or .env is read.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CorsOrigins)
}

func TestLoad_Environment(t *testing.T) {
	chdir(t)
	t.Setenv("ROWIFY_OUTPUT_DIR", "/tmp/out")
	t.Setenv("ROWIFY_SERVER_PORT", "9090")
	t.Setenv("ROWIFY_SERVER_CORS_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CorsOrigins)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := chdir(t)
	content := "output_dir: exports\nlog_level: debug\nserver:\n  port: \"7000\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rowify.yaml"), []byte(content), 0o644))

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "exports", cfg.OutputDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "7000", cfg.Server.Port)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ROWIFY_LOG_LEVEL=warn\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("ROWIFY_LOG_LEVEL") })

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_InvalidPort(t *testing.T) {
	tests := []struct {
		name string
		port string
	}{
		{"Not a number", "http"},
		{"Zero", "0"},
		{"Too large", "70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t)
			t.Setenv("ROWIFY_SERVER_PORT", tt.port)

			_, err := Load(New())
			assert.Error(t, err)
		})
	}
}
