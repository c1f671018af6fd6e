package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"connector/client"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{envVarEndpoint, envVarAPIKey, envVarTimeout, envVarConfigPath} {
		t.Setenv(key, "")
	}
}

func writeConfigFile(t *testing.T, dir string, data map[string]string) string {
	t.Helper()

	raw, err := yaml.Marshal(data)
	require.NoError(t, err)

	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, raw, 0600))
	return path
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Empty(t, cfg.GetEndpoint())
	assert.Empty(t, cfg.GetAPIKey())
	timeout, err := cfg.GetTimeout()
	require.NoError(t, err)
	assert.Zero(t, timeout)
}

func TestLoad_HomeConfigFile(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, os.MkdirAll(filepath.Join(home, ".connector"), 0755))
	raw, err := yaml.Marshal(map[string]string{"endpoint": "https://file.example", "api_key": "sk_file"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(home, configFileName), raw, 0600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://file.example", cfg.GetEndpoint())
	assert.Equal(t, "sk_file", cfg.GetAPIKey())
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfigFile(t, t.TempDir(), map[string]string{
		"endpoint": "https://env-path.example",
		"timeout":  "7s",
	})
	t.Setenv(envVarConfigPath, path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://env-path.example", cfg.GetEndpoint())
	timeout, err := cfg.GetTimeout()
	require.NoError(t, err)
	assert.Equal(t, 7*time.Second, timeout)
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint: [unclosed"), 0600))

	cfg, err := LoadFile(path)

	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestGetters_Priority(t *testing.T) {
	t.Run("env var takes precedence over config file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(envVarEndpoint, "https://env.example")
		t.Setenv(envVarAPIKey, "sk_env")
		t.Setenv(envVarTimeout, "2s")

		cfg := &Config{Endpoint: "https://file.example", APIKey: "sk_file", Timeout: "9s"}

		assert.Equal(t, "https://env.example", cfg.GetEndpoint())
		assert.Equal(t, "sk_env", cfg.GetAPIKey())
		timeout, err := cfg.GetTimeout()
		require.NoError(t, err)
		assert.Equal(t, 2*time.Second, timeout)
	})

	t.Run("config file used when env var blank", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(envVarEndpoint, "   ")

		cfg := &Config{Endpoint: "https://file.example"}

		assert.Equal(t, "https://file.example", cfg.GetEndpoint())
	})
}

func TestGetTimeout_Invalid(t *testing.T) {
	clearEnv(t)
	cfg := &Config{Timeout: "ten seconds"}

	_, err := cfg.GetTimeout()

	assert.ErrorContains(t, err, "invalid timeout")
}

func TestApply_BuildsClient(t *testing.T) {
	clearEnv(t)
	cfg := &Config{Endpoint: "https://file.example", APIKey: "sk_file", Timeout: "4s"}
	b := client.NewBuilder()

	require.NoError(t, cfg.Apply(b))
	c, err := b.Build()

	require.NoError(t, err)
	assert.Equal(t, "https://file.example", c.Endpoint())
	assert.Equal(t, "sk_file", c.Credential())
	assert.Equal(t, 4*time.Second, c.Timeout())
	assert.Equal(t, "pong", c.Ping())
}

func TestApply_LeavesDefaultsAlone(t *testing.T) {
	clearEnv(t)
	cfg := &Config{Endpoint: "https://file.example"}
	b := client.NewBuilder()

	require.NoError(t, cfg.Apply(b))
	require.NoError(t, b.SetCredential("sk_flag"))
	c, err := b.Build()

	require.NoError(t, err)
	assert.Equal(t, client.DefaultTimeout, c.Timeout())
}

func TestApply_MissingCredentialFailsAtBuild(t *testing.T) {
	clearEnv(t)
	cfg := &Config{Endpoint: "https://file.example"}
	b := client.NewBuilder()

	require.NoError(t, cfg.Apply(b))
	_, err := b.Build()

	assert.ErrorIs(t, err, client.ErrInvalidState)
}

func TestApply_NegativeTimeout(t *testing.T) {
	clearEnv(t)
	cfg := &Config{Timeout: "-1s"}

	err := cfg.Apply(client.NewBuilder())

	assert.ErrorIs(t, err, client.ErrNullArgument)
}

func TestApply_BadTimeout(t *testing.T) {
	clearEnv(t)
	cfg := &Config{Timeout: "soon"}

	err := cfg.Apply(client.NewBuilder())

	assert.ErrorContains(t, err, "invalid timeout")
}
