package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, 4.99, cfg.Pricing.DeliveryFee)
	assert.Equal(t, 45*time.Minute, cfg.Pricing.EstimatedReadyIn.Std())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
listen_addr: ":9090"
storage:
  backend: redis
  redis_addr: "redis:6379"
pricing:
  delivery_fee: 3.49
latency:
  login: 0s
  submission: 0s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "redis:6379", cfg.Storage.RedisAddr)
	assert.Equal(t, 3.49, cfg.Pricing.DeliveryFee)
	assert.Equal(t, time.Duration(0), cfg.Latency.Login.Std())
	// untouched keys keep their defaults
	assert.Equal(t, 0.08, cfg.Pricing.TaxRate)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_addr: [oops"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_UnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: dynamo\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
