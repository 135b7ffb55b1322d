package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NotNil(t, cfg.Log)
	require.NotNil(t, cfg.Batch)
	assert.Equal(t, defaultWorkers, cfg.Batch.Workers)
	assert.Equal(t, defaultCacheSize, cfg.Batch.CacheSize)
	assert.NoError(t, CheckConfig(cfg))
}

func TestLoadConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "config_test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, DefaultConfigFilename)
	raw := []byte(`{"batch":{"workers":8}}`)
	require.NoError(t, ioutil.WriteFile(path, raw, 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, CheckConfig(cfg))

	assert.Equal(t, 8, cfg.Batch.Workers)
	assert.Equal(t, defaultCacheSize, cfg.Batch.CacheSize)
	assert.Equal(t, DefaultLogLevel, cfg.Log.LogLevel)
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join("testdata", "no-such-config.json"))
	assert.Error(t, err)
}

func TestCheckConfig(t *testing.T) {
	tests := []*struct {
		cfg *Config
		ok  bool
	}{
		{
			cfg: &Config{},
			ok:  true,
		},
		{
			cfg: &Config{Batch: &Batch{Workers: -1, CacheSize: 16}},
			ok:  true,
		},
		{
			cfg: &Config{Batch: &Batch{Workers: MaxWorkers + 1}},
			ok:  false,
		},
		{
			cfg: &Config{Batch: &Batch{Workers: 4, CacheSize: -1}},
			ok:  false,
		},
		{
			cfg: &Config{Log: &Log{LogLevel: "noisy"}},
			ok:  false,
		},
	}

	for i, test := range tests {
		err := CheckConfig(test.cfg)
		if ok := err == nil; ok != test.ok {
			t.Errorf("%d, CheckConfig error not match, got = %v, want ok = %v", i, err, test.ok)
		}
	}
}

func TestCheckConfigNormalize(t *testing.T) {
	cfg := &Config{
		Log:   &Log{},
		Batch: &Batch{Workers: 0, CacheSize: 16},
	}
	require.NoError(t, CheckConfig(cfg))
	assert.Equal(t, defaultLogDir, cfg.Log.LogDir)
	assert.Equal(t, DefaultLogLevel, cfg.Log.LogLevel)
	assert.Equal(t, defaultWorkers, cfg.Batch.Workers)
}
