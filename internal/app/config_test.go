package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"colony/internal/sims/colony"
)

func parse(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	cfg := NewConfig()
	fs := pflag.NewFlagSet("colony", pflag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse(args))
	return cfg, cfg.Load(fs)
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, colony.DefaultConfig(), cfg.Colony)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadFileThenFlags(t *testing.T) {
	path := writeFile(t, "colony.yaml", `
colony:
  size: 20
  bases: 7
  seed: 5
log:
  level: debug
`)
	cfg, err := parse(t, "--config", path, "--bases", "3")
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Colony.Size)
	assert.Equal(t, 3, cfg.Colony.Bases)
	assert.Equal(t, int64(5), cfg.Colony.Seed)
	assert.Equal(t, colony.DefaultConfig().MaxAttempts, cfg.Colony.MaxAttempts)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("COLONY_COLONY_SIZE", "6")
	t.Setenv("COLONY_LOG_LEVEL", "error")

	cfg, err := parse(t, "--seed", "11")
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Colony.Size)
	assert.Equal(t, int64(11), cfg.Colony.Seed)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := parse(t, "-c", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := parse(t, "--bases=-2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bases")

	_, err = parse(t, "--max-attempts", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max attempts")
}

func TestYAMLRoundTrip(t *testing.T) {
	cfg, err := parse(t, "--size", "8", "--print-config")
	require.NoError(t, err)
	assert.True(t, cfg.PrintConfig)

	out, err := cfg.YAML()
	require.NoError(t, err)
	assert.NotContains(t, string(out), "print")

	var decoded Config
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, cfg.Colony, decoded.Colony)
	assert.Equal(t, cfg.Log, decoded.Log)
}

func TestRunWritesGrid(t *testing.T) {
	cfg := NewConfig()
	cfg.Colony.Size = 3
	cfg.Colony.Bases = 0

	var out bytes.Buffer
	require.NoError(t, Run(cfg, zap.NewNop(), &out))
	assert.Equal(t, "|T|T|T|\n|T|T|T|\n|T|T|T|\n", out.String())
}

func TestRunReportsCapacity(t *testing.T) {
	cfg := NewConfig()
	cfg.Colony.Size = 2
	cfg.Colony.Bases = 2

	var out bytes.Buffer
	err := Run(cfg, zap.NewNop(), &out)
	require.ErrorIs(t, err, colony.ErrCapacity)
	assert.Empty(t, out.String())
}

func TestLoadSetOverrides(t *testing.T) {
	cfg, err := parse(t, "--size", "5", "--set", "size=12,bases=3,seed=4,unknown=1")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Colony.Size)
	assert.Equal(t, 3, cfg.Colony.Bases)
	assert.Equal(t, int64(4), cfg.Colony.Seed)
	assert.Equal(t, colony.DefaultConfig().MaxAttempts, cfg.Colony.MaxAttempts)
}

func TestLoadSetIgnoresInvalidValues(t *testing.T) {
	cfg, err := parse(t, "--bases", "2", "--set", "bases=many")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Colony.Bases)
}

func TestRunLogsSummary(t *testing.T) {
	cfg := NewConfig()
	cfg.Colony.Size = 3
	cfg.Colony.Bases = 1

	core, recorded := observer.New(zap.InfoLevel)
	var out bytes.Buffer
	require.NoError(t, Run(cfg, zap.New(core), &out))

	entries := recorded.FilterMessage("grid generated").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "colony", fields["generator"])
	assert.EqualValues(t, 3, fields["size"])
	assert.EqualValues(t, 1, fields["bases"])
}
