package config

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTest(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	fs := flag.NewFlagSet("verdict", flag.ContinueOnError)
	return ParseArgs(fs, args)
}

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := parseTest(t)
	require.NoError(t, err)

	assert.Empty(t, cfg.ProfilesFile)
	assert.Empty(t, cfg.InputFile)
	assert.Empty(t, cfg.JSONExport)
	assert.False(t, cfg.NoColor)
	assert.False(t, cfg.Silent)
	assert.Zero(t, cfg.MetricsPort)
}

func TestParseArgsAllFlags(t *testing.T) {
	cfg, err := parseTest(t,
		"-profiles", "profiles.yaml",
		"-input", "results.jsonl",
		"-target", "ssh://root@host",
		"-json-export", "report.json",
		"-junit-export", "report.xml",
		"-jsonl-export", "stream.jsonl",
		"-no-color",
		"-ascii",
		"-silent",
		"-verbose",
		"-metrics-port", "9090",
	)
	require.NoError(t, err)

	assert.Equal(t, "profiles.yaml", cfg.ProfilesFile)
	assert.Equal(t, "results.jsonl", cfg.InputFile)
	assert.Equal(t, "ssh://root@host", cfg.Target)
	assert.Equal(t, "report.json", cfg.JSONExport)
	assert.Equal(t, "report.xml", cfg.JUnitExport)
	assert.Equal(t, "stream.jsonl", cfg.JSONLExport)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.ASCII)
	assert.True(t, cfg.Silent)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 9090, cfg.MetricsPort)
}

func TestParseArgsAliases(t *testing.T) {
	cfg, err := parseTest(t, "-p", "profiles.yaml", "-i", "in.jsonl", "-t", "host", "-nc", "-s", "-v")
	require.NoError(t, err)

	assert.Equal(t, "profiles.yaml", cfg.ProfilesFile)
	assert.Equal(t, "in.jsonl", cfg.InputFile)
	assert.Equal(t, "host", cfg.Target)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.Silent)
	assert.True(t, cfg.Verbose)
}

func TestParseArgsBadMetricsPort(t *testing.T) {
	_, err := parseTest(t, "-metrics-port", "70000")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
