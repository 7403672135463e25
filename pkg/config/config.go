// Package config holds the CLI configuration and the profile metadata
// loader.
package config

import (
	"flag"
	"fmt"
	"os"
)

// Config holds all CLI configuration options
type Config struct {
	// Input settings
	ProfilesFile string // YAML file declaring profiles and controls
	InputFile    string // JSONL file of raw test records (empty = stdin)
	Target       string // Display string for the system under test

	// Export settings
	JSONExport  string // Structured JSON report path (empty = disabled)
	JUnitExport string // JUnit XML report path (empty = disabled)
	JSONLExport string // Streaming JSONL path (empty = disabled)

	// Output settings
	NoColor     bool // Disable colored output
	ASCII       bool // ASCII status marks instead of Unicode
	Silent      bool // Suppress banner and config chrome
	Verbose     bool // Debug logging
	ShowVersion bool // Print version and exit

	// Metrics settings
	MetricsPort int // Prometheus port (0 = disabled)
}

// ParseFlags parses os.Args and returns Config
func ParseFlags() (*Config, error) {
	return ParseArgs(flag.CommandLine, os.Args[1:])
}

// ParseArgs parses the given arguments into a Config.
func ParseArgs(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	// === INPUT ===
	fs.StringVar(&cfg.ProfilesFile, "profiles", "", "Profile metadata YAML file")
	fs.StringVar(&cfg.ProfilesFile, "p", "", "Profile metadata (alias)")
	fs.StringVar(&cfg.InputFile, "input", "", "JSONL input file (default: stdin)")
	fs.StringVar(&cfg.InputFile, "i", "", "Input file (alias)")
	fs.StringVar(&cfg.Target, "target", "", "Display target for the system under test")
	fs.StringVar(&cfg.Target, "t", "", "Target (alias)")

	// === EXPORTS ===
	fs.StringVar(&cfg.JSONExport, "json-export", "", "Write structured JSON report to file")
	fs.StringVar(&cfg.JUnitExport, "junit-export", "", "Write JUnit XML report to file")
	fs.StringVar(&cfg.JSONLExport, "jsonl-export", "", "Stream results as JSONL to file")

	// === OUTPUT ===
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&cfg.NoColor, "nc", false, "No color (alias)")
	fs.BoolVar(&cfg.ASCII, "ascii", false, "ASCII status marks instead of Unicode")
	fs.BoolVar(&cfg.Silent, "silent", false, "Suppress banner and config output")
	fs.BoolVar(&cfg.Silent, "s", false, "Silent (alias)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Debug logging")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose (alias)")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print version and exit")

	// === METRICS ===
	fs.IntVar(&cfg.MetricsPort, "metrics-port", 0, "Serve Prometheus metrics on this port (0 = disabled)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.MetricsPort < 0 || cfg.MetricsPort > 65535 {
		return nil, fmt.Errorf("%w: metrics port %d out of range", ErrInvalidConfig, cfg.MetricsPort)
	}

	return cfg, nil
}
