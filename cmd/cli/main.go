// Command verdict turns a stream of raw test records into compliance
// reports: a live console transcript, a structured JSON document, and
// JUnit XML for CI.
//
// Records arrive as JSON Lines on stdin or from -input; profile and
// control metadata comes from -profiles. Exit code 0 means every test
// passed, 1 means failures were found.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/verdictsh/verdict/pkg/check"
	"github.com/verdictsh/verdict/pkg/config"
	"github.com/verdictsh/verdict/pkg/defaults"
	"github.com/verdictsh/verdict/pkg/jsonutil"
	"github.com/verdictsh/verdict/pkg/output/dispatcher"
	"github.com/verdictsh/verdict/pkg/output/hooks"
	"github.com/verdictsh/verdict/pkg/output/writers"
	"github.com/verdictsh/verdict/pkg/runner"
	"github.com/verdictsh/verdict/pkg/severity"
	"github.com/verdictsh/verdict/pkg/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return defaults.ExitUserError
	}

	if cfg.ShowVersion {
		fmt.Printf("%s %s\n", defaults.ToolName, defaults.Version)
		return defaults.ExitSuccess
	}

	ui.SetSilent(cfg.Silent)
	ui.SetNoColor(cfg.NoColor)
	setupLogging(cfg.Verbose)

	ui.PrintBanner()
	ui.PrintConfigBanner(map[string]string{
		"Profiles":     cfg.ProfilesFile,
		"Input":        cfg.InputFile,
		"Target":       cfg.Target,
		"JSON Export":  cfg.JSONExport,
		"JUnit Export": cfg.JUnitExport,
		"JSONL Export": cfg.JSONLExport,
		"Metrics Port": portString(cfg.MetricsPort),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code, err := execute(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return code
}

// execute wires the run and feeds it the input stream.
func execute(ctx context.Context, cfg *config.Config) (int, error) {
	var profiles []*check.Profile
	if cfg.ProfilesFile != "" {
		var err error
		profiles, err = config.LoadProfiles(cfg.ProfilesFile)
		if err != nil {
			return defaults.ExitUserError, err
		}
	}

	input, closeInput, err := openInput(cfg.InputFile)
	if err != nil {
		return defaults.ExitUserError, err
	}
	defer closeInput()

	writerList, closeExports, err := buildWriters(cfg, profiles)
	if err != nil {
		return defaults.ExitUserError, err
	}
	defer closeExports()

	hookList, closeHooks, err := buildHooks(cfg)
	if err != nil {
		return defaults.ExitInternalError, err
	}
	defer closeHooks()

	run, err := runner.New(ctx, profiles, runner.Options{
		Target:  cfg.Target,
		Writers: writerList,
		Hooks:   hookList,
	})
	if err != nil {
		return defaults.ExitInternalError, err
	}

	dec := jsonutil.NewDecoder(input)
	for {
		if err := ctx.Err(); err != nil {
			return defaults.ExitInternalError, err
		}

		var src check.Source
		if err := dec.Decode(&src); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return defaults.ExitUserError, fmt.Errorf("decode input: %w", err)
		}
		if err := run.Add(ctx, src); err != nil {
			return defaults.ExitInternalError, err
		}
	}

	if _, err := run.Close(ctx); err != nil {
		return defaults.ExitInternalError, err
	}
	printOutcome(run)
	if run.Failed() {
		return defaults.ExitFailuresFound, nil
	}
	return defaults.ExitSuccess, nil
}

// printOutcome prints the one-line styled verdict to stderr, keeping
// stdout clean for report output.
func printOutcome(run *runner.Run) {
	if ui.IsSilent() {
		return
	}
	_, tests := run.Totals()
	if run.Failed() {
		fmt.Fprintf(os.Stderr, "%s %d of %d tests failed\n",
			ui.SeverityStyle(severity.Failed).Render("FAIL"), tests.Failed, tests.Total())
		return
	}
	fmt.Fprintf(os.Stderr, "%s %d tests\n",
		ui.SeverityStyle(severity.Passed).Render("PASS"), tests.Total())
}

// openInput returns the record stream: -input when set, stdin otherwise.
func openInput(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// buildWriters assembles the console renderer and the requested
// exports. The returned cleanup closes the export files.
func buildWriters(cfg *config.Config, profiles []*check.Profile) ([]dispatcher.Writer, func(), error) {
	console := writers.NewConsoleWriter(os.Stdout, profiles, writers.ConsoleConfig{
		Color: !cfg.NoColor && ui.ColorTerminal(os.Stdout),
		ASCII: cfg.ASCII || !ui.UnicodeTerminal(),
	})
	list := []dispatcher.Writer{console}

	var files []*os.File
	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}

	addExport := func(path string, build func(io.Writer) dispatcher.Writer) error {
		if path == "" {
			return nil
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create export: %w", err)
		}
		files = append(files, f)
		list = append(list, build(f))
		return nil
	}

	exports := []struct {
		path  string
		build func(io.Writer) dispatcher.Writer
	}{
		{cfg.JSONExport, func(w io.Writer) dispatcher.Writer { return writers.NewDocumentWriter(w) }},
		{cfg.JUnitExport, func(w io.Writer) dispatcher.Writer { return writers.NewJUnitWriter(w) }},
		{cfg.JSONLExport, func(w io.Writer) dispatcher.Writer { return writers.NewJSONLWriter(w) }},
	}
	for _, e := range exports {
		if err := addExport(e.path, e.build); err != nil {
			closeAll()
			return nil, nil, err
		}
	}

	return list, closeAll, nil
}

// buildHooks assembles the side channels: debug logging and the
// optional Prometheus endpoint.
func buildHooks(cfg *config.Config) ([]dispatcher.Hook, func(), error) {
	var list []dispatcher.Hook
	closeAll := func() {}

	if cfg.Verbose {
		list = append(list, hooks.NewLoggerHook(nil))
	}
	if cfg.MetricsPort > 0 {
		prom, err := hooks.NewPrometheusHook(hooks.PrometheusOptions{Port: cfg.MetricsPort})
		if err != nil {
			return nil, nil, err
		}
		list = append(list, prom)
		closeAll = func() { _ = prom.Close() }
	}

	return list, closeAll, nil
}

// setupLogging installs the default slog handler: debug text on stderr
// when verbose, warnings only otherwise.
func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func portString(port int) string {
	if port == 0 {
		return ""
	}
	return strconv.Itoa(port)
}
