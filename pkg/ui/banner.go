package ui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/verdictsh/verdict/pkg/defaults"
)

const Website = "https://verdict.sh"

// Global UI state
var (
	silentMode  bool
	noColorMode bool
	uiMu        sync.RWMutex
)

// SetSilent enables or disables silent mode (suppresses the banner and
// config chrome; report output is unaffected).
func SetSilent(silent bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	silentMode = silent
}

// IsSilent returns whether silent mode is enabled.
func IsSilent() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return silentMode
}

// SetNoColor disables colored output for all lipgloss styles.
func SetNoColor(noColor bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	noColorMode = noColor
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// IsNoColor returns whether color is disabled.
func IsNoColor() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return noColorMode
}

// ASCII art banner
const bannerArt = `
                    _ _      _
__   _____ _ __ __| (_) ___| |_
\ \ / / _ \ '__/ _` + "`" + ` | |/ __| __|
 \ V /  __/ | | (_| | | (__| |_
  \_/ \___|_|  \__,_|_|\___|\__|
`

// Separator line
const bannerSeparator = "________________________________________________"

// PrintBanner prints the application banner with version info to
// stderr, keeping stdout clean for report output.
func PrintBanner() {
	if IsSilent() {
		return
	}
	for _, line := range strings.Split(bannerArt, "\n") {
		if line != "" {
			fmt.Fprintln(os.Stderr, BannerStyle.Render(line))
		}
	}
	fmt.Fprintf(os.Stderr, "                  v%s\n", VersionStyle.Render(defaults.Version))
	fmt.Fprintf(os.Stderr, "\n\t\t%s\n\n", Website)
}

// printOption prints one configuration option.
// Format:  :: Option              : Value
func printOption(name, value string) {
	fmt.Fprintf(os.Stderr, " :: %-20s : %s\n", ConfigLabelStyle.Render(name), ConfigValueStyle.Render(value))
}

// PrintConfigBanner prints the effective settings before the run
// starts. Options print in a fixed order for consistent display.
func PrintConfigBanner(options map[string]string) {
	if IsSilent() {
		return
	}
	order := []string{
		"Profiles", "Input", "Target",
		"JSON Export", "JUnit Export", "JSONL Export",
		"Metrics Port",
	}

	printed := make(map[string]bool)
	for _, name := range order {
		if value, ok := options[name]; ok && value != "" {
			printOption(name, value)
			printed[name] = true
		}
	}
	for name, value := range options {
		if !printed[name] && value != "" {
			printOption(name, value)
		}
	}

	fmt.Fprintf(os.Stderr, "%s\n\n", SubtitleStyle.Render(bannerSeparator))
}
