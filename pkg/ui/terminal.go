// Package ui provides terminal capability detection and the lipgloss
// styles used by the command-line frontend. Renderers themselves take
// plain booleans; this package decides what those booleans should be
// for the attached terminal.
package ui

import (
	"os"
	"runtime"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	unicodeOnce sync.Once
	unicodeOK   bool
)

// ColorTerminal reports whether f is a terminal that should receive
// ANSI color. Respects NO_COLOR and TERM=dumb; piped or redirected
// output never gets color.
func ColorTerminal(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	if !term.IsTerminal(int(f.Fd())) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

// UnicodeTerminal reports whether stdout can render the Unicode status
// marks. Returns false when output is piped, redirected, TERM is
// "dumb", or on Windows without Windows Terminal.
//
// Legacy Windows consoles cannot render the check and cross glyphs even
// with SetConsoleOutputCP(65001) because the default fonts lack them.
// Windows Terminal (detected via WT_SESSION) handles them correctly.
func UnicodeTerminal() bool {
	unicodeOnce.Do(func() {
		if os.Getenv("TERM") == "dumb" {
			return
		}
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return
		}
		if runtime.GOOS == "windows" {
			// Windows Terminal sets WT_SESSION; legacy conhost does not.
			unicodeOK = os.Getenv("WT_SESSION") != ""
			return
		}
		unicodeOK = true
	})
	return unicodeOK
}

// Icon returns unicode when the terminal supports it, ascii otherwise.
func Icon(unicode, ascii string) string {
	if UnicodeTerminal() {
		return unicode
	}
	return ascii
}
