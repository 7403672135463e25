// Package defaults provides canonical default values for the entire codebase.
// This is the single source of truth for tool identity, placeholder text,
// and exit codes.
package defaults

// ToolName is the canonical tool name used in banners, suite names,
// and user agent strings.
const ToolName = "verdict"

// Version is the current verdict version.
const Version = "1.4.0"

// Placeholder text substituted by renderers when a descriptor omits a
// field. Renderers must never fail on a nil name, title, or version.
const (
	// PlaceholderUnknown replaces a missing profile name.
	PlaceholderUnknown = "unknown"

	// PlaceholderNotSpecified replaces a missing profile version.
	PlaceholderNotSpecified = "(not specified)"

	// PlaceholderAnonymous replaces a missing control title.
	PlaceholderAnonymous = "Anonymous"
)
