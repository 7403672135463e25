package defaults

// Exit codes for the CLI.
const (
	ExitSuccess       = 0 // Clean run, no control failed
	ExitFailuresFound = 1 // At least one control rolled up as failed
	ExitUserError     = 2 // Invalid arguments or configuration
	ExitInternalError = 4 // Unexpected internal error
)
