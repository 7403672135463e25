// Package severity defines the severity tiers assigned to check results
// and control rollups. All values are lowercase strings matching the
// report document convention.
package severity

// Severity represents the severity tier of a result or a control rollup.
type Severity string

const (
	// Unknown is the tier of an empty control.
	Unknown Severity = "unknown"

	// Passed indicates a successful result.
	Passed Severity = "passed"

	// Skipped indicates a result that was not executed.
	Skipped Severity = "skipped"

	// Minor is a failure on a control with impact below 0.4.
	Minor Severity = "minor"

	// Major is a failure on a control with impact in [0.4, 0.7).
	Major Severity = "major"

	// Failed is a failure on a control that declares no impact.
	Failed Severity = "failed"

	// Critical is a failure on a control with impact of 0.7 or above.
	Critical Severity = "critical"
)

// Impact thresholds for refining a failed result.
const (
	criticalImpact = 0.7
	majorImpact    = 0.4
)

// IsValid reports whether s is a recognized severity tier.
func (s Severity) IsValid() bool {
	switch s {
	case Unknown, Passed, Skipped, Minor, Major, Failed, Critical:
		return true
	}
	return false
}

// Score returns a numeric score for comparison. The ordering is
// unknown(-3) < passed(-2) < skipped(-1) < minor(1) < major(2) <
// failed(2.5) < critical(3). Unrecognized tiers score as unknown.
func (s Severity) Score() float64 {
	switch s {
	case Passed:
		return -2
	case Skipped:
		return -1
	case Minor:
		return 1
	case Major:
		return 2
	case Failed:
		return 2.5
	case Critical:
		return 3
	default:
		return -3
	}
}

// String returns the severity as a string.
func (s Severity) String() string {
	return string(s)
}

// IsFailure reports whether the tier counts as a failure for run-level
// statistics. Minor, major, failed, and critical all count as failed.
func (s Severity) IsFailure() bool {
	switch s {
	case Minor, Major, Failed, Critical:
		return true
	}
	return false
}

// Compare returns -1, 0, or +1 as a orders below, equal to, or above b.
func Compare(a, b Severity) int {
	sa, sb := a.Score(), b.Score()
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}

// FromStatus classifies one result into a tier. Impact is consulted only
// for failed results: impact >= 0.7 is critical, [0.4, 0.7) is major,
// below 0.4 is minor, and a nil impact keeps the plain failed tier.
// Passed and skipped results never acquire an impact-derived tier.
func FromStatus(status string, impact *float64) Severity {
	switch status {
	case "passed":
		return Passed
	case "skipped":
		return Skipped
	case "failed":
		if impact == nil {
			return Failed
		}
		switch {
		case *impact >= criticalImpact:
			return Critical
		case *impact >= majorImpact:
			return Major
		default:
			return Minor
		}
	default:
		return Unknown
	}
}
