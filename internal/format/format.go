// Package format holds small pure formatting helpers shared by the CLI and
// TUI presentation layers.
package format

import (
	"fmt"
	"time"
)

// FormatScientific renders v in scientific notation with the given number of
// fractional digits, right-aligned in a cell of the given width. Non-finite
// values render through the standard %e verbs ("NaN", "+Inf"), which is
// exactly what the comparison table wants to show near the singularity.
func FormatScientific(v float64, precision, width int) string {
	return fmt.Sprintf("%*.*e", width, precision, v)
}

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}
