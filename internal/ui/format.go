package ui

import "fmt"

// formatPadded renders v left-padded with zeros to at least 'width' digits.
// Width is a minimum, not a maximum: values with more digits (day counts
// past 99) are never truncated.
func formatPadded(v, width int) string {
	return fmt.Sprintf("%0*d", width, v)
}
