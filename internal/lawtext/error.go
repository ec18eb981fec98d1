// Package lawtext extracts operation-name references from law description
// text. The core only consumes successfully parsed references; malformed
// delimiting surfaces as a structured, non-fatal FormatError so a whole
// batch of laws can be reported in a single pass.
package lawtext

import "fmt"

// FormatError describes one malformed operation reference. It carries
// enough context for batch reporting: what went wrong, the surrounding
// text, where, and the offending fragment itself.
type FormatError struct {
	Description   string // what is malformed, e.g. "unterminated operation reference"
	Context       string // surrounding law text snippet
	Position      int    // rune position of the offending fragment
	OffendingText string // the fragment itself
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s at position %d: %q (near %q)",
		e.Description, e.Position, e.OffendingText, e.Context)
}
