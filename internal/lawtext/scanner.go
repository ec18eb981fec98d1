package lawtext

import (
	"github.com/probelab/lawspace/internal/log"
)

// Ref is one successfully parsed operation-name reference.
type Ref struct {
	Name     string
	Position int // rune position of the opening delimiter
}

// contextRadius bounds the snippet captured around a malformed reference.
const contextRadius = 12

// Scan extracts backtick-delimited operation references from one law
// description. It never aborts on the first problem: every malformed
// reference in the text is collected so callers can report a whole batch
// of laws in a single pass.
func Scan(text string) ([]Ref, []*FormatError) {
	runes := []rune(text)

	var refs []Ref
	var errs []*FormatError

	i := 0
	for i < len(runes) {
		if runes[i] != '`' {
			i++
			continue
		}

		start := i
		i++ // consume opening delimiter

		nameStart := i
		for i < len(runes) && runes[i] != '`' && runes[i] != '\n' {
			i++
		}

		if i >= len(runes) || runes[i] == '\n' {
			errs = append(errs, &FormatError{
				Description:   "unterminated operation reference",
				Context:       snippet(runes, start),
				Position:      start,
				OffendingText: string(runes[start:i]),
			})
			continue
		}

		name := string(runes[nameStart:i])
		i++ // consume closing delimiter

		switch {
		case name == "":
			errs = append(errs, &FormatError{
				Description:   "empty operation reference",
				Context:       snippet(runes, start),
				Position:      start,
				OffendingText: "``",
			})
		case !validName(name):
			errs = append(errs, &FormatError{
				Description:   "operation reference is not a valid name",
				Context:       snippet(runes, start),
				Position:      start,
				OffendingText: "`" + name + "`",
			})
		default:
			refs = append(refs, Ref{Name: name, Position: start})
		}
	}

	log.Debug(log.CatLawText, "Scanned law description", "refs", len(refs), "errors", len(errs))
	return refs, errs
}

// ScanAll scans many law descriptions and returns every reference and every
// error found, preserving input order. Errors are non-fatal by design.
func ScanAll(texts []string) ([]Ref, []*FormatError) {
	var refs []Ref
	var errs []*FormatError
	for _, text := range texts {
		r, e := Scan(text)
		refs = append(refs, r...)
		errs = append(errs, e...)
	}
	return refs, errs
}

// Names returns the distinct referenced names in first-seen order,
// ready to feed a capability query.
func Names(refs []Ref) []string {
	seen := make(map[string]bool, len(refs))
	var out []string
	for _, ref := range refs {
		if seen[ref.Name] {
			continue
		}
		seen[ref.Name] = true
		out = append(out, ref.Name)
	}
	return out
}

func validName(name string) bool {
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func snippet(runes []rune, pos int) string {
	lo := pos - contextRadius
	if lo < 0 {
		lo = 0
	}
	hi := pos + contextRadius
	if hi > len(runes) {
		hi = len(runes)
	}
	return string(runes[lo:hi])
}
