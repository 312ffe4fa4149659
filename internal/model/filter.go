package model

import (
	"fmt"
	"strings"
)

// FilterMode selects which families and materials are eligible for export
// based on their Keynote and Assembly Code tags.
type FilterMode int

const (
	// FilterKeynote keeps entries that carry a keynote.
	FilterKeynote FilterMode = iota
	// FilterAssemblyCode keeps entries that carry an assembly code.
	FilterAssemblyCode
	// FilterKeynoteOrAssemblyCode keeps entries that carry at least one of the two tags.
	FilterKeynoteOrAssemblyCode
)

// Passes reports whether an entry with the given tags satisfies the mode.
// Unrecognized modes fail closed.
func (m FilterMode) Passes(hasKeynote, hasAssemblyCode bool) bool {
	switch m {
	case FilterKeynote:
		return hasKeynote
	case FilterAssemblyCode:
		return hasAssemblyCode
	case FilterKeynoteOrAssemblyCode:
		return hasKeynote || hasAssemblyCode
	default:
		return false
	}
}

func (m FilterMode) String() string {
	switch m {
	case FilterKeynote:
		return "keynote"
	case FilterAssemblyCode:
		return "assembly"
	case FilterKeynoteOrAssemblyCode:
		return "either"
	default:
		return "unknown"
	}
}

// ParseFilterMode parses a filter mode name as accepted on the command line.
func ParseFilterMode(s string) (FilterMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "keynote":
		return FilterKeynote, nil
	case "assembly", "assembly-code":
		return FilterAssemblyCode, nil
	case "either", "any", "keynote-or-assembly":
		return FilterKeynoteOrAssemblyCode, nil
	default:
		return FilterKeynote, fmt.Errorf("unknown filter mode %q (want keynote, assembly or either)", s)
	}
}
