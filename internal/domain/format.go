package domain

import (
	"strings"
)

// Formatter selects how diagnostics are rendered as text lines.
type Formatter int

const (
	FormatProse Formatter = iota
	FormatJSON
	FormatMSBuild
	FormatVerbose
)

var formatterNames = map[Formatter]string{
	FormatProse:   "prose",
	FormatJSON:    "json",
	FormatMSBuild: "msbuild",
	FormatVerbose: "verbose",
}

// ValidFormatters enumerates every supported formatter in display order.
var ValidFormatters = []Formatter{FormatProse, FormatJSON, FormatMSBuild, FormatVerbose}

func (f Formatter) String() string {
	if name, ok := formatterNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormatter resolves a formatter name case-insensitively. The empty
// name selects prose.
func ParseFormatter(name string) (Formatter, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return FormatProse, nil
	}
	for _, f := range ValidFormatters {
		if formatterNames[f] == n {
			return f, nil
		}
	}
	names := make([]string, len(ValidFormatters))
	for i, f := range ValidFormatters {
		names[i] = f.String()
	}
	return FormatProse, configErrorf("formatter", "unknown formatter %q (valid: %s)", name, strings.Join(names, ", "))
}
