// Package report renders diagnostics as text lines and issues as a
// code-climate JSON document.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lintclimate/lintclimate/internal/domain"
)

// RenderLines formats one file's diagnostics. Every formatter except JSON
// yields one line per diagnostic; JSON yields a single array line for the
// whole batch. An empty batch yields no lines.
func RenderLines(diags []domain.Diagnostic, f domain.Formatter) ([]string, error) {
	if len(diags) == 0 {
		return nil, nil
	}

	switch f {
	case domain.FormatJSON:
		line, err := encodeJSON(diags)
		if err != nil {
			return nil, fmt.Errorf("encoding diagnostics: %w", err)
		}
		return []string{line}, nil
	case domain.FormatProse:
		return eachLine(diags, proseLine), nil
	case domain.FormatVerbose:
		return eachLine(diags, verboseLine), nil
	case domain.FormatMSBuild:
		return eachLine(diags, msbuildLine), nil
	default:
		return nil, fmt.Errorf("unsupported formatter %s", f)
	}
}

// RenderIssues serializes the issues of a whole run as one JSON array.
func RenderIssues(issues []domain.Issue) (string, error) {
	if issues == nil {
		issues = []domain.Issue{}
	}
	out, err := encodeJSON(issues)
	if err != nil {
		return "", fmt.Errorf("encoding issues: %w", err)
	}
	return out, nil
}

func eachLine(diags []domain.Diagnostic, format func(domain.Diagnostic) string) []string {
	lines := make([]string, 0, len(diags))
	for _, d := range diags {
		lines = append(lines, format(d))
	}
	return lines
}

func proseLine(d domain.Diagnostic) string {
	return fmt.Sprintf("%s: %s[%d, %d]: %s",
		strings.ToUpper(string(d.Severity)), d.Name,
		d.StartPosition.Line+1, d.StartPosition.Character+1, d.Failure)
}

func verboseLine(d domain.Diagnostic) string {
	return fmt.Sprintf("%s: (%s) %s[%d, %d]: %s",
		strings.ToUpper(string(d.Severity)), d.RuleName, d.Name,
		d.StartPosition.Line+1, d.StartPosition.Character+1, d.Failure)
}

func msbuildLine(d domain.Diagnostic) string {
	return fmt.Sprintf("%s(%d,%d): %s %s: %s",
		d.Name, d.StartPosition.Line+1, d.StartPosition.Character+1,
		d.Severity, camelize(d.RuleName), d.Failure)
}

// camelize turns a hyphenated rule name into lower camel case:
// "no-debugger" becomes "noDebugger".
func camelize(rule string) string {
	var b strings.Builder
	upper := false
	for _, r := range rule {
		if r == '-' {
			upper = true
			continue
		}
		if upper {
			b.WriteString(strings.ToUpper(string(r)))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// encodeJSON marshals v on one line without HTML escaping, so messages
// containing <, > or & keep their literal form.
func encodeJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
