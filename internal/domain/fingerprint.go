package domain

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
)

// Fingerprint identifies an issue across runs. It is the hex MD5 of the
// description, the decimal begin offset and the path concatenated with no
// separator. Dashboards key on this value, so the input layout is frozen.
func Fingerprint(description string, beginOffset int, path string) string {
	sum := md5.Sum([]byte(description + strconv.Itoa(beginOffset) + path))
	return hex.EncodeToString(sum[:])
}

// TranslateIssues maps diagnostics to fingerprinted issues, preserving order.
func TranslateIssues(diags []Diagnostic) []Issue {
	issues := make([]Issue, 0, len(diags))
	for _, d := range diags {
		begin := d.StartPosition.Position
		issues = append(issues, Issue{
			Description: d.Failure,
			Fingerprint: Fingerprint(d.Failure, begin, d.Name),
			Location: IssueLocation{
				Path:  d.Name,
				Lines: IssueLines{Begin: begin},
			},
		})
	}
	return issues
}
