package domain

import "encoding/json"

// PublishedReport is the shape downstream consumers read from an
// output_report namespace.
type PublishedReport struct {
	RunID      string            `json:"run_id"`
	CommitHash string            `json:"commit_hash,omitempty"`
	Failed     int               `json:"failed"`
	Errors     int               `json:"errors"`
	Warnings   int               `json:"warnings"`
	Files      []string          `json:"files"`
	Results    []json.RawMessage `json:"results"`
	Pass       bool              `json:"pass"`
	Message    string            `json:"message"`
}

// NewPublishedReport flattens a summary. With the JSON formatter the
// results are the diagnostics themselves, otherwise the rendered lines.
func NewPublishedReport(s *RunSummary, f Formatter) (PublishedReport, error) {
	r := PublishedReport{
		RunID:      s.RunID,
		CommitHash: s.CommitHash,
		Failed:     s.Failed(),
		Errors:     s.Errors,
		Warnings:   s.Warnings,
		Files:      s.Files,
		Results:    []json.RawMessage{},
		Pass:       s.Pass,
		Message:    s.Message,
	}

	if f == FormatJSON {
		for _, d := range s.Diagnostics {
			raw, err := json.Marshal(d)
			if err != nil {
				return PublishedReport{}, err
			}
			r.Results = append(r.Results, raw)
		}
		return r, nil
	}

	for _, line := range s.Lines {
		raw, err := json.Marshal(line)
		if err != nil {
			return PublishedReport{}, err
		}
		r.Results = append(r.Results, raw)
	}
	return r, nil
}
