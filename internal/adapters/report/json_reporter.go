package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mikey/deliverability-scorer/internal/core"
	"go.uber.org/zap"
)

// Annotation is everything a renderer needs to highlight one match
type Annotation struct {
	Field      core.Field    `json:"field"`
	Phrase     string        `json:"phrase"`
	Text       string        `json:"text"`
	Start      int           `json:"start"`
	End        int           `json:"end"`
	Severity   core.Severity `json:"severity"`
	Rationale  string        `json:"rationale"`
	Suggestion string        `json:"suggestion"`
}

// Document is the JSON form of a score result
type Document struct {
	SpamScore    int          `json:"spam_score"`
	QualityScore int          `json:"quality_score"`
	WarmthScore  int          `json:"warmth_score"`
	Matches      []Annotation `json:"matches"`
}

// JSONReporter renders results as a JSON document
type JSONReporter struct {
	logger *zap.Logger
	indent bool
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(logger *zap.Logger, indent bool) *JSONReporter {
	return &JSONReporter{
		logger: logger,
		indent: indent,
	}
}

// NewDocument converts a score result into its JSON form
func NewDocument(email *core.Email, result *core.ScoreResult) Document {
	doc := Document{
		SpamScore:    result.SpamScore,
		QualityScore: result.QualityScore,
		WarmthScore:  result.WarmthScore,
		Matches:      make([]Annotation, 0, len(result.Matches)),
	}
	for _, m := range result.Matches {
		text := email.Body
		if m.Field == core.FieldSubject {
			text = email.Subject
		}
		a := Annotation{
			Field:      m.Field,
			Phrase:     m.Rule.Phrase,
			Start:      m.Start,
			End:        m.End,
			Severity:   m.Rule.Severity,
			Rationale:  m.Rule.Rationale,
			Suggestion: m.Rule.Suggestion,
		}
		if m.Start >= 0 && m.End <= len(text) && m.Start < m.End {
			a.Text = text[m.Start:m.End]
		}
		doc.Matches = append(doc.Matches, a)
	}
	return doc
}

// Report writes the JSON document to w
func (r *JSONReporter) Report(w io.Writer, email *core.Email, result *core.ScoreResult) error {
	enc := json.NewEncoder(w)
	if r.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(NewDocument(email, result)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	r.logger.Debug("Wrote JSON report", zap.Int("matches", len(result.Matches)))
	return nil
}
