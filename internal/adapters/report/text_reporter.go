package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mikey/deliverability-scorer/internal/core"
	"github.com/muesli/termenv"
	"go.uber.org/zap"
)

var severityColors = map[core.Severity]lipgloss.Color{
	core.SeverityHigh:   lipgloss.Color("9"),
	core.SeverityMedium: lipgloss.Color("11"),
	core.SeverityLow:    lipgloss.Color("12"),
}

// TextReporter renders results as highlighted terminal text
type TextReporter struct {
	logger *zap.Logger
	color  bool
}

// NewTextReporter creates a new text reporter
func NewTextReporter(logger *zap.Logger, color bool) *TextReporter {
	return &TextReporter{
		logger: logger,
		color:  color,
	}
}

// Report writes the scores, the highlighted subject and body and the list
// of flagged phrases with their suggestions.
func (r *TextReporter) Report(w io.Writer, email *core.Email, result *core.ScoreResult) error {
	renderer := lipgloss.NewRenderer(w)
	if !r.color {
		renderer.SetColorProfile(termenv.Ascii)
	}
	heading := renderer.NewStyle().Bold(true)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n", heading.Render("=== Scores ==="))
	fmt.Fprintf(&buf, "%-15s%d/100\n", "Spam score:", result.SpamScore)
	fmt.Fprintf(&buf, "%-15s%d/100\n", "Quality score:", result.QualityScore)
	fmt.Fprintf(&buf, "%-15s%d/100\n", "Warmth score:", result.WarmthScore)

	fields := []struct {
		name  string
		field core.Field
		text  string
	}{
		{"Subject", core.FieldSubject, email.Subject},
		{"Body", core.FieldBody, email.Body},
	}
	for _, f := range fields {
		fmt.Fprintf(&buf, "\n%s\n", heading.Render("=== "+f.name+" ==="))
		for _, seg := range core.Segments(f.text, result.FieldMatches(f.field)) {
			if !seg.Flagged {
				buf.WriteString(seg.Text)
				continue
			}
			style := renderer.NewStyle().Underline(true).Foreground(severityColors[seg.Severity])
			if seg.Severity == core.SeverityHigh {
				style = style.Bold(true)
			}
			buf.WriteString(style.Render(seg.Text))
		}
		buf.WriteString("\n")
	}

	fmt.Fprintf(&buf, "\n%s\n", heading.Render("=== Flagged phrases ==="))
	if len(result.Matches) == 0 {
		buf.WriteString("None\n")
	}
	for _, m := range result.Matches {
		label := renderer.NewStyle().Foreground(severityColors[m.Rule.Severity]).
			Render(fmt.Sprintf("[%s]", m.Rule.Severity))
		fmt.Fprintf(&buf, "%s %q (%s %d-%d): %s\n", label, m.Rule.Phrase, m.Field, m.Start, m.End, m.Rule.Rationale)
		fmt.Fprintf(&buf, "    Suggestion: %s\n", m.Rule.Suggestion)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	r.logger.Debug("Wrote text report", zap.Int("bytes", buf.Len()))
	return nil
}
