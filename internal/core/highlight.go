package core

import "sort"

// Segments slices text into unflagged and flagged segments for rendering.
// Overlapping matches collapse into one segment covering their union, with
// the highest severity among them. Matches outside text are ignored.
func Segments(text string, matches []Match) []Segment {
	valid := make([]Match, 0, len(matches))
	for _, m := range matches {
		if m.Start < 0 || m.Start >= m.End || m.End > len(text) {
			continue
		}
		valid = append(valid, m)
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Start < valid[j].Start
	})

	var segments []Segment
	pos := 0
	for i := 0; i < len(valid); {
		cur := Segment{
			Start:    valid[i].Start,
			End:      valid[i].End,
			Flagged:  true,
			Severity: valid[i].Rule.Severity,
			Rules:    []PhraseRule{valid[i].Rule},
		}
		i++
		for i < len(valid) && valid[i].Start < cur.End {
			cur.End = max(cur.End, valid[i].End)
			cur.Severity = max(cur.Severity, valid[i].Rule.Severity)
			cur.Rules = append(cur.Rules, valid[i].Rule)
			i++
		}

		if cur.Start > pos {
			segments = append(segments, Segment{Start: pos, End: cur.Start, Text: text[pos:cur.Start]})
		}
		cur.Text = text[cur.Start:cur.End]
		segments = append(segments, cur)
		pos = cur.End
	}

	if pos < len(text) {
		segments = append(segments, Segment{Start: pos, End: len(text), Text: text[pos:]})
	}
	return segments
}
