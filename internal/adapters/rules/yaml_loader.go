// Package rules loads additional phrase rules from YAML files.
package rules

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mikey/deliverability-scorer/internal/core"
	"gopkg.in/yaml.v3"
)

// ErrInvalidRule is returned when a rule file entry cannot be used
var ErrInvalidRule = errors.New("invalid phrase rule")

// File is the on-disk layout of a rule file:
//
//	rules:
//	  - phrase: "quick win"
//	    severity: low
//	    rationale: "Sales jargon"
//	    suggestion: "Name the actual outcome"
type File struct {
	Rules []Entry `yaml:"rules"`
}

// Entry is a single rule as written in a rule file
type Entry struct {
	Phrase     string `yaml:"phrase"`
	Severity   string `yaml:"severity"`
	Rationale  string `yaml:"rationale"`
	Suggestion string `yaml:"suggestion"`
}

// LoadFile reads phrase rules from a YAML file
func LoadFile(path string) ([]core.PhraseRule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rule file: %w", err)
	}
	defer f.Close()

	rules, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

// Load reads phrase rules from YAML
func Load(r io.Reader) ([]core.PhraseRule, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode rule file: %w", err)
	}

	rules := make([]core.PhraseRule, 0, len(file.Rules))
	for i, e := range file.Rules {
		phrase := strings.TrimSpace(e.Phrase)
		if phrase == "" {
			return nil, fmt.Errorf("%w: entry %d has no phrase", ErrInvalidRule, i)
		}
		severity, err := core.ParseSeverity(e.Severity)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d (%q): %v", ErrInvalidRule, i, phrase, err)
		}
		rules = append(rules, core.PhraseRule{
			Phrase:     phrase,
			Severity:   severity,
			Rationale:  e.Rationale,
			Suggestion: e.Suggestion,
		})
	}
	return rules, nil
}
