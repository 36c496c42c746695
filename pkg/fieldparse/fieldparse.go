// Package fieldparse extracts "label: value" fields from free-form LLM output.
//
// Models are asked to reply in a line-oriented format but frequently add
// prose, reorder lines, or change casing. Parsing here is tolerant by
// contract: labels match case-insensitively by prefix, unrelated lines are
// ignored, and every accessor returns an explicit default when the field is
// missing or malformed. No function in this package returns an error.
package fieldparse

import (
	"strconv"
	"strings"
)

// Fields holds parsed label/value pairs keyed by lowercase label.
// When a label appears on multiple lines the last occurrence wins.
type Fields map[string]string

// Parse scans text line by line and collects every "label: value" pair.
// A line matches when it starts (after trimming) with a label followed by a
// colon. Lines without a colon are skipped. Markdown code fences are stripped
// first so fenced replies parse the same as bare ones.
func Parse(text string) Fields {
	fields := make(Fields)

	for _, line := range strings.Split(stripFences(text), "\n") {
		line = strings.TrimSpace(line)
		idx := strings.Index(line, ":")
		if idx <= 0 {
			continue
		}

		label := strings.ToLower(strings.TrimSpace(line[:idx]))
		if label == "" || strings.ContainsAny(label, " \t") {
			continue
		}

		fields[label] = strings.TrimSpace(line[idx+1:])
	}

	return fields
}

// String returns the raw value for label (lowercased match) and whether it
// was present.
func (f Fields) String(label string) (string, bool) {
	v, ok := f[strings.ToLower(label)]
	return v, ok
}

// Bool reports whether the field's value contains "true" (case-insensitive).
// Missing fields return def.
func (f Fields) Bool(label string, def bool) bool {
	v, ok := f.String(label)
	if !ok {
		return def
	}
	return strings.Contains(strings.ToLower(v), "true")
}

// Float parses the first whitespace-separated token of the field as a float.
// Missing or unparseable values return def.
func (f Fields) Float(label string, def float64) float64 {
	v, ok := f.String(label)
	if !ok {
		return def
	}
	tokens := strings.Fields(v)
	if len(tokens) == 0 {
		return def
	}
	parsed, err := strconv.ParseFloat(strings.TrimRight(tokens[0], ".,;"), 64)
	if err != nil {
		return def
	}
	return parsed
}

// List splits the field on commas and trims each entry. A value of "none"
// (case-insensitive) or a missing field yields nil.
func (f Fields) List(label string) []string {
	v, ok := f.String(label)
	if !ok || strings.EqualFold(strings.TrimSpace(v), "none") {
		return nil
	}

	var items []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}

func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
