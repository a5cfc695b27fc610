// Package report reads AGAT statistics reports and extracts per-feature
// sections and fields from them.
package report

import (
	"fmt"
	"os"
	"strings"
)

// markerDashes is the dash run that frames every section label.
const markerDashes = "--------------------"

// markerFormat is the start marker for a category: dashes, label, dashes.
const markerFormat = markerDashes + " %s " + markerDashes

// Report holds the lines of an AGAT statistics report.
type Report struct {
	lines []string
}

// Load reads the whole report at path into memory.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}
	return Parse(string(data)), nil
}

// Parse builds a Report from text already in memory.
func Parse(content string) *Report {
	return &Report{lines: strings.Split(content, "\n")}
}

// Lines returns the number of lines in the report.
func (r *Report) Lines() int {
	return len(r.lines)
}

// Section returns the non-blank lines of the first section labelled category.
// The section ends at the next line starting with the marker dashes, or at the
// end of the report. An absent category yields an empty Section.
func (r *Report) Section(category string) Section {
	marker := fmt.Sprintf(markerFormat, category)
	s := Section{Label: category}

	inSection := false
	for _, line := range r.lines {
		switch {
		case strings.Contains(line, marker):
			inSection = true
		case inSection && strings.HasPrefix(line, markerDashes):
			return s
		case inSection && strings.TrimSpace(line) != "":
			s.Lines = append(s.Lines, line)
		}
	}
	return s
}
