package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultValue is returned for fields missing from a section.
const DefaultValue = "0"

// Section is the block of lines belonging to one feature category.
type Section struct {
	Label string
	Lines []string
}

// Present reports whether the section contained at least one line.
func (s Section) Present() bool {
	return len(s.Lines) > 0
}

// Get returns the last token of the first line whose trimmed content starts
// with key, or DefaultValue if no line does.
//
// Matching is by prefix: "Number of gene" also matches "Number of genes".
func (s Section) Get(key string) string {
	for _, line := range s.Lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, key) {
			continue
		}
		fields := strings.Fields(trimmed)
		return fields[len(fields)-1]
	}
	return DefaultValue
}

// Int returns the field for key as an integer.
func (s Section) Int(key string) (int, error) {
	raw := s.Get(key)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Section: s.Label, Key: key, Value: raw, Err: err}
	}
	return n, nil
}

// Float returns the field for key as a float64.
func (s Section) Float(key string) (float64, error) {
	raw := s.Get(key)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &FieldError{Section: s.Label, Key: key, Value: raw, Err: err}
	}
	return f, nil
}

// ErrNotFinite is the cause of a FieldError for an infinite value that
// cannot be summarised.
var ErrNotFinite = errors.New("value is not finite")

// FieldError reports a field whose value could not be converted to a number.
type FieldError struct {
	Section string
	Key     string
	Value   string
	Err     error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("section %q: field %q: invalid number %q: %v", e.Section, e.Key, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
