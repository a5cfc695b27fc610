// Package output provides summary table formatters.
package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/inodb/agat-table/internal/summary"
)

// TabWriter writes summary rows in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w:       bufio.NewWriter(w),
		columns: summary.Header,
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	return tw.writeLine(tw.columns)
}

// Write writes a single summary row.
func (tw *TabWriter) Write(row summary.Row) error {
	return tw.writeLine(row.Values())
}

// WriteAll writes the header followed by every row and flushes.
func (tw *TabWriter) WriteAll(rows []summary.Row) error {
	if err := tw.WriteHeader(); err != nil {
		return err
	}
	for _, row := range rows {
		if err := tw.Write(row); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}

func (tw *TabWriter) writeLine(values []string) error {
	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}
