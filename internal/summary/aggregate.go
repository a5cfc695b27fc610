package summary

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"github.com/inodb/agat-table/internal/report"
)

// aggregate sums counts and collects mean values over several sections.
type aggregate struct {
	genes       int
	transcripts int
	singleExon  int
	lengths     []float64
	exons       []float64
}

// add folds one section into the aggregate. Zero means are not collected.
func (a *aggregate) add(s report.Section, k fieldKeys) error {
	genes, err := s.Int(k.Genes)
	if err != nil {
		return err
	}
	transcripts, err := s.Int(k.Transcripts)
	if err != nil {
		return err
	}
	singleExon, err := s.Int(k.SingleExon)
	if err != nil {
		return err
	}
	length, err := s.Float(k.Length)
	if err != nil {
		return err
	}
	exons, err := s.Float(k.Exons)
	if err != nil {
		return err
	}

	if math.IsInf(length, 1) {
		return notFinite(s, k.Length)
	}
	if math.IsInf(exons, 1) {
		return notFinite(s, k.Exons)
	}

	a.genes += genes
	a.transcripts += transcripts
	a.singleExon += singleExon
	if length > 0 {
		a.lengths = append(a.lengths, length)
	}
	if exons > 0 {
		a.exons = append(a.exons, exons)
	}
	return nil
}

func notFinite(s report.Section, key string) error {
	return &report.FieldError{Section: s.Label, Key: key, Value: s.Get(key), Err: report.ErrNotFinite}
}

// row renders the aggregate with length and exon ranges.
func (a *aggregate) row(category string) Row {
	return Row{
		Category:    category,
		Genes:       strconv.Itoa(a.genes),
		Transcripts: strconv.Itoa(a.transcripts),
		Length:      lengthRange(a.lengths),
		SingleExon:  strconv.Itoa(a.singleExon),
		Exons:       exonRange(a.exons),
	}
}

// lengthRange formats values as "min-max" truncated to whole numbers.
func lengthRange(values []float64) string {
	if len(values) == 0 {
		return report.DefaultValue
	}
	lo, hi := math.Trunc(floats.Min(values)), math.Trunc(floats.Max(values))
	return strconv.FormatFloat(lo, 'f', 0, 64) + "-" + strconv.FormatFloat(hi, 'f', 0, 64)
}

// exonRange formats values as "min-max" with one decimal place.
func exonRange(values []float64) string {
	if len(values) == 0 {
		return report.DefaultValue
	}
	lo, hi := floats.Min(values), floats.Max(values)
	return strconv.FormatFloat(lo, 'f', 1, 64) + "-" + strconv.FormatFloat(hi, 'f', 1, 64)
}
