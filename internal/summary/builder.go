package summary

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/inodb/agat-table/internal/report"
)

// Builder assembles summary rows from an AGAT report.
type Builder struct {
	logger *zap.Logger
}

// NewBuilder creates a new Builder with logging disabled.
func NewBuilder() *Builder {
	return &Builder{
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for section diagnostics.
func (b *Builder) SetLogger(l *zap.Logger) {
	b.logger = l
}

// Build returns all summary rows in display order: protein-coding, Ig/TCR
// segments, pseudogenes, each named non-coding biotype, other non-coding.
func (b *Builder) Build(r *report.Report) ([]Row, error) {
	var rows []Row

	if row, ok := b.ProteinCoding(r); ok {
		rows = append(rows, row)
	}

	segments, err := b.Segments(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", CategorySegments, err)
	}
	rows = append(rows, segments)

	if row, ok := b.Pseudogenes(r); ok {
		rows = append(rows, row)
	}

	rows = append(rows, b.NonCoding(r)...)

	other, err := b.OtherNonCoding(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", CategoryOtherNonCoding, err)
	}
	rows = append(rows, other)

	return rows, nil
}

// ProteinCoding returns the mrna row, or false if the report has no mrna section.
func (b *Builder) ProteinCoding(r *report.Report) (Row, bool) {
	return b.single(r, CategoryProteinCoding, "mrna", geneKeys("mrna"))
}

// Pseudogenes returns the pseudogenic_transcript row, or false if absent.
func (b *Builder) Pseudogenes(r *report.Report) (Row, bool) {
	return b.single(r, CategoryPseudogenes, "pseudogenic_transcript", pseudogeneKeys())
}

// NonCoding returns one row per named non-coding biotype present in the report.
func (b *Builder) NonCoding(r *report.Report) []Row {
	var rows []Row
	for _, bt := range NonCodingBiotypes {
		if row, ok := b.single(r, bt.Name, bt.Label, ncrnaKeys(bt.Label)); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// Segments sums the C, D, J and V gene segment sections into one row.
// The row is returned even when none of the sections exist.
func (b *Builder) Segments(r *report.Report) (Row, error) {
	var agg aggregate
	for _, label := range segmentLabels {
		if err := b.fold(&agg, r.Section(label), geneKeys(label)); err != nil {
			return Row{}, err
		}
	}
	return b.emit(agg.row(CategorySegments)), nil
}

// OtherNonCoding sums the generic rna and transcript sections into one row.
// The row is returned even when neither section exists.
func (b *Builder) OtherNonCoding(r *report.Report) (Row, error) {
	var agg aggregate
	for _, label := range otherNonCodingLabels {
		keys := ncrnaKeys(label)
		if label == "rna" {
			keys = geneKeys(label)
		}
		if err := b.fold(&agg, r.Section(label), keys); err != nil {
			return Row{}, err
		}
	}
	return b.emit(agg.row(CategoryOtherNonCoding)), nil
}

// single builds a row from one section using its raw field values.
func (b *Builder) single(r *report.Report, category, label string, k fieldKeys) (Row, bool) {
	s := r.Section(label)
	if !s.Present() {
		b.logger.Debug("section absent", zap.String("section", label))
		return Row{}, false
	}
	b.logger.Debug("section located",
		zap.String("section", label),
		zap.Int("lines", len(s.Lines)))

	return b.emit(Row{
		Category:    category,
		Genes:       s.Get(k.Genes),
		Transcripts: s.Get(k.Transcripts),
		Length:      s.Get(k.Length),
		SingleExon:  s.Get(k.SingleExon),
		Exons:       s.Get(k.Exons),
	}), true
}

// fold adds a present section to agg; absent sections are skipped.
func (b *Builder) fold(agg *aggregate, s report.Section, k fieldKeys) error {
	if !s.Present() {
		b.logger.Debug("section absent", zap.String("section", s.Label))
		return nil
	}
	b.logger.Debug("section located",
		zap.String("section", s.Label),
		zap.Int("lines", len(s.Lines)))
	return agg.add(s, k)
}

func (b *Builder) emit(row Row) Row {
	b.logger.Debug("row built",
		zap.String("category", row.Category),
		zap.Strings("values", row.Values()[1:]))
	return row
}
