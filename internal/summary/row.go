// Package summary condenses AGAT feature sections into display rows.
package summary

// Header is the column header of the summary table.
var Header = []string{
	"Category",
	"No. genes",
	"No. transcripts",
	"Mean gene length (bp)",
	"No. single-exon genes",
	"Mean exons per transcript",
}

// Row is one line of the summary table. Length and Exons hold either a single
// value or a "min-max" range for aggregated categories.
type Row struct {
	Category    string
	Genes       string
	Transcripts string
	Length      string
	SingleExon  string
	Exons       string
}

// Values returns the row cells in column order.
func (r Row) Values() []string {
	return []string{r.Category, r.Genes, r.Transcripts, r.Length, r.SingleExon, r.Exons}
}

// Display names of the fixed summary rows.
const (
	CategoryProteinCoding  = "Protein-coding"
	CategorySegments       = "Ig/TCR segments"
	CategoryPseudogenes    = "Pseudogenes"
	CategoryOtherNonCoding = "Other non-coding"
)

// Biotype pairs a non-coding RNA display name with its AGAT section label.
type Biotype struct {
	Name  string
	Label string
}

// NonCodingBiotypes lists the named non-coding RNA rows in display order.
var NonCodingBiotypes = []Biotype{
	{"lncRNA", "lnc_rna"},
	{"snRNA", "snrna"},
	{"snoRNA", "snorna"},
	{"rRNA", "rrna"},
	{"tRNA", "trna"},
	{"miRNA", "mirna"},
	{"scRNA", "scrna"},
}

// Section labels read by the aggregated rows.
var (
	segmentLabels        = []string{"c_gene_segment", "d_gene_segment", "j_gene_segment", "v_gene_segment"}
	otherNonCodingLabels = []string{"rna", "transcript"}
)
