package summary

// fieldKeys holds the key phrases for the five statistics of one section.
type fieldKeys struct {
	Genes       string
	Transcripts string
	Length      string
	SingleExon  string
	Exons       string
}

// geneKeys returns keys for sections whose parent feature is "gene".
func geneKeys(label string) fieldKeys {
	return parentKeys("gene", label)
}

// ncrnaKeys returns keys for sections whose parent feature is "ncrna_gene".
func ncrnaKeys(label string) fieldKeys {
	return parentKeys("ncrna_gene", label)
}

// pseudogeneKeys returns keys for the pseudogenic_transcript section.
func pseudogeneKeys() fieldKeys {
	return parentKeys("pseudogene", "pseudogenic_transcript")
}

func parentKeys(parent, label string) fieldKeys {
	return fieldKeys{
		Genes:       "Number of " + parent,
		Transcripts: "Number of " + label,
		Length:      "mean " + parent + " length (bp)",
		SingleExon:  "Number of single exon " + parent,
		Exons:       "mean exons per " + label,
	}
}
