package mafColumns

// Column names and layout of Mutation Annotation Format files
const (
	HugoSymbol            = "Hugo_Symbol"
	VariantClassification = "Variant_Classification"
	Chromosome            = "Chromosome"
	StartPosition         = "Start_Position"
	EndPosition           = "End_Position"
	ReferenceAllele       = "Reference_Allele"
	TumorSeqAllele2       = "Tumor_Seq_Allele2"
	TumorSampleBarcode    = "Tumor_Sample_Barcode"

	// stamped onto every retained row
	Case  = "Case"
	Stage = "Stage"

	Delimiter     = '\t'
	CommentPrefix = "#"
)

var RequiredColumns = []string{HugoSymbol, VariantClassification}
