package indexes

import "time"

// Mutation is the Elasticsearch document for one retained MAF row. The
// columns that are not mapped to a field are kept in Other.
type Mutation struct {
	HugoSymbol            string `json:"hugoSymbol" mapstructure:"Hugo_Symbol"`
	VariantClassification string `json:"variantClassification" mapstructure:"Variant_Classification"`
	Case                  string `json:"case" mapstructure:"Case"`
	Stage                 string `json:"stage" mapstructure:"Stage"`

	Chromosome         string `json:"chromosome,omitempty" mapstructure:"Chromosome"`
	StartPosition      int64  `json:"startPosition,omitempty" mapstructure:"Start_Position"`
	EndPosition        int64  `json:"endPosition,omitempty" mapstructure:"End_Position"`
	ReferenceAllele    string `json:"referenceAllele,omitempty" mapstructure:"Reference_Allele"`
	TumorSeqAllele2    string `json:"tumorSeqAllele2,omitempty" mapstructure:"Tumor_Seq_Allele2"`
	TumorSampleBarcode string `json:"tumorSampleBarcode,omitempty" mapstructure:"Tumor_Sample_Barcode"`

	Other map[string]interface{} `json:"other,omitempty" mapstructure:",remain"`

	RunId       string    `json:"runId" mapstructure:"-"`
	CreatedTime time.Time `json:"createdTime" mapstructure:"-"`
}

var MAPPING_FIELDS_KEYWORD_IG256 = map[string]interface{}{
	"keyword": map[string]interface{}{
		"type":         "keyword",
		"ignore_above": 256,
	},
}
var MAPPING_TEXT = map[string]interface{}{"type": "text", "fields": MAPPING_FIELDS_KEYWORD_IG256}
var MAPPING_LONG = map[string]interface{}{"type": "long"}
var MAPPING_KEYWORD = map[string]interface{}{"type": "keyword"}
var MAPPING_DATE = map[string]interface{}{"type": "date"}

var MUTATION_MAPPINGS = map[string]interface{}{
	"mappings": map[string]interface{}{
		"properties": map[string]interface{}{
			"hugoSymbol":            MAPPING_TEXT,
			"variantClassification": MAPPING_KEYWORD,
			"case":                  MAPPING_KEYWORD,
			"stage":                 MAPPING_KEYWORD,
			"chromosome":            MAPPING_KEYWORD,
			"startPosition":         MAPPING_LONG,
			"endPosition":           MAPPING_LONG,
			"runId":                 MAPPING_KEYWORD,
			"createdTime":           MAPPING_DATE,
		},
	},
}
