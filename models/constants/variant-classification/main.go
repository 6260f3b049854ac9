package variantClassification

import (
	"gohan/maf/models/constants"
)

const (
	MissenseMutation     constants.VariantClassification = "Missense_Mutation"
	NonsenseMutation     constants.VariantClassification = "Nonsense_Mutation"
	FrameShiftIns        constants.VariantClassification = "Frame_Shift_Ins"
	FrameShiftDel        constants.VariantClassification = "Frame_Shift_Del"
	SpliceSite           constants.VariantClassification = "Splice_Site"
	TranslationStartSite constants.VariantClassification = "Translation_Start_Site"
	InFrameDel           constants.VariantClassification = "In_Frame_Del"
	InFrameIns           constants.VariantClassification = "In_Frame_Ins"
)

var CodingVariants = []constants.VariantClassification{
	MissenseMutation, NonsenseMutation,
	FrameShiftIns, FrameShiftDel, SpliceSite,
	TranslationStartSite, InFrameDel, InFrameIns,
}

// DefaultCodingVariants is the allow-list used when none is configured.
func DefaultCodingVariants() []string {
	out := make([]string, len(CodingVariants))
	for i, c := range CodingVariants {
		out[i] = string(c)
	}
	return out
}

type AllowList map[constants.VariantClassification]struct{}

func NewAllowList(classes []string) AllowList {
	al := make(AllowList, len(classes))
	for _, c := range classes {
		al[constants.VariantClassification(c)] = struct{}{}
	}
	return al
}

func (al AllowList) Contains(value string) bool {
	_, ok := al[constants.VariantClassification(value)]
	return ok
}
