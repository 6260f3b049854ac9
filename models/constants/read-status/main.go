package readStatus

import "gohan/maf/models/constants"

const (
	Loaded           constants.ReadStatus = "Loaded"
	MissingColumns   constants.ReadStatus = "MissingColumns"
	NoCodingVariants constants.ReadStatus = "NoCodingVariants"
	Unreadable       constants.ReadStatus = "Unreadable"
)
