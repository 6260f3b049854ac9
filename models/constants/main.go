package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout the aggregator and it's
	associated services.
*/
type Stage string
type VariantClassification string
type ReadStatus string
