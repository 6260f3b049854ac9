package dtos

import (
	"gohan/maf/models/constants"
	"gohan/maf/models/maf"
	"time"
)

type StagesResponseDTO struct {
	Stages          []constants.Stage `json:"stages"`
	SamplesPerStage int               `json:"samplesPerStage"`
	CodingVariants  []string          `json:"codingVariants"`
	FileExtension   string            `json:"fileExtension"`
}

type CountsResponseDTO struct {
	RunId   string           `json:"runId"`
	Total   int              `json:"total"`
	Results []maf.StageCount `json:"results"`
}

// -- errors
type GeneralErrorResponseDto struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Errors    []GeneralError `json:"errors"`
}

type GeneralError struct {
	Message string `json:"message"`
}
