package maf

import (
	"gohan/maf/models/constants"
	rs "gohan/maf/models/constants/read-status"

	"github.com/go-gota/gota/dataframe"
	"github.com/google/uuid"
)

// ReadResult is the outcome of reading one MAF file. Only a Loaded result
// carries a table; every other status explains why the file contributed
// nothing.
type ReadResult struct {
	Path           string
	Status         constants.ReadStatus
	Table          dataframe.DataFrame
	MissingColumns []string
	MalformedRows  int
	Err            error
}

func (r ReadResult) HasData() bool {
	return r.Status == rs.Loaded && r.Table.Nrow() > 0
}

func (r ReadResult) Reason() string {
	switch r.Status {
	case rs.Loaded:
		return ""
	case rs.MissingColumns:
		return "missing required columns"
	case rs.NoCodingVariants:
		return "no coding variants"
	default:
		if r.Err != nil {
			return r.Err.Error()
		}
		return "unreadable"
	}
}

// CaseTable is a loaded file stamped with its case and stage.
type CaseTable struct {
	Case  string
	Stage constants.Stage
	Path  string
	Table dataframe.DataFrame
}

type StageSample struct {
	Stage          constants.Stage
	Directory      string
	Missing        bool
	CandidateCases int
	SelectedCases  []string
	Results        []ReadResult
	Tables         []CaseTable
}

func (s StageSample) Rows() int {
	total := 0
	for _, t := range s.Tables {
		total += t.Table.Nrow()
	}
	return total
}

type StageCount struct {
	Stage constants.Stage `json:"stage"`
	Count int             `json:"count"`
}

type FileReport struct {
	Path   string               `json:"path"`
	Status constants.ReadStatus `json:"status"`
	Reason string               `json:"reason,omitempty"`
	Rows   int                  `json:"rows"`
}

type StageReport struct {
	Stage          constants.Stage `json:"stage"`
	Missing        bool            `json:"missing"`
	CandidateCases int             `json:"candidateCases"`
	SelectedCases  []string        `json:"selectedCases"`
	Rows           int             `json:"rows"`
	Files          []FileReport    `json:"files"`
}

type RunSummary struct {
	Id              uuid.UUID     `json:"id"`
	Seed            int64         `json:"seed"`
	NoData          bool          `json:"noData"`
	TotalRows       int           `json:"totalRows"`
	Stages          []StageReport `json:"stages"`
	Counts          []StageCount  `json:"counts"`
	OutputDirectory string        `json:"outputDirectory"`
	SpreadsheetPath string        `json:"spreadsheetPath,omitempty"`
	ChartPath       string        `json:"chartPath,omitempty"`
	SummaryPath     string        `json:"summaryPath,omitempty"`
	IndexedRows     uint64        `json:"indexedRows"`
	IndexFailedRows uint64        `json:"indexFailedRows"`
}

func NewStageReport(sample StageSample) StageReport {
	report := StageReport{
		Stage:          sample.Stage,
		Missing:        sample.Missing,
		CandidateCases: sample.CandidateCases,
		SelectedCases:  sample.SelectedCases,
		Rows:           sample.Rows(),
		Files:          make([]FileReport, 0, len(sample.Results)),
	}
	for _, r := range sample.Results {
		fr := FileReport{
			Path:   r.Path,
			Status: r.Status,
			Reason: r.Reason(),
		}
		if r.HasData() {
			fr.Rows = r.Table.Nrow()
		}
		report.Files = append(report.Files, fr)
	}
	return report
}
