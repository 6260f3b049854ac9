package aggregator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gohan/maf/models/constants"
	mc "gohan/maf/models/constants/maf-columns"
	"gohan/maf/models/maf"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var ErrNoData = errors.New("no coding mutation data collected")

// Combine concatenates the case tables in the order given. The result holds
// the union of all columns; cells a table did not have are NA.
func Combine(tables []maf.CaseTable) (dataframe.DataFrame, error) {
	if len(tables) == 0 {
		return dataframe.DataFrame{}, ErrNoData
	}

	var combined dataframe.DataFrame
	for i, t := range tables {
		if i == 0 {
			combined = t.Table
		} else {
			combined = combined.Concat(t.Table)
		}
		if combined.Err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("combining %s: %w", t.Path, combined.Err)
		}
	}
	return combined, nil
}

type SheetSummary struct {
	Name string `json:"name"`
	Rows int    `json:"rows"`
}

type Exporter struct {
	stages []constants.Stage
	logger *zap.SugaredLogger
}

func NewExporter(stages []constants.Stage, logger *zap.SugaredLogger) *Exporter {
	return &Exporter{
		stages: stages,
		logger: logger,
	}
}

// Export writes the combined table to path with one sheet per stage
// present. Nothing is written for an empty table.
func (e *Exporter) Export(df dataframe.DataFrame, path string) ([]SheetSummary, error) {
	if df.Nrow() == 0 {
		e.logger.Info("No rows to export, skipping spreadsheet")
		return nil, ErrNoData
	}
	if !hasColumn(df, mc.Stage) {
		return nil, fmt.Errorf("exporting %s: combined table has no %s column", path, mc.Stage)
	}

	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	var summaries []SheetSummary

	for i, stage := range maf.OrderedStages(df.Col(mc.Stage).Records(), e.stages) {
		stageDf := df.Filter(dataframe.F{
			Colname:    mc.Stage,
			Comparator: series.Eq,
			Comparando: string(stage),
		})
		if stageDf.Err != nil {
			return nil, stageDf.Err
		}

		sheet := string(stage)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}

		if err := writeSheet(f, sheet, stageDf); err != nil {
			return nil, fmt.Errorf("writing sheet %s: %w", sheet, err)
		}

		e.logger.Infof("Saved %d records to sheet: %s", stageDf.Nrow(), sheet)
		summaries = append(summaries, SheetSummary{Name: sheet, Rows: stageDf.Nrow()})
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	if err := f.SaveAs(path); err != nil {
		return nil, fmt.Errorf("saving %s: %w", path, err)
	}

	return summaries, nil
}

func writeSheet(f *excelize.File, sheet string, df dataframe.DataFrame) error {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	names := df.Names()
	header := make([]interface{}, len(names))
	for i, n := range names {
		header[i] = n
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	columns := make([][]interface{}, len(names))
	for i, n := range names {
		columns[i] = columnCells(df.Col(n), n == mc.Case || n == mc.Stage)
	}

	for r := 0; r < df.Nrow(); r++ {
		row := make([]interface{}, len(names))
		for c := range names {
			row[c] = columns[c][r]
		}

		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}

	return sw.Flush()
}

// columnCells converts a column to spreadsheet cells. NA and empty values
// become blank cells; unless asText is set, a column whose other values all
// parse as integers (or floats) is written as numbers.
func columnCells(s series.Series, asText bool) []interface{} {
	var (
		n         = s.Len()
		values    = make([]string, n)
		present   = make([]bool, n)
		allInts   = true
		allFloats = true
		seen      = false
	)
	for i := 0; i < n; i++ {
		elem := s.Elem(i)
		if elem.IsNA() || elem.String() == "" {
			continue
		}
		values[i] = elem.String()
		present[i] = true
		seen = true

		if _, err := strconv.ParseInt(values[i], 10, 64); err != nil {
			allInts = false
		}
		if _, err := strconv.ParseFloat(values[i], 64); err != nil {
			allFloats = false
		}
	}

	cells := make([]interface{}, n)
	for i := 0; i < n; i++ {
		if !present[i] {
			continue
		}
		switch {
		case asText:
			cells[i] = values[i]
		case seen && allInts:
			v, _ := strconv.ParseInt(values[i], 10, 64)
			cells[i] = v
		case seen && allFloats:
			v, _ := strconv.ParseFloat(values[i], 64)
			cells[i] = v
		default:
			cells[i] = values[i]
		}
	}
	return cells
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}
