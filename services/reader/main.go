package reader

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gohan/maf/models"
	mc "gohan/maf/models/constants/maf-columns"
	rs "gohan/maf/models/constants/read-status"
	vc "gohan/maf/models/constants/variant-classification"
	"gohan/maf/models/maf"
	"gohan/maf/utils"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"go.uber.org/zap"
)

// MAF rows can carry long INFO-like annotation columns
const maxLineLength = 16 * 1024 * 1024

var ErrNoHeader = errors.New("no header row found")

type Reader struct {
	codingVariants vc.AllowList
	logger         *zap.SugaredLogger
}

func NewReader(cfg *models.Config, logger *zap.SugaredLogger) *Reader {
	return &Reader{
		codingVariants: vc.NewAllowList(cfg.Input.CodingVariants),
		logger:         logger,
	}
}

// Read parses one MAF file and keeps only its coding variants. Failures
// are reported through the result status, never as an error.
func (r *Reader) Read(path string) maf.ReadResult {
	result := maf.ReadResult{Path: path}

	header, rows, malformed, err := scanFile(path)
	result.MalformedRows = malformed
	if err != nil {
		r.logger.Warnf("Skipping %s due to error: %v", path, err)
		result.Status = rs.Unreadable
		result.Err = err
		return result
	}
	if malformed > 0 {
		r.logger.Warnw("Dropped malformed rows", "path", path, "rows", malformed)
	}

	if missing := utils.MissingStrings(mc.RequiredColumns, header); len(missing) > 0 {
		r.logger.Warnf("Skipping %s: Missing required columns %v", path, missing)
		result.Status = rs.MissingColumns
		result.MissingColumns = missing
		return result
	}

	if len(rows) == 0 {
		result.Status = rs.NoCodingVariants
		return result
	}

	records := make([][]string, 0, len(rows)+1)
	records = append(records, header)
	records = append(records, rows...)

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String))
	if df.Err != nil {
		r.logger.Warnf("Skipping %s due to error: %v", path, df.Err)
		result.Status = rs.Unreadable
		result.Err = df.Err
		return result
	}

	// Filter only coding variants
	filtered := df.Filter(dataframe.F{
		Colname:    mc.VariantClassification,
		Comparator: series.CompFunc,
		Comparando: func(el series.Element) bool {
			return r.codingVariants.Contains(el.String())
		},
	})
	if filtered.Err != nil {
		r.logger.Warnf("Skipping %s due to error: %v", path, filtered.Err)
		result.Status = rs.Unreadable
		result.Err = filtered.Err
		return result
	}

	if filtered.Nrow() == 0 {
		result.Status = rs.NoCodingVariants
		return result
	}

	result.Status = rs.Loaded
	result.Table = filtered
	return result
}

// scanFile splits a tab-delimited file into its header and rows. Comment
// and blank lines are skipped, rows wider than the header are dropped and
// counted, shorter rows are padded with empty cells.
func scanFile(path string) ([]string, [][]string, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, 0, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineLength)

	var (
		header    []string
		rows      [][]string
		malformed int
		lineNo    int
	)
	for scanner.Scan() {
		lineNo++
		line := utils.TrimLineEnding(scanner.Text())

		if !utf8.ValidString(line) {
			return nil, nil, malformed, fmt.Errorf("line %d is not valid UTF-8", lineNo)
		}
		if strings.HasPrefix(line, mc.CommentPrefix) || strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, string(mc.Delimiter))
		if header == nil {
			header = dedupeHeader(fields)
			continue
		}

		switch {
		case len(fields) > len(header):
			malformed++
			continue
		case len(fields) < len(header):
			padded := make([]string, len(header))
			copy(padded, fields)
			fields = padded
		}
		rows = append(rows, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, malformed, err
	}

	if header == nil {
		return nil, nil, malformed, ErrNoHeader
	}
	return header, rows, malformed, nil
}

// dedupeHeader renames repeated column names to name.1, name.2, ... The first
// occurrence keeps its name so required columns resolve to it.
func dedupeHeader(header []string) []string {
	taken := make(map[string]bool, len(header))
	for _, name := range header {
		taken[name] = true
	}

	out := make([]string, len(header))
	used := make(map[string]bool, len(header))
	for i, name := range header {
		if !used[name] {
			out[i] = name
			used[name] = true
			continue
		}
		for n := 1; ; n++ {
			candidate := fmt.Sprintf("%s.%d", name, n)
			if !taken[candidate] {
				out[i] = candidate
				taken[candidate] = true
				used[candidate] = true
				break
			}
		}
	}
	return out
}
