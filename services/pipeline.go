package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"gohan/maf/models"
	"gohan/maf/models/constants"
	st "gohan/maf/models/constants/stage"
	"gohan/maf/models/maf"
	"gohan/maf/services/aggregator"
	"gohan/maf/services/reader"
	"gohan/maf/services/sampler"
	"gohan/maf/services/visualizer"

	"github.com/Jeffail/gabs"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const NoDataMessage = "No coding mutation data collected! Ensure MAF files exist."

type (
	PipelineService struct {
		Config     *models.Config
		Stages     []constants.Stage
		Reader     *reader.Reader
		Exporter   *aggregator.Exporter
		Visualizer *visualizer.Visualizer
		Indexer    *IndexingService
		Logger     *zap.SugaredLogger
	}
)

// NewPipelineService wires the reader, exporter and visualizer from the
// configuration. indexer may be nil when Elasticsearch is not configured.
func NewPipelineService(cfg *models.Config, indexer *IndexingService, displayer visualizer.Displayer, logger *zap.SugaredLogger) *PipelineService {
	stages := st.FromStrings(cfg.Input.Stages)

	return &PipelineService{
		Config:     cfg,
		Stages:     stages,
		Reader:     reader.NewReader(cfg, logger),
		Exporter:   aggregator.NewExporter(stages, logger),
		Visualizer: visualizer.NewVisualizer(stages, displayer, logger),
		Indexer:    indexer,
		Logger:     logger,
	}
}

// Run samples every configured stage, combines the retained rows and
// writes the spreadsheet, chart and summary into outputDir. A seed of 0 is
// replaced by a clock-derived one; the seed used is part of the summary.
// Having no data at all is not an error: the summary is flagged NoData and
// nothing is written.
func (ps *PipelineService) Run(ctx context.Context, runId uuid.UUID, seed int64, outputDir string) (*maf.RunSummary, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	summary := &maf.RunSummary{
		Id:              runId,
		Seed:            seed,
		OutputDirectory: outputDir,
	}

	stageSampler := sampler.NewStageSampler(ps.Config, ps.Reader, rand.New(rand.NewSource(seed)), ps.Logger)

	var tables []maf.CaseTable
	for _, stage := range ps.Stages {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		sample := stageSampler.Sample(stage)
		summary.Stages = append(summary.Stages, maf.NewStageReport(sample))
		tables = append(tables, sample.Tables...)
	}

	combined, err := aggregator.Combine(tables)
	if errors.Is(err, aggregator.ErrNoData) {
		ps.Logger.Info(NoDataMessage)
		summary.NoData = true
		return summary, nil
	}
	if err != nil {
		return summary, err
	}
	summary.TotalRows = combined.Nrow()

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return summary, err
	}

	var (
		spreadsheetPath = filepath.Join(outputDir, ps.Config.Output.Spreadsheet)
		chartPath       = filepath.Join(outputDir, ps.Config.Output.Chart)
		counts          []maf.StageCount
		indexed         IndexStats
	)

	// the combined table is only read from here on
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if _, err := ps.Exporter.Export(combined, spreadsheetPath); err != nil {
			return fmt.Errorf("exporting spreadsheet: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		c, err := ps.Visualizer.Visualize(combined, chartPath)
		if err != nil {
			return fmt.Errorf("visualizing: %w", err)
		}
		counts = c
		return nil
	})
	if ps.Indexer != nil {
		g.Go(func() error {
			stats, err := ps.Indexer.IndexTable(gctx, runId.String(), combined)
			if err != nil {
				return fmt.Errorf("indexing: %w", err)
			}
			indexed = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return summary, err
	}

	summary.SpreadsheetPath = spreadsheetPath
	summary.ChartPath = chartPath
	summary.Counts = counts
	summary.IndexedRows = indexed.Indexed
	summary.IndexFailedRows = indexed.Failed

	if ps.Config.Output.Summary != "" {
		summaryPath := filepath.Join(outputDir, ps.Config.Output.Summary)
		if err := WriteSummary(summary, summaryPath); err != nil {
			return summary, err
		}
		summary.SummaryPath = summaryPath
	}

	ps.Logger.Infow("Run complete",
		"id", runId,
		"seed", seed,
		"rows", summary.TotalRows,
		"spreadsheet", spreadsheetPath,
		"chart", chartPath)

	return summary, nil
}

// WriteSummary stores a condensed JSON report of the run at path.
func WriteSummary(summary *maf.RunSummary, path string) error {
	report := gabs.New()
	report.Set(summary.Id.String(), "id")
	report.Set(summary.Seed, "seed")
	report.Set(summary.TotalRows, "totalRows")
	report.Set(summary.IndexedRows, "index", "indexed")
	report.Set(summary.IndexFailedRows, "index", "failed")
	report.Set(summary.SpreadsheetPath, "outputs", "spreadsheet")
	report.Set(summary.ChartPath, "outputs", "chart")
	report.Array("skipped")

	for _, stage := range summary.Stages {
		key := string(stage.Stage)
		report.Set(stage.Missing, "stages", key, "missing")
		report.Set(stage.CandidateCases, "stages", key, "candidateCases")
		report.Set(stage.SelectedCases, "stages", key, "selectedCases")
		report.Set(stage.Rows, "stages", key, "rows")

		for _, f := range stage.Files {
			if f.Reason == "" {
				continue
			}
			report.ArrayAppend(map[string]interface{}{
				"stage":  key,
				"path":   f.Path,
				"status": f.Status,
				"reason": f.Reason,
			}, "skipped")
		}
	}
	for _, c := range summary.Counts {
		report.Set(c.Count, "counts", string(c.Stage))
	}

	return os.WriteFile(path, report.BytesIndent("", "  "), 0644)
}

// ReadSummary loads a summary written by WriteSummary.
func ReadSummary(path string) (*gabs.Container, error) {
	return gabs.ParseJSONFile(path)
}
