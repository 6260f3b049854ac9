package sampler

import (
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"gohan/maf/models"
	"gohan/maf/models/constants"
	mc "gohan/maf/models/constants/maf-columns"
	"gohan/maf/models/maf"
	"gohan/maf/services/locator"
	"gohan/maf/services/reader"
	"gohan/maf/utils"

	"github.com/go-gota/gota/series"
	"go.uber.org/zap"
)

type StageSampler struct {
	baseFolder      string
	samplesPerStage int
	extension       string
	reader          *reader.Reader
	rng             *rand.Rand
	logger          *zap.SugaredLogger
}

func NewStageSampler(cfg *models.Config, rdr *reader.Reader, rng *rand.Rand, logger *zap.SugaredLogger) *StageSampler {
	return &StageSampler{
		baseFolder:      cfg.Input.BaseFolder,
		samplesPerStage: cfg.Input.SamplesPerStage,
		extension:       cfg.Input.FileExtension,
		reader:          rdr,
		rng:             rng,
		logger:          logger,
	}
}

// Sample randomly selects up to samplesPerStage case directories of a stage
// and reads every MAF file found below them.
func (s *StageSampler) Sample(stage constants.Stage) maf.StageSample {
	stageDir := filepath.Join(s.baseFolder, string(stage))
	sample := maf.StageSample{
		Stage:     stage,
		Directory: stageDir,
	}

	if info, err := os.Stat(stageDir); err != nil || !info.IsDir() {
		s.logger.Warnf("Warning: %s does not exist.", stageDir)
		sample.Missing = true
		return sample
	}

	caseFolders, err := listCaseFolders(stageDir)
	if err != nil {
		s.logger.Warnw("Unable to list case directories", "stage", stage, "directory", stageDir, "error", err)
		return sample
	}
	sample.CandidateCases = len(caseFolders)

	if len(caseFolders) < s.samplesPerStage {
		s.logger.Warnf("Warning: Only %d samples found in %s, but %d required.", len(caseFolders), stageDir, s.samplesPerStage)
	}

	sample.SelectedCases = s.selectCases(caseFolders)

	for _, caseId := range sample.SelectedCases {
		casePath := filepath.Join(stageDir, caseId)
		for _, mafFile := range locator.FindMafFiles(casePath, s.extension, s.logger) {
			result := s.reader.Read(mafFile)
			sample.Results = append(sample.Results, result)
			if !result.HasData() {
				continue
			}

			n := result.Table.Nrow()
			stamped := result.Table.
				Mutate(series.New(utils.Repeat(caseId, n), series.String, mc.Case)).
				Mutate(series.New(utils.Repeat(string(stage), n), series.String, mc.Stage))
			if stamped.Err != nil {
				s.logger.Warnw("Unable to stamp case and stage", "path", mafFile, "error", stamped.Err)
				continue
			}

			sample.Tables = append(sample.Tables, maf.CaseTable{
				Case:  caseId,
				Stage: stage,
				Path:  mafFile,
				Table: stamped,
			})
		}
	}

	s.logger.Infow("Sampled stage",
		"stage", stage,
		"candidates", sample.CandidateCases,
		"selected", sample.SelectedCases,
		"files", len(sample.Results),
		"rows", sample.Rows())

	return sample
}

// selectCases draws min(samplesPerStage, len(candidates)) distinct cases,
// uniformly without replacement.
func (s *StageSampler) selectCases(candidates []string) []string {
	k := s.samplesPerStage
	if len(candidates) < k {
		k = len(candidates)
	}

	selected := make([]string, 0, k)
	for _, idx := range s.rng.Perm(len(candidates))[:k] {
		selected = append(selected, candidates[idx])
	}
	return selected
}

func listCaseFolders(stageDir string) ([]string, error) {
	entries, err := os.ReadDir(stageDir)
	if err != nil {
		return nil, err
	}

	var caseFolders []string
	for _, e := range entries {
		// follow symlinks to directories
		info, err := os.Stat(filepath.Join(stageDir, e.Name()))
		if err != nil || !info.IsDir() {
			continue
		}
		caseFolders = append(caseFolders, e.Name())
	}
	sort.Strings(caseFolders)
	return caseFolders, nil
}
