package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should fall back on the defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)

		assert.Equal(t, ModeRun, cfg.Mode)
		assert.Equal(t, "./grade_generalised", cfg.Input.BaseFolder)
		assert.Equal(t, []string{"StageI", "StageII", "StageIII", "StageIV"}, cfg.Input.Stages)
		assert.Equal(t, 4, cfg.Input.SamplesPerStage)
		assert.Len(t, cfg.Input.CodingVariants, 8)
		assert.Contains(t, cfg.Input.CodingVariants, "Translation_Start_Site")
		assert.Equal(t, ".maf", cfg.Input.FileExtension)
		assert.Equal(t, "mutation_cnv_filtered.xlsx", cfg.Output.Spreadsheet)
		assert.Equal(t, "mutation_frequency_scatter_filtered.png", cfg.Output.Chart)
		assert.Equal(t, "mutations", cfg.Elasticsearch.IndexPrefix)
	})

	t.Run("should read the environment", func(t *testing.T) {
		t.Setenv("MAF_STAGES", "StageI,StageIV")
		t.Setenv("MAF_SAMPLES_PER_STAGE", "7")
		t.Setenv("MAF_SEED", "1234")

		cfg, err := LoadConfig("")
		require.NoError(t, err)

		assert.Equal(t, []string{"StageI", "StageIV"}, cfg.Input.Stages)
		assert.Equal(t, 7, cfg.Input.SamplesPerStage)
		assert.Equal(t, int64(1234), cfg.Input.Seed)
	})

	t.Run("should let the config file win over the environment", func(t *testing.T) {
		t.Setenv("MAF_SAMPLES_PER_STAGE", "7")

		cfg, err := LoadConfig("testdata/override.config.yml")
		require.NoError(t, err)

		assert.Equal(t, ModeServe, cfg.Mode)
		assert.Equal(t, "/data/grade_generalised", cfg.Input.BaseFolder)
		assert.Equal(t, 2, cfg.Input.SamplesPerStage)
		assert.Equal(t, "counts.png", cfg.Output.Chart)
		// untouched by the file
		assert.Equal(t, "mutation_cnv_filtered.xlsx", cfg.Output.Spreadsheet)
	})

	t.Run("should fail on a missing config file", func(t *testing.T) {
		_, err := LoadConfig("testdata/nope.yml")
		assert.Error(t, err)
	})

	t.Run("should read a coding allow-list from the environment", func(t *testing.T) {
		t.Setenv("MAF_CODING_VARIANTS", "Missense_Mutation,Silent")

		cfg, err := LoadConfig("")
		require.NoError(t, err)

		assert.Equal(t, []string{"Missense_Mutation", "Silent"}, cfg.Input.CodingVariants)
	})

	t.Run("should trim stage labels", func(t *testing.T) {
		t.Setenv("MAF_STAGES", " StageI , StageII")

		cfg, err := LoadConfig("")
		require.NoError(t, err)

		assert.Equal(t, []string{"StageI", "StageII"}, cfg.Input.Stages)
	})

	t.Run("should reject blank stage labels", func(t *testing.T) {
		t.Setenv("MAF_STAGES", " , ")

		_, err := LoadConfig("")
		assert.ErrorContains(t, err, "blank")
	})

	t.Run("should reject invalid values", func(t *testing.T) {
		t.Setenv("MAF_SAMPLES_PER_STAGE", "0")

		_, err := LoadConfig("")
		assert.ErrorContains(t, err, "samples per stage")
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		return cfg
	}

	t.Run("should reject an unknown mode", func(t *testing.T) {
		cfg := valid()
		cfg.Mode = "batch"
		assert.ErrorContains(t, cfg.Validate(), "unknown mode")
	})

	t.Run("should reject an empty stage list", func(t *testing.T) {
		cfg := valid()
		cfg.Input.Stages = nil
		assert.Error(t, cfg.Validate())
	})

	t.Run("should reject a blank stage label", func(t *testing.T) {
		cfg := valid()
		cfg.Input.Stages = []string{"StageI", "  "}
		assert.ErrorContains(t, cfg.Validate(), "blank")
	})

	t.Run("should reject duplicate stage labels", func(t *testing.T) {
		for _, stages := range [][]string{
			{"StageI", "StageI"},
			{"StageI", " StageI "},
			{"StageI", "stagei"},
		} {
			cfg := valid()
			cfg.Input.Stages = stages
			assert.ErrorContains(t, cfg.Validate(), "duplicate stage", stages)
		}
	})

	t.Run("should reject an empty allow-list", func(t *testing.T) {
		cfg := valid()
		cfg.Input.CodingVariants = []string{}
		assert.ErrorContains(t, cfg.Validate(), "allow-list")
	})

	t.Run("should reject an empty extension", func(t *testing.T) {
		cfg := valid()
		cfg.Input.FileExtension = ""
		assert.Error(t, cfg.Validate())
	})
}
