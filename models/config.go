package models

import (
	"fmt"
	"os"
	"strings"

	vc "gohan/maf/models/constants/variant-classification"

	"github.com/kelseyhightower/envconfig"
	yaml "gopkg.in/yaml.v2"
)

const (
	ModeRun   = "run"
	ModeServe = "serve"
)

type Config struct {
	Debug bool   `yaml:"debug" envconfig:"MAF_DEBUG"`
	Mode  string `yaml:"mode" envconfig:"MAF_MODE" default:"run"`

	Input struct {
		BaseFolder      string   `yaml:"baseFolder" envconfig:"MAF_BASE_FOLDER" default:"./grade_generalised"`
		Stages          []string `yaml:"stages" envconfig:"MAF_STAGES" default:"StageI,StageII,StageIII,StageIV"`
		SamplesPerStage int      `yaml:"samplesPerStage" envconfig:"MAF_SAMPLES_PER_STAGE" default:"4"`
		CodingVariants  []string `yaml:"codingVariants" envconfig:"MAF_CODING_VARIANTS"`
		FileExtension   string   `yaml:"fileExtension" envconfig:"MAF_FILE_EXTENSION" default:".maf"`
		Seed            int64    `yaml:"seed" envconfig:"MAF_SEED"`
	} `yaml:"input"`

	Output struct {
		Directory      string `yaml:"directory" envconfig:"MAF_OUTPUT_DIRECTORY" default:"."`
		Spreadsheet    string `yaml:"spreadsheet" envconfig:"MAF_OUTPUT_SPREADSHEET" default:"mutation_cnv_filtered.xlsx"`
		Chart          string `yaml:"chart" envconfig:"MAF_OUTPUT_CHART" default:"mutation_frequency_scatter_filtered.png"`
		Summary        string `yaml:"summary" envconfig:"MAF_OUTPUT_SUMMARY" default:"summary.json"`
		DisplayCommand string `yaml:"displayCommand" envconfig:"MAF_OUTPUT_DISPLAY_COMMAND"`
	} `yaml:"output"`

	Api struct {
		Port     string `yaml:"port" envconfig:"MAF_API_PORT" default:"5000"`
		Schedule string `yaml:"schedule" envconfig:"MAF_API_SCHEDULE"`
	} `yaml:"api"`

	Elasticsearch struct {
		Url         string `yaml:"url" envconfig:"MAF_ES_URL"`
		Username    string `yaml:"username" envconfig:"MAF_ES_USERNAME"`
		Password    string `yaml:"password" envconfig:"MAF_ES_PASSWORD"`
		IndexPrefix string `yaml:"indexPrefix" envconfig:"MAF_ES_INDEX_PREFIX" default:"mutations"`
	} `yaml:"elasticsearch"`
}

// LoadConfig gathers the environment variables and, when configFile is not
// empty, overlays the YAML document found there. Values present in the file
// win over the environment.
func LoadConfig(configFile string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Input.CodingVariants) == 0 {
		cfg.Input.CodingVariants = vc.DefaultCodingVariants()
	}

	if configFile != "" {
		if err := cfg.overlayFile(configFile); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) overlayFile(configFile string) error {
	f, err := os.Open(configFile)
	if err != nil {
		return fmt.Errorf("opening config file %s: %w", configFile, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decoding config file %s: %w", configFile, err)
	}
	return nil
}

// Validate trims the stage labels in place and checks the settings a run
// depends on.
func (cfg *Config) Validate() error {
	seen := make(map[string]bool, len(cfg.Input.Stages))
	for i, stage := range cfg.Input.Stages {
		stage = strings.TrimSpace(stage)
		if stage == "" {
			return fmt.Errorf("stage labels must not be blank")
		}
		if seen[strings.ToLower(stage)] {
			return fmt.Errorf("duplicate stage %q", stage)
		}
		seen[strings.ToLower(stage)] = true
		cfg.Input.Stages[i] = stage
	}

	switch {
	case cfg.Mode != ModeRun && cfg.Mode != ModeServe:
		return fmt.Errorf("unknown mode %q (expected %q or %q)", cfg.Mode, ModeRun, ModeServe)
	case len(cfg.Input.Stages) == 0:
		return fmt.Errorf("at least one stage is required")
	case cfg.Input.SamplesPerStage <= 0:
		return fmt.Errorf("samples per stage must be positive, got %d", cfg.Input.SamplesPerStage)
	case len(cfg.Input.CodingVariants) == 0:
		return fmt.Errorf("the coding variant allow-list is empty")
	case cfg.Input.FileExtension == "":
		return fmt.Errorf("a file extension is required")
	}
	return nil
}
