package common

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"gohan/maf/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	yaml "gopkg.in/yaml.v2"
)

var MafHeader = []string{
	"Hugo_Symbol", "Entrez_Gene_Id", "Chromosome", "Start_Position", "End_Position",
	"Variant_Classification", "Reference_Allele", "Tumor_Seq_Allele2", "Tumor_Sample_Barcode",
}

// InitConfig reads common's test.config.yml and points the input and
// output folders at baseFolder and outputDir.
func InitConfig(t *testing.T, baseFolder string, outputDir string) *models.Config {
	var cfg models.Config

	// get this file's path
	_, filename, _, _ := runtime.Caller(0)
	folderpath := path.Dir(filename)

	// retrieve common's test.config
	f, err := os.Open(fmt.Sprintf("%s/test.config.yml", folderpath))
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, yaml.NewDecoder(f).Decode(&cfg))

	cfg.Input.BaseFolder = baseFolder
	cfg.Output.Directory = outputDir
	return &cfg
}

func NewObservedLogger() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core).Sugar(), logs
}

// MafRow builds a row matching MafHeader.
func MafRow(symbol string, classification string, position int) []string {
	return []string{
		symbol, "0", "7", fmt.Sprint(position), fmt.Sprint(position),
		classification, "A", "T", "TCGA-00-0000",
	}
}

// MafRows builds n rows of the given classification.
func MafRows(n int, classification string) [][]string {
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = MafRow(fmt.Sprintf("GENE%d", i), classification, 1000+i)
	}
	return rows
}

// WriteMaf writes a tab-delimited file with a version comment line.
func WriteMaf(t *testing.T, filePath string, header []string, rows [][]string) {
	var b strings.Builder
	b.WriteString("#version 2.4\n")
	b.WriteString(strings.Join(header, "\t") + "\n")
	for _, r := range rows {
		b.WriteString(strings.Join(r, "\t") + "\n")
	}
	WriteFile(t, filePath, b.String())
}

func WriteFile(t *testing.T, filePath string, content string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
}

// BuildCases creates cases <stage>/case-<i>, each holding one MAF file with
// rowsPerCase coding rows, and returns the case names.
func BuildCases(t *testing.T, baseFolder string, stage string, cases int, rowsPerCase int) []string {
	names := make([]string, cases)
	for i := 0; i < cases; i++ {
		names[i] = fmt.Sprintf("case-%02d", i)
		WriteMaf(t,
			filepath.Join(baseFolder, stage, names[i], "somatic", names[i]+".maf"),
			MafHeader,
			MafRows(rowsPerCase, "Missense_Mutation"))
	}
	return names
}
