package locator

import (
	"path/filepath"
	"testing"

	"gohan/maf/tests/common"

	"github.com/stretchr/testify/assert"
)

func TestFindMafFiles(t *testing.T) {
	logger, logs := common.NewObservedLogger()

	t.Run("should find maf files at any depth", func(t *testing.T) {
		dir := t.TempDir()
		common.WriteFile(t, filepath.Join(dir, "a.maf"), "")
		common.WriteFile(t, filepath.Join(dir, "x", "y", "z", "b.maf"), "")
		common.WriteFile(t, filepath.Join(dir, "x", "notes.txt"), "")
		common.WriteFile(t, filepath.Join(dir, "x", "c.maf.gz"), "")

		files := FindMafFiles(dir, ".maf", logger)

		assert.ElementsMatch(t, []string{
			filepath.Join(dir, "a.maf"),
			filepath.Join(dir, "x", "y", "z", "b.maf"),
		}, files)
	})

	t.Run("should honour another extension", func(t *testing.T) {
		dir := t.TempDir()
		common.WriteFile(t, filepath.Join(dir, "a.maf"), "")
		common.WriteFile(t, filepath.Join(dir, "b.tsv"), "")

		assert.Equal(t, []string{filepath.Join(dir, "b.tsv")}, FindMafFiles(dir, ".tsv", logger))
	})

	t.Run("should return nothing for an empty directory", func(t *testing.T) {
		assert.Empty(t, FindMafFiles(t.TempDir(), ".maf", logger))
	})

	t.Run("should log and return nothing for a missing directory", func(t *testing.T) {
		logs.TakeAll()

		files := FindMafFiles(filepath.Join(t.TempDir(), "missing"), ".maf", logger)

		assert.Empty(t, files)
		assert.Equal(t, 1, logs.FilterMessage("Skipping unreadable path").Len())
	})
}
