package locator

import (
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// FindMafFiles walks directory at any depth and returns every file whose
// name ends with extension. A missing directory yields an empty list and
// unreadable subpaths are logged and skipped.
func FindMafFiles(directory string, extension string, logger *zap.SugaredLogger) []string {
	var mafFiles []string

	// errors are never returned from the callback so the walk always finishes
	_ = filepath.WalkDir(directory, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warnw("Skipping unreadable path", "path", path, "error", err)
			return nil
		}

		if d.IsDir() {
			return nil
		}

		if strings.HasSuffix(d.Name(), extension) {
			mafFiles = append(mafFiles, path)
		}
		return nil
	})

	return mafFiles
}
