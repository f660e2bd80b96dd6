package snapshot

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/antoineschaller/cortex-skills/internal/domain"
)

var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"bin":          true,
	".next":        true,
}

// FileScanner implements domain.ProjectScanner by walking the
// filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan collects every file under projectPath into a sorted snapshot.
// Sorting makes evaluation order independent of the platform's directory
// listing order, so repeated runs over an unmodified tree produce
// identical reports.
func (s *FileScanner) Scan(projectPath string) (*domain.Snapshot, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(absPath); err != nil {
		return nil, err
	}

	snap := &domain.Snapshot{RootPath: absPath}

	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, err := filepath.Rel(absPath, path)
		if err != nil {
			return nil
		}
		snap.Files = append(snap.Files, filepath.ToSlash(relPath))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(snap.Files)
	return snap, nil
}
