package checks_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/antoineschaller/cortex-skills/internal/domain"
)

// newSnapshot materializes files under a temp root and builds the
// snapshot the way the scanner adapter would.
func newSnapshot(t *testing.T, files map[string]string) *domain.Snapshot {
	t.Helper()
	root := t.TempDir()

	paths := make([]string, 0, len(files))
	for rel, content := range files {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0755))
		require.NoError(t, os.WriteFile(abs, []byte(content), 0644))
		paths = append(paths, rel)
	}
	sort.Strings(paths)

	return &domain.Snapshot{RootPath: root, Files: paths}
}

// findOutcome returns the outcome with the given check name, failing the
// test if it is absent.
func findOutcome(t *testing.T, outcomes []domain.CheckOutcome, check string) domain.CheckOutcome {
	t.Helper()
	for _, o := range outcomes {
		if o.Check == check {
			return o
		}
	}
	t.Fatalf("outcome %q not found in %v", check, checkNames(outcomes))
	return domain.CheckOutcome{}
}

func checkNames(outcomes []domain.CheckOutcome) []string {
	names := make([]string, len(outcomes))
	for i, o := range outcomes {
		names[i] = o.Check
	}
	return names
}

func hasOutcome(outcomes []domain.CheckOutcome, check string) bool {
	for _, o := range outcomes {
		if o.Check == check {
			return true
		}
	}
	return false
}
