package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antoineschaller/cortex-skills/internal/adapters/outbound/snapshot"
)

func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, rel := range paths {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0755))
		require.NoError(t, os.WriteFile(abs, []byte("x"), 0644))
	}
}

func TestScan_CollectsSortedRelativePaths(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "src/b.ts", "src/a.ts", "package.json", "docs/wip/plan.md")

	snap, err := snapshot.New().Scan(root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"docs/wip/plan.md",
		"package.json",
		"src/a.ts",
		"src/b.ts",
	}, snap.Files)
	assert.Equal(t, root, snap.RootPath)
}

func TestScan_SkipsVendorDirectories(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"src/index.ts",
		"node_modules/pkg/index.js",
		".git/HEAD",
		"dist/bundle.js",
		".next/cache/x",
		"vendor/lib.go",
	)

	snap, err := snapshot.New().Scan(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/index.ts"}, snap.Files)
}

func TestScan_MissingRoot(t *testing.T) {
	_, err := snapshot.New().Scan(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestScan_EmptyRoot(t *testing.T) {
	snap, err := snapshot.New().Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, snap.Files)
}
