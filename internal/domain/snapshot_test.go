package domain_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antoineschaller/cortex-skills/internal/domain"
)

// newSnapshot materializes files on disk and builds the snapshot the way
// the scanner adapter would: slash-separated relative paths, sorted.
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

func TestSnapshot_FileExists(t *testing.T) {
	snap := newSnapshot(t, map[string]string{
		"package.json": "{}",
		"src/index.ts": "export {}",
	})

	assert.True(t, snap.FileExists("package.json"))
	assert.True(t, snap.FileExists("src/index.ts"))
	assert.False(t, snap.FileExists("missing.json"))
	assert.False(t, snap.FileExists("src"), "directories are not files")
}

func TestSnapshot_DirExists(t *testing.T) {
	snap := newSnapshot(t, map[string]string{"docs/wip/notes.md": "x"})

	assert.True(t, snap.DirExists("docs/wip"))
	assert.False(t, snap.DirExists("docs/wip/notes.md"))
	assert.False(t, snap.DirExists("docs/plans"))
}

func TestSnapshot_FirstExisting(t *testing.T) {
	snap := newSnapshot(t, map[string]string{"apps/web/vitest.config.ts": "x"})

	path, ok := snap.FirstExisting([]string{"vitest.config.ts", "apps/web/vitest.config.ts"})
	require.True(t, ok)
	assert.Equal(t, "apps/web/vitest.config.ts", path)

	_, ok = snap.FirstExisting([]string{"jest.config.js"})
	assert.False(t, ok)
}

func TestSnapshot_ReadFileMissing(t *testing.T) {
	snap := newSnapshot(t, map[string]string{"a.txt": "hello"})

	content, ok := snap.ReadFile("a.txt")
	require.True(t, ok)
	assert.Equal(t, "hello", content)

	_, ok = snap.ReadFile("b.txt")
	assert.False(t, ok)
}

func TestSnapshot_Contains(t *testing.T) {
	snap := newSnapshot(t, map[string]string{"lefthook.yml": "pre-commit:\n  lint:\n    run: pnpm lint\n"})

	assert.True(t, snap.Contains("lefthook.yml", "lint:"))
	assert.False(t, snap.Contains("lefthook.yml", "deploy:"))
	assert.False(t, snap.Contains("missing.yml", "lint:"))
}

func TestSnapshot_Under(t *testing.T) {
	snap := newSnapshot(t, map[string]string{
		"src/a.ts":      "x",
		"src/deep/b.ts": "x",
		"lib/c.ts":      "x",
		"srcfake/d.ts":  "x",
	})

	assert.Equal(t, []string{"src/a.ts", "src/deep/b.ts"}, snap.Under("src"))
	assert.Empty(t, snap.Under("missing"))
}

func TestSnapshot_GlobBraceSet(t *testing.T) {
	snap := newSnapshot(t, map[string]string{
		"src/a.ts":      "x",
		"src/b.tsx":     "x",
		"src/deep/c.js": "x",
		"src/style.css": "x",
		"src/README.md": "x",
	})

	got := snap.Glob("src", "**/*.{ts,tsx,js,jsx}")
	assert.Equal(t, []string{"src/a.ts", "src/b.tsx", "src/deep/c.js"}, got)
}

func TestSnapshot_GlobFlatPattern(t *testing.T) {
	snap := newSnapshot(t, map[string]string{
		"supabase/migrations/001_init.sql":    "x",
		"supabase/migrations/002_users.sql":   "x",
		"supabase/migrations/archive/old.sql": "x",
		"supabase/migrations/README.md":       "x",
	})

	got := snap.Glob("supabase/migrations", "*.sql")
	assert.Equal(t, []string{
		"supabase/migrations/001_init.sql",
		"supabase/migrations/002_users.sql",
	}, got)
}

func TestSnapshot_RootFiles(t *testing.T) {
	snap := newSnapshot(t, map[string]string{
		"README.md":   "x",
		"NOTES.md":    "x",
		"docs/wip.md": "x",
	})

	assert.Equal(t, []string{"NOTES.md", "README.md"}, snap.RootFiles())
}
