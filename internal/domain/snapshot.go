package domain

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Snapshot is the read-only view of one project tree that all evaluators
// work against. Files holds every relative path (slash separated) in
// lexicographic order, so scans are deterministic regardless of the
// platform's directory listing order.
type Snapshot struct {
	RootPath string
	Files    []string
}

// FileExists reports whether rel names an existing regular file.
func (s *Snapshot) FileExists(rel string) bool {
	info, err := os.Stat(s.abs(rel))
	return err == nil && !info.IsDir()
}

// DirExists reports whether rel names an existing directory.
func (s *Snapshot) DirExists(rel string) bool {
	info, err := os.Stat(s.abs(rel))
	return err == nil && info.IsDir()
}

// FirstExisting returns the first path in candidates that exists as a
// file. Supporting several candidate paths covers both single-project
// and monorepo layouts.
func (s *Snapshot) FirstExisting(candidates []string) (string, bool) {
	for _, p := range candidates {
		if s.FileExists(p) {
			return p, true
		}
	}
	return "", false
}

// FirstExistingDir returns the first path in candidates that exists as a
// directory.
func (s *Snapshot) FirstExistingDir(candidates []string) (string, bool) {
	for _, p := range candidates {
		if s.DirExists(p) {
			return p, true
		}
	}
	return "", false
}

// ReadFile returns the file's content. A missing or unreadable file
// yields ok=false and never an error: during a scan such files are
// simply skipped. Undecodable bytes are passed through untouched.
func (s *Snapshot) ReadFile(rel string) (string, bool) {
	data, err := os.ReadFile(s.abs(rel))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Contains reports whether the file exists and contains substr verbatim.
func (s *Snapshot) Contains(rel, substr string) bool {
	content, ok := s.ReadFile(rel)
	return ok && strings.Contains(content, substr)
}

// Under returns all snapshot files below dir, in lexicographic order.
func (s *Snapshot) Under(dir string) []string {
	prefix := strings.TrimSuffix(dir, "/") + "/"
	var out []string
	for _, f := range s.Files {
		if strings.HasPrefix(f, prefix) {
			out = append(out, f)
		}
	}
	return out
}

// Glob returns the files below dir whose path relative to dir matches
// pattern (doublestar syntax, brace sets supported).
func (s *Snapshot) Glob(dir, pattern string) []string {
	prefix := strings.TrimSuffix(dir, "/") + "/"
	var out []string
	for _, f := range s.Under(dir) {
		rel := strings.TrimPrefix(f, prefix)
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			out = append(out, f)
		}
	}
	return out
}

// RootFiles returns the files that live directly in the project root.
func (s *Snapshot) RootFiles() []string {
	var out []string
	for _, f := range s.Files {
		if !strings.Contains(f, "/") {
			out = append(out, f)
		}
	}
	return out
}

func (s *Snapshot) abs(rel string) string {
	return filepath.Join(s.RootPath, filepath.FromSlash(rel))
}
