package checks

import (
	"fmt"
	"path"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/antoineschaller/cortex-skills/internal/domain"
)

// EvaluateNaming scans conventional source directories for filenames
// carrying version or enhancement markers, either as a literal stem
// suffix ("button-v2.tsx") or as a CamelCase word ("EnhancedButtonV2.tsx").
// Unlike the secret scan, this one runs to completion so the listing of
// offenders is complete.
func EvaluateNaming(snap *domain.Snapshot, r domain.NamingRules) []domain.CheckOutcome {
	if !r.Enabled {
		return nil
	}

	forbiddenWords := make(map[string]bool, len(r.ForbiddenWords))
	for _, w := range r.ForbiddenWords {
		forbiddenWords[w] = true
	}

	var offenders []string
	for _, dir := range r.SourceDirs {
		for _, file := range snap.Under(dir) {
			stem := fileStem(file)
			if hasForbiddenSuffix(stem, r.ForbiddenSuffixes) || hasForbiddenWord(stem, forbiddenWords) {
				offenders = append(offenders, file)
			}
		}
	}

	details := "Clean"
	if len(offenders) > 0 {
		details = fmt.Sprintf("Found %d files: %s", len(offenders), listWithMore(offenders, 3))
	}
	return []domain.CheckOutcome{{
		Category: domain.CategoryNaming,
		Check:    "no_version_suffixes",
		Passed:   len(offenders) == 0,
		Severity: domain.SeverityCritical,
		Message:  "No version/enhancement suffixes in filenames",
		Details:  details,
	}}
}

func fileStem(file string) string {
	base := path.Base(file)
	return strings.TrimSuffix(base, path.Ext(base))
}

func hasForbiddenSuffix(stem string, suffixes []string) bool {
	for _, s := range suffixes {
		if s != "" && strings.HasSuffix(stem, s) {
			return true
		}
	}
	return false
}

func hasForbiddenWord(stem string, words map[string]bool) bool {
	for _, w := range camelcase.Split(stem) {
		if words[w] {
			return true
		}
	}
	return false
}
