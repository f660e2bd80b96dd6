// Package checks contains one evaluator per compliance category. Every
// evaluator is a pure function over (snapshot, rule parameters) that
// returns zero or more severity-tagged outcomes. Absence of a file or
// feature is a valid failing outcome, never an error; a disabled
// category returns nil and stays out of the report entirely.
package checks

import (
	"fmt"
	"strings"
)

// slug normalizes a free-form name into a stable check-name fragment.
func slug(s string) string {
	s = strings.ToLower(s)
	replacer := strings.NewReplacer(" ", "_", "/", "_", ".", "_", ":", "_", "-", "_")
	return replacer.Replace(s)
}

// listWithMore renders up to max items, appending a count suffix for the
// rest.
func listWithMore(items []string, max int) string {
	if len(items) <= max {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(items[:max], ", "), len(items)-max)
}

func foundOr(found bool, path string) string {
	if found {
		return "Found: " + path
	}
	return "Not found"
}

func presentOr(present bool) string {
	if present {
		return "Present"
	}
	return "Missing"
}
