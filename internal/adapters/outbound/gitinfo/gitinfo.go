// Package gitinfo resolves repository metadata for report stamping. A
// compliance report carries the HEAD commit hash so a score can be tied
// to the exact tree it was computed from.
package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Adapter implements domain.GitInfo using go-git.
type Adapter struct{}

func New() *Adapter {
	return &Adapter{}
}

// IsGitRepo reports whether projectPath is the root of a git repository.
// Projects outside version control are validated all the same; they just
// get no commit stamp.
func (a *Adapter) IsGitRepo(projectPath string) bool {
	_, err := git.PlainOpen(projectPath)
	return err == nil
}

// CommitHash returns the full hash of the repository's HEAD commit.
func (a *Adapter) CommitHash(projectPath string) (string, error) {
	repo, err := git.PlainOpen(projectPath)
	if err != nil {
		return "", fmt.Errorf("opening repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
