package domain

// ProjectScanner builds a project snapshot by walking the filesystem.
type ProjectScanner interface {
	Scan(projectPath string) (*Snapshot, error)
}

// RulesLoader loads and validates a rule configuration. An empty path
// selects the compiled-in defaults; an explicit path that cannot be read
// or parsed is a fatal error.
type RulesLoader interface {
	Load(path string) (*Rules, error)
}

// GitInfo exposes repository metadata for report stamping. IsGitRepo
// gates the commit lookup: projects outside version control are valid
// inputs and simply carry no commit stamp.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}
