package domain

import "fmt"

// Rules is the full rule configuration for a validation run. It is
// loaded once, validated structurally, and never mutated afterwards.
// All check parameters live here as data so new checks can be tuned
// without touching evaluator or aggregation code.
type Rules struct {
	Version        int                `yaml:"version"         json:"version"`
	Categories     map[string]int     `yaml:"categories"      json:"categories"`
	Grading        Grading            `yaml:"grading"         json:"grading"`
	ExitThresholds ExitThresholds     `yaml:"exit_thresholds" json:"exit_thresholds"`
	Hooks          HooksRules         `yaml:"hooks"           json:"hooks"`
	Documentation  DocumentationRules `yaml:"documentation"   json:"documentation"`
	Testing        TestingRules       `yaml:"testing"         json:"testing"`
	QualityGates   QualityGatesRules  `yaml:"quality_gates"   json:"quality_gates"`
	Git            GitRules           `yaml:"git"             json:"git"`
	Security       SecurityRules      `yaml:"security"        json:"security"`
	Naming         NamingRules        `yaml:"naming_conventions" json:"naming_conventions"`
	Migrations     MigrationsRules    `yaml:"migrations"      json:"migrations"`
}

// GradeBand maps a grade label to the minimum overall percentage that
// earns it.
type GradeBand struct {
	Grade       string  `yaml:"grade"       json:"grade"`
	MinPercent  float64 `yaml:"min_percent" json:"min_percent"`
	Description string  `yaml:"description" json:"description,omitempty"`
}

// Grading is an explicit ordered sequence of grade bands plus the label
// used when no band matches. Band order is the matching order: the first
// band whose threshold the score meets wins. Validate refuses a table
// whose thresholds are not strictly descending, so a misordered
// configuration fails the run instead of silently assigning wrong
// grades.
type Grading struct {
	Bands   []GradeBand `yaml:"bands"   json:"bands"`
	Default GradeBand   `yaml:"default" json:"default"`
}

// GradeFor selects the first band (in declaration order) whose minimum
// threshold the score meets, falling back to the default band.
func (g Grading) GradeFor(score float64) GradeBand {
	for _, b := range g.Bands {
		if score >= b.MinPercent {
			return b
		}
	}
	return g.Default
}

// ExitThresholds configure the tri-state exit status. They are
// independent of the grade-band table and must not be assumed to match
// any single grade's boundary.
type ExitThresholds struct {
	FullCompliance float64 `yaml:"full_compliance" json:"full_compliance"`
	Warning        float64 `yaml:"warning"         json:"warning"`
}

// StatusFor maps an overall score to the process exit status.
func (t ExitThresholds) StatusFor(score float64) ExitStatus {
	switch {
	case score >= t.FullCompliance:
		return ExitCompliant
	case score >= t.Warning:
		return ExitWarnings
	default:
		return ExitCritical
	}
}

// HooksRules parameterize the git-hook configuration checks.
type HooksRules struct {
	Enabled            bool     `yaml:"enabled"              json:"enabled"`
	ConfigFiles        []string `yaml:"config_files"         json:"config_files"`
	PreCommitCommands  []string `yaml:"pre_commit_commands"  json:"pre_commit_commands"`
	PrePushCommands    []string `yaml:"pre_push_commands"    json:"pre_push_commands"`
	EditorSettingsFile string   `yaml:"editor_settings_file" json:"editor_settings_file"`
}

// DocumentationRules parameterize the documentation checks.
type DocumentationRules struct {
	Enabled          bool     `yaml:"enabled"            json:"enabled"`
	InstructionsFile string   `yaml:"instructions_file"  json:"instructions_file"`
	RequiredSections []string `yaml:"required_sections"  json:"required_sections"`
	WIPDirectory     string   `yaml:"wip_directory"      json:"wip_directory"`
	AllowedRootFiles []string `yaml:"allowed_root_files" json:"allowed_root_files"`
}

// TestingRules parameterize the test tooling checks.
type TestingRules struct {
	Enabled bool        `yaml:"enabled" json:"enabled"`
	Runner  RunnerRules `yaml:"runner"  json:"runner"`
	E2E     E2ERules    `yaml:"e2e"     json:"e2e"`
}

// RunnerRules describe the expected unit-test runner configuration.
// ConfigFiles lists acceptable locations; the first existing one wins
// (monorepo layouts keep it under an app directory).
type RunnerRules struct {
	Required        bool     `yaml:"required"         json:"required"`
	ConfigFiles     []string `yaml:"config_files"     json:"config_files"`
	CoverageMarker  string   `yaml:"coverage_marker"  json:"coverage_marker"`
	ManifestFile    string   `yaml:"manifest_file"    json:"manifest_file"`
	RequiredScripts []string `yaml:"required_scripts" json:"required_scripts"`
}

// E2ERules describe end-to-end test expectations. The check only applies
// when one of the WebMarkers files exists; otherwise no outcome is
// emitted at all.
type E2ERules struct {
	RequiredForWeb bool     `yaml:"required_for_web" json:"required_for_web"`
	ConfigFile     string   `yaml:"config_file"      json:"config_file"`
	WebMarkers     []string `yaml:"web_markers"      json:"web_markers"`
}

// QualityGatesRules parameterize linting, type checking and formatting
// checks.
type QualityGatesRules struct {
	Enabled       bool            `yaml:"enabled"        json:"enabled"`
	Linter        ToolRule        `yaml:"linter"         json:"linter"`
	TypeChecker   TypeCheckerRule `yaml:"type_checker"   json:"type_checker"`
	Formatter     ToolRule        `yaml:"formatter"      json:"formatter"`
	QualityScript ScriptRule      `yaml:"quality_script" json:"quality_script"`
}

// ToolRule is a generic existence rule for a tool's configuration file.
type ToolRule struct {
	Required    bool     `yaml:"required"     json:"required"`
	ConfigFiles []string `yaml:"config_files" json:"config_files"`
}

// TypeCheckerRule adds a strict-mode containment check on top of the
// config-file existence check.
type TypeCheckerRule struct {
	Required     bool   `yaml:"required"      json:"required"`
	ConfigFile   string `yaml:"config_file"   json:"config_file"`
	StrictMarker string `yaml:"strict_marker" json:"strict_marker"`
}

// ScriptRule requires a named script entry inside the project manifest.
type ScriptRule struct {
	Required     bool   `yaml:"required"      json:"required"`
	Name         string `yaml:"name"          json:"name"`
	ManifestFile string `yaml:"manifest_file" json:"manifest_file"`
}

// GitRules parameterize the git hygiene checks.
type GitRules struct {
	Enabled     bool     `yaml:"enabled"      json:"enabled"`
	IgnoreFile  string   `yaml:"ignore_file"  json:"ignore_file"`
	MustInclude []string `yaml:"must_include" json:"must_include"`
}

// SecretPattern is a vendor-specific credential prefix that must never
// appear verbatim in source files.
type SecretPattern struct {
	Prefix string `yaml:"prefix" json:"prefix"`
	Name   string `yaml:"name"   json:"name"`
}

// SecurityRules parameterize the secret scan and env-file checks.
type SecurityRules struct {
	Enabled        bool            `yaml:"enabled"          json:"enabled"`
	EnvExampleFile string          `yaml:"env_example_file" json:"env_example_file"`
	SecretPatterns []SecretPattern `yaml:"secret_patterns"  json:"secret_patterns"`
	SourceDirs     []string        `yaml:"source_dirs"      json:"source_dirs"`
	SourceGlob     string          `yaml:"source_glob"      json:"source_glob"`
}

// NamingRules parameterize the filename convention scan. Suffixes are
// matched against the filename stem; words are matched against the
// stem's CamelCase components.
type NamingRules struct {
	Enabled           bool     `yaml:"enabled"            json:"enabled"`
	ForbiddenSuffixes []string `yaml:"forbidden_suffixes" json:"forbidden_suffixes"`
	ForbiddenWords    []string `yaml:"forbidden_words"    json:"forbidden_words"`
	SourceDirs        []string `yaml:"source_dirs"        json:"source_dirs"`
}

// IdempotencyRule flags a migration file that contains Pattern without
// the corresponding Guard.
type IdempotencyRule struct {
	Pattern     string `yaml:"pattern"     json:"pattern"`
	Guard       string `yaml:"guard"       json:"guard"`
	Description string `yaml:"description" json:"description"`
}

// MigrationsRules parameterize the SQL migration idempotency checks.
// Directories lists acceptable migration locations; the first existing
// one is scanned.
type MigrationsRules struct {
	Enabled     bool              `yaml:"enabled"     json:"enabled"`
	Directories []string          `yaml:"directories" json:"directories"`
	Rules       []IdempotencyRule `yaml:"rules"       json:"rules"`
}

// enabledByCategory maps each category name to its enabled flag.
func (r *Rules) enabledByCategory() map[string]bool {
	return map[string]bool{
		CategoryHooks:         r.Hooks.Enabled,
		CategoryDocumentation: r.Documentation.Enabled,
		CategoryTesting:       r.Testing.Enabled,
		CategoryQualityGates:  r.QualityGates.Enabled,
		CategoryGit:           r.Git.Enabled,
		CategorySecurity:      r.Security.Enabled,
		CategoryNaming:        r.Naming.Enabled,
		CategoryMigrations:    r.Migrations.Enabled,
	}
}

// Validate checks the rule configuration structurally. Any error here is
// fatal for the whole run: validation happens before the first evaluator
// executes, and the engine never substitutes a guessed value for a
// missing one.
func (r *Rules) Validate() error {
	for name := range r.Categories {
		if !isValidCategory(name) {
			return fmt.Errorf("unknown category %q in weights", name)
		}
	}
	for name, w := range r.Categories {
		if w < 0 {
			return fmt.Errorf("category %q has negative weight %d", name, w)
		}
	}

	// Every enabled category must carry an explicit weight. Weight 0 is
	// legal (the category is tallied but contributes nothing); a missing
	// entry is a configuration error, never a silent default.
	for name, enabled := range r.enabledByCategory() {
		if !enabled {
			continue
		}
		if _, ok := r.Categories[name]; !ok {
			return fmt.Errorf("enabled category %q has no weight entry", name)
		}
	}

	if len(r.Grading.Bands) == 0 {
		return fmt.Errorf("grading table has no bands")
	}
	if r.Grading.Default.Grade == "" {
		return fmt.Errorf("grading table has no default grade")
	}
	prev := 101.0
	for i, b := range r.Grading.Bands {
		if b.Grade == "" {
			return fmt.Errorf("grading band %d has no grade label", i)
		}
		if b.MinPercent < 0 || b.MinPercent > 100 {
			return fmt.Errorf("grading band %q has min_percent %.1f outside [0,100]", b.Grade, b.MinPercent)
		}
		if b.MinPercent >= prev {
			return fmt.Errorf("grading bands must be declared in descending threshold order: %q (%.1f) follows %.1f", b.Grade, b.MinPercent, prev)
		}
		prev = b.MinPercent
	}

	// Zero-valued thresholds would make every run exit 0. A document
	// that omits exit_thresholds is rejected, never silently defaulted.
	if r.ExitThresholds.FullCompliance <= 0 {
		return fmt.Errorf("exit_thresholds.full_compliance must be set (got %.1f)", r.ExitThresholds.FullCompliance)
	}
	if r.ExitThresholds.FullCompliance < r.ExitThresholds.Warning {
		return fmt.Errorf("exit_thresholds.full_compliance (%.1f) below exit_thresholds.warning (%.1f)",
			r.ExitThresholds.FullCompliance, r.ExitThresholds.Warning)
	}

	return nil
}

func isValidCategory(name string) bool {
	for _, c := range ValidCategories {
		if c == name {
			return true
		}
	}
	return false
}

// DefaultRules returns the compiled-in standards, mirroring the stock
// rule set shipped with the engineering-standards skill.
func DefaultRules() *Rules {
	return &Rules{
		Version: 1,
		Categories: map[string]int{
			CategoryHooks:         10,
			CategoryDocumentation: 15,
			CategoryTesting:       20,
			CategoryQualityGates:  20,
			CategoryGit:           10,
			CategorySecurity:      15,
			CategoryNaming:        5,
			CategoryMigrations:    5,
		},
		Grading: Grading{
			Bands: []GradeBand{
				{Grade: "A+", MinPercent: 95, Description: "Excellent - full compliance"},
				{Grade: "A", MinPercent: 90, Description: "Great - minor gaps only"},
				{Grade: "B", MinPercent: 80, Description: "Good - some standards missing"},
				{Grade: "C", MinPercent: 70, Description: "Fair - several standards missing"},
				{Grade: "D", MinPercent: 60, Description: "Poor - significant gaps"},
			},
			Default: GradeBand{Grade: "F", Description: "Failing - critical issues present"},
		},
		ExitThresholds: ExitThresholds{FullCompliance: 95, Warning: 70},
		Hooks: HooksRules{
			Enabled:            true,
			ConfigFiles:        []string{".lefthook.yml", "lefthook.yml"},
			PreCommitCommands:  []string{"lint", "typecheck", "format"},
			PrePushCommands:    []string{"test", "build"},
			EditorSettingsFile: ".claude/settings.json",
		},
		Documentation: DocumentationRules{
			Enabled:          true,
			InstructionsFile: "CLAUDE.md",
			RequiredSections: []string{"Project Overview", "Architecture", "Development Workflow", "Conventions"},
			WIPDirectory:     "docs/wip",
			AllowedRootFiles: []string{"README.md", "CLAUDE.md", "CHANGELOG.md", "CONTRIBUTING.md", "LICENSE.md", "SECURITY.md"},
		},
		Testing: TestingRules{
			Enabled: true,
			Runner: RunnerRules{
				Required:        true,
				ConfigFiles:     []string{"vitest.config.ts", "vitest.config.js", "apps/web/vitest.config.ts", "apps/web/vitest.config.js"},
				CoverageMarker:  "thresholds",
				ManifestFile:    "package.json",
				RequiredScripts: []string{"test", "test:coverage"},
			},
			E2E: E2ERules{
				RequiredForWeb: true,
				ConfigFile:     "playwright.config.ts",
				WebMarkers:     []string{"next.config.js", "next.config.mjs", "next.config.ts"},
			},
		},
		QualityGates: QualityGatesRules{
			Enabled: true,
			Linter: ToolRule{
				Required: true,
				ConfigFiles: []string{
					"eslint.config.mjs", ".eslintrc.json", ".eslintrc.js",
					"eslint.config.js", "apps/web/eslint.config.mjs", "apps/web/.eslintrc.json",
				},
			},
			TypeChecker: TypeCheckerRule{
				Required:     true,
				ConfigFile:   "tsconfig.json",
				StrictMarker: `"strict": true`,
			},
			Formatter: ToolRule{
				Required:    true,
				ConfigFiles: []string{".prettierrc", ".prettierrc.json", "prettier.config.js"},
			},
			QualityScript: ScriptRule{
				Required:     true,
				Name:         "quality",
				ManifestFile: "package.json",
			},
		},
		Git: GitRules{
			Enabled:     true,
			IgnoreFile:  ".gitignore",
			MustInclude: []string{"node_modules/", ".env.local", "dist/", "coverage/"},
		},
		Security: SecurityRules{
			Enabled:        true,
			EnvExampleFile: ".env.local.example",
			SecretPatterns: []SecretPattern{
				{Prefix: "sk_live_", Name: "Stripe live secret key"},
				{Prefix: "pk_live_", Name: "Stripe live publishable key"},
				{Prefix: "AKIA", Name: "AWS access key"},
			},
			SourceDirs: []string{"app", "src", "lib", "pages", "components"},
			SourceGlob: "**/*.{ts,tsx,js,jsx}",
		},
		Naming: NamingRules{
			Enabled:           true,
			ForbiddenSuffixes: []string{"-v2", "-v3", "-new", "-old", "-backup", "-final", "-copy", "-enhanced", "_v2", "_new", "_old", "_backup", "_final", "_copy"},
			ForbiddenWords:    []string{"V2", "V3", "New", "Old", "Backup", "Final", "Copy", "Enhanced"},
			SourceDirs:        []string{"app", "src", "lib", "pages", "components", "packages"},
		},
		Migrations: MigrationsRules{
			Enabled:     true,
			Directories: []string{"supabase/migrations", "apps/web/supabase/migrations"},
			Rules: []IdempotencyRule{
				{Pattern: "CREATE POLICY", Guard: "DO $$", Description: "CREATE POLICY without DO $$ block"},
				{Pattern: "CREATE TRIGGER", Guard: "DROP TRIGGER IF EXISTS", Description: "CREATE TRIGGER without DROP IF EXISTS"},
				{Pattern: "ADD CONSTRAINT", Guard: "DO $$", Description: "ADD CONSTRAINT without idempotency check"},
			},
		},
	}
}
