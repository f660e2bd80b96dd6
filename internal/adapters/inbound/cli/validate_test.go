package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antoineschaller/cortex-skills/internal/adapters/inbound/cli"
	"github.com/antoineschaller/cortex-skills/internal/domain"
)

// compliantProject materializes a project that satisfies every default
// rule. No web-framework marker, so the e2e check stays inapplicable.
func compliantProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"lefthook.yml": `pre-commit:
  commands:
    lint:
      run: pnpm lint
    typecheck:
      run: pnpm typecheck
    format:
      run: pnpm format
pre-push:
  commands:
    test:
      run: pnpm test
    build:
      run: pnpm build
`,
		".claude/settings.json": "{}",
		"CLAUDE.md": `# Project

## Project Overview
x

## Architecture
x

## Development Workflow
x

## Conventions
x
`,
		"README.md":                        "# Readme",
		"docs/wip/plan.md":                 "wip",
		"vitest.config.ts":                 "export default { test: { coverage: { thresholds: { lines: 80 } } } }",
		"package.json":                     `{ "scripts": { "test": "vitest run", "test:coverage": "vitest run --coverage", "quality": "pnpm lint && pnpm test" } }`,
		"eslint.config.mjs":                "export default []",
		"tsconfig.json":                    `{ "compilerOptions": { "strict": true } }`,
		".prettierrc":                      "{}",
		".gitignore":                       "node_modules/\n.env.local\ndist/\ncoverage/\n",
		".env.local.example":               "API_KEY=\n",
		"src/index.ts":                     "export const hello = () => process.env.API_KEY",
		"supabase/migrations/001_init.sql": "CREATE TABLE IF NOT EXISTS users (id uuid PRIMARY KEY);",
	}
	for rel, content := range files {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0755))
		require.NoError(t, os.WriteFile(abs, []byte(content), 0644))
	}
	return root
}

func TestValidateCommand_JSON(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"validate", compliantProject(t), "--json"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `"overall_score"`)
	assert.Contains(t, buf.String(), `"grade": "A+"`)
	assert.Contains(t, buf.String(), `"categories"`)
}

func TestValidateCommand_DefaultTUI(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"validate", compliantProject(t)})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "cortex")
	assert.Contains(t, buf.String(), "100.0%")
}

func TestValidateCommand_NonCompliantReturnsExitError(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"validate", t.TempDir()})

	err := cmd.Execute()
	require.Error(t, err)

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, domain.ExitCritical, exitErr.Status)
}

func TestValidateCommand_OutputFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "report.json")
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"validate", compliantProject(t), "--json", "--output", outPath})

	require.NoError(t, cmd.Execute())
	assert.Empty(t, buf.String())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"overall_score"`)
}

func TestValidateCommand_BadRulesPathIsNotExitError(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"validate", compliantProject(t), "--rules", "/no/such/rules.yaml"})

	err := cmd.Execute()
	require.Error(t, err)

	var exitErr *cli.ExitError
	assert.False(t, errors.As(err, &exitErr))
}

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "cortex dev (none)")
}
