package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/antoineschaller/cortex-skills/internal/domain"
)

// YAMLLoader implements domain.RulesLoader by reading a YAML rules
// document.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads and validates the rules document at path. An empty path
// selects the compiled-in default standards. A path that cannot be read
// or parsed is fatal: the run must fail before any evaluator executes,
// never degrade to a partial rule set.
func (l *YAMLLoader) Load(path string) (*domain.Rules, error) {
	if path == "" {
		return domain.DefaultRules(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	var r domain.Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules in %s: %w", path, err)
	}

	return &r, nil
}
