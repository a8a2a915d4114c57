package data

import "github.com/suderio/coup/internal/engine"

// RulesetDoc is a ruleset file. Rules missing from the file keep their
// default values.
type RulesetDoc struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Rules       engine.Ruleset `yaml:"rules"`
}
