// Package types contains the shared types for emailsyntax.
// This package does not import anything from other emailsyntax packages
// to avoid circular imports.
package types

// CheckLevel identifies a stage of the validation pipeline.
type CheckLevel = string

const (
	LevelSyntax CheckLevel = "syntax"
	LevelDomain CheckLevel = "domain"
)

// CheckResult is the outcome of a single validation level.
// For the syntax level, Details holds the violated rule on failure.
type CheckResult struct {
	Level      CheckLevel `json:"level" yaml:"level"`
	Passed     bool       `json:"passed" yaml:"passed"`
	Details    string     `json:"details,omitempty" yaml:"details,omitempty"`
	Suggestion string     `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}
