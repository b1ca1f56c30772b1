package check

import (
	"context"

	"github.com/optimode/emailsyntax/internal/parse"
	"github.com/optimode/emailsyntax/internal/syntax"
	"github.com/optimode/emailsyntax/types"
)

// SyntaxChecker runs the address syntax rules on the raw input.
// A failed check carries the violated rule in Details.
type SyntaxChecker struct{}

func NewSyntaxChecker() *SyntaxChecker {
	return &SyntaxChecker{}
}

func (c *SyntaxChecker) Check(_ context.Context, email parse.Email) types.CheckResult {
	level := types.LevelSyntax

	if err := syntax.VerifyEmail(email.Raw); err != nil {
		return types.CheckResult{Level: level, Passed: false, Details: err.Error()}
	}

	return types.CheckResult{Level: level, Passed: true, Details: "syntax ok"}
}
