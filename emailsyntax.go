// Package emailsyntax checks that email addresses are syntactically well
// formed. It performs no DNS, MX or mailbox checks.
//
// The three verify functions return nil or a *SyntaxError naming the
// violated rule:
//
//	if err := emailsyntax.VerifyEmail("user@example.com"); err != nil {
//	    // reject
//	}
//
// For batches and structured results, use the Validator pipeline:
//
//	result, err := emailsyntax.New().
//	    WithDomain().
//	    Validate(ctx, "user@gmial.com")
package emailsyntax

import "github.com/optimode/emailsyntax/types"

// CheckResult is a re-export from the types package so that consumers
// don't need to import the types package directly.
type CheckResult = types.CheckResult

// CheckLevel is a re-export.
type CheckLevel = types.CheckLevel

// Level constants re-exported.
const (
	LevelSyntax = types.LevelSyntax
	LevelDomain = types.LevelDomain
)
