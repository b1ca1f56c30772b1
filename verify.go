package emailsyntax

import "github.com/optimode/emailsyntax/internal/syntax"

// SyntaxError is returned by every verify function when an address breaks
// a rule. It is the only error kind they return; Message names the rule.
type SyntaxError = syntax.Error

// NewSyntaxError returns a *SyntaxError carrying msg.
func NewSyntaxError(msg string) *SyntaxError {
	return syntax.NewError(msg)
}

// IsSyntaxError reports whether err is, or wraps, a *SyntaxError.
func IsSyntaxError(err error) bool {
	return syntax.IsError(err)
}

// VerifyEmail checks a full address, split on its last @.
func VerifyEmail(email string) error {
	return syntax.VerifyEmail(email)
}

// VerifyLocalPart checks the part of an address before the last @.
func VerifyLocalPart(local string) error {
	return syntax.VerifyLocalPart(local)
}

// VerifyDomain checks the part of an address after the last @.
func VerifyDomain(domain string) error {
	return syntax.VerifyDomain(domain)
}

// VerifyEmailPtr is VerifyEmail for optional values. A nil address is a
// syntax failure, not a programming error.
func VerifyEmailPtr(email *string) error {
	return syntax.VerifyEmailPtr(email)
}

// VerifyLocalPartPtr is VerifyLocalPart for optional values.
func VerifyLocalPartPtr(local *string) error {
	return syntax.VerifyLocalPartPtr(local)
}

// VerifyDomainPtr is VerifyDomain for optional values.
func VerifyDomainPtr(domain *string) error {
	return syntax.VerifyDomainPtr(domain)
}
