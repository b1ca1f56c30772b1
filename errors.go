package emailsyntax

import "errors"

var (
	// ErrNoChecksConfigured is returned when Validate() is called on a
	// Validator that was not created with New().
	ErrNoChecksConfigured = errors.New("emailsyntax: no validation checks configured")

	// ErrInvalidDomainOptions is returned when WithDomain is given a
	// negative TypoThreshold.
	ErrInvalidDomainOptions = errors.New("emailsyntax: DomainOptions.TypoThreshold must not be negative")
)
