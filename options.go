package emailsyntax

// DomainOptions configures the domain-level check.
type DomainOptions struct {
	// CheckTypos when true suggests corrections for close-match domains. Default: true
	// This never fails an email, only provides a suggestion (Suggestion field).
	CheckTypos bool
	// TypoThreshold is the Levenshtein distance threshold for typo detection. Default: 2
	TypoThreshold int
	// KnownProviders replaces the built-in provider list when non-empty.
	KnownProviders []string
}

func defaultDomainOptions() DomainOptions {
	return DomainOptions{
		CheckTypos:    true,
		TypoThreshold: 2,
	}
}

// ConcurrencyOptions configures concurrent processing for ValidateMany.
type ConcurrencyOptions struct {
	// Workers is the number of concurrent goroutines. Default: 5
	Workers int
	// All runs every level for each email, as ValidateAll does.
	All bool
}

func defaultConcurrencyOptions() ConcurrencyOptions {
	return ConcurrencyOptions{Workers: 5}
}
