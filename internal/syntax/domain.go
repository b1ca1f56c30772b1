package syntax

import "strings"

// VerifyDomain checks the part of an address after the final @ as a
// sequence of dot-separated DNS labels made of ASCII letters, digits and
// inner hyphens. An all-numeric top-level label is accepted.
func VerifyDomain(domain string) error {
	for _, label := range strings.Split(domain, ".") {
		if err := verifyLabel(label); err != nil {
			return err
		}
	}
	return nil
}

// VerifyDomainPtr is VerifyDomain for an optional value; nil is rejected.
func VerifyDomainPtr(domain *string) error {
	if domain == nil {
		return NewError("Domain cannot be null/undefined.")
	}
	return VerifyDomain(*domain)
}

func verifyLabel(label string) error {
	if label == "" {
		return NewError("The domain cannot have an empty DNS label/multi-dot(.).")
	}
	if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
		return NewError("DNS label cannot start or end with a hyphen(-).")
	}
	for _, r := range label {
		if !isDomainRune(r) {
			return charError(r, "domain")
		}
	}
	return nil
}
