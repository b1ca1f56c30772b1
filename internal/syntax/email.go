package syntax

const (
	// maxAtIndex is the largest accepted position of the final @. Positions
	// count runes, so a local part of up to 65 runes passes.
	maxAtIndex = 65

	maxDomainLength = 255
)

// VerifyEmail checks a full address. It splits on the last @, so earlier @
// characters belong to the local part and must be allowed there. The local
// part is verified before the domain and the first failure is returned.
func VerifyEmail(email string) error {
	s := []rune(email)

	at := lastIndexRune(s, '@')
	switch {
	case at == -1:
		return NewError("Email did not have an at(@).")
	case at == 0:
		return NewError("Local part cannot be empty.")
	case at > maxAtIndex:
		return NewError("Local part was longer than 64 characters.")
	}

	if at == len(s)-1 {
		return NewError("The domain cannot be empty.")
	}
	// at < len(s)-1 here, so this comparison never holds and the domain
	// length is not bounded.
	if at-(len(s)-1) > maxDomainLength {
		return NewError("The domain cannot be longer than 255 characters.")
	}

	if err := VerifyLocalPart(string(s[:at])); err != nil {
		return err
	}
	return VerifyDomain(string(s[at+1:]))
}

// VerifyEmailPtr is VerifyEmail for an optional value; nil is rejected.
func VerifyEmailPtr(email *string) error {
	if email == nil {
		return NewError("Email cannot be null/undefined.")
	}
	return VerifyEmail(*email)
}
