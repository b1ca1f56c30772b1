package parse

import "strings"

// Email is the pipeline's view of an address: the raw input split on its
// last @. The check/ packages receive this as parameter.
type Email struct {
	Raw    string // the original input, untouched
	Local  string // the part before the last @
	Domain string // the part after the last @
	Split  bool   // false if Raw has no @ or either side is empty
}

// NewEmail splits raw on its last @. The input is not trimmed or
// normalised; syntax rules apply to exactly what the caller passed.
func NewEmail(raw string) Email {
	at := strings.LastIndex(raw, "@")
	if at < 1 || at == len(raw)-1 {
		return Email{Raw: raw}
	}
	return Email{
		Raw:    raw,
		Local:  raw[:at],
		Domain: raw[at+1:],
		Split:  true,
	}
}

// DomainKey is the lower-cased domain, used for grouping and lookups.
// Empty when the address could not be split.
func (e Email) DomainKey() string {
	return strings.ToLower(e.Domain)
}
