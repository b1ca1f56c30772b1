package syntax

// VerifyLocalPart checks the part of an address before the final @.
//
// A local part wrapped in double quotes is validated against the wider
// quoted character set and is exempt from the dot rules. An unquoted local
// part may carry one leading and one trailing parenthesised comment; both
// are dropped without validation.
func VerifyLocalPart(local string) error {
	s := []rune(local)

	quoted := len(s) > 0 && s[0] == '"' && s[len(s)-1] == '"'
	if quoted {
		s = unquote(s)
	} else {
		if len(s) > 0 && (s[0] == '.' || s[len(s)-1] == '.') {
			return NewError("Local part cannot start or end with a dot (.) unless quoted.")
		}
		s = stripLeadingComment(s)
		s = stripTrailingComment(s)
	}

	return scanLocal(s, quoted)
}

// VerifyLocalPartPtr is VerifyLocalPart for an optional value; nil is
// rejected.
func VerifyLocalPartPtr(local *string) error {
	if local == nil {
		return NewError("Local part cannot be null/undefined.")
	}
	return VerifyLocalPart(*local)
}

// unquote drops the first and last rune. A lone quote is both the opening
// and the closing one, so it unquotes to nothing.
func unquote(s []rune) []rune {
	if len(s) < 2 {
		return s[:0]
	}
	return s[1 : len(s)-1]
}

// stripLeadingComment drops everything through the first ')' when s starts
// with '('.
func stripLeadingComment(s []rune) []rune {
	if len(s) == 0 || s[0] != '(' {
		return s
	}
	if end := indexRune(s, ')'); end >= 0 {
		return s[end+1:]
	}
	return s
}

// stripTrailingComment drops everything from the last '(' when s ends
// with ')'.
func stripTrailingComment(s []rune) []rune {
	if len(s) == 0 || s[len(s)-1] != ')' {
		return s
	}
	if start := lastIndexRune(s, '('); start >= 0 {
		return s[:start]
	}
	return s
}

// scanLocal walks s with an explicit cursor. Lookbehind and lookahead refer
// to s itself, i.e. after quote and comment stripping.
func scanLocal(s []rune, quoted bool) error {
	for i := 0; i < len(s); i++ {
		r := s[i]

		switch {
		case isAlnum(r):
			continue
		case r == '.':
			if !quoted && i+1 < len(s) && s[i+1] == '.' {
				return NewError("Consecutive dots (.) are not allowed.")
			}
			continue
		case isAtext(r):
			continue
		}

		if quoted {
			switch {
			case isQuotedSpecial(r):
				continue
			case r == '"' && i > 0 && s[i-1] == '\\':
				continue
			case r == '\\' && i+1 < len(s) && s[i+1] == '\\':
				// escaped backslash, consume the pair
				i++
				continue
			}
		}

		return charError(r, "local part")
	}
	return nil
}

func indexRune(s []rune, r rune) int {
	for i, c := range s {
		if c == r {
			return i
		}
	}
	return -1
}

func lastIndexRune(s []rune, r rune) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == r {
			return i
		}
	}
	return -1
}
