package syntax

// isASCIILetter reports whether r is in 0x41-0x5A or 0x61-0x7A.
func isASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// isASCIIDigit reports whether r is in 0x30-0x39.
func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlnum(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r)
}

// isAtext reports whether r is one of the symbols allowed in an unquoted
// local part (besides letters, digits and dots).
func isAtext(r rune) bool {
	switch r {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '/',
		'=', '?', '^', '_', '`', '{', '|', '}', '~':
		return true
	}
	return false
}

// isQuotedSpecial reports whether r is additionally allowed, without
// context, inside a quoted local part. Quote and backslash depend on their
// neighbours and are handled by the scanner.
func isQuotedSpecial(r rune) bool {
	switch r {
	case ' ', '(', ')', ',', ':', ';', '<', '>', '@', '[', ']':
		return true
	}
	return false
}

func isDomainRune(r rune) bool {
	return isAlnum(r) || r == '-'
}
