package uritemplate

// Character classes from RFC 6570 Section 1.5 and Section 2.3.

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isVarchar reports whether unit may appear in a varname:
// ALPHA / DIGIT / "_" / pct-encoded.
func isVarchar(unit string) bool {
	if len(unit) == 1 {
		c := unit[0]
		return isAlpha(c) || isDigit(c) || c == '_'
	}
	return isPctSpan(unit)
}

// isUnreserved reports whether unit is ALPHA / DIGIT / "-" / "." / "_" / "~".
func isUnreserved(unit string) bool {
	if len(unit) != 1 {
		return false
	}
	c := unit[0]
	return isAlpha(c) || isDigit(c) || c == '-' || c == '.' || c == '_' || c == '~'
}

// isReserved reports whether unit is one of the gen-delims or sub-delims.
func isReserved(unit string) bool {
	if len(unit) != 1 {
		return false
	}
	switch unit[0] {
	case ':', '/', '?', '#', '[', ']', '@',
		'!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}
