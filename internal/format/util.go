package format

// isWordByte reports bytes that glue into one token with a neighbour of the
// same class: identifier parts, digits and any non-ASCII byte.
func isWordByte(c byte) bool {
	return c == '_' || c == '$' ||
		'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9' || c >= 0x80
}

// needsSep reports whether writing first right after last would merge two
// tokens.
func needsSep(last, first byte) bool {
	if isWordByte(last) && isWordByte(first) {
		return true
	}
	// a+ +b, a- -b, a- --b
	return (last == '+' || last == '-') && first == last
}
