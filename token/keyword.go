package token

// keywordAt reports whether d starts with the keyword kw followed by a
// delimiter or end of input.
func keywordAt(d []byte, kw string) bool {
	if len(d) < len(kw) {
		return false
	}
	for i := 0; i < len(kw); i++ {
		if d[i] != kw[i] {
			return false
		}
	}
	if len(d) == len(kw) {
		return true
	}
	return delimByte(d[len(kw)])
}

func delimByte(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', ',', ':', ']', '}', '[', '{', '"':
		return true
	default:
		return false
	}
}
