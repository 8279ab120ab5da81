package yamlite

import "strings"

// specialPunct lists the printable bytes that force quoting even
// though they fall inside the otherwise-safe range.
const specialPunct = "!\"#$%&'*,-/:<=>?@[\\]`"

// Special is the classifier's verdict for one scalar: whether it needs
// quoting when written out and which byte triggers the requirement.
// Positions are byte offsets; -1 means the byte does not occur. The
// verdict is produced per scalar at write time and never persisted.
type Special struct {
	HasSpecial       bool
	FirstSpecial     int
	FirstSingleQuote int
	FirstDoubleQuote int
	Char             byte
}

// SpecialChars inspects scalar in a single pass and reports the
// special byte with the lowest first occurrence, along with the first
// occurrence of each literal quote kind, which decides the enclosing
// quote style. A scalar already wrapped in one matching pair of quotes
// is safe as-is and reports no special characters.
func SpecialChars(scalar string) Special {
	sp := Special{FirstSpecial: -1, FirstSingleQuote: -1, FirstDoubleQuote: -1}
	if scalar == "" {
		return sp
	}
	if len(scalar) > 2 &&
		(scalar[0] == '\'' || scalar[0] == '"') &&
		scalar[0] == scalar[len(scalar)-1] {
		return sp
	}

	// First-occurrence table over all byte values, rebuilt fresh for
	// each call.
	var first [256]int
	var seen [256]bool
	for i := 0; i < len(scalar); i++ {
		c := scalar[i]
		if !seen[c] {
			seen[c] = true
			first[c] = i
		}
	}

	lowest := -1
	for c := 0; c < 256; c++ {
		if !seen[c] {
			continue
		}
		b := byte(c)
		if b < ' ' || b > 'z' || strings.IndexByte(specialPunct, b) >= 0 {
			if lowest == -1 || first[c] < lowest {
				lowest = first[c]
			}
		}
		switch b {
		case '\'':
			sp.FirstSingleQuote = first[c]
		case '"':
			sp.FirstDoubleQuote = first[c]
		}
	}
	if lowest == -1 {
		return sp
	}
	sp.HasSpecial = true
	sp.FirstSpecial = lowest
	sp.Char = scalar[lowest]
	return sp
}
