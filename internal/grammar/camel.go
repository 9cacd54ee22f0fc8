package grammar

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CamelCase converts a hyphenated attribute name to a component property name.
// Examples:
//   - "title" -> "title"
//   - "page-title" -> "pageTitle"
//   - "is-open-now" -> "isOpenNow"
//   - "Value" -> "value"
func CamelCase(s string) string {
	tokens := strings.Split(s, "-")

	var b strings.Builder

	b.Grow(len(s))

	for _, tok := range tokens {
		if tok == "" {
			continue
		}

		if b.Len() == 0 {
			b.WriteString(lowerFirst(tok))
			continue
		}

		b.WriteString(upperFirst(tok))
	}

	return b.String()
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
