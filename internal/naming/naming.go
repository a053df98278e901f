// Package naming converts Go identifiers into file and column names.
package naming

import (
	"strings"
	"unicode"
)

// AddUnderscore inserts an underscore before every upper case letter that
// starts a word: CreatedAt becomes Created_At, HTTPCode becomes HTTP_Code and
// ID stays ID.
func AddUnderscore(s string) string {
	runes := []rune(s)
	var result strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			acronymEnd := unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if acronymEnd || !unicode.IsUpper(prev) && prev != '_' {
				result.WriteRune('_')
			}
		}
		result.WriteRune(r)
	}
	return result.String()
}

// SnakeCase lower cases AddUnderscore(s).
func SnakeCase(s string) string {
	return strings.ToLower(AddUnderscore(s))
}
