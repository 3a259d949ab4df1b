package pointer

import "strings"

// RFC 6901 token escaping: "~" before "/" so that an escaped token never
// contains a literal "/".
var (
	tokenEscaper   = strings.NewReplacer("~", "~0", "/", "~1")
	tokenUnescaper = strings.NewReplacer("~0", "~", "~1", "/")
)

// EscapeToken escapes "~" as "~0" and "/" as "~1".
func EscapeToken(token string) string {
	if !strings.ContainsAny(token, "~/") {
		return token
	}
	return tokenEscaper.Replace(token)
}

// UnescapeToken reverses EscapeToken. A bare "~" not followed by '0' or '1'
// is passed through unchanged rather than rejected.
func UnescapeToken(token string) string {
	if !strings.Contains(token, "~") {
		return token
	}
	return tokenUnescaper.Replace(token)
}
