package pointer

import (
	"net/url"
	"strings"

	"github.com/jsonptrio/jsonptr/xerrors"
)

const upperhex = "0123456789ABCDEF"

// URIFragment serializes the pointer as a URI fragment: "#" followed by the
// escaped tokens, each percent-encoded. Every byte outside the RFC 3986
// unreserved set is encoded, and space becomes "%20", never "+".
// The root pointer serializes to "#".
func (p Pointer) URIFragment() string {
	var sb strings.Builder
	sb.WriteByte('#')
	for _, tok := range p.tokens {
		sb.WriteByte('/')
		writeFragmentToken(&sb, EscapeToken(tok))
	}
	return sb.String()
}

// ParseURIFragment parses a URI fragment produced by URIFragment: it must
// start with "#"; the remainder is percent-decoded and parsed as a pointer
// string.
func ParseURIFragment(fragment string) (Pointer, error) {
	if !strings.HasPrefix(fragment, "#") {
		return Pointer{}, xerrors.WrapKV(ErrMalformedFragment, "fragment", fragment)
	}
	s, err := url.PathUnescape(fragment[1:])
	if err != nil {
		return Pointer{}, xerrors.WrapKV(ErrMalformedFragment, "fragment", fragment)
	}
	return Parse(s)
}

// writeFragmentToken percent-encodes an already-escaped token. url.PathEscape
// is not used here: it leaves sub-delims such as "+", "$" and "&" bare, while
// RFC 6901's fragment form encodes everything outside the unreserved set.
func writeFragmentToken(sb *strings.Builder, tok string) {
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if isUnreserved(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[c>>4])
		sb.WriteByte(upperhex[c&0xf])
	}
}

// isUnreserved reports whether c is in the RFC 3986 unreserved set.
func isUnreserved(c byte) bool {
	return 'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}
