// Package pointer implements RFC 6901 JSON Pointer over fastjson value
// trees: parsing and escaping of pointer strings, URI fragment conversion,
// resolution against a document, and identity-based reverse lookup.
//
// A Pointer is an immutable value: every navigation helper returns a new
// Pointer and never mutates the receiver, so pointers can be freely shared
// across goroutines.
package pointer

import (
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/jsonptrio/jsonptr/xerrors"
)

// Pointer is an ordered, possibly-empty sequence of unescaped reference
// tokens. The zero value is the root pointer.
type Pointer struct {
	tokens []string
}

// Root is the pointer to the document root (the empty token sequence).
var Root = Pointer{}

// Parse parses a pointer string per RFC 6901. The empty string yields the
// root pointer; any other string must start with "/".
func Parse(s string) (Pointer, error) {
	if s == "" {
		return Root, nil
	}
	if s[0] != '/' {
		return Pointer{}, xerrors.WrapKV(ErrMalformedPointer, xerrors.KeyPointer, s)
	}
	parts := strings.Split(s[1:], "/")
	tokens := make([]string, len(parts))
	for i, part := range parts {
		tokens[i] = UnescapeToken(part)
	}
	return Pointer{tokens: tokens}, nil
}

// MustParse is like Parse but panics on a malformed pointer string.
// It simplifies initialization of pointer constants.
func MustParse(s string) Pointer {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// New creates a pointer from a sequence of unescaped tokens.
func New(tokens ...string) Pointer {
	if len(tokens) == 0 {
		return Root
	}
	dup := make([]string, len(tokens))
	copy(dup, tokens)
	return Pointer{tokens: dup}
}

// Tokens returns a copy of the pointer's unescaped token sequence.
func (p Pointer) Tokens() []string {
	if len(p.tokens) == 0 {
		return nil
	}
	dup := make([]string, len(p.tokens))
	copy(dup, p.tokens)
	return dup
}

// Len returns the number of tokens.
func (p Pointer) Len() int {
	return len(p.tokens)
}

// IsRoot reports whether p is the root pointer.
func (p Pointer) IsRoot() bool {
	return len(p.tokens) == 0
}

// LastToken returns the last token, or false for the root pointer.
func (p Pointer) LastToken() (string, bool) {
	if len(p.tokens) == 0 {
		return "", false
	}
	return p.tokens[len(p.tokens)-1], true
}

// Parent returns the pointer with the last token removed.
// It fails on the root pointer.
func (p Pointer) Parent() (Pointer, error) {
	n := len(p.tokens)
	if n == 0 {
		return Pointer{}, xerrors.WithStack(ErrNoParentOfRoot)
	}
	// The cap is pinned so a later Child on the parent cannot write into
	// the array still referenced by p.
	return Pointer{tokens: p.tokens[: n-1 : n-1]}, nil
}

// Child returns the pointer with the given token appended verbatim
// (unescaped form).
func (p Pointer) Child(name string) Pointer {
	n := len(p.tokens)
	tokens := make([]string, n+1)
	copy(tokens, p.tokens)
	tokens[n] = name
	return Pointer{tokens: tokens}
}

// ChildIndex returns the pointer with the decimal form of index appended.
// It fails if index is negative.
func (p Pointer) ChildIndex(index int) (Pointer, error) {
	if index < 0 {
		return Pointer{}, xerrors.WrapKV(ErrNegativeIndex, "index", index)
	}
	return p.Child(strconv.Itoa(index)), nil
}

// Equal reports whether p and o have identical token sequences.
// Equality is structural and independent of any document.
func (p Pointer) Equal(o Pointer) bool {
	if len(p.tokens) != len(o.tokens) {
		return false
	}
	for i, tok := range p.tokens {
		if tok != o.tokens[i] {
			return false
		}
	}
	return true
}

// Hash returns a structural hash consistent with Equal.
func (p Pointer) Hash() uint64 {
	h := fnv.New64a()
	for _, tok := range p.tokens {
		h.Write([]byte{'/'})
		h.Write([]byte(tok))
	}
	return h.Sum64()
}

// String serializes the pointer per RFC 6901: tokens escaped and joined by
// "/". The root pointer serializes to the empty string.
func (p Pointer) String() string {
	return p.prefix(len(p.tokens))
}

// prefix serializes the first n tokens, used by String and by resolution
// failures to report the exact point at which navigation diverged.
func (p Pointer) prefix(n int) string {
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	for _, tok := range p.tokens[:n] {
		sb.WriteByte('/')
		sb.WriteString(EscapeToken(tok))
	}
	return sb.String()
}
