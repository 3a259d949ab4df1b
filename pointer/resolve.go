package pointer

import (
	"github.com/valyala/fastjson"

	"github.com/jsonptrio/jsonptr/xerrors"
)

// maxIndexDigits caps array index tokens at 8 ASCII digits, which keeps any
// accepted index well inside a 32-bit non-negative integer.
const maxIndexDigits = 8

// Eval resolves the pointer against base and returns the addressed value.
// The result may be a JSON null value, which is a valid, present result. A
// nil base is never a valid target, not even for the root pointer.
//
// On failure the returned error wraps one of the coded sentinels in errs.go
// and carries the escaped pointer prefix through the offending token.
func (p Pointer) Eval(base *fastjson.Value) (*fastjson.Value, error) {
	if base == nil {
		return nil, xerrors.WrapKV(ErrUnresolvedPath, xerrors.KeyPointer, p.prefix(0))
	}
	cur := base
	for i, tok := range p.tokens {
		switch cur.Type() {
		case fastjson.TypeObject:
			child := cur.GetObject().Get(tok)
			if child == nil {
				return nil, p.errAt(ErrUnresolvedPath, i)
			}
			cur = child
		case fastjson.TypeArray:
			if tok == "-" {
				return nil, p.errAt(ErrEndOfArrayDereference, i)
			}
			index, ok := ParseArrayIndex(tok)
			if !ok {
				return nil, p.errAt(ErrInvalidIndex, i)
			}
			arr := cur.GetArray()
			if index >= len(arr) {
				return nil, p.errAt(ErrIndexOutOfRange, i)
			}
			cur = arr[index]
		default:
			// Scalars have no children.
			return nil, p.errAt(ErrUnresolvedPath, i)
		}
	}
	return cur, nil
}

// Exists performs the same walk as Eval but never fails: every failure
// condition yields false. A value that exists but is JSON null yields true.
func (p Pointer) Exists(base *fastjson.Value) bool {
	if base == nil {
		return false
	}
	cur := base
	for _, tok := range p.tokens {
		switch cur.Type() {
		case fastjson.TypeObject:
			child := cur.GetObject().Get(tok)
			if child == nil {
				return false
			}
			cur = child
		case fastjson.TypeArray:
			index, ok := ParseArrayIndex(tok)
			if !ok {
				return false
			}
			arr := cur.GetArray()
			if index >= len(arr) {
				return false
			}
			cur = arr[index]
		default:
			return false
		}
	}
	return true
}

// errAt wraps kind with the pointer prefix up to and including token i.
func (p Pointer) errAt(kind error, i int) error {
	return xerrors.WrapKV(kind, xerrors.KeyPointer, p.prefix(i+1))
}

// ParseArrayIndex checks tok against the RFC 6901 array index rule and
// returns its value: 1 to 8 ASCII digits, with no leading zero unless the
// token is exactly "0". This rejects "-1", "01", non-digit tokens, and
// pathologically long digit strings.
func ParseArrayIndex(tok string) (int, bool) {
	n := len(tok)
	if n < 1 || n > maxIndexDigits {
		return 0, false
	}
	if tok[0] == '0' && n != 1 {
		return 0, false
	}
	index := 0
	for i := 0; i < n; i++ {
		c := tok[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		index = index*10 + int(c-'0')
	}
	return index, true
}

// IsArrayIndex reports whether tok is a valid array index token.
func IsArrayIndex(tok string) bool {
	_, ok := ParseArrayIndex(tok)
	return ok
}
