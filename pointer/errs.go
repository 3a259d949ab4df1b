package pointer

import "github.com/jsonptrio/jsonptr/xerrors"

// Coded sentinel errors reported by pointer construction and resolution.
// Resolution failures are wrapped with the escaped pointer prefix up to and
// including the offending token (xerrors.KeyPointer), so callers can see
// exactly where navigation diverged.
var (
	// ErrMalformedPointer: pointer string is non-empty and does not start with "/".
	ErrMalformedPointer = xerrors.NewEcode("E0101", "malformed JSON pointer")
	// ErrMalformedFragment: URI fragment does not start with "#", or its
	// percent encoding is broken.
	ErrMalformedFragment = xerrors.NewEcode("E0102", "malformed URI fragment")
	// ErrNoParentOfRoot: Parent called on the root pointer.
	ErrNoParentOfRoot = xerrors.NewEcode("E0103", "root JSON pointer has no parent")
	// ErrNegativeIndex: ChildIndex called with a negative index.
	ErrNegativeIndex = xerrors.NewEcode("E0104", "JSON pointer index must not be negative")
	// ErrUnresolvedPath: missing object key, or a scalar reached with tokens remaining.
	ErrUnresolvedPath = xerrors.NewEcode("E0105", "JSON pointer cannot be resolved")
	// ErrInvalidIndex: array token fails the numeric-token rule.
	ErrInvalidIndex = xerrors.NewEcode("E0106", "illegal array index in JSON pointer")
	// ErrIndexOutOfRange: array token is a valid index but >= array length.
	ErrIndexOutOfRange = xerrors.NewEcode("E0107", "array index out of range in JSON pointer")
	// ErrEndOfArrayDereference: the end-of-array token "-" used against an array.
	ErrEndOfArrayDereference = xerrors.NewEcode("E0108", "cannot dereference end-of-array JSON pointer")
)
