// Package reference pairs a JSON Pointer with the document it resolves
// against, memoizing validity and the resolved value so that repeated child
// navigation does not re-walk the tree from the root.
package reference

import (
	"strconv"

	"github.com/valyala/fastjson"

	"github.com/jsonptrio/jsonptr/pointer"
)

// Reference binds a pointer to one base document. Validity and the resolved
// value are computed once, at construction, and never refreshed: the base
// document is assumed not to mutate for the reference's lifetime. The
// reference does not own the document.
//
// A Reference is immutable; Child, ChildIndex and Parent return new values.
type Reference struct {
	base  *fastjson.Value
	ptr   pointer.Pointer
	valid bool
	value *fastjson.Value
}

// New creates a reference from a base document and a pointer. The reference
// is valid iff the pointer resolves against the base; a nil base always
// yields an invalid reference, even for the root pointer.
func New(base *fastjson.Value, ptr pointer.Pointer) *Reference {
	r := &Reference{base: base, ptr: ptr}
	if v, err := ptr.Eval(base); err == nil {
		r.valid = true
		r.value = v
	}
	return r
}

// Parse creates a reference from a base document and a pointer string.
func Parse(base *fastjson.Value, s string) (*Reference, error) {
	ptr, err := pointer.Parse(s)
	if err != nil {
		return nil, err
	}
	return New(base, ptr), nil
}

// Root creates a reference to the root of the base document.
func Root(base *fastjson.Value) *Reference {
	return New(base, pointer.Root)
}

// Base returns the base document.
func (r *Reference) Base() *fastjson.Value {
	return r.base
}

// Pointer returns the pointer component of the reference.
func (r *Reference) Pointer() pointer.Pointer {
	return r.ptr
}

// IsValid reports whether the pointer resolved against the base at
// construction time.
func (r *Reference) IsValid() bool {
	return r.valid
}

// Value returns the resolved value, or nil if the reference is invalid.
// A non-nil result may be a JSON null value.
func (r *Reference) Value() *fastjson.Value {
	return r.value
}

// Child returns a reference to the named child. The result is valid iff r
// is valid, its value is an object, and the object contains the key; only
// the cached current value is inspected, never the full path.
func (r *Reference) Child(name string) *Reference {
	child := &Reference{base: r.base, ptr: r.ptr.Child(name)}
	if r.valid && r.value.Type() == fastjson.TypeObject {
		if v := r.value.GetObject().Get(name); v != nil {
			child.valid = true
			child.value = v
		}
	}
	return child
}

// ChildIndex returns a reference to the numbered child. For an array value
// the index must be in range; for an object value the decimal form of the
// index is looked up as a key. It fails if index is negative.
func (r *Reference) ChildIndex(index int) (*Reference, error) {
	ptr, err := r.ptr.ChildIndex(index)
	if err != nil {
		return nil, err
	}
	child := &Reference{base: r.base, ptr: ptr}
	if r.valid {
		switch r.value.Type() {
		case fastjson.TypeArray:
			if arr := r.value.GetArray(); index < len(arr) {
				child.valid = true
				child.value = arr[index]
			}
		case fastjson.TypeObject:
			if v := r.value.GetObject().Get(strconv.Itoa(index)); v != nil {
				child.valid = true
				child.value = v
			}
		}
	}
	return child, nil
}

// Parent returns a reference to the parent of the currently-addressed
// element. Unlike Child, the parent was never cached, so validity and value
// are re-derived by evaluating the shortened pointer against the base.
// It fails on the root reference.
func (r *Reference) Parent() (*Reference, error) {
	ptr, err := r.ptr.Parent()
	if err != nil {
		return nil, err
	}
	return New(r.base, ptr), nil
}

// HasChild reports whether the reference is valid, its value is an object,
// and the object contains the given key.
func (r *Reference) HasChild(name string) bool {
	return r.valid && r.value.Type() == fastjson.TypeObject &&
		r.value.GetObject().Get(name) != nil
}

// HasChildIndex reports whether the reference is valid and either its value
// is an array with index in range, or an object containing the decimal form
// of index as a key.
func (r *Reference) HasChildIndex(index int) bool {
	if !r.valid || index < 0 {
		return false
	}
	switch r.value.Type() {
	case fastjson.TypeArray:
		return index < len(r.value.GetArray())
	case fastjson.TypeObject:
		return r.value.GetObject().Get(strconv.Itoa(index)) != nil
	default:
		return false
	}
}

// LocateChild searches the referenced subtree depth-first for the node with
// the same identity as target, and returns a reference to it.
func (r *Reference) LocateChild(target *fastjson.Value) (*Reference, bool) {
	if !r.valid {
		return nil, false
	}
	ptr, ok := r.ptr.LocateChild(r.value, target)
	if !ok {
		return nil, false
	}
	return &Reference{base: r.base, ptr: ptr, valid: true, value: target}, true
}

// Equal reports whether two references address the same node of the same
// document: the base documents must be the same identity (not merely
// structurally equal), the pointers structurally equal, and validity and
// resolved-value identity must match.
func (r *Reference) Equal(o *Reference) bool {
	if r == o {
		return true
	}
	if r == nil || o == nil {
		return false
	}
	return r.base == o.base && r.ptr.Equal(o.ptr) && r.valid == o.valid && r.value == o.value
}

// String returns the JSON text of the resolved value ("null" for a cached
// JSON null), or "invalid" for an invalid reference.
func (r *Reference) String() string {
	if !r.valid {
		return "invalid"
	}
	return r.value.String()
}
