// Package jsonptr is the top-level convenience API for RFC 6901 JSON
// Pointer: one-shot find/exists/locate over fastjson documents. For repeated
// navigation use the pointer and reference packages directly.
package jsonptr

import (
	"github.com/valyala/fastjson"

	"github.com/jsonptrio/jsonptr/pointer"
	"github.com/jsonptrio/jsonptr/reference"
)

// Find parses ptr as a JSON Pointer string and resolves it against doc.
// The result may be a JSON null value; that is a valid, present result.
func Find(doc *fastjson.Value, ptr string) (*fastjson.Value, error) {
	p, err := pointer.Parse(ptr)
	if err != nil {
		return nil, err
	}
	return p.Eval(doc)
}

// Exists parses ptr as a JSON Pointer string and reports whether it
// resolves against doc. The error is non-nil only for a malformed pointer
// string; resolution failures simply yield false.
func Exists(doc *fastjson.Value, ptr string) (bool, error) {
	p, err := pointer.Parse(ptr)
	if err != nil {
		return false, err
	}
	return p.Exists(doc), nil
}

// Locate searches doc for the node with the same identity as target and
// returns the pointer to it.
func Locate(doc, target *fastjson.Value) (pointer.Pointer, bool) {
	return pointer.Locate(doc, target)
}

// Ref creates a reference bound to doc at the given pointer string.
func Ref(doc *fastjson.Value, ptr string) (*reference.Reference, error) {
	return reference.Parse(doc, ptr)
}
