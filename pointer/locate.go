package pointer

import (
	"strconv"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/valyala/fastjson"
)

// locateFrame pairs a candidate subtree with the pointer that addresses it.
type locateFrame struct {
	ptr   Pointer
	value *fastjson.Value
}

// Locate searches doc depth-first for the node that is the same value
// identity as target and returns the pointer to it. See
// [Pointer.LocateChild].
func Locate(doc, target *fastjson.Value) (Pointer, bool) {
	return Root.LocateChild(doc, target)
}

// LocateChild searches value (the subtree addressed by p) depth-first for
// the node that is the same identity as target, and returns p extended with
// the path to it. The search is purely identity-based: structurally equal
// but distinct nodes never match. The exception is null, true and false,
// which fastjson interns as shared singletons, so locating one of them
// returns the first such literal in the document. The first match in
// document order wins (object keys in insertion order, array indices
// ascending).
//
// An explicit work stack bounds memory by document size instead of call
// stack depth, so pathologically deep documents cannot overflow.
func (p Pointer) LocateChild(value, target *fastjson.Value) (Pointer, bool) {
	if value == nil || target == nil {
		return Pointer{}, false
	}
	stack := arraystack.New()
	stack.Push(locateFrame{ptr: p, value: value})
	for !stack.Empty() {
		top, _ := stack.Pop()
		frame := top.(locateFrame)
		if frame.value == target {
			return frame.ptr, true
		}
		switch frame.value.Type() {
		case fastjson.TypeObject:
			var children []locateFrame
			frame.value.GetObject().Visit(func(key []byte, v *fastjson.Value) {
				children = append(children, locateFrame{ptr: frame.ptr.Child(string(key)), value: v})
			})
			// Pushed in reverse so the first key is visited first.
			for i := len(children) - 1; i >= 0; i-- {
				stack.Push(children[i])
			}
		case fastjson.TypeArray:
			arr := frame.value.GetArray()
			for i := len(arr) - 1; i >= 0; i-- {
				stack.Push(locateFrame{ptr: frame.ptr.Child(strconv.Itoa(i)), value: arr[i]})
			}
		}
	}
	return Pointer{}, false
}
