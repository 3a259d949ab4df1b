package pointer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fastjson"
)

func TestLocate(t *testing.T) {
	doc := fastjson.MustParse(`{"aaa": {"bbb": "xyz", "ccc": [123, 456]}}`)

	target := doc.Get("aaa", "bbb")
	p, ok := Locate(doc, target)
	assert.True(t, ok)
	assert.Equal(t, "/aaa/bbb", p.String())

	target = doc.Get("aaa", "ccc", "1")
	p, ok = Locate(doc, target)
	assert.True(t, ok)
	assert.Equal(t, "/aaa/ccc/1", p.String())

	p, ok = Locate(doc, doc)
	assert.True(t, ok)
	assert.True(t, p.IsRoot())
}

func TestLocateIdentityNotEquality(t *testing.T) {
	doc := fastjson.MustParse(`{"aaa": {"bbb": "xyz"}}`)
	// structurally equal but a distinct node
	other := fastjson.MustParse(`"xyz"`)
	_, ok := Locate(doc, other)
	assert.False(t, ok)
}

func TestLocateFirstMatchInDocumentOrder(t *testing.T) {
	doc := fastjson.MustParse(`{"a": ["x", "x"], "b": {"c": "x"}}`)
	target := doc.Get("b", "c")
	p, ok := Locate(doc, target)
	assert.True(t, ok)
	// the "x" strings under "a" are distinct nodes, so the identity match
	// under "b" must win
	assert.Equal(t, "/b/c", p.String())
}

func TestLocateInternedLiterals(t *testing.T) {
	// fastjson interns null, true and false as shared singletons, so every
	// such literal in a document has the same identity and locating one
	// yields the first in document order
	doc := fastjson.MustParse(`{"a": [null, null], "b": {"c": null, "d": true}}`)
	assert.True(t, doc.Get("a", "0") == doc.Get("b", "c"))

	p, ok := Locate(doc, doc.Get("b", "c"))
	assert.True(t, ok)
	assert.Equal(t, "/a/0", p.String())

	p, ok = Locate(doc, doc.Get("b", "d"))
	assert.True(t, ok)
	assert.Equal(t, "/b/d", p.String())
}

func TestLocateChildFromSubtree(t *testing.T) {
	doc := fastjson.MustParse(`{"aaa": {"bbb": "xyz"}}`)
	sub := doc.Get("aaa")
	target := doc.Get("aaa", "bbb")

	p, ok := MustParse("/aaa").LocateChild(sub, target)
	assert.True(t, ok)
	assert.Equal(t, "/aaa/bbb", p.String())

	// target outside the subtree is not found
	_, ok = MustParse("/aaa").LocateChild(sub, doc)
	assert.False(t, ok)
}

func TestLocateNil(t *testing.T) {
	doc := fastjson.MustParse(`{}`)
	_, ok := Locate(nil, doc)
	assert.False(t, ok)
	_, ok = Locate(doc, nil)
	assert.False(t, ok)
}

func TestLocateDeepDocument(t *testing.T) {
	// deep nesting must not exhaust the work stack (fastjson itself caps
	// parse depth well before Go's call stack would matter)
	const depth = 250
	var sb strings.Builder
	for i := 0; i < depth; i++ {
		sb.WriteString(`{"a":`)
	}
	sb.WriteString(`"leaf"`)
	for i := 0; i < depth; i++ {
		sb.WriteByte('}')
	}
	var p fastjson.Parser
	doc, err := p.Parse(sb.String())
	if err != nil {
		t.Skipf("parser depth limit hit: %v", err)
	}

	cur := doc
	for cur.Type() == fastjson.TypeObject {
		cur = cur.Get("a")
	}
	ptr, ok := Locate(doc, cur)
	assert.True(t, ok)
	assert.Equal(t, depth, ptr.Len())
}
