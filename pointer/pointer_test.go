package pointer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		s          string
		wantTokens []string
		wantErr    bool
	}{
		{
			name:       "root",
			s:          "",
			wantTokens: nil,
		},
		{
			name:       "single-token",
			s:          "/foo",
			wantTokens: []string{"foo"},
		},
		{
			name:       "two-tokens",
			s:          "/foo/0",
			wantTokens: []string{"foo", "0"},
		},
		{
			name:       "empty-token",
			s:          "/",
			wantTokens: []string{""},
		},
		{
			name:       "escaped-slash",
			s:          "/a~1b",
			wantTokens: []string{"a/b"},
		},
		{
			name:       "escaped-tilde",
			s:          "/m~0n",
			wantTokens: []string{"m~n"},
		},
		{
			name:       "trailing-empty-token",
			s:          "/foo/",
			wantTokens: []string{"foo", ""},
		},
		{
			name:    "missing-leading-slash",
			s:       "foo",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.s)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedPointer))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantTokens, p.Tokens())
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	// For any accepted pointer string, String(Parse(s)) == s.
	strs := []string{
		"", "/foo", "/foo/0", "/", "/a~1b", "/c%d", "/e^f",
		"/g|h", "/i\\j", "/k\"l", "/ ", "/m~0n", "/a~1b/m~0n/x",
	}
	for _, s := range strs {
		p, err := Parse(s)
		assert.NoError(t, err)
		assert.Equal(t, s, p.String())
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, []string{"foo"}, MustParse("/foo").Tokens())
	assert.Panics(t, func() { MustParse("foo") })
}

func TestRoot(t *testing.T) {
	assert.True(t, Root.IsRoot())
	assert.Equal(t, 0, Root.Len())
	assert.Equal(t, "", Root.String())
	assert.True(t, Root.Equal(MustParse("")))
	_, ok := Root.LastToken()
	assert.False(t, ok)
}

func TestChildAndParent(t *testing.T) {
	p := Root.Child("foo")
	assert.Equal(t, "/foo", p.String())

	p2, err := p.ChildIndex(0)
	assert.NoError(t, err)
	assert.Equal(t, "/foo/0", p2.String())

	last, ok := p2.LastToken()
	assert.True(t, ok)
	assert.Equal(t, "0", last)

	back, err := p2.Parent()
	assert.NoError(t, err)
	assert.True(t, back.Equal(p))

	_, err = Root.Parent()
	assert.True(t, errors.Is(err, ErrNoParentOfRoot))

	_, err = p.ChildIndex(-1)
	assert.True(t, errors.Is(err, ErrNegativeIndex))
}

func TestChildParentRoundTrip(t *testing.T) {
	for _, s := range []string{"", "/foo", "/a~1b/0"} {
		p := MustParse(s)
		for _, tok := range []string{"x", "", "a/b", "~"} {
			child := p.Child(tok)
			back, err := child.Parent()
			assert.NoError(t, err)
			assert.True(t, back.Equal(p), "pointer %q child %q", s, tok)
		}
	}
}

func TestParentDoesNotAliasChild(t *testing.T) {
	p := MustParse("/a/b")
	parent, err := p.Parent()
	assert.NoError(t, err)
	// Appending to the shortened pointer must not clobber the token still
	// referenced by p.
	other := parent.Child("c")
	assert.Equal(t, "/a/b", p.String())
	assert.Equal(t, "/a/c", other.String())
}

func TestEqualAndHash(t *testing.T) {
	p1 := MustParse("/foo/bar")
	p2 := Root.Child("foo").Child("bar")
	p3 := MustParse("/foo/baz")

	assert.True(t, p1.Equal(p2))
	assert.Equal(t, p1.Hash(), p2.Hash())
	assert.False(t, p1.Equal(p3))
	assert.False(t, p1.Equal(Root))
	assert.NotEqual(t, p1.Hash(), Root.Hash())
}

func TestTokensCopy(t *testing.T) {
	p := MustParse("/a/b")
	tokens := p.Tokens()
	tokens[0] = "mutated"
	assert.Equal(t, "/a/b", p.String())
}

func TestNew(t *testing.T) {
	src := []string{"a/b", "m~n"}
	p := New(src...)
	src[0] = "mutated"
	assert.Equal(t, "/a~1b/m~0n", p.String())
	assert.True(t, New().IsRoot())
}
