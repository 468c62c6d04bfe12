// Package pointer builds and manipulates RFC 6901 JSON Pointers.
//
// A Pointer is immutable; every method that extends a path returns a new
// Pointer rather than mutating the receiver. This makes Pointers safe to
// share across conform calls and lets container definitions (Keys, Each)
// hand a prefix to their children without either side worrying about
// aliasing.
package pointer

import (
	"strconv"
	"strings"
)

// Pointer is an RFC 6901 JSON Pointer, built incrementally from the root.
//
// The zero value is the root pointer ("").
type Pointer struct {
	tokens []string
}

// Root returns the pointer to the document root, which renders as "".
func Root() Pointer {
	return Pointer{}
}

// Key returns a new Pointer with an object-member token appended.
//
// The two RFC 6901 escapes ("~" -> "~0", "/" -> "~1") are applied when the
// pointer is rendered, not when it is built, so Key accepts raw key text.
func (p Pointer) Key(key string) Pointer {
	return p.append(key)
}

// Index returns a new Pointer with an array-index token appended.
func (p Pointer) Index(i int) Pointer {
	return p.append(strconv.Itoa(i))
}

// Join returns a new Pointer with all of other's tokens appended after p's.
//
// This is how container definitions rebase a child's error path under their
// own key or index: parent.Key("name").Join(childErr.Path()).
func (p Pointer) Join(other Pointer) Pointer {
	if len(other.tokens) == 0 {
		return p
	}
	tokens := make([]string, 0, len(p.tokens)+len(other.tokens))
	tokens = append(tokens, p.tokens...)
	tokens = append(tokens, other.tokens...)
	return Pointer{tokens: tokens}
}

// IsRoot reports whether p addresses the document root.
func (p Pointer) IsRoot() bool {
	return len(p.tokens) == 0
}

// Len returns the number of tokens in the pointer.
func (p Pointer) Len() int {
	return len(p.tokens)
}

// First returns the first token and a pointer to the remainder, or ("",
// Root(), false) if p is already the root. Used by error_hash to group
// errors by their top-level field.
func (p Pointer) First() (string, Pointer, bool) {
	if len(p.tokens) == 0 {
		return "", Root(), false
	}
	return p.tokens[0], Pointer{tokens: p.tokens[1:]}, true
}

// String renders the pointer per RFC 6901: "" for the root, otherwise a
// "/"-joined, escaped token sequence such as "/items/3/name".
func (p Pointer) String() string {
	if len(p.tokens) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, tok := range p.tokens {
		sb.WriteByte('/')
		sb.WriteString(escape(tok))
	}
	return sb.String()
}

func (p Pointer) append(token string) Pointer {
	tokens := make([]string, len(p.tokens), len(p.tokens)+1)
	copy(tokens, p.tokens)
	tokens = append(tokens, token)
	return Pointer{tokens: tokens}
}

// escape applies the RFC 6901 reference-token escaping rules.
func escape(token string) string {
	if !strings.ContainsAny(token, "~/") {
		return token
	}
	token = strings.ReplaceAll(token, "~", "~0")
	token = strings.ReplaceAll(token, "/", "~1")
	return token
}

// unescape reverses escape; order matters (~0 before ~1 would corrupt "~01").
func unescape(token string) string {
	if !strings.Contains(token, "~") {
		return token
	}
	token = strings.ReplaceAll(token, "~1", "/")
	token = strings.ReplaceAll(token, "~0", "~")
	return token
}

// Parse parses an RFC 6901 pointer string back into a Pointer.
//
// Parse("") returns Root(). A string not starting with "/" (and non-empty)
// is invalid per RFC 6901 and returns an error.
func Parse(s string) (Pointer, error) {
	if s == "" {
		return Root(), nil
	}
	if s[0] != '/' {
		return Pointer{}, &InvalidPointerError{Value: s}
	}
	parts := strings.Split(s[1:], "/")
	tokens := make([]string, len(parts))
	for i, part := range parts {
		tokens[i] = unescape(part)
	}
	return Pointer{tokens: tokens}, nil
}

// InvalidPointerError reports a string that is not a well-formed JSON Pointer.
type InvalidPointerError struct {
	Value string
}

func (e *InvalidPointerError) Error() string {
	return "pointer: not a valid JSON Pointer: " + e.Value
}
