package value

import "strings"

// KeyKind distinguishes symbolic keys from textual keys.
//
// A definition that demands a symbolic key rejects input keyed textually,
// and vice versa — the two are distinct key spaces, never unified.
type KeyKind uint8

const (
	// TextKey identifies a plain string key (e.g. a JSON object member).
	TextKey KeyKind = iota
	// SymbolKey identifies a symbolic key (e.g. a Ruby-style :name).
	SymbolKey
)

// Key is a mapping key, tagged with which key space it belongs to.
type Key struct {
	Kind KeyKind
	Name string
}

// Txt builds a textual key.
func Txt(name string) Key { return Key{Kind: TextKey, Name: name} }

// Sym builds a symbolic key.
func Sym(name string) Key { return Key{Kind: SymbolKey, Name: name} }

// String renders the key for error messages: "name" for textual, ":name"
// for symbolic.
func (k Key) String() string {
	if k.Kind == SymbolKey {
		return ":" + k.Name
	}
	return k.Name
}

// Map is an ordered keyed mapping: lookups are O(1), iteration follows
// insertion order. Declaration order matters to Keys (spec §4.6 step 6
// requires output insertion order match declaration order), so Map is not
// a bare Go map.
type Map struct {
	order []Key
	data  map[Key]Value
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{data: make(map[Key]Value)}
}

// Set inserts or overwrites the value at key, preserving first-insertion
// order. Returns m for chaining.
func (m *Map) Set(key Key, v Value) *Map {
	if _, exists := m.data[key]; !exists {
		m.order = append(m.order, key)
	}
	m.data[key] = v
	return m
}

// Get looks up key, returning (value, true) if present.
func (m *Map) Get(key Key) (Value, bool) {
	v, ok := m.data[key]
	return v, ok
}

// Keys returns a copy of the declared keys, in insertion order.
func (m *Map) Keys() []Key {
	cp := make([]Key, len(m.order))
	copy(cp, m.order)
	return cp
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.order)
}

// Clone returns a deep copy that shares no mutable structure with m.
func (m *Map) Clone() *Map {
	cp := NewMap()
	for _, k := range m.order {
		cp.Set(k, m.data[k].Clone())
	}
	return cp
}

// String renders m as "{key: value, ...}" in declaration order.
func (m *Map) String() string {
	parts := make([]string, len(m.order))
	for i, k := range m.order {
		parts[i] = k.String() + ": " + m.data[k].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Equal reports whether m and other contain the same key/value pairs,
// regardless of insertion order.
func (m *Map) Equal(other *Map) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Len() != other.Len() {
		return false
	}
	for _, k := range m.order {
		ov, ok := other.data[k]
		if !ok || !m.data[k].Equal(ov) {
			return false
		}
	}
	return true
}
