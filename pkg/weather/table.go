package weather

import (
	"fmt"
	"maps"
	"slices"
)

// Table pairs a key->code mapping with the code->metadata mapping of one code
// standard. A Table is built once and never mutated; accessors return copies.
type Table[C ~int] struct {
	name     string
	codes    Codes[C]
	metadata Metadata[C]
	order    []C
}

// NewTable copies codes and metadata into an immutable Table. It does not
// validate; call Validate or Check for that.
func NewTable[C ~int](name string, codes Codes[C], metadata Metadata[C]) *Table[C] {
	t := &Table[C]{
		name:     name,
		codes:    maps.Clone(codes),
		metadata: make(Metadata[C], len(metadata)),
	}
	for code, item := range metadata {
		t.metadata[code] = item.Clone()
	}
	t.order = slices.Sorted(maps.Keys(t.metadata))
	return t
}

// Name identifies the code standard, e.g. "wmo4677".
func (t *Table[C]) Name() string { return t.name }

// Len returns the number of metadata records.
func (t *Table[C]) Len() int { return len(t.metadata) }

// Lookup returns the metadata for a code.
func (t *Table[C]) Lookup(code C) (Item[C], bool) {
	item, ok := t.metadata[code]
	if !ok {
		return Item[C]{}, false
	}
	return item.Clone(), true
}

// Code resolves a symbolic key to its code number.
func (t *Table[C]) Code(key string) (C, bool) {
	code, ok := t.codes[key]
	return code, ok
}

// LookupKey resolves a symbolic key and returns the metadata for its code.
func (t *Table[C]) LookupKey(key string) (Item[C], bool) {
	code, ok := t.codes[key]
	if !ok {
		return Item[C]{}, false
	}
	return t.Lookup(code)
}

// Items returns every record ordered by code.
func (t *Table[C]) Items() []Item[C] {
	items := make([]Item[C], 0, len(t.order))
	for _, code := range t.order {
		items = append(items, t.metadata[code].Clone())
	}
	return items
}

// Codes returns a copy of the key->code mapping.
func (t *Table[C]) Codes() Codes[C] { return maps.Clone(t.codes) }

// Metadata returns a copy of the code->metadata mapping.
func (t *Table[C]) Metadata() Metadata[C] {
	m := make(Metadata[C], len(t.metadata))
	for code, item := range t.metadata {
		m[code] = item.Clone()
	}
	return m
}

// Validate returns every contract violation in the table joined into one
// error, or nil for a well-formed table.
func (t *Table[C]) Validate() error {
	return asError(t.Check())
}

// Check lists every contract violation: per-record field rules, the
// code/key bidirectional consistency between both mappings, and key
// uniqueness.
func (t *Table[C]) Check() []*ValidationError {
	var problems []*ValidationError
	add := func(code C, field, format string, args ...any) {
		problems = append(problems, &ValidationError{
			Table:   t.name,
			Code:    int(code),
			Field:   field,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if len(t.metadata) == 0 {
		problems = append(problems, &ValidationError{Table: t.name, Code: -1, Field: "metadata", Message: "table has no records"})
	}

	keyOwner := make(map[string]C, len(t.metadata))
	for _, code := range t.order {
		item := t.metadata[code]
		if item.Code != code {
			add(code, "code", "record carries code %d but is stored under %d", item.Code, code)
		}
		problems = append(problems, checkItem(t.name, int(code), item)...)

		if item.Key == "" {
			continue
		}
		if owner, dup := keyOwner[item.Key]; dup {
			add(code, "key", "key %q is already used by code %d", item.Key, owner)
		} else {
			keyOwner[item.Key] = code
		}

		mapped, ok := t.codes[item.Key]
		switch {
		case !ok:
			add(code, "key", "key %q is missing from the code mapping", item.Key)
		case mapped != code:
			add(code, "key", "key %q resolves to code %d", item.Key, mapped)
		}
	}

	for _, key := range slices.Sorted(maps.Keys(t.codes)) {
		code := t.codes[key]
		if _, ok := t.metadata[code]; !ok {
			add(code, "key", "key %q maps to code %d which has no metadata", key, code)
		}
	}

	return problems
}
