package procuracao

import "strings"

// Field is a single "label: value" pair from a data block.
type Field struct {
	Label string
	Value string
}

// Fields is an insertion-ordered mapping of lowercase label to value.
// Setting an existing label replaces its value but keeps its position.
type Fields struct {
	keys   []string
	values map[string]string
}

func NewFields() *Fields {
	return &Fields{values: make(map[string]string)}
}

func (f *Fields) Set(label, value string) {
	if _, ok := f.values[label]; !ok {
		f.keys = append(f.keys, label)
	}
	f.values[label] = value
}

func (f *Fields) Get(label string) (string, bool) {
	v, ok := f.values[label]
	return v, ok
}

func (f *Fields) Len() int {
	return len(f.keys)
}

func (f *Fields) Keys() []string {
	return append([]string(nil), f.keys...)
}

// Entries returns the pairs in insertion order.
func (f *Fields) Entries() []Field {
	entries := make([]Field, 0, len(f.keys))
	for _, k := range f.keys {
		entries = append(entries, Field{Label: k, Value: f.values[k]})
	}
	return entries
}

// ParseFields reads a block in the form
//
//	Nome completo: ...
//	Nacionalidade: ...
//
// Lines that are empty or have no colon are ignored. Only the first colon
// splits, so values may contain colons. Labels are lowercased.
func ParseFields(block string) *Fields {
	fields := NewFields()
	for _, line := range splitLines(block) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		label, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		fields.Set(strings.ToLower(strings.TrimSpace(label)), strings.TrimSpace(value))
	}
	return fields
}

// splitLines breaks on every line boundary a browser textarea or a pasted
// office document may carry, not only '\n'.
func splitLines(s string) []string {
	return strings.FieldsFunc(s, isLineBoundary)
}

func isLineBoundary(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
