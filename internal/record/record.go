package record

import (
	"bytes"
	"encoding/json"
	"slices"

	"gopkg.in/yaml.v3"

	"adlib/internal/fields"
)

// Record maps field codes to ordered value sequences. Keys keep the order in
// which they were first added. The zero value is an empty record ready to use.
type Record struct {
	order  []fields.Code
	values map[fields.Code][]string
}

// New returns an empty record.
func New() *Record {
	return &Record{values: make(map[fields.Code][]string)}
}

// Add appends value to the sequence for code, creating the key on first use.
func (r *Record) Add(code fields.Code, value string) {
	if r.values == nil {
		r.values = make(map[fields.Code][]string)
	}
	if _, ok := r.values[code]; !ok {
		r.order = append(r.order, code)
	}
	r.values[code] = append(r.values[code], value)
}

// Set replaces the sequence for code. Unlike Add it keeps the key even when
// values is empty; projections rely on that.
func (r *Record) Set(code fields.Code, values []string) {
	if r.values == nil {
		r.values = make(map[fields.Code][]string)
	}
	if _, ok := r.values[code]; !ok {
		r.order = append(r.order, code)
	}
	if values == nil {
		values = []string{}
	}
	r.values[code] = values
}

// AppendToLast concatenates text onto the last value stored for code. It
// reports false when code has no value to extend.
func (r *Record) AppendToLast(code fields.Code, text string) bool {
	vals := r.values[code]
	if len(vals) == 0 {
		return false
	}
	vals[len(vals)-1] += text
	return true
}

// Values returns the sequence for code, nil when absent. The slice is shared
// with the record.
func (r *Record) Values(code fields.Code) []string {
	if r == nil {
		return nil
	}
	return r.values[code]
}

// First returns the first value for code.
func (r *Record) First(code fields.Code) (string, bool) {
	vals := r.Values(code)
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// Has reports whether code is a key of the record.
func (r *Record) Has(code fields.Code) bool {
	if r == nil {
		return false
	}
	_, ok := r.values[code]
	return ok
}

// Contains reports whether the sequence for code holds value exactly.
func (r *Record) Contains(code fields.Code, value string) bool {
	return slices.Contains(r.Values(code), value)
}

// Codes returns the keys in insertion order.
func (r *Record) Codes() []fields.Code {
	if r == nil {
		return nil
	}
	return slices.Clone(r.order)
}

// Len returns the number of keys.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}

// Empty reports whether the record has no keys.
func (r *Record) Empty() bool { return r.Len() == 0 }

// Clone returns a deep copy.
func (r *Record) Clone() *Record {
	out := New()
	if r == nil {
		return out
	}
	for _, code := range r.order {
		out.Set(code, slices.Clone(r.values[code]))
	}
	return out
}

// Project builds a record restricted to codes. Requested codes missing from src
// are present in the result with an empty sequence.
func Project(src *Record, codes []fields.Code) *Record {
	out := New()
	for _, code := range codes {
		out.Set(code, slices.Clone(src.Values(code)))
	}
	return out
}

// MarshalJSON writes the record as an object with keys in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, code := range r.Codes() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(code))
		if err != nil {
			return nil, err
		}
		vals, err := json.Marshal(r.values[code])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(vals)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object of string arrays, keeping document key order.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}
	*r = Record{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var vals []string
		if err := dec.Decode(&vals); err != nil {
			return err
		}
		r.Set(fields.Code(key), vals)
	}
	_, err := dec.Token()
	return err
}

// MarshalYAML emits an ordered mapping node.
func (r *Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, code := range r.Codes() {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, v := range r.values[code] {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v})
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(code)},
			seq,
		)
	}
	return node, nil
}
