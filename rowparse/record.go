package rowparse

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Value is a field value: either a string or the explicit absence
// Missing. The zero Value is Missing.
type Value struct {
	s  string
	ok bool
}

var Missing = Value{}

func String(s string) Value {
	return Value{s: s, ok: true}
}

func (v Value) IsMissing() bool {
	return !v.ok
}

// Get returns the string and whether it is present.
func (v Value) Get() (string, bool) {
	return v.s, v.ok
}

// String renders Missing as "".
func (v Value) String() string {
	return v.s
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}

	return json.Marshal(v.s)
}

// Record maps field names to values in schema order.
type Record struct {
	fields []string
	values []Value
}

func newRecord(fields []string) Record {
	return Record{fields: fields, values: make([]Value, len(fields))}
}

func (r Record) Len() int {
	return len(r.fields)
}

// Fields shares its backing array with every record of the same schema;
// callers must not modify it.
func (r Record) Fields() []string {
	return r.fields
}

func (r Record) Values() []Value {
	out := make([]Value, len(r.values))
	copy(out, r.values)

	return out
}

func (r Record) index(name string) int {
	for i, f := range r.fields {
		if f == name {
			return i
		}
	}

	return -1
}

func (r Record) Get(name string) (Value, bool) {
	i := r.index(name)
	if i < 0 {
		return Missing, false
	}

	return r.values[i], true
}

// Set replaces the value of an existing field. Records never gain fields.
func (r Record) Set(name string, v Value) error {
	i := r.index(name)
	if i < 0 {
		return fmt.Errorf("record has no field %q", name)
	}
	r.values[i] = v

	return nil
}

// Map loses field order; Missing values map to nil.
func (r Record) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(r.fields))
	for i, f := range r.fields {
		if s, ok := r.values[i].Get(); ok {
			m[f] = s
		} else {
			m[f] = nil
		}
	}

	return m
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := r.values[i].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// RecordSet is the normalized table of one feed. Every record has
// exactly the set's fields in the same order.
type RecordSet struct {
	fields  []string
	records []Record
}

func NewRecordSet(fields []string) *RecordSet {
	return &RecordSet{fields: fields}
}

func (s *RecordSet) Fields() []string {
	return s.fields
}

func (s *RecordSet) Len() int {
	return len(s.records)
}

func (s *RecordSet) Records() []Record {
	return s.records
}

func (s *RecordSet) Append(r Record) error {
	if !sameFields(s.fields, r.fields) {
		return fmt.Errorf("record fields %v do not match set fields %v", r.fields, s.fields)
	}
	s.records = append(s.records, r)

	return nil
}

// Head returns the first n records, or all of them when n <= 0.
func (s *RecordSet) Head(n int) []Record {
	if n <= 0 || n >= len(s.records) {
		return s.records
	}

	return s.records[:n]
}

func (s *RecordSet) MarshalJSON() ([]byte, error) {
	if s.records == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(s.records)
}

func sameFields(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
