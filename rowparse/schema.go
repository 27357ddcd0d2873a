package rowparse

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindFixed Kind = iota
	KindVariable
	KindCounterSplit
)

func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindVariable:
		return "variable"
	case KindCounterSplit:
		return "counter-split"
	default:
		return "unknown"
	}
}

// Field is one positional descriptor of a Schema. Build it with Fixed,
// Variable, CounterSplit, Skip or SkipSpan.
type Field struct {
	Kind Kind
	Name string

	// counter split
	CountName   string
	GroupA      string
	GroupB      string
	EmptyMarker string

	Joiner  string
	Noise   []string
	Discard bool
	// Width is the number of tokens a fixed field consumes; 0 means 1.
	Width int
}

type FieldOption func(f *Field)

// Joiner sets the separator used to join a captured span.
func Joiner(sep string) FieldOption {
	return func(f *Field) {
		f.Joiner = sep
	}
}

// Width makes a fixed field consume n adjacent tokens, joined with the
// field's joiner (a space unless Joiner says otherwise).
func Width(n int) FieldOption {
	return func(f *Field) {
		f.Width = n
		if f.Joiner == "" {
			f.Joiner = " "
		}
	}
}

// Noise removes known label substrings from the value before assignment.
func Noise(substrings ...string) FieldOption {
	return func(f *Field) {
		f.Noise = append(f.Noise, substrings...)
	}
}

func Fixed(name string, opts ...FieldOption) Field {
	return build(Field{Kind: KindFixed, Name: name}, opts)
}

func Variable(name string, opts ...FieldOption) Field {
	return build(Field{Kind: KindVariable, Name: name, Joiner: " "}, opts)
}

// CounterSplit captures the middle span and splits it with SplitCounter.
// countName may be empty to leave the count out of the record.
func CounterSplit(countName, groupA, groupB, emptyMarker string, opts ...FieldOption) Field {
	return build(Field{
		Kind:        KindCounterSplit,
		CountName:   countName,
		GroupA:      groupA,
		GroupB:      groupB,
		EmptyMarker: emptyMarker,
		Joiner:      ", ",
	}, opts)
}

// Skip consumes one token without emitting a field.
func Skip() Field {
	return Field{Kind: KindFixed, Discard: true}
}

// SkipSpan consumes the middle span without emitting a field.
func SkipSpan() Field {
	return Field{Kind: KindVariable, Discard: true}
}

func build(f Field, opts []FieldOption) Field {
	for _, opt := range opts {
		opt(&f)
	}

	return f
}

func (f Field) width() int {
	if f.Width == 0 {
		return 1
	}

	return f.Width
}

func (f Field) elastic() bool {
	return f.Kind != KindFixed
}

func (f Field) names() []string {
	if f.Discard {
		return nil
	}
	if f.Kind != KindCounterSplit {
		return []string{f.Name}
	}
	if f.CountName == "" {
		return []string{f.GroupA, f.GroupB}
	}

	return []string{f.CountName, f.GroupA, f.GroupB}
}

// Schema is the positional contract of one feed's rows.
type Schema struct {
	fields  []Field
	names   []string
	elastic int // index into fields, -1 when every field is fixed
	min     int
}

// NewSchema validates the descriptors. More than one variable-width
// descriptor is rejected with ErrSchemaAmbiguous: two adjacent spans
// cannot be told apart without a delimiter.
func NewSchema(fields ...Field) (*Schema, error) {
	if len(fields) == 0 {
		return nil, errors.New("schema has no fields")
	}

	s := &Schema{fields: fields, elastic: -1}
	seen := make(map[string]struct{})
	for i, f := range fields {
		if f.elastic() {
			if s.elastic >= 0 {
				return nil, fmt.Errorf("%w: %s at %d and %s at %d",
					ErrSchemaAmbiguous, fields[s.elastic].Kind, s.elastic, f.Kind, i)
			}
			s.elastic = i
		}

		if f.Width < 0 || f.Width != 0 && f.Kind != KindFixed {
			return nil, fmt.Errorf("field %d (%s) has invalid width %d", i, f.Kind, f.Width)
		}

		switch f.Kind {
		case KindFixed:
			s.min += f.width()
		case KindCounterSplit:
			s.min++
		}

		for _, name := range f.names() {
			if name == "" {
				return nil, fmt.Errorf("field %d (%s) has an empty name", i, f.Kind)
			}
			if _, ok := seen[name]; ok {
				return nil, fmt.Errorf("duplicate field name %q", name)
			}
			seen[name] = struct{}{}
			s.names = append(s.names, name)
		}
	}

	if len(s.names) == 0 {
		return nil, errors.New("schema emits no fields")
	}

	return s, nil
}

// MustSchema is NewSchema for package-level feed declarations.
func MustSchema(fields ...Field) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}

	return s
}

// Fields returns the emitted field names in schema order.
func (s *Schema) Fields() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)

	return out
}

// MinTokens is the number of tokens a row needs at least; for a schema
// without a variable-width field it is the exact arity.
func (s *Schema) MinTokens() int {
	return s.min
}

func (s *Schema) Elastic() bool {
	return s.elastic >= 0
}

// Check reports whether n tokens fit the schema.
func (s *Schema) Check(n int) error {
	if s.Elastic() && n >= s.min || !s.Elastic() && n == s.min {
		return nil
	}

	return &ShapeError{Expected: s.min, Got: n, Elastic: s.Elastic()}
}
