package rowparse

import (
	"strconv"
	"strings"
)

// Parse decomposes tokens along the schema: head fields left to right,
// tail fields right to left from the end, and whatever lies between goes
// to the single variable-width field. Parse never pads; run Fill first
// for rows that are one token short.
func (s *Schema) Parse(tokens Tokens) (Record, error) {
	if err := s.Check(len(tokens)); err != nil {
		return Record{}, err
	}

	rec := newRecord(s.names)
	slot, pos := 0, 0

	head := s.fields
	var tail []Field
	if s.Elastic() {
		head = s.fields[:s.elastic]
		tail = s.fields[s.elastic+1:]
	}

	for _, f := range head {
		slot = s.assign(rec, slot, f, tokens[pos:pos+f.width()])
		pos += f.width()
	}

	if !s.Elastic() {
		return rec, nil
	}

	tailWidth := 0
	for _, f := range tail {
		tailWidth += f.width()
	}

	middle := tokens[pos : len(tokens)-tailWidth]
	slot, err := s.assignSpan(rec, slot, s.fields[s.elastic], middle)
	if err != nil {
		return Record{}, err
	}

	pos = len(tokens) - tailWidth
	for _, f := range tail {
		slot = s.assign(rec, slot, f, tokens[pos:pos+f.width()])
		pos += f.width()
	}

	return rec, nil
}

func (s *Schema) assign(rec Record, slot int, f Field, span Tokens) int {
	if f.Discard {
		return slot
	}
	rec.values[slot] = String(f.clean(strings.Join(span, f.Joiner)))

	return slot + 1
}

func (s *Schema) assignSpan(rec Record, slot int, f Field, span Tokens) (int, error) {
	if f.Discard {
		return slot, nil
	}

	switch f.Kind {
	case KindVariable:
		rec.values[slot] = String(f.clean(strings.Join(span, f.Joiner)))
		return slot + 1, nil
	case KindCounterSplit:
		a, b, err := SplitCounter(span, f.EmptyMarker)
		if err != nil {
			return slot, err
		}
		if f.CountName != "" {
			rec.values[slot] = String(strconv.Itoa(len(a)))
			slot++
		}
		rec.values[slot] = String(f.clean(strings.Join(a, f.Joiner)))
		rec.values[slot+1] = String(f.clean(strings.Join(b, f.Joiner)))
		return slot + 2, nil
	}

	return slot, nil
}

func (f Field) clean(v string) string {
	if len(f.Noise) == 0 {
		return v
	}
	for _, n := range f.Noise {
		v = strings.ReplaceAll(v, n, "")
	}

	return strings.TrimSpace(v)
}
