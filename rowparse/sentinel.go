package rowparse

// Sentinel is the literal the source site prints in place of missing data.
const Sentinel = "?"

// Fill pads a row that is exactly one token short by inserting Sentinel
// at position at of the padded row. See FillWith.
func Fill(tokens Tokens, expected, at int) (Tokens, error) {
	return FillWith(tokens, expected, at, Sentinel)
}

// FillWith inserts sentinel so the result has expected tokens, with the
// sentinel landing at index at (negative counts from the end, -1 is the
// last position). A row that already has expected tokens is returned as
// is. Any other length is a ShapeError: only the single absent optional
// column is recoverable.
func FillWith(tokens Tokens, expected, at int, sentinel string) (Tokens, error) {
	switch len(tokens) {
	case expected:
		return tokens, nil
	case expected - 1:
	default:
		return nil, &ShapeError{Expected: expected, Got: len(tokens)}
	}

	if at < 0 {
		at += expected
	}
	if at < 0 || at >= expected {
		return nil, ErrFillIndex
	}

	out := make(Tokens, 0, expected)
	out = append(out, tokens[:at]...)
	out = append(out, sentinel)
	out = append(out, tokens[at:]...)

	return out, nil
}

// Gap is a feed's one-token-short rule.
type Gap struct {
	At       int
	Sentinel string
}

func (g Gap) fill(tokens Tokens, expected int) (Tokens, error) {
	s := g.Sentinel
	if s == "" {
		s = Sentinel
	}

	return FillWith(tokens, expected, g.At, s)
}
