// Package rowparse normalizes the irregular cell text of scraped table rows
// into fixed-schema records.
package rowparse

import "strings"

// Tokens is the ordered cell text of one scraped row.
// Position encodes column identity, so order is never changed.
type Tokens []string

// Clean splits a flattened text block on line breaks and keeps the
// non-blank pieces, trimmed.
func Clean(raw string) Tokens {
	return CleanTokens(strings.Split(raw, "\n"))
}

// CleanWords is Clean for sources whose cells are only separated by
// whitespace.
func CleanWords(raw string) Tokens {
	return CleanTokens(strings.Fields(raw))
}

func CleanTokens(pieces []string) Tokens {
	out := make(Tokens, 0, len(pieces))
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}

	return out
}

func (t Tokens) clone() Tokens {
	out := make(Tokens, len(t))
	copy(out, t)

	return out
}

// without returns t minus every token equal to one of drop.
func (t Tokens) without(drop []string) Tokens {
	if len(drop) == 0 {
		return t
	}
	out := make(Tokens, 0, len(t))
next:
	for _, tok := range t {
		for _, d := range drop {
			if tok == d {
				continue next
			}
		}
		out = append(out, tok)
	}

	return out
}
