package rowparse

import "strconv"

// SplitCounter splits tokens into two adjacent lists whose only boundary
// is a leading count of the first list's length. A leading emptyMarker
// means the first list is empty and everything after it is the second.
func SplitCounter(tokens Tokens, emptyMarker string) (a, b Tokens, err error) {
	if len(tokens) == 0 {
		return nil, nil, &CounterError{Tokens: Tokens{}, Reason: "no count token"}
	}

	head, rest := tokens[0], tokens[1:]
	if emptyMarker != "" && head == emptyMarker {
		return Tokens{}, rest.clone(), nil
	}

	if !digits(head) {
		return nil, nil, &CounterError{Tokens: tokens.clone(), Reason: strconv.Quote(head) + " is not a non-negative integer"}
	}
	n, err := strconv.Atoi(head)
	if err != nil {
		return nil, nil, &CounterError{Tokens: tokens.clone(), Reason: err.Error()}
	}
	if n > len(rest) {
		return nil, nil, &CounterError{
			Tokens: tokens.clone(),
			Reason: "count " + head + " exceeds " + strconv.Itoa(len(rest)) + " remaining tokens",
		}
	}

	return rest[:n].clone(), rest[n:].clone(), nil
}

// digits reports whether s is a non-empty run of ASCII digits; signs are
// not counts.
func digits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
