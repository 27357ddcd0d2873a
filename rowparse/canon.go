package rowparse

// DefaultSentinels are the literals the source uses for "no data".
var DefaultSentinels = []string{"?", " ?"}

// Canonicalize replaces every value equal to one of sentinels with
// Missing, in place. With no sentinels given DefaultSentinels apply.
// A nil set is returned as is.
func Canonicalize(set *RecordSet, sentinels ...string) *RecordSet {
	if set == nil {
		return nil
	}
	if len(sentinels) == 0 {
		sentinels = DefaultSentinels
	}
	miss := make(map[string]struct{}, len(sentinels))
	for _, s := range sentinels {
		miss[s] = struct{}{}
	}

	for _, r := range set.records {
		for i, v := range r.values {
			s, ok := v.Get()
			if !ok {
				continue
			}
			if _, hit := miss[s]; hit {
				r.values[i] = Missing
			}
		}
	}

	return set
}
