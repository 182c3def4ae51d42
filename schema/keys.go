package schema

// CandidateKeys enumerates every minimal candidate key of the relation:
// each returned set is a superkey (its closure covers all of attrs) and
// no proper subset of it is.
//
// The search space is pruned before enumeration: any attribute that never
// appears on the dependent side of an FD cannot be derived, so it belongs
// to every key. These essential attributes seed each candidate, and only
// combinations of the remaining attributes are enumerated, in increasing
// size order. A combination is skipped when an already-accepted key is a
// subset of it - because smaller combinations are always tested first,
// this pruning alone guarantees minimality with no separate pass.
//
// The enumeration is exponential in the number of non-essential
// attributes. That is inherent to the problem and acceptable for the
// small schemas this tool targets; callers needing bounded latency must
// limit attribute counts themselves.
//
// When FDs reference attributes outside attrs, closures escape the
// universe and no combination can test equal to it. The fallback of
// returning attrs itself only applies when attrs passes its own closure
// check, so in that degenerate case the result is an empty list - a
// latent invariant violation surfaced to the caller, not an error.
func CandidateKeys(attrs AttrSet, fds []FD) []AttrSet {
	var keys []AttrSet

	essential := attrs.Minus(RHSUnion(fds))
	remaining := attrs.Minus(essential).Sorted()

	isSuperkeyOfExisting := func(candidate AttrSet) bool {
		for _, k := range keys {
			if candidate.ContainsAll(k) {
				return true
			}
		}
		return false
	}

	for size := 0; size <= len(remaining); size++ {
		forEachCombination(remaining, size, func(combo []string) {
			candidate := essential.Union(NewAttrSet(combo...))
			if isSuperkeyOfExisting(candidate) {
				return
			}
			if Closure(candidate, fds).Equal(attrs) {
				keys = append(keys, candidate)
			}
		})
	}

	if len(keys) == 0 && Closure(attrs, fds).Equal(attrs) {
		keys = append(keys, attrs.Clone())
	}

	return keys
}

// forEachCombination visits every size-k combination of items in
// lexicographic index order. Implemented as an explicit index-vector
// iterator so termination is obvious and no shared accumulator state
// leaks between visits.
func forEachCombination(items []string, k int, visit func([]string)) {
	if k > len(items) {
		return
	}
	if k == 0 {
		visit(nil)
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		combo := make([]string, k)
		for i, j := range idx {
			combo[i] = items[j]
		}
		visit(combo)

		// Advance the rightmost index that can still move, then reset
		// everything to its right.
		i := k - 1
		for i >= 0 && idx[i] == i+len(items)-k {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
