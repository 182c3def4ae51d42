package schema

// Closure computes the attribute closure X⁺: the maximal set of
// attributes derivable from attrs by repeated application of the given
// functional dependencies.
//
// The computation is the standard fixed-point scan: starting from a copy
// of attrs, every FD whose determinant is already contained in the result
// contributes its dependent side, until a full pass over the FD list adds
// nothing. Worst case O(F²·A) for F dependencies over A attributes, which
// is irrelevant at the schema sizes this tool targets (tens of each).
//
// Closure is monotonic (Closure(X) ⊇ X), idempotent, and deterministic.
// An empty FD list returns a copy of attrs. FDs mentioning attributes
// outside the analyzed universe are applied as written; callers wanting
// only in-universe derivations must filter the FD list first.
func Closure(attrs AttrSet, fds []FD) AttrSet {
	closure := attrs.Clone()

	changed := true
	for changed {
		changed = false
		for _, fd := range fds {
			if !closure.ContainsAll(fd.Determinant) {
				continue
			}
			if closure.ContainsAll(fd.Dependent) {
				continue
			}
			for a := range fd.Dependent {
				closure[a] = struct{}{}
			}
			changed = true
		}
	}

	return closure
}

// IsSuperkey reports whether attrs functionally determines the whole
// universe, i.e. universe ⊆ Closure(attrs).
func IsSuperkey(attrs, universe AttrSet, fds []FD) bool {
	return Closure(attrs, fds).ContainsAll(universe)
}
