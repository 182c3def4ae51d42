package schema

// DetermineNormalForm classifies the highest normal form the relation
// satisfies and reports the dependencies that block the next level.
//
// Only FDs whose determinant and dependent are both subsets of attrs take
// part; dependencies reaching outside the relation are inert here (they
// still participate in closure computation). Trivial dependencies
// (dependent ⊆ determinant) are skipped.
//
// Each remaining FD is tested against BCNF first: its determinant must be
// a superkey, judged by whether the closure under the full FD list covers
// attrs. A non-superkey determinant is a BCNF violation, then refined:
//
//   - determinant is a proper subset of some candidate key and determines
//     a non-prime attribute: partial dependency, a 2NF violation;
//   - determinant is not inside any key and determines a non-prime
//     attribute: transitive dependency, a 3NF violation.
//
// The verdict names the highest form actually satisfied, checked in
// strict precedence: any 2NF violation caps the schema at 1NF, else any
// 3NF violation caps it at 2NF, else any BCNF violation caps it at 3NF,
// else BCNF. The returned violations are those of the first non-empty
// level, in FD declaration order.
func DetermineNormalForm(attrs AttrSet, fds []FD, keys []AttrSet) (NormalForm, string, []Violation) {
	prime := PrimeAttributes(keys)

	var violations2NF, violations3NF, violationsBCNF []Violation

	for _, fd := range fds {
		if !attrs.ContainsAll(fd.Determinant) || !attrs.ContainsAll(fd.Dependent) {
			continue
		}

		cleanDependent := fd.Dependent.Minus(fd.Determinant)
		if len(cleanDependent) == 0 {
			continue
		}

		if Closure(fd.Determinant, fds).ContainsAll(attrs) {
			continue
		}
		violationsBCNF = append(violationsBCNF, Violation{
			Determinant: fd.Determinant,
			Dependent:   cleanDependent,
			Reason:      ReasonNotSuperkey,
		})

		properSubsetOfKey := false
		for _, k := range keys {
			if fd.Determinant.ProperSubsetOf(k) {
				properSubsetOfKey = true
				break
			}
		}

		nonPrime := cleanDependent.Minus(prime)
		if len(nonPrime) == 0 {
			continue
		}

		if properSubsetOfKey {
			violations2NF = append(violations2NF, Violation{
				Determinant: fd.Determinant,
				Dependent:   nonPrime,
				Reason:      ReasonPartialDependency,
			})
		} else {
			violations3NF = append(violations3NF, Violation{
				Determinant: fd.Determinant,
				Dependent:   nonPrime,
				Reason:      ReasonTransitiveDependency,
			})
		}
	}

	switch {
	case len(violations2NF) > 0:
		return NF1, "Violates 2NF (Partial Dependencies detected).", violations2NF
	case len(violations3NF) > 0:
		return NF2, "Violates 3NF (Transitive Dependencies detected).", violations3NF
	case len(violationsBCNF) > 0:
		return NF3, "Violates BCNF (Dependencies where LHS is not a superkey detected).", violationsBCNF
	default:
		return BCNF, "Satisfies BCNF (All determinants are superkeys).", nil
	}
}
