package schema

import "errors"

// ErrNoConvergence is returned by Decompose when the iteration cap is
// reached with schemas still pending. The accompanying steps and final
// schemas are partial and unverified.
var ErrNoConvergence = errors.New("relnorm/schema: decomposition did not converge")

// IsNoConvergenceErr returns true if err is or wraps ErrNoConvergence.
func IsNoConvergenceErr(err error) bool {
	return errors.Is(err, ErrNoConvergence)
}
