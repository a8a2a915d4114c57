package engine

import "math/rand"

// randomRole deals one of the specialized roles.
func randomRole(rng *rand.Rand) RoleKind {
	return Specialized[rng.Intn(len(Specialized))]
}
