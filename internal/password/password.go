// Package password wraps bcrypt digest creation and verification for
// passwords and remember tokens. The work factor is configurable so tests
// can run at the bcrypt minimum while production keeps an adaptive cost.
package password

import "golang.org/x/crypto/bcrypt"

const (
	// MinCost is the cheapest permitted work factor, for tests.
	MinCost = bcrypt.MinCost
	// DefaultCost is the production work factor.
	DefaultCost = bcrypt.DefaultCost
)

type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. A cost outside the
// bcrypt range falls back to DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Digest produces a salted, one-way hash of secret. The salt and cost are
// embedded in the returned value.
func (h *Hasher) Digest(secret string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether secret matches digest. bcrypt's comparison is
// constant-time with respect to the position of a mismatch.
func (h *Hasher) Verify(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
