package infrastructure

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher abstracts hashing so the algorithm can be swapped later.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// BcryptHasher hashes with a per-call random salt. The cost and salt are
// embedded in the hash itself, so verification needs no side channel.
type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{Cost: cost}
}

func (b *BcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify returns false for a wrong password or a malformed hash; it never
// reports why. bcrypt's comparison is constant-time.
func (b *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
