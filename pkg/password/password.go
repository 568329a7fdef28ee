// Package password wraps bcrypt hashing for stored credentials.
package password

import "golang.org/x/crypto/bcrypt"

// cost 10 matches bcrypt's default work factor.
const cost = 10

// Hash derives a salted one-way digest from the plaintext. The salt is
// random per call, so hashing the same password twice yields different
// digests that both verify.
func Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plain matches digest. A mismatch or a malformed
// digest is a normal false, not an error condition.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
