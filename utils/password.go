package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt hash of the password. bcrypt generates a
// fresh salt on every call, so hashing the same password twice produces
// different strings.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

// CheckPassword reports whether password matches the stored hash. A
// malformed hash counts as a mismatch, never a panic.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
