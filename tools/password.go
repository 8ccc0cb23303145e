package tools

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fixed process-wide salt shared by every account. Stored digests depend on
// this value: changing it invalidates all existing passwords, so it stays a
// constant even though a per-user salt would be stronger.
const passwordSalt = "socialflow_salt_2024"

// HashPassword returns the hex SHA-256 digest of password+salt.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password + passwordSalt))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether password re-hashes to digest.
func VerifyPassword(password string, digest string) bool {
	return HashPassword(password) == digest
}
