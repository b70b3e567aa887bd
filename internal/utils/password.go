package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

const saltBytes = 16

// HashPassword returns "salt$hash" where salt is 16 random bytes in hex and
// hash is hex(sha256(password + salt)).
func HashPassword(password string) (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	salt := hex.EncodeToString(buf)
	return salt + "$" + digest(password, salt), nil
}

// VerifyPassword reports whether password matches a value produced by
// HashPassword. Anything not of the form "salt$hash" never matches.
func VerifyPassword(password, stored string) bool {
	parts := strings.Split(stored, "$")
	if len(parts) != 2 {
		return false
	}
	want := digest(password, parts[0])
	return subtle.ConstantTimeCompare([]byte(want), []byte(parts[1])) == 1
}

func digest(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}
