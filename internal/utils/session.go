package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	SessionCookieName = "session_token"
	sessionTokenBytes = 32
)

// NewSessionToken returns 32 random bytes as URL-safe base64 without padding.
func NewSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// SessionCookie formats the cookie instruction for a freshly minted session.
func SessionCookie(token string) string {
	return fmt.Sprintf("%s=%s; HttpOnly; Secure; SameSite=Strict; Max-Age=%d; Path=/",
		SessionCookieName, token, int(TokenTTL.Seconds()))
}

// ClearSessionCookie formats the cookie instruction that drops the session.
func ClearSessionCookie() string {
	return SessionCookieName + "=; HttpOnly; Secure; SameSite=Strict; Max-Age=0; Path=/"
}

// SessionTokenFromCookie extracts session_token from a raw Cookie header.
func SessionTokenFromCookie(header string) string {
	for _, part := range strings.Split(header, ";") {
		name, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if ok && name == SessionCookieName {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
