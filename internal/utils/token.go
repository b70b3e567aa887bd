package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the lifetime of both the bearer token and the session cookie.
const TokenTTL = 7 * 24 * time.Hour

var (
	ErrNoSecret     = errors.New("secret not configured")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims is the bearer token payload: {user_id, email, role, exp}.
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(userID int64, email, role, secret string, now time.Time) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, ErrNoSecret
	}

	expTime := now.Add(TokenTTL)

	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expTime),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expTime, nil
}

// VerifyToken checks signature, algorithm and expiry. Failures are reported
// as ErrTokenExpired or ErrTokenInvalid so callers can log the reason.
func VerifyToken(tokenStr, secret string) (*Claims, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
	)

	var claims Claims

	_, err := parser.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, ErrTokenExpired
	}
	if err != nil {
		return nil, errors.Join(ErrTokenInvalid, err)
	}

	return &claims, nil
}
