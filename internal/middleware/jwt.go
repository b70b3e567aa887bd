package middleware

import (
	"errors"
	"strings"

	"github.com/vaughan-dsouza/jobboard/internal/function"
	"github.com/vaughan-dsouza/jobboard/internal/models"
	"github.com/vaughan-dsouza/jobboard/internal/utils"
	"go.uber.org/zap"
)

const AuthHeader = "X-Authorization"

// AuthStatus says why a request is or is not authenticated. Only AuthOK
// carries an identity; every other value is anonymous to the caller.
type AuthStatus int

const (
	AuthOK AuthStatus = iota
	AuthAbsent
	AuthMalformed
	AuthInvalid
	AuthExpired
)

func (s AuthStatus) String() string {
	switch s {
	case AuthOK:
		return "ok"
	case AuthAbsent:
		return "absent"
	case AuthMalformed:
		return "malformed"
	case AuthInvalid:
		return "invalid"
	case AuthExpired:
		return "expired"
	}
	return "unknown"
}

// Identity is the authenticated caller as stated by the bearer token.
type Identity struct {
	UserID int64
	Email  string
	Role   models.Role
}

// HasRole reports whether the caller holds one of roles.
func (i *Identity) HasRole(roles ...models.Role) bool {
	if i == nil {
		return false
	}
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}

// Authenticator resolves the caller of an event from its bearer token.
// The session cookie is never consulted.
type Authenticator struct {
	secret string
	log    *zap.Logger
}

func NewAuthenticator(secret string, log *zap.Logger) *Authenticator {
	return &Authenticator{secret: secret, log: log}
}

func (a *Authenticator) Identify(ev function.Event) (*Identity, AuthStatus) {
	id, status := a.identify(ev)
	if status != AuthOK && status != AuthAbsent {
		a.log.Debug("bearer token rejected", zap.Stringer("status", status))
	}
	return id, status
}

func (a *Authenticator) identify(ev function.Event) (*Identity, AuthStatus) {
	auth := ev.Header(AuthHeader)
	if auth == "" {
		return nil, AuthAbsent
	}

	token, ok := strings.CutPrefix(auth, "Bearer ")
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return nil, AuthMalformed
	}

	claims, err := utils.VerifyToken(token, a.secret)
	if errors.Is(err, utils.ErrTokenExpired) {
		return nil, AuthExpired
	}
	if err != nil {
		return nil, AuthInvalid
	}

	return &Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   models.Role(claims.Role),
	}, AuthOK
}
