package http

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/user"
	"fieldops/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const sessionContextKey = "session"

var (
	errUnauthenticated = fmt.Errorf("%w: a valid bearer token is required", errs.ErrUnauthenticated)

	ErrSessionSecretRequired = errors.New("session secret must not be empty")
	ErrSessionTTLInvalid     = errors.New("session ttl must be positive")
)

// SessionTokens issues and verifies HS256 bearer tokens whose subject is a
// user id.
type SessionTokens struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionTokens(secret string, ttl time.Duration) (SessionTokens, error) {
	if secret == "" {
		return SessionTokens{}, ErrSessionSecretRequired
	}
	if ttl <= 0 {
		return SessionTokens{}, ErrSessionTTLInvalid
	}
	return SessionTokens{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token for userID valid from now for the configured TTL.
func (s SessionTokens) Issue(userID kernel.UUID, now time.Time) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", err
	}
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse verifies token and returns its subject. Every failure unwraps to
// errs.ErrUnauthenticated.
func (s SessionTokens) Parse(token string) (kernel.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", errs.ErrUnauthenticated, err)
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: bad subject: %w", errs.ErrUnauthenticated, err)
	}
	return userID, nil
}

// Session resolves the bearer token to the acting user and stores it on the
// context. Requests without a usable token, or whose user no longer exists,
// are rejected with 401.
func Session(tokens SessionTokens, actors GetActorUseCase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
				return errUnauthenticated
			}

			userID, err := tokens.Parse(strings.TrimSpace(token))
			if err != nil {
				return err
			}
			query, err := queries.NewGetActorQuery(userID)
			if err != nil {
				return errUnauthenticated
			}
			session, err := actors.Handle(c.Request().Context(), query)
			if errors.Is(err, errs.ErrObjectNotFound) {
				return errUnauthenticated
			}
			if err != nil {
				return err
			}

			c.Set(sessionContextKey, session)
			return next(c)
		}
	}
}

func sessionFrom(c echo.Context) (queries.ActorView, bool) {
	session, ok := c.Get(sessionContextKey).(queries.ActorView)
	return session, ok
}

// actorFrom returns the acting identity, anonymous when no session was
// resolved.
func actorFrom(c echo.Context) user.Actor {
	session, ok := sessionFrom(c)
	if !ok {
		return user.Anonymous()
	}
	return session.Actor()
}
