// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"gestao/config"
	"gestao/internal/domain/service"
)

const defaultSessionTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     string        // Secret key for signing session tokens.
	sessionTTL time.Duration // Time-to-live for sessions.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session token secret must be provided")
	}

	ttl := defaultSessionTTL
	if cfg.Auth != nil && cfg.Auth.SessionTTL > 0 {
		ttl = cfg.Auth.SessionTTL
	}

	return &jwtService{
		secret:     cfg.SecretKey.Session,
		sessionTTL: ttl,
	}, nil
}

// GenerateSessionToken creates a signed token identifying one session.
func (s *jwtService) GenerateSessionToken(sessionID, identityID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sid": sessionID.String(),           // Session identifier
		"sub": identityID.String(),          // Subject (who the token is for)
		"iat": now.Unix(),                   // Issued At
		"exp": now.Add(s.sessionTTL).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateSessionToken checks the validity of a token string and extracts its claims.
func (s *jwtService) ValidateSessionToken(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	sessionID, err := parseUUIDClaim(mapClaims, "sid")
	if err != nil {
		return nil, err
	}
	identityID, err := parseUUIDClaim(mapClaims, "sub")
	if err != nil {
		return nil, err
	}

	return &service.SessionClaims{
		SessionID:  sessionID,
		IdentityID: identityID,
	}, nil
}

// HashToken returns the SHA-256 hex digest under which a raw token is stored.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// GetSessionDuration returns the configured session lifetime.
func (s *jwtService) GetSessionDuration() time.Duration {
	return s.sessionTTL
}

func parseUUIDClaim(claims jwt.MapClaims, key string) (uuid.UUID, error) {
	raw, ok := claims[key].(string)
	if !ok {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}

	return id, nil
}
