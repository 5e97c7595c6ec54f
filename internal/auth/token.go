// Package auth validates the access tokens issued by the identity provider.
// Token issuance (registration, Discord linking, sessions) happens elsewhere;
// this service only needs to resolve a bearer token into an Actor.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ferry/pkg/domain"
	dErrors "ferry/pkg/domain-errors"
)

// Claims are the JWT claims carried by ferry access tokens.
type Claims struct {
	PersonID    string `json:"person_id,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Superuser   bool   `json:"superuser,omitempty"`
	jwt.RegisteredClaims
}

// TokenService handles JWT validation and, for tests and tooling, creation.
type TokenService struct {
	signingKey []byte
	issuer     string
}

func NewTokenService(signingKey, issuer string) *TokenService {
	return &TokenService{signingKey: []byte(signingKey), issuer: issuer}
}

// GenerateToken mints a signed access token for the given identity.
func (s *TokenService) GenerateToken(actor domain.Actor, expiresIn time.Duration) (string, error) {
	claims := Claims{
		DisplayName: actor.DisplayName,
		Superuser:   actor.Superuser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
		},
	}
	if actor.Linked() {
		claims.PersonID = actor.PersonID.String()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.signingKey)
}

// ValidateToken parses and verifies a token and resolves the acting identity.
func (s *TokenService) ValidateToken(tokenString string) (domain.Actor, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Actor{}, dErrors.New(dErrors.CodeUnauthorized, "token has expired")
		}
		return domain.Actor{}, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return domain.Actor{}, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}

	actor := domain.Actor{
		TokenID:     claims.ID,
		DisplayName: claims.DisplayName,
		Superuser:   claims.Superuser,
	}
	if claims.PersonID != "" {
		personID, err := domain.ParsePersonID(claims.PersonID)
		if err != nil {
			return domain.Actor{}, dErrors.New(dErrors.CodeUnauthorized, "invalid person claim")
		}
		actor.PersonID = personID
	}
	return actor, nil
}
