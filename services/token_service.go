package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/filmvault-api/config"
	"github.com/filmvault-api/dto"
	"github.com/filmvault-api/models"
	"github.com/filmvault-api/utils"
	"github.com/golang-jwt/jwt/v5"
)

// Token lifetimes: access tokens are short-lived, refresh tokens last a
// day and are exchanged for fresh access tokens at /auth/token/access.
const (
	accessTokenTTL  = 300 * time.Second
	refreshTokenTTL = 24 * time.Hour
)

// TokenService issues and verifies the signed access and refresh
// tokens. Each token type has its own HS256 secret, so one type can
// never pass verification as the other.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
}

// NewTokenService creates a token service from the configured secrets
func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		accessSecret:  []byte(cfg.AccessTokenSecret),
		refreshSecret: []byte(cfg.RefreshTokenSecret),
	}
}

// Issue signs a token carrying the subject id, role and type tag.
func (s *TokenService) Issue(userID uint, role models.Role, isRefresh bool) (string, error) {
	tokenType, secret, ttl := dto.TokenTypeAccess, s.accessSecret, accessTokenTTL
	if isRefresh {
		tokenType, secret, ttl = dto.TokenTypeRefresh, s.refreshSecret, refreshTokenTTL
	}

	now := time.Now()
	claims := dto.TokenClaims{
		Role: role,
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Verify checks signature and expiry against the secret of the expected
// token type and asserts the embedded type tag matches. Every failure
// comes back as unauthorized, distinct from the malformed-request error
// used for header-format problems.
func (s *TokenService) Verify(token string, expectRefresh bool) (*dto.TokenClaims, error) {
	secret, want := s.accessSecret, dto.TokenTypeAccess
	if expectRefresh {
		secret, want = s.refreshSecret, dto.TokenTypeRefresh
	}

	claims := &dto.TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("token verification failed: %w", utils.ErrUnauthorized)
	}
	if claims.Type != want {
		return nil, fmt.Errorf("expected a %s token: %w", want, utils.ErrUnauthorized)
	}
	if !claims.Role.Valid() {
		return nil, fmt.Errorf("unrecognized role %d: %w", claims.Role, utils.ErrUnauthorized)
	}

	return claims, nil
}

// VerifyAny verifies a token of either type: the unverified payload's
// type tag selects the secret, then the token goes through the full
// Verify path. Used by the bearer middleware, which accepts both types
// and leaves type enforcement to the gates.
func (s *TokenService) VerifyAny(token string) (*dto.TokenClaims, error) {
	unverified := &dto.TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, unverified); err != nil {
		return nil, fmt.Errorf("undecodable token: %w", utils.ErrUnauthorized)
	}

	switch unverified.Type {
	case dto.TokenTypeAccess:
		return s.Verify(token, false)
	case dto.TokenTypeRefresh:
		return s.Verify(token, true)
	default:
		return nil, fmt.Errorf("unknown token type %q: %w", unverified.Type, utils.ErrUnauthorized)
	}
}
