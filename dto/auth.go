package dto

import (
	"strconv"

	"github.com/filmvault-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// Token type tags embedded in every issued token. A refresh token can
// never authorize access to a protected resource and vice versa.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims represents our custom JWT claims: the subject id, the
// principal's ordinal role and the token type tag.
type TokenClaims struct {
	Role models.Role `json:"role"`
	Type string      `json:"type"`
	jwt.RegisteredClaims
}

// SubjectID parses the registered subject claim into the user id.
func (c *TokenClaims) SubjectID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// TokenPairResponse is returned by login.
type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AccessTokenResponse is returned by the refresh-token exchange.
type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}
