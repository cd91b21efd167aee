package services

import (
	"errors"
	"fmt"

	"github.com/filmvault-api/config"
	"github.com/filmvault-api/dto"
	"github.com/filmvault-api/models"
	"github.com/filmvault-api/repositories"
	"github.com/filmvault-api/utils"
	"gorm.io/gorm"
)

// AuthService implements registration, login and refresh-token
// exchange on top of Basic-credential headers.
type AuthService struct {
	cfg    *config.Config
	users  *repositories.UserRepository
	tokens *TokenService
}

// NewAuthService creates a new auth service instance
func NewAuthService(cfg *config.Config, users *repositories.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{cfg: cfg, users: users, tokens: tokens}
}

// Register creates a new user account from a Basic credentials header.
// New accounts always get the default user role.
func (s *AuthService) Register(rawHeader string) (*models.User, error) {
	email, password, err := utils.DecodeBasicCredentials(rawHeader)
	if err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("email already registered: %w", utils.ErrAlreadyExists)
	}

	hash, err := utils.HashPassword(password, s.cfg.HashRounds)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: hash,
		Role:     models.RoleUser,
	}
	if err := s.users.Create(&user); err != nil {
		if utils.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("email already registered: %w", utils.ErrAlreadyExists)
		}
		return nil, err
	}

	return &user, nil
}

// Authenticate looks a user up by email and compares the password
// against the stored hash. Both failure modes return the same error so
// callers cannot probe which emails are registered.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.VerifyPassword(user.Password, password) {
		return nil, utils.ErrInvalidCredentials
	}

	return &user, nil
}

// Login authenticates Basic credentials and issues an access/refresh
// token pair.
func (s *AuthService) Login(rawHeader string) (*dto.TokenPairResponse, error) {
	email, password, err := utils.DecodeBasicCredentials(rawHeader)
	if err != nil {
		return nil, err
	}

	user, err := s.Authenticate(email, password)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.tokens.Issue(user.ID, user.Role, false)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.Issue(user.ID, user.Role, true)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RotateAccessToken issues a fresh access token from claims that the
// refresh-token gate has already verified upstream.
func (s *AuthService) RotateAccessToken(claims *dto.TokenClaims) (*dto.AccessTokenResponse, error) {
	userID, err := claims.SubjectID()
	if err != nil {
		return nil, fmt.Errorf("invalid subject claim: %w", utils.ErrUnauthorized)
	}

	accessToken, err := s.tokens.Issue(userID, claims.Role, false)
	if err != nil {
		return nil, err
	}

	return &dto.AccessTokenResponse{AccessToken: accessToken}, nil
}
