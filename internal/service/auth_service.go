package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/iftu-lms-api/internal/models"
	appErrors "github.com/noah-isme/iftu-lms-api/pkg/errors"
)

type authUserLookup interface {
	FindByID(ctx context.Context, id string) (models.User, bool)
}

// AuthConfig defines configuration for authentication flows.
type AuthConfig struct {
	AccessTokenSecret string
	AccessTokenExpiry time.Duration
	Issuer            string
	// DemoAccounts entries are "username:password:role[:userID]".
	DemoAccounts []string
}

type demoAccount struct {
	passwordHash []byte
	role         models.UserRole
	userID       string
}

// AuthService checks demo credentials and issues access tokens. It scopes the
// presentation layer only; repositories never consult it.
type AuthService struct {
	users     authUserLookup
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
	accounts  map[string]demoAccount
}

// NewAuthService constructs an AuthService, hashing every configured demo password.
func NewAuthService(users authUserLookup, validate *validator.Validate, logger *zap.Logger, config AuthConfig) (*AuthService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	accounts, err := parseDemoAccounts(config.DemoAccounts)
	if err != nil {
		return nil, err
	}
	return &AuthService{users: users, validator: validate, logger: logger, config: config, accounts: accounts}, nil
}

func parseDemoAccounts(entries []string) (map[string]demoAccount, error) {
	accounts := make(map[string]demoAccount, len(entries))
	for _, entry := range entries {
		parts := strings.Split(entry, ":")
		if len(parts) < 3 || len(parts) > 4 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid demo account entry %q", entry)
		}
		role := models.UserRole(parts[2])
		if !role.Valid() {
			return nil, fmt.Errorf("demo account %s: unknown role %q", parts[0], parts[2])
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(parts[1]), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash demo password: %w", err)
		}
		account := demoAccount{passwordHash: hash, role: role}
		if len(parts) == 4 {
			account.userID = parts[3]
		}
		accounts[parts[0]] = account
	}
	return accounts, nil
}

// Login authenticates demo credentials and returns an access token.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	account, ok := s.accounts[req.Username]
	if !ok {
		return nil, appErrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(account.passwordHash, []byte(req.Password)); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	info := models.UserInfo{ID: account.userID, Name: req.Username, Role: account.role}
	if info.ID == "" {
		info.ID = req.Username
	}
	if s.users != nil && account.userID != "" {
		if user, found := s.users.FindByID(ctx, account.userID); found {
			info.Name = user.Base().Name
		}
	}

	token, err := s.generateAccessToken(info)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create access token")
	}

	s.logger.Info("login succeeded", zap.String("user_id", info.ID), zap.String("role", string(info.Role)))

	return &models.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(s.config.AccessTokenExpiry.Seconds()),
		User:        info,
	}, nil
}

// ValidateToken parses and verifies an access token.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.AccessTokenSecret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}

	return claims, nil
}

func (s *AuthService) generateAccessToken(info models.UserInfo) (string, error) {
	issuedAt := time.Now().UTC()
	claims := &models.JWTClaims{
		UserID: info.ID,
		Role:   info.Role,
		Name:   info.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   info.ID,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.config.AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.AccessTokenSecret))
}
