package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/kendall-kelly/tailorshop-api/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// TokenConfig holds what is needed to sign and check access tokens.
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// AuthService registers staff users and issues the HS256 tokens AuthGate
// accepts. Only the most recently issued token of a user is valid.
type AuthService struct {
	users *repository.UserRepo
	cfg   TokenConfig
	cost  int
	now   func() time.Time
	log   *zap.Logger
}

func NewAuthService(users *repository.UserRepo, cfg TokenConfig, log *zap.Logger) *AuthService {
	return &AuthService{
		users: users,
		cfg:   cfg,
		cost:  bcrypt.DefaultCost,
		now:   time.Now,
		log:   log.Named("auth"),
	}
}

// Register creates a user with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.Wrap(ErrValidation, "username is required")
	}
	if len(password) < minPasswordLength {
		return nil, errors.Wrapf(ErrValidation, "password must be at least %d characters", minPasswordLength)
	}

	taken, err := s.users.UsernameTaken(ctx, username)
	if err != nil {
		return nil, errors.Wrap(err, "check username")
	}
	if taken {
		return nil, errors.Wrapf(ErrUsernameTaken, "%q", username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	user := &models.User{Username: username, Password: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "create user")
	}
	s.log.Info("user registered", zap.Uint("user_id", user.ID))
	return user, nil
}

// Login checks the password and issues a new token, revoking any previous one.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repository.ErrNotFound) {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "look up user")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.IssueToken(user.ID)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign token")
	}
	if err := s.users.SetToken(ctx, user.ID, &token); err != nil {
		return "", time.Time{}, errors.Wrap(err, "store token")
	}
	s.log.Info("user logged in", zap.Uint("user_id", user.ID))
	return token, exp, nil
}

// Logout revokes the user's current token.
func (s *AuthService) Logout(ctx context.Context, userID uint) error {
	if err := s.users.SetToken(ctx, userID, nil); err != nil {
		return errors.Wrapf(err, "clear token of user %d", userID)
	}
	return nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrapf(err, "load user %d", userID)
	}
	return user, nil
}

// IssueToken signs an access token for the user without storing it.
func (s *AuthService) IssueToken(userID uint) (string, time.Time, error) {
	// NumericDate carries whole seconds; exp matches what the token encodes.
	now := s.now().UTC().Truncate(time.Second)
	exp := now.Add(s.cfg.TTL)

	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    s.cfg.Issuer,
		Subject:   strconv.FormatUint(uint64(userID), 10),
		Audience:  []string{s.cfg.Audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.cfg.Secret))
	return signed, exp, err
}

// VerifyStoredToken fails with ErrInvalidToken unless token is the one the
// user was last issued.
func (s *AuthService) VerifyStoredToken(ctx context.Context, userID uint, token string) error {
	ok, err := s.users.HasToken(ctx, userID, token)
	if err != nil {
		return errors.Wrap(err, "check stored token")
	}
	if !ok {
		return ErrInvalidToken
	}
	return nil
}
