package account

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"lot-market/internal/marketerrors"
	"lot-market/internal/models"
	"lot-market/internal/repository"
	"lot-market/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 7 * 24 * time.Hour

// SessionClaims is the JWT payload issued on login.
type SessionClaims struct {
	UserID  string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// AccountService manages registration, login and chat-identity accounts.
type AccountService struct {
	users     repository.UserDB
	jwtSecret []byte
	ready     atomic.Bool
}

// NewAccountService creates a new AccountService instance
func NewAccountService(users repository.UserDB, jwtSecret string) *AccountService {
	return &AccountService{
		users:     users,
		jwtSecret: []byte(jwtSecret),
	}
}

// Bootstrap derives the admin credential and creates the admin account if it
// does not exist yet. It runs synchronously at startup; the service reports
// not-ready until it completes.
func (s *AccountService) Bootstrap(adminEmail, adminPassword string) error {
	if adminEmail == "" || adminPassword == "" {
		return fmt.Errorf("service: %w - missing admin credential", marketerrors.ErrValidation)
	}

	_, err := s.users.GetUserByEmail(adminEmail)
	switch {
	case err == nil:
		// admin already provisioned
	case errors.Is(err, marketerrors.ErrUserNotFound):
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if hashErr != nil {
			return fmt.Errorf("service: failed to hash admin password: %w", hashErr)
		}
		admin := models.User{
			UserID:       utils.GenerateID(),
			Email:        &adminEmail,
			PasswordHash: string(hash),
			IsAdmin:      true,
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.users.CreateUser(admin); err != nil {
			return fmt.Errorf("service: failed to create admin user: %w", err)
		}
	default:
		return fmt.Errorf("service: failed to look up admin user: %w", err)
	}

	s.ready.Store(true)
	return nil
}

// Ready reports whether the admin credential has been derived.
func (s *AccountService) Ready() bool {
	return s.ready.Load()
}

// Register creates a new email/password account.
func (s *AccountService) Register(email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, fmt.Errorf("service: %w - missing email or password", marketerrors.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to hash password: %w", err)
	}

	user := models.User{
		UserID:       utils.GenerateID(),
		Email:        &email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.CreateUser(user); err != nil {
		return models.User{}, fmt.Errorf("service: failed to register %s: %w", email, err)
	}
	return user, nil
}

// Login verifies the credentials and issues a session token.
func (s *AccountService) Login(email, password string) (string, models.User, error) {
	if email == "" || password == "" {
		return "", models.User{}, fmt.Errorf("service: %w - missing email or password", marketerrors.ErrValidation)
	}

	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, marketerrors.ErrUserNotFound) {
			return "", models.User{}, fmt.Errorf("service: %w", marketerrors.ErrInvalidCredentials)
		}
		return "", models.User{}, fmt.Errorf("service: failed to look up %s: %w", email, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", models.User{}, fmt.Errorf("service: %w", marketerrors.ErrInvalidCredentials)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", models.User{}, fmt.Errorf("service: failed to issue token for %s: %w", email, err)
	}
	return token, user, nil
}

// RegisterOrFetchUserByChatID returns the account bound to a chat identity,
// creating it on first contact.
func (s *AccountService) RegisterOrFetchUserByChatID(chatID int64) (models.User, error) {
	user, err := s.users.GetUserByChatID(chatID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, marketerrors.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("service: failed to look up chat id %d: %w", chatID, err)
	}

	user = models.User{
		UserID:    utils.GenerateID(),
		ChatID:    &chatID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.CreateUser(user); err != nil {
		return models.User{}, fmt.Errorf("service: failed to register chat id %d: %w", chatID, err)
	}
	return user, nil
}

// VerifyToken parses a session token and returns its claims.
func (s *AccountService) VerifyToken(token string) (SessionClaims, error) {
	var claims SessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return SessionClaims{}, fmt.Errorf("service: %w - invalid session token", marketerrors.ErrForbidden)
	}
	return claims, nil
}

func (s *AccountService) issueToken(user models.User) (string, error) {
	email := ""
	if user.Email != nil {
		email = *user.Email
	}
	claims := SessionClaims{
		UserID:  user.UserID,
		Email:   email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
