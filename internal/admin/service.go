package admin

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service holds the single admin account in memory. The password is kept as a
// bcrypt hash; successful logins are answered with a signed HS256 token that
// the jwtware middleware verifies on protected routes.
type Service struct {
	mu        sync.Mutex
	email     string
	hash      []byte
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewService(email, password, jwtSecret string) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Service{
		email:     email,
		hash:      hash,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  24 * time.Hour,
	}, nil
}

// Login verifies the credentials and returns a signed admin token.
func (s *Service) Login(email, password string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if email != s.email || bcrypt.CompareHashAndPassword(s.hash, []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"role":  "admin",
		"email": s.email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// UpdateCredentials replaces the account after verifying the current
// credentials. Tokens issued earlier stay valid until they expire.
func (s *Service) UpdateCredentials(currentEmail, currentPassword, newEmail, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if currentEmail != s.email || bcrypt.CompareHashAndPassword(s.hash, []byte(currentPassword)) != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.email = newEmail
	s.hash = hash
	return nil
}
