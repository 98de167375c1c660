package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is deliberately vague: it never reveals whether the
// email exists.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles login, session token issuance and validation. Sessions
// ride in a signed cookie rather than an Authorization header.
type AuthService struct {
	userRepo        repositories.UserRepository
	jwtSecret       []byte
	sessionDuration time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:        userRepo,
		jwtSecret:       []byte(jwtSecret),
		sessionDuration: 24 * time.Hour,
	}
}

// RegisterUser stores a new account with a bcrypt-hashed password.
func (s *AuthService) RegisterUser(user *models.User) error {
	if existing, err := s.userRepo.GetByEmail(user.Email); err == nil && existing != nil {
		return fmt.Errorf("email '%s' already registered", user.Email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)
	if user.Role == "" {
		user.Role = models.RoleCustomer
	}

	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// Login authenticates by email and password and returns the user with a
// signed session token.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(s.sessionDuration).Unix(),
		"iat":     time.Now().Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return user, signed, nil
}

// SessionDuration reports how long issued session cookies stay valid.
func (s *AuthService) SessionDuration() time.Duration {
	return s.sessionDuration
}

// ValidateSession parses a session token and loads the user it names.
func (s *AuthService) ValidateSession(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("session validation error: %v", err)
		return nil, fmt.Errorf("invalid session: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session")
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return nil, fmt.Errorf("invalid session")
	}

	return s.userRepo.GetByID(userID)
}
