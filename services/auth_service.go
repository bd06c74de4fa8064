package services

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is how long an admin token stays valid. There is no refresh
// mechanism; after expiry the admin logs in again.
const TokenTTL = 7 * 24 * time.Hour

// AuthService issues admin tokens against the single configured password.
type AuthService interface {
	Login(password string) (string, *ServiceError)
}

type authServiceImpl struct {
	passwordHash string
	jwtSecret    []byte
	logger       *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(passwordHash string, jwtSecret []byte, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
		logger:       logger,
	}
}

// Login checks the password against the stored bcrypt hash and returns a
// signed token asserting admin privilege.
func (s *authServiceImpl) Login(password string) (string, *ServiceError) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		s.logger.Warn("Admin login rejected")
		return "", &ServiceError{StatusCode: http.StatusUnauthorized, Message: "Неверный пароль"}
	}

	claims := jwt.MapClaims{
		"admin": true,
		"exp":   time.Now().Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		s.logger.Error("Failed to sign admin token", zap.Error(err))
		return "", errInternal()
	}

	s.logger.Info("Admin logged in")
	return signed, nil
}
