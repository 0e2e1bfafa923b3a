package services

import (
	"errors"
	"time"

	"github.com/eldon922/ekklesia-be/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService issues and validates per-event access tokens. An event
// with a secret hash is "protected": clients unlock it once with the
// shared secret and present the returned token on mutations.
type AuthService struct {
	db        *gorm.DB
	jwtSecret []byte
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{db: db, jwtSecret: []byte(jwtSecret)}
}

// HashSecret prepares an event secret for storage. The plain secret is
// never persisted.
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Unlock checks the shared secret against the event's hash and returns
// a token scoped to that event. Unprotected events unlock without a
// secret.
func (s *AuthService) Unlock(eventID uint, secret string) (string, error) {
	var event models.Event
	if err := s.db.First(&event, eventID).Error; err != nil {
		return "", ErrEventNotFound
	}

	if event.SecretHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(event.SecretHash), []byte(secret)); err != nil {
			return "", ErrInvalidSecret
		}
	}

	return s.GenerateToken(event.ID)
}

func (s *AuthService) GenerateToken(eventID uint) (string, error) {
	claims := jwt.MapClaims{
		"event_id": eventID,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken returns the event ID the token was issued for.
func (s *AuthService) ValidateToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}

	eventIDFloat, ok := claims["event_id"].(float64)
	if !ok {
		return 0, errors.New("invalid event_id in token")
	}

	return uint(eventIDFloat), nil
}
