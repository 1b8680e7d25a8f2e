package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/nyanga-tradition/yayoh-api/config"
)

// AdminClaims are the JWT claims carried by an admin bearer token
type AdminClaims struct {
	AdminID uint   `json:"id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a plaintext password against a bcrypt hash
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateToken issues a signed, time-limited bearer token for an admin
func GenerateToken(adminID uint, email, role string) (string, error) {
	cfg := config.GetConfig()
	if cfg == nil || cfg.JWTSecret == "" {
		return "", errors.New("JWT secret not configured")
	}

	expiryHours := cfg.JWTExpiryHours
	if expiryHours <= 0 {
		expiryHours = 24
	}

	now := time.Now()
	claims := AdminClaims{
		AdminID: adminID,
		Email:   email,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expiryHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseToken verifies a bearer token and returns its admin claims
func ParseToken(tokenString string) (*AdminClaims, error) {
	cfg := config.GetConfig()
	if cfg == nil || cfg.JWTSecret == "" {
		return nil, errors.New("JWT secret not configured")
	}

	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
