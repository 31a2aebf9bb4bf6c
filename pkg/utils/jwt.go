package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"nestling/pkg/config"
)

var (
	accessKey  []byte
	refreshKey []byte
	accessTTL  = time.Hour
	refreshTTL = 7 * 24 * time.Hour
)

// InitJWT wires the signing keys and expirations from config. Must run
// before any token is issued or validated.
func InitJWT(cfg config.JWTConfig) {
	accessKey = []byte(cfg.AccessSecret)
	refreshKey = []byte(cfg.RefreshSecret)
	if cfg.AccessExpiration > 0 {
		accessTTL = cfg.AccessExpiration
	}
	if cfg.RefreshExpiration > 0 {
		refreshTTL = cfg.RefreshExpiration
	}
}

type Claims struct {
	ParentID string `json:"parent_id"`
	jwt.RegisteredClaims
}

func CreateAccessToken(parentID uuid.UUID) (string, error) {
	return createToken(parentID, accessKey, accessTTL)
}

func CreateRefreshToken(parentID uuid.UUID) (string, error) {
	return createToken(parentID, refreshKey, refreshTTL)
}

func createToken(parentID uuid.UUID, key []byte, ttl time.Duration) (string, error) {
	claims := &Claims{
		ParentID: parentID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

func ValidateAccessToken(tokenString string) (*Claims, error) {
	return validateToken(tokenString, accessKey)
}

func ValidateRefreshToken(tokenString string) (*Claims, error) {
	return validateToken(tokenString, refreshKey)
}

func validateToken(tokenString string, key []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
