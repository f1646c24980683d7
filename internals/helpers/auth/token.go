package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"anpl_backend/internals/configs"
)

const tokenTTL = 24 * time.Hour

// CreateToken issues the session JWT carrying user id and role.
func CreateToken(userID uuid.UUID, role string) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("missing JWT secret")
	}
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"role":    role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// ParseToken verifies the JWT and returns (userID, role).
func ParseToken(tokenString string) (uuid.UUID, string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		return uuid.Nil, "", err
	}

	rawID, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, "", errors.New("token has no user_id claim")
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("invalid user_id claim: %w", err)
	}

	role, _ := claims["role"].(string)
	return userID, role, nil
}
