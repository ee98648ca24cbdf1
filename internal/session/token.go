package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errBadToken = errors.New("session: invalid token")

// GenerateToken signs a bearer token carrying the session id.
func GenerateToken(secret []byte, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(30 * 24 * time.Hour).Unix(),
		"iat":        time.Now().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

// ParseToken verifies a token and extracts the session id.
func ParseToken(secret []byte, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", errBadToken
	}

	data, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errBadToken
	}
	id, ok := data["session_id"].(string)
	if !ok || id == "" {
		return "", errBadToken
	}
	return id, nil
}
