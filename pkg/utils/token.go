package utils

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/form3tech-oss/jwt-go"
)

var ErrInvalidToken = errors.New("invalid or expired token")

const tokenTTL = 24 * time.Hour

// GenerateGuestToken signs a guest identity.
func GenerateGuestToken(secret, userId, name string) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = userId
	claims["name"] = name
	claims["exp"] = time.Now().Add(tokenTTL).Unix()
	return token.SignedString([]byte(secret))
}

// ParseToken validates a raw token and returns its identity.
func ParseToken(secret, raw string) (userId, name string, err error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}
	return Identity(token)
}

// Identity extracts the guest identity from a verified token.
func Identity(token *jwt.Token) (userId, name string, err error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrInvalidToken
	}
	userId, _ = claims["user_id"].(string)
	name, _ = claims["name"].(string)
	if userId == "" {
		return "", "", ErrInvalidToken
	}
	return userId, name, nil
}
