package controllers

import (
	"errors"
	"time"

	"github.com/blackboy404-RGB/smm/config"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens are valid for 7 days from issuance. There is no refresh flow; the
// client logs in again.
const tokenValidity = 7 * 24 * time.Hour

var errInvalidToken = errors.New("invalid token")
var errMissingClaim = errors.New("token has no subject claim")

func jwtSecret() []byte {
	secret := conf.Security.JwtSecret
	if secret == "" {
		secret = config.FallbackSecret
	}
	return []byte(secret)
}

// issueToken signs an HS256 bearer token carrying the user's email as the
// subject claim.
func issueToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenValidity)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// parseToken verifies signature, structure and expiry, and returns the
// subject email.
func parseToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", errInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return "", errInvalidToken
	}
	if claims.Subject == "" {
		return "", errMissingClaim
	}
	return claims.Subject, nil
}
