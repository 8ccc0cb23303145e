package controllers

import (
	"errors"
	"testing"
	"time"

	"github.com/blackboy404-RGB/smm/config"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndParseToken(t *testing.T) {
	SetConfigurations(config.Configuration{})

	signed, err := issueToken("jane@example.com")
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}
	email, err := parseToken(signed)
	if err != nil {
		t.Fatalf("parseToken: %v", err)
	}
	if email != "jane@example.com" {
		t.Fatalf("expected subject jane@example.com, got %q", email)
	}
}

func TestParseTokenExpired(t *testing.T) {
	SetConfigurations(config.Configuration{})

	claims := jwt.RegisteredClaims{
		Subject:   "jane@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := parseToken(signed); !errors.Is(err, errInvalidToken) {
		t.Fatalf("expected errInvalidToken, got %v", err)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	SetConfigurations(config.Configuration{})

	claims := jwt.RegisteredClaims{
		Subject:   "jane@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := parseToken(signed); !errors.Is(err, errInvalidToken) {
		t.Fatalf("expected errInvalidToken, got %v", err)
	}
}

func TestParseTokenMissingSubject(t *testing.T) {
	SetConfigurations(config.Configuration{})

	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := parseToken(signed); !errors.Is(err, errMissingClaim) {
		t.Fatalf("expected errMissingClaim, got %v", err)
	}
}

func TestParseTokenGarbage(t *testing.T) {
	SetConfigurations(config.Configuration{})

	if _, err := parseToken("not.a.token"); !errors.Is(err, errInvalidToken) {
		t.Fatalf("expected errInvalidToken, got %v", err)
	}
}
