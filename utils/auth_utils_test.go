package utils

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

const testSecret = "test-secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(testSecret, 42, 30*time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	userID, err := ParseAccessToken(testSecret, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user id 42, got %d", userID)
	}
}

func TestAccessTokenExpired(t *testing.T) {
	token, err := GenerateAccessToken(testSecret, 42, -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseAccessToken(testSecret, token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestAccessTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(testSecret, 42, 30*time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseAccessToken("other-secret", token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestAccessTokenTampered(t *testing.T) {
	token, err := GenerateAccessToken(testSecret, 42, 30*time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	tampered := parts[0] + ".eyJ1c2VyX2lkIjo5OTl9." + parts[2]

	if _, err := ParseAccessToken(testSecret, tampered); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestAccessTokenRejectsNoneAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(30 * time.Minute).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}

	if _, err := ParseAccessToken(testSecret, signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for alg=none token, got %v", err)
	}
}

func TestAccessTokenRejectsNonHMACAlgorithm(t *testing.T) {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"user_id":42,"exp":9999999999}`))
	token := header + "." + payload + "." + base64.RawURLEncoding.EncodeToString([]byte("signature"))

	if _, err := ParseAccessToken(testSecret, token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for RS256 token, got %v", err)
	}
}

func TestAccessTokenGarbage(t *testing.T) {
	for _, tok := range []string{"", "garbage", "a.b", "a.b.c"} {
		if _, err := ParseAccessToken(testSecret, tok); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", tok, err)
		}
	}
}

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hashed == "secret123" {
		t.Fatal("password stored in plaintext")
	}

	if !VerifyPassword("secret123", hashed) {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword("wrong", hashed) {
		t.Fatal("wrong password accepted")
	}
}
