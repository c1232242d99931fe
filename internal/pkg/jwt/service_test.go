package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHMACService_RoundTrip(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, "Dana")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.DisplayName != "Dana" {
		t.Fatalf("unexpected display name: %q", claims.DisplayName)
	}
}

func TestHMACService_ExpiredToken(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.GenerateAccessToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_WrongSecret(t *testing.T) {
	token, err := NewHMACService("secret-a", time.Hour).GenerateAccessToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := NewHMACService("secret-b", time.Hour).ValidateToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
