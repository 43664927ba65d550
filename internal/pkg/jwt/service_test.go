package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestHMACService_IssueAndVerify(t *testing.T) {
	svc := NewHMACService("test-secret", 5*time.Hour)

	tok, err := svc.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if tok == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("email claim altered: %q", claims.Email)
	}
}

func TestHMACService_Expiry(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	svc := NewHMACService("test-secret", 5*time.Hour)
	svc.now = func() time.Time { return issued }

	tok, err := svc.Issue("bob@example.com")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// Still valid just before the 5 hour window closes.
	svc.now = func() time.Time { return issued.Add(5*time.Hour - time.Minute) }
	if _, err := svc.Verify(tok); err != nil {
		t.Fatalf("token should still be valid: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(5*time.Hour + time.Minute) }
	if _, err := svc.Verify(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_TamperedToken(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)

	tok, err := svc.Issue("carol@example.com")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape")
	}
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	if _, err := svc.Verify(tampered); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_WrongSecret(t *testing.T) {
	tok, err := NewHMACService("secret-a", time.Hour).Issue("dave@example.com")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := NewHMACService("secret-b", time.Hour).Verify(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_Malformed(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(tok); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid for %q, got %v", tok, err)
		}
	}
}
