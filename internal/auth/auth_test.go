package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

const secret = "test-secret-do-not-use"

func TestAccessTokenRoundTrip(t *testing.T) {
	iss := NewIssuer(secret, 0, 0)

	tok, err := iss.AccessToken(Session{UserID: "u1", Email: "u1@example.com"})
	if err != nil {
		t.Fatalf("make token: %v", err)
	}

	s, err := iss.Resolve(tok)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if s.UserID != "u1" || s.Email != "u1@example.com" {
		t.Errorf("session mismatch: %+v", s)
	}

	claims, _ := iss.Parse(tok)
	// verify expiry is ~15 min from now
	diff := time.Until(claims.ExpiresAt.Time)
	if diff < 14*time.Minute || diff > 16*time.Minute {
		t.Errorf("expected ~15min expiry, got %v", diff)
	}
}

func TestAccessTokenAnonymous(t *testing.T) {
	_, err := NewIssuer(secret, 0, 0).AccessToken(Session{})
	if !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestExpiredToken(t *testing.T) {
	iss := NewIssuer(secret, time.Minute, 0)
	iss.now = func() time.Time { return time.Now().Add(-time.Hour) }
	tok, _ := iss.AccessToken(Session{UserID: "u1"})

	iss.now = time.Now
	if _, err := iss.Parse(tok); err == nil {
		t.Fatal("expected expired token to fail")
	}
}

func TestAlgorithmConfusion(t *testing.T) {
	iss := NewIssuer(secret, 0, 0)
	tok, _ := iss.AccessToken(Session{UserID: "uid"})

	// wrong secret fails
	if _, err := NewIssuer("wrong-secret", 0, 0).Parse(tok); err == nil {
		t.Fatal("expected error for wrong secret")
	}
	// garbage token fails
	if _, err := iss.Parse("not.a.token"); err == nil {
		t.Fatal("expected error for garbage token")
	}
	// unsigned token fails
	if _, err := iss.Parse("eyJhbGciOiJub25lIn0.eyJ1aWQiOiJ4In0."); err == nil {
		t.Fatal("expected error for alg=none")
	}
}

func TestRefreshTokenGeneration(t *testing.T) {
	raw, hash, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(raw) != 64 { // 32 bytes hex = 64 chars
		t.Errorf("expected 64 char raw token, got %d", len(raw))
	}
	if HashRefreshToken(raw) != hash {
		t.Error("hash mismatch")
	}
}

func TestPasswordHash(t *testing.T) {
	h, err := HashPassword("testpass123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword(h, "testpass123") {
		t.Error("password should match")
	}
	if CheckPassword(h, "wrongpassword") {
		t.Error("wrong password should not match")
	}
}

func TestSessionContext(t *testing.T) {
	if FromContext(context.Background()).Authenticated() {
		t.Error("empty context should be anonymous")
	}
	if err := (Session{}).Require(); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}

	ctx := WithSession(context.Background(), Session{UserID: "u9"})
	if got := FromContext(ctx); got.UserID != "u9" || got.Require() != nil {
		t.Errorf("unexpected session %+v", got)
	}
}
