package service

import (
	"errors"
	"testing"
)

const testSigningKey = "test-signing-key"

func TestAuth_SignUpAndSignIn(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo, testSigningKey)

	id, err := svc.SignUp("alice", "s3cret")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected id 1, got %d", id)
	}

	token, err := svc.GenerateToken("alice", "s3cret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	userID, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if userID != id {
		t.Fatalf("token user id %d != %d", userID, id)
	}
}

func TestAuth_WrongPassword(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo, testSigningKey)

	if _, err := svc.SignUp("alice", "s3cret"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if _, err := svc.GenerateToken("alice", "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestAuth_UnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeAuthRepo(), testSigningKey)

	if _, err := svc.GenerateToken("ghost", "pw"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuth_EmptyPasswordRejected(t *testing.T) {
	svc := NewAuthService(newFakeAuthRepo(), testSigningKey)

	if _, err := svc.SignUp("alice", "   "); err == nil {
		t.Fatalf("expected error for empty password")
	}
}

func TestAuth_TokenSignedWithOtherKeyRejected(t *testing.T) {
	repo := newFakeAuthRepo()
	issuer := NewAuthService(repo, "other-key")
	verifier := NewAuthService(repo, testSigningKey)

	if _, err := issuer.SignUp("alice", "s3cret"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	token, err := issuer.GenerateToken("alice", "s3cret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatalf("expected verification failure across keys")
	}
}
