package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"camtourvisor/internal/model"

	"golang.org/x/crypto/bcrypt"
)

func newTestAuth() (*AuthService, *fakeProfiles) {
	profiles := newFakeProfiles()
	s := NewAuthService(profiles, NewTokens("test-secret", time.Hour))
	s.cost = bcrypt.MinCost
	return s, profiles
}

func TestSignUpAndSignIn(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestAuth()

	p, err := s.SignUp(ctx, " Traveller@Example.com ", "secret1")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if p.Email != "traveller@example.com" || p.Username != "traveller" {
		t.Errorf("unexpected profile: %+v", p)
	}
	if p.PasswordHash == "secret1" {
		t.Error("password stored in plain text")
	}

	token, signedIn, err := s.SignIn(ctx, "TRAVELLER@example.com", "secret1")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if signedIn.ID != p.ID {
		t.Errorf("signed in as %s, want %s", signedIn.ID, p.ID)
	}
	userID, err := s.ParseToken(token)
	if err != nil || userID != p.ID {
		t.Errorf("ParseToken = %q, %v", userID, err)
	}
}

func TestSignUpValidation(t *testing.T) {
	s, _ := newTestAuth()
	cases := []struct{ email, password, field string }{
		{"", "secret1", "email"},
		{"no-at-sign", "secret1", "email"},
		{"a@b.c", "123", "password"},
	}
	for _, tc := range cases {
		_, err := s.SignUp(context.Background(), tc.email, tc.password)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("SignUp(%q) err = %v, want ValidationError", tc.email, err)
		}
		if _, ok := verr.Fields[tc.field]; !ok {
			t.Errorf("SignUp(%q) fields = %v, want %s", tc.email, verr.Fields, tc.field)
		}
	}
}

func TestSignUpDuplicate(t *testing.T) {
	s, _ := newTestAuth()
	ctx := context.Background()
	if _, err := s.SignUp(ctx, "a@b.cm", "secret1"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SignUp(ctx, "A@B.cm", "secret2"); !errors.Is(err, ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
}

func TestSignInWrongPassword(t *testing.T) {
	s, _ := newTestAuth()
	ctx := context.Background()
	if _, err := s.SignUp(ctx, "a@b.cm", "secret1"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.SignIn(ctx, "a@b.cm", "wrong!"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
	if _, _, err := s.SignIn(ctx, "nobody@b.cm", "secret1"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("unknown user err = %v, want ErrUnauthorized", err)
	}
}

func TestTokensExpire(t *testing.T) {
	tokens := NewTokens("k", time.Hour)
	tokens.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	raw, err := tokens.Issue("u1", RoleUser)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tokens.Parse(raw); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}

func TestTokensRejectForeignSecret(t *testing.T) {
	raw, err := NewTokens("one", time.Hour).Issue("u1", RoleUser)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewTokens("two", time.Hour).Parse(raw); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
	if _, err := NewTokens("two", time.Hour).Parse("garbage"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("garbage err = %v, want ErrUnauthorized", err)
	}
}

func TestAdminLogin(t *testing.T) {
	tokens := NewTokens("k", time.Hour)
	admin := NewAdminService("kendi", "1234", tokens)

	if _, err := admin.Login(model.AdminCredentials{Username: "kendi", Password: "nope"}); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
	token, err := admin.Login(model.AdminCredentials{Username: "kendi", Password: "1234"})
	if err != nil {
		t.Fatal(err)
	}
	if name, err := admin.ParseToken(token); err != nil || name != "kendi" {
		t.Errorf("ParseToken = %q, %v", name, err)
	}

	// токен пользователя не открывает админку, и наоборот
	userToken, _ := tokens.Issue("u1", RoleUser)
	if _, err := admin.ParseToken(userToken); !errors.Is(err, ErrForbidden) {
		t.Errorf("user token err = %v, want ErrForbidden", err)
	}
	auth := NewAuthService(newFakeProfiles(), tokens)
	if _, err := auth.ParseToken(token); !errors.Is(err, ErrForbidden) {
		t.Errorf("admin token on user API err = %v, want ErrForbidden", err)
	}
}
