package service

import (
	"errors"
	"testing"

	"go-pos-api/internal/model"
)

func seedUser(t *testing.T, repo *fakeUserRepo, email, username, password string) *model.User {
	t.Helper()
	user := &model.User{
		Email:     email,
		Username:  username,
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "0700000001",
		Role:      model.RoleAttendant,
		Gender:    model.GenderFemale,
	}
	if err := user.SetPassword(password); err != nil {
		t.Fatalf("SetPassword() error = %v", err)
	}
	if err := repo.Create(user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return user
}

func TestLogin_ByEmail(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "jane@example.com", "jane", "password123")
	svc := NewAuthService(repo)

	resp, err := svc.Login("jane@example.com", "", "password123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("expected an access token")
	}
	if resp.User.Username != "jane" {
		t.Errorf("response user = %q", resp.User.Username)
	}
}

func TestLogin_ByUsername(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "jane@example.com", "jane", "password123")
	svc := NewAuthService(repo)

	resp, err := svc.Login("", "jane", "password123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.User.Email != "jane@example.com" {
		t.Errorf("response user email = %q", resp.User.Email)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "jane@example.com", "jane", "password123")
	svc := NewAuthService(repo)

	_, err := svc.Login("jane@example.com", "", "wrong-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Login("nobody@example.com", "", "password123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestResetPassword(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "jane@example.com", "jane", "password123")
	svc := NewAuthService(repo)

	if err := svc.ResetPassword("jane@example.com", "password123", "newpassword99"); err != nil {
		t.Fatalf("ResetPassword() error = %v", err)
	}

	stored := repo.users[user.ID]
	if !stored.CheckPassword("newpassword99") {
		t.Error("new password does not verify after reset")
	}
	if stored.CheckPassword("password123") {
		t.Error("old password still verifies after reset")
	}
}

func TestResetPassword_WrongOldPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "jane@example.com", "jane", "password123")
	svc := NewAuthService(repo)

	err := svc.ResetPassword("jane@example.com", "not-the-password", "newpassword99")
	if !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
}
