package service

import (
	"errors"

	"go-pos-api/internal/model"
	"go-pos-api/internal/repository"
	"go-pos-api/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("wrong credentials")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

type AuthService interface {
	// Login accepts either email or username together with a password.
	Login(email, username, password string) (*LoginResponse, error)
	// ResetPassword verifies the old password and re-hashes the new one.
	ResetPassword(email, oldPassword, newPassword string) error
}

type LoginResponse struct {
	User        model.UserResponse `json:"user"`
	AccessToken string             `json:"access_token"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(email, username, password string) (*LoginResponse, error) {
	var (
		user *model.User
		err  error
	)
	if email != "" {
		user, err = s.userRepo.FindByEmail(email)
	} else {
		user, err = s.userRepo.FindByUsername(username)
	}
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.Username, string(user.Role))
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		User:        user.ToResponse(),
		AccessToken: token,
	}, nil
}

func (s *authService) ResetPassword(email, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return ErrInvalidCredentials
	}

	if !user.CheckPassword(oldPassword) {
		return ErrWrongPassword
	}

	if err := user.SetPassword(newPassword); err != nil {
		return errors.New("failed to hash password")
	}

	return s.userRepo.UpdatePassword(user.ID, user.Password)
}
