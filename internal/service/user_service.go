package service

import (
	"errors"
	"time"

	"go-pos-api/internal/model"
	"go-pos-api/internal/repository"
	"go-pos-api/pkg/apperror"
	"go-pos-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateUserRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Username  string  `json:"username" validate:"required"`
	Password  string  `json:"password" validate:"required,min=8"`
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Phone     string  `json:"phone" validate:"required"`
	Image     string  `json:"image"`
	Dob       *string `json:"dob"` // Format: YYYY-MM-DD
	Role      string  `json:"role" validate:"required,oneof=ADMIN ATTENDANT"`
	Gender    string  `json:"gender" validate:"required,oneof=MALE FEMALE"`
}

// UpdateUserRequest never carries a password; password changes route through
// the dedicated auth reset operation.
type UpdateUserRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Username  string  `json:"username" validate:"required"`
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Phone     string  `json:"phone" validate:"required"`
	Image     string  `json:"image"`
	Dob       *string `json:"dob"`
	Role      string  `json:"role" validate:"required,oneof=ADMIN ATTENDANT"`
	Gender    string  `json:"gender" validate:"required,oneof=MALE FEMALE"`
}

type UserService interface {
	CreateUser(req *CreateUserRequest, actor string) (*model.UserResponse, error)
	GetAllUsers() ([]model.UserResponse, error)
	GetAttendants() ([]model.UserResponse, error)
	GetUserByID(id uuid.UUID) (*model.UserResponse, error)
	UpdateUser(id uuid.UUID, req *UpdateUserRequest, actor string) (*model.UserResponse, error)
	DeleteUser(id uuid.UUID) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) checkNaturalKeys(email, username, phone string, current *model.User) error {
	if current == nil || email != current.Email {
		if existing, _ := s.userRepo.FindByEmail(email); existing != nil {
			return apperror.NewConflict("user", "email", email)
		}
	}
	if current == nil || username != current.Username {
		if existing, _ := s.userRepo.FindByUsername(username); existing != nil {
			return apperror.NewConflict("user", "username", username)
		}
	}
	if current == nil || phone != current.Phone {
		if existing, _ := s.userRepo.FindByPhone(phone); existing != nil {
			return apperror.NewConflict("user", "phone", phone)
		}
	}
	return nil
}

func (s *userService) CreateUser(req *CreateUserRequest, actor string) (*model.UserResponse, error) {
	if verr := validator.ValidateStruct(req); verr != nil {
		return nil, verr
	}
	if err := s.checkNaturalKeys(req.Email, req.Username, req.Phone, nil); err != nil {
		return nil, err
	}

	dob, err := parseDob(req.Dob)
	if err != nil {
		return nil, err
	}

	image := req.Image
	if image == "" {
		image = model.DefaultUserImage
	}

	user := &model.User{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Image:     image,
		Dob:       dob,
		Role:      model.UserRole(req.Role),
		Gender:    model.Gender(req.Gender),
	}
	user.CreatedBy = actor
	user.UpdatedBy = actor

	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return toResponses(users), nil
}

func (s *userService) GetAttendants() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAttendants()
	if err != nil {
		return nil, err
	}
	return toResponses(users), nil
}

func toResponses(users []model.User) []model.UserResponse {
	responses := make([]model.UserResponse, len(users))
	for i := range users {
		responses[i] = users[i].ToResponse()
	}
	return responses
}

func (s *userService) GetUserByID(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("user")
		}
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) UpdateUser(id uuid.UUID, req *UpdateUserRequest, actor string) (*model.UserResponse, error) {
	if verr := validator.ValidateStruct(req); verr != nil {
		return nil, verr
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, apperror.NewNotFound("user")
	}

	if err := s.checkNaturalKeys(req.Email, req.Username, req.Phone, user); err != nil {
		return nil, err
	}

	var dob *time.Time
	if dob, err = parseDob(req.Dob); err != nil {
		return nil, err
	}

	user.Email = req.Email
	user.Username = req.Username
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Phone = req.Phone
	if req.Image != "" {
		user.Image = req.Image
	}
	if dob != nil {
		user.Dob = dob
	}
	user.Role = model.UserRole(req.Role)
	user.Gender = model.Gender(req.Gender)
	user.UpdatedBy = actor

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) DeleteUser(id uuid.UUID) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		return apperror.NewNotFound("user")
	}
	return s.userRepo.Delete(id)
}
