package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserRole string

const (
	RoleAdmin     UserRole = "ADMIN"
	RoleAttendant UserRole = "ATTENDANT"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// DefaultUserImage is applied when a user is created without an avatar.
const DefaultUserImage = "https://utfs.io/f/c61ec63c-42b1-4939-a7fb-ed04d43e23ee-2558r.png"

// User represents an authenticated user in the system
type User struct {
	BaseModel
	Email     string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Username  string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"username" validate:"required"`
	Password  string     `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	FirstName string     `gorm:"type:varchar(100);not null" json:"first_name" validate:"required"`
	LastName  string     `gorm:"type:varchar(100);not null" json:"last_name" validate:"required"`
	Phone     string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone" validate:"required"`
	Image     string     `gorm:"type:text" json:"image"`
	Dob       *time.Time `gorm:"type:date" json:"dob,omitempty"`
	Role      UserRole   `gorm:"type:varchar(20);not null;default:'ATTENDANT'" json:"role" validate:"required,oneof=ADMIN ATTENDANT"`
	Gender    Gender     `gorm:"type:varchar(10);not null" json:"gender" validate:"required,oneof=MALE FEMALE"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// UserResponse is the public view of a User (no credential hash). Conversion
// happens once, at the service boundary.
type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Phone     string     `json:"phone"`
	Image     string     `json:"image"`
	Dob       *time.Time `json:"dob,omitempty"`
	Role      UserRole   `json:"role"`
	Gender    Gender     `json:"gender"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Image:     u.Image,
		Dob:       u.Dob,
		Role:      u.Role,
		Gender:    u.Gender,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
