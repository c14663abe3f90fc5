package service

import (
	"errors"
	"testing"

	"go-pos-api/internal/model"
	"go-pos-api/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (f *fakeUserRepo) Create(user *model.User) error {
	user.ID = uuid.New()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindAll() ([]model.User, error) {
	var out []model.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) FindAttendants() ([]model.User, error) {
	var out []model.User
	for _, u := range f.users {
		if u.Role == model.RoleAttendant {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByPhone(phone string) (*model.User, error) {
	for _, u := range f.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Update(user *model.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdatePassword(userID uuid.UUID, hashedPassword string) error {
	u, ok := f.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Password = hashedPassword
	return nil
}

func (f *fakeUserRepo) Delete(id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

func validUserRequest() *CreateUserRequest {
	return &CreateUserRequest{
		Email:     "jane@example.com",
		Username:  "jane",
		Password:  "password123",
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "0700000001",
		Role:      "ATTENDANT",
		Gender:    "FEMALE",
	}
}

func TestCreateUser_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	resp, err := svc.CreateUser(validUserRequest(), "tester")
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if resp.Email != "jane@example.com" {
		t.Errorf("response email = %q", resp.Email)
	}
	if resp.Image != model.DefaultUserImage {
		t.Errorf("missing image should fall back to default, got %q", resp.Image)
	}

	stored := repo.users[resp.ID]
	if stored == nil {
		t.Fatal("user not persisted")
	}
	if stored.Password == "password123" {
		t.Error("password stored in plaintext")
	}
	if !stored.CheckPassword("password123") {
		t.Error("stored hash does not verify the original password")
	}
}

func TestCreateUser_DuplicateKeys(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	if _, err := svc.CreateUser(validUserRequest(), "tester"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*CreateUserRequest)
		field  string
	}{
		{"email", func(r *CreateUserRequest) { r.Username = "other"; r.Phone = "0700000002" }, "email"},
		{"username", func(r *CreateUserRequest) { r.Email = "other@example.com"; r.Phone = "0700000002" }, "username"},
		{"phone", func(r *CreateUserRequest) { r.Email = "other@example.com"; r.Username = "other" }, "phone"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validUserRequest()
			tc.mutate(req)
			_, err := svc.CreateUser(req, "tester")

			var cerr *apperror.ConflictError
			if !errors.As(err, &cerr) {
				t.Fatalf("expected ConflictError, got %v", err)
			}
			if cerr.Field != tc.field {
				t.Errorf("conflict field = %q, want %q", cerr.Field, tc.field)
			}
		})
	}
}

func TestCreateUser_ShortPassword(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	req := validUserRequest()
	req.Password = "short"
	_, err := svc.CreateUser(req, "tester")

	var verr *apperror.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreateUser_BadRole(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	req := validUserRequest()
	req.Role = "MANAGER"
	_, err := svc.CreateUser(req, "tester")

	var verr *apperror.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUpdateUser_UnchangedKeysDoNotSelfConflict(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	created, err := svc.CreateUser(validUserRequest(), "tester")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateUser(created.ID, &UpdateUserRequest{
		Email:     "jane@example.com",
		Username:  "jane",
		FirstName: "Janet",
		LastName:  "Doe",
		Phone:     "0700000001",
		Role:      "ATTENDANT",
		Gender:    "FEMALE",
	}, "tester")
	if err != nil {
		t.Fatalf("update with unchanged keys failed: %v", err)
	}
	if updated.FirstName != "Janet" {
		t.Errorf("first name not updated: %q", updated.FirstName)
	}
}

func TestGetAttendants_FiltersByRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	if _, err := svc.CreateUser(validUserRequest(), "tester"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	admin := validUserRequest()
	admin.Email = "boss@example.com"
	admin.Username = "boss"
	admin.Phone = "0700000009"
	admin.Role = "ADMIN"
	if _, err := svc.CreateUser(admin, "tester"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	attendants, err := svc.GetAttendants()
	if err != nil {
		t.Fatalf("GetAttendants() error = %v", err)
	}
	if len(attendants) != 1 || attendants[0].Username != "jane" {
		t.Errorf("expected only jane, got %+v", attendants)
	}
}
