package repository

import (
	"testing"

	"go-pos-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, username string, role model.UserRole) *model.User {
	t.Helper()
	key := uuid.New().String()[:8]
	user := &model.User{
		Email:     username + "-" + key + "@example.com",
		Username:  username + "-" + key,
		Password:  "not-a-real-hash",
		FirstName: "Test",
		LastName:  "User",
		Phone:     "07" + key,
		Role:      role,
		Gender:    model.GenderFemale,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestUpdateWithAttendants_ReplacesSetWithHeader(t *testing.T) {
	db := newTestDB(t)
	repo := NewShopRepo(db)

	admin := seedUser(t, db, "boss", model.RoleAdmin)
	first := seedUser(t, db, "first", model.RoleAttendant)
	second := seedUser(t, db, "second", model.RoleAttendant)
	third := seedUser(t, db, "third", model.RoleAttendant)

	shop := &model.Shop{
		Name:       "Main Street",
		Slug:       "main-street",
		Location:   "Downtown",
		AdminID:    admin.ID,
		Attendants: []model.User{*first, *second},
	}
	if err := repo.Create(shop); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	shop.Name = "Main Street West"
	if err := repo.UpdateWithAttendants(shop, []model.User{*third}); err != nil {
		t.Fatalf("UpdateWithAttendants() error = %v", err)
	}

	found, err := repo.FindByID(shop.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.Name != "Main Street West" {
		t.Errorf("name = %q, want updated header", found.Name)
	}
	if len(found.Attendants) != 1 || found.Attendants[0].ID != third.ID {
		t.Errorf("attendants not replaced, got %d", len(found.Attendants))
	}
}

func TestDeleteShop_ClearsAttendantLinks(t *testing.T) {
	db := newTestDB(t)
	repo := NewShopRepo(db)

	admin := seedUser(t, db, "boss", model.RoleAdmin)
	attendant := seedUser(t, db, "clerk", model.RoleAttendant)

	shop := &model.Shop{
		Name:       "Main Street",
		Slug:       "main-street",
		Location:   "Downtown",
		AdminID:    admin.ID,
		Attendants: []model.User{*attendant},
	}
	if err := repo.Create(shop); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(shop.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var links int64
	if err := db.Table("shop_attendants").Count(&links).Error; err != nil {
		t.Fatalf("count links: %v", err)
	}
	if links != 0 {
		t.Errorf("join rows = %d, want 0", links)
	}
	var users int64
	if err := db.Model(&model.User{}).Count(&users).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if users != 2 {
		t.Errorf("user rows = %d, want 2 (unlink must not delete users)", users)
	}
}
