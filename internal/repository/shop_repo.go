package repository

import (
	"go-pos-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShopRepository interface {
	Create(shop *model.Shop) error
	FindAll() ([]model.Shop, error)
	FindByID(id uuid.UUID) (*model.Shop, error)
	FindBySlug(slug string) (*model.Shop, error)
	// UpdateWithAttendants saves the shop header and replaces its attendant
	// set in one transaction so neither outlives a failure of the other.
	UpdateWithAttendants(shop *model.Shop, attendants []model.User) error
	Delete(id uuid.UUID) error
}

type shopRepo struct {
	db *gorm.DB
}

func NewShopRepo(db *gorm.DB) ShopRepository {
	return &shopRepo{db}
}

func (r *shopRepo) Create(shop *model.Shop) error {
	return r.db.Create(shop).Error
}

func (r *shopRepo) FindAll() ([]model.Shop, error) {
	var shops []model.Shop
	err := r.db.Preload("Admin").Preload("Attendants").Order("created_at DESC").Find(&shops).Error
	return shops, err
}

func (r *shopRepo) FindByID(id uuid.UUID) (*model.Shop, error) {
	var shop model.Shop
	if err := r.db.Preload("Admin").Preload("Attendants").First(&shop, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *shopRepo) FindBySlug(slug string) (*model.Shop, error) {
	var shop model.Shop
	if err := r.db.First(&shop, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *shopRepo) UpdateWithAttendants(shop *model.Shop, attendants []model.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Attendants").Save(shop).Error; err != nil {
			return err
		}
		return tx.Model(shop).Association("Attendants").Replace(attendants)
	})
}

func (r *shopRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var shop model.Shop
		if err := tx.First(&shop, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&shop).Association("Attendants").Clear(); err != nil {
			return err
		}
		return tx.Delete(&shop).Error
	})
}
