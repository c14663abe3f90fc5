package repository

import (
	"go-pos-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BrandRepository interface {
	Create(brand *model.Brand) error
	FindAll() ([]model.Brand, error)
	FindByID(id uuid.UUID) (*model.Brand, error)
	FindBySlug(slug string) (*model.Brand, error)
	Update(brand *model.Brand) error
	Delete(id uuid.UUID) error
}

type brandRepo struct {
	db *gorm.DB
}

func NewBrandRepo(db *gorm.DB) BrandRepository {
	return &brandRepo{db}
}

func (r *brandRepo) Create(brand *model.Brand) error {
	return r.db.Create(brand).Error
}

func (r *brandRepo) FindAll() ([]model.Brand, error) {
	var brands []model.Brand
	err := r.db.Order("name DESC").Find(&brands).Error
	return brands, err
}

func (r *brandRepo) FindByID(id uuid.UUID) (*model.Brand, error) {
	var brand model.Brand
	if err := r.db.First(&brand, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepo) FindBySlug(slug string) (*model.Brand, error) {
	var brand model.Brand
	if err := r.db.First(&brand, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepo) Update(brand *model.Brand) error {
	return r.db.Save(brand).Error
}

func (r *brandRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Brand{}, "id = ?", id).Error
}

type CategoryRepository interface {
	Create(category *model.Category) error
	FindAll() ([]model.Category, error)
	FindByID(id uuid.UUID) (*model.Category, error)
	FindBySlug(slug string) (*model.Category, error)
	Update(category *model.Category) error
	Delete(id uuid.UUID) error
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepo) FindAll() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Order("name DESC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) FindBySlug(slug string) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) Update(category *model.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Category{}, "id = ?", id).Error
}

type UnitRepository interface {
	Create(unit *model.Unit) error
	FindAll() ([]model.Unit, error)
	FindByID(id uuid.UUID) (*model.Unit, error)
	FindBySlug(slug string) (*model.Unit, error)
	Update(unit *model.Unit) error
	Delete(id uuid.UUID) error
}

type unitRepo struct {
	db *gorm.DB
}

func NewUnitRepo(db *gorm.DB) UnitRepository {
	return &unitRepo{db}
}

func (r *unitRepo) Create(unit *model.Unit) error {
	return r.db.Create(unit).Error
}

func (r *unitRepo) FindAll() ([]model.Unit, error) {
	var units []model.Unit
	err := r.db.Order("name DESC").Find(&units).Error
	return units, err
}

func (r *unitRepo) FindByID(id uuid.UUID) (*model.Unit, error) {
	var unit model.Unit
	if err := r.db.First(&unit, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepo) FindBySlug(slug string) (*model.Unit, error) {
	var unit model.Unit
	if err := r.db.First(&unit, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepo) Update(unit *model.Unit) error {
	return r.db.Save(unit).Error
}

func (r *unitRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Unit{}, "id = ?", id).Error
}
