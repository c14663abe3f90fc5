package repository

import (
	"go-pos-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	FindBySlug(slug string) (*model.Product, error)
	FindByProductCode(code string) (*model.Product, error)
	FindByBarCode(barCode string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.
		Preload("Unit").Preload("Brand").Preload("Category").Preload("Supplier").
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.
		Preload("Unit").Preload("Brand").Preload("Category").Preload("Supplier").
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "sku = ?", sku).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindBySlug(slug string) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByProductCode(code string) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "product_code = ?", code).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByBarCode(barCode string) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "bar_code = ?", barCode).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}
