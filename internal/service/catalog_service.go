package service

import (
	"errors"

	"go-pos-api/internal/model"
	"go-pos-api/internal/repository"
	"go-pos-api/pkg/apperror"
	"go-pos-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BrandRequest struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required"`
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required"`
}

type UnitRequest struct {
	Name         string `json:"name" validate:"required"`
	Abbreviation string `json:"abbreviation" validate:"required"`
	Slug         string `json:"slug" validate:"required"`
}

// CatalogService covers the slug-keyed master data: brands, categories, and
// units. Each follows the uniform contract: validate, duplicate pre-check on
// the natural key, persist.
type CatalogService interface {
	CreateBrand(req *BrandRequest, actor string) (*model.Brand, error)
	GetAllBrands() ([]model.Brand, error)
	GetBrandByID(id uuid.UUID) (*model.Brand, error)
	UpdateBrand(id uuid.UUID, req *BrandRequest, actor string) (*model.Brand, error)
	DeleteBrand(id uuid.UUID) error

	CreateCategory(req *CategoryRequest, actor string) (*model.Category, error)
	GetAllCategories() ([]model.Category, error)
	GetCategoryByID(id uuid.UUID) (*model.Category, error)
	UpdateCategory(id uuid.UUID, req *CategoryRequest, actor string) (*model.Category, error)
	DeleteCategory(id uuid.UUID) error

	CreateUnit(req *UnitRequest, actor string) (*model.Unit, error)
	GetAllUnits() ([]model.Unit, error)
	GetUnitByID(id uuid.UUID) (*model.Unit, error)
	UpdateUnit(id uuid.UUID, req *UnitRequest, actor string) (*model.Unit, error)
	DeleteUnit(id uuid.UUID) error
}

type catalogService struct {
	brandRepo    repository.BrandRepository
	categoryRepo repository.CategoryRepository
	unitRepo     repository.UnitRepository
}

func NewCatalogService(brandRepo repository.BrandRepository, categoryRepo repository.CategoryRepository, unitRepo repository.UnitRepository) CatalogService {
	return &catalogService{
		brandRepo:    brandRepo,
		categoryRepo: categoryRepo,
		unitRepo:     unitRepo,
	}
}

func (s *catalogService) CreateBrand(req *BrandRequest, actor string) (*model.Brand, error) {
	if verr := validator.ValidateStruct(req); verr != nil {
		return nil, verr
	}

	existing, _ := s.brandRepo.FindBySlug(req.Slug)
	if existing != nil {
		return nil, apperror.NewConflict("brand", "slug", req.Slug)
	}

	brand := &model.Brand{Name: req.Name, Slug: req.Slug}
	brand.CreatedBy = actor
	brand.UpdatedBy = actor

	if err := s.brandRepo.Create(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *catalogService) GetAllBrands() ([]model.Brand, error) {
	return s.brandRepo.FindAll()
}

func (s *catalogService) GetBrandByID(id uuid.UUID) (*model.Brand, error) {
	brand, err := s.brandRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("brand")
		}
		return nil, err
	}
	return brand, nil
}

func (s *catalogService) UpdateBrand(id uuid.UUID, req *BrandRequest, actor string) (*model.Brand, error) {
	if verr := validator.ValidateStruct(req); verr != nil {
		return nil, verr
	}

	brand, err := s.brandRepo.FindByID(id)
	if err != nil {
		return nil, apperror.NewNotFound("brand")
	}

	// Re-check uniqueness only when the natural key changes; a record never
	// conflicts with itself.
	if req.Slug != brand.Slug {
		existing, _ := s.brandRepo.FindBySlug(req.Slug)
		if existing != nil {
			return nil, apperror.NewConflict("brand", "slug", req.Slug)
		}
	}

	brand.Name = req.Name
	brand.Slug = req.Slug
	brand.UpdatedBy = actor

	if err := s.brandRepo.Update(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *catalogService) DeleteBrand(id uuid.UUID) error {
	if _, err := s.brandRepo.FindByID(id); err != nil {
		return apperror.NewNotFound("brand")
	}
	return s.brandRepo.Delete(id)
}

func (s *catalogService) CreateCategory(req *CategoryRequest, actor string) (*model.Category, error) {
	if verr := validator.ValidateStruct(req); verr != nil {
		return nil, verr
	}

	existing, _ := s.categoryRepo.FindBySlug(req.Slug)
	if existing != nil {
		return nil, apperror.NewConflict("category", "slug", req.Slug)
	}

	category := &model.Category{Name: req.Name, Slug: req.Slug}
	category.CreatedBy = actor
	category.UpdatedBy = actor

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *catalogService) GetAllCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *catalogService) GetCategoryByID(id uuid.UUID) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("category")
		}
		return nil, err
	}
	return category, nil
}

func (s *catalogService) UpdateCategory(id uuid.UUID, req *CategoryRequest, actor string) (*model.Category, error) {
	if verr := validator.ValidateStruct(req); verr != nil {
		return nil, verr
	}

	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, apperror.NewNotFound("category")
	}

	if req.Slug != category.Slug {
		existing, _ := s.categoryRepo.FindBySlug(req.Slug)
		if existing != nil {
			return nil, apperror.NewConflict("category", "slug", req.Slug)
		}
	}

	category.Name = req.Name
	category.Slug = req.Slug
	category.UpdatedBy = actor

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *catalogService) DeleteCategory(id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		return apperror.NewNotFound("category")
	}
	return s.categoryRepo.Delete(id)
}

func (s *catalogService) CreateUnit(req *UnitRequest, actor string) (*model.Unit, error) {
	if verr := validator.ValidateStruct(req); verr != nil {
		return nil, verr
	}

	existing, _ := s.unitRepo.FindBySlug(req.Slug)
	if existing != nil {
		return nil, apperror.NewConflict("unit", "slug", req.Slug)
	}

	unit := &model.Unit{Name: req.Name, Abbreviation: req.Abbreviation, Slug: req.Slug}
	unit.CreatedBy = actor
	unit.UpdatedBy = actor

	if err := s.unitRepo.Create(unit); err != nil {
		return nil, err
	}
	return unit, nil
}

func (s *catalogService) GetAllUnits() ([]model.Unit, error) {
	return s.unitRepo.FindAll()
}

func (s *catalogService) GetUnitByID(id uuid.UUID) (*model.Unit, error) {
	unit, err := s.unitRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("unit")
		}
		return nil, err
	}
	return unit, nil
}

func (s *catalogService) UpdateUnit(id uuid.UUID, req *UnitRequest, actor string) (*model.Unit, error) {
	if verr := validator.ValidateStruct(req); verr != nil {
		return nil, verr
	}

	unit, err := s.unitRepo.FindByID(id)
	if err != nil {
		return nil, apperror.NewNotFound("unit")
	}

	if req.Slug != unit.Slug {
		existing, _ := s.unitRepo.FindBySlug(req.Slug)
		if existing != nil {
			return nil, apperror.NewConflict("unit", "slug", req.Slug)
		}
	}

	unit.Name = req.Name
	unit.Abbreviation = req.Abbreviation
	unit.Slug = req.Slug
	unit.UpdatedBy = actor

	if err := s.unitRepo.Update(unit); err != nil {
		return nil, err
	}
	return unit, nil
}

func (s *catalogService) DeleteUnit(id uuid.UUID) error {
	if _, err := s.unitRepo.FindByID(id); err != nil {
		return apperror.NewNotFound("unit")
	}
	return s.unitRepo.Delete(id)
}
