package service

import (
	"errors"
	"time"

	"go-pos-api/internal/model"
	"go-pos-api/internal/repository"
	"go-pos-api/pkg/apperror"
	"go-pos-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	SKU         string          `json:"sku" validate:"required"`
	Slug        string          `json:"slug" validate:"required"`
	ProductCode string          `json:"product_code" validate:"required"`
	BarCode     string          `json:"bar_code" validate:"required"`
	BatchNumber string          `json:"batch_number"`
	Image       string          `json:"image"`
	Tax         float64         `json:"tax"`
	StockQty    int             `json:"stock_qty" validate:"min=0"`
	AlertQty    int             `json:"alert_qty" validate:"min=0"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	BuyingPrice decimal.Decimal `json:"buying_price"`
	ExpiryDate  *string         `json:"expiry_date"` // Format: YYYY-MM-DD
	UnitID      *uuid.UUID      `json:"unit_id"`
	BrandID     *uuid.UUID      `json:"brand_id"`
	CategoryID  *uuid.UUID      `json:"category_id"`
	SupplierID  *uuid.UUID      `json:"supplier_id"`
}

type ProductService interface {
	CreateProduct(req *ProductRequest, actor string) (*model.Product, error)
	GetAllProducts() ([]model.Product, error)
	GetProductByID(id uuid.UUID) (*model.Product, error)
	UpdateProduct(id uuid.UUID, req *ProductRequest, actor string) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

// checkNaturalKeys runs the duplicate pre-checks for each of the product's
// four natural keys, skipping any whose value is unchanged from current.
func (s *productService) checkNaturalKeys(req *ProductRequest, current *model.Product) error {
	if current == nil || req.SKU != current.SKU {
		if existing, _ := s.productRepo.FindBySKU(req.SKU); existing != nil {
			return apperror.NewConflict("product", "sku", req.SKU)
		}
	}
	if current == nil || req.Slug != current.Slug {
		if existing, _ := s.productRepo.FindBySlug(req.Slug); existing != nil {
			return apperror.NewConflict("product", "slug", req.Slug)
		}
	}
	if current == nil || req.ProductCode != current.ProductCode {
		if existing, _ := s.productRepo.FindByProductCode(req.ProductCode); existing != nil {
			return apperror.NewConflict("product", "product_code", req.ProductCode)
		}
	}
	if current == nil || req.BarCode != current.BarCode {
		if existing, _ := s.productRepo.FindByBarCode(req.BarCode); existing != nil {
			return apperror.NewConflict("product", "bar_code", req.BarCode)
		}
	}
	return nil
}

func parseExpiryDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, apperror.NewValidation([]apperror.FieldError{
			{Field: "ExpiryDate", Message: "not a valid date, use YYYY-MM-DD"},
		})
	}
	return &parsed, nil
}

func (s *productService) CreateProduct(req *ProductRequest, actor string) (*model.Product, error) {
	if verr := validator.ValidateStruct(req); verr != nil {
		return nil, verr
	}
	if err := s.checkNaturalKeys(req, nil); err != nil {
		return nil, err
	}

	expiry, err := parseExpiryDate(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		SKU:         req.SKU,
		Slug:        req.Slug,
		ProductCode: req.ProductCode,
		BarCode:     req.BarCode,
		BatchNumber: req.BatchNumber,
		Image:       req.Image,
		Tax:         req.Tax,
		StockQty:    req.StockQty,
		AlertQty:    req.AlertQty,
		Price:       req.Price,
		BuyingPrice: req.BuyingPrice,
		ExpiryDate:  expiry,
		UnitID:      req.UnitID,
		BrandID:     req.BrandID,
		CategoryID:  req.CategoryID,
		SupplierID:  req.SupplierID,
	}
	product.CreatedBy = actor
	product.UpdatedBy = actor

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) GetAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *productService) GetProductByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("product")
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) UpdateProduct(id uuid.UUID, req *ProductRequest, actor string) (*model.Product, error) {
	if verr := validator.ValidateStruct(req); verr != nil {
		return nil, verr
	}

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, apperror.NewNotFound("product")
	}

	if err := s.checkNaturalKeys(req, product); err != nil {
		return nil, err
	}

	expiry, err := parseExpiryDate(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.SKU = req.SKU
	product.Slug = req.Slug
	product.ProductCode = req.ProductCode
	product.BarCode = req.BarCode
	product.BatchNumber = req.BatchNumber
	product.Image = req.Image
	product.Tax = req.Tax
	product.StockQty = req.StockQty
	product.AlertQty = req.AlertQty
	product.Price = req.Price
	product.BuyingPrice = req.BuyingPrice
	if expiry != nil {
		product.ExpiryDate = expiry
	}
	product.UnitID = req.UnitID
	product.BrandID = req.BrandID
	product.CategoryID = req.CategoryID
	product.SupplierID = req.SupplierID
	product.UpdatedBy = actor

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) DeleteProduct(id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		return apperror.NewNotFound("product")
	}
	return s.productRepo.Delete(id)
}
