package service

import (
	"errors"

	"go-pos-api/internal/model"
	"go-pos-api/internal/repository"
	"go-pos-api/internal/ws"
	"go-pos-api/pkg/apperror"
	"go-pos-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// saleNumberAttempts bounds the generate-and-check retry loop before the
// workflow gives up.
const saleNumberAttempts = 5

type SaleItemRequest struct {
	ProductID    uuid.UUID       `json:"product_id" validate:"uuid_required"`
	Qty          int             `json:"qty" validate:"required,gt=0"`
	Name         string          `json:"name" validate:"required"`
	Price        decimal.Decimal `json:"price"`
	ProductImage string          `json:"product_image"`
}

type CreateSaleRequest struct {
	CustomerName    string            `json:"customer_name" validate:"required"`
	CustomerEmail   string            `json:"customer_email" validate:"omitempty,email"`
	SaleAmount      decimal.Decimal   `json:"sale_amount"`
	BalanceAmount   decimal.Decimal   `json:"balance_amount"`
	PaidAmount      decimal.Decimal   `json:"paid_amount"`
	PaymentMethod   string            `json:"payment_method" validate:"required"`
	TransactionCode string            `json:"transaction_code"`
	SaleType        string            `json:"sale_type" validate:"required"`
	CustomerID      *uuid.UUID        `json:"customer_id,omitempty"`
	SaleItems       []SaleItemRequest `json:"sale_items" validate:"dive"`
}

// AppendSaleItemRequest is a pre-addressed line item for an existing sale.
type AppendSaleItemRequest struct {
	SaleID       uuid.UUID       `json:"sale_id" validate:"uuid_required"`
	ProductID    uuid.UUID       `json:"product_id" validate:"uuid_required"`
	Qty          int             `json:"qty" validate:"required,gt=0"`
	ProductName  string          `json:"product_name" validate:"required"`
	ProductPrice decimal.Decimal `json:"product_price"`
	ProductImage string          `json:"product_image"`
}

type appendItemsRequest struct {
	Items []AppendSaleItemRequest `validate:"required,min=1,dive"`
}

type UpdateSaleRequest struct {
	CustomerName    *string          `json:"customer_name"`
	CustomerEmail   *string          `json:"customer_email" validate:"omitempty,email"`
	BalanceAmount   *decimal.Decimal `json:"balance_amount"`
	PaidAmount      *decimal.Decimal `json:"paid_amount"`
	PaymentMethod   *string          `json:"payment_method"`
	TransactionCode *string          `json:"transaction_code"`
}

type SaleService interface {
	CreateSale(req *CreateSaleRequest, actor string) (*model.Sale, error)
	AppendItems(reqs []AppendSaleItemRequest, actor string) ([]model.SaleItem, error)
	GetAllSales() ([]model.Sale, error)
	GetSaleByID(id uuid.UUID) (*model.Sale, error)
	UpdateSale(id uuid.UUID, req *UpdateSaleRequest, actor string) (*model.Sale, error)
	DeleteSale(id uuid.UUID) error
}

type saleService struct {
	saleRepo repository.SaleRepository
	wsHub    *ws.Hub
}

func NewSaleService(saleRepo repository.SaleRepository, hub *ws.Hub) SaleService {
	return &saleService{saleRepo: saleRepo, wsHub: hub}
}

// CreateSale materializes a sale and its line items atomically: header
// insert, per-item stock decrement, and item inserts either all commit or
// all roll back. The committed sale is read back for the response.
func (s *saleService) CreateSale(req *CreateSaleRequest, actor string) (*model.Sale, error) {
	if verr := validator.ValidateStruct(req); verr != nil {
		return nil, verr
	}

	saleNumber, err := s.uniqueSaleNumber()
	if err != nil {
		return nil, err
	}

	sale := &model.Sale{
		SaleNumber:      saleNumber,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		SaleAmount:      req.SaleAmount,
		BalanceAmount:   req.BalanceAmount,
		PaidAmount:      req.PaidAmount,
		PaymentMethod:   req.PaymentMethod,
		TransactionCode: req.TransactionCode,
		SaleType:        req.SaleType,
		CustomerID:      req.CustomerID,
	}
	sale.CreatedBy = actor
	sale.UpdatedBy = actor

	items := make([]model.SaleItem, len(req.SaleItems))
	for i, it := range req.SaleItems {
		items[i] = model.SaleItem{
			ProductID:    it.ProductID,
			ProductName:  it.Name,
			ProductPrice: it.Price,
			ProductImage: it.ProductImage,
			Qty:          it.Qty,
		}
		items[i].CreatedBy = actor
		items[i].UpdatedBy = actor
	}

	if err := s.saleRepo.CreateWithItems(sale, items); err != nil {
		return nil, err
	}

	created, err := s.saleRepo.FindByID(sale.ID)
	if err != nil {
		return nil, err
	}

	if s.wsHub != nil {
		s.wsHub.Publish("sale_created", map[string]interface{}{
			"sale_number": created.SaleNumber,
			"sale_id":     created.ID,
			"item_count":  len(created.Items),
		})
	}

	return created, nil
}

// uniqueSaleNumber generates codes until one is unused, giving up after a
// bounded number of attempts. The store's unique index on sale_number stays
// the final authority against the check-then-write race.
func (s *saleService) uniqueSaleNumber() (string, error) {
	for attempt := 0; attempt < saleNumberAttempts; attempt++ {
		number := generateSaleNumber()
		_, err := s.saleRepo.FindByNumber(number)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return number, nil
		}
		if err != nil {
			return "", err
		}
		// collision, try again
	}
	return "", apperror.NewWorkflow("generate sale number", "could not allocate a unique sale number after %d attempts", saleNumberAttempts)
}

func (s *saleService) AppendItems(reqs []AppendSaleItemRequest, actor string) ([]model.SaleItem, error) {
	if verr := validator.ValidateStruct(&appendItemsRequest{Items: reqs}); verr != nil {
		return nil, verr
	}

	items := make([]model.SaleItem, len(reqs))
	for i, it := range reqs {
		items[i] = model.SaleItem{
			SaleID:       it.SaleID,
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			ProductPrice: it.ProductPrice,
			ProductImage: it.ProductImage,
			Qty:          it.Qty,
		}
		items[i].CreatedBy = actor
		items[i].UpdatedBy = actor
	}

	if err := s.saleRepo.AppendItems(items); err != nil {
		return nil, err
	}

	if s.wsHub != nil {
		s.wsHub.Publish("sale_items_appended", map[string]interface{}{
			"item_count": len(items),
		})
	}

	return items, nil
}

func (s *saleService) GetAllSales() ([]model.Sale, error) {
	return s.saleRepo.FindAll()
}

func (s *saleService) GetSaleByID(id uuid.UUID) (*model.Sale, error) {
	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("sale")
		}
		return nil, err
	}
	return sale, nil
}

func (s *saleService) UpdateSale(id uuid.UUID, req *UpdateSaleRequest, actor string) (*model.Sale, error) {
	if verr := validator.ValidateStruct(req); verr != nil {
		return nil, verr
	}

	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("sale")
		}
		return nil, err
	}

	if req.CustomerName != nil {
		sale.CustomerName = *req.CustomerName
	}
	if req.CustomerEmail != nil {
		sale.CustomerEmail = *req.CustomerEmail
	}
	if req.BalanceAmount != nil {
		sale.BalanceAmount = *req.BalanceAmount
	}
	if req.PaidAmount != nil {
		sale.PaidAmount = *req.PaidAmount
	}
	if req.PaymentMethod != nil {
		sale.PaymentMethod = *req.PaymentMethod
	}
	if req.TransactionCode != nil {
		sale.TransactionCode = *req.TransactionCode
	}
	sale.UpdatedBy = actor

	if err := s.saleRepo.Update(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *saleService) DeleteSale(id uuid.UUID) error {
	return s.saleRepo.DeleteWithItems(id)
}
