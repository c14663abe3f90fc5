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

type CustomerRequest struct {
	FirstName      string          `json:"first_name" validate:"required"`
	LastName       string          `json:"last_name" validate:"required"`
	Phone          string          `json:"phone" validate:"required"`
	Email          *string         `json:"email" validate:"omitempty,email"`
	NIN            *string         `json:"nin"`
	Gender         string          `json:"gender" validate:"required,oneof=MALE FEMALE"`
	Country        string          `json:"country" validate:"required"`
	Location       string          `json:"location" validate:"required"`
	Dob            *string         `json:"dob"` // Format: YYYY-MM-DD
	MaxCreditLimit decimal.Decimal `json:"max_credit_limit" validate:"required"`
	MaxCreditDays  int             `json:"max_credit_days" validate:"required,gt=0"`
	TaxPin         string          `json:"tax_pin"`
	CustomerType   string          `json:"customer_type" validate:"required,oneof=RETAIL WHOLESALE DISTRIBUTOR OTHER"`
}

type SupplierRequest struct {
	Name              string  `json:"name" validate:"required"`
	ContactPerson     string  `json:"contact_person" validate:"required"`
	Phone             string  `json:"phone" validate:"required"`
	Email             *string `json:"email" validate:"omitempty,email"`
	Location          string  `json:"location" validate:"required"`
	Country           string  `json:"country" validate:"required"`
	Website           string  `json:"website"`
	TaxPin            string  `json:"tax_pin"`
	RegnNumber        *string `json:"regn_number"`
	BankAccountNumber string  `json:"bank_account_number"`
	PaymentTerm       string  `json:"payment_term"`
	Logo              string  `json:"logo"`
	Rating            float64 `json:"rating"`
	Notes             string  `json:"notes"`
	SupplierType      string  `json:"supplier_type" validate:"required,oneof=MANUFACTURER RETAIL WHOLESALE DISTRIBUTOR OTHER"`
}

// PartnerService covers the trading-partner master data: customers and
// suppliers. Phone is the mandatory natural key; email, NIN, and
// registration number are optional ones, checked only when provided.
type PartnerService interface {
	CreateCustomer(req *CustomerRequest, actor string) (*model.Customer, error)
	GetAllCustomers() ([]model.Customer, error)
	GetCustomerByID(id uuid.UUID) (*model.Customer, error)
	UpdateCustomer(id uuid.UUID, req *CustomerRequest, actor string) (*model.Customer, error)
	DeleteCustomer(id uuid.UUID) error

	CreateSupplier(req *SupplierRequest, actor string) (*model.Supplier, error)
	GetAllSuppliers() ([]model.Supplier, error)
	GetSupplierByID(id uuid.UUID) (*model.Supplier, error)
	UpdateSupplier(id uuid.UUID, req *SupplierRequest, actor string) (*model.Supplier, error)
	DeleteSupplier(id uuid.UUID) error
}

type partnerService struct {
	customerRepo repository.CustomerRepository
	supplierRepo repository.SupplierRepository
}

func NewPartnerService(customerRepo repository.CustomerRepository, supplierRepo repository.SupplierRepository) PartnerService {
	return &partnerService{
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
	}
}

func parseDob(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, apperror.NewValidation([]apperror.FieldError{
			{Field: "Dob", Message: "not a valid date, use YYYY-MM-DD"},
		})
	}
	return &parsed, nil
}

func strValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func (s *partnerService) checkCustomerKeys(req *CustomerRequest, current *model.Customer) error {
	if current == nil || req.Phone != current.Phone {
		if existing, _ := s.customerRepo.FindByPhone(req.Phone); existing != nil {
			return apperror.NewConflict("customer", "phone", req.Phone)
		}
	}
	if req.Email != nil && *req.Email != "" && (current == nil || strValue(req.Email) != strValue(current.Email)) {
		if existing, _ := s.customerRepo.FindByEmail(*req.Email); existing != nil {
			return apperror.NewConflict("customer", "email", *req.Email)
		}
	}
	if req.NIN != nil && *req.NIN != "" && (current == nil || strValue(req.NIN) != strValue(current.NIN)) {
		if existing, _ := s.customerRepo.FindByNIN(*req.NIN); existing != nil {
			return apperror.NewConflict("customer", "nin", *req.NIN)
		}
	}
	return nil
}

func (s *partnerService) CreateCustomer(req *CustomerRequest, actor string) (*model.Customer, error) {
	if verr := validator.ValidateStruct(req); verr != nil {
		return nil, verr
	}
	if err := s.checkCustomerKeys(req, nil); err != nil {
		return nil, err
	}

	dob, err := parseDob(req.Dob)
	if err != nil {
		return nil, err
	}

	customer := &model.Customer{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Email:          req.Email,
		NIN:            req.NIN,
		Gender:         model.Gender(req.Gender),
		Country:        req.Country,
		Location:       req.Location,
		Dob:            dob,
		MaxCreditLimit: req.MaxCreditLimit,
		MaxCreditDays:  req.MaxCreditDays,
		TaxPin:         req.TaxPin,
		CustomerType:   model.CustomerType(req.CustomerType),
	}
	customer.CreatedBy = actor
	customer.UpdatedBy = actor

	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *partnerService) GetAllCustomers() ([]model.Customer, error) {
	return s.customerRepo.FindAll()
}

func (s *partnerService) GetCustomerByID(id uuid.UUID) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("customer")
		}
		return nil, err
	}
	return customer, nil
}

func (s *partnerService) UpdateCustomer(id uuid.UUID, req *CustomerRequest, actor string) (*model.Customer, error) {
	if verr := validator.ValidateStruct(req); verr != nil {
		return nil, verr
	}

	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		return nil, apperror.NewNotFound("customer")
	}

	if err := s.checkCustomerKeys(req, customer); err != nil {
		return nil, err
	}

	dob, err := parseDob(req.Dob)
	if err != nil {
		return nil, err
	}

	customer.FirstName = req.FirstName
	customer.LastName = req.LastName
	customer.Phone = req.Phone
	customer.Email = req.Email
	customer.NIN = req.NIN
	customer.Gender = model.Gender(req.Gender)
	customer.Country = req.Country
	customer.Location = req.Location
	if dob != nil {
		customer.Dob = dob
	}
	customer.MaxCreditLimit = req.MaxCreditLimit
	customer.MaxCreditDays = req.MaxCreditDays
	customer.TaxPin = req.TaxPin
	customer.CustomerType = model.CustomerType(req.CustomerType)
	customer.UpdatedBy = actor

	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *partnerService) DeleteCustomer(id uuid.UUID) error {
	if _, err := s.customerRepo.FindByID(id); err != nil {
		return apperror.NewNotFound("customer")
	}
	return s.customerRepo.Delete(id)
}

func (s *partnerService) checkSupplierKeys(req *SupplierRequest, current *model.Supplier) error {
	if current == nil || req.Phone != current.Phone {
		if existing, _ := s.supplierRepo.FindByPhone(req.Phone); existing != nil {
			return apperror.NewConflict("supplier", "phone", req.Phone)
		}
	}
	if req.Email != nil && *req.Email != "" && (current == nil || strValue(req.Email) != strValue(current.Email)) {
		if existing, _ := s.supplierRepo.FindByEmail(*req.Email); existing != nil {
			return apperror.NewConflict("supplier", "email", *req.Email)
		}
	}
	if req.RegnNumber != nil && *req.RegnNumber != "" && (current == nil || strValue(req.RegnNumber) != strValue(current.RegnNumber)) {
		if existing, _ := s.supplierRepo.FindByRegnNumber(*req.RegnNumber); existing != nil {
			return apperror.NewConflict("supplier", "regn_number", *req.RegnNumber)
		}
	}
	return nil
}

func (s *partnerService) CreateSupplier(req *SupplierRequest, actor string) (*model.Supplier, error) {
	if verr := validator.ValidateStruct(req); verr != nil {
		return nil, verr
	}
	if err := s.checkSupplierKeys(req, nil); err != nil {
		return nil, err
	}

	supplier := &model.Supplier{
		Name:              req.Name,
		ContactPerson:     req.ContactPerson,
		Phone:             req.Phone,
		Email:             req.Email,
		Location:          req.Location,
		Country:           req.Country,
		Website:           req.Website,
		TaxPin:            req.TaxPin,
		RegnNumber:        req.RegnNumber,
		BankAccountNumber: req.BankAccountNumber,
		PaymentTerm:       req.PaymentTerm,
		Logo:              req.Logo,
		Rating:            req.Rating,
		Notes:             req.Notes,
		SupplierType:      model.SupplierType(req.SupplierType),
	}
	supplier.CreatedBy = actor
	supplier.UpdatedBy = actor

	if err := s.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *partnerService) GetAllSuppliers() ([]model.Supplier, error) {
	return s.supplierRepo.FindAll()
}

func (s *partnerService) GetSupplierByID(id uuid.UUID) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("supplier")
		}
		return nil, err
	}
	return supplier, nil
}

func (s *partnerService) UpdateSupplier(id uuid.UUID, req *SupplierRequest, actor string) (*model.Supplier, error) {
	if verr := validator.ValidateStruct(req); verr != nil {
		return nil, verr
	}

	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		return nil, apperror.NewNotFound("supplier")
	}

	if err := s.checkSupplierKeys(req, supplier); err != nil {
		return nil, err
	}

	supplier.Name = req.Name
	supplier.ContactPerson = req.ContactPerson
	supplier.Phone = req.Phone
	supplier.Email = req.Email
	supplier.Location = req.Location
	supplier.Country = req.Country
	supplier.Website = req.Website
	supplier.TaxPin = req.TaxPin
	supplier.RegnNumber = req.RegnNumber
	supplier.BankAccountNumber = req.BankAccountNumber
	supplier.PaymentTerm = req.PaymentTerm
	supplier.Logo = req.Logo
	supplier.Rating = req.Rating
	supplier.Notes = req.Notes
	supplier.SupplierType = model.SupplierType(req.SupplierType)
	supplier.UpdatedBy = actor

	if err := s.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *partnerService) DeleteSupplier(id uuid.UUID) error {
	if _, err := s.supplierRepo.FindByID(id); err != nil {
		return apperror.NewNotFound("supplier")
	}
	return s.supplierRepo.Delete(id)
}
