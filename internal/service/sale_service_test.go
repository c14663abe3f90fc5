package service

import (
	"errors"
	"testing"

	"go-pos-api/internal/model"
	"go-pos-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// fakeSaleRepo stands in for the transactional store. createErr simulates a
// rolled-back transaction: when set, nothing is recorded.
type fakeSaleRepo struct {
	created       *model.Sale
	createdItems  []model.SaleItem
	appended      []model.SaleItem
	createErr     error
	alwaysCollide bool
	findByIDCalls int
}

func (f *fakeSaleRepo) CreateWithItems(sale *model.Sale, items []model.SaleItem) error {
	if f.createErr != nil {
		return f.createErr
	}
	sale.ID = uuid.New()
	for i := range items {
		items[i].SaleID = sale.ID
	}
	f.created = sale
	f.createdItems = items
	return nil
}

func (f *fakeSaleRepo) AppendItems(items []model.SaleItem) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.appended = items
	return nil
}

func (f *fakeSaleRepo) FindAll() ([]model.Sale, error) { return nil, nil }

func (f *fakeSaleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	f.findByIDCalls++
	if f.created != nil && f.created.ID == id {
		sale := *f.created
		sale.Items = f.createdItems
		return &sale, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSaleRepo) FindByNumber(saleNumber string) (*model.Sale, error) {
	if f.alwaysCollide {
		return &model.Sale{SaleNumber: saleNumber}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSaleRepo) Update(sale *model.Sale) error { return nil }

func (f *fakeSaleRepo) DeleteWithItems(id uuid.UUID) error { return nil }

func validSaleRequest() *CreateSaleRequest {
	return &CreateSaleRequest{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		SaleAmount:    decimal.NewFromInt(300),
		BalanceAmount: decimal.NewFromInt(100),
		PaidAmount:    decimal.NewFromInt(200),
		PaymentMethod: "CASH",
		SaleType:      "PAID",
		SaleItems: []SaleItemRequest{
			{ProductID: uuid.New(), Qty: 2, Name: "Soap", Price: decimal.NewFromInt(100)},
			{ProductID: uuid.New(), Qty: 1, Name: "Brush", Price: decimal.NewFromInt(100)},
		},
	}
}

func TestCreateSale_Success(t *testing.T) {
	repo := &fakeSaleRepo{}
	svc := NewSaleService(repo, nil)

	sale, err := svc.CreateSale(validSaleRequest(), "tester")
	if err != nil {
		t.Fatalf("CreateSale() error = %v", err)
	}

	if len(sale.SaleNumber) != saleNumberLength {
		t.Errorf("sale number %q has wrong length", sale.SaleNumber)
	}
	if len(sale.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(sale.Items))
	}
	for i, item := range sale.Items {
		if item.SaleID != sale.ID {
			t.Errorf("item %d not linked to sale", i)
		}
	}
	// Snapshot fields must come from the request, not the product record
	if sale.Items[0].ProductName != "Soap" {
		t.Errorf("item snapshot name = %q, want Soap", sale.Items[0].ProductName)
	}
	if repo.findByIDCalls != 1 {
		t.Errorf("expected one post-commit read-back, got %d", repo.findByIDCalls)
	}
}

func TestCreateSale_ItemsProcessedInInputOrder(t *testing.T) {
	repo := &fakeSaleRepo{}
	svc := NewSaleService(repo, nil)

	req := validSaleRequest()
	sale, err := svc.CreateSale(req, "tester")
	if err != nil {
		t.Fatalf("CreateSale() error = %v", err)
	}
	for i, item := range sale.Items {
		if item.ProductID != req.SaleItems[i].ProductID {
			t.Errorf("item %d out of input order", i)
		}
	}
}

func TestCreateSale_ValidationListsEveryFailingField(t *testing.T) {
	svc := NewSaleService(&fakeSaleRepo{}, nil)

	req := &CreateSaleRequest{
		CustomerEmail: "not-an-email",
		SaleItems: []SaleItemRequest{
			{Qty: 0}, // missing product id, zero qty, missing name
		},
	}
	_, err := svc.CreateSale(req, "tester")

	var verr *apperror.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	want := map[string]bool{
		"CustomerName":             false,
		"CustomerEmail":            false,
		"PaymentMethod":            false,
		"SaleType":                 false,
		"SaleItems[0].ProductID":   false,
		"SaleItems[0].Qty":         false,
		"SaleItems[0].Name":        false,
	}
	for _, f := range verr.Fields {
		if _, ok := want[f.Field]; ok {
			want[f.Field] = true
		}
	}
	for field, seen := range want {
		if !seen {
			t.Errorf("field %s missing from validation result: %v", field, verr.Messages())
		}
	}
}

func TestCreateSale_WorkflowErrorPropagatesWithoutReadBack(t *testing.T) {
	repo := &fakeSaleRepo{
		createErr: apperror.NewWorkflow("decrement stock", "product %s does not exist", uuid.Nil),
	}
	svc := NewSaleService(repo, nil)

	_, err := svc.CreateSale(validSaleRequest(), "tester")

	var werr *apperror.WorkflowError
	if !errors.As(err, &werr) {
		t.Fatalf("expected WorkflowError, got %v", err)
	}
	if repo.findByIDCalls != 0 {
		t.Error("read-back must not run after a failed transaction")
	}
	if repo.created != nil {
		t.Error("nothing should be recorded when the transaction fails")
	}
}

func TestCreateSale_SaleNumberRetryGivesUp(t *testing.T) {
	repo := &fakeSaleRepo{alwaysCollide: true}
	svc := NewSaleService(repo, nil)

	_, err := svc.CreateSale(validSaleRequest(), "tester")

	var werr *apperror.WorkflowError
	if !errors.As(err, &werr) {
		t.Fatalf("expected WorkflowError after exhausted retries, got %v", err)
	}
	if repo.created != nil {
		t.Error("no sale must be created when a unique number cannot be allocated")
	}
}

func TestCreateSale_EmptyItemsAllowed(t *testing.T) {
	repo := &fakeSaleRepo{}
	svc := NewSaleService(repo, nil)

	req := validSaleRequest()
	req.SaleItems = nil

	sale, err := svc.CreateSale(req, "tester")
	if err != nil {
		t.Fatalf("CreateSale() error = %v", err)
	}
	if len(sale.Items) != 0 {
		t.Errorf("expected no items, got %d", len(sale.Items))
	}
}

func TestAppendItems_RequiresAtLeastOne(t *testing.T) {
	svc := NewSaleService(&fakeSaleRepo{}, nil)

	_, err := svc.AppendItems(nil, "tester")

	var verr *apperror.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAppendItems_Success(t *testing.T) {
	repo := &fakeSaleRepo{}
	svc := NewSaleService(repo, nil)

	saleID := uuid.New()
	items, err := svc.AppendItems([]AppendSaleItemRequest{
		{SaleID: saleID, ProductID: uuid.New(), Qty: 3, ProductName: "Soap", ProductPrice: decimal.NewFromInt(50)},
	}, "tester")
	if err != nil {
		t.Fatalf("AppendItems() error = %v", err)
	}
	if len(items) != 1 || items[0].SaleID != saleID {
		t.Errorf("appended item not addressed to sale %s: %+v", saleID, items)
	}
	if len(repo.appended) != 1 {
		t.Errorf("repo received %d items, want 1", len(repo.appended))
	}
}

func TestGetSaleByID_NotFound(t *testing.T) {
	svc := NewSaleService(&fakeSaleRepo{}, nil)

	_, err := svc.GetSaleByID(uuid.New())

	var nf *apperror.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
