package repository

import (
	"errors"

	"go-pos-api/internal/model"
	"go-pos-api/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	// CreateWithItems persists the sale header, then for each item in input
	// order decrements product stock and inserts the line item, all inside a
	// single transaction. Either everything commits or nothing does.
	CreateWithItems(sale *model.Sale, items []model.SaleItem) error
	// AppendItems runs the same decrement-then-insert loop for pre-addressed
	// items (each carries its own SaleID) without creating a header.
	AppendItems(items []model.SaleItem) error
	FindAll() ([]model.Sale, error)
	FindByID(id uuid.UUID) (*model.Sale, error)
	FindByNumber(saleNumber string) (*model.Sale, error)
	Update(sale *model.Sale) error
	// DeleteWithItems removes the sale's items first, then the sale itself.
	// Stock is not restored.
	DeleteWithItems(id uuid.UUID) error
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) CreateWithItems(sale *model.Sale, items []model.SaleItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}
		for i := range items {
			item := &items[i]
			item.SaleID = sale.ID
			if err := decrementStock(tx, item.ProductID, item.Qty); err != nil {
				return err
			}
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *saleRepo) AppendItems(items []model.SaleItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range items {
			item := &items[i]
			if err := decrementStock(tx, item.ProductID, item.Qty); err != nil {
				return err
			}
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// decrementStock applies a guarded relative adjustment so concurrent sales of
// the same product cannot lose updates and stock can never go negative.
func decrementStock(tx *gorm.DB, productID uuid.UUID, qty int) error {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND stock_qty >= ?", productID, qty).
		Update("stock_qty", gorm.Expr("stock_qty - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&model.Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperror.NewWorkflow("decrement stock", "product %s does not exist", productID)
		}
		return apperror.NewWorkflow("decrement stock", "insufficient stock for product %s", productID)
	}
	return nil
}

func (r *saleRepo) FindAll() ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Preload("Items").Order("created_at DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	var sale model.Sale
	if err := r.db.Preload("Items").First(&sale, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepo) FindByNumber(saleNumber string) (*model.Sale, error) {
	var sale model.Sale
	if err := r.db.First(&sale, "sale_number = ?", saleNumber).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepo) Update(sale *model.Sale) error {
	return r.db.Save(sale).Error
}

func (r *saleRepo) DeleteWithItems(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var sale model.Sale
		if err := tx.First(&sale, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NewNotFound("sale")
			}
			return err
		}
		if err := tx.Where("sale_id = ?", id).Delete(&model.SaleItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&sale).Error
	})
}
