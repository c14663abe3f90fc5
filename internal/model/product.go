package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product carries four distinct natural keys (sku, slug, product code,
// barcode). StockQty is only ever adjusted relatively so concurrent sales
// cannot lose updates; it must never go negative.
type Product struct {
	BaseModel
	Name        string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string          `gorm:"type:text" json:"description"`
	SKU         string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"sku" validate:"required"`
	Slug        string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug" validate:"required"`
	ProductCode string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"product_code" validate:"required"`
	BarCode     string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"bar_code" validate:"required"`
	BatchNumber string          `gorm:"type:varchar(100)" json:"batch_number"`
	Image       string          `gorm:"type:text" json:"image"`
	Tax         float64         `json:"tax"`
	StockQty    int             `gorm:"not null;default:0" json:"stock_qty"`
	AlertQty    int             `gorm:"not null;default:0" json:"alert_qty"`
	Price       decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"price" validate:"required"`
	BuyingPrice decimal.Decimal `gorm:"type:numeric(14,2)" json:"buying_price"`
	ExpiryDate  *time.Time      `gorm:"type:date" json:"expiry_date,omitempty"`

	UnitID     *uuid.UUID `gorm:"type:uuid" json:"unit_id,omitempty"`
	Unit       *Unit      `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	BrandID    *uuid.UUID `gorm:"type:uuid" json:"brand_id,omitempty"`
	Brand      *Brand     `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	CategoryID *uuid.UUID `gorm:"type:uuid" json:"category_id,omitempty"`
	Category   *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SupplierID *uuid.UUID `gorm:"type:uuid" json:"supplier_id,omitempty"`
	Supplier   *Supplier  `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}
