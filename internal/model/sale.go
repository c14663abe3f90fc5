package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale aggregates one or more SaleItems and payment details. It exclusively
// owns its items: deleting a sale removes its items first.
type Sale struct {
	BaseModel
	SaleNumber      string          `gorm:"type:varchar(8);uniqueIndex;not null" json:"sale_number"`
	CustomerName    string          `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail   string          `gorm:"type:varchar(255)" json:"customer_email"`
	SaleAmount      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"sale_amount"`
	BalanceAmount   decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"balance_amount"`
	PaidAmount      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"paid_amount"`
	PaymentMethod   string          `gorm:"type:varchar(50);not null" json:"payment_method"`
	TransactionCode string          `gorm:"type:varchar(100)" json:"transaction_code"`
	SaleType        string          `gorm:"type:varchar(50);not null" json:"sale_type"`

	CustomerID *uuid.UUID `gorm:"type:uuid" json:"customer_id,omitempty"`
	Customer   *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`

	Items []SaleItem `gorm:"foreignKey:SaleID" json:"sale_items"`
}

// SaleItem snapshots the product's name, price, and image at time of sale so
// the sale history stays accurate when the product record changes later.
type SaleItem struct {
	BaseModel
	SaleID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName  string          `gorm:"type:varchar(255);not null" json:"product_name"`
	ProductPrice decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"product_price"`
	ProductImage string          `gorm:"type:text" json:"product_image"`
	Qty          int             `gorm:"not null" json:"qty"`
}
