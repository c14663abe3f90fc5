package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CustomerType string

const (
	CustomerRetail      CustomerType = "RETAIL"
	CustomerWholesale   CustomerType = "WHOLESALE"
	CustomerDistributor CustomerType = "DISTRIBUTOR"
	CustomerOther       CustomerType = "OTHER"
)

// Customer is a buyer that can be attached to sales for credit tracking.
type Customer struct {
	BaseModel
	FirstName      string          `gorm:"type:varchar(100);not null" json:"first_name" validate:"required"`
	LastName       string          `gorm:"type:varchar(100);not null" json:"last_name" validate:"required"`
	Phone          string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone" validate:"required"`
	Email          *string         `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty" validate:"omitempty,email"`
	NIN            *string         `gorm:"type:varchar(50);uniqueIndex" json:"nin,omitempty"`
	Gender         Gender          `gorm:"type:varchar(10);not null" json:"gender" validate:"required,oneof=MALE FEMALE"`
	Country        string          `gorm:"type:varchar(100);not null" json:"country" validate:"required"`
	Location       string          `gorm:"type:varchar(255);not null" json:"location" validate:"required"`
	Dob            *time.Time      `gorm:"type:date" json:"dob,omitempty"`
	MaxCreditLimit decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"max_credit_limit" validate:"required"`
	MaxCreditDays  int             `gorm:"not null" json:"max_credit_days" validate:"required,gt=0"`
	TaxPin         string          `gorm:"type:varchar(50)" json:"tax_pin"`
	CustomerType   CustomerType    `gorm:"type:varchar(20);not null" json:"customer_type" validate:"required,oneof=RETAIL WHOLESALE DISTRIBUTOR OTHER"`

	Sales []Sale `json:"sales,omitempty"`
}
