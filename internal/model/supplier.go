package model

type SupplierType string

const (
	SupplierManufacturer SupplierType = "MANUFACTURER"
	SupplierRetail       SupplierType = "RETAIL"
	SupplierWholesale    SupplierType = "WHOLESALE"
	SupplierDistributor  SupplierType = "DISTRIBUTOR"
	SupplierOther        SupplierType = "OTHER"
)

// Supplier is a product source tracked for procurement.
type Supplier struct {
	BaseModel
	Name              string       `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	ContactPerson     string       `gorm:"type:varchar(255);not null" json:"contact_person" validate:"required"`
	Phone             string       `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone" validate:"required"`
	Email             *string      `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty" validate:"omitempty,email"`
	Location          string       `gorm:"type:varchar(255);not null" json:"location" validate:"required"`
	Country           string       `gorm:"type:varchar(100);not null" json:"country" validate:"required"`
	Website           string       `gorm:"type:varchar(255)" json:"website"`
	TaxPin            string       `gorm:"type:varchar(50)" json:"tax_pin"`
	RegnNumber        *string      `gorm:"type:varchar(100);uniqueIndex" json:"regn_number,omitempty"`
	BankAccountNumber string       `gorm:"type:varchar(100)" json:"bank_account_number"`
	PaymentTerm       string       `gorm:"type:varchar(100)" json:"payment_term"`
	Logo              string       `gorm:"type:text" json:"logo"`
	Rating            float64      `json:"rating"`
	Notes             string       `gorm:"type:text" json:"notes"`
	SupplierType      SupplierType `gorm:"type:varchar(20);not null" json:"supplier_type" validate:"required,oneof=MANUFACTURER RETAIL WHOLESALE DISTRIBUTOR OTHER"`
}
