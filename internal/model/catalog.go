package model

// Master data for the product catalog. Each carries a unique slug as its
// natural key.

type Brand struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Slug string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug" validate:"required"`

	Products []Product `json:"products,omitempty"`
}

type Category struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Slug string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug" validate:"required"`

	Products []Product `json:"products,omitempty"`
}

type Unit struct {
	BaseModel
	Name         string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Abbreviation string `gorm:"type:varchar(20);not null" json:"abbreviation" validate:"required"`
	Slug         string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug" validate:"required"`

	Products []Product `json:"products,omitempty"`
}
