package model

import "github.com/google/uuid"

// Shop is a sales location managed by an admin and staffed by attendants.
type Shop struct {
	BaseModel
	Name     string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Slug     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug" validate:"required"`
	Location string    `gorm:"type:varchar(255);not null" json:"location" validate:"required"`
	AdminID  uuid.UUID `gorm:"type:uuid;not null" json:"admin_id" validate:"uuid_required"`
	Admin    *User     `gorm:"foreignKey:AdminID" json:"admin,omitempty"`

	Attendants []User `gorm:"many2many:shop_attendants;" json:"attendants,omitempty"`
}
