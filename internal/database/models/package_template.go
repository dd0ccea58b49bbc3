package models

import (
	"gorm.io/gorm"
)

// PackageTemplate is a reusable, admin-curated bundle of deliverables. Its price is always
// derived from the live catalog; the legacy flat_fee and flat_hours columns stay NULL.
type PackageTemplate struct {
	BaseModel
	Name        string `json:"name" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Slug        string `json:"slug" gorm:"size:120;not null;uniqueIndex" validate:"required,max=120"`
	Description string `json:"description" gorm:"type:text"`
	Category    string `json:"category" gorm:"size:100;index"`
	Active      bool   `json:"active" gorm:"not null"`
	Featured    bool   `json:"featured" gorm:"not null"`
	SortOrder   int    `json:"sort_order" gorm:"default:0"`

	// legacy columns, see BeforeSave
	FlatFee   *int64   `json:"-" gorm:"column:flat_fee"`
	FlatHours *float64 `json:"-" gorm:"column:flat_hours"`

	LineItems []LineItem `json:"line_items,omitempty" gorm:"-"`
}

// TableName returns the table name for PackageTemplate
func (PackageTemplate) TableName() string {
	return "package_templates"
}

// BeforeSave keeps the legacy price columns NULL on every create and save
func (p *PackageTemplate) BeforeSave(tx *gorm.DB) error {
	p.FlatFee = nil
	p.FlatHours = nil
	return nil
}
