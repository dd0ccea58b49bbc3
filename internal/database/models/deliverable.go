package models

// Deliverable is a sellable catalog entry. BasePoints is nil for bespoke work whose price is TBD.
// Deliverables referenced by line items are deactivated, never deleted.
type Deliverable struct {
	BaseModel
	Slug        string   `json:"slug" gorm:"size:120;not null;uniqueIndex" validate:"required,max=120"`
	Name        string   `json:"name" gorm:"size:200;not null;index" validate:"required,min=1,max=200"`
	Category    string   `json:"category" gorm:"size:100;index" validate:"max=100"`
	Description string   `json:"description" gorm:"type:text"`
	Scope       string   `json:"scope" gorm:"type:text"`
	BasePoints  *float64 `json:"base_points"`
	Active      bool     `json:"active" gorm:"not null;index"`
	SortOrder   int      `json:"sort_order" gorm:"default:0"`
}

// TableName returns the table name for Deliverable
func (Deliverable) TableName() string {
	return "deliverables"
}

// Snapshot copies the display fields that line items keep at attach time
func (d *Deliverable) Snapshot() DeliverableSnapshot {
	return DeliverableSnapshot{
		Name:        d.Name,
		Category:    d.Category,
		Description: d.Description,
	}
}
