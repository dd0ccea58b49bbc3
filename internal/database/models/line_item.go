package models

import (
	"studio-admin-backend/internal/estimate"

	"github.com/google/uuid"
)

// DeliverableSnapshot is the point-in-time copy of a deliverable's display fields.
// Historical containers keep rendering correctly after the catalog entry changes.
type DeliverableSnapshot struct {
	Name        string `json:"name" gorm:"size:200"`
	Category    string `json:"category" gorm:"size:100"`
	Description string `json:"description" gorm:"type:text"`
}

// LineItem attaches one deliverable to exactly one container (a sprint draft or a package template).
type LineItem struct {
	BaseModel
	ContainerType        ContainerType       `json:"container_type" gorm:"type:varchar(20);not null;uniqueIndex:idx_line_items_container_deliverable,priority:1"`
	ContainerID          uuid.UUID           `json:"container_id" gorm:"type:uuid;not null;uniqueIndex:idx_line_items_container_deliverable,priority:2"`
	DeliverableID        uuid.UUID           `json:"deliverable_id" gorm:"type:uuid;not null;uniqueIndex:idx_line_items_container_deliverable,priority:3;index"`
	Quantity             int                 `json:"quantity" gorm:"not null;default:1"`
	ComplexityMultiplier float64             `json:"complexity_multiplier" gorm:"not null;default:1"`
	CustomEstimatePoints *float64            `json:"custom_estimate_points,omitempty"`
	Note                 string              `json:"note,omitempty" gorm:"type:text"`
	CustomScope          string              `json:"custom_scope,omitempty" gorm:"type:text"`
	SortOrder            int                 `json:"sort_order" gorm:"default:0"`
	Snapshot             DeliverableSnapshot `json:"snapshot" gorm:"embedded;embeddedPrefix:snapshot_"`

	// Deliverable only carries the foreign key; a referenced deliverable cannot be deleted.
	Deliverable *Deliverable `json:"-" gorm:"foreignKey:DeliverableID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the table name for LineItem
func (LineItem) TableName() string {
	return "line_items"
}

// EstimateItem returns the estimation view of the line item
func (li *LineItem) EstimateItem() estimate.Item {
	return estimate.Item{
		DeliverableID:        li.DeliverableID,
		Quantity:             li.Quantity,
		ComplexityMultiplier: li.ComplexityMultiplier,
		CustomEstimatePoints: li.CustomEstimatePoints,
	}
}

// EstimateItems converts a line item set for aggregation
func EstimateItems(items []LineItem) []estimate.Item {
	out := make([]estimate.Item, len(items))
	for i := range items {
		out[i] = items[i].EstimateItem()
	}
	return out
}
