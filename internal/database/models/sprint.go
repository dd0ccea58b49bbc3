package models

import (
	"time"

	"studio-admin-backend/internal/estimate"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SprintDraft is one client engagement's proposed scope. The total columns cache the
// aggregate of the current line item set and are rewritten with every replace.
type SprintDraft struct {
	BaseModel
	Title               string            `json:"title" gorm:"size:250;not null" validate:"required,min=1,max=250"`
	ProjectID           *uuid.UUID        `json:"project_id,omitempty" gorm:"type:uuid;index"`
	StartDate           *time.Time        `json:"start_date,omitempty"`
	Weeks               *int              `json:"weeks,omitempty"`
	DueDate             *time.Time        `json:"due_date,omitempty"`
	Status              SprintStatus      `json:"status" gorm:"type:varchar(30);not null;default:'draft';index"`
	ContractURL         string            `json:"contract_url" gorm:"size:500"`
	ContractStatus      ContractStatus    `json:"contract_status" gorm:"type:varchar(30);not null;default:'not_linked'"`
	DeliverableCount    int               `json:"deliverable_count" gorm:"not null;default:0"`
	TotalEstimatePoints float64           `json:"total_estimate_points" gorm:"not null;default:0"`
	TotalFixedHours     float64           `json:"total_fixed_hours" gorm:"not null;default:0"`
	TotalFixedPrice     int64             `json:"total_fixed_price" gorm:"not null;default:0"`
	Metadata            datatypes.JSONMap `json:"metadata,omitempty" gorm:"type:jsonb"`

	LineItems []LineItem `json:"line_items,omitempty" gorm:"-"`
}

// TableName returns the table name for SprintDraft
func (SprintDraft) TableName() string {
	return "sprint_drafts"
}

// Totals returns the cached totals
func (s *SprintDraft) Totals() estimate.Totals {
	return estimate.Totals{
		DeliverableCount: s.DeliverableCount,
		TotalPoints:      s.TotalEstimatePoints,
		TotalHours:       s.TotalFixedHours,
		TotalPrice:       s.TotalFixedPrice,
	}
}

// ApplyTotals overwrites the cached totals
func (s *SprintDraft) ApplyTotals(t estimate.Totals) {
	s.DeliverableCount = t.DeliverableCount
	s.TotalEstimatePoints = t.TotalPoints
	s.TotalFixedHours = t.TotalHours
	s.TotalFixedPrice = t.TotalPrice
}
