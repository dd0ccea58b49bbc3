package repository

import (
	"time"

	"studio-admin-backend/internal/database/models"
	"studio-admin-backend/internal/estimate"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SprintRepository handles database operations for sprint drafts and their line items
type SprintRepository struct {
	db *gorm.DB
}

// Ensure SprintRepository implements SprintRepositoryInterface
var _ SprintRepositoryInterface = (*SprintRepository)(nil)

// NewSprintRepository creates a new sprint repository
func NewSprintRepository(db *gorm.DB) *SprintRepository {
	return &SprintRepository{db: db}
}

// Create creates a new sprint draft
func (r *SprintRepository) Create(sprint *models.SprintDraft) error {
	return r.db.Create(sprint).Error
}

// GetByID retrieves a sprint draft without its line items
func (r *SprintRepository) GetByID(id uuid.UUID) (*models.SprintDraft, error) {
	var sprint models.SprintDraft
	if err := r.db.First(&sprint, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sprint, nil
}

// GetWithLineItems retrieves a sprint draft and its line items
func (r *SprintRepository) GetWithLineItems(id uuid.UUID) (*models.SprintDraft, error) {
	sprint, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	items, err := containerLineItems(r.db, models.ContainerTypeSprint, id)
	if err != nil {
		return nil, err
	}
	sprint.LineItems = items
	return sprint, nil
}

// GetLineItems retrieves the line items of a sprint draft
func (r *SprintRepository) GetLineItems(id uuid.UUID) ([]models.LineItem, error) {
	return containerLineItems(r.db, models.ContainerTypeSprint, id)
}

// List retrieves sprint drafts, newest first, with optional filters
func (r *SprintRepository) List(filter SprintFilter, limit, offset int) ([]models.SprintDraft, int64, error) {
	var sprints []models.SprintDraft
	var total int64

	query := r.db.Model(&models.SprintDraft{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&sprints).Error; err != nil {
		return nil, 0, err
	}

	return sprints, total, nil
}

// Update applies a partial update to a sprint draft
func (r *SprintRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.Model(&models.SprintDraft{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a sprint draft together with its line items
func (r *SprintRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("container_type = ? AND container_id = ?", models.ContainerTypeSprint, id).
			Delete(&models.LineItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.SprintDraft{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ReplaceLineItems swaps the sprint's whole line item set and writes the cached totals in one
// transaction. The sprint row is locked first so concurrent replaces serialize and the stored
// totals always belong to the set stored with them.
func (r *SprintRepository) ReplaceLineItems(id uuid.UUID, items []models.LineItem, totals estimate.Totals) (*models.SprintDraft, error) {
	var sprint models.SprintDraft
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockSprint(tx, id, &sprint); err != nil {
			return err
		}
		if err := replaceContainerLineItems(tx, models.ContainerTypeSprint, id, items); err != nil {
			return err
		}
		return writeTotals(tx, &sprint, totals)
	})
	if err != nil {
		return nil, err
	}
	sprint.LineItems = items
	return &sprint, nil
}

// RecalculateTotals re-derives the cached totals from the stored line item set under the
// same row lock used by ReplaceLineItems.
func (r *SprintRepository) RecalculateTotals(id uuid.UUID, compute TotalsFunc) (*models.SprintDraft, error) {
	var sprint models.SprintDraft
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockSprint(tx, id, &sprint); err != nil {
			return err
		}
		items, err := containerLineItems(tx, models.ContainerTypeSprint, id)
		if err != nil {
			return err
		}
		totals, err := compute(items)
		if err != nil {
			return err
		}
		sprint.LineItems = items
		return writeTotals(tx, &sprint, totals)
	})
	if err != nil {
		return nil, err
	}
	return &sprint, nil
}

func lockSprint(tx *gorm.DB, id uuid.UUID, sprint *models.SprintDraft) error {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(sprint, "id = ?", id).Error
}

func writeTotals(tx *gorm.DB, sprint *models.SprintDraft, totals estimate.Totals) error {
	sprint.ApplyTotals(totals)
	sprint.UpdatedAt = time.Now()
	return tx.Model(&models.SprintDraft{}).Where("id = ?", sprint.ID).Updates(map[string]interface{}{
		"deliverable_count":     sprint.DeliverableCount,
		"total_estimate_points": sprint.TotalEstimatePoints,
		"total_fixed_hours":     sprint.TotalFixedHours,
		"total_fixed_price":     sprint.TotalFixedPrice,
		"updated_at":            sprint.UpdatedAt,
	}).Error
}
