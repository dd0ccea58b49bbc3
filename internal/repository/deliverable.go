package repository

import (
	"errors"
	"fmt"

	"studio-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// foreignKeyViolation is the Postgres SQLSTATE for a violated foreign key
const foreignKeyViolation = "23503"

// DeliverableRepository handles database operations for the deliverable catalog
type DeliverableRepository struct {
	db *gorm.DB
}

// Ensure DeliverableRepository implements DeliverableRepositoryInterface
var _ DeliverableRepositoryInterface = (*DeliverableRepository)(nil)

// NewDeliverableRepository creates a new deliverable repository
func NewDeliverableRepository(db *gorm.DB) *DeliverableRepository {
	return &DeliverableRepository{db: db}
}

// Create creates a new deliverable
func (r *DeliverableRepository) Create(deliverable *models.Deliverable) error {
	return r.db.Create(deliverable).Error
}

// GetByID retrieves a deliverable by its UUID, active or not
func (r *DeliverableRepository) GetByID(id uuid.UUID) (*models.Deliverable, error) {
	var deliverable models.Deliverable
	if err := r.db.First(&deliverable, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &deliverable, nil
}

// GetBySlug retrieves a deliverable by its slug
func (r *DeliverableRepository) GetBySlug(slug string) (*models.Deliverable, error) {
	var deliverable models.Deliverable
	if err := r.db.Where("slug = ?", slug).First(&deliverable).Error; err != nil {
		return nil, err
	}
	return &deliverable, nil
}

// GetByIDs retrieves all deliverables with the given ids, including inactive ones.
// Missing ids are simply absent from the result.
func (r *DeliverableRepository) GetByIDs(ids []uuid.UUID) ([]models.Deliverable, error) {
	var deliverables []models.Deliverable
	if len(ids) == 0 {
		return deliverables, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&deliverables).Error
	return deliverables, err
}

// GetBySlugs retrieves all deliverables with the given slugs
func (r *DeliverableRepository) GetBySlugs(slugs []string) ([]models.Deliverable, error) {
	var deliverables []models.Deliverable
	if len(slugs) == 0 {
		return deliverables, nil
	}
	err := r.db.Where("slug IN ?", slugs).Find(&deliverables).Error
	return deliverables, err
}

// GetActiveByNames retrieves active deliverables whose name matches exactly
func (r *DeliverableRepository) GetActiveByNames(names []string) ([]models.Deliverable, error) {
	var deliverables []models.Deliverable
	if len(names) == 0 {
		return deliverables, nil
	}
	err := r.db.Where("active = ? AND name IN ?", true, names).
		Order("created_at ASC").
		Find(&deliverables).Error
	return deliverables, err
}

// List retrieves deliverables with optional filters and pagination
func (r *DeliverableRepository) List(filter DeliverableFilter, limit, offset int) ([]models.Deliverable, int64, error) {
	var deliverables []models.Deliverable
	var total int64

	query := r.db.Model(&models.Deliverable{})
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Limit(limit).Offset(offset).
		Order("category ASC, sort_order ASC, name ASC").
		Find(&deliverables).Error; err != nil {
		return nil, 0, err
	}

	return deliverables, total, nil
}

// ListCategories returns active deliverable counts grouped by category
func (r *DeliverableRepository) ListCategories() ([]CategoryCount, error) {
	var counts []CategoryCount
	err := r.db.Model(&models.Deliverable{}).
		Select("category, COUNT(*) AS count").
		Where("active = ? AND category <> ''", true).
		Group("category").
		Order("category ASC").
		Scan(&counts).Error
	return counts, err
}

// Update saves all fields of a deliverable
func (r *DeliverableRepository) Update(deliverable *models.Deliverable) error {
	return r.db.Save(deliverable).Error
}

// Delete hard-deletes a deliverable. It returns gorm.ErrForeignKeyViolated when line items
// still reference it, including ones attached after a CountReferences check.
func (r *DeliverableRepository) Delete(id uuid.UUID) error {
	err := r.db.Delete(&models.Deliverable{}, "id = ?", id).Error
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return fmt.Errorf("%w: %s", gorm.ErrForeignKeyViolated, pgErr.ConstraintName)
	}
	return err
}

// CountReferences counts line items (sprint or package) pointing at the deliverable
func (r *DeliverableRepository) CountReferences(id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.LineItem{}).Where("deliverable_id = ?", id).Count(&count).Error
	return count, err
}

// UpsertBySlug updates the deliverable with the same slug or inserts a new one.
// On return deliverable.ID holds the persisted id; the bool reports an insert.
func (r *DeliverableRepository) UpsertBySlug(deliverable *models.Deliverable) (bool, error) {
	created := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Deliverable
		err := tx.Where("slug = ?", deliverable.Slug).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
			return tx.Create(deliverable).Error
		case err != nil:
			return err
		}

		deliverable.ID = existing.ID
		deliverable.CreatedAt = existing.CreatedAt
		deliverable.CreatedBy = existing.CreatedBy
		return tx.Save(deliverable).Error
	})
	return created, err
}
