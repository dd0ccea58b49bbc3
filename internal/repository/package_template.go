package repository

import (
	"errors"

	"studio-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PackageRepository handles database operations for package templates and their line items
type PackageRepository struct {
	db *gorm.DB
}

// Ensure PackageRepository implements PackageRepositoryInterface
var _ PackageRepositoryInterface = (*PackageRepository)(nil)

// NewPackageRepository creates a new package template repository
func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

// Create creates a new package template
func (r *PackageRepository) Create(pkg *models.PackageTemplate) error {
	return r.db.Create(pkg).Error
}

// GetByID retrieves a package template by its UUID
func (r *PackageRepository) GetByID(id uuid.UUID) (*models.PackageTemplate, error) {
	var pkg models.PackageTemplate
	if err := r.db.First(&pkg, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

// GetBySlug retrieves a package template by its slug
func (r *PackageRepository) GetBySlug(slug string) (*models.PackageTemplate, error) {
	var pkg models.PackageTemplate
	if err := r.db.Where("slug = ?", slug).First(&pkg).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

// List retrieves package templates in display order
func (r *PackageRepository) List(filter PackageFilter) ([]models.PackageTemplate, error) {
	var pkgs []models.PackageTemplate

	query := r.db.Model(&models.PackageTemplate{})
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	err := query.Order("sort_order ASC, name ASC").Find(&pkgs).Error
	return pkgs, err
}

// Update saves all fields of a package template
func (r *PackageRepository) Update(pkg *models.PackageTemplate) error {
	return r.db.Save(pkg).Error
}

// Delete removes a package template together with its line items
func (r *PackageRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("container_type = ? AND container_id = ?", models.ContainerTypePackage, id).
			Delete(&models.LineItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.PackageTemplate{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// GetLineItems retrieves the line items of a package template in display order
func (r *PackageRepository) GetLineItems(id uuid.UUID) ([]models.LineItem, error) {
	return containerLineItems(r.db, models.ContainerTypePackage, id)
}

// GetLineItemsByPackageIDs retrieves the line items of several package templates at once
func (r *PackageRepository) GetLineItemsByPackageIDs(ids []uuid.UUID) ([]models.LineItem, error) {
	return containerLineItems(r.db, models.ContainerTypePackage, ids...)
}

// ReplaceLineItems swaps the package's whole line item set in one transaction
func (r *PackageRepository) ReplaceLineItems(id uuid.UUID, items []models.LineItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var pkg models.PackageTemplate
		if err := lockPackage(tx, &pkg, "id = ?", id); err != nil {
			return err
		}
		if err := replaceContainerLineItems(tx, models.ContainerTypePackage, id, items); err != nil {
			return err
		}
		return tx.Model(&models.PackageTemplate{}).Where("id = ?", id).Update("updated_at", gorm.Expr("NOW()")).Error
	})
}

// UpsertBySlug updates the package with the same slug or inserts it, then replaces its line
// items, all in one transaction. Running it twice with the same input yields the same rows.
func (r *PackageRepository) UpsertBySlug(pkg *models.PackageTemplate, items []models.LineItem) (bool, error) {
	created := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.PackageTemplate
		err := lockPackage(tx, &existing, "slug = ?", pkg.Slug)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
			if err := tx.Create(pkg).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			pkg.ID = existing.ID
			pkg.CreatedAt = existing.CreatedAt
			pkg.CreatedBy = existing.CreatedBy
			if err := tx.Save(pkg).Error; err != nil {
				return err
			}
		}
		return replaceContainerLineItems(tx, models.ContainerTypePackage, pkg.ID, items)
	})
	return created, err
}

// lockPackage reads the package row FOR UPDATE so concurrent replaces of the same package
// serialize instead of merging their line item sets
func lockPackage(tx *gorm.DB, pkg *models.PackageTemplate, query string, args ...interface{}) error {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where(query, args...).First(pkg).Error
}
