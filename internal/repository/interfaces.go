package repository

import (
	"studio-admin-backend/internal/database/models"
	"studio-admin-backend/internal/estimate"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// DeliverableFilter narrows catalog listings
type DeliverableFilter struct {
	Active   *bool
	Category string
}

// CategoryCount is the number of active deliverables in one category
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// SprintFilter narrows sprint draft listings
type SprintFilter struct {
	Status    string
	ProjectID *uuid.UUID
}

// PackageFilter narrows package template listings
type PackageFilter struct {
	Active   *bool
	Featured *bool
	Category string
}

// TotalsFunc derives sprint totals from the line item set read inside a transaction
type TotalsFunc func(items []models.LineItem) (estimate.Totals, error)

// DeliverableRepositoryInterface defines the interface for catalog repository operations
type DeliverableRepositoryInterface interface {
	Create(deliverable *models.Deliverable) error
	GetByID(id uuid.UUID) (*models.Deliverable, error)
	GetBySlug(slug string) (*models.Deliverable, error)
	GetByIDs(ids []uuid.UUID) ([]models.Deliverable, error)
	GetBySlugs(slugs []string) ([]models.Deliverable, error)
	GetActiveByNames(names []string) ([]models.Deliverable, error)
	List(filter DeliverableFilter, limit, offset int) ([]models.Deliverable, int64, error)
	ListCategories() ([]CategoryCount, error)
	Update(deliverable *models.Deliverable) error
	Delete(id uuid.UUID) error
	CountReferences(id uuid.UUID) (int64, error)
	UpsertBySlug(deliverable *models.Deliverable) (bool, error)
}

// SprintRepositoryInterface defines the interface for sprint draft repository operations
type SprintRepositoryInterface interface {
	Create(sprint *models.SprintDraft) error
	GetByID(id uuid.UUID) (*models.SprintDraft, error)
	GetWithLineItems(id uuid.UUID) (*models.SprintDraft, error)
	GetLineItems(id uuid.UUID) ([]models.LineItem, error)
	List(filter SprintFilter, limit, offset int) ([]models.SprintDraft, int64, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
	ReplaceLineItems(id uuid.UUID, items []models.LineItem, totals estimate.Totals) (*models.SprintDraft, error)
	RecalculateTotals(id uuid.UUID, compute TotalsFunc) (*models.SprintDraft, error)
}

// PackageRepositoryInterface defines the interface for package template repository operations
type PackageRepositoryInterface interface {
	Create(pkg *models.PackageTemplate) error
	GetByID(id uuid.UUID) (*models.PackageTemplate, error)
	GetBySlug(slug string) (*models.PackageTemplate, error)
	List(filter PackageFilter) ([]models.PackageTemplate, error)
	Update(pkg *models.PackageTemplate) error
	Delete(id uuid.UUID) error
	GetLineItems(id uuid.UUID) ([]models.LineItem, error)
	GetLineItemsByPackageIDs(ids []uuid.UUID) ([]models.LineItem, error)
	ReplaceLineItems(id uuid.UUID, items []models.LineItem) error
	UpsertBySlug(pkg *models.PackageTemplate, items []models.LineItem) (bool, error)
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetByName(name string) (*models.Project, error)
	GetAll(limit, offset int) ([]models.Project, int64, error)
}
