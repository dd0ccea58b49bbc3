package service

import (
	"studio-admin-backend/internal/estimate"
	"studio-admin-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// DeliverableServiceInterface defines the interface for deliverable catalog service
type DeliverableServiceInterface interface {
	CreateDeliverable(req *CreateDeliverableRequest) (*DeliverableResponse, error)
	UpsertDeliverable(req *CreateDeliverableRequest) (*DeliverableResponse, bool, error)
	GetDeliverable(id uuid.UUID) (*DeliverableResponse, error)
	ResolveSlugs(slugs []string) (map[string]uuid.UUID, error)
	ListDeliverables(active *bool, category string, page, pageSize int) (*DeliverableListResponse, error)
	ListCategories() ([]repository.CategoryCount, error)
	UpdateDeliverable(id uuid.UUID, req *UpdateDeliverableRequest) (*DeliverableResponse, error)
	DeleteDeliverable(id uuid.UUID) error
}

// SprintServiceInterface defines the interface for sprint draft service
type SprintServiceInterface interface {
	CreateSprint(req *CreateSprintRequest) (*SprintResponse, error)
	GetSprint(id uuid.UUID) (*SprintResponse, error)
	ListSprints(status string, projectID *uuid.UUID, page, pageSize int) (*SprintListResponse, error)
	UpdateSprint(id uuid.UUID, req *UpdateSprintRequest) (*SprintResponse, error)
	DeleteSprint(id uuid.UUID) error
	SetLineItems(sprintID uuid.UUID, req *SetLineItemsRequest, mode ReferenceMode) (*SetLineItemsResponse, error)
	GetTotals(sprintID uuid.UUID) (*estimate.Totals, error)
	RecalculateTotals(sprintID uuid.UUID) (*SprintResponse, error)
	UpdateStatus(sprintID uuid.UUID, req *UpdateSprintStatusRequest) (*SprintResponse, error)
	UpdateContract(sprintID uuid.UUID, req *UpdateContractRequest) (*SprintResponse, error)
}

// PackageServiceInterface defines the interface for package template service
type PackageServiceInterface interface {
	CreatePackage(req *UpsertPackageRequest) (*PackageResponse, error)
	UpsertBySlug(req *UpsertPackageRequest) (*PackageResponse, bool, error)
	GetPackage(id uuid.UUID) (*PackageResponse, error)
	GetPackageBySlug(slug string) (*PackageResponse, error)
	GetPackageTotals(id uuid.UUID) (*estimate.Totals, error)
	ListPackages(active, featured *bool, category string) (*PackageListResponse, error)
	UpdatePackage(id uuid.UUID, req *UpdatePackageRequest) (*PackageResponse, error)
	SetPackageLineItems(id uuid.UUID, req *SetPackageLineItemsRequest) (*PackageResponse, error)
	DeletePackage(id uuid.UUID) error
}

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	Create(req *CreateProjectRequest) (*ProjectResponse, error)
	GetByID(id uuid.UUID) (*ProjectResponse, error)
	GetAll(page, pageSize int) (*ProjectListResponse, error)
}

// IngestionServiceInterface defines the interface for draft ingestion
type IngestionServiceInterface interface {
	Ingest(proposal *DraftProposal) (*IngestionResult, error)
}

var (
	_ DeliverableServiceInterface = (*DeliverableService)(nil)
	_ SprintServiceInterface      = (*SprintService)(nil)
	_ PackageServiceInterface     = (*PackageService)(nil)
	_ ProjectServiceInterface     = (*ProjectService)(nil)
	_ IngestionServiceInterface   = (*IngestionService)(nil)
)
