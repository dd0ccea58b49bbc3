package service

import (
	"errors"
	"fmt"
	"regexp"

	"studio-admin-backend/internal/database/models"
	apperrors "studio-admin-backend/internal/errors"
	"studio-admin-backend/internal/estimate"
	"studio-admin-backend/internal/logger"
	"studio-admin-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// PackageService composes package templates. Package totals are never stored; every read
// aggregates the current line items against the current catalog.
type PackageService struct {
	repo            repository.PackageRepositoryInterface
	deliverableRepo repository.DeliverableRepositoryInterface
	aggregator      *estimate.Aggregator
	validator       *validator.Validate
}

// NewPackageService creates a new package service
func NewPackageService(
	repo repository.PackageRepositoryInterface,
	deliverableRepo repository.DeliverableRepositoryInterface,
	aggregator *estimate.Aggregator,
	validator *validator.Validate,
) *PackageService {
	return &PackageService{
		repo:            repo,
		deliverableRepo: deliverableRepo,
		aggregator:      aggregator,
		validator:       validator,
	}
}

// UpsertPackageRequest is a full package definition, used for create and for seeding by slug
type UpsertPackageRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Slug        string          `json:"slug" validate:"required,max=120"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty" validate:"max=100"`
	Active      *bool           `json:"active,omitempty"`
	Featured    bool            `json:"featured,omitempty"`
	SortOrder   int             `json:"sort_order,omitempty"`
	Items       []LineItemInput `json:"items" validate:"dive"`
	UpdatedBy   string          `json:"-"`
}

// UpdatePackageRequest represents a partial update of a package's display fields
type UpdatePackageRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=100"`
	Active      *bool   `json:"active,omitempty"`
	Featured    *bool   `json:"featured,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
	UpdatedBy   string  `json:"-"`
}

// SetPackageLineItemsRequest carries the complete desired line item set of a package
type SetPackageLineItemsRequest struct {
	Items     []LineItemInput `json:"items" validate:"dive"`
	UpdatedBy string          `json:"-"`
}

// PackageResponse represents a package template with its live totals
type PackageResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Active      bool               `json:"active"`
	Featured    bool               `json:"featured"`
	SortOrder   int                `json:"sort_order"`
	Totals      estimate.Totals    `json:"totals"`
	LineItems   []LineItemResponse `json:"line_items"`
	CreatedAt   string             `json:"created_at"`
	UpdatedAt   string             `json:"updated_at"`
}

// PackageListResponse represents a list of package templates
type PackageListResponse struct {
	Packages []PackageResponse `json:"packages"`
	Total    int               `json:"total"`
}

// CreatePackage creates a package template with its line items in one write
func (s *PackageService) CreatePackage(req *UpsertPackageRequest) (*PackageResponse, error) {
	if err := s.validatePackage(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetBySlug(req.Slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing package by slug: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrPackageExists
	}

	resp, _, err := s.upsert(req)
	return resp, err
}

// UpsertBySlug updates the package with the same slug or creates it, then replaces its line
// item set. Applying the same definition twice leaves identical state.
func (s *PackageService) UpsertBySlug(req *UpsertPackageRequest) (*PackageResponse, bool, error) {
	if err := s.validatePackage(req); err != nil {
		return nil, false, err
	}
	return s.upsert(req)
}

// GetPackage retrieves a package template with its line items and live totals
func (s *PackageService) GetPackage(id uuid.UUID) (*PackageResponse, error) {
	pkg, err := s.repo.GetByID(id)
	if err != nil {
		return nil, mapPackageError(err, "failed to get package")
	}
	items, err := s.repo.GetLineItems(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get package line items: %w", err)
	}
	totals, err := s.liveTotals(items)
	if err != nil {
		return nil, err
	}
	return toPackageResponse(pkg, items, totals), nil
}

// GetPackageBySlug retrieves a package template by slug
func (s *PackageService) GetPackageBySlug(slug string) (*PackageResponse, error) {
	pkg, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, mapPackageError(err, "failed to get package")
	}
	return s.GetPackage(pkg.ID)
}

// GetPackageTotals aggregates the package's current line items against the live catalog
func (s *PackageService) GetPackageTotals(id uuid.UUID) (*estimate.Totals, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		return nil, mapPackageError(err, "failed to get package")
	}
	items, err := s.repo.GetLineItems(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get package line items: %w", err)
	}
	totals, err := s.liveTotals(items)
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

// ListPackages lists package templates ordered by sort order, each with live totals
func (s *PackageService) ListPackages(active, featured *bool, category string) (*PackageListResponse, error) {
	pkgs, err := s.repo.List(repository.PackageFilter{Active: active, Featured: featured, Category: category})
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	ids := make([]uuid.UUID, len(pkgs))
	for i := range pkgs {
		ids[i] = pkgs[i].ID
	}
	var allItems []models.LineItem
	if len(ids) > 0 {
		allItems, err = s.repo.GetLineItemsByPackageIDs(ids)
		if err != nil {
			return nil, fmt.Errorf("failed to get package line items: %w", err)
		}
	}
	lookup, err := liveLookup(s.deliverableRepo, allItems)
	if err != nil {
		return nil, err
	}

	byPackage := make(map[uuid.UUID][]models.LineItem, len(pkgs))
	for _, item := range allItems {
		byPackage[item.ContainerID] = append(byPackage[item.ContainerID], item)
	}

	responses := make([]PackageResponse, len(pkgs))
	for i := range pkgs {
		items := byPackage[pkgs[i].ID]
		totals := s.aggregator.Aggregate(models.EstimateItems(items), lookup)
		responses[i] = *toPackageResponse(&pkgs[i], items, totals)
	}
	return &PackageListResponse{Packages: responses, Total: len(responses)}, nil
}

// UpdatePackage updates a package's display fields; line items are untouched
func (s *PackageService) UpdatePackage(id uuid.UUID, req *UpdatePackageRequest) (*PackageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	pkg, err := s.repo.GetByID(id)
	if err != nil {
		return nil, mapPackageError(err, "failed to get package")
	}
	if req.Name != nil {
		pkg.Name = *req.Name
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	if req.Category != nil {
		pkg.Category = *req.Category
	}
	if req.Active != nil {
		pkg.Active = *req.Active
	}
	if req.Featured != nil {
		pkg.Featured = *req.Featured
	}
	if req.SortOrder != nil {
		pkg.SortOrder = *req.SortOrder
	}
	pkg.UpdatedBy = req.UpdatedBy

	if err := s.repo.Update(pkg); err != nil {
		return nil, fmt.Errorf("failed to update package: %w", err)
	}
	return s.GetPackage(id)
}

// SetPackageLineItems replaces the package's whole line item set. Unresolved deliverables
// always fail the call and custom point overrides are rejected.
func (s *PackageService) SetPackageLineItems(id uuid.UUID, req *SetPackageLineItemsRequest) (*PackageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	items, err := s.buildItems(req.Items, req.UpdatedBy)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceLineItems(id, items); err != nil {
		return nil, mapPackageError(err, "failed to replace package line items")
	}
	logger.New().WithFields(map[string]interface{}{
		"package_id": id,
		"item_count": len(items),
	}).Info("replaced package line items")
	return s.GetPackage(id)
}

// DeletePackage deletes a package template and its line items
func (s *PackageService) DeletePackage(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return mapPackageError(err, "failed to delete package")
	}
	logger.New().WithField("package_id", id).Info("deleted package template")
	return nil
}

func (s *PackageService) validatePackage(req *UpsertPackageRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if !slugPattern.MatchString(req.Slug) {
		return apperrors.NewValidationError("slug", "must be lowercase letters, digits and single dashes")
	}
	return nil
}

func (s *PackageService) upsert(req *UpsertPackageRequest) (*PackageResponse, bool, error) {
	items, err := s.buildItems(req.Items, req.UpdatedBy)
	if err != nil {
		return nil, false, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	pkg := &models.PackageTemplate{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Category:    req.Category,
		Active:      active,
		Featured:    req.Featured,
		SortOrder:   req.SortOrder,
	}
	pkg.CreatedBy = req.UpdatedBy
	pkg.UpdatedBy = req.UpdatedBy

	created, err := s.repo.UpsertBySlug(pkg, items)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert package: %w", err)
	}
	logger.New().WithFields(map[string]interface{}{
		"slug":       pkg.Slug,
		"created":    created,
		"item_count": len(items),
	}).Info("upserted package template")

	resp, err := s.GetPackage(pkg.ID)
	if err != nil {
		return nil, false, err
	}
	return resp, created, nil
}

func (s *PackageService) buildItems(inputs []LineItemInput, by string) ([]models.LineItem, error) {
	normalized, err := normalizeLineItems(inputs, packageLineItemRules)
	if err != nil {
		return nil, err
	}
	catalog, err := loadCatalog(s.deliverableRepo, normalized)
	if err != nil {
		return nil, err
	}
	items, _, err := resolveLineItems(normalized, catalog, ReferenceModeStrict)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].CreatedBy = by
		items[i].UpdatedBy = by
	}
	return items, nil
}

func (s *PackageService) liveTotals(items []models.LineItem) (estimate.Totals, error) {
	lookup, err := liveLookup(s.deliverableRepo, items)
	if err != nil {
		return estimate.Totals{}, err
	}
	return s.aggregator.Aggregate(models.EstimateItems(items), lookup), nil
}

func mapPackageError(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrPackageNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func toPackageResponse(pkg *models.PackageTemplate, items []models.LineItem, totals estimate.Totals) *PackageResponse {
	return &PackageResponse{
		ID:          pkg.ID,
		Name:        pkg.Name,
		Slug:        pkg.Slug,
		Description: pkg.Description,
		Category:    pkg.Category,
		Active:      pkg.Active,
		Featured:    pkg.Featured,
		SortOrder:   pkg.SortOrder,
		Totals:      totals,
		LineItems:   toLineItemResponses(items),
		CreatedAt:   pkg.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   pkg.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
