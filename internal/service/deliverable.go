package service

import (
	"errors"
	"fmt"
	"math"

	"studio-admin-backend/internal/database/models"
	apperrors "studio-admin-backend/internal/errors"
	"studio-admin-backend/internal/estimate"
	"studio-admin-backend/internal/logger"
	"studio-admin-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeliverableService handles business logic for the deliverable catalog
type DeliverableService struct {
	repo      repository.DeliverableRepositoryInterface
	validator *validator.Validate
}

// NewDeliverableService creates a new deliverable service
func NewDeliverableService(repo repository.DeliverableRepositoryInterface, validator *validator.Validate) *DeliverableService {
	return &DeliverableService{
		repo:      repo,
		validator: validator,
	}
}

// CreateDeliverableRequest represents the request to create (or seed) a deliverable
type CreateDeliverableRequest struct {
	Slug        string   `json:"slug" validate:"required,max=120"`
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Category    string   `json:"category,omitempty" validate:"max=100"`
	Description string   `json:"description,omitempty"`
	Scope       string   `json:"scope,omitempty"`
	BasePoints  *float64 `json:"base_points,omitempty"`
	Active      *bool    `json:"active,omitempty"`
	SortOrder   int      `json:"sort_order,omitempty"`
	CreatedBy   string   `json:"-"`
}

// UpdateDeliverableRequest represents a partial update of a deliverable.
// ClearBasePoints turns the deliverable into bespoke work with no base points.
type UpdateDeliverableRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Category        *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	Description     *string  `json:"description,omitempty"`
	Scope           *string  `json:"scope,omitempty"`
	BasePoints      *float64 `json:"base_points,omitempty"`
	ClearBasePoints bool     `json:"clear_base_points,omitempty"`
	Active          *bool    `json:"active,omitempty"`
	SortOrder       *int     `json:"sort_order,omitempty"`
	UpdatedBy       string   `json:"-"`
}

// DeliverableResponse represents the response for deliverable operations
type DeliverableResponse struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Scope       string    `json:"scope"`
	BasePoints  *float64  `json:"base_points"`
	Active      bool      `json:"active"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// DeliverableListResponse represents a paginated list of deliverables
type DeliverableListResponse struct {
	Deliverables []DeliverableResponse `json:"deliverables"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
}

// CreateDeliverable adds a deliverable to the catalog
func (s *DeliverableService) CreateDeliverable(req *CreateDeliverableRequest) (*DeliverableResponse, error) {
	if err := s.validateCreate(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetBySlug(req.Slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing deliverable by slug: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDeliverableExists
	}

	deliverable := newDeliverable(req)
	if err := s.repo.Create(deliverable); err != nil {
		return nil, fmt.Errorf("failed to create deliverable: %w", err)
	}
	return toDeliverableResponse(deliverable), nil
}

// UpsertDeliverable updates the deliverable with the same slug or creates it
func (s *DeliverableService) UpsertDeliverable(req *CreateDeliverableRequest) (*DeliverableResponse, bool, error) {
	if err := s.validateCreate(req); err != nil {
		return nil, false, err
	}

	deliverable := newDeliverable(req)
	created, err := s.repo.UpsertBySlug(deliverable)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert deliverable: %w", err)
	}
	return toDeliverableResponse(deliverable), created, nil
}

// GetDeliverable retrieves a deliverable by ID
func (s *DeliverableService) GetDeliverable(id uuid.UUID) (*DeliverableResponse, error) {
	deliverable, err := s.repo.GetByID(id)
	if err != nil {
		return nil, mapDeliverableError(err, "failed to get deliverable")
	}
	return toDeliverableResponse(deliverable), nil
}

// ResolveSlugs maps slugs to deliverable ids. Unknown slugs are absent from the result.
func (s *DeliverableService) ResolveSlugs(slugs []string) (map[string]uuid.UUID, error) {
	if len(slugs) == 0 {
		return map[string]uuid.UUID{}, nil
	}
	deliverables, err := s.repo.GetBySlugs(slugs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve deliverable slugs: %w", err)
	}
	out := make(map[string]uuid.UUID, len(deliverables))
	for _, d := range deliverables {
		out[d.Slug] = d.ID
	}
	return out, nil
}

// ListDeliverables lists the catalog with optional filters and pagination
func (s *DeliverableService) ListDeliverables(active *bool, category string, page, pageSize int) (*DeliverableListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	deliverables, total, err := s.repo.List(repository.DeliverableFilter{Active: active, Category: category}, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliverables: %w", err)
	}

	responses := make([]DeliverableResponse, len(deliverables))
	for i := range deliverables {
		responses[i] = *toDeliverableResponse(&deliverables[i])
	}
	return &DeliverableListResponse{
		Deliverables: responses,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}

// ListCategories returns the categories of active deliverables with their counts
func (s *DeliverableService) ListCategories() ([]repository.CategoryCount, error) {
	categories, err := s.repo.ListCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// UpdateDeliverable updates catalog fields. Existing line items keep their snapshot;
// package totals follow the new base points on the next read.
func (s *DeliverableService) UpdateDeliverable(id uuid.UUID, req *UpdateDeliverableRequest) (*DeliverableResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.BasePoints != nil && !validBasePoints(*req.BasePoints) {
		return nil, apperrors.NewValidationError("base_points", fmt.Sprintf("must be a number between 0 and %g", estimate.MaxPoints))
	}

	deliverable, err := s.repo.GetByID(id)
	if err != nil {
		return nil, mapDeliverableError(err, "failed to get deliverable")
	}

	if req.Name != nil {
		deliverable.Name = *req.Name
	}
	if req.Category != nil {
		deliverable.Category = *req.Category
	}
	if req.Description != nil {
		deliverable.Description = *req.Description
	}
	if req.Scope != nil {
		deliverable.Scope = *req.Scope
	}
	if req.ClearBasePoints {
		deliverable.BasePoints = nil
	} else if req.BasePoints != nil {
		deliverable.BasePoints = req.BasePoints
	}
	if req.Active != nil {
		deliverable.Active = *req.Active
	}
	if req.SortOrder != nil {
		deliverable.SortOrder = *req.SortOrder
	}
	deliverable.UpdatedBy = req.UpdatedBy

	if err := s.repo.Update(deliverable); err != nil {
		return nil, fmt.Errorf("failed to update deliverable: %w", err)
	}
	return toDeliverableResponse(deliverable), nil
}

// DeleteDeliverable removes an unreferenced deliverable. Referenced deliverables must be
// deactivated instead.
func (s *DeliverableService) DeleteDeliverable(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return mapDeliverableError(err, "failed to get deliverable")
	}

	refs, err := s.repo.CountReferences(id)
	if err != nil {
		return fmt.Errorf("failed to count deliverable references: %w", err)
	}
	if refs > 0 {
		logger.New().WithFields(map[string]interface{}{
			"deliverable_id": id,
			"references":     refs,
		}).Warn("refused to delete referenced deliverable")
		return apperrors.ErrDeliverableReferenced
	}

	// a line item attached after the count is caught by the foreign key
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperrors.ErrDeliverableReferenced
		}
		return fmt.Errorf("failed to delete deliverable: %w", err)
	}
	return nil
}

func (s *DeliverableService) validateCreate(req *CreateDeliverableRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if !slugPattern.MatchString(req.Slug) {
		return apperrors.NewValidationError("slug", "must be lowercase letters, digits and single dashes")
	}
	if req.BasePoints != nil && !validBasePoints(*req.BasePoints) {
		return apperrors.NewValidationError("base_points", fmt.Sprintf("must be a number between 0 and %g", estimate.MaxPoints))
	}
	return nil
}

func validBasePoints(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p >= 0 && p <= estimate.MaxPoints
}

func newDeliverable(req *CreateDeliverableRequest) *models.Deliverable {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	d := &models.Deliverable{
		Slug:        req.Slug,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Scope:       req.Scope,
		BasePoints:  req.BasePoints,
		Active:      active,
		SortOrder:   req.SortOrder,
	}
	d.CreatedBy = req.CreatedBy
	d.UpdatedBy = req.CreatedBy
	return d
}

func mapDeliverableError(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrDeliverableNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func toDeliverableResponse(d *models.Deliverable) *DeliverableResponse {
	return &DeliverableResponse{
		ID:          d.ID,
		Slug:        d.Slug,
		Name:        d.Name,
		Category:    d.Category,
		Description: d.Description,
		Scope:       d.Scope,
		BasePoints:  d.BasePoints,
		Active:      d.Active,
		SortOrder:   d.SortOrder,
		CreatedAt:   d.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   d.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
