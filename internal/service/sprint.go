package service

import (
	"errors"
	"fmt"
	"time"

	"studio-admin-backend/internal/database/models"
	apperrors "studio-admin-backend/internal/errors"
	"studio-admin-backend/internal/estimate"
	"studio-admin-backend/internal/logger"
	"studio-admin-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SprintService composes sprint drafts: it owns the line item set of each draft and keeps
// the cached totals consistent with it.
type SprintService struct {
	repo            repository.SprintRepositoryInterface
	deliverableRepo repository.DeliverableRepositoryInterface
	projectRepo     repository.ProjectRepositoryInterface
	aggregator      *estimate.Aggregator
	validator       *validator.Validate
}

// NewSprintService creates a new sprint service
func NewSprintService(
	repo repository.SprintRepositoryInterface,
	deliverableRepo repository.DeliverableRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	aggregator *estimate.Aggregator,
	validator *validator.Validate,
) *SprintService {
	return &SprintService{
		repo:            repo,
		deliverableRepo: deliverableRepo,
		projectRepo:     projectRepo,
		aggregator:      aggregator,
		validator:       validator,
	}
}

// CreateSprintRequest represents the request to create a sprint draft
type CreateSprintRequest struct {
	Title     string                 `json:"title" validate:"required,min=1,max=250"`
	ProjectID *uuid.UUID             `json:"project_id,omitempty"`
	StartDate *time.Time             `json:"start_date,omitempty"`
	Weeks     *int                   `json:"weeks,omitempty" validate:"omitempty,min=1,max=52"`
	DueDate   *time.Time             `json:"due_date,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty" swaggertype:"object"`
	CreatedBy string                 `json:"-"`
}

// UpdateSprintRequest represents a partial update of a sprint draft's title and schedule
type UpdateSprintRequest struct {
	Title     *string    `json:"title,omitempty" validate:"omitempty,min=1,max=250"`
	ProjectID *uuid.UUID `json:"project_id,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	Weeks     *int       `json:"weeks,omitempty" validate:"omitempty,min=1,max=52"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	UpdatedBy string     `json:"-"`
}

// SetLineItemsRequest carries the complete desired line item set of a sprint draft
type SetLineItemsRequest struct {
	Items     []LineItemInput `json:"items" validate:"dive"`
	UpdatedBy string          `json:"-"`
}

// UpdateSprintStatusRequest represents a status transition
type UpdateSprintStatusRequest struct {
	Status    models.SprintStatus `json:"status" validate:"required"`
	UpdatedBy string              `json:"-"`
}

// UpdateContractRequest sets the contract fields of a sprint draft
type UpdateContractRequest struct {
	ContractURL    string `json:"contract_url" validate:"omitempty,url,max=500"`
	ContractStatus string `json:"contract_status"`
	UpdatedBy      string `json:"-"`
}

// SprintResponse represents the response for sprint draft operations
type SprintResponse struct {
	ID             uuid.UUID              `json:"id"`
	Title          string                 `json:"title"`
	ProjectID      *uuid.UUID             `json:"project_id,omitempty"`
	StartDate      *time.Time             `json:"start_date,omitempty"`
	Weeks          *int                   `json:"weeks,omitempty"`
	DueDate        *time.Time             `json:"due_date,omitempty"`
	Status         models.SprintStatus    `json:"status"`
	ContractURL    string                 `json:"contract_url"`
	ContractStatus models.ContractStatus  `json:"contract_status"`
	Totals         estimate.Totals        `json:"totals"`
	LineItems      []LineItemResponse     `json:"line_items,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty" swaggertype:"object"`
	CreatedAt      string                 `json:"created_at"`
	UpdatedAt      string                 `json:"updated_at"`
}

// SprintListResponse represents a paginated list of sprint drafts
type SprintListResponse struct {
	Sprints  []SprintResponse `json:"sprints"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// SetLineItemsResponse is the result of a replace: the sprint with its new set and totals,
// plus the warnings for items skipped in lenient mode
type SetLineItemsResponse struct {
	Sprint   *SprintResponse                `json:"sprint"`
	Warnings []apperrors.ConsistencyWarning `json:"warnings"`
}

// CreateSprint creates a sprint draft in draft status with zero totals
func (s *SprintService) CreateSprint(req *CreateSprintRequest) (*SprintResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.ensureProject(req.ProjectID); err != nil {
		return nil, err
	}

	sprint := &models.SprintDraft{
		Title:          req.Title,
		ProjectID:      req.ProjectID,
		StartDate:      req.StartDate,
		Weeks:          req.Weeks,
		DueDate:        deriveDueDate(req.StartDate, req.Weeks, req.DueDate),
		Status:         models.SprintStatusDraft,
		ContractStatus: models.ContractStatusNotLinked,
		Metadata:       req.Metadata,
	}
	sprint.CreatedBy = req.CreatedBy
	sprint.UpdatedBy = req.CreatedBy

	if err := s.repo.Create(sprint); err != nil {
		return nil, fmt.Errorf("failed to create sprint draft: %w", err)
	}

	logger.New().WithField("sprint_id", sprint.ID).Info("created sprint draft")
	return toSprintResponse(sprint), nil
}

// GetSprint retrieves a sprint draft with its line items
func (s *SprintService) GetSprint(id uuid.UUID) (*SprintResponse, error) {
	sprint, err := s.repo.GetWithLineItems(id)
	if err != nil {
		return nil, mapSprintError(err, "failed to get sprint draft")
	}
	return toSprintResponse(sprint), nil
}

// ListSprints retrieves sprint drafts with pagination
func (s *SprintService) ListSprints(status string, projectID *uuid.UUID, page, pageSize int) (*SprintListResponse, error) {
	if status != "" && !models.SprintStatus(status).IsValid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}
	page, pageSize = normalizePagination(page, pageSize)

	sprints, total, err := s.repo.List(repository.SprintFilter{Status: status, ProjectID: projectID}, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list sprint drafts: %w", err)
	}

	responses := make([]SprintResponse, len(sprints))
	for i := range sprints {
		responses[i] = *toSprintResponse(&sprints[i])
	}
	return &SprintListResponse{
		Sprints:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateSprint updates the title, project link and schedule of a sprint draft
func (s *SprintService) UpdateSprint(id uuid.UUID, req *UpdateSprintRequest) (*SprintResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	sprint, err := s.repo.GetByID(id)
	if err != nil {
		return nil, mapSprintError(err, "failed to get sprint draft")
	}
	if err := s.ensureProject(req.ProjectID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"updated_by": req.UpdatedBy}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.ProjectID != nil {
		updates["project_id"] = *req.ProjectID
	}
	startDate, weeks := sprint.StartDate, sprint.Weeks
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
		startDate = req.StartDate
	}
	if req.Weeks != nil {
		updates["weeks"] = *req.Weeks
		weeks = req.Weeks
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	} else if req.StartDate != nil || req.Weeks != nil {
		if due := deriveDueDate(startDate, weeks, nil); due != nil {
			updates["due_date"] = *due
		}
	}

	if err := s.repo.Update(id, updates); err != nil {
		return nil, mapSprintError(err, "failed to update sprint draft")
	}
	return s.GetSprint(id)
}

// DeleteSprint deletes a sprint draft and its line items
func (s *SprintService) DeleteSprint(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return mapSprintError(err, "failed to delete sprint draft")
	}
	logger.New().WithField("sprint_id", id).Info("deleted sprint draft")
	return nil
}

// SetLineItems replaces the whole line item set of a sprint draft and rewrites its cached
// totals in the same transaction. In strict mode an unresolved deliverable fails the call
// and nothing is written; in lenient mode the item is left out of the written set and
// reported as a warning. Totals always describe exactly the written set, so skipped items
// are not included in deliverable_count.
func (s *SprintService) SetLineItems(sprintID uuid.UUID, req *SetLineItemsRequest, mode ReferenceMode) (*SetLineItemsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	inputs, err := normalizeLineItems(req.Items, sprintLineItemRules)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(sprintID); err != nil {
		return nil, mapSprintError(err, "failed to get sprint draft")
	}

	catalog, err := loadCatalog(s.deliverableRepo, inputs)
	if err != nil {
		return nil, err
	}
	items, warnings, err := resolveLineItems(inputs, catalog, mode)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].CreatedBy = req.UpdatedBy
		items[i].UpdatedBy = req.UpdatedBy
	}

	totals := s.aggregator.Aggregate(models.EstimateItems(items), catalogLookup(catalog))

	sprint, err := s.repo.ReplaceLineItems(sprintID, items, totals)
	if err != nil {
		return nil, mapSprintError(err, "failed to replace line items")
	}

	log := logger.New().WithFields(map[string]interface{}{
		"sprint_id":    sprintID,
		"mode":         mode,
		"item_count":   totals.DeliverableCount,
		"total_points": totals.TotalPoints,
	})
	for _, w := range warnings {
		log.WithField("reference", w.Reference).Warn(w.Message)
	}
	log.Info("replaced sprint line items")

	if warnings == nil {
		warnings = []apperrors.ConsistencyWarning{}
	}
	return &SetLineItemsResponse{Sprint: toSprintResponse(sprint), Warnings: warnings}, nil
}

// GetTotals returns the cached totals of a sprint draft
func (s *SprintService) GetTotals(sprintID uuid.UUID) (*estimate.Totals, error) {
	sprint, err := s.repo.GetByID(sprintID)
	if err != nil {
		return nil, mapSprintError(err, "failed to get sprint draft")
	}
	totals := sprint.Totals()
	return &totals, nil
}

// RecalculateTotals recomputes the cached totals from the persisted line items against the
// current catalog. Dangling references count as zero points.
func (s *SprintService) RecalculateTotals(sprintID uuid.UUID) (*SprintResponse, error) {
	sprint, err := s.repo.RecalculateTotals(sprintID, func(items []models.LineItem) (estimate.Totals, error) {
		lookup, err := liveLookup(s.deliverableRepo, items)
		if err != nil {
			return estimate.Totals{}, err
		}
		return s.aggregator.Aggregate(models.EstimateItems(items), lookup), nil
	})
	if err != nil {
		return nil, mapSprintError(err, "failed to recalculate totals")
	}

	logger.New().WithFields(map[string]interface{}{
		"sprint_id":    sprintID,
		"total_points": sprint.TotalEstimatePoints,
	}).Info("recalculated sprint totals")
	return toSprintResponse(sprint), nil
}

// UpdateStatus moves a sprint draft along its lifecycle
func (s *SprintService) UpdateStatus(sprintID uuid.UUID, req *UpdateSprintStatusRequest) (*SprintResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", req.Status))
	}

	sprint, err := s.repo.GetByID(sprintID)
	if err != nil {
		return nil, mapSprintError(err, "failed to get sprint draft")
	}
	if sprint.Status == req.Status {
		return s.GetSprint(sprintID)
	}
	if !sprint.Status.CanTransitionTo(req.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidStatusTransition, sprint.Status, req.Status)
	}

	if err := s.repo.Update(sprintID, map[string]interface{}{"status": req.Status, "updated_by": req.UpdatedBy}); err != nil {
		return nil, mapSprintError(err, "failed to update sprint status")
	}
	logger.New().WithFields(map[string]interface{}{
		"sprint_id": sprintID,
		"from":      sprint.Status,
		"to":        req.Status,
	}).Info("sprint status changed")
	return s.GetSprint(sprintID)
}

// UpdateContract sets the contract url and status. Unknown statuses are stored as not_linked.
func (s *SprintService) UpdateContract(sprintID uuid.UUID, req *UpdateContractRequest) (*SprintResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updates := map[string]interface{}{
		"contract_url":    req.ContractURL,
		"contract_status": models.NormalizeContractStatus(req.ContractStatus),
		"updated_by":      req.UpdatedBy,
	}
	if err := s.repo.Update(sprintID, updates); err != nil {
		return nil, mapSprintError(err, "failed to update contract")
	}
	return s.GetSprint(sprintID)
}

func (s *SprintService) ensureProject(projectID *uuid.UUID) error {
	if projectID == nil {
		return nil
	}
	if _, err := s.projectRepo.GetByID(*projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to verify project: %w", err)
	}
	return nil
}

// deriveDueDate fills the due date from start date and weeks when it was not given
func deriveDueDate(start *time.Time, weeks *int, due *time.Time) *time.Time {
	if due != nil || start == nil || weeks == nil {
		return due
	}
	d := start.AddDate(0, 0, 7*(*weeks))
	return &d
}

func mapSprintError(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrSprintNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func toSprintResponse(sprint *models.SprintDraft) *SprintResponse {
	resp := &SprintResponse{
		ID:             sprint.ID,
		Title:          sprint.Title,
		ProjectID:      sprint.ProjectID,
		StartDate:      sprint.StartDate,
		Weeks:          sprint.Weeks,
		DueDate:        sprint.DueDate,
		Status:         sprint.Status,
		ContractURL:    sprint.ContractURL,
		ContractStatus: sprint.ContractStatus,
		Totals:         sprint.Totals(),
		Metadata:       sprint.Metadata,
		CreatedAt:      sprint.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      sprint.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if sprint.LineItems != nil {
		resp.LineItems = toLineItemResponses(sprint.LineItems)
	}
	return resp
}
