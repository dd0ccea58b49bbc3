package service

import (
	"fmt"
	"strings"
	"time"

	"studio-admin-backend/internal/database/models"
	apperrors "studio-admin-backend/internal/errors"
	"studio-admin-backend/internal/estimate"
	"studio-admin-backend/internal/logger"
	"studio-admin-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// IngestionService translates externally drafted proposals into sprint drafts. It performs
// no estimation itself; the sprint service computes and stores totals.
type IngestionService struct {
	sprints         SprintServiceInterface
	deliverableRepo repository.DeliverableRepositoryInterface
	validator       *validator.Validate
}

// NewIngestionService creates a new ingestion service
func NewIngestionService(sprints SprintServiceInterface, deliverableRepo repository.DeliverableRepositoryInterface, validator *validator.Validate) *IngestionService {
	return &IngestionService{
		sprints:         sprints,
		deliverableRepo: deliverableRepo,
		validator:       validator,
	}
}

// ProposedDeliverable is one entry of a drafted proposal. Either DeliverableID or
// DeliverableName identifies the catalog entry; the id wins when both are set.
type ProposedDeliverable struct {
	DeliverableID        *uuid.UUID `json:"deliverable_id,omitempty"`
	DeliverableName      string     `json:"deliverable_name,omitempty"`
	Quantity             int        `json:"quantity,omitempty"`
	ComplexityMultiplier *float64   `json:"complexity_multiplier,omitempty"`
	Note                 string     `json:"note,omitempty" validate:"max=2000"`
	CustomScope          string     `json:"custom_scope,omitempty" validate:"max=5000"`
}

// DraftProposal is the ingestion payload. When SprintID is set the proposal replaces the
// line items of that sprint instead of creating a new draft.
type DraftProposal struct {
	SprintID     *uuid.UUID            `json:"sprint_id,omitempty"`
	Title        string                `json:"title" validate:"required,min=1,max=250"`
	ProjectID    *uuid.UUID            `json:"project_id,omitempty"`
	StartDate    *time.Time            `json:"start_date,omitempty"`
	Weeks        *int                  `json:"weeks,omitempty" validate:"omitempty,min=1,max=52"`
	DueDate      *time.Time            `json:"due_date,omitempty"`
	Source       string                `json:"source,omitempty" validate:"max=50"`
	Deliverables []ProposedDeliverable `json:"deliverables" validate:"dive"`
	SubmittedBy  string                `json:"-"`
}

// IngestionResult is returned for an accepted proposal
type IngestionResult struct {
	Success  bool                           `json:"success"`
	SprintID uuid.UUID                      `json:"sprint_id"`
	Totals   estimate.Totals                `json:"totals"`
	Warnings []apperrors.ConsistencyWarning `json:"warnings"`
}

const defaultProposalSource = "manual"

// Ingest resolves the proposal against the active catalog and applies it as one replace.
// Entries that cannot be resolved are dropped with a warning and never persisted.
func (s *IngestionService) Ingest(proposal *DraftProposal) (*IngestionResult, error) {
	if err := s.validator.Struct(proposal); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	inputs, warnings, err := s.resolve(proposal.Deliverables)
	if err != nil {
		return nil, err
	}
	// structural problems fail before a draft is created
	if _, err := normalizeLineItems(inputs, sprintLineItemRules); err != nil {
		return nil, err
	}

	source := proposal.Source
	if source == "" {
		source = defaultProposalSource
	}

	sprintID, created, err := s.targetSprint(proposal, source)
	if err != nil {
		return nil, err
	}

	replaced, err := s.sprints.SetLineItems(sprintID, &SetLineItemsRequest{
		Items:     inputs,
		UpdatedBy: proposal.SubmittedBy,
	}, ReferenceModeLenient)
	if err != nil {
		if created {
			if delErr := s.sprints.DeleteSprint(sprintID); delErr != nil {
				logger.New().WithField("sprint_id", sprintID).WithField("error", delErr.Error()).
					Error("failed to remove sprint draft after rejected proposal")
			}
		}
		return nil, err
	}

	warnings = append(warnings, replaced.Warnings...)
	logger.New().WithFields(map[string]interface{}{
		"sprint_id":     sprintID,
		"source":        source,
		"created":       created,
		"proposed":      len(proposal.Deliverables),
		"applied":       replaced.Sprint.Totals.DeliverableCount,
		"warning_count": len(warnings),
	}).Info("ingested draft proposal")

	return &IngestionResult{
		Success:  true,
		SprintID: sprintID,
		Totals:   replaced.Sprint.Totals,
		Warnings: warnings,
	}, nil
}

// resolve maps every entry to a line item input. Names match active deliverables exactly;
// unknown or ambiguous names and repeated deliverables are dropped with a warning.
func (s *IngestionService) resolve(entries []ProposedDeliverable) ([]LineItemInput, []apperrors.ConsistencyWarning, error) {
	warnings := []apperrors.ConsistencyWarning{}

	var names []string
	for _, e := range entries {
		if e.DeliverableID == nil && strings.TrimSpace(e.DeliverableName) != "" {
			names = append(names, e.DeliverableName)
		}
	}
	byName := map[string][]uuid.UUID{}
	if len(names) > 0 {
		active, err := s.deliverableRepo.GetActiveByNames(names)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve deliverable names: %w", err)
		}
		for _, d := range active {
			byName[d.Name] = append(byName[d.Name], d.ID)
		}
	}

	seen := map[uuid.UUID]bool{}
	inputs := make([]LineItemInput, 0, len(entries))
	for i, e := range entries {
		var id uuid.UUID
		switch {
		case e.DeliverableID != nil:
			id = *e.DeliverableID
		case strings.TrimSpace(e.DeliverableName) == "":
			warnings = append(warnings, apperrors.ConsistencyWarning{
				Reference: fmt.Sprintf("deliverables[%d]", i),
				Message:   "entry has neither deliverable_id nor deliverable_name; dropped",
			})
			continue
		default:
			matches := byName[e.DeliverableName]
			if len(matches) != 1 {
				msg := "no active deliverable with this name; dropped"
				if len(matches) > 1 {
					msg = "name matches several active deliverables; dropped"
				}
				warnings = append(warnings, apperrors.ConsistencyWarning{Reference: e.DeliverableName, Message: msg})
				continue
			}
			id = matches[0]
		}

		if seen[id] {
			warnings = append(warnings, apperrors.ConsistencyWarning{
				Reference: id.String(),
				Message:   "deliverable proposed more than once; later entry dropped",
			})
			continue
		}
		seen[id] = true

		inputs = append(inputs, LineItemInput{
			DeliverableID:        id,
			Quantity:             e.Quantity,
			ComplexityMultiplier: e.ComplexityMultiplier,
			Note:                 e.Note,
			CustomScope:          e.CustomScope,
		})
	}
	return inputs, warnings, nil
}

func (s *IngestionService) targetSprint(proposal *DraftProposal, source string) (uuid.UUID, bool, error) {
	if proposal.SprintID != nil {
		sprint, err := s.sprints.GetSprint(*proposal.SprintID)
		if err != nil {
			return uuid.Nil, false, err
		}
		if sprint.Status != models.SprintStatusDraft && sprint.Status != models.SprintStatusNegotiating {
			return uuid.Nil, false, apperrors.NewValidationError("sprint_id",
				fmt.Sprintf("sprint in status %s no longer accepts proposals", sprint.Status))
		}
		return sprint.ID, false, nil
	}

	sprint, err := s.sprints.CreateSprint(&CreateSprintRequest{
		Title:     proposal.Title,
		ProjectID: proposal.ProjectID,
		StartDate: proposal.StartDate,
		Weeks:     proposal.Weeks,
		DueDate:   proposal.DueDate,
		Metadata: map[string]interface{}{
			"source":      source,
			"ingested_at": time.Now().UTC().Format(time.RFC3339),
		},
		CreatedBy: proposal.SubmittedBy,
	})
	if err != nil {
		return uuid.Nil, false, err
	}
	return sprint.ID, true, nil
}
