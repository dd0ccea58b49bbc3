package service

import (
	"fmt"
	"math"

	"studio-admin-backend/internal/database/models"
	apperrors "studio-admin-backend/internal/errors"
	"studio-admin-backend/internal/estimate"
	"studio-admin-backend/internal/repository"

	"github.com/google/uuid"
)

// ReferenceMode decides what a replace does with deliverable ids that do not resolve
type ReferenceMode string

const (
	// ReferenceModeStrict fails the whole replace with a ValidationError
	ReferenceModeStrict ReferenceMode = "strict"
	// ReferenceModeLenient skips the item and reports a ConsistencyWarning
	ReferenceModeLenient ReferenceMode = "lenient"
)

// LineItemInput is one requested line item of a replace operation
type LineItemInput struct {
	DeliverableID        uuid.UUID `json:"deliverable_id"`
	Quantity             int       `json:"quantity,omitempty"`
	ComplexityMultiplier *float64  `json:"complexity_multiplier,omitempty"`
	CustomEstimatePoints *float64  `json:"custom_estimate_points,omitempty"`
	Note                 string    `json:"note,omitempty" validate:"max=2000"`
	CustomScope          string    `json:"custom_scope,omitempty" validate:"max=5000"`
	SortOrder            *int      `json:"sort_order,omitempty"`
}

// LineItemResponse represents one line item in API responses
type LineItemResponse struct {
	ID                   uuid.UUID                  `json:"id"`
	DeliverableID        uuid.UUID                  `json:"deliverable_id"`
	Quantity             int                        `json:"quantity"`
	ComplexityMultiplier float64                    `json:"complexity_multiplier"`
	CustomEstimatePoints *float64                   `json:"custom_estimate_points,omitempty"`
	Note                 string                     `json:"note,omitempty"`
	CustomScope          string                     `json:"custom_scope,omitempty"`
	SortOrder            int                        `json:"sort_order"`
	Snapshot             models.DeliverableSnapshot `json:"snapshot"`
}

// lineItemRules are the per-container differences of the shared replace validation
type lineItemRules struct {
	allowCustomPoints bool
	explicitSortOrder bool
}

var (
	sprintLineItemRules  = lineItemRules{allowCustomPoints: true}
	packageLineItemRules = lineItemRules{explicitSortOrder: true}
)

// normalizeLineItems validates the structural rules of a requested set and fills defaults.
// It does not touch the catalog.
func normalizeLineItems(inputs []LineItemInput, rules lineItemRules) ([]LineItemInput, error) {
	seen := make(map[uuid.UUID]int, len(inputs))
	out := make([]LineItemInput, len(inputs))

	for i, in := range inputs {
		field := fmt.Sprintf("items[%d]", i)

		if in.DeliverableID == uuid.Nil {
			return nil, apperrors.NewValidationError(field+".deliverable_id", "is required")
		}
		if first, dup := seen[in.DeliverableID]; dup {
			return nil, apperrors.NewValidationError(field+".deliverable_id",
				fmt.Sprintf("duplicates items[%d]; use quantity instead", first))
		}
		seen[in.DeliverableID] = i

		switch {
		case in.Quantity < 0:
			return nil, apperrors.NewValidationError(field+".quantity", "must be a positive integer")
		case in.Quantity > estimate.MaxQuantity:
			return nil, apperrors.NewValidationError(field+".quantity", fmt.Sprintf("must not exceed %d", estimate.MaxQuantity))
		case in.Quantity == 0:
			in.Quantity = 1
		}

		multiplier := 1.0
		if in.ComplexityMultiplier != nil {
			m := *in.ComplexityMultiplier
			if math.IsNaN(m) || math.IsInf(m, 0) {
				return nil, apperrors.NewValidationError(field+".complexity_multiplier", "must be a finite number")
			}
			if m > estimate.MaxComplexityMultiplier {
				return nil, apperrors.NewValidationError(field+".complexity_multiplier",
					fmt.Sprintf("must not exceed %g", estimate.MaxComplexityMultiplier))
			}
			if m > 0 {
				multiplier = m
			}
		}
		in.ComplexityMultiplier = &multiplier

		if in.CustomEstimatePoints != nil {
			if !rules.allowCustomPoints {
				return nil, apperrors.NewValidationError(field+".custom_estimate_points", "is not allowed on package line items")
			}
			p := *in.CustomEstimatePoints
			if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
				return nil, apperrors.NewValidationError(field+".custom_estimate_points", "must be a non-negative number")
			}
			if p > estimate.MaxPoints {
				return nil, apperrors.NewValidationError(field+".custom_estimate_points",
					fmt.Sprintf("must not exceed %g", estimate.MaxPoints))
			}
		}

		sortOrder := i
		if rules.explicitSortOrder && in.SortOrder != nil {
			sortOrder = *in.SortOrder
		}
		in.SortOrder = &sortOrder

		out[i] = in
	}
	return out, nil
}

// loadCatalog fetches the deliverables referenced by inputs, active or not
func loadCatalog(repo repository.DeliverableRepositoryInterface, inputs []LineItemInput) (map[uuid.UUID]models.Deliverable, error) {
	ids := make([]uuid.UUID, 0, len(inputs))
	for _, in := range inputs {
		ids = append(ids, in.DeliverableID)
	}
	if len(ids) == 0 {
		return map[uuid.UUID]models.Deliverable{}, nil
	}

	deliverables, err := repo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load deliverables: %w", err)
	}
	catalog := make(map[uuid.UUID]models.Deliverable, len(deliverables))
	for _, d := range deliverables {
		catalog[d.ID] = d
	}
	return catalog, nil
}

// resolveLineItems turns normalized inputs into line items carrying a snapshot of their
// deliverable. Unresolved references fail in strict mode and are skipped with a warning
// in lenient mode; a skipped item is never persisted.
func resolveLineItems(inputs []LineItemInput, catalog map[uuid.UUID]models.Deliverable, mode ReferenceMode) ([]models.LineItem, []apperrors.ConsistencyWarning, error) {
	items := make([]models.LineItem, 0, len(inputs))
	var warnings []apperrors.ConsistencyWarning

	for i, in := range inputs {
		d, ok := catalog[in.DeliverableID]
		if !ok {
			if mode == ReferenceModeLenient {
				warnings = append(warnings, apperrors.ConsistencyWarning{
					Reference: in.DeliverableID.String(),
					Message:   "deliverable not found; line item skipped",
				})
				continue
			}
			return nil, nil, apperrors.NewValidationError(fmt.Sprintf("items[%d].deliverable_id", i),
				fmt.Sprintf("deliverable %s not found", in.DeliverableID))
		}

		items = append(items, models.LineItem{
			DeliverableID:        in.DeliverableID,
			Quantity:             in.Quantity,
			ComplexityMultiplier: *in.ComplexityMultiplier,
			CustomEstimatePoints: in.CustomEstimatePoints,
			Note:                 in.Note,
			CustomScope:          in.CustomScope,
			SortOrder:            *in.SortOrder,
			Snapshot:             d.Snapshot(),
		})
	}
	return items, warnings, nil
}

// catalogLookup adapts loaded deliverables to the estimation lookup
func catalogLookup(deliverables map[uuid.UUID]models.Deliverable) estimate.Catalog {
	lookup := make(estimate.Catalog, len(deliverables))
	for id, d := range deliverables {
		lookup[id] = d.BasePoints
	}
	return lookup
}

// liveLookup loads base points for the deliverables referenced by persisted line items.
// Missing deliverables are left out so aggregation zeroes them.
func liveLookup(repo repository.DeliverableRepositoryInterface, items []models.LineItem) (estimate.Catalog, error) {
	seen := make(map[uuid.UUID]struct{}, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.DeliverableID]; ok {
			continue
		}
		seen[item.DeliverableID] = struct{}{}
		ids = append(ids, item.DeliverableID)
	}
	if len(ids) == 0 {
		return estimate.Catalog{}, nil
	}

	deliverables, err := repo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load deliverables: %w", err)
	}
	lookup := make(estimate.Catalog, len(deliverables))
	for _, d := range deliverables {
		lookup[d.ID] = d.BasePoints
	}
	return lookup, nil
}

func toLineItemResponses(items []models.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, len(items))
	for i, item := range items {
		out[i] = LineItemResponse{
			ID:                   item.ID,
			DeliverableID:        item.DeliverableID,
			Quantity:             item.Quantity,
			ComplexityMultiplier: item.ComplexityMultiplier,
			CustomEstimatePoints: item.CustomEstimatePoints,
			Note:                 item.Note,
			CustomScope:          item.CustomScope,
			SortOrder:            item.SortOrder,
			Snapshot:             item.Snapshot,
		}
	}
	return out
}
