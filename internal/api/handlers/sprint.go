package handlers

import (
	"net/http"

	"studio-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SprintHandler handles HTTP requests for sprint drafts
type SprintHandler struct {
	sprintService service.SprintServiceInterface
}

// NewSprintHandler creates a new sprint handler
func NewSprintHandler(sprintService service.SprintServiceInterface) *SprintHandler {
	return &SprintHandler{
		sprintService: sprintService,
	}
}

// CreateSprint handles POST /sprints
// @Summary Create a sprint draft
// @Description Create an empty sprint draft in draft status. The due date is derived from start date and weeks when both are given.
// @Tags sprints
// @Accept json
// @Produce json
// @Param sprint body service.CreateSprintRequest true "Sprint data"
// @Success 201 {object} service.SprintResponse "Successfully created sprint draft"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sprints [post]
func (h *SprintHandler) CreateSprint(c *gin.Context) {
	var req service.CreateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.CreatedBy = currentUser(c)

	sprint, err := h.sprintService.CreateSprint(&req)
	if err != nil {
		respondError(c, err, "Failed to create sprint draft")
		return
	}

	c.JSON(http.StatusCreated, sprint)
}

// GetSprint handles GET /sprints/:id
// @Summary Get sprint draft by ID
// @Description Get a sprint draft with its line items and cached totals
// @Tags sprints
// @Produce json
// @Param id path string true "Sprint ID (UUID)"
// @Success 200 {object} service.SprintResponse "Successfully retrieved sprint draft"
// @Failure 400 {object} ErrorResponse "Invalid sprint ID"
// @Failure 404 {object} ErrorResponse "Sprint draft not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sprints/{id} [get]
func (h *SprintHandler) GetSprint(c *gin.Context) {
	id, ok := parseID(c, "id", "sprint")
	if !ok {
		return
	}

	sprint, err := h.sprintService.GetSprint(id)
	if err != nil {
		respondError(c, err, "Failed to get sprint draft")
		return
	}

	c.JSON(http.StatusOK, sprint)
}

// ListSprints handles GET /sprints
// @Summary List sprint drafts
// @Tags sprints
// @Produce json
// @Param status query string false "Filter by status"
// @Param project_id query string false "Filter by project ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.SprintListResponse "Successfully retrieved sprint drafts"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sprints [get]
func (h *SprintHandler) ListSprints(c *gin.Context) {
	var projectID *uuid.UUID
	if raw := c.Query("project_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid project ID"})
			return
		}
		projectID = &id
	}
	page, pageSize := parsePagination(c)

	resp, err := h.sprintService.ListSprints(c.Query("status"), projectID, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list sprint drafts")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateSprint handles PATCH /sprints/:id
// @Summary Update sprint draft
// @Description Update the title, project and schedule of a sprint draft
// @Tags sprints
// @Accept json
// @Produce json
// @Param id path string true "Sprint ID (UUID)"
// @Param sprint body service.UpdateSprintRequest true "Fields to update"
// @Success 200 {object} service.SprintResponse "Successfully updated sprint draft"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Sprint draft or project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sprints/{id} [patch]
func (h *SprintHandler) UpdateSprint(c *gin.Context) {
	id, ok := parseID(c, "id", "sprint")
	if !ok {
		return
	}

	var req service.UpdateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.UpdatedBy = currentUser(c)

	sprint, err := h.sprintService.UpdateSprint(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update sprint draft")
		return
	}

	c.JSON(http.StatusOK, sprint)
}

// DeleteSprint handles DELETE /sprints/:id
// @Summary Delete sprint draft
// @Description Delete a sprint draft together with its line items
// @Tags sprints
// @Param id path string true "Sprint ID (UUID)"
// @Success 204 "Successfully deleted sprint draft"
// @Failure 400 {object} ErrorResponse "Invalid sprint ID"
// @Failure 404 {object} ErrorResponse "Sprint draft not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sprints/{id} [delete]
func (h *SprintHandler) DeleteSprint(c *gin.Context) {
	id, ok := parseID(c, "id", "sprint")
	if !ok {
		return
	}

	if err := h.sprintService.DeleteSprint(id); err != nil {
		respondError(c, err, "Failed to delete sprint draft")
		return
	}

	c.Status(http.StatusNoContent)
}

// SetLineItems handles PUT /sprints/:id/line-items
// @Summary Replace sprint line items
// @Description Replace the complete line item set of a sprint draft and recompute its totals.
// @Description Every deliverable must exist; the request is rejected without writing otherwise.
// @Tags sprints
// @Accept json
// @Produce json
// @Param id path string true "Sprint ID (UUID)"
// @Param items body service.SetLineItemsRequest true "Desired line items"
// @Success 200 {object} service.SetLineItemsResponse "Line items replaced"
// @Failure 400 {object} ErrorResponse "Invalid line items"
// @Failure 404 {object} ErrorResponse "Sprint draft not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sprints/{id}/line-items [put]
func (h *SprintHandler) SetLineItems(c *gin.Context) {
	id, ok := parseID(c, "id", "sprint")
	if !ok {
		return
	}

	var req service.SetLineItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.UpdatedBy = currentUser(c)

	resp, err := h.sprintService.SetLineItems(id, &req, service.ReferenceModeStrict)
	if err != nil {
		respondError(c, err, "Failed to replace line items")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTotals handles GET /sprints/:id/totals
// @Summary Get sprint totals
// @Description Get the cached totals of a sprint draft
// @Tags sprints
// @Produce json
// @Param id path string true "Sprint ID (UUID)"
// @Success 200 {object} estimate.Totals "Cached totals"
// @Failure 400 {object} ErrorResponse "Invalid sprint ID"
// @Failure 404 {object} ErrorResponse "Sprint draft not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sprints/{id}/totals [get]
func (h *SprintHandler) GetTotals(c *gin.Context) {
	id, ok := parseID(c, "id", "sprint")
	if !ok {
		return
	}

	totals, err := h.sprintService.GetTotals(id)
	if err != nil {
		respondError(c, err, "Failed to get sprint totals")
		return
	}

	c.JSON(http.StatusOK, totals)
}

// RecalculateTotals handles POST /sprints/:id/recalculate
// @Summary Reprice a sprint draft
// @Description Re-aggregate the persisted line items against the current catalog and rewrite the cached totals
// @Tags sprints
// @Produce json
// @Param id path string true "Sprint ID (UUID)"
// @Success 200 {object} service.SprintResponse "Repriced sprint draft"
// @Failure 400 {object} ErrorResponse "Invalid sprint ID"
// @Failure 404 {object} ErrorResponse "Sprint draft not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sprints/{id}/recalculate [post]
func (h *SprintHandler) RecalculateTotals(c *gin.Context) {
	id, ok := parseID(c, "id", "sprint")
	if !ok {
		return
	}

	sprint, err := h.sprintService.RecalculateTotals(id)
	if err != nil {
		respondError(c, err, "Failed to recalculate totals")
		return
	}

	c.JSON(http.StatusOK, sprint)
}

// UpdateStatus handles PATCH /sprints/:id/status
// @Summary Change sprint status
// @Description Move a sprint draft through draft, negotiating, scheduled, in_progress, complete or cancelled
// @Tags sprints
// @Accept json
// @Produce json
// @Param id path string true "Sprint ID (UUID)"
// @Param status body service.UpdateSprintStatusRequest true "Target status"
// @Success 200 {object} service.SprintResponse "Status changed"
// @Failure 400 {object} ErrorResponse "Unknown status or transition not allowed"
// @Failure 404 {object} ErrorResponse "Sprint draft not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sprints/{id}/status [patch]
func (h *SprintHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id", "sprint")
	if !ok {
		return
	}

	var req service.UpdateSprintStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.UpdatedBy = currentUser(c)

	sprint, err := h.sprintService.UpdateStatus(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update sprint status")
		return
	}

	c.JSON(http.StatusOK, sprint)
}

// UpdateContract handles PUT /sprints/:id/contract
// @Summary Set contract link
// @Description Set the contract URL and status of a sprint draft. Unknown statuses fall back to not_linked. Admin only.
// @Tags sprints
// @Accept json
// @Produce json
// @Param id path string true "Sprint ID (UUID)"
// @Param contract body service.UpdateContractRequest true "Contract fields"
// @Success 200 {object} service.SprintResponse "Contract updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 404 {object} ErrorResponse "Sprint draft not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sprints/{id}/contract [put]
func (h *SprintHandler) UpdateContract(c *gin.Context) {
	id, ok := parseID(c, "id", "sprint")
	if !ok {
		return
	}

	var req service.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.UpdatedBy = currentUser(c)

	sprint, err := h.sprintService.UpdateContract(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update contract")
		return
	}

	c.JSON(http.StatusOK, sprint)
}
