package handlers

import (
	"net/http"

	"studio-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DeliverableHandler handles HTTP requests for the deliverable catalog
type DeliverableHandler struct {
	deliverableService service.DeliverableServiceInterface
}

// NewDeliverableHandler creates a new deliverable handler
func NewDeliverableHandler(deliverableService service.DeliverableServiceInterface) *DeliverableHandler {
	return &DeliverableHandler{
		deliverableService: deliverableService,
	}
}

// CreateDeliverable handles POST /deliverables
// @Summary Create a deliverable
// @Description Add a deliverable to the catalog. Admin only.
// @Tags deliverables
// @Accept json
// @Produce json
// @Param deliverable body service.CreateDeliverableRequest true "Deliverable data"
// @Success 201 {object} service.DeliverableResponse "Successfully created deliverable"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 409 {object} ErrorResponse "Deliverable already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /deliverables [post]
func (h *DeliverableHandler) CreateDeliverable(c *gin.Context) {
	var req service.CreateDeliverableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.CreatedBy = currentUser(c)

	deliverable, err := h.deliverableService.CreateDeliverable(&req)
	if err != nil {
		respondError(c, err, "Failed to create deliverable")
		return
	}

	c.JSON(http.StatusCreated, deliverable)
}

// GetDeliverable handles GET /deliverables/:id
// @Summary Get deliverable by ID
// @Tags deliverables
// @Produce json
// @Param id path string true "Deliverable ID (UUID)"
// @Success 200 {object} service.DeliverableResponse "Successfully retrieved deliverable"
// @Failure 400 {object} ErrorResponse "Invalid deliverable ID"
// @Failure 404 {object} ErrorResponse "Deliverable not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /deliverables/{id} [get]
func (h *DeliverableHandler) GetDeliverable(c *gin.Context) {
	id, ok := parseID(c, "id", "deliverable")
	if !ok {
		return
	}

	deliverable, err := h.deliverableService.GetDeliverable(id)
	if err != nil {
		respondError(c, err, "Failed to get deliverable")
		return
	}

	c.JSON(http.StatusOK, deliverable)
}

// ListDeliverables handles GET /deliverables
// @Summary List deliverables
// @Description List catalog deliverables filtered by active flag and category
// @Tags deliverables
// @Produce json
// @Param active query bool false "Filter by active flag"
// @Param category query string false "Filter by category"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.DeliverableListResponse "Successfully retrieved deliverables"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /deliverables [get]
func (h *DeliverableHandler) ListDeliverables(c *gin.Context) {
	active, ok := parseBoolQuery(c, "active")
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	resp, err := h.deliverableService.ListDeliverables(active, c.Query("category"), page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list deliverables")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListCategories handles GET /deliverables/categories
// @Summary List deliverable categories
// @Description Distinct categories among active deliverables with their counts
// @Tags deliverables
// @Produce json
// @Success 200 {array} repository.CategoryCount "Successfully retrieved categories"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /deliverables/categories [get]
func (h *DeliverableHandler) ListCategories(c *gin.Context) {
	categories, err := h.deliverableService.ListCategories()
	if err != nil {
		respondError(c, err, "Failed to list categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// UpdateDeliverable handles PATCH /deliverables/:id
// @Summary Update deliverable
// @Description Partially update a deliverable. Set active=false to deactivate. Admin only.
// @Tags deliverables
// @Accept json
// @Produce json
// @Param id path string true "Deliverable ID (UUID)"
// @Param deliverable body service.UpdateDeliverableRequest true "Fields to update"
// @Success 200 {object} service.DeliverableResponse "Successfully updated deliverable"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Deliverable not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /deliverables/{id} [patch]
func (h *DeliverableHandler) UpdateDeliverable(c *gin.Context) {
	id, ok := parseID(c, "id", "deliverable")
	if !ok {
		return
	}

	var req service.UpdateDeliverableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.UpdatedBy = currentUser(c)

	deliverable, err := h.deliverableService.UpdateDeliverable(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update deliverable")
		return
	}

	c.JSON(http.StatusOK, deliverable)
}

// DeleteDeliverable handles DELETE /deliverables/:id
// @Summary Delete deliverable
// @Description Delete an unreferenced deliverable. Referenced deliverables must be deactivated instead. Admin only.
// @Tags deliverables
// @Param id path string true "Deliverable ID (UUID)"
// @Success 204 "Successfully deleted deliverable"
// @Failure 400 {object} ErrorResponse "Invalid deliverable ID"
// @Failure 404 {object} ErrorResponse "Deliverable not found"
// @Failure 409 {object} ErrorResponse "Deliverable is referenced by line items"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /deliverables/{id} [delete]
func (h *DeliverableHandler) DeleteDeliverable(c *gin.Context) {
	id, ok := parseID(c, "id", "deliverable")
	if !ok {
		return
	}

	if err := h.deliverableService.DeleteDeliverable(id); err != nil {
		respondError(c, err, "Failed to delete deliverable")
		return
	}

	c.Status(http.StatusNoContent)
}
