package handlers

import (
	"net/http"

	"studio-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PackageHandler handles HTTP requests for package templates
type PackageHandler struct {
	packageService service.PackageServiceInterface
}

// NewPackageHandler creates a new package handler
func NewPackageHandler(packageService service.PackageServiceInterface) *PackageHandler {
	return &PackageHandler{
		packageService: packageService,
	}
}

// CreatePackage handles POST /packages
// @Summary Create a package template
// @Description Create a package template together with its line items. Admin only.
// @Tags packages
// @Accept json
// @Produce json
// @Param package body service.UpsertPackageRequest true "Package definition"
// @Success 201 {object} service.PackageResponse "Successfully created package"
// @Failure 400 {object} ErrorResponse "Invalid package"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 409 {object} ErrorResponse "Package already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /packages [post]
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var req service.UpsertPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.UpdatedBy = currentUser(c)

	pkg, err := h.packageService.CreatePackage(&req)
	if err != nil {
		respondError(c, err, "Failed to create package")
		return
	}

	c.JSON(http.StatusCreated, pkg)
}

// UpsertPackage handles PUT /packages/by-slug/:slug
// @Summary Create or replace a package by slug
// @Description Idempotently write a package definition keyed by slug. Admin only.
// @Tags packages
// @Accept json
// @Produce json
// @Param slug path string true "Package slug"
// @Param package body service.UpsertPackageRequest true "Package definition"
// @Success 200 {object} service.PackageResponse "Package replaced"
// @Success 201 {object} service.PackageResponse "Package created"
// @Failure 400 {object} ErrorResponse "Invalid package"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /packages/by-slug/{slug} [put]
func (h *PackageHandler) UpsertPackage(c *gin.Context) {
	var req service.UpsertPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.Slug = c.Param("slug")
	req.UpdatedBy = currentUser(c)

	pkg, created, err := h.packageService.UpsertBySlug(&req)
	if err != nil {
		respondError(c, err, "Failed to upsert package")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, pkg)
}

// GetPackage handles GET /packages/:id
// @Summary Get package template by ID
// @Description Get a package template with its line items and totals computed from the current catalog
// @Tags packages
// @Produce json
// @Param id path string true "Package ID (UUID)"
// @Success 200 {object} service.PackageResponse "Successfully retrieved package"
// @Failure 400 {object} ErrorResponse "Invalid package ID"
// @Failure 404 {object} ErrorResponse "Package not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /packages/{id} [get]
func (h *PackageHandler) GetPackage(c *gin.Context) {
	id, ok := parseID(c, "id", "package")
	if !ok {
		return
	}

	pkg, err := h.packageService.GetPackage(id)
	if err != nil {
		respondError(c, err, "Failed to get package")
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// GetPackageBySlug handles GET /packages/by-slug/:slug
// @Summary Get package template by slug
// @Tags packages
// @Produce json
// @Param slug path string true "Package slug"
// @Success 200 {object} service.PackageResponse "Successfully retrieved package"
// @Failure 404 {object} ErrorResponse "Package not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /packages/by-slug/{slug} [get]
func (h *PackageHandler) GetPackageBySlug(c *gin.Context) {
	pkg, err := h.packageService.GetPackageBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err, "Failed to get package")
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// GetPackageTotals handles GET /packages/:id/totals
// @Summary Get package totals
// @Description Totals are recomputed from the current catalog on every call
// @Tags packages
// @Produce json
// @Param id path string true "Package ID (UUID)"
// @Success 200 {object} estimate.Totals "Live totals"
// @Failure 400 {object} ErrorResponse "Invalid package ID"
// @Failure 404 {object} ErrorResponse "Package not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /packages/{id}/totals [get]
func (h *PackageHandler) GetPackageTotals(c *gin.Context) {
	id, ok := parseID(c, "id", "package")
	if !ok {
		return
	}

	totals, err := h.packageService.GetPackageTotals(id)
	if err != nil {
		respondError(c, err, "Failed to get package totals")
		return
	}

	c.JSON(http.StatusOK, totals)
}

// ListPackages handles GET /packages
// @Summary List package templates
// @Description List package templates sorted by sort order, each with live totals
// @Tags packages
// @Produce json
// @Param active query bool false "Filter by active flag"
// @Param featured query bool false "Filter by featured flag"
// @Param category query string false "Filter by category"
// @Success 200 {object} service.PackageListResponse "Successfully retrieved packages"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /packages [get]
func (h *PackageHandler) ListPackages(c *gin.Context) {
	active, ok := parseBoolQuery(c, "active")
	if !ok {
		return
	}
	featured, ok := parseBoolQuery(c, "featured")
	if !ok {
		return
	}

	resp, err := h.packageService.ListPackages(active, featured, c.Query("category"))
	if err != nil {
		respondError(c, err, "Failed to list packages")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdatePackage handles PATCH /packages/:id
// @Summary Update package template
// @Description Update the display fields of a package template. Admin only.
// @Tags packages
// @Accept json
// @Produce json
// @Param id path string true "Package ID (UUID)"
// @Param package body service.UpdatePackageRequest true "Fields to update"
// @Success 200 {object} service.PackageResponse "Successfully updated package"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Package not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /packages/{id} [patch]
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	id, ok := parseID(c, "id", "package")
	if !ok {
		return
	}

	var req service.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.UpdatedBy = currentUser(c)

	pkg, err := h.packageService.UpdatePackage(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update package")
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// SetPackageLineItems handles PUT /packages/:id/line-items
// @Summary Replace package line items
// @Description Replace the complete line item set of a package template. Custom points are not allowed. Admin only.
// @Tags packages
// @Accept json
// @Produce json
// @Param id path string true "Package ID (UUID)"
// @Param items body service.SetPackageLineItemsRequest true "Desired line items"
// @Success 200 {object} service.PackageResponse "Line items replaced"
// @Failure 400 {object} ErrorResponse "Invalid line items"
// @Failure 404 {object} ErrorResponse "Package not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /packages/{id}/line-items [put]
func (h *PackageHandler) SetPackageLineItems(c *gin.Context) {
	id, ok := parseID(c, "id", "package")
	if !ok {
		return
	}

	var req service.SetPackageLineItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.UpdatedBy = currentUser(c)

	pkg, err := h.packageService.SetPackageLineItems(id, &req)
	if err != nil {
		respondError(c, err, "Failed to replace package line items")
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// DeletePackage handles DELETE /packages/:id
// @Summary Delete package template
// @Description Admin only.
// @Tags packages
// @Param id path string true "Package ID (UUID)"
// @Success 204 "Successfully deleted package"
// @Failure 400 {object} ErrorResponse "Invalid package ID"
// @Failure 404 {object} ErrorResponse "Package not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /packages/{id} [delete]
func (h *PackageHandler) DeletePackage(c *gin.Context) {
	id, ok := parseID(c, "id", "package")
	if !ok {
		return
	}

	if err := h.packageService.DeletePackage(id); err != nil {
		respondError(c, err, "Failed to delete package")
		return
	}

	c.Status(http.StatusNoContent)
}
