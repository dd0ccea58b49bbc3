package handlers

import (
	"net/http"

	"studio-admin-backend/internal/service"
	"studio-admin-backend/internal/tracing"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// IngestionHandler accepts drafted proposals
type IngestionHandler struct {
	ingestionService service.IngestionServiceInterface
}

// NewIngestionHandler creates a new ingestion handler
func NewIngestionHandler(ingestionService service.IngestionServiceInterface) *IngestionHandler {
	return &IngestionHandler{
		ingestionService: ingestionService,
	}
}

// IngestProposal handles POST /ingest
// @Summary Ingest a drafted proposal
// @Description Resolve a proposal against the active catalog and write it as a sprint draft.
// @Description Unresolved deliverables are skipped and reported as warnings.
// @Tags ingestion
// @Accept json
// @Produce json
// @Param proposal body service.DraftProposal true "Drafted proposal"
// @Success 201 {object} service.IngestionResult "Proposal accepted"
// @Failure 400 {object} ErrorResponse "Invalid proposal"
// @Failure 404 {object} ErrorResponse "Target sprint or project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /ingest [post]
func (h *IngestionHandler) IngestProposal(c *gin.Context) {
	_, span := tracing.Tracer("ingestion").Start(c.Request.Context(), "ingest proposal")
	defer span.End()

	var req service.DraftProposal
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetStatus(codes.Error, "invalid payload")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.SubmittedBy = currentUser(c)
	span.SetAttributes(
		attribute.String("proposal.source", req.Source),
		attribute.Int("proposal.deliverables", len(req.Deliverables)),
	)

	result, err := h.ingestionService.Ingest(&req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "ingest failed")
		respondError(c, err, "Failed to ingest proposal")
		return
	}
	span.SetAttributes(
		attribute.String("sprint.id", result.SprintID.String()),
		attribute.Int("ingest.warnings", len(result.Warnings)),
	)

	c.JSON(http.StatusCreated, result)
}
