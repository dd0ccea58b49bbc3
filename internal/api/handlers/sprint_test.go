package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"studio-admin-backend/internal/api/handlers"
	"studio-admin-backend/internal/database/models"
	apperrors "studio-admin-backend/internal/errors"
	"studio-admin-backend/internal/estimate"
	"studio-admin-backend/internal/mocks"
	"studio-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SprintHandlerTestSuite defines the test suite for SprintHandler
type SprintHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockSprintSv *mocks.MockSprintServiceInterface
	handler      *handlers.SprintHandler
	router       *gin.Engine
}

func (suite *SprintHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSprintSv = mocks.NewMockSprintServiceInterface(suite.ctrl)
	suite.handler = handlers.NewSprintHandler(suite.mockSprintSv)

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set("username", "jdoe")
		c.Next()
	})
	suite.router.POST("/sprints", suite.handler.CreateSprint)
	suite.router.GET("/sprints", suite.handler.ListSprints)
	suite.router.GET("/sprints/:id", suite.handler.GetSprint)
	suite.router.DELETE("/sprints/:id", suite.handler.DeleteSprint)
	suite.router.PUT("/sprints/:id/line-items", suite.handler.SetLineItems)
	suite.router.GET("/sprints/:id/totals", suite.handler.GetTotals)
	suite.router.POST("/sprints/:id/recalculate", suite.handler.RecalculateTotals)
	suite.router.PATCH("/sprints/:id/status", suite.handler.UpdateStatus)
	suite.router.PUT("/sprints/:id/contract", suite.handler.UpdateContract)
}

func (suite *SprintHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SprintHandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SprintHandlerTestSuite) TestCreateSprint_Success() {
	id := uuid.New()
	suite.mockSprintSv.EXPECT().CreateSprint(gomock.Any()).DoAndReturn(func(req *service.CreateSprintRequest) (*service.SprintResponse, error) {
		assert.Equal(suite.T(), "Q3 rebrand", req.Title)
		assert.Equal(suite.T(), "jdoe", req.CreatedBy)
		return &service.SprintResponse{ID: id, Title: req.Title, Status: models.SprintStatusDraft}, nil
	})

	w := suite.do(http.MethodPost, "/sprints", `{"title":"Q3 rebrand","weeks":2}`)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	var got service.SprintResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), id, got.ID)
	assert.Equal(suite.T(), models.SprintStatusDraft, got.Status)
}

func (suite *SprintHandlerTestSuite) TestCreateSprint_InvalidBody() {
	w := suite.do(http.MethodPost, "/sprints", `{"title":`)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *SprintHandlerTestSuite) TestCreateSprint_ProjectNotFound() {
	suite.mockSprintSv.EXPECT().CreateSprint(gomock.Any()).Return(nil, apperrors.ErrProjectNotFound)

	w := suite.do(http.MethodPost, "/sprints", `{"title":"x","project_id":"`+uuid.NewString()+`"}`)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "project not found")
}

func (suite *SprintHandlerTestSuite) TestGetSprint_InvalidID() {
	w := suite.do(http.MethodGet, "/sprints/not-a-uuid", "")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid sprint ID")
}

func (suite *SprintHandlerTestSuite) TestGetSprint_NotFound() {
	id := uuid.New()
	suite.mockSprintSv.EXPECT().GetSprint(id).Return(nil, apperrors.ErrSprintNotFound)

	w := suite.do(http.MethodGet, "/sprints/"+id.String(), "")

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *SprintHandlerTestSuite) TestListSprints_Filters() {
	projectID := uuid.New()
	suite.mockSprintSv.EXPECT().ListSprints("draft", &projectID, 2, 10).
		Return(&service.SprintListResponse{Sprints: []service.SprintResponse{}, Page: 2, PageSize: 10}, nil)

	w := suite.do(http.MethodGet, fmt.Sprintf("/sprints?status=draft&project_id=%s&page=2&page_size=10", projectID), "")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *SprintHandlerTestSuite) TestListSprints_InvalidProjectID() {
	w := suite.do(http.MethodGet, "/sprints?project_id=nope", "")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *SprintHandlerTestSuite) TestSetLineItems_StrictAndReturnsTotals() {
	id := uuid.New()
	deliverableID := uuid.New()
	totals := estimate.Totals{DeliverableCount: 1, TotalPoints: 10, TotalHours: 40, TotalPrice: 6000}

	suite.mockSprintSv.EXPECT().SetLineItems(id, gomock.Any(), service.ReferenceModeStrict).
		DoAndReturn(func(_ uuid.UUID, req *service.SetLineItemsRequest, _ service.ReferenceMode) (*service.SetLineItemsResponse, error) {
			assert.Len(suite.T(), req.Items, 1)
			assert.Equal(suite.T(), deliverableID, req.Items[0].DeliverableID)
			assert.Equal(suite.T(), 2, req.Items[0].Quantity)
			assert.Equal(suite.T(), "jdoe", req.UpdatedBy)
			return &service.SetLineItemsResponse{
				Sprint:   &service.SprintResponse{ID: id, Totals: totals},
				Warnings: []apperrors.ConsistencyWarning{},
			}, nil
		})

	body := fmt.Sprintf(`{"items":[{"deliverable_id":"%s","quantity":2}]}`, deliverableID)
	w := suite.do(http.MethodPut, "/sprints/"+id.String()+"/line-items", body)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got service.SetLineItemsResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), totals, got.Sprint.Totals)
	assert.NotNil(suite.T(), got.Warnings)
}

func (suite *SprintHandlerTestSuite) TestSetLineItems_ValidationError() {
	id := uuid.New()
	suite.mockSprintSv.EXPECT().SetLineItems(id, gomock.Any(), service.ReferenceModeStrict).
		Return(nil, apperrors.NewValidationError("items[0].deliverable_id", "deliverable not found"))

	w := suite.do(http.MethodPut, "/sprints/"+id.String()+"/line-items", `{"items":[{"deliverable_id":"`+uuid.NewString()+`"}]}`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "items[0].deliverable_id")
}

func (suite *SprintHandlerTestSuite) TestGetTotals() {
	id := uuid.New()
	suite.mockSprintSv.EXPECT().GetTotals(id).Return(&estimate.Totals{DeliverableCount: 2, TotalPoints: 22}, nil)

	w := suite.do(http.MethodGet, "/sprints/"+id.String()+"/totals", "")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"total_points":22`)
}

func (suite *SprintHandlerTestSuite) TestRecalculateTotals_ServiceError() {
	id := uuid.New()
	suite.mockSprintSv.EXPECT().RecalculateTotals(id).Return(nil, errors.New("db failure"))

	w := suite.do(http.MethodPost, "/sprints/"+id.String()+"/recalculate", "")

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Failed to recalculate totals")
}

func (suite *SprintHandlerTestSuite) TestUpdateStatus_InvalidTransition() {
	id := uuid.New()
	suite.mockSprintSv.EXPECT().UpdateStatus(id, gomock.Any()).
		Return(nil, fmt.Errorf("%w: complete -> draft", apperrors.ErrInvalidStatusTransition))

	w := suite.do(http.MethodPatch, "/sprints/"+id.String()+"/status", `{"status":"draft"}`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *SprintHandlerTestSuite) TestUpdateContract_Success() {
	id := uuid.New()
	suite.mockSprintSv.EXPECT().UpdateContract(id, gomock.Any()).DoAndReturn(func(_ uuid.UUID, req *service.UpdateContractRequest) (*service.SprintResponse, error) {
		assert.Equal(suite.T(), "https://docs.example.com/c/1", req.ContractURL)
		return &service.SprintResponse{ID: id, ContractURL: req.ContractURL, ContractStatus: models.ContractStatusDrafted}, nil
	})

	w := suite.do(http.MethodPut, "/sprints/"+id.String()+"/contract", `{"contract_url":"https://docs.example.com/c/1","contract_status":"drafted"}`)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"contract_status":"drafted"`)
}

func (suite *SprintHandlerTestSuite) TestDeleteSprint() {
	id := uuid.New()
	suite.mockSprintSv.EXPECT().DeleteSprint(id).Return(nil)

	w := suite.do(http.MethodDelete, "/sprints/"+id.String(), "")

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestSprintHandlerTestSuite runs the test suite
func TestSprintHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SprintHandlerTestSuite))
}
