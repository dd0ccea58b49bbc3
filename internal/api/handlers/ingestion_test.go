package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"studio-admin-backend/internal/api/handlers"
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

type IngestionHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockIngestionSv *mocks.MockIngestionServiceInterface
	router          *gin.Engine
}

func (suite *IngestionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockIngestionSv = mocks.NewMockIngestionServiceInterface(suite.ctrl)
	handler := handlers.NewIngestionHandler(suite.mockIngestionSv)

	suite.router = gin.New()
	suite.router.POST("/ingest", handler.IngestProposal)
}

func (suite *IngestionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *IngestionHandlerTestSuite) post(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/ingest", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IngestionHandlerTestSuite) TestIngestProposal_Success() {
	sprintID := uuid.New()
	suite.mockIngestionSv.EXPECT().Ingest(gomock.Any()).DoAndReturn(func(p *service.DraftProposal) (*service.IngestionResult, error) {
		assert.Equal(suite.T(), "Q3 rebrand", p.Title)
		assert.Len(suite.T(), p.Deliverables, 2)
		assert.Equal(suite.T(), "Logo Suite", p.Deliverables[0].DeliverableName)
		return &service.IngestionResult{
			Success:  true,
			SprintID: sprintID,
			Totals:   estimate.Totals{DeliverableCount: 1, TotalPoints: 10, TotalHours: 40, TotalPrice: 6000},
			Warnings: []apperrors.ConsistencyWarning{{Reference: "Mystery", Message: "no active deliverable with this name"}},
		}, nil
	})

	w := suite.post(`{"title":"Q3 rebrand","deliverables":[{"deliverable_name":"Logo Suite","quantity":2},{"deliverable_name":"Mystery"}]}`)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	var got service.IngestionResult
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(suite.T(), got.Success)
	assert.Equal(suite.T(), sprintID, got.SprintID)
	assert.Len(suite.T(), got.Warnings, 1)
}

func (suite *IngestionHandlerTestSuite) TestIngestProposal_MalformedJSON() {
	w := suite.post(`{"title": 5`)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *IngestionHandlerTestSuite) TestIngestProposal_ClosedSprint() {
	suite.mockIngestionSv.EXPECT().Ingest(gomock.Any()).
		Return(nil, apperrors.NewValidationError("sprint_id", "sprint draft is no longer open for changes"))

	w := suite.post(`{"title":"late","sprint_id":"` + uuid.NewString() + `"}`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestIngestionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(IngestionHandlerTestSuite))
}
