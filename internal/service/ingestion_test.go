package service_test

import (
	"errors"
	"testing"

	"studio-admin-backend/internal/database/models"
	apperrors "studio-admin-backend/internal/errors"
	"studio-admin-backend/internal/estimate"
	"studio-admin-backend/internal/mocks"
	"studio-admin-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type IngestionServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockSprints      *mocks.MockSprintServiceInterface
	mockCatalogRepo  *mocks.MockDeliverableRepositoryInterface
	ingestionService *service.IngestionService
}

func (suite *IngestionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSprints = mocks.NewMockSprintServiceInterface(suite.ctrl)
	suite.mockCatalogRepo = mocks.NewMockDeliverableRepositoryInterface(suite.ctrl)
	suite.ingestionService = service.NewIngestionService(suite.mockSprints, suite.mockCatalogRepo, validator.New())
}

func (suite *IngestionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *IngestionServiceTestSuite) TestIngest_ResolvesNamesAndReplacesOnce() {
	logo := deliverable("Logo Suite", floatPtr(5))
	guide := deliverable("Brand Guidelines", floatPtr(8))
	sprintID := uuid.New()
	totals := estimate.Totals{DeliverableCount: 2, TotalPoints: 22, TotalHours: 88, TotalPrice: 13200}

	suite.mockCatalogRepo.EXPECT().GetActiveByNames([]string{"Logo Suite", "Unknown Thing"}).
		Return([]models.Deliverable{logo}, nil)
	suite.mockSprints.EXPECT().CreateSprint(gomock.Any()).DoAndReturn(func(req *service.CreateSprintRequest) (*service.SprintResponse, error) {
		suite.Equal("Q3 rebrand", req.Title)
		suite.Equal("ai_draft", req.Metadata["source"])
		return &service.SprintResponse{ID: sprintID, Status: models.SprintStatusDraft}, nil
	})
	suite.mockSprints.EXPECT().SetLineItems(sprintID, gomock.Any(), service.ReferenceModeLenient).
		DoAndReturn(func(_ uuid.UUID, req *service.SetLineItemsRequest, _ service.ReferenceMode) (*service.SetLineItemsResponse, error) {
			suite.Require().Len(req.Items, 2)
			suite.Equal(logo.ID, req.Items[0].DeliverableID)
			suite.Equal(2, req.Items[0].Quantity)
			suite.Equal(guide.ID, req.Items[1].DeliverableID)
			return &service.SetLineItemsResponse{
				Sprint:   &service.SprintResponse{ID: sprintID, Totals: totals},
				Warnings: []apperrors.ConsistencyWarning{},
			}, nil
		}).Times(1)

	result, err := suite.ingestionService.Ingest(&service.DraftProposal{
		Title:  "Q3 rebrand",
		Source: "ai_draft",
		Deliverables: []service.ProposedDeliverable{
			{DeliverableName: "Logo Suite", Quantity: 2},
			{DeliverableName: "Unknown Thing"},
			{DeliverableID: &guide.ID, ComplexityMultiplier: floatPtr(1.5)},
		},
	})

	suite.NoError(err)
	suite.True(result.Success)
	suite.Equal(sprintID, result.SprintID)
	suite.Equal(totals, result.Totals)
	suite.Require().Len(result.Warnings, 1)
	suite.Equal("Unknown Thing", result.Warnings[0].Reference)
}

func (suite *IngestionServiceTestSuite) TestIngest_DropsAmbiguousEmptyAndRepeatedEntries() {
	first := deliverable("Workshop", floatPtr(2))
	second := deliverable("Workshop", floatPtr(3))
	id := uuid.New()
	sprintID := uuid.New()

	suite.mockCatalogRepo.EXPECT().GetActiveByNames([]string{"Workshop"}).Return([]models.Deliverable{first, second}, nil)
	suite.mockSprints.EXPECT().CreateSprint(gomock.Any()).Return(&service.SprintResponse{ID: sprintID}, nil)
	suite.mockSprints.EXPECT().SetLineItems(sprintID, gomock.Any(), service.ReferenceModeLenient).
		DoAndReturn(func(_ uuid.UUID, req *service.SetLineItemsRequest, _ service.ReferenceMode) (*service.SetLineItemsResponse, error) {
			suite.Len(req.Items, 1)
			return &service.SetLineItemsResponse{
				Sprint: &service.SprintResponse{ID: sprintID},
				Warnings: []apperrors.ConsistencyWarning{
					{Reference: id.String(), Message: "deliverable not found; line item skipped"},
				},
			}, nil
		})

	result, err := suite.ingestionService.Ingest(&service.DraftProposal{
		Title: "Offsite",
		Deliverables: []service.ProposedDeliverable{
			{DeliverableName: "Workshop"},
			{},
			{DeliverableID: &id},
			{DeliverableID: &id, Quantity: 4},
		},
	})

	suite.NoError(err)
	// ambiguous name, empty entry, repeated id, then the composer's unresolved id
	suite.Len(result.Warnings, 4)
}

func (suite *IngestionServiceTestSuite) TestIngest_StructuralErrorCreatesNothing() {
	id := uuid.New()

	_, err := suite.ingestionService.Ingest(&service.DraftProposal{
		Title:        "Broken",
		Deliverables: []service.ProposedDeliverable{{DeliverableID: &id, Quantity: -2}},
	})

	suite.True(apperrors.IsValidation(err))
}

func (suite *IngestionServiceTestSuite) TestIngest_RemovesCreatedDraftWhenReplaceFails() {
	id := uuid.New()
	sprintID := uuid.New()
	suite.mockSprints.EXPECT().CreateSprint(gomock.Any()).Return(&service.SprintResponse{ID: sprintID}, nil)
	suite.mockSprints.EXPECT().SetLineItems(sprintID, gomock.Any(), service.ReferenceModeLenient).Return(nil, errors.New("db down"))
	suite.mockSprints.EXPECT().DeleteSprint(sprintID).Return(nil)

	_, err := suite.ingestionService.Ingest(&service.DraftProposal{
		Title:        "Retry me",
		Deliverables: []service.ProposedDeliverable{{DeliverableID: &id}},
	})

	suite.Error(err)
}

func (suite *IngestionServiceTestSuite) TestIngest_ExistingSprintMustStillBeOpen() {
	sprintID := uuid.New()
	suite.mockSprints.EXPECT().GetSprint(sprintID).Return(&service.SprintResponse{ID: sprintID, Status: models.SprintStatusScheduled}, nil)

	_, err := suite.ingestionService.Ingest(&service.DraftProposal{SprintID: &sprintID, Title: "Late change"})

	suite.True(apperrors.IsValidation(err))
}

func (suite *IngestionServiceTestSuite) TestIngest_MissingTitle() {
	_, err := suite.ingestionService.Ingest(&service.DraftProposal{})

	var verrs validator.ValidationErrors
	suite.ErrorAs(err, &verrs)
}

func TestIngestionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IngestionServiceTestSuite))
}
