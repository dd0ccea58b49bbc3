package service_test

import (
	"errors"
	"testing"

	"studio-admin-backend/internal/database/models"
	apperrors "studio-admin-backend/internal/errors"
	"studio-admin-backend/internal/mocks"
	"studio-admin-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ProjectServiceTestSuite defines the test suite for ProjectService
type ProjectServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockProjectRepositoryInterface
	projectService *service.ProjectService
}

// SetupTest sets up the test suite
func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.projectService = service.NewProjectService(suite.mockRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *ProjectServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProjectServiceTestSuite) TestCreate_DefaultsStatus() {
	suite.mockRepo.EXPECT().GetByName("acme-rebrand").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Project) error {
		p.ID = uuid.New()
		return nil
	})

	resp, err := suite.projectService.Create(&service.CreateProjectRequest{Name: "acme-rebrand", ClientName: "Acme"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ProjectStatusActive, resp.Status)
	assert.Equal(suite.T(), "Acme", resp.ClientName)
}

func (suite *ProjectServiceTestSuite) TestCreate_DuplicateName() {
	suite.mockRepo.EXPECT().GetByName("acme-rebrand").Return(&models.Project{Name: "acme-rebrand"}, nil)

	_, err := suite.projectService.Create(&service.CreateProjectRequest{Name: "acme-rebrand"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectExists)
}

func (suite *ProjectServiceTestSuite) TestCreate_ValidationFails() {
	_, err := suite.projectService.Create(&service.CreateProjectRequest{})

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *ProjectServiceTestSuite) TestGetByID() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)
	_, err := suite.projectService.GetByID(id)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)

	other := uuid.New()
	suite.mockRepo.EXPECT().GetByID(other).Return(nil, errors.New("timeout"))
	_, err = suite.projectService.GetByID(other)
	assert.Error(suite.T(), err)
	assert.False(suite.T(), apperrors.IsNotFound(err))
}

func (suite *ProjectServiceTestSuite) TestGetAll_Pagination() {
	suite.mockRepo.EXPECT().GetAll(100, 100).Return([]models.Project{{Name: "a"}}, int64(101), nil)

	resp, err := suite.projectService.GetAll(2, 500)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 100, resp.PageSize)
	assert.Equal(suite.T(), int64(101), resp.Total)
	assert.Len(suite.T(), resp.Projects, 1)
}

// TestProjectServiceTestSuite runs the test suite
func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
