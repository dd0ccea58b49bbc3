package seed_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"studio-admin-backend/internal/mocks"
	"studio-admin-backend/internal/seed"
	"studio-admin-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LoaderTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockDeliverables *mocks.MockDeliverableServiceInterface
	mockPackages     *mocks.MockPackageServiceInterface
	loader           *seed.Loader
	dir              string
}

func (suite *LoaderTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDeliverables = mocks.NewMockDeliverableServiceInterface(suite.ctrl)
	suite.mockPackages = mocks.NewMockPackageServiceInterface(suite.ctrl)
	suite.loader = seed.NewLoader(suite.mockDeliverables, suite.mockPackages, "seed")
	suite.dir = suite.T().TempDir()
}

func (suite *LoaderTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LoaderTestSuite) writeFile(name, content string) {
	suite.Require().NoError(os.WriteFile(filepath.Join(suite.dir, name), []byte(content), 0o600))
}

const deliverablesYAML = `
deliverables:
  - slug: logo-suite
    name: Logo Suite
    category: branding
    base_points: 5
  - slug: discovery-workshop
    name: Discovery Workshop
    category: strategy
`

const packagesYAML = `
packages:
  - slug: identity-sprint
    name: Identity Sprint
    featured: true
    items:
      - deliverable: logo-suite
        quantity: 2
      - deliverable: discovery-workshop
        complexity_multiplier: 1.5
`

func (suite *LoaderTestSuite) TestReadFiles() {
	suite.writeFile("deliverables.yaml", deliverablesYAML)
	suite.writeFile("packages.yaml", packagesYAML)
	suite.writeFile("notes.txt", "ignored")

	deliverables, err := seed.ReadDeliverables(suite.dir)
	suite.Require().NoError(err)
	suite.Require().Len(deliverables, 2)
	suite.Equal(5.0, *deliverables[0].BasePoints)
	suite.Nil(deliverables[1].BasePoints)

	packages, err := seed.ReadPackages(suite.dir)
	suite.Require().NoError(err)
	suite.Require().Len(packages, 1)
	suite.Len(packages[0].Items, 2)
	suite.Equal(1.5, *packages[0].Items[1].ComplexityMultiplier)
}

func (suite *LoaderTestSuite) TestReadFiles_MalformedYAML() {
	suite.writeFile("deliverables.yaml", "deliverables: [")

	_, err := seed.ReadDeliverables(suite.dir)

	suite.Error(err)
	suite.Contains(err.Error(), "deliverables.yaml")
}

func (suite *LoaderTestSuite) TestLoadDir_UpsertsDeliverablesThenPackages() {
	suite.writeFile("deliverables.yaml", deliverablesYAML)
	suite.writeFile("packages.yaml", packagesYAML)
	logo, workshop := uuid.New(), uuid.New()

	gomock.InOrder(
		suite.mockDeliverables.EXPECT().UpsertDeliverable(gomock.Any()).
			DoAndReturn(func(req *service.CreateDeliverableRequest) (*service.DeliverableResponse, bool, error) {
				suite.Equal("logo-suite", req.Slug)
				suite.Equal("seed", req.CreatedBy)
				return &service.DeliverableResponse{ID: logo}, true, nil
			}),
		suite.mockDeliverables.EXPECT().UpsertDeliverable(gomock.Any()).
			Return(&service.DeliverableResponse{ID: workshop}, false, nil),
		suite.mockDeliverables.EXPECT().ResolveSlugs([]string{"logo-suite", "discovery-workshop"}).
			Return(map[string]uuid.UUID{"logo-suite": logo, "discovery-workshop": workshop}, nil),
		suite.mockPackages.EXPECT().UpsertBySlug(gomock.Any()).
			DoAndReturn(func(req *service.UpsertPackageRequest) (*service.PackageResponse, bool, error) {
				suite.Equal("identity-sprint", req.Slug)
				suite.True(req.Featured)
				suite.Require().Len(req.Items, 2)
				suite.Equal(logo, req.Items[0].DeliverableID)
				suite.Equal(2, req.Items[0].Quantity)
				suite.Equal(workshop, req.Items[1].DeliverableID)
				suite.Equal(1, *req.Items[1].SortOrder)
				return &service.PackageResponse{}, true, nil
			}),
	)

	result, err := suite.loader.LoadDir(suite.dir)

	suite.NoError(err)
	suite.Equal(seed.Result{DeliverablesCreated: 1, DeliverablesTotal: 2, PackagesCreated: 1, PackagesTotal: 1}, *result)
}

func (suite *LoaderTestSuite) TestLoad_UnknownDeliverableSlugStops() {
	suite.mockDeliverables.EXPECT().ResolveSlugs([]string{"missing"}).Return(map[string]uuid.UUID{}, nil)

	_, err := suite.loader.Load(nil, []seed.PackageData{{
		Slug:  "broken",
		Name:  "Broken",
		Items: []seed.PackageItemData{{Deliverable: "missing"}},
	}})

	suite.Error(err)
	suite.Contains(err.Error(), `unknown deliverable "missing"`)
}

func (suite *LoaderTestSuite) TestLoad_DeliverableErrorStops() {
	suite.mockDeliverables.EXPECT().UpsertDeliverable(gomock.Any()).Return(nil, false, errors.New("db down"))

	_, err := suite.loader.Load([]seed.DeliverableData{{Slug: "x", Name: "X"}}, []seed.PackageData{{Slug: "p", Name: "P"}})

	suite.ErrorContains(err, "failed to load deliverable x")
}

func TestLoaderTestSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}
