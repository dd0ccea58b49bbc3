package service_test

import (
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
	"gorm.io/gorm"
)

type PackageServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockPackageRepo *mocks.MockPackageRepositoryInterface
	mockCatalogRepo *mocks.MockDeliverableRepositoryInterface
	packageService  *service.PackageService

	catalog  map[uuid.UUID]models.Deliverable
	packages map[string]*models.PackageTemplate
	items    map[uuid.UUID][]models.LineItem
}

func (suite *PackageServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPackageRepo = mocks.NewMockPackageRepositoryInterface(suite.ctrl)
	suite.mockCatalogRepo = mocks.NewMockDeliverableRepositoryInterface(suite.ctrl)
	suite.packageService = service.NewPackageService(
		suite.mockPackageRepo,
		suite.mockCatalogRepo,
		estimate.NewAggregator(estimate.DefaultRates),
		validator.New(),
	)

	suite.catalog = map[uuid.UUID]models.Deliverable{}
	suite.packages = map[string]*models.PackageTemplate{}
	suite.items = map[uuid.UUID][]models.LineItem{}

	// the catalog mock reads suite.catalog at call time so tests can edit base points
	suite.mockCatalogRepo.EXPECT().GetByIDs(gomock.Any()).DoAndReturn(func(ids []uuid.UUID) ([]models.Deliverable, error) {
		var out []models.Deliverable
		for _, id := range ids {
			if d, ok := suite.catalog[id]; ok {
				out = append(out, d)
			}
		}
		return out, nil
	}).AnyTimes()
}

func (suite *PackageServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PackageServiceTestSuite) addDeliverable(name string, points float64) models.Deliverable {
	d := deliverable(name, floatPtr(points))
	suite.catalog[d.ID] = d
	return d
}

// expectPackageStore backs the package repository with in-memory maps
func (suite *PackageServiceTestSuite) expectPackageStore() {
	suite.mockPackageRepo.EXPECT().UpsertBySlug(gomock.Any(), gomock.Any()).
		DoAndReturn(func(pkg *models.PackageTemplate, items []models.LineItem) (bool, error) {
			existing, ok := suite.packages[pkg.Slug]
			if ok {
				pkg.ID = existing.ID
			} else {
				pkg.ID = uuid.New()
			}
			stored := *pkg
			suite.packages[pkg.Slug] = &stored
			suite.items[pkg.ID] = append([]models.LineItem(nil), items...)
			return !ok, nil
		}).AnyTimes()
	suite.mockPackageRepo.EXPECT().GetByID(gomock.Any()).DoAndReturn(func(id uuid.UUID) (*models.PackageTemplate, error) {
		for _, p := range suite.packages {
			if p.ID == id {
				copied := *p
				return &copied, nil
			}
		}
		return nil, gorm.ErrRecordNotFound
	}).AnyTimes()
	suite.mockPackageRepo.EXPECT().GetLineItems(gomock.Any()).DoAndReturn(func(id uuid.UUID) ([]models.LineItem, error) {
		return suite.items[id], nil
	}).AnyTimes()
}

func (suite *PackageServiceTestSuite) TestGetPackageTotals_FollowsLiveCatalog() {
	d := suite.addDeliverable("discovery", 10)
	suite.expectPackageStore()

	pkg, created, err := suite.packageService.UpsertBySlug(&service.UpsertPackageRequest{
		Name:  "Branding Foundations",
		Slug:  "branding-foundations",
		Items: []service.LineItemInput{{DeliverableID: d.ID}},
	})
	suite.Require().NoError(err)
	suite.True(created)
	suite.Equal(10.0, pkg.Totals.TotalPoints)

	updated := suite.catalog[d.ID]
	updated.BasePoints = floatPtr(20)
	suite.catalog[d.ID] = updated

	totals, err := suite.packageService.GetPackageTotals(pkg.ID)
	suite.NoError(err)
	suite.Equal(20.0, totals.TotalPoints)
	suite.Equal(estimate.PriceFromPoints(20), totals.TotalPrice)
}

func (suite *PackageServiceTestSuite) TestUpsertBySlug_Idempotent() {
	a := suite.addDeliverable("logo", 5)
	b := suite.addDeliverable("type-system", 3)
	suite.expectPackageStore()

	order := 7
	req := &service.UpsertPackageRequest{
		Name:     "Identity Sprint",
		Slug:     "identity-sprint",
		Category: "branding",
		Featured: true,
		Items: []service.LineItemInput{
			{DeliverableID: a.ID, Quantity: 2, SortOrder: &order},
			{DeliverableID: b.ID, ComplexityMultiplier: floatPtr(1.5)},
		},
	}

	first, created, err := suite.packageService.UpsertBySlug(req)
	suite.Require().NoError(err)
	suite.True(created)
	firstItems := suite.items[first.ID]

	second, created, err := suite.packageService.UpsertBySlug(req)
	suite.Require().NoError(err)
	suite.False(created)

	suite.Len(suite.packages, 1)
	suite.Equal(first.ID, second.ID)
	suite.Equal(firstItems, suite.items[second.ID])
	suite.Equal(first.Totals, second.Totals)
	suite.Equal(7, second.LineItems[0].SortOrder)
	suite.Equal(1, second.LineItems[1].SortOrder)
}

func (suite *PackageServiceTestSuite) TestUpsertBySlug_LegacyPriceColumnsStayNil() {
	d := suite.addDeliverable("site", 8)
	suite.mockPackageRepo.EXPECT().UpsertBySlug(gomock.Any(), gomock.Any()).
		DoAndReturn(func(pkg *models.PackageTemplate, _ []models.LineItem) (bool, error) {
			suite.Nil(pkg.FlatFee)
			suite.Nil(pkg.FlatHours)
			suite.True(pkg.Active)
			pkg.ID = uuid.New()
			return true, nil
		})
	suite.mockPackageRepo.EXPECT().GetByID(gomock.Any()).Return(&models.PackageTemplate{Slug: "site"}, nil)
	suite.mockPackageRepo.EXPECT().GetLineItems(gomock.Any()).Return(nil, nil)

	_, _, err := suite.packageService.UpsertBySlug(&service.UpsertPackageRequest{
		Name:  "Site",
		Slug:  "site",
		Items: []service.LineItemInput{{DeliverableID: d.ID}},
	})
	suite.NoError(err)
}

func (suite *PackageServiceTestSuite) TestSetPackageLineItems_RejectsCustomPoints() {
	d := suite.addDeliverable("logo", 5)

	_, err := suite.packageService.SetPackageLineItems(uuid.New(), &service.SetPackageLineItemsRequest{
		Items: []service.LineItemInput{{DeliverableID: d.ID, CustomEstimatePoints: floatPtr(3)}},
	})

	suite.True(apperrors.IsValidation(err))
}

func (suite *PackageServiceTestSuite) TestSetPackageLineItems_UnresolvedIsAlwaysStrict() {
	_, err := suite.packageService.SetPackageLineItems(uuid.New(), &service.SetPackageLineItemsRequest{
		Items: []service.LineItemInput{{DeliverableID: uuid.New()}},
	})

	suite.True(apperrors.IsValidation(err))
}

func (suite *PackageServiceTestSuite) TestSetPackageLineItems_PackageNotFound() {
	d := suite.addDeliverable("logo", 5)
	id := uuid.New()
	suite.mockPackageRepo.EXPECT().ReplaceLineItems(id, gomock.Any()).Return(gorm.ErrRecordNotFound)

	_, err := suite.packageService.SetPackageLineItems(id, &service.SetPackageLineItemsRequest{
		Items: []service.LineItemInput{{DeliverableID: d.ID}},
	})

	suite.ErrorIs(err, apperrors.ErrPackageNotFound)
}

func (suite *PackageServiceTestSuite) TestCreatePackage_SlugRules() {
	_, err := suite.packageService.CreatePackage(&service.UpsertPackageRequest{Name: "Bad", Slug: "Bad Slug"})
	suite.True(apperrors.IsValidation(err))

	suite.mockPackageRepo.EXPECT().GetBySlug("taken").Return(&models.PackageTemplate{Slug: "taken"}, nil)
	_, err = suite.packageService.CreatePackage(&service.UpsertPackageRequest{Name: "Taken", Slug: "taken"})
	suite.ErrorIs(err, apperrors.ErrPackageExists)
}

func (suite *PackageServiceTestSuite) TestListPackages_ComputesTotalsPerPackage() {
	a := suite.addDeliverable("a", 2)
	b := suite.addDeliverable("b", 5)
	p1 := models.PackageTemplate{Slug: "one"}
	p1.ID = uuid.New()
	p2 := models.PackageTemplate{Slug: "two"}
	p2.ID = uuid.New()

	suite.mockPackageRepo.EXPECT().List(gomock.Any()).Return([]models.PackageTemplate{p1, p2}, nil)
	suite.mockPackageRepo.EXPECT().GetLineItemsByPackageIDs([]uuid.UUID{p1.ID, p2.ID}).Return([]models.LineItem{
		{ContainerID: p1.ID, DeliverableID: a.ID, Quantity: 1, ComplexityMultiplier: 1},
		{ContainerID: p2.ID, DeliverableID: a.ID, Quantity: 1, ComplexityMultiplier: 1},
		{ContainerID: p2.ID, DeliverableID: b.ID, Quantity: 2, ComplexityMultiplier: 1},
	}, nil)

	resp, err := suite.packageService.ListPackages(nil, nil, "")

	suite.NoError(err)
	suite.Equal(2, resp.Total)
	suite.Equal(2.0, resp.Packages[0].Totals.TotalPoints)
	suite.Equal(12.0, resp.Packages[1].Totals.TotalPoints)
	suite.Equal(2, resp.Packages[1].Totals.DeliverableCount)
}

func TestPackageServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PackageServiceTestSuite))
}
