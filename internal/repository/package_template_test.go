//go:build integration
// +build integration

package repository

import (
	"sync"
	"testing"

	"studio-admin-backend/internal/database/models"
	"studio-admin-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PackageRepositoryTestSuite tests the PackageRepository
type PackageRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite   *testutils.BaseTestSuite
	repo            *PackageRepository
	deliverableRepo *DeliverableRepository
	factories       *testutils.FactorySet
}

func (suite *PackageRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewPackageRepository(suite.baseTestSuite.DB)
	suite.deliverableRepo = NewDeliverableRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *PackageRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *PackageRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *PackageRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *PackageRepositoryTestSuite) TestUpsertBySlug_TwiceYieldsSameRows() {
	a := suite.factories.Deliverable.Create()
	b := suite.factories.Deliverable.Create()
	suite.Require().NoError(suite.deliverableRepo.Create(a))
	suite.Require().NoError(suite.deliverableRepo.Create(b))

	write := func() (uuid.UUID, bool) {
		pkg := suite.factories.Package.WithSlug("identity-sprint")
		items := []models.LineItem{suite.factories.LineItem.For(a), suite.factories.LineItem.For(b)}
		items[1].SortOrder = 1
		created, err := suite.repo.UpsertBySlug(pkg, items)
		suite.Require().NoError(err)
		return pkg.ID, created
	}

	firstID, created := write()
	suite.True(created)
	secondID, created := write()
	suite.False(created)
	suite.Equal(firstID, secondID)

	var count int64
	suite.baseTestSuite.DB.Model(&models.PackageTemplate{}).Count(&count)
	suite.Equal(int64(1), count)

	items, err := suite.repo.GetLineItems(firstID)
	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.Equal(a.ID, items[0].DeliverableID)
	suite.Equal(b.ID, items[1].DeliverableID)
}

func (suite *PackageRepositoryTestSuite) TestLegacyPriceColumnsStayNull() {
	pkg := suite.factories.Package.Create()
	fee := int64(999)
	pkg.FlatFee = &fee
	suite.Require().NoError(suite.repo.Create(pkg))

	var flatFee *int64
	suite.Require().NoError(suite.baseTestSuite.DB.Raw(`SELECT flat_fee FROM package_templates WHERE id = ?`, pkg.ID).Scan(&flatFee).Error)
	suite.Nil(flatFee)
}

func (suite *PackageRepositoryTestSuite) TestReplaceLineItems_UnknownPackage() {
	err := suite.repo.ReplaceLineItems(uuid.New(), nil)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *PackageRepositoryTestSuite) TestList_SortedAndFiltered() {
	second := suite.factories.Package.Create()
	second.SortOrder = 2
	first := suite.factories.Package.Create()
	first.SortOrder = 1
	first.Featured = true
	suite.Require().NoError(suite.repo.Create(second))
	suite.Require().NoError(suite.repo.Create(first))

	all, err := suite.repo.List(PackageFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal(first.ID, all[0].ID)

	featured := true
	onlyFeatured, err := suite.repo.List(PackageFilter{Featured: &featured})
	suite.NoError(err)
	suite.Len(onlyFeatured, 1)
}

func (suite *PackageRepositoryTestSuite) TestDelete_CascadesLineItems() {
	d := suite.factories.Deliverable.Create()
	suite.Require().NoError(suite.deliverableRepo.Create(d))
	pkg := suite.factories.Package.Create()
	_, err := suite.repo.UpsertBySlug(pkg, []models.LineItem{suite.factories.LineItem.For(d)})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repo.Delete(pkg.ID))

	refs, err := suite.deliverableRepo.CountReferences(d.ID)
	suite.NoError(err)
	suite.Zero(refs)
}

func (suite *PackageRepositoryTestSuite) TestReplaceLineItems_ConcurrentWritersLeaveConsistentState() {
	a := suite.factories.Deliverable.Create()
	b := suite.factories.Deliverable.Create()
	suite.Require().NoError(suite.deliverableRepo.Create(a))
	suite.Require().NoError(suite.deliverableRepo.Create(b))
	pkg := suite.factories.Package.Create()
	suite.Require().NoError(suite.repo.Create(pkg))

	sets := [][]models.LineItem{
		{suite.factories.LineItem.For(a)},
		{suite.factories.LineItem.For(b)},
	}

	var wg sync.WaitGroup
	for round := 0; round < 5; round++ {
		for i := range sets {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				items := append([]models.LineItem(nil), sets[i]...)
				suite.NoError(suite.repo.ReplaceLineItems(pkg.ID, items))
			}(i)
		}
	}
	wg.Wait()

	items, err := suite.repo.GetLineItems(pkg.ID)
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Contains([]uuid.UUID{a.ID, b.ID}, items[0].DeliverableID)
}

func (suite *PackageRepositoryTestSuite) TestUpsertBySlug_ConcurrentWritersLeaveOneSet() {
	a := suite.factories.Deliverable.Create()
	b := suite.factories.Deliverable.Create()
	suite.Require().NoError(suite.deliverableRepo.Create(a))
	suite.Require().NoError(suite.deliverableRepo.Create(b))
	_, err := suite.repo.UpsertBySlug(suite.factories.Package.WithSlug("launch-kit"), nil)
	suite.Require().NoError(err)

	targets := []*models.Deliverable{a, b}
	var pkgs []*models.PackageTemplate
	var sets [][]models.LineItem
	for round := 0; round < 5; round++ {
		for _, d := range targets {
			pkgs = append(pkgs, suite.factories.Package.WithSlug("launch-kit"))
			sets = append(sets, []models.LineItem{suite.factories.LineItem.For(d)})
		}
	}

	var wg sync.WaitGroup
	for i := range pkgs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			created, err := suite.repo.UpsertBySlug(pkgs[i], sets[i])
			suite.NoError(err)
			suite.False(created)
		}(i)
	}
	wg.Wait()

	stored, err := suite.repo.GetBySlug("launch-kit")
	suite.Require().NoError(err)
	items, err := suite.repo.GetLineItems(stored.ID)
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Contains([]uuid.UUID{a.ID, b.ID}, items[0].DeliverableID)
}

func TestPackageRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PackageRepositoryTestSuite))
}
