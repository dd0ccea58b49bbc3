//go:build integration
// +build integration

package repository

import (
	"errors"
	"sync"
	"testing"

	"studio-admin-backend/internal/database/models"
	"studio-admin-backend/internal/estimate"
	"studio-admin-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

var zeroTotals = estimate.Totals{}

// SprintRepositoryTestSuite tests the SprintRepository
type SprintRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite   *testutils.BaseTestSuite
	repo            *SprintRepository
	deliverableRepo *DeliverableRepository
	factories       *testutils.FactorySet
}

func (suite *SprintRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSprintRepository(suite.baseTestSuite.DB)
	suite.deliverableRepo = NewDeliverableRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *SprintRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *SprintRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *SprintRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *SprintRepositoryTestSuite) newDeliverable(points float64) *models.Deliverable {
	d := suite.factories.Deliverable.WithPoints(&points)
	suite.Require().NoError(suite.deliverableRepo.Create(d))
	return d
}

func (suite *SprintRepositoryTestSuite) TestReplaceLineItems_StoresSetAndTotalsTogether() {
	a := suite.newDeliverable(5)
	b := suite.newDeliverable(8)
	sprint := suite.factories.Sprint.Create()
	suite.Require().NoError(suite.repo.Create(sprint))

	first := []models.LineItem{suite.factories.LineItem.For(a), suite.factories.LineItem.For(b)}
	totals := estimate.Totals{DeliverableCount: 2, TotalPoints: 13, TotalHours: 52, TotalPrice: 7800}
	updated, err := suite.repo.ReplaceLineItems(sprint.ID, first, totals)
	suite.Require().NoError(err)
	suite.Equal(totals, updated.Totals())
	suite.NotEqual(uuid.Nil, updated.LineItems[0].ID)

	second := []models.LineItem{suite.factories.LineItem.For(b)}
	second[0].Quantity = 3
	secondTotals := estimate.Totals{DeliverableCount: 1, TotalPoints: 24, TotalHours: 96, TotalPrice: 14400}
	_, err = suite.repo.ReplaceLineItems(sprint.ID, second, secondTotals)
	suite.Require().NoError(err)

	stored, err := suite.repo.GetWithLineItems(sprint.ID)
	suite.Require().NoError(err)
	suite.Equal(secondTotals, stored.Totals())
	suite.Require().Len(stored.LineItems, 1)
	suite.Equal(b.ID, stored.LineItems[0].DeliverableID)
	suite.Equal(3, stored.LineItems[0].Quantity)
	suite.Equal(b.Name, stored.LineItems[0].Snapshot.Name)
}

func (suite *SprintRepositoryTestSuite) TestReplaceLineItems_DuplicateRollsBack() {
	a := suite.newDeliverable(5)
	sprint := suite.factories.Sprint.Create()
	suite.Require().NoError(suite.repo.Create(sprint))
	_, err := suite.repo.ReplaceLineItems(sprint.ID, []models.LineItem{suite.factories.LineItem.For(a)},
		estimate.Totals{DeliverableCount: 1, TotalPoints: 5, TotalHours: 20, TotalPrice: 3000})
	suite.Require().NoError(err)

	// the unique (container, deliverable) index rejects the second copy
	dup := []models.LineItem{suite.factories.LineItem.For(a), suite.factories.LineItem.For(a)}
	_, err = suite.repo.ReplaceLineItems(sprint.ID, dup, estimate.Totals{DeliverableCount: 2, TotalPoints: 10})
	suite.Error(err)

	stored, err := suite.repo.GetWithLineItems(sprint.ID)
	suite.Require().NoError(err)
	suite.Len(stored.LineItems, 1)
	suite.Equal(5.0, stored.Totals().TotalPoints)
}

func (suite *SprintRepositoryTestSuite) TestReplaceLineItems_ConcurrentWritersLeaveConsistentState() {
	a := suite.newDeliverable(2)
	b := suite.newDeliverable(3)
	sprint := suite.factories.Sprint.Create()
	suite.Require().NoError(suite.repo.Create(sprint))

	sets := [][]models.LineItem{
		{suite.factories.LineItem.For(a)},
		{suite.factories.LineItem.For(b)},
	}
	totals := []estimate.Totals{
		{DeliverableCount: 1, TotalPoints: 2, TotalHours: 8, TotalPrice: 1200},
		{DeliverableCount: 1, TotalPoints: 3, TotalHours: 12, TotalPrice: 1800},
	}

	var wg sync.WaitGroup
	for round := 0; round < 5; round++ {
		for i := range sets {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				items := append([]models.LineItem(nil), sets[i]...)
				_, err := suite.repo.ReplaceLineItems(sprint.ID, items, totals[i])
				suite.NoError(err)
			}(i)
		}
	}
	wg.Wait()

	stored, err := suite.repo.GetWithLineItems(sprint.ID)
	suite.Require().NoError(err)
	suite.Require().Len(stored.LineItems, 1)
	if stored.LineItems[0].DeliverableID == a.ID {
		suite.Equal(totals[0], stored.Totals())
	} else {
		suite.Equal(totals[1], stored.Totals())
	}
}

func (suite *SprintRepositoryTestSuite) TestRecalculateTotals_UsesStoredSet() {
	a := suite.newDeliverable(5)
	sprint := suite.factories.Sprint.Create()
	suite.Require().NoError(suite.repo.Create(sprint))
	_, err := suite.repo.ReplaceLineItems(sprint.ID, []models.LineItem{suite.factories.LineItem.For(a)}, zeroTotals)
	suite.Require().NoError(err)

	recalculated, err := suite.repo.RecalculateTotals(sprint.ID, func(items []models.LineItem) (estimate.Totals, error) {
		suite.Len(items, 1)
		return estimate.Totals{DeliverableCount: len(items), TotalPoints: 7}, nil
	})
	suite.Require().NoError(err)
	suite.Equal(7.0, recalculated.TotalEstimatePoints)

	_, err = suite.repo.RecalculateTotals(sprint.ID, func([]models.LineItem) (estimate.Totals, error) {
		return estimate.Totals{}, errors.New("catalog unavailable")
	})
	suite.Error(err)
	stored, err := suite.repo.GetByID(sprint.ID)
	suite.Require().NoError(err)
	suite.Equal(7.0, stored.TotalEstimatePoints)
}

func (suite *SprintRepositoryTestSuite) TestDelete_CascadesLineItems() {
	a := suite.newDeliverable(5)
	sprint := suite.factories.Sprint.Create()
	suite.Require().NoError(suite.repo.Create(sprint))
	_, err := suite.repo.ReplaceLineItems(sprint.ID, []models.LineItem{suite.factories.LineItem.For(a)}, zeroTotals)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repo.Delete(sprint.ID))

	items, err := suite.repo.GetLineItems(sprint.ID)
	suite.NoError(err)
	suite.Empty(items)
	suite.ErrorIs(suite.repo.Delete(sprint.ID), gorm.ErrRecordNotFound)
}

func (suite *SprintRepositoryTestSuite) TestList_FiltersByStatus() {
	suite.Require().NoError(suite.repo.Create(suite.factories.Sprint.Create()))
	suite.Require().NoError(suite.repo.Create(suite.factories.Sprint.WithStatus(models.SprintStatusNegotiating)))

	sprints, total, err := suite.repo.List(SprintFilter{Status: string(models.SprintStatusNegotiating)}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(sprints, 1)
}

func TestSprintRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SprintRepositoryTestSuite))
}
