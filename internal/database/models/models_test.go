package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSprintStatusTransitions(t *testing.T) {
	allowed := []struct{ from, to SprintStatus }{
		{SprintStatusDraft, SprintStatusNegotiating},
		{SprintStatusNegotiating, SprintStatusScheduled},
		{SprintStatusScheduled, SprintStatusInProgress},
		{SprintStatusInProgress, SprintStatusComplete},
		{SprintStatusDraft, SprintStatusCancelled},
		{SprintStatusNegotiating, SprintStatusCancelled},
		{SprintStatusScheduled, SprintStatusScheduled},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}

	rejected := []struct{ from, to SprintStatus }{
		{SprintStatusDraft, SprintStatusScheduled},
		{SprintStatusScheduled, SprintStatusCancelled},
		{SprintStatusComplete, SprintStatusDraft},
		{SprintStatusCancelled, SprintStatusDraft},
		{SprintStatusInProgress, SprintStatusNegotiating},
	}
	for _, tc := range rejected {
		assert.False(t, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestStatusValidity(t *testing.T) {
	assert.True(t, SprintStatusInProgress.IsValid())
	assert.False(t, SprintStatus("paused").IsValid())
	assert.True(t, ContainerTypePackage.IsValid())
	assert.False(t, ContainerType("invoice").IsValid())
}

func TestNormalizeContractStatus(t *testing.T) {
	assert.Equal(t, ContractStatusSigned, NormalizeContractStatus("signed"))
	assert.Equal(t, ContractStatusDrafted, NormalizeContractStatus("drafted"))
	assert.Equal(t, ContractStatusNotLinked, NormalizeContractStatus("countersigned"))
	assert.Equal(t, ContractStatusNotLinked, NormalizeContractStatus(""))
}

func TestPackageTemplateBeforeSaveClearsLegacyPrice(t *testing.T) {
	fee := int64(5000)
	hours := 40.0
	p := &PackageTemplate{Name: "Branding Foundations Sprint", Slug: "branding-foundations", FlatFee: &fee, FlatHours: &hours}

	require.NoError(t, p.BeforeSave(nil))
	assert.Nil(t, p.FlatFee)
	assert.Nil(t, p.FlatHours)
}

func TestDeliverableSnapshotAndEstimateItem(t *testing.T) {
	points := 5.0
	d := &Deliverable{Name: "Logo Suite", Category: "branding", Description: "Primary + secondary marks", BasePoints: &points}
	snap := d.Snapshot()
	assert.Equal(t, DeliverableSnapshot{Name: "Logo Suite", Category: "branding", Description: "Primary + secondary marks"}, snap)

	d.Name = "Renamed"
	assert.Equal(t, "Logo Suite", snap.Name)

	li := LineItem{DeliverableID: d.ID, Quantity: 2, ComplexityMultiplier: 1.5}
	items := EstimateItems([]LineItem{li})
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1.5, items[0].ComplexityMultiplier)
}
