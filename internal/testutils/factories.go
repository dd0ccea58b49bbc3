package testutils

import (
	"fmt"
	"sync/atomic"

	"studio-admin-backend/internal/database/models"
)

var factorySeq atomic.Int64

func nextSeq() int64 {
	return factorySeq.Add(1)
}

func floatPtr(v float64) *float64 {
	return &v
}

// DeliverableFactory provides methods to create test Deliverable data
type DeliverableFactory struct{}

// Create creates an active Deliverable with a unique slug and 5 base points
func (f *DeliverableFactory) Create() *models.Deliverable {
	n := nextSeq()
	return &models.Deliverable{
		Slug:        fmt.Sprintf("deliverable-%d", n),
		Name:        fmt.Sprintf("Deliverable %d", n),
		Category:    "branding",
		Description: "A test deliverable",
		BasePoints:  floatPtr(5),
		Active:      true,
	}
}

// WithPoints sets the base points; nil makes the deliverable bespoke
func (f *DeliverableFactory) WithPoints(points *float64) *models.Deliverable {
	d := f.Create()
	d.BasePoints = points
	return d
}

// WithName sets the display name; the slug stays unique
func (f *DeliverableFactory) WithName(name string) *models.Deliverable {
	d := f.Create()
	d.Name = name
	return d
}

// SprintFactory provides methods to create test SprintDraft data
type SprintFactory struct{}

// Create creates a sprint draft in draft status with zero totals
func (f *SprintFactory) Create() *models.SprintDraft {
	return &models.SprintDraft{
		Title:          fmt.Sprintf("Sprint %d", nextSeq()),
		Status:         models.SprintStatusDraft,
		ContractStatus: models.ContractStatusNotLinked,
	}
}

// WithStatus sets the sprint status
func (f *SprintFactory) WithStatus(status models.SprintStatus) *models.SprintDraft {
	s := f.Create()
	s.Status = status
	return s
}

// PackageFactory provides methods to create test PackageTemplate data
type PackageFactory struct{}

// Create creates an active package with a unique slug
func (f *PackageFactory) Create() *models.PackageTemplate {
	n := nextSeq()
	return &models.PackageTemplate{
		Name:   fmt.Sprintf("Package %d", n),
		Slug:   fmt.Sprintf("package-%d", n),
		Active: true,
	}
}

// WithSlug sets the package slug
func (f *PackageFactory) WithSlug(slug string) *models.PackageTemplate {
	p := f.Create()
	p.Slug = slug
	return p
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// Create creates an active project with a unique name
func (f *ProjectFactory) Create() *models.Project {
	return &models.Project{
		Name:       fmt.Sprintf("project-%d", nextSeq()),
		ClientName: "Acme",
		Status:     models.ProjectStatusActive,
	}
}

// LineItemFactory provides methods to create test LineItem data
type LineItemFactory struct{}

// For creates a line item for d with quantity 1 and multiplier 1
func (f *LineItemFactory) For(d *models.Deliverable) models.LineItem {
	return models.LineItem{
		DeliverableID:        d.ID,
		Quantity:             1,
		ComplexityMultiplier: 1,
		Snapshot:             d.Snapshot(),
	}
}

// FactorySet contains all factories for easy access
type FactorySet struct {
	Deliverable *DeliverableFactory
	Sprint      *SprintFactory
	Package     *PackageFactory
	Project     *ProjectFactory
	LineItem    *LineItemFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Deliverable: &DeliverableFactory{},
		Sprint:      &SprintFactory{},
		Package:     &PackageFactory{},
		Project:     &ProjectFactory{},
		LineItem:    &LineItemFactory{},
	}
}
