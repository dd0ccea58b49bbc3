// Package seed loads the deliverable catalog and package templates from YAML files.
// Every write is an upsert by slug, so loading the same files twice leaves identical state.
package seed

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"studio-admin-backend/internal/logger"
	"studio-admin-backend/internal/service"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// DeliverableData is one catalog entry as written in deliverables YAML files
type DeliverableData struct {
	Slug        string   `yaml:"slug"`
	Name        string   `yaml:"name"`
	Category    string   `yaml:"category"`
	Description string   `yaml:"description"`
	Scope       string   `yaml:"scope,omitempty"`
	BasePoints  *float64 `yaml:"base_points,omitempty"`
	Active      *bool    `yaml:"active,omitempty"`
	SortOrder   int      `yaml:"sort_order"`
}

// PackageItemData references a deliverable by slug
type PackageItemData struct {
	Deliverable          string   `yaml:"deliverable"`
	Quantity             int      `yaml:"quantity,omitempty"`
	ComplexityMultiplier *float64 `yaml:"complexity_multiplier,omitempty"`
	Note                 string   `yaml:"note,omitempty"`
	CustomScope          string   `yaml:"custom_scope,omitempty"`
}

// PackageData is one package template as written in packages YAML files
type PackageData struct {
	Slug        string            `yaml:"slug"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Category    string            `yaml:"category"`
	Active      *bool             `yaml:"active,omitempty"`
	Featured    bool              `yaml:"featured"`
	SortOrder   int               `yaml:"sort_order"`
	Items       []PackageItemData `yaml:"items"`
}

// DeliverablesFile is the top-level shape of a deliverables YAML file
type DeliverablesFile struct {
	Deliverables []DeliverableData `yaml:"deliverables"`
}

// PackagesFile is the top-level shape of a packages YAML file
type PackagesFile struct {
	Packages []PackageData `yaml:"packages"`
}

// Result counts what a load created versus updated
type Result struct {
	DeliverablesCreated int
	DeliverablesTotal   int
	PackagesCreated     int
	PackagesTotal       int
}

// Loader writes seed data through the catalog and package services
type Loader struct {
	deliverables service.DeliverableServiceInterface
	packages     service.PackageServiceInterface
	seededBy     string
}

// NewLoader creates a new seed loader; seededBy is recorded as the author of every write
func NewLoader(deliverables service.DeliverableServiceInterface, packages service.PackageServiceInterface, seededBy string) *Loader {
	return &Loader{deliverables: deliverables, packages: packages, seededBy: seededBy}
}

// LoadDir reads every deliverables and packages YAML file under dir and loads them
func (l *Loader) LoadDir(dir string) (*Result, error) {
	deliverables, err := ReadDeliverables(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read deliverables: %w", err)
	}
	packages, err := ReadPackages(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read packages: %w", err)
	}
	return l.Load(deliverables, packages)
}

// Load upserts the deliverables first, then the packages that reference them by slug.
// A package naming an unknown deliverable slug stops the load.
func (l *Loader) Load(deliverables []DeliverableData, packages []PackageData) (*Result, error) {
	log := logger.New().WithField("component", "seed")
	result := &Result{DeliverablesTotal: len(deliverables), PackagesTotal: len(packages)}

	for _, d := range deliverables {
		_, created, err := l.deliverables.UpsertDeliverable(&service.CreateDeliverableRequest{
			Slug:        d.Slug,
			Name:        d.Name,
			Category:    d.Category,
			Description: d.Description,
			Scope:       d.Scope,
			BasePoints:  d.BasePoints,
			Active:      d.Active,
			SortOrder:   d.SortOrder,
			CreatedBy:   l.seededBy,
		})
		if err != nil {
			return result, fmt.Errorf("failed to load deliverable %s: %w", d.Slug, err)
		}
		if created {
			result.DeliverablesCreated++
		}
	}
	log.WithFields(map[string]interface{}{
		"created": result.DeliverablesCreated,
		"total":   result.DeliverablesTotal,
	}).Info("loaded deliverables")

	if len(packages) == 0 {
		return result, nil
	}

	ids, err := l.deliverables.ResolveSlugs(referencedSlugs(packages))
	if err != nil {
		return result, err
	}

	for _, p := range packages {
		req, err := packageRequest(p, ids)
		if err != nil {
			return result, err
		}
		req.UpdatedBy = l.seededBy

		_, created, err := l.packages.UpsertBySlug(req)
		if err != nil {
			return result, fmt.Errorf("failed to load package %s: %w", p.Slug, err)
		}
		if created {
			result.PackagesCreated++
		}
	}
	log.WithFields(map[string]interface{}{
		"created": result.PackagesCreated,
		"total":   result.PackagesTotal,
	}).Info("loaded packages")

	return result, nil
}

func packageRequest(p PackageData, ids map[string]uuid.UUID) (*service.UpsertPackageRequest, error) {
	req := &service.UpsertPackageRequest{
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Category:    p.Category,
		Active:      p.Active,
		Featured:    p.Featured,
		SortOrder:   p.SortOrder,
		Items:       make([]service.LineItemInput, 0, len(p.Items)),
	}
	for i, item := range p.Items {
		id, ok := ids[item.Deliverable]
		if !ok {
			return nil, fmt.Errorf("package %s references unknown deliverable %q", p.Slug, item.Deliverable)
		}
		order := i
		req.Items = append(req.Items, service.LineItemInput{
			DeliverableID:        id,
			Quantity:             item.Quantity,
			ComplexityMultiplier: item.ComplexityMultiplier,
			Note:                 item.Note,
			CustomScope:          item.CustomScope,
			SortOrder:            &order,
		})
	}
	return req, nil
}

func referencedSlugs(packages []PackageData) []string {
	seen := map[string]bool{}
	var slugs []string
	for _, p := range packages {
		for _, item := range p.Items {
			if !seen[item.Deliverable] {
				seen[item.Deliverable] = true
				slugs = append(slugs, item.Deliverable)
			}
		}
	}
	return slugs
}

// ReadDeliverables collects the deliverables of every *.yaml file under dir whose name contains "deliverables"
func ReadDeliverables(dir string) ([]DeliverableData, error) {
	var all []DeliverableData
	err := walkYAML(dir, "deliverables", func(data []byte) error {
		var file DeliverablesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Deliverables...)
		return nil
	})
	return all, err
}

// ReadPackages collects the packages of every *.yaml file under dir whose name contains "packages"
func ReadPackages(dir string) ([]PackageData, error) {
	var all []PackageData
	err := walkYAML(dir, "packages", func(data []byte) error {
		var file PackagesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Packages...)
		return nil
	})
	return all, err
}

func walkYAML(dir, kind string, decode func([]byte) error) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(d.Name(), kind) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := decode(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}
