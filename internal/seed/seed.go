// Package seed loads the embedded reference-data content into the database.
// Seeding is idempotent: rows are upserted by slug, so re-running (at
// startup or on the refresh schedule) converges on the embedded content
// without duplicating rows.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/keystone1031/exchange-tools/internal/apperrors"
	"github.com/keystone1031/exchange-tools/internal/model"
	"github.com/keystone1031/exchange-tools/internal/repository"
)

//go:embed data/*.json
var dataFS embed.FS

type serviceRecord struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
}

type locationRecord struct {
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	State     string `json:"state"`
	Summary   string `json:"summary"`
	SortOrder int    `json:"sortOrder"`
}

type propertyTypeRecord struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
}

type profileRecord struct {
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Summary string `json:"summary"`
}

type articleRecord struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Body        string `json:"body"`
	PublishedAt string `json:"publishedAt"`
}

// Seeder writes the embedded datasets through the reference repository.
type Seeder struct {
	repo *repository.ReferenceRepository
}

// NewSeeder creates a new Seeder backed by the given repository.
func NewSeeder(repo *repository.ReferenceRepository) *Seeder {
	return &Seeder{repo: repo}
}

// Run seeds all five datasets. The datasets are independent, so they load
// in parallel; the first failure cancels the rest.
func (s *Seeder) Run() error {
	var g errgroup.Group

	g.Go(s.seedServices)
	g.Go(s.seedLocations)
	g.Go(s.seedPropertyTypes)
	g.Go(s.seedProfiles)
	g.Go(s.seedArticles)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrFailedToSeedReferenceData, err)
	}
	return nil
}

func loadDataset[T any](name string) ([]T, error) {
	raw, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded dataset %s: %w", name, err)
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode dataset %s: %w", name, err)
	}
	return records, nil
}

func (s *Seeder) seedServices() error {
	records, err := loadDataset[serviceRecord]("services.json")
	if err != nil {
		return err
	}
	for _, rec := range records {
		err := s.repo.UpsertService(model.Service{
			Slug:        rec.Slug,
			Name:        rec.Name,
			Summary:     rec.Summary,
			Description: rec.Description,
			SortOrder:   rec.SortOrder,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedLocations() error {
	records, err := loadDataset[locationRecord]("locations.json")
	if err != nil {
		return err
	}
	for _, rec := range records {
		err := s.repo.UpsertLocation(model.Location{
			Slug:      rec.Slug,
			Name:      rec.Name,
			State:     rec.State,
			Summary:   rec.Summary,
			SortOrder: rec.SortOrder,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedPropertyTypes() error {
	records, err := loadDataset[propertyTypeRecord]("property_types.json")
	if err != nil {
		return err
	}
	for _, rec := range records {
		err := s.repo.UpsertPropertyType(model.PropertyType{
			Slug:        rec.Slug,
			Name:        rec.Name,
			Summary:     rec.Summary,
			Description: rec.Description,
			SortOrder:   rec.SortOrder,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedProfiles() error {
	records, err := loadDataset[profileRecord]("profiles.json")
	if err != nil {
		return err
	}
	for _, rec := range records {
		err := s.repo.UpsertProfile(model.BusinessProfile{
			Slug:    rec.Slug,
			Name:    rec.Name,
			Role:    rec.Role,
			Summary: rec.Summary,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedArticles() error {
	records, err := loadDataset[articleRecord]("articles.json")
	if err != nil {
		return err
	}
	for _, rec := range records {
		publishedAt, err := repository.ParseTime(rec.PublishedAt)
		if err != nil {
			return fmt.Errorf("article %s: %w", rec.Slug, err)
		}
		err = s.repo.UpsertArticle(model.Article{
			Slug:        rec.Slug,
			Title:       rec.Title,
			Summary:     rec.Summary,
			Body:        rec.Body,
			PublishedAt: publishedAt,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
