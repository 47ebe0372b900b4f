package repository_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/keystone1031/exchange-tools/internal/apperrors"
	"github.com/keystone1031/exchange-tools/internal/model"
	"github.com/keystone1031/exchange-tools/internal/repository"
	"github.com/keystone1031/exchange-tools/internal/testutil"
)

// TestReferenceRepository_Upsert tests slug-keyed upsert semantics.
//
// WHY: Seeding runs at every startup and on the refresh schedule, so the
// upserts must converge: same slug updates in place, keeps its row ID, and
// never produces duplicates.
func TestReferenceRepository_Upsert(t *testing.T) {
	t.Run("inserts a new service and assigns an ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewReferenceRepository(db)

		err := repo.UpsertService(model.Service{
			Slug:    "delayed-exchange",
			Name:    "Delayed Exchange",
			Summary: "Sell first, buy later.",
		})
		if err != nil {
			t.Fatalf("UpsertService returned unexpected error: %v", err)
		}

		created, err := repo.GetServiceBySlug("delayed-exchange")
		if err != nil {
			t.Fatalf("GetServiceBySlug returned unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Error("Expected generated row ID, got empty string")
		}
	})

	t.Run("updates in place on slug conflict and keeps the row ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := testReferenceRepoWithService(t, db, "delayed-exchange", "Old Name")

		before, err := repo.GetServiceBySlug("delayed-exchange")
		if err != nil {
			t.Fatalf("GetServiceBySlug returned unexpected error: %v", err)
		}

		err = repo.UpsertService(model.Service{
			Slug:    "delayed-exchange",
			Name:    "New Name",
			Summary: "Updated summary.",
		})
		if err != nil {
			t.Fatalf("UpsertService returned unexpected error: %v", err)
		}

		after, err := repo.GetServiceBySlug("delayed-exchange")
		if err != nil {
			t.Fatalf("GetServiceBySlug returned unexpected error: %v", err)
		}
		if after.ID != before.ID {
			t.Errorf("Expected row ID %s preserved, got %s", before.ID, after.ID)
		}
		if after.Name != "New Name" {
			t.Errorf("Expected updated name, got %q", after.Name)
		}

		services, err := repo.GetServices()
		if err != nil {
			t.Fatalf("GetServices returned unexpected error: %v", err)
		}
		if len(services) != 1 {
			t.Errorf("Expected 1 service after reseed, got %d", len(services))
		}
	})

	t.Run("upserts every dataset type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewReferenceRepository(db)

		publishedAt, err := repository.ParseTime("2025-03-12")
		if err != nil {
			t.Fatalf("ParseTime returned unexpected error: %v", err)
		}

		if err := repo.UpsertLocation(model.Location{Slug: "dallas-tx", Name: "Dallas", State: "TX", Summary: "s"}); err != nil {
			t.Errorf("UpsertLocation returned unexpected error: %v", err)
		}
		if err := repo.UpsertPropertyType(model.PropertyType{Slug: "multifamily", Name: "Multifamily", Summary: "s"}); err != nil {
			t.Errorf("UpsertPropertyType returned unexpected error: %v", err)
		}
		if err := repo.UpsertProfile(model.BusinessProfile{Slug: "harbor-qi", Name: "Harbor QI", Role: "QI", Summary: "s"}); err != nil {
			t.Errorf("UpsertProfile returned unexpected error: %v", err)
		}
		if err := repo.UpsertArticle(model.Article{Slug: "boot", Title: "Boot", Summary: "s", Body: "b", PublishedAt: publishedAt}); err != nil {
			t.Errorf("UpsertArticle returned unexpected error: %v", err)
		}

		if _, err := repo.GetLocationBySlug("dallas-tx"); err != nil {
			t.Errorf("Location round-trip failed: %v", err)
		}
		if _, err := repo.GetPropertyTypeBySlug("multifamily"); err != nil {
			t.Errorf("Property type round-trip failed: %v", err)
		}
		if _, err := repo.GetProfileBySlug("harbor-qi"); err != nil {
			t.Errorf("Profile round-trip failed: %v", err)
		}
		if _, err := repo.GetArticleBySlug("boot"); err != nil {
			t.Errorf("Article round-trip failed: %v", err)
		}
	})
}

// TestParseTime tests the seed date parser.
func TestParseTime(t *testing.T) {
	t.Run("parses plain dates", func(t *testing.T) {
		parsed, err := repository.ParseTime("2025-03-12")
		if err != nil {
			t.Fatalf("ParseTime returned unexpected error: %v", err)
		}
		if parsed.Year() != 2025 || parsed.Month() != 3 || parsed.Day() != 12 {
			t.Errorf("Expected 2025-03-12, got %v", parsed)
		}
	})

	t.Run("parses RFC3339 timestamps", func(t *testing.T) {
		if _, err := repository.ParseTime("2025-03-12T09:30:00Z"); err != nil {
			t.Errorf("ParseTime returned unexpected error: %v", err)
		}
	})

	t.Run("rejects other formats", func(t *testing.T) {
		_, err := repository.ParseTime("03/12/2025")
		if !errors.Is(err, apperrors.ErrInvalidDate) {
			t.Errorf("Expected ErrInvalidDate for US-style date, got %v", err)
		}
	})
}

// testReferenceRepoWithService creates a repository over db with one
// service row already upserted.
func testReferenceRepoWithService(t *testing.T, db *sql.DB, slug, name string) *repository.ReferenceRepository {
	t.Helper()

	repo := repository.NewReferenceRepository(db)
	err := repo.UpsertService(model.Service{Slug: slug, Name: name, Summary: "seeded"})
	if err != nil {
		t.Fatalf("Failed to seed service: %v", err)
	}
	return repo
}
