package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/keystone1031/exchange-tools/internal/model"
)

// ServiceBuilder provides a fluent interface for creating test services.
//
// Example usage:
//
//	// Simple creation with defaults
//	svc := testutil.NewService().Build(t, db)
//
//	// Customized service
//	svc := testutil.NewService().
//	    WithSlug("reverse-exchange").
//	    WithName("Reverse Exchange").
//	    Build(t, db)
type ServiceBuilder struct {
	ID          string
	Slug        string
	Name        string
	Summary     string
	Description string
	SortOrder   int
}

// NewService creates a ServiceBuilder with sensible defaults.
func NewService() *ServiceBuilder {
	id := uuid.New().String()
	return &ServiceBuilder{
		ID:      id,
		Slug:    "test-service-" + id[:8],
		Name:    "Test Service",
		Summary: "Test summary",
	}
}

// WithSlug sets a custom slug.
func (b *ServiceBuilder) WithSlug(slug string) *ServiceBuilder {
	b.Slug = slug
	return b
}

// WithName sets a custom name.
func (b *ServiceBuilder) WithName(name string) *ServiceBuilder {
	b.Name = name
	return b
}

// WithSortOrder sets a custom display order.
func (b *ServiceBuilder) WithSortOrder(order int) *ServiceBuilder {
	b.SortOrder = order
	return b
}

// Build creates the service in the database and returns it.
func (b *ServiceBuilder) Build(t *testing.T, db *sql.DB) model.Service {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO service (id, slug, name, summary, description, sort_order)
		VALUES (?, ?, ?, ?, ?, ?)
	`, b.ID, b.Slug, b.Name, b.Summary, b.Description, b.SortOrder)
	if err != nil {
		t.Fatalf("Failed to create test service: %v", err)
	}

	return model.Service{
		ID:          b.ID,
		Slug:        b.Slug,
		Name:        b.Name,
		Summary:     b.Summary,
		Description: b.Description,
		SortOrder:   b.SortOrder,
	}
}

// LocationBuilder provides a fluent interface for creating test locations.
type LocationBuilder struct {
	ID        string
	Slug      string
	Name      string
	State     string
	Summary   string
	SortOrder int
}

// NewLocation creates a LocationBuilder with sensible defaults.
func NewLocation() *LocationBuilder {
	id := uuid.New().String()
	return &LocationBuilder{
		ID:      id,
		Slug:    "test-location-" + id[:8],
		Name:    "Test Location",
		State:   "TX",
		Summary: "Test summary",
	}
}

// WithSlug sets a custom slug.
func (b *LocationBuilder) WithSlug(slug string) *LocationBuilder {
	b.Slug = slug
	return b
}

// WithName sets a custom name.
func (b *LocationBuilder) WithName(name string) *LocationBuilder {
	b.Name = name
	return b
}

// WithState sets a custom state code.
func (b *LocationBuilder) WithState(state string) *LocationBuilder {
	b.State = state
	return b
}

// Build creates the location in the database and returns it.
func (b *LocationBuilder) Build(t *testing.T, db *sql.DB) model.Location {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO location (id, slug, name, state, summary, sort_order)
		VALUES (?, ?, ?, ?, ?, ?)
	`, b.ID, b.Slug, b.Name, b.State, b.Summary, b.SortOrder)
	if err != nil {
		t.Fatalf("Failed to create test location: %v", err)
	}

	return model.Location{
		ID:        b.ID,
		Slug:      b.Slug,
		Name:      b.Name,
		State:     b.State,
		Summary:   b.Summary,
		SortOrder: b.SortOrder,
	}
}

// ArticleBuilder provides a fluent interface for creating test articles.
type ArticleBuilder struct {
	ID          string
	Slug        string
	Title       string
	Summary     string
	Body        string
	PublishedAt time.Time
}

// NewArticle creates an ArticleBuilder with sensible defaults.
func NewArticle() *ArticleBuilder {
	id := uuid.New().String()
	return &ArticleBuilder{
		ID:          id,
		Slug:        "test-article-" + id[:8],
		Title:       "Test Article",
		Summary:     "Test summary",
		Body:        "Test body",
		PublishedAt: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
	}
}

// WithSlug sets a custom slug.
func (b *ArticleBuilder) WithSlug(slug string) *ArticleBuilder {
	b.Slug = slug
	return b
}

// WithTitle sets a custom title.
func (b *ArticleBuilder) WithTitle(title string) *ArticleBuilder {
	b.Title = title
	return b
}

// WithPublishedAt sets a custom publication date.
func (b *ArticleBuilder) WithPublishedAt(published time.Time) *ArticleBuilder {
	b.PublishedAt = published
	return b
}

// Build creates the article in the database and returns it.
func (b *ArticleBuilder) Build(t *testing.T, db *sql.DB) model.Article {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO article (id, slug, title, summary, body, published_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, b.ID, b.Slug, b.Title, b.Summary, b.Body, b.PublishedAt)
	if err != nil {
		t.Fatalf("Failed to create test article: %v", err)
	}

	return model.Article{
		ID:          b.ID,
		Slug:        b.Slug,
		Title:       b.Title,
		Summary:     b.Summary,
		Body:        b.Body,
		PublishedAt: b.PublishedAt,
	}
}
