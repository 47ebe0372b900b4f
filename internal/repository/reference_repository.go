package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/keystone1031/exchange-tools/internal/apperrors"
	"github.com/keystone1031/exchange-tools/internal/model"
)

// ReferenceRepository provides data access for the read-only content
// datasets: services, locations, property types, business profiles, and
// articles. Writes only happen through the upsert methods used by the
// seeder; the API surface is lookup-only.
type ReferenceRepository struct {
	db *sql.DB
}

// NewReferenceRepository creates a new ReferenceRepository with the provided database connection.
func NewReferenceRepository(db *sql.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

// GetServices retrieves all services ordered for display.
// Returns an empty slice if no services exist.
func (r *ReferenceRepository) GetServices() ([]model.Service, error) {
	rows, err := r.db.Query(`
		SELECT id, slug, name, summary, description, sort_order
		FROM service
		ORDER BY sort_order, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query service table: %w", err)
	}
	defer rows.Close()

	services := []model.Service{}
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.Slug, &s.Name, &s.Summary, &s.Description, &s.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan service row: %w", err)
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

// GetServiceBySlug retrieves a single service by its URL slug.
func (r *ReferenceRepository) GetServiceBySlug(slug string) (*model.Service, error) {
	var s model.Service
	err := r.db.QueryRow(`
		SELECT id, slug, name, summary, description, sort_order
		FROM service
		WHERE slug = ?
	`, slug).Scan(&s.ID, &s.Slug, &s.Name, &s.Summary, &s.Description, &s.SortOrder)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query service by slug: %w", err)
	}
	return &s, nil
}

// UpsertService inserts a service or updates it in place when the slug
// already exists. The row ID is stable across reseeds.
func (r *ReferenceRepository) UpsertService(s model.Service) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	_, err := r.db.Exec(`
		INSERT INTO service (id, slug, name, summary, description, sort_order)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
			name = excluded.name,
			summary = excluded.summary,
			description = excluded.description,
			sort_order = excluded.sort_order
	`, s.ID, s.Slug, s.Name, s.Summary, s.Description, s.SortOrder)
	if err != nil {
		return fmt.Errorf("failed to upsert service %s: %w", s.Slug, err)
	}
	return nil
}

// GetLocations retrieves all locations ordered for display.
func (r *ReferenceRepository) GetLocations() ([]model.Location, error) {
	rows, err := r.db.Query(`
		SELECT id, slug, name, state, summary, sort_order
		FROM location
		ORDER BY sort_order, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query location table: %w", err)
	}
	defer rows.Close()

	locations := []model.Location{}
	for rows.Next() {
		var l model.Location
		if err := rows.Scan(&l.ID, &l.Slug, &l.Name, &l.State, &l.Summary, &l.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", err)
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

// GetLocationBySlug retrieves a single location by its URL slug.
func (r *ReferenceRepository) GetLocationBySlug(slug string) (*model.Location, error) {
	var l model.Location
	err := r.db.QueryRow(`
		SELECT id, slug, name, state, summary, sort_order
		FROM location
		WHERE slug = ?
	`, slug).Scan(&l.ID, &l.Slug, &l.Name, &l.State, &l.Summary, &l.SortOrder)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query location by slug: %w", err)
	}
	return &l, nil
}

// UpsertLocation inserts a location or updates it in place by slug.
func (r *ReferenceRepository) UpsertLocation(l model.Location) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	_, err := r.db.Exec(`
		INSERT INTO location (id, slug, name, state, summary, sort_order)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
			name = excluded.name,
			state = excluded.state,
			summary = excluded.summary,
			sort_order = excluded.sort_order
	`, l.ID, l.Slug, l.Name, l.State, l.Summary, l.SortOrder)
	if err != nil {
		return fmt.Errorf("failed to upsert location %s: %w", l.Slug, err)
	}
	return nil
}

// GetPropertyTypes retrieves all property types ordered for display.
func (r *ReferenceRepository) GetPropertyTypes() ([]model.PropertyType, error) {
	rows, err := r.db.Query(`
		SELECT id, slug, name, summary, description, sort_order
		FROM property_type
		ORDER BY sort_order, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query property_type table: %w", err)
	}
	defer rows.Close()

	types := []model.PropertyType{}
	for rows.Next() {
		var p model.PropertyType
		if err := rows.Scan(&p.ID, &p.Slug, &p.Name, &p.Summary, &p.Description, &p.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan property_type row: %w", err)
		}
		types = append(types, p)
	}
	return types, rows.Err()
}

// GetPropertyTypeBySlug retrieves a single property type by its URL slug.
func (r *ReferenceRepository) GetPropertyTypeBySlug(slug string) (*model.PropertyType, error) {
	var p model.PropertyType
	err := r.db.QueryRow(`
		SELECT id, slug, name, summary, description, sort_order
		FROM property_type
		WHERE slug = ?
	`, slug).Scan(&p.ID, &p.Slug, &p.Name, &p.Summary, &p.Description, &p.SortOrder)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrPropertyTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query property_type by slug: %w", err)
	}
	return &p, nil
}

// UpsertPropertyType inserts a property type or updates it in place by slug.
func (r *ReferenceRepository) UpsertPropertyType(p model.PropertyType) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	_, err := r.db.Exec(`
		INSERT INTO property_type (id, slug, name, summary, description, sort_order)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
			name = excluded.name,
			summary = excluded.summary,
			description = excluded.description,
			sort_order = excluded.sort_order
	`, p.ID, p.Slug, p.Name, p.Summary, p.Description, p.SortOrder)
	if err != nil {
		return fmt.Errorf("failed to upsert property type %s: %w", p.Slug, err)
	}
	return nil
}

// GetProfiles retrieves all business profiles.
func (r *ReferenceRepository) GetProfiles() ([]model.BusinessProfile, error) {
	rows, err := r.db.Query(`
		SELECT id, slug, name, role, summary
		FROM business_profile
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query business_profile table: %w", err)
	}
	defer rows.Close()

	profiles := []model.BusinessProfile{}
	for rows.Next() {
		var p model.BusinessProfile
		if err := rows.Scan(&p.ID, &p.Slug, &p.Name, &p.Role, &p.Summary); err != nil {
			return nil, fmt.Errorf("failed to scan business_profile row: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// GetProfileBySlug retrieves a single business profile by its URL slug.
func (r *ReferenceRepository) GetProfileBySlug(slug string) (*model.BusinessProfile, error) {
	var p model.BusinessProfile
	err := r.db.QueryRow(`
		SELECT id, slug, name, role, summary
		FROM business_profile
		WHERE slug = ?
	`, slug).Scan(&p.ID, &p.Slug, &p.Name, &p.Role, &p.Summary)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query business_profile by slug: %w", err)
	}
	return &p, nil
}

// UpsertProfile inserts a business profile or updates it in place by slug.
func (r *ReferenceRepository) UpsertProfile(p model.BusinessProfile) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	_, err := r.db.Exec(`
		INSERT INTO business_profile (id, slug, name, role, summary)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
			name = excluded.name,
			role = excluded.role,
			summary = excluded.summary
	`, p.ID, p.Slug, p.Name, p.Role, p.Summary)
	if err != nil {
		return fmt.Errorf("failed to upsert business profile %s: %w", p.Slug, err)
	}
	return nil
}

// GetArticles retrieves all articles, newest first.
func (r *ReferenceRepository) GetArticles() ([]model.Article, error) {
	rows, err := r.db.Query(`
		SELECT id, slug, title, summary, body, published_at
		FROM article
		ORDER BY published_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query article table: %w", err)
	}
	defer rows.Close()

	articles := []model.Article{}
	for rows.Next() {
		var a model.Article
		if err := rows.Scan(&a.ID, &a.Slug, &a.Title, &a.Summary, &a.Body, &a.PublishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// GetArticleBySlug retrieves a single article by its URL slug.
func (r *ReferenceRepository) GetArticleBySlug(slug string) (*model.Article, error) {
	var a model.Article
	err := r.db.QueryRow(`
		SELECT id, slug, title, summary, body, published_at
		FROM article
		WHERE slug = ?
	`, slug).Scan(&a.ID, &a.Slug, &a.Title, &a.Summary, &a.Body, &a.PublishedAt)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query article by slug: %w", err)
	}
	return &a, nil
}

// UpsertArticle inserts an article or updates it in place by slug.
func (r *ReferenceRepository) UpsertArticle(a model.Article) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	_, err := r.db.Exec(`
		INSERT INTO article (id, slug, title, summary, body, published_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
			title = excluded.title,
			summary = excluded.summary,
			body = excluded.body,
			published_at = excluded.published_at
	`, a.ID, a.Slug, a.Title, a.Summary, a.Body, a.PublishedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert article %s: %w", a.Slug, err)
	}
	return nil
}
