package model

import "time"

// Service represents a 1031 exchange service offering page.
type Service struct {
	ID          string
	Slug        string
	Name        string
	Summary     string
	Description string
	SortOrder   int
}

// Location represents a market/location page.
type Location struct {
	ID        string
	Slug      string
	Name      string
	State     string
	Summary   string
	SortOrder int
}

// PropertyType represents a replacement property category page.
type PropertyType struct {
	ID          string
	Slug        string
	Name        string
	Summary     string
	Description string
	SortOrder   int
}

// BusinessProfile represents a team or partner business profile.
type BusinessProfile struct {
	ID      string
	Slug    string
	Name    string
	Role    string
	Summary string
}

// Article represents a published blog article.
type Article struct {
	ID          string
	Slug        string
	Title       string
	Summary     string
	Body        string
	PublishedAt time.Time
}
