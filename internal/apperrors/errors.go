package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrServiceNotFound indicates that a service page with the given slug does not exist.
	ErrServiceNotFound = errors.New("service not found")

	// ErrLocationNotFound indicates that a location with the given slug does not exist.
	ErrLocationNotFound = errors.New("location not found")

	// ErrPropertyTypeNotFound indicates that a property type with the given slug does not exist.
	ErrPropertyTypeNotFound = errors.New("property type not found")

	// ErrProfileNotFound indicates that a business profile with the given slug does not exist.
	ErrProfileNotFound = errors.New("business profile not found")

	// ErrArticleNotFound indicates that an article with the given slug does not exist.
	ErrArticleNotFound = errors.New("article not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrEmptySlug indicates that a required slug parameter is empty or missing.
	ErrEmptySlug = errors.New("slug cannot be empty")

	// ErrInvalidDate indicates that a date string could not be parsed as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date format")

	// ErrLastProperty indicates an attempt to remove the final row from an
	// identification worksheet, which must keep at least one row.
	ErrLastProperty = errors.New("cannot remove the last identified property")

	// ErrPropertyRowNotFound indicates that an identification row with the given ID does not exist.
	ErrPropertyRowNotFound = errors.New("identified property row not found")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
// These errors indicate that an operation failed, but not due to missing entities or validation issues.
var (
	// Reference data operation errors
	ErrFailedToRetrieveServices      = errors.New("failed to retrieve services")
	ErrFailedToRetrieveLocations     = errors.New("failed to retrieve locations")
	ErrFailedToRetrievePropertyTypes = errors.New("failed to retrieve property types")
	ErrFailedToRetrieveProfiles      = errors.New("failed to retrieve business profiles")
	ErrFailedToRetrieveArticles      = errors.New("failed to retrieve articles")
	ErrFailedToSeedReferenceData     = errors.New("failed to seed reference data")
)
