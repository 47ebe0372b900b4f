package service

import (
	"github.com/keystone1031/exchange-tools/internal/model"
	"github.com/keystone1031/exchange-tools/internal/repository"
)

// ReferenceService exposes the read-only content datasets backing the
// services, locations, property-type, profile, and blog pages.
type ReferenceService struct {
	repo *repository.ReferenceRepository
}

// NewReferenceService creates a new ReferenceService
func NewReferenceService(repo *repository.ReferenceRepository) *ReferenceService {
	return &ReferenceService{repo: repo}
}

// GetServices returns all service offerings in display order.
func (s *ReferenceService) GetServices() ([]model.Service, error) {
	return s.repo.GetServices()
}

// GetServiceBySlug returns one service offering.
func (s *ReferenceService) GetServiceBySlug(slug string) (*model.Service, error) {
	return s.repo.GetServiceBySlug(slug)
}

// GetLocations returns all locations in display order.
func (s *ReferenceService) GetLocations() ([]model.Location, error) {
	return s.repo.GetLocations()
}

// GetLocationBySlug returns one location.
func (s *ReferenceService) GetLocationBySlug(slug string) (*model.Location, error) {
	return s.repo.GetLocationBySlug(slug)
}

// GetPropertyTypes returns all property types in display order.
func (s *ReferenceService) GetPropertyTypes() ([]model.PropertyType, error) {
	return s.repo.GetPropertyTypes()
}

// GetPropertyTypeBySlug returns one property type.
func (s *ReferenceService) GetPropertyTypeBySlug(slug string) (*model.PropertyType, error) {
	return s.repo.GetPropertyTypeBySlug(slug)
}

// GetProfiles returns all business profiles.
func (s *ReferenceService) GetProfiles() ([]model.BusinessProfile, error) {
	return s.repo.GetProfiles()
}

// GetProfileBySlug returns one business profile.
func (s *ReferenceService) GetProfileBySlug(slug string) (*model.BusinessProfile, error) {
	return s.repo.GetProfileBySlug(slug)
}

// GetArticles returns all articles, newest first.
func (s *ReferenceService) GetArticles() ([]model.Article, error) {
	return s.repo.GetArticles()
}

// GetArticleBySlug returns one article.
func (s *ReferenceService) GetArticleBySlug(slug string) (*model.Article, error) {
	return s.repo.GetArticleBySlug(slug)
}
