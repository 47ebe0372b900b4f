package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/keystone1031/exchange-tools/internal/apperrors"
	"github.com/keystone1031/exchange-tools/internal/model"
	"github.com/keystone1031/exchange-tools/internal/service"
	"github.com/keystone1031/exchange-tools/internal/validation"
)

// ReferenceHandler serves the read-only content datasets.
type ReferenceHandler struct {
	referenceService *service.ReferenceService
}

// NewReferenceHandler creates a new ReferenceHandler
func NewReferenceHandler(referenceService *service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{
		referenceService: referenceService,
	}
}

// ServiceResponse represents one service offering.
type ServiceResponse struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Summary     string `json:"summary"`
	Description string `json:"description,omitempty"`
}

// LocationResponse represents one location.
type LocationResponse struct {
	ID      string `json:"id"`
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	State   string `json:"state"`
	Summary string `json:"summary"`
}

// PropertyTypeResponse represents one property type.
type PropertyTypeResponse struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Summary     string `json:"summary"`
	Description string `json:"description,omitempty"`
}

// ProfileResponse represents one business profile.
type ProfileResponse struct {
	ID      string `json:"id"`
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Summary string `json:"summary"`
}

// ArticleResponse represents one article.
type ArticleResponse struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Body        string `json:"body,omitempty"`
	PublishedAt string `json:"publishedAt"`
}

// Services handles GET /api/reference/services
func (h *ReferenceHandler) Services(w http.ResponseWriter, r *http.Request) {
	services, err := h.referenceService.GetServices()
	if err != nil {
		respondRetrievalError(w, apperrors.ErrFailedToRetrieveServices, err)
		return
	}

	response := make([]ServiceResponse, len(services))
	for i, s := range services {
		response[i] = newServiceResponse(s)
	}
	respondJSON(w, http.StatusOK, response)
}

// ServiceBySlug handles GET /api/reference/services/{slug}
func (h *ReferenceHandler) ServiceBySlug(w http.ResponseWriter, r *http.Request) {
	slug, ok := slugParam(w, r)
	if !ok {
		return
	}

	svc, err := h.referenceService.GetServiceBySlug(slug)
	if err != nil {
		respondLookupError(w, apperrors.ErrServiceNotFound, apperrors.ErrFailedToRetrieveServices, err)
		return
	}
	respondJSON(w, http.StatusOK, newServiceResponse(*svc))
}

// Locations handles GET /api/reference/locations
func (h *ReferenceHandler) Locations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.referenceService.GetLocations()
	if err != nil {
		respondRetrievalError(w, apperrors.ErrFailedToRetrieveLocations, err)
		return
	}

	response := make([]LocationResponse, len(locations))
	for i, l := range locations {
		response[i] = newLocationResponse(l)
	}
	respondJSON(w, http.StatusOK, response)
}

// LocationBySlug handles GET /api/reference/locations/{slug}
func (h *ReferenceHandler) LocationBySlug(w http.ResponseWriter, r *http.Request) {
	slug, ok := slugParam(w, r)
	if !ok {
		return
	}

	location, err := h.referenceService.GetLocationBySlug(slug)
	if err != nil {
		respondLookupError(w, apperrors.ErrLocationNotFound, apperrors.ErrFailedToRetrieveLocations, err)
		return
	}
	respondJSON(w, http.StatusOK, newLocationResponse(*location))
}

// PropertyTypes handles GET /api/reference/property-types
func (h *ReferenceHandler) PropertyTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.referenceService.GetPropertyTypes()
	if err != nil {
		respondRetrievalError(w, apperrors.ErrFailedToRetrievePropertyTypes, err)
		return
	}

	response := make([]PropertyTypeResponse, len(types))
	for i, p := range types {
		response[i] = newPropertyTypeResponse(p)
	}
	respondJSON(w, http.StatusOK, response)
}

// PropertyTypeBySlug handles GET /api/reference/property-types/{slug}
func (h *ReferenceHandler) PropertyTypeBySlug(w http.ResponseWriter, r *http.Request) {
	slug, ok := slugParam(w, r)
	if !ok {
		return
	}

	propertyType, err := h.referenceService.GetPropertyTypeBySlug(slug)
	if err != nil {
		respondLookupError(w, apperrors.ErrPropertyTypeNotFound, apperrors.ErrFailedToRetrievePropertyTypes, err)
		return
	}
	respondJSON(w, http.StatusOK, newPropertyTypeResponse(*propertyType))
}

// Profiles handles GET /api/reference/profiles
func (h *ReferenceHandler) Profiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.referenceService.GetProfiles()
	if err != nil {
		respondRetrievalError(w, apperrors.ErrFailedToRetrieveProfiles, err)
		return
	}

	response := make([]ProfileResponse, len(profiles))
	for i, p := range profiles {
		response[i] = newProfileResponse(p)
	}
	respondJSON(w, http.StatusOK, response)
}

// ProfileBySlug handles GET /api/reference/profiles/{slug}
func (h *ReferenceHandler) ProfileBySlug(w http.ResponseWriter, r *http.Request) {
	slug, ok := slugParam(w, r)
	if !ok {
		return
	}

	profile, err := h.referenceService.GetProfileBySlug(slug)
	if err != nil {
		respondLookupError(w, apperrors.ErrProfileNotFound, apperrors.ErrFailedToRetrieveProfiles, err)
		return
	}
	respondJSON(w, http.StatusOK, newProfileResponse(*profile))
}

// Articles handles GET /api/reference/articles
func (h *ReferenceHandler) Articles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.referenceService.GetArticles()
	if err != nil {
		respondRetrievalError(w, apperrors.ErrFailedToRetrieveArticles, err)
		return
	}

	response := make([]ArticleResponse, len(articles))
	for i, a := range articles {
		response[i] = newArticleResponse(a, false)
	}
	respondJSON(w, http.StatusOK, response)
}

// ArticleBySlug handles GET /api/reference/articles/{slug}
func (h *ReferenceHandler) ArticleBySlug(w http.ResponseWriter, r *http.Request) {
	slug, ok := slugParam(w, r)
	if !ok {
		return
	}

	article, err := h.referenceService.GetArticleBySlug(slug)
	if err != nil {
		respondLookupError(w, apperrors.ErrArticleNotFound, apperrors.ErrFailedToRetrieveArticles, err)
		return
	}
	respondJSON(w, http.StatusOK, newArticleResponse(*article, true))
}

func newServiceResponse(s model.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Slug:        s.Slug,
		Name:        s.Name,
		Summary:     s.Summary,
		Description: s.Description,
	}
}

func newLocationResponse(l model.Location) LocationResponse {
	return LocationResponse{
		ID:      l.ID,
		Slug:    l.Slug,
		Name:    l.Name,
		State:   l.State,
		Summary: l.Summary,
	}
}

func newPropertyTypeResponse(p model.PropertyType) PropertyTypeResponse {
	return PropertyTypeResponse{
		ID:          p.ID,
		Slug:        p.Slug,
		Name:        p.Name,
		Summary:     p.Summary,
		Description: p.Description,
	}
}

func newProfileResponse(p model.BusinessProfile) ProfileResponse {
	return ProfileResponse{
		ID:      p.ID,
		Slug:    p.Slug,
		Name:    p.Name,
		Role:    p.Role,
		Summary: p.Summary,
	}
}

// newArticleResponse maps an article; the body is only included on detail
// lookups, list responses stay summary-only.
func newArticleResponse(a model.Article, includeBody bool) ArticleResponse {
	response := ArticleResponse{
		ID:          a.ID,
		Slug:        a.Slug,
		Title:       a.Title,
		Summary:     a.Summary,
		PublishedAt: a.PublishedAt.Format(time.DateOnly),
	}
	if includeBody {
		response.Body = a.Body
	}
	return response
}

// slugParam extracts and validates the slug URL parameter, writing the
// error response itself when validation fails.
func slugParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	slug := chi.URLParam(r, "slug")
	if err := validation.ValidateSlug(slug); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid slug",
			"detail": err.Error(),
		})
		return "", false
	}
	return slug, true
}

// respondLookupError distinguishes a missing row (404) from a retrieval
// failure (500).
func respondLookupError(w http.ResponseWriter, notFound, failed error, err error) {
	if errors.Is(err, notFound) {
		respondJSON(w, http.StatusNotFound, map[string]string{
			"error": notFound.Error(),
		})
		return
	}
	respondRetrievalError(w, failed, err)
}

func respondRetrievalError(w http.ResponseWriter, failed error, err error) {
	respondJSON(w, http.StatusInternalServerError, map[string]string{
		"error":  failed.Error(),
		"detail": err.Error(),
	})
}
