package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/keystone1031/exchange-tools/internal/api/handlers"
	"github.com/keystone1031/exchange-tools/internal/testutil"
	"github.com/keystone1031/exchange-tools/internal/version"
)

// TestSystemHandler_Health tests the health check endpoint.
func TestSystemHandler_Health(t *testing.T) {
	t.Run("reports healthy with a reachable database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSystemHandler(testutil.NewTestSystemService(t, db))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()

		handler.Health(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var response handlers.HealthResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.Status != "healthy" {
			t.Errorf("Expected status healthy, got %q", response.Status)
		}
		if response.Database != "connected" {
			t.Errorf("Expected database connected, got %q", response.Database)
		}
	})

	t.Run("reports unhealthy when the database is closed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSystemHandler(testutil.NewTestSystemService(t, db))

		db.Close()

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()

		handler.Health(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("Expected status 503, got %d", w.Code)
		}

		var response handlers.HealthResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.Status != "unhealthy" {
			t.Errorf("Expected status unhealthy, got %q", response.Status)
		}
		if response.Error == "" {
			t.Error("Expected an error detail")
		}
	})
}

// TestSystemHandler_Version tests the version endpoint.
func TestSystemHandler_Version(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewSystemHandler(testutil.NewTestSystemService(t, db))

	req := httptest.NewRequest(http.MethodGet, "/api/system/version", nil)
	w := httptest.NewRecorder()

	handler.Version(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response handlers.VersionInfoResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.AppVersion != version.Version {
		t.Errorf("Expected app version %q, got %q", version.Version, response.AppVersion)
	}
	if response.SchemaVersion != version.SchemaVersion {
		t.Errorf("Expected schema version %q, got %q", version.SchemaVersion, response.SchemaVersion)
	}
}
