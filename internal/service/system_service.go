package service

import (
	"database/sql"

	"github.com/keystone1031/exchange-tools/internal/database"
	"github.com/keystone1031/exchange-tools/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// VersionInfo describes the running build.
type VersionInfo struct {
	AppVersion    string
	SchemaVersion string
}

// CheckVersion reports build and schema version information.
func (s *SystemService) CheckVersion() VersionInfo {
	return VersionInfo{
		AppVersion:    version.Version,
		SchemaVersion: version.SchemaVersion,
	}
}
