package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/keystone1031/exchange-tools/internal/config"
	"github.com/keystone1031/exchange-tools/internal/repository"
	"github.com/keystone1031/exchange-tools/internal/service"
)

// FixedNow is the frozen evaluation time used by calculator tests so
// deadline countdowns and milestone statuses are deterministic.
var FixedNow = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

// DefaultCalculatorConfig mirrors the production fallback defaults.
func DefaultCalculatorConfig() config.CalculatorConfig {
	return config.CalculatorConfig{
		IllustrativeTaxRate: 0.20,
		QIFeePercent:        1.5,
		EscrowFee:           1500,
		TitleRatePercent:    0.65,
		RecordingFees:       75,
	}
}

// NewTestCalculatorService creates a CalculatorService with the default
// config and a clock frozen at FixedNow.
func NewTestCalculatorService(t *testing.T) *service.CalculatorService {
	t.Helper()

	return service.NewCalculatorService(DefaultCalculatorConfig(), func() time.Time {
		return FixedNow
	})
}

// NewTestReferenceService creates a ReferenceService backed by the given
// test database.
func NewTestReferenceService(t *testing.T, db *sql.DB) *service.ReferenceService {
	t.Helper()

	return service.NewReferenceService(repository.NewReferenceRepository(db))
}

// NewTestSystemService creates a SystemService backed by the given test
// database.
func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}
