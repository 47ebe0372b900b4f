package service_test

import (
	"math"
	"testing"
	"time"

	"github.com/keystone1031/exchange-tools/internal/service"
	"github.com/keystone1031/exchange-tools/internal/testutil"
)

// TestCalculatorService_EstimateBoot tests the service-level boot flow.
//
// WHY: The service is where raw form text meets the engine. These tests
// cover the sanitization hand-off and the configured-rate injection, which
// the pure engine tests cannot see.
func TestCalculatorService_EstimateBoot(t *testing.T) {
	t.Run("sanitizes currency-formatted form input", func(t *testing.T) {
		svc := testutil.NewTestCalculatorService(t)

		result := svc.EstimateBoot(service.BootFigures{
			RelinquishedValue: "$600,000",
			ReplacementValue:  "550000",
			CashReceived:      "20,000",
			OldMortgage:       "$300,000.00",
			NewMortgage:       "250000",
		})

		if result == nil {
			t.Fatal("Expected result, got nil")
		}
		if result.TotalBoot != 120000 {
			t.Errorf("Expected total boot 120000, got %v", result.TotalBoot)
		}
		if result.EstimatedTax != 24000 {
			t.Errorf("Expected estimated tax 24000, got %v", result.EstimatedTax)
		}
	})

	t.Run("treats garbage input as empty state", func(t *testing.T) {
		svc := testutil.NewTestCalculatorService(t)

		result := svc.EstimateBoot(service.BootFigures{
			RelinquishedValue: "abc",
			OldMortgage:       "---",
		})

		if result != nil {
			t.Errorf("Expected nil result for unparseable input, got %+v", result)
		}
	})
}

// TestCalculatorService_EstimateCosts tests default handling in the cost flow.
//
// WHY: Blank fields fall back to configured defaults but an explicit zero
// must win over the default; the distinction lives in the service layer.
func TestCalculatorService_EstimateCosts(t *testing.T) {
	t.Run("applies configured defaults to blank fields", func(t *testing.T) {
		svc := testutil.NewTestCalculatorService(t)

		result := svc.EstimateCosts(service.CostFigures{PropertyValue: "500000"})

		if result == nil {
			t.Fatal("Expected result, got nil")
		}
		// 1.5% QI + 1500 escrow + 0.65% title + 75 recording on 500000.
		if math.Abs(result.TotalCosts-12325) > 1e-9 {
			t.Errorf("Expected total costs 12325 from defaults, got %v", result.TotalCosts)
		}
	})

	t.Run("explicit zero overrides a default", func(t *testing.T) {
		svc := testutil.NewTestCalculatorService(t)

		result := svc.EstimateCosts(service.CostFigures{
			PropertyValue: "500000",
			EscrowFee:     "0",
		})

		if result == nil {
			t.Fatal("Expected result, got nil")
		}
		if math.Abs(result.TotalCosts-10825) > 1e-9 {
			t.Errorf("Expected total costs 10825 with zero escrow, got %v", result.TotalCosts)
		}
	})

	t.Run("missing property value yields empty state", func(t *testing.T) {
		svc := testutil.NewTestCalculatorService(t)

		if result := svc.EstimateCosts(service.CostFigures{}); result != nil {
			t.Errorf("Expected nil result without property value, got %+v", result)
		}
	})
}

// TestCalculatorService_ValidateIdentification tests the worksheet flow.
func TestCalculatorService_ValidateIdentification(t *testing.T) {
	t.Run("sanitizes and filters row values", func(t *testing.T) {
		svc := testutil.NewTestCalculatorService(t)

		result := svc.ValidateIdentification(service.IdentificationFigures{
			RelinquishedValue: "$500,000",
			PropertyValues:    []string{"250,000", "", "not a number", "$150,000"},
		})

		if result == nil {
			t.Fatal("Expected result, got nil")
		}
		if result.IdentifiedCount != 2 {
			t.Errorf("Expected 2 counted rows, got %d", result.IdentifiedCount)
		}
		if result.TotalIdentifiedValue != 400000 {
			t.Errorf("Expected total 400000, got %v", result.TotalIdentifiedValue)
		}
	})

	t.Run("empty worksheet yields empty state", func(t *testing.T) {
		svc := testutil.NewTestCalculatorService(t)

		result := svc.ValidateIdentification(service.IdentificationFigures{
			RelinquishedValue: "500000",
			PropertyValues:    []string{"", ""},
		})

		if result != nil {
			t.Errorf("Expected nil result for empty worksheet, got %+v", result)
		}
	})
}

// TestCalculatorService_Deadlines tests the clock injection.
//
// WHY: "Now" comes from the injected clock, not the ambient one, so frozen
// test time must produce exact day counts.
func TestCalculatorService_Deadlines(t *testing.T) {
	t.Run("computes countdowns against the injected clock", func(t *testing.T) {
		svc := testutil.NewTestCalculatorService(t)

		// FixedNow is 2024-01-01; closing the same day leaves the full windows.
		result := svc.ComputeDeadlines("2024-01-01")

		if result == nil {
			t.Fatal("Expected result, got nil")
		}
		if result.Identification.DaysRemaining != 45 {
			t.Errorf("Expected 45 days remaining, got %d", result.Identification.DaysRemaining)
		}
		if result.FinalExchange.DaysRemaining != 180 {
			t.Errorf("Expected 180 days remaining, got %d", result.FinalExchange.DaysRemaining)
		}
	})

	t.Run("unparseable closing date yields empty state", func(t *testing.T) {
		svc := testutil.NewTestCalculatorService(t)

		if result := svc.ComputeDeadlines("01/01/2024"); result != nil {
			t.Errorf("Expected nil result for non-ISO date, got %+v", result)
		}
		if timeline := svc.BuildTimeline(""); timeline != nil {
			t.Errorf("Expected nil timeline for empty date, got %d entries", len(timeline))
		}
	})

	t.Run("timeline statuses reflect the injected clock", func(t *testing.T) {
		svc := testutil.NewTestCalculatorService(t)

		timeline := svc.BuildTimeline(testutil.FixedNow.Format(time.DateOnly))

		if len(timeline) != 8 {
			t.Fatalf("Expected 8 milestones, got %d", len(timeline))
		}
		if timeline[0].Status != "current" {
			t.Errorf("Expected closing milestone current on closing day, got %q", timeline[0].Status)
		}
		if timeline[7].Status != "upcoming" {
			t.Errorf("Expected reporting milestone upcoming, got %q", timeline[7].Status)
		}
	})
}
