package calc_test

import (
	"errors"
	"testing"

	"github.com/keystone1031/exchange-tools/internal/apperrors"
	"github.com/keystone1031/exchange-tools/internal/calc"
)

func identificationInputs(relinquished float64, values ...float64) calc.IdentificationInputs {
	in := calc.IdentificationInputs{RelinquishedValue: relinquished}
	for i, v := range values {
		in.IdentifiedProperties = append(in.IdentifiedProperties, calc.IdentifiedProperty{ID: i + 1, Value: v})
	}
	return in
}

// TestValidateIdentification tests the IRS identification rule validator.
//
// WHY: The three rules are the legal substance of the tool. Each rule's
// boundary (count of 3, the inclusive 200% limit, the always-informational
// 95% rule) is pinned here so a refactor cannot silently shift a verdict.
func TestValidateIdentification(t *testing.T) {
	t.Run("returns nil without a relinquished value", func(t *testing.T) {
		result := calc.ValidateIdentification(identificationInputs(0, 250000))

		if result != nil {
			t.Errorf("Expected nil result without relinquished value, got %+v", result)
		}
	})

	t.Run("returns nil when no property has a positive value", func(t *testing.T) {
		result := calc.ValidateIdentification(identificationInputs(500000, 0, 0))

		if result != nil {
			t.Errorf("Expected nil result without valid rows, got %+v", result)
		}
	})

	t.Run("filters zero-value rows before evaluation", func(t *testing.T) {
		result := calc.ValidateIdentification(identificationInputs(500000, 200000, 0, 150000, 0))

		if result == nil {
			t.Fatal("Expected result, got nil")
		}
		if result.IdentifiedCount != 2 {
			t.Errorf("Expected 2 counted properties, got %d", result.IdentifiedCount)
		}
		if result.TotalIdentifiedValue != 350000 {
			t.Errorf("Expected total 350000, got %v", result.TotalIdentifiedValue)
		}
	})

	t.Run("three-property rule passes at exactly three regardless of value", func(t *testing.T) {
		result := calc.ValidateIdentification(identificationInputs(500000, 9000000, 8000000, 7000000))

		if result == nil {
			t.Fatal("Expected result, got nil")
		}
		rule := findRule(t, result, calc.RuleThreeProperty)
		if !rule.Passes {
			t.Error("Expected three-property rule to pass with 3 properties of any value")
		}
	})

	t.Run("three-property rule fails at four", func(t *testing.T) {
		result := calc.ValidateIdentification(identificationInputs(500000, 100, 100, 100, 100))

		if result == nil {
			t.Fatal("Expected result, got nil")
		}
		rule := findRule(t, result, calc.RuleThreeProperty)
		if rule.Passes {
			t.Error("Expected three-property rule to fail with 4 properties")
		}
		if result.AllRulesPass {
			t.Error("Expected aggregate to fail when one rule fails")
		}
		if result.Status != "warning" {
			t.Errorf("Expected warning status, got %q", result.Status)
		}
	})

	t.Run("200 percent rule boundary is inclusive", func(t *testing.T) {
		atLimit := calc.ValidateIdentification(identificationInputs(500000, 600000, 400000))
		if atLimit == nil {
			t.Fatal("Expected result, got nil")
		}
		if !findRule(t, atLimit, calc.RuleTwoHundredPct).Passes {
			t.Error("Expected 200%% rule to pass at exactly twice the relinquished value")
		}

		overLimit := calc.ValidateIdentification(identificationInputs(500000, 600000, 400001))
		if overLimit == nil {
			t.Fatal("Expected result, got nil")
		}
		if findRule(t, overLimit, calc.RuleTwoHundredPct).Passes {
			t.Error("Expected 200%% rule to fail one dollar over the limit")
		}
	})

	t.Run("95 percent rule always passes at identification time", func(t *testing.T) {
		cases := []calc.IdentificationInputs{
			identificationInputs(500000, 100),
			identificationInputs(500000, 5000000, 5000000, 5000000, 5000000),
			identificationInputs(1, 99999999),
		}

		for _, in := range cases {
			result := calc.ValidateIdentification(in)
			if result == nil {
				t.Fatalf("Expected result for %+v, got nil", in)
			}
			if !findRule(t, result, calc.RuleNinetyFivePct).Passes {
				t.Error("Expected 95%% rule to report a pass regardless of inputs")
			}
		}
	})

	t.Run("all three rules always evaluated", func(t *testing.T) {
		result := calc.ValidateIdentification(identificationInputs(100000, 1e9, 1e9, 1e9, 1e9))

		if result == nil {
			t.Fatal("Expected result, got nil")
		}
		if len(result.RuleResults) != 3 {
			t.Fatalf("Expected 3 rule results, got %d", len(result.RuleResults))
		}
		for _, rule := range result.RuleResults {
			if rule.Message == "" {
				t.Errorf("Rule %s missing message", rule.RuleID)
			}
		}
	})

	t.Run("success status when every rule passes", func(t *testing.T) {
		result := calc.ValidateIdentification(identificationInputs(500000, 450000, 300000))

		if result == nil {
			t.Fatal("Expected result, got nil")
		}
		if !result.AllRulesPass {
			t.Error("Expected all rules to pass")
		}
		if result.Status != "success" {
			t.Errorf("Expected success status, got %q", result.Status)
		}
	})
}

// TestPropertyList tests the identification worksheet operations.
//
// WHY: The worksheet backs the add/remove UI. The one-row floor and the
// never-reused monotonic IDs are the two behaviors the UI depends on for
// row correlation.
func TestPropertyList(t *testing.T) {
	t.Run("starts with one empty row", func(t *testing.T) {
		list := calc.NewPropertyList()

		rows := list.Rows()
		if len(rows) != 1 {
			t.Fatalf("Expected 1 initial row, got %d", len(rows))
		}
		if rows[0].Value != 0 {
			t.Errorf("Expected empty initial row, got value %v", rows[0].Value)
		}
	})

	t.Run("assigns monotonically increasing IDs", func(t *testing.T) {
		list := calc.NewPropertyList()

		second := list.Add()
		third := list.Add()

		if err := list.Remove(second); err != nil {
			t.Fatalf("Remove returned unexpected error: %v", err)
		}

		fourth := list.Add()
		if fourth <= third {
			t.Errorf("Expected new ID above %d after removal, got %d", third, fourth)
		}
	})

	t.Run("refuses to remove the last row", func(t *testing.T) {
		list := calc.NewPropertyList()
		rows := list.Rows()

		err := list.Remove(rows[0].ID)
		if !errors.Is(err, apperrors.ErrLastProperty) {
			t.Errorf("Expected ErrLastProperty, got %v", err)
		}
		if len(list.Rows()) != 1 {
			t.Errorf("Expected row to survive failed removal, got %d rows", len(list.Rows()))
		}
	})

	t.Run("set value targets the row by ID", func(t *testing.T) {
		list := calc.NewPropertyList()
		second := list.Add()

		if err := list.SetValue(second, 425000); err != nil {
			t.Fatalf("SetValue returned unexpected error: %v", err)
		}

		rows := list.Rows()
		if rows[1].Value != 425000 {
			t.Errorf("Expected second row value 425000, got %v", rows[1].Value)
		}
		if rows[0].Value != 0 {
			t.Errorf("Expected first row untouched, got %v", rows[0].Value)
		}
	})

	t.Run("unknown IDs are reported", func(t *testing.T) {
		list := calc.NewPropertyList()
		list.Add()

		if err := list.SetValue(999, 1); !errors.Is(err, apperrors.ErrPropertyRowNotFound) {
			t.Errorf("Expected ErrPropertyRowNotFound from SetValue, got %v", err)
		}
		if err := list.Remove(999); !errors.Is(err, apperrors.ErrPropertyRowNotFound) {
			t.Errorf("Expected ErrPropertyRowNotFound from Remove, got %v", err)
		}
	})
}

func findRule(t *testing.T, result *calc.IdentificationResult, ruleID string) calc.RuleResult {
	t.Helper()
	for _, rule := range result.RuleResults {
		if rule.RuleID == ruleID {
			return rule
		}
	}
	t.Fatalf("Rule %s not found in results", ruleID)
	return calc.RuleResult{}
}
