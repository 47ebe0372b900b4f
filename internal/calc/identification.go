package calc

import "github.com/keystone1031/exchange-tools/internal/apperrors"

// Rule identifiers for the three IRS identification methods.
const (
	RuleThreeProperty    = "three-property"
	RuleTwoHundredPct    = "200-percent"
	RuleNinetyFivePct    = "95-percent"
	maxIdentifiedByCount = 3
)

// IdentifiedProperty is one row of the identification worksheet. The ID is
// caller-assigned and used only to correlate add/remove operations; the
// rules themselves only see values.
type IdentifiedProperty struct {
	ID    int
	Value float64
}

// IdentificationInputs are the figures for a rule validation pass.
type IdentificationInputs struct {
	RelinquishedValue    float64
	IdentifiedProperties []IdentifiedProperty
}

// RuleResult is the verdict for a single identification rule.
type RuleResult struct {
	RuleID  string
	Title   string
	Passes  bool
	Message string
}

// IdentificationResult aggregates the three rule verdicts.
// Status is "success" when every rule passes and "warning" otherwise.
type IdentificationResult struct {
	IdentifiedCount      int
	TotalIdentifiedValue float64
	RuleResults          []RuleResult
	AllRulesPass         bool
	Status               string
}

// ValidateIdentification evaluates the Three-Property, 200%, and 95% rules
// against the identified replacement properties. Rows with a zero or
// negative value are ignored rather than rejected. A nil result means there
// is not enough input yet: either no relinquished value or no valid rows.
//
// All three rules always run; there is no short-circuiting, because each
// verdict is displayed independently.
func ValidateIdentification(in IdentificationInputs) *IdentificationResult {
	if in.RelinquishedValue <= 0 {
		return nil
	}

	count := 0
	total := 0.0
	for _, p := range in.IdentifiedProperties {
		if p.Value > 0 {
			count++
			total += p.Value
		}
	}
	if count == 0 {
		return nil
	}

	result := &IdentificationResult{
		IdentifiedCount:      count,
		TotalIdentifiedValue: total,
		RuleResults: []RuleResult{
			threePropertyRule(count),
			twoHundredPercentRule(total, in.RelinquishedValue),
			ninetyFivePercentRule(),
		},
	}

	result.AllRulesPass = true
	for _, r := range result.RuleResults {
		if !r.Passes {
			result.AllRulesPass = false
		}
	}

	result.Status = "warning"
	if result.AllRulesPass {
		result.Status = "success"
	}

	return result
}

// threePropertyRule passes when at most three properties are identified,
// regardless of their combined value.
func threePropertyRule(count int) RuleResult {
	r := RuleResult{
		RuleID: RuleThreeProperty,
		Title:  "Three-Property Rule",
		Passes: count <= maxIdentifiedByCount,
	}
	if r.Passes {
		r.Message = "You may identify up to three properties of any value."
	} else {
		r.Message = "More than three properties identified; the 200% or 95% rule must apply instead."
	}
	return r
}

// twoHundredPercentRule passes when the combined identified value does not
// exceed twice the relinquished value. The boundary is inclusive.
func twoHundredPercentRule(total, relinquished float64) RuleResult {
	limit := 2 * relinquished
	r := RuleResult{
		RuleID: RuleTwoHundredPct,
		Title:  "200% Rule",
		Passes: total <= limit,
	}
	if r.Passes {
		r.Message = "Combined identified value is within 200% of the relinquished property value."
	} else {
		r.Message = "Combined identified value exceeds 200% of the relinquished property value."
	}
	return r
}

// ninetyFivePercentRule always reports a pass at identification time. The
// rule constrains the acquisition phase (95% of identified value must
// actually be acquired), so it cannot fail while properties are merely
// being identified; the verdict is informational.
func ninetyFivePercentRule() RuleResult {
	return RuleResult{
		RuleID:  RuleNinetyFivePct,
		Title:   "95% Rule",
		Passes:  true,
		Message: "If you exceed the other limits, you must acquire 95% of the total identified value.",
	}
}

// PropertyList is an ordered worksheet of identified properties with
// caller-facing add/remove operations. IDs come from a monotonically
// increasing counter and are never reused, so a removed row's ID stays
// dead. New lists start with a single empty row.
type PropertyList struct {
	rows   []IdentifiedProperty
	nextID int
}

// NewPropertyList creates a worksheet with one empty row.
func NewPropertyList() *PropertyList {
	l := &PropertyList{nextID: 1}
	l.Add()
	return l
}

// Add appends an empty row and returns its assigned ID.
func (l *PropertyList) Add() int {
	id := l.nextID
	l.nextID++
	l.rows = append(l.rows, IdentifiedProperty{ID: id})
	return id
}

// Remove deletes the row with the given ID. The worksheet keeps a floor of
// one row; removing the last remaining row returns ErrLastProperty.
func (l *PropertyList) Remove(id int) error {
	if len(l.rows) <= 1 {
		return apperrors.ErrLastProperty
	}
	for i, row := range l.rows {
		if row.ID == id {
			l.rows = append(l.rows[:i], l.rows[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrPropertyRowNotFound
}

// SetValue updates the value of the row with the given ID.
func (l *PropertyList) SetValue(id int, value float64) error {
	for i := range l.rows {
		if l.rows[i].ID == id {
			l.rows[i].Value = value
			return nil
		}
	}
	return apperrors.ErrPropertyRowNotFound
}

// Rows returns the worksheet rows in insertion order.
func (l *PropertyList) Rows() []IdentifiedProperty {
	out := make([]IdentifiedProperty, len(l.rows))
	copy(out, l.rows)
	return out
}
