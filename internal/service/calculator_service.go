package service

import (
	"strings"
	"time"

	"github.com/keystone1031/exchange-tools/internal/calc"
	"github.com/keystone1031/exchange-tools/internal/config"
)

// CalculatorService adapts free-text tool input to the calculation engines.
// It owns the two impurities the engines refuse to carry: the configured
// illustrative defaults and the clock. The clock is injected so tests can
// pin "now"; production wires time.Now.
type CalculatorService struct {
	cfg config.CalculatorConfig
	now func() time.Time
}

// NewCalculatorService creates a new CalculatorService. now must not be nil.
func NewCalculatorService(cfg config.CalculatorConfig, now func() time.Time) *CalculatorService {
	return &CalculatorService{cfg: cfg, now: now}
}

// BootFigures are the raw text fields of the boot estimator form.
type BootFigures struct {
	RelinquishedValue string
	ReplacementValue  string
	CashReceived      string
	OldMortgage       string
	NewMortgage       string
}

// EstimateBoot sanitizes the form figures and runs the boot engine with the
// configured illustrative rate. Nil means no input has been entered yet.
func (s *CalculatorService) EstimateBoot(figures BootFigures) *calc.BootResult {
	inputs := calc.BootInputs{
		RelinquishedValue: calc.SanitizeAmount(figures.RelinquishedValue),
		ReplacementValue:  calc.SanitizeAmount(figures.ReplacementValue),
		CashReceived:      calc.SanitizeAmount(figures.CashReceived),
		OldMortgage:       calc.SanitizeAmount(figures.OldMortgage),
		NewMortgage:       calc.SanitizeAmount(figures.NewMortgage),
	}
	return calc.EstimateBoot(inputs, s.cfg.IllustrativeTaxRate)
}

// CostFigures are the raw text fields of the cost estimator form. Fields
// left blank fall back to the configured illustrative defaults; an explicit
// "0" overrides the default with zero.
type CostFigures struct {
	PropertyValue string
	QIFeePercent  string
	EscrowFee     string
	TitleRatePct  string
	RecordingFees string
}

// EstimateCosts sanitizes the form figures, applies defaults to blank
// fields, and runs the cost engine. Nil means the property value is missing.
func (s *CalculatorService) EstimateCosts(figures CostFigures) *calc.CostResult {
	inputs := calc.CostInputs{
		PropertyValue: calc.SanitizeAmount(figures.PropertyValue),
		QIFeePercent:  amountOrDefault(figures.QIFeePercent, s.cfg.QIFeePercent),
		EscrowFee:     amountOrDefault(figures.EscrowFee, s.cfg.EscrowFee),
		TitleRatePct:  amountOrDefault(figures.TitleRatePct, s.cfg.TitleRatePercent),
		RecordingFees: amountOrDefault(figures.RecordingFees, s.cfg.RecordingFees),
	}
	return calc.EstimateCosts(inputs)
}

// IdentificationFigures are the raw text fields of the identification
// worksheet: the relinquished value plus one value string per row.
type IdentificationFigures struct {
	RelinquishedValue string
	PropertyValues    []string
}

// ValidateIdentification sanitizes the worksheet figures and runs the rule
// validator. Nil means there is not enough input yet.
func (s *CalculatorService) ValidateIdentification(figures IdentificationFigures) *calc.IdentificationResult {
	inputs := calc.IdentificationInputs{
		RelinquishedValue: calc.SanitizeAmount(figures.RelinquishedValue),
	}
	for i, raw := range figures.PropertyValues {
		inputs.IdentifiedProperties = append(inputs.IdentifiedProperties, calc.IdentifiedProperty{
			ID:    i + 1,
			Value: calc.SanitizeAmount(raw),
		})
	}
	return calc.ValidateIdentification(inputs)
}

// ComputeDeadlines parses the closing date and derives the exchange
// deadlines against the current clock. Nil means no valid closing date.
func (s *CalculatorService) ComputeDeadlines(closingDate string) *calc.DeadlineResult {
	return calc.ComputeDeadlines(calc.ParseClosingDate(closingDate), s.now())
}

// BuildTimeline parses the closing date and builds the milestone timeline
// against the current clock. Nil means no valid closing date.
func (s *CalculatorService) BuildTimeline(closingDate string) []calc.TimelineMilestone {
	return calc.BuildTimeline(calc.ParseClosingDate(closingDate), s.now())
}

// amountOrDefault distinguishes a blank field (use the default) from an
// entered zero (keep the zero).
func amountOrDefault(raw string, def float64) float64 {
	if strings.TrimSpace(raw) == "" {
		return def
	}
	return calc.SanitizeAmount(raw)
}
