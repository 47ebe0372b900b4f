package calc

// DefaultIllustrativeTaxRate is the fallback rate applied to total boot when
// no rate is configured. It is a placeholder with no regulatory basis and
// must be labeled illustrative wherever the estimate is surfaced.
const DefaultIllustrativeTaxRate = 0.20

// BootInputs are the transaction figures for a boot estimate. All amounts
// are non-negative; unset fields are zero.
type BootInputs struct {
	RelinquishedValue float64
	ReplacementValue  float64
	CashReceived      float64
	OldMortgage       float64
	NewMortgage       float64
}

// BootResult is the outcome of a boot estimate.
//
// Boot is the taxable (non-deferred) portion of an exchange. It arises three
// ways, computed independently and summed:
//   - mortgage boot: debt relief not replaced (old mortgage minus new)
//   - cash boot: cash taken out of the exchange
//   - property boot: trade-down in value (relinquished minus replacement)
//
// Negative components are clamped to zero, never reported as credits.
type BootResult struct {
	MortgageBoot float64
	CashBoot     float64
	PropertyBoot float64
	TotalBoot    float64
	EstimatedTax float64
	TaxRate      float64
}

// EstimateBoot computes the boot breakdown and an illustrative tax estimate.
// A nil result means no input has been entered yet (all fields zero); a
// zero-valued result means the inputs genuinely produce no boot. A taxRate
// of zero or below falls back to DefaultIllustrativeTaxRate.
func EstimateBoot(in BootInputs, taxRate float64) *BootResult {
	if in.RelinquishedValue == 0 && in.ReplacementValue == 0 &&
		in.CashReceived == 0 && in.OldMortgage == 0 && in.NewMortgage == 0 {
		return nil
	}

	if taxRate <= 0 {
		taxRate = DefaultIllustrativeTaxRate
	}

	result := &BootResult{
		MortgageBoot: max(0, in.OldMortgage-in.NewMortgage),
		CashBoot:     in.CashReceived,
		PropertyBoot: max(0, in.RelinquishedValue-in.ReplacementValue),
		TaxRate:      taxRate,
	}
	result.TotalBoot = result.MortgageBoot + result.CashBoot + result.PropertyBoot
	result.EstimatedTax = result.TotalBoot * taxRate

	return result
}
