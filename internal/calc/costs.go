package calc

// CostInputs are the figures for an exchange closing-cost estimate.
// Percentages are expressed as percent values (1.5 means 1.5%), not
// fractions. Zero fees and rates are accepted as entered.
type CostInputs struct {
	PropertyValue float64
	QIFeePercent  float64
	EscrowFee     float64
	TitleRatePct  float64
	RecordingFees float64
}

// CostLineItem is one entry of the cost breakdown. Percent-based items
// carry their rate for display; flat fees carry a nil Percentage.
type CostLineItem struct {
	Name       string
	Amount     float64
	Percentage *float64
}

// CostResult is an itemized closing-cost estimate with display ratios.
type CostResult struct {
	Breakdown      []CostLineItem
	TotalCosts     float64
	PercentOfValue float64 // total costs as a percentage of property value
	CostPer100K    float64 // total costs per $100,000 of property value
}

// EstimateCosts produces the itemized estimate in stable display order:
// QI fee, escrow fee, title insurance, recording fees. A nil result means
// the property value has not been entered yet; the ratios are only computed
// behind that guard, so there is no zero divisor.
func EstimateCosts(in CostInputs) *CostResult {
	if in.PropertyValue <= 0 {
		return nil
	}

	qiFee := in.PropertyValue * in.QIFeePercent / 100
	titleInsurance := in.PropertyValue * in.TitleRatePct / 100

	qiPct := in.QIFeePercent
	titlePct := in.TitleRatePct

	result := &CostResult{
		Breakdown: []CostLineItem{
			{Name: "Qualified Intermediary Fee", Amount: qiFee, Percentage: &qiPct},
			{Name: "Escrow Fee", Amount: in.EscrowFee, Percentage: nil},
			{Name: "Title Insurance", Amount: titleInsurance, Percentage: &titlePct},
			{Name: "Recording Fees", Amount: in.RecordingFees, Percentage: nil},
		},
	}
	result.TotalCosts = qiFee + in.EscrowFee + titleInsurance + in.RecordingFees
	result.PercentOfValue = result.TotalCosts / in.PropertyValue * 100
	result.CostPer100K = result.TotalCosts / in.PropertyValue * 100000

	return result
}
