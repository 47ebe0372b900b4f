// Package request defines the JSON request bodies accepted by the API.
// Calculator fields are strings because the tools forward raw form text;
// sanitization happens in the service layer, never in the decoder.
package request

// BootRequest carries the boot estimator form fields.
type BootRequest struct {
	RelinquishedValue string `json:"relinquishedValue"`
	ReplacementValue  string `json:"replacementValue"`
	CashReceived      string `json:"cashReceived"`
	OldMortgage       string `json:"oldMortgage"`
	NewMortgage       string `json:"newMortgage"`
}

// CostRequest carries the cost estimator form fields. Blank fee and rate
// fields fall back to the configured defaults.
type CostRequest struct {
	PropertyValue string `json:"propertyValue"`
	QIFeePercent  string `json:"qiFeePercentage"`
	EscrowFee     string `json:"escrowFee"`
	TitleRate     string `json:"titleRate"`
	RecordingFees string `json:"recordingFees"`
}

// IdentificationRequest carries the identification worksheet fields.
type IdentificationRequest struct {
	RelinquishedValue string   `json:"relinquishedValue"`
	PropertyValues    []string `json:"propertyValues"`
}

// DeadlineRequest carries the closing date for the deadline and timeline
// calculators, as an ISO calendar date (YYYY-MM-DD).
type DeadlineRequest struct {
	ClosingDate string `json:"closingDate"`
}
