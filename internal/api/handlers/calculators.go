package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/keystone1031/exchange-tools/internal/api/request"
	"github.com/keystone1031/exchange-tools/internal/calc"
	"github.com/keystone1031/exchange-tools/internal/service"
)

// taxDisclaimer accompanies every tax estimate. The rate is a configured
// placeholder, not tax advice, and the response says so.
const taxDisclaimer = "Estimated tax uses an illustrative rate with no regulatory basis. Consult a tax advisor for an authoritative figure."

// CalculatorHandler handles the financial tool HTTP requests. The
// calculators never reject input: malformed numbers coerce to zero and
// insufficient input produces a 200 with valid=false, mirroring the
// empty-state behavior of the on-page tools.
type CalculatorHandler struct {
	calculatorService *service.CalculatorService
}

// NewCalculatorHandler creates a new CalculatorHandler
func NewCalculatorHandler(calculatorService *service.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{
		calculatorService: calculatorService,
	}
}

// BootResponse represents the boot estimate response. Amounts are raw
// numbers; Display carries the currency-formatted strings the page renders.
type BootResponse struct {
	Valid         bool         `json:"valid"`
	MortgageBoot  float64      `json:"mortgageBoot"`
	CashBoot      float64      `json:"cashBoot"`
	PropertyBoot  float64      `json:"propertyBoot"`
	TotalBoot     float64      `json:"totalBoot"`
	EstimatedTax  float64      `json:"estimatedTax"`
	TaxRate       float64      `json:"taxRate,omitempty"`
	TaxDisclaimer string       `json:"taxDisclaimer,omitempty"`
	Display       *BootDisplay `json:"display,omitempty"`
}

// BootDisplay carries the formatted rendering of a boot estimate.
type BootDisplay struct {
	MortgageBoot string `json:"mortgageBoot"`
	CashBoot     string `json:"cashBoot"`
	PropertyBoot string `json:"propertyBoot"`
	TotalBoot    string `json:"totalBoot"`
	EstimatedTax string `json:"estimatedTax"`
}

// EstimateBoot handles POST requests to the boot and tax estimator.
//
// Endpoint: POST /api/calculators/boot
// Response: 200 OK with BootResponse; valid=false when nothing entered yet
func (h *CalculatorHandler) EstimateBoot(w http.ResponseWriter, r *http.Request) {
	var req request.BootRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	result := h.calculatorService.EstimateBoot(service.BootFigures{
		RelinquishedValue: req.RelinquishedValue,
		ReplacementValue:  req.ReplacementValue,
		CashReceived:      req.CashReceived,
		OldMortgage:       req.OldMortgage,
		NewMortgage:       req.NewMortgage,
	})
	if result == nil {
		respondJSON(w, http.StatusOK, BootResponse{Valid: false})
		return
	}

	respondJSON(w, http.StatusOK, BootResponse{
		Valid:         true,
		MortgageBoot:  result.MortgageBoot,
		CashBoot:      result.CashBoot,
		PropertyBoot:  result.PropertyBoot,
		TotalBoot:     result.TotalBoot,
		EstimatedTax:  result.EstimatedTax,
		TaxRate:       result.TaxRate,
		TaxDisclaimer: taxDisclaimer,
		Display: &BootDisplay{
			MortgageBoot: calc.USD(result.MortgageBoot),
			CashBoot:     calc.USD(result.CashBoot),
			PropertyBoot: calc.USD(result.PropertyBoot),
			TotalBoot:    calc.USD(result.TotalBoot),
			EstimatedTax: calc.USD(result.EstimatedTax),
		},
	})
}

// CostLineItemResponse is one line of the cost breakdown.
type CostLineItemResponse struct {
	Name            string   `json:"name"`
	Amount          float64  `json:"amount"`
	Percentage      *float64 `json:"percentage"`
	FormattedAmount string   `json:"formattedAmount"`
}

// CostResponse represents the cost estimate response.
type CostResponse struct {
	Valid               bool                   `json:"valid"`
	Breakdown           []CostLineItemResponse `json:"breakdown,omitempty"`
	TotalCosts          float64                `json:"totalCosts"`
	FormattedTotalCosts string                 `json:"formattedTotalCosts,omitempty"`
	PercentOfValue      float64                `json:"percentOfValue"`
	CostPer100K         float64                `json:"costPer100k"`
}

// EstimateCosts handles POST requests to the exchange cost estimator.
//
// Endpoint: POST /api/calculators/costs
// Response: 200 OK with CostResponse; valid=false without a property value
func (h *CalculatorHandler) EstimateCosts(w http.ResponseWriter, r *http.Request) {
	var req request.CostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	result := h.calculatorService.EstimateCosts(service.CostFigures{
		PropertyValue: req.PropertyValue,
		QIFeePercent:  req.QIFeePercent,
		EscrowFee:     req.EscrowFee,
		TitleRatePct:  req.TitleRate,
		RecordingFees: req.RecordingFees,
	})
	if result == nil {
		respondJSON(w, http.StatusOK, CostResponse{Valid: false})
		return
	}

	breakdown := make([]CostLineItemResponse, len(result.Breakdown))
	for i, item := range result.Breakdown {
		breakdown[i] = CostLineItemResponse{
			Name:            item.Name,
			Amount:          item.Amount,
			Percentage:      item.Percentage,
			FormattedAmount: calc.USD(item.Amount),
		}
	}

	respondJSON(w, http.StatusOK, CostResponse{
		Valid:               true,
		Breakdown:           breakdown,
		TotalCosts:          result.TotalCosts,
		FormattedTotalCosts: calc.USD(result.TotalCosts),
		PercentOfValue:      result.PercentOfValue,
		CostPer100K:         result.CostPer100K,
	})
}

// RuleResultResponse is the verdict for one identification rule.
type RuleResultResponse struct {
	RuleID  string `json:"ruleId"`
	Title   string `json:"title"`
	Passes  bool   `json:"passes"`
	Message string `json:"message"`
}

// IdentificationResponse represents the rule validation response.
type IdentificationResponse struct {
	Valid                bool                 `json:"valid"`
	IdentifiedCount      int                  `json:"identifiedCount"`
	TotalIdentifiedValue float64              `json:"totalIdentifiedValue"`
	Rules                []RuleResultResponse `json:"rules,omitempty"`
	AllRulesPass         bool                 `json:"allRulesPass"`
	Status               string               `json:"status,omitempty"`
}

// ValidateIdentification handles POST requests to the rule validator.
//
// Endpoint: POST /api/calculators/identification
// Response: 200 OK with IdentificationResponse; valid=false until both a
// relinquished value and at least one property value are present
func (h *CalculatorHandler) ValidateIdentification(w http.ResponseWriter, r *http.Request) {
	var req request.IdentificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	result := h.calculatorService.ValidateIdentification(service.IdentificationFigures{
		RelinquishedValue: req.RelinquishedValue,
		PropertyValues:    req.PropertyValues,
	})
	if result == nil {
		respondJSON(w, http.StatusOK, IdentificationResponse{Valid: false})
		return
	}

	rules := make([]RuleResultResponse, len(result.RuleResults))
	for i, rule := range result.RuleResults {
		rules[i] = RuleResultResponse{
			RuleID:  rule.RuleID,
			Title:   rule.Title,
			Passes:  rule.Passes,
			Message: rule.Message,
		}
	}

	respondJSON(w, http.StatusOK, IdentificationResponse{
		Valid:                true,
		IdentifiedCount:      result.IdentifiedCount,
		TotalIdentifiedValue: result.TotalIdentifiedValue,
		Rules:                rules,
		AllRulesPass:         result.AllRulesPass,
		Status:               result.Status,
	})
}

// DeadlineEntryResponse is one dated deadline with its countdown.
type DeadlineEntryResponse struct {
	Date          string `json:"date"`
	DaysRemaining int    `json:"daysRemaining"`
	Overdue       bool   `json:"overdue"`
}

// DeadlineResponse represents the deadline calculator response.
type DeadlineResponse struct {
	Valid                  bool                   `json:"valid"`
	IdentificationDeadline *DeadlineEntryResponse `json:"identificationDeadline,omitempty"`
	RawExchangeDeadline    string                 `json:"rawExchangeDeadline,omitempty"`
	TaxReturnDue           string                 `json:"taxReturnDue,omitempty"`
	FinalExchangeDeadline  *DeadlineEntryResponse `json:"finalExchangeDeadline,omitempty"`
	IsTaxReturnLimited     bool                   `json:"isTaxReturnLimited"`
}

const dateLayout = "2006-01-02"

// ComputeDeadlines handles POST requests to the deadline calculator.
//
// Endpoint: POST /api/calculators/deadlines
// Response: 200 OK with DeadlineResponse; valid=false without a parseable
// closing date
func (h *CalculatorHandler) ComputeDeadlines(w http.ResponseWriter, r *http.Request) {
	var req request.DeadlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	result := h.calculatorService.ComputeDeadlines(req.ClosingDate)
	if result == nil {
		respondJSON(w, http.StatusOK, DeadlineResponse{Valid: false})
		return
	}

	respondJSON(w, http.StatusOK, DeadlineResponse{
		Valid: true,
		IdentificationDeadline: &DeadlineEntryResponse{
			Date:          result.Identification.Date.Format(dateLayout),
			DaysRemaining: result.Identification.DaysRemaining,
			Overdue:       result.Identification.Overdue,
		},
		RawExchangeDeadline: result.RawExchangeDeadline.Format(dateLayout),
		TaxReturnDue:        result.TaxReturnDue.Format(dateLayout),
		FinalExchangeDeadline: &DeadlineEntryResponse{
			Date:          result.FinalExchange.Date.Format(dateLayout),
			DaysRemaining: result.FinalExchange.DaysRemaining,
			Overdue:       result.FinalExchange.Overdue,
		},
		IsTaxReturnLimited: result.IsTaxReturnLimited,
	})
}

// MilestoneResponse is one entry of the timeline response.
type MilestoneResponse struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	DaysFromClosing int    `json:"daysFromClosing"`
	Date            string `json:"date"`
	Required        bool   `json:"required"`
	Status          string `json:"status"`
}

// TimelineResponse represents the timeline calculator response.
type TimelineResponse struct {
	Valid      bool                `json:"valid"`
	Milestones []MilestoneResponse `json:"milestones,omitempty"`
}

// BuildTimeline handles POST requests to the timeline calculator.
//
// Endpoint: POST /api/calculators/timeline
// Response: 200 OK with TimelineResponse; valid=false without a parseable
// closing date
func (h *CalculatorHandler) BuildTimeline(w http.ResponseWriter, r *http.Request) {
	var req request.DeadlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	timeline := h.calculatorService.BuildTimeline(req.ClosingDate)
	if timeline == nil {
		respondJSON(w, http.StatusOK, TimelineResponse{Valid: false})
		return
	}

	milestones := make([]MilestoneResponse, len(timeline))
	for i, m := range timeline {
		milestones[i] = MilestoneResponse{
			Name:            m.Name,
			Description:     m.Description,
			DaysFromClosing: m.DaysFromClosing,
			Date:            m.Date.Format(dateLayout),
			Required:        m.Required,
			Status:          m.Status,
		}
	}

	respondJSON(w, http.StatusOK, TimelineResponse{
		Valid:      true,
		Milestones: milestones,
	})
}
