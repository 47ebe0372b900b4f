package calc

import "time"

// Milestone status values. Time alone moves a milestone through
// upcoming → current → overdue → completed; there is no user action that
// transitions state.
const (
	StatusUpcoming  = "upcoming"
	StatusCurrent   = "current"
	StatusOverdue   = "overdue"
	StatusCompleted = "completed"
)

// statusWindowDays is the half-width of the "current"/"overdue" windows
// around a milestone date.
const statusWindowDays = 7

// TimelineMilestone is one entry of the exchange timeline.
type TimelineMilestone struct {
	Name            string
	Description     string
	DaysFromClosing int
	Date            time.Time
	Required        bool
	Status          string
}

// milestoneSpec is a fixed milestone definition before dates are applied.
type milestoneSpec struct {
	name        string
	description string
	offset      int
	required    bool
}

// The fixed exchange timeline. Offsets are calendar days from closing.
// Both the identification-period entry and the identification deadline sit
// at day 45: the first marks the end of the window, the second the hard
// cutoff it imposes.
var milestoneSpecs = []milestoneSpec{
	{"Closing of Relinquished Property", "Sale closes and exchange funds transfer to the qualified intermediary.", 0, true},
	{"Qualified Intermediary Assignment", "Exchange agreement and assignment documents executed with the QI.", 1, true},
	{"45-Day Identification Period", "Window to identify replacement properties in writing.", 45, true},
	{"Identification Deadline", "Written identification must be delivered by midnight of day 45.", 45, true},
	{"Replacement Property Search", "Negotiate and go under contract on identified properties.", 90, false},
	{"Due Diligence & Financing", "Inspections, appraisal, and loan commitment on the replacement property.", 135, false},
	{"Exchange Deadline", "Acquisition of replacement property must be complete by day 180.", 180, true},
	{"Form 8824 Reporting", "Report the exchange with the tax return for the closing year.", 365, true},
}

// BuildTimeline produces the eight-milestone exchange timeline for a
// closing date, with each milestone's status classified against now.
// A zero closing date means no input yet and yields nil.
func BuildTimeline(closing, now time.Time) []TimelineMilestone {
	if closing.IsZero() {
		return nil
	}

	timeline := make([]TimelineMilestone, len(milestoneSpecs))
	for i, spec := range milestoneSpecs {
		date := closing.AddDate(0, 0, spec.offset)
		timeline[i] = TimelineMilestone{
			Name:            spec.name,
			Description:     spec.description,
			DaysFromClosing: spec.offset,
			Date:            date,
			Required:        spec.required,
			Status:          milestoneStatus(date, now),
		}
	}
	return timeline
}

// milestoneStatus classifies a milestone date against now:
// completed when more than 7 days past, overdue when past by at most
// 7 days, current when due today or within the next 7 days, upcoming
// otherwise.
func milestoneStatus(date, now time.Time) string {
	daysUntil := calendarDaysUntil(date, now)
	switch {
	case daysUntil < -statusWindowDays:
		return StatusCompleted
	case daysUntil < 0:
		return StatusOverdue
	case daysUntil <= statusWindowDays:
		return StatusCurrent
	default:
		return StatusUpcoming
	}
}
