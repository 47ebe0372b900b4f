package calc

import "time"

// Exchange window lengths in calendar days. The statute counts calendar
// days, not business days, so no weekend or holiday skipping applies to
// these two offsets.
const (
	identificationDays = 45
	exchangeDays       = 180
)

// Deadline is a single dated deadline with its countdown relative to the
// evaluation time.
type Deadline struct {
	Date          time.Time
	DaysRemaining int
	Overdue       bool
}

// DeadlineResult holds the derived exchange deadlines for one closing date.
//
// The exchange must complete by the earlier of 180 calendar days after
// closing and the due date of the taxpayer's return for the closing year.
// IsTaxReturnLimited reports when the return due date is the binding one,
// which happens for closings late in the calendar year.
type DeadlineResult struct {
	Identification      Deadline
	RawExchangeDeadline time.Time
	TaxReturnDue        time.Time
	FinalExchange       Deadline
	IsTaxReturnLimited  bool
}

// ComputeDeadlines derives the identification and exchange deadlines for a
// closing date. The caller supplies now so the engine stays pure; the
// service layer passes wall-clock time at each invocation. A zero closing
// date means no input yet and yields a nil result.
func ComputeDeadlines(closing, now time.Time) *DeadlineResult {
	if closing.IsZero() {
		return nil
	}

	identification := closing.AddDate(0, 0, identificationDays)
	rawExchange := closing.AddDate(0, 0, exchangeDays)
	taxReturnDue := taxReturnDueDate(closing.Year() + 1)

	final := rawExchange
	limited := rawExchange.After(taxReturnDue)
	if limited {
		final = taxReturnDue
	}

	return &DeadlineResult{
		Identification:      newDeadline(identification, now),
		RawExchangeDeadline: rawExchange,
		TaxReturnDue:        taxReturnDue,
		FinalExchange:       newDeadline(final, now),
		IsTaxReturnLimited:  limited,
	}
}

func newDeadline(date, now time.Time) Deadline {
	days := calendarDaysUntil(date, now)
	return Deadline{
		Date:          date,
		DaysRemaining: days,
		Overdue:       days < 0,
	}
}

// taxReturnDueDate returns April 15 of the given year, shifted off a
// weekend: Saturday moves back to Friday the 14th, Sunday moves forward to
// Monday the 16th. Federal holidays are not handled.
func taxReturnDueDate(year int) time.Time {
	due := time.Date(year, time.April, 15, 0, 0, 0, 0, time.UTC)
	switch due.Weekday() {
	case time.Saturday:
		due = due.AddDate(0, 0, -1)
	case time.Sunday:
		due = due.AddDate(0, 0, 1)
	}
	return due
}

// calendarDaysUntil counts whole calendar days from now's date to target's
// date, ignoring time of day. Negative when the target has passed.
func calendarDaysUntil(target, now time.Time) int {
	t := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(n).Hours() / 24)
}
