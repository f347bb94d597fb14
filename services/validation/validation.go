package validation

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	bookingModel "trip-planner/models/booking"
)

type ConflictType string

const (
	ConflictDateOverlap      ConflictType = "date_overlap"
	ConflictLocationMismatch ConflictType = "location_mismatch"
	ConflictInsufficientTime ConflictType = "insufficient_time"
	ConflictMissingComponent ConflictType = "missing_component"
	ConflictBudgetExceeded   ConflictType = "budget_exceeded"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// ConflictCheck is one diagnostic produced by Evaluate. Conflicts are data,
// not errors: they never block a booking mutation.
type ConflictCheck struct {
	Type             ConflictType `json:"type"`
	Severity         Severity     `json:"severity"`
	Message          string       `json:"message"`
	AffectedBookings []uuid.UUID  `json:"affected_bookings"`
	Suggestions      []string     `json:"suggestions,omitempty"`
}

// minTransferGap is the smallest buffer between two bookings in different
// locations that does not warrant an insufficient-time warning.
const minTransferGap = 2 * time.Hour

// Evaluate runs every conflict rule over the trip's bookings and returns the
// accumulated diagnostics in rule order. Cancelled bookings are ignored by
// every rule. The function is pure: no I/O, no shared state, safe to call
// concurrently.
//
// Overlap and transfer-time rules only compare bookings that are adjacent
// after sorting by start date, so two overlapping bookings separated by a
// third one in sorted order are not reported against each other.
func Evaluate(bookings []bookingModel.Booking, budgetAmount *float64) []ConflictCheck {
	active := make([]bookingModel.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsActive() {
			active = append(active, b)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].StartDate.Before(active[j].StartDate)
	})

	var conflicts []ConflictCheck
	conflicts = append(conflicts, checkDateOverlaps(active)...)
	conflicts = append(conflicts, checkLocationMismatches(active)...)
	conflicts = append(conflicts, checkTransferTime(active)...)
	conflicts = append(conflicts, checkMissingAccommodation(active)...)
	conflicts = append(conflicts, checkBudget(active, budgetAmount)...)
	return conflicts
}

// HasErrors reports whether any conflict in the list carries Error severity.
func HasErrors(conflicts []ConflictCheck) bool {
	for _, c := range conflicts {
		if c.Severity == SeverityError {
			return true
		}
	}
	return false
}

// checkDateOverlaps scans adjacent pairs in start-date order and reports
// pairs where the earlier booking ends after the later one starts. Bookings
// without an end date cannot overlap anything and are skipped.
func checkDateOverlaps(sorted []bookingModel.Booking) []ConflictCheck {
	var conflicts []ConflictCheck
	for i := 0; i+1 < len(sorted); i++ {
		cur, next := sorted[i], sorted[i+1]
		if cur.EndDate == nil {
			continue
		}
		if cur.EndDate.After(next.StartDate) {
			conflicts = append(conflicts, ConflictCheck{
				Type:     ConflictDateOverlap,
				Severity: SeverityError,
				Message: fmt.Sprintf("%s booking %s overlaps with %s booking %s",
					cur.Kind, cur.ConfirmationCode, next.Kind, next.ConfirmationCode),
				AffectedBookings: []uuid.UUID{cur.ID, next.ID},
				Suggestions: []string{
					"adjust the dates of one booking",
					"cancel one of the overlapping bookings",
				},
			})
		}
	}
	return conflicts
}

// checkLocationMismatches warns when a hotel's city differs from the arrival
// city of the latest flight landing before check-in.
func checkLocationMismatches(sorted []bookingModel.Booking) []ConflictCheck {
	var conflicts []ConflictCheck
	for _, hotel := range sorted {
		if hotel.Kind != bookingModel.BookingKindHotel {
			continue
		}
		arrival := latestFlightBefore(sorted, hotel.StartDate)
		if arrival == nil || arrival.EndLocation == nil {
			continue
		}
		if *arrival.EndLocation != hotel.StartLocation {
			conflicts = append(conflicts, ConflictCheck{
				Type:     ConflictLocationMismatch,
				Severity: SeverityWarning,
				Message: fmt.Sprintf("hotel %s is in %s but flight %s arrives in %s",
					hotel.ConfirmationCode, hotel.StartLocation, arrival.ConfirmationCode, *arrival.EndLocation),
				AffectedBookings: []uuid.UUID{arrival.ID, hotel.ID},
				Suggestions: []string{
					fmt.Sprintf("book a hotel in %s instead", *arrival.EndLocation),
					"add connecting transport between the two cities",
				},
			})
		}
	}
	return conflicts
}

// latestFlightBefore returns the flight with the latest arrival that still
// lands at or before the given check-in time, or nil if there is none.
func latestFlightBefore(sorted []bookingModel.Booking, checkIn time.Time) *bookingModel.Booking {
	var best *bookingModel.Booking
	for i := range sorted {
		f := &sorted[i]
		if f.Kind != bookingModel.BookingKindFlight || f.EndDate == nil {
			continue
		}
		if f.EndDate.After(checkIn) {
			continue
		}
		if best == nil || f.EndDate.After(*best.EndDate) {
			best = f
		}
	}
	return best
}

// checkTransferTime scans adjacent pairs for a location change with less than
// two hours between the end of one booking and the start of the next.
func checkTransferTime(sorted []bookingModel.Booking) []ConflictCheck {
	var conflicts []ConflictCheck
	for i := 0; i+1 < len(sorted); i++ {
		cur, next := sorted[i], sorted[i+1]
		if cur.EndDate == nil {
			continue
		}
		from := cur.StartLocation
		if cur.EndLocation != nil {
			from = *cur.EndLocation
		}
		if from == next.StartLocation {
			continue
		}
		gap := next.StartDate.Sub(*cur.EndDate)
		if gap >= 0 && gap < minTransferGap {
			conflicts = append(conflicts, ConflictCheck{
				Type:     ConflictInsufficientTime,
				Severity: SeverityWarning,
				Message: fmt.Sprintf("only %.1f hours to get from %s to %s between bookings %s and %s",
					gap.Hours(), from, next.StartLocation, cur.ConfirmationCode, next.ConfirmationCode),
				AffectedBookings: []uuid.UUID{cur.ID, next.ID},
				Suggestions: []string{
					"allow more buffer time for the transfer",
					"move the later booking to a later time",
				},
			})
		}
	}
	return conflicts
}

// checkMissingAccommodation emits one advisory when the flights span more
// than a day and the trip has no hotel at all.
func checkMissingAccommodation(sorted []bookingModel.Booking) []ConflictCheck {
	var flights []bookingModel.Booking
	hotels := 0
	for _, b := range sorted {
		switch b.Kind {
		case bookingModel.BookingKindFlight:
			flights = append(flights, b)
		case bookingModel.BookingKindHotel:
			hotels++
		}
	}
	if len(flights) == 0 || hotels > 0 {
		return nil
	}

	firstDeparture := flights[0].StartDate
	lastArrival := flights[0].StartDate
	for _, f := range flights {
		end := f.StartDate
		if f.EndDate != nil {
			end = *f.EndDate
		}
		if end.After(lastArrival) {
			lastArrival = end
		}
	}
	span := lastArrival.Sub(firstDeparture)
	if span <= 24*time.Hour {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(flights))
	for _, f := range flights {
		ids = append(ids, f.ID)
	}
	return []ConflictCheck{{
		Type:     ConflictMissingComponent,
		Severity: SeverityInfo,
		Message: fmt.Sprintf("flights span %.0f days but the trip has no hotel booked",
			span.Hours()/24),
		AffectedBookings: ids,
		Suggestions:      []string{"add accommodation for the nights between flights"},
	}}
}

// checkBudget sums every active booking and warns when the total exceeds the
// trip budget.
func checkBudget(active []bookingModel.Booking, budgetAmount *float64) []ConflictCheck {
	if budgetAmount == nil {
		return nil
	}
	var total float64
	ids := make([]uuid.UUID, 0, len(active))
	for _, b := range active {
		total += b.TotalAmount
		ids = append(ids, b.ID)
	}
	if total <= *budgetAmount {
		return nil
	}
	return []ConflictCheck{{
		Type:     ConflictBudgetExceeded,
		Severity: SeverityWarning,
		Message: fmt.Sprintf("total booked amount %.2f exceeds the trip budget of %.2f",
			total, *budgetAmount),
		AffectedBookings: ids,
		Suggestions: []string{
			"review or cancel some bookings",
			"raise the trip budget",
		},
	}}
}
