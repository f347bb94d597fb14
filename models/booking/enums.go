package booking

type BookingKind string

const (
	BookingKindFlight    BookingKind = "flight"
	BookingKindHotel     BookingKind = "hotel"
	BookingKindCarRental BookingKind = "car_rental"
	BookingKindActivity  BookingKind = "activity"
)

type BookingStatus string

const (
	BookingStatusReserved  BookingStatus = "reserved"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Event types written to the booking_events audit table.
const (
	EventTypeCreated   = "created"
	EventTypeCancelled = "cancelled"
)

// Helper methods for BookingKind

func (bk BookingKind) String() string {
	return string(bk)
}

func (bk BookingKind) IsValid() bool {
	switch bk {
	case BookingKindFlight, BookingKindHotel, BookingKindCarRental, BookingKindActivity:
		return true
	default:
		return false
	}
}

// CodePrefix returns the two-letter prefix used for confirmation codes of
// this kind (e.g. "FL" for flights).
func (bk BookingKind) CodePrefix() string {
	switch bk {
	case BookingKindFlight:
		return "FL"
	case BookingKindHotel:
		return "HT"
	case BookingKindCarRental:
		return "CR"
	case BookingKindActivity:
		return "AC"
	default:
		return "BK"
	}
}

// GetAllBookingKinds returns all valid booking kinds
func GetAllBookingKinds() []BookingKind {
	return []BookingKind{
		BookingKindFlight,
		BookingKindHotel,
		BookingKindCarRental,
		BookingKindActivity,
	}
}

// Helper methods for BookingStatus

func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case BookingStatusReserved, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// CanBeCancelled returns true if the booking status allows the cancel
// transition. A booking is created once and only ever mutated by cancelling;
// it is never re-opened.
func (bs BookingStatus) CanBeCancelled() bool {
	return bs == BookingStatusReserved
}
