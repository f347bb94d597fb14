package booking_event

import (
	bookingModel "trip-planner/models/booking"

	"gorm.io/gorm"
)

// SnapshotBookingToEvent writes a full snapshot of a Booking row into
// BookingEvent with the given event type. Runs inside the caller's
// transaction so the event row commits together with the mutation.
func SnapshotBookingToEvent(tx *gorm.DB, b *bookingModel.Booking, eventType string) error {
	ev := bookingModel.BookingEvent{
		BookingID: b.ID,
		TripID:    b.TripID,
		UserID:    b.UserID,

		Kind:   b.Kind,
		Status: b.Status,

		StartDate: b.StartDate,
		EndDate:   b.EndDate,

		StartLocation: b.StartLocation,
		EndLocation:   b.EndLocation,

		ConfirmationCode: b.ConfirmationCode,
		SupplierName:     b.SupplierName,
		TotalAmount:      b.TotalAmount,
		Currency:         b.Currency,

		KindDetails: b.KindDetails,
		CancelledAt: b.CancelledAt,

		EventType: eventType,
	}

	return tx.Create(&ev).Error
}
