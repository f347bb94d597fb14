package booking

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	bookingModel "trip-planner/models/booking"
	tripModel "trip-planner/models/trip"
	"trip-planner/services/booking_event"
	"trip-planner/services/validation"
	bookingTypes "trip-planner/types/booking"
)

// Service owns the booking lifecycle: normalize an offer, persist the
// booking, re-run trip validation over the post-write booking set and rewrite
// the trip's conflict snapshot, all inside one transaction. Mutations for the
// same trip are additionally serialized with a per-trip mutex so two
// concurrent creates cannot each validate against a stale booking set and
// overwrite the other's snapshot.
type Service struct {
	DB    *gorm.DB
	locks sync.Map // trip id -> *sync.Mutex
}

// NewService creates a new booking service
func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

func (s *Service) tripLock(tripID uuid.UUID) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(tripID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// CreateFlight normalizes a flight offer and books it.
func (s *Service) CreateFlight(req *bookingTypes.FlightOfferRequest) (*bookingModel.Booking, []validation.ConflictCheck, error) {
	b, err := normalizeFlight(req)
	if err != nil {
		return nil, nil, err
	}
	return s.create(b)
}

// CreateHotel normalizes a hotel offer and books it.
func (s *Service) CreateHotel(req *bookingTypes.HotelOfferRequest) (*bookingModel.Booking, []validation.ConflictCheck, error) {
	b, err := normalizeHotel(req)
	if err != nil {
		return nil, nil, err
	}
	return s.create(b)
}

// CreateCarRental normalizes a car rental offer and books it.
func (s *Service) CreateCarRental(req *bookingTypes.CarRentalOfferRequest) (*bookingModel.Booking, []validation.ConflictCheck, error) {
	b, err := normalizeCarRental(req)
	if err != nil {
		return nil, nil, err
	}
	return s.create(b)
}

// CreateActivity normalizes an activity offer and books it.
func (s *Service) CreateActivity(req *bookingTypes.ActivityOfferRequest) (*bookingModel.Booking, []validation.ConflictCheck, error) {
	b, err := normalizeActivity(req)
	if err != nil {
		return nil, nil, err
	}
	return s.create(b)
}

// create persists the normalized booking and refreshes the trip snapshot.
// Conflicts never block creation; they are returned as advisory data.
func (s *Service) create(b *bookingModel.Booking) (*bookingModel.Booking, []validation.ConflictCheck, error) {
	mu := s.tripLock(b.TripID)
	mu.Lock()
	defer mu.Unlock()

	var conflicts []validation.ConflictCheck
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var trip tripModel.Trip
		if err := tx.First(&trip, "id = ?", b.TripID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTripNotFound
			}
			return err
		}

		if err := tx.Create(b).Error; err != nil {
			return err
		}

		cs, err := refreshTripSnapshot(tx, &trip)
		if err != nil {
			return err
		}
		conflicts = cs

		return booking_event.SnapshotBookingToEvent(tx, b, bookingModel.EventTypeCreated)
	})
	if err != nil {
		return nil, nil, err
	}
	return b, conflicts, nil
}

// Cancel transitions a booking to cancelled and re-validates the trip against
// the reduced active set. The row is kept for history. Cancelling an already
// cancelled booking is a no-op.
func (s *Service) Cancel(bookingID uuid.UUID) (*bookingModel.Booking, error) {
	// Resolve the trip first so the mutation runs under the trip lock.
	var probe bookingModel.Booking
	if err := s.DB.First(&probe, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	mu := s.tripLock(probe.TripID)
	mu.Lock()
	defer mu.Unlock()

	var b bookingModel.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&b, "id = ?", bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if !b.Status.CanBeCancelled() {
			return nil
		}

		cancelledAt := time.Now()
		b.Status = bookingModel.BookingStatusCancelled
		b.CancelledAt = &cancelledAt
		if err := tx.Save(&b).Error; err != nil {
			return err
		}

		var trip tripModel.Trip
		if err := tx.First(&trip, "id = ?", b.TripID).Error; err != nil {
			return err
		}
		if _, err := refreshTripSnapshot(tx, &trip); err != nil {
			return err
		}

		return booking_event.SnapshotBookingToEvent(tx, &b, bookingModel.EventTypeCancelled)
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Validate re-runs the conflict rules for a trip without touching storage.
// Safe to call from read paths; the result matches what the next mutation
// would write into the snapshot.
func (s *Service) Validate(tripID uuid.UUID) ([]validation.ConflictCheck, error) {
	var trip tripModel.Trip
	if err := s.DB.First(&trip, "id = ?", tripID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	active, err := activeBookings(s.DB, tripID)
	if err != nil {
		return nil, err
	}

	conflicts := validation.Evaluate(active, trip.BudgetAmount)
	if conflicts == nil {
		conflicts = []validation.ConflictCheck{}
	}
	return conflicts, nil
}

// ListTripBookings returns every booking of the trip, cancelled ones
// included, ordered by start date.
func (s *Service) ListTripBookings(tripID uuid.UUID) ([]bookingModel.Booking, error) {
	var bookings []bookingModel.Booking
	err := s.DB.Where("trip_id = ?", tripID).
		Order("start_date ASC").
		Find(&bookings).Error
	return bookings, err
}

// refreshTripSnapshot recomputes the conflict list from the current active
// booking set and atomically overwrites the trip's derived fields. Always a
// total replacement, never a merge.
func refreshTripSnapshot(tx *gorm.DB, trip *tripModel.Trip) ([]validation.ConflictCheck, error) {
	active, err := activeBookings(tx, trip.ID)
	if err != nil {
		return nil, err
	}

	conflicts := validation.Evaluate(active, trip.BudgetAmount)
	if conflicts == nil {
		conflicts = []validation.ConflictCheck{}
	}

	payload, err := json.Marshal(conflicts)
	if err != nil {
		return nil, err
	}

	validatedAt := time.Now()
	updates := map[string]interface{}{
		"has_conflicts":     validation.HasErrors(conflicts),
		"last_validated_at": validatedAt,
		"conflict_details":  datatypes.JSON(payload),
	}
	if err := tx.Model(trip).Updates(updates).Error; err != nil {
		return nil, err
	}
	return conflicts, nil
}

func activeBookings(tx *gorm.DB, tripID uuid.UUID) ([]bookingModel.Booking, error) {
	var active []bookingModel.Booking
	err := tx.Where("trip_id = ? AND status <> ?", tripID, bookingModel.BookingStatusCancelled).
		Order("start_date ASC").
		Find(&active).Error
	return active, err
}
