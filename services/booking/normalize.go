package booking

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	bookingModel "trip-planner/models/booking"
	bookingTypes "trip-planner/types/booking"
	"trip-planner/utils"
)

// The normalizer is the only place that understands each provider's payload
// shape. Every kind is mapped onto the same envelope: a single start/end time
// pair, a start/end location pair and a parsed monetary amount, with the raw
// shape preserved in KindDetails.

func normalizeFlight(req *bookingTypes.FlightOfferRequest) (*bookingModel.Booking, error) {
	base, err := newBooking(bookingModel.BookingKindFlight, req.TripID, req.UserID, req.SupplierName, req.Price)
	if err != nil {
		return nil, err
	}

	itineraries := make([]bookingModel.FlightItinerary, 0, len(req.Itineraries))
	for _, itin := range req.Itineraries {
		segments := make([]bookingModel.FlightSegment, 0, len(itin.Segments))
		for _, seg := range itin.Segments {
			segments = append(segments, bookingModel.FlightSegment{
				CarrierCode:   seg.CarrierCode,
				FlightNumber:  seg.FlightNumber,
				Origin:        seg.Origin,
				Destination:   seg.Destination,
				DepartureTime: seg.DepartureTime,
				ArrivalTime:   seg.ArrivalTime,
			})
		}
		itineraries = append(itineraries, bookingModel.FlightItinerary{Segments: segments})
	}

	// Travel window comes from the first itinerary: departure of its first
	// segment through arrival of its last segment.
	first := req.Itineraries[0].Segments[0]
	last := req.Itineraries[0].Segments[len(req.Itineraries[0].Segments)-1]
	endDate := last.ArrivalTime
	endLocation := last.Destination

	base.StartDate = first.DepartureTime
	base.EndDate = &endDate
	base.StartLocation = first.Origin
	base.EndLocation = &endLocation

	if err := setDetails(base, bookingModel.FlightDetails{
		Itineraries: itineraries,
		CabinClass:  req.CabinClass,
	}); err != nil {
		return nil, err
	}
	return base, checkDates(base)
}

func normalizeHotel(req *bookingTypes.HotelOfferRequest) (*bookingModel.Booking, error) {
	base, err := newBooking(bookingModel.BookingKindHotel, req.TripID, req.UserID, req.SupplierName, req.Price)
	if err != nil {
		return nil, err
	}

	checkOut := req.CheckOut
	base.StartDate = req.CheckIn
	base.EndDate = &checkOut
	base.StartLocation = req.CityCode

	if err := setDetails(base, bookingModel.HotelDetails{
		HotelName: req.HotelName,
		CityCode:  req.CityCode,
		RoomType:  req.RoomType,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Guests:    req.Guests,
	}); err != nil {
		return nil, err
	}
	return base, checkDates(base)
}

func normalizeCarRental(req *bookingTypes.CarRentalOfferRequest) (*bookingModel.Booking, error) {
	base, err := newBooking(bookingModel.BookingKindCarRental, req.TripID, req.UserID, req.SupplierName, req.Price)
	if err != nil {
		return nil, err
	}

	dropoffTime := req.DropoffTime
	dropoffLocation := req.DropoffLocation
	base.StartDate = req.PickupTime
	base.EndDate = &dropoffTime
	base.StartLocation = req.PickupLocation
	base.EndLocation = &dropoffLocation

	if err := setDetails(base, bookingModel.CarRentalDetails{
		VehicleClass:    req.VehicleClass,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		PickupTime:      req.PickupTime,
		DropoffTime:     req.DropoffTime,
	}); err != nil {
		return nil, err
	}
	return base, checkDates(base)
}

func normalizeActivity(req *bookingTypes.ActivityOfferRequest) (*bookingModel.Booking, error) {
	base, err := newBooking(bookingModel.BookingKindActivity, req.TripID, req.UserID, req.SupplierName, req.Price)
	if err != nil {
		return nil, err
	}

	base.StartDate = req.StartTime
	base.StartLocation = req.Location
	// Without a duration the activity is a point in time and has no end date.
	if req.DurationMinutes != nil {
		end := req.StartTime.Add(time.Duration(*req.DurationMinutes) * time.Minute)
		base.EndDate = &end
	}

	if err := setDetails(base, bookingModel.ActivityDetails{
		Name:            req.Name,
		Description:     req.Description,
		Location:        req.Location,
		DurationMinutes: req.DurationMinutes,
	}); err != nil {
		return nil, err
	}
	return base, checkDates(base)
}

// newBooking builds the shared envelope: ids, parsed amount, confirmation
// code. Kind-specific fields are filled in by the caller.
func newBooking(kind bookingModel.BookingKind, tripID, userID, supplierName string, price bookingTypes.PriceRequest) (*bookingModel.Booking, error) {
	tid, err := uuid.Parse(tripID)
	if err != nil {
		return nil, fmt.Errorf("%w: trip_id %q is not a uuid", ErrInvalidInput, tripID)
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user_id %q is not a uuid", ErrInvalidInput, userID)
	}

	amount, err := utils.ParseAmount(price.Total)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}

	code, err := utils.ConfirmationCode(kind.CodePrefix())
	if err != nil {
		return nil, err
	}

	return &bookingModel.Booking{
		ID:               uuid.New(),
		TripID:           tid,
		UserID:           uid,
		Kind:             kind,
		Status:           bookingModel.BookingStatusReserved,
		ConfirmationCode: code,
		SupplierName:     supplierName,
		TotalAmount:      amount,
		Currency:         price.Currency,
	}, nil
}

func setDetails(b *bookingModel.Booking, details interface{}) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return err
	}
	b.KindDetails = datatypes.JSON(payload)
	return nil
}

func checkDates(b *bookingModel.Booking) error {
	if b.EndDate != nil && b.EndDate.Before(b.StartDate) {
		return fmt.Errorf("%w: end date %s is before start date %s",
			ErrInvalidInput, b.EndDate.Format(time.RFC3339), b.StartDate.Format(time.RFC3339))
	}
	return nil
}
