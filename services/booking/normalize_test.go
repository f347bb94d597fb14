package booking

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingModel "trip-planner/models/booking"
	bookingTypes "trip-planner/types/booking"
)

var (
	testTripID = uuid.New().String()
	testUserID = uuid.New().String()
)

func usd(total string) bookingTypes.PriceRequest {
	return bookingTypes.PriceRequest{Total: total, Currency: "USD"}
}

func flightOffer() *bookingTypes.FlightOfferRequest {
	return &bookingTypes.FlightOfferRequest{
		TripID:       testTripID,
		UserID:       testUserID,
		SupplierName: "Delta",
		CabinClass:   "economy",
		Itineraries: []bookingTypes.FlightItineraryRequest{
			{
				Segments: []bookingTypes.FlightSegmentRequest{
					{
						CarrierCode:   "DL",
						FlightNumber:  "100",
						Origin:        "JFK",
						Destination:   "ORD",
						DepartureTime: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
						ArrivalTime:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
					},
					{
						CarrierCode:   "DL",
						FlightNumber:  "200",
						Origin:        "ORD",
						Destination:   "LAX",
						DepartureTime: time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC),
						ArrivalTime:   time.Date(2025, 6, 1, 13, 30, 0, 0, time.UTC),
					},
				},
			},
			{
				Segments: []bookingTypes.FlightSegmentRequest{
					{
						CarrierCode:   "DL",
						FlightNumber:  "300",
						Origin:        "LAX",
						Destination:   "JFK",
						DepartureTime: time.Date(2025, 6, 8, 9, 0, 0, 0, time.UTC),
						ArrivalTime:   time.Date(2025, 6, 8, 17, 0, 0, 0, time.UTC),
					},
				},
			},
		},
		Price: usd("350.00"),
	}
}

func TestNormalizeFlight(t *testing.T) {
	b, err := normalizeFlight(flightOffer())
	require.NoError(t, err)

	assert.Equal(t, bookingModel.BookingKindFlight, b.Kind)
	assert.Equal(t, bookingModel.BookingStatusReserved, b.Status)
	assert.Equal(t, testTripID, b.TripID.String())
	assert.Equal(t, testUserID, b.UserID.String())

	// Envelope comes from the first itinerary: first segment departure
	// through last segment arrival.
	assert.Equal(t, time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), b.StartDate)
	require.NotNil(t, b.EndDate)
	assert.Equal(t, time.Date(2025, 6, 1, 13, 30, 0, 0, time.UTC), *b.EndDate)
	assert.Equal(t, "JFK", b.StartLocation)
	require.NotNil(t, b.EndLocation)
	assert.Equal(t, "LAX", *b.EndLocation)

	assert.Equal(t, 350.0, b.TotalAmount)
	assert.Equal(t, "USD", b.Currency)
	assert.True(t, len(b.ConfirmationCode) == 8 && b.ConfirmationCode[:2] == "FL",
		"unexpected confirmation code %q", b.ConfirmationCode)

	var details bookingModel.FlightDetails
	require.NoError(t, json.Unmarshal(b.KindDetails, &details))
	require.Len(t, details.Itineraries, 2)
	assert.Len(t, details.Itineraries[0].Segments, 2)
	assert.Equal(t, "economy", details.CabinClass)
}

func TestNormalizeHotel(t *testing.T) {
	req := &bookingTypes.HotelOfferRequest{
		TripID:       testTripID,
		UserID:       testUserID,
		SupplierName: "Booking.com",
		HotelName:    "Harbor View",
		CityCode:     "LAX",
		RoomType:     "double",
		Guests:       2,
		CheckIn:      time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC),
		CheckOut:     time.Date(2025, 6, 4, 11, 0, 0, 0, time.UTC),
		Price:        usd("450.00"),
	}

	b, err := normalizeHotel(req)
	require.NoError(t, err)

	assert.Equal(t, bookingModel.BookingKindHotel, b.Kind)
	assert.Equal(t, req.CheckIn, b.StartDate)
	require.NotNil(t, b.EndDate)
	assert.Equal(t, req.CheckOut, *b.EndDate)
	assert.Equal(t, "LAX", b.StartLocation)
	assert.Nil(t, b.EndLocation, "hotels are single-location bookings")
	assert.Equal(t, "HT", b.ConfirmationCode[:2])

	var details bookingModel.HotelDetails
	require.NoError(t, json.Unmarshal(b.KindDetails, &details))
	assert.Equal(t, "Harbor View", details.HotelName)
	assert.Equal(t, 2, details.Guests)
}

func TestNormalizeCarRental(t *testing.T) {
	req := &bookingTypes.CarRentalOfferRequest{
		TripID:          testTripID,
		UserID:          testUserID,
		SupplierName:    "Hertz",
		VehicleClass:    "compact",
		PickupLocation:  "LAX",
		DropoffLocation: "SFO",
		PickupTime:      time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		DropoffTime:     time.Date(2025, 6, 3, 18, 0, 0, 0, time.UTC),
		Price:           usd("120.50"),
	}

	b, err := normalizeCarRental(req)
	require.NoError(t, err)

	assert.Equal(t, bookingModel.BookingKindCarRental, b.Kind)
	assert.Equal(t, req.PickupTime, b.StartDate)
	require.NotNil(t, b.EndDate)
	assert.Equal(t, req.DropoffTime, *b.EndDate)
	assert.Equal(t, "LAX", b.StartLocation)
	require.NotNil(t, b.EndLocation)
	assert.Equal(t, "SFO", *b.EndLocation)
	assert.Equal(t, 120.50, b.TotalAmount)
	assert.Equal(t, "CR", b.ConfirmationCode[:2])
}

func TestNormalizeActivity_WithDuration(t *testing.T) {
	duration := 90
	req := &bookingTypes.ActivityOfferRequest{
		TripID:          testTripID,
		UserID:          testUserID,
		Name:            "Alcatraz tour",
		Location:        "SFO",
		StartTime:       time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC),
		DurationMinutes: &duration,
		Price:           usd("60"),
	}

	b, err := normalizeActivity(req)
	require.NoError(t, err)

	assert.Equal(t, bookingModel.BookingKindActivity, b.Kind)
	require.NotNil(t, b.EndDate)
	assert.Equal(t, time.Date(2025, 6, 3, 11, 30, 0, 0, time.UTC), *b.EndDate)
	assert.Equal(t, "SFO", b.StartLocation)
	assert.Nil(t, b.EndLocation)
	assert.Equal(t, "AC", b.ConfirmationCode[:2])
}

func TestNormalizeActivity_WithoutDuration(t *testing.T) {
	req := &bookingTypes.ActivityOfferRequest{
		TripID:    testTripID,
		UserID:    testUserID,
		Name:      "Sunset viewpoint",
		Location:  "SFO",
		StartTime: time.Date(2025, 6, 3, 19, 0, 0, 0, time.UTC),
		Price:     usd("0"),
	}

	b, err := normalizeActivity(req)
	require.NoError(t, err)
	assert.Nil(t, b.EndDate, "an activity without duration is a point in time")
}

func TestNormalize_RejectsBadAmounts(t *testing.T) {
	cases := []struct {
		name  string
		total string
	}{
		{"empty", ""},
		{"not a number", "three hundred"},
		{"negative", "-350.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			offer := flightOffer()
			offer.Price = usd(tc.total)
			_, err := normalizeFlight(offer)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		})
	}
}

func TestNormalize_RejectsBadIdentifiers(t *testing.T) {
	offer := flightOffer()
	offer.TripID = "not-a-uuid"
	_, err := normalizeFlight(offer)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNormalize_RejectsInvertedDates(t *testing.T) {
	req := &bookingTypes.HotelOfferRequest{
		TripID:    testTripID,
		UserID:    testUserID,
		HotelName: "Harbor View",
		CityCode:  "LAX",
		CheckIn:   time.Date(2025, 6, 4, 15, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC),
		Price:     usd("450.00"),
	}

	_, err := normalizeHotel(req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
