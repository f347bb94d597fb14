package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validHotelOffer() HotelOfferRequest {
	return HotelOfferRequest{
		TripID:    uuid.New().String(),
		UserID:    uuid.New().String(),
		HotelName: "Harbor View",
		CityCode:  "LAX",
		CheckIn:   time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2025, 6, 4, 11, 0, 0, 0, time.UTC),
		Price:     PriceRequest{Total: "450.00", Currency: "USD"},
	}
}

func TestHotelOfferRequest_Validate(t *testing.T) {
	require.NoError(t, validHotelOffer().Validate())

	missingCity := validHotelOffer()
	missingCity.CityCode = ""
	assert.Error(t, missingCity.Validate())

	badTrip := validHotelOffer()
	badTrip.TripID = "nope"
	assert.Error(t, badTrip.Validate())

	inverted := validHotelOffer()
	inverted.CheckIn, inverted.CheckOut = inverted.CheckOut, inverted.CheckIn
	assert.Error(t, inverted.Validate())
}

func TestFlightOfferRequest_Validate(t *testing.T) {
	offer := FlightOfferRequest{
		TripID: uuid.New().String(),
		UserID: uuid.New().String(),
		Itineraries: []FlightItineraryRequest{
			{
				Segments: []FlightSegmentRequest{
					{
						CarrierCode:   "DL",
						FlightNumber:  "100",
						Origin:        "JFK",
						Destination:   "LAX",
						DepartureTime: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
						ArrivalTime:   time.Date(2025, 6, 1, 11, 30, 0, 0, time.UTC),
					},
				},
			},
		},
		Price: PriceRequest{Total: "350.00", Currency: "USD"},
	}
	require.NoError(t, offer.Validate())

	offer.Itineraries[0].Segments[0].ArrivalTime = time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC)
	assert.Error(t, offer.Validate())

	offer.Itineraries = nil
	assert.Error(t, offer.Validate())
}

func TestActivityOfferRequest_Validate(t *testing.T) {
	offer := ActivityOfferRequest{
		TripID:    uuid.New().String(),
		UserID:    uuid.New().String(),
		Name:      "Alcatraz tour",
		Location:  "SFO",
		StartTime: time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC),
		Price:     PriceRequest{Total: "60", Currency: "USD"},
	}
	require.NoError(t, offer.Validate())

	zero := 0
	offer.DurationMinutes = &zero
	assert.Error(t, offer.Validate())
}
