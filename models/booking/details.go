package booking

import "time"

// Kind-specific payloads stored in Booking.KindDetails. These are written by
// the normalizer and returned to clients verbatim; the conflict rules only
// ever look at the shared envelope fields.

type FlightSegment struct {
	CarrierCode   string    `json:"carrier_code"`
	FlightNumber  string    `json:"flight_number"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
}

type FlightItinerary struct {
	Segments []FlightSegment `json:"segments"`
}

type FlightDetails struct {
	Itineraries []FlightItinerary `json:"itineraries"`
	CabinClass  string            `json:"cabin_class,omitempty"`
}

type HotelDetails struct {
	HotelName string    `json:"hotel_name"`
	CityCode  string    `json:"city_code"`
	RoomType  string    `json:"room_type,omitempty"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	Guests    int       `json:"guests,omitempty"`
}

type CarRentalDetails struct {
	VehicleClass    string    `json:"vehicle_class"`
	PickupLocation  string    `json:"pickup_location"`
	DropoffLocation string    `json:"dropoff_location"`
	PickupTime      time.Time `json:"pickup_time"`
	DropoffTime     time.Time `json:"dropoff_time"`
}

type ActivityDetails struct {
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Location        string `json:"location"`
	DurationMinutes *int   `json:"duration_minutes,omitempty"`
}
