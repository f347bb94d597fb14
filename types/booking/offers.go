package booking

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// PriceRequest carries the monetary part of every offer payload. Amounts
// arrive as strings from upstream providers and are parsed by the normalizer;
// a malformed or missing amount rejects the whole request.
type PriceRequest struct {
	Total    string `json:"total" validate:"required"`
	Currency string `json:"currency" validate:"required,len=3"`
}

type FlightSegmentRequest struct {
	CarrierCode   string    `json:"carrier_code" validate:"required,max=3"`
	FlightNumber  string    `json:"flight_number" validate:"required,max=10"`
	Origin        string    `json:"origin" validate:"required,min=3,max=64"`
	Destination   string    `json:"destination" validate:"required,min=3,max=64"`
	DepartureTime time.Time `json:"departure_time" validate:"required"`
	ArrivalTime   time.Time `json:"arrival_time" validate:"required"`
}

type FlightItineraryRequest struct {
	Segments []FlightSegmentRequest `json:"segments" validate:"required,min=1,dive"`
}

// FlightOfferRequest is the provider-shaped flight reservation payload.
type FlightOfferRequest struct {
	TripID       string                   `json:"trip_id" validate:"required,uuid"`
	UserID       string                   `json:"user_id" validate:"required,uuid"`
	SupplierName string                   `json:"supplier_name" validate:"omitempty,max=255"`
	CabinClass   string                   `json:"cabin_class" validate:"omitempty,max=50"`
	Itineraries  []FlightItineraryRequest `json:"itineraries" validate:"required,min=1,dive"`
	Price        PriceRequest             `json:"price"`
}

func (r FlightOfferRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	for _, itin := range r.Itineraries {
		for _, seg := range itin.Segments {
			if seg.ArrivalTime.Before(seg.DepartureTime) {
				return fmt.Errorf("segment %s%s arrives before it departs", seg.CarrierCode, seg.FlightNumber)
			}
		}
	}
	return nil
}

// HotelOfferRequest is the provider-shaped hotel reservation payload.
type HotelOfferRequest struct {
	TripID       string       `json:"trip_id" validate:"required,uuid"`
	UserID       string       `json:"user_id" validate:"required,uuid"`
	SupplierName string       `json:"supplier_name" validate:"omitempty,max=255"`
	HotelName    string       `json:"hotel_name" validate:"required,max=255"`
	CityCode     string       `json:"city_code" validate:"required,max=64"`
	RoomType     string       `json:"room_type" validate:"omitempty,max=100"`
	Guests       int          `json:"guests" validate:"omitempty,min=1"`
	CheckIn      time.Time    `json:"check_in" validate:"required"`
	CheckOut     time.Time    `json:"check_out" validate:"required"`
	Price        PriceRequest `json:"price"`
}

func (r HotelOfferRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.CheckOut.Before(r.CheckIn) {
		return fmt.Errorf("check_out must not be before check_in")
	}
	return nil
}

// CarRentalOfferRequest is the provider-shaped car rental payload.
type CarRentalOfferRequest struct {
	TripID          string       `json:"trip_id" validate:"required,uuid"`
	UserID          string       `json:"user_id" validate:"required,uuid"`
	SupplierName    string       `json:"supplier_name" validate:"omitempty,max=255"`
	VehicleClass    string       `json:"vehicle_class" validate:"required,max=100"`
	PickupLocation  string       `json:"pickup_location" validate:"required,max=255"`
	DropoffLocation string       `json:"dropoff_location" validate:"required,max=255"`
	PickupTime      time.Time    `json:"pickup_time" validate:"required"`
	DropoffTime     time.Time    `json:"dropoff_time" validate:"required"`
	Price           PriceRequest `json:"price"`
}

func (r CarRentalOfferRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.DropoffTime.Before(r.PickupTime) {
		return fmt.Errorf("dropoff_time must not be before pickup_time")
	}
	return nil
}

// ActivityOfferRequest is the provider-shaped activity payload. Duration is
// optional; without it the activity is treated as a point in time.
type ActivityOfferRequest struct {
	TripID          string       `json:"trip_id" validate:"required,uuid"`
	UserID          string       `json:"user_id" validate:"required,uuid"`
	SupplierName    string       `json:"supplier_name" validate:"omitempty,max=255"`
	Name            string       `json:"name" validate:"required,max=255"`
	Description     string       `json:"description" validate:"omitempty,max=2000"`
	Location        string       `json:"location" validate:"required,max=255"`
	StartTime       time.Time    `json:"start_time" validate:"required"`
	DurationMinutes *int         `json:"duration_minutes" validate:"omitempty,min=1"`
	Price           PriceRequest `json:"price"`
}

func (r ActivityOfferRequest) Validate() error {
	return validate.Struct(r)
}
