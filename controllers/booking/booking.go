package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/now"

	"trip-planner/logger"
	bookingModel "trip-planner/models/booking"
	bookingService "trip-planner/services/booking"
	"trip-planner/services/validation"
	"trip-planner/types"
	bookingTypes "trip-planner/types/booking"
)

// BookingController handles booking-related HTTP requests
type BookingController struct {
	Service *bookingService.Service
	Logger  *logger.AsyncLogger
}

// NewBookingController creates a new booking controller
func NewBookingController(svc *bookingService.Service, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{
		Service: svc,
		Logger:  asyncLogger,
	}
}

// bookingResult is the create response payload: the reservation plus the
// trip's current conflict list. Conflicts are advisory and never block the
// reservation.
type bookingResult struct {
	Booking   *bookingModel.Booking      `json:"booking"`
	Conflicts []validation.ConflictCheck `json:"conflicts"`
}

// CreateFlight books a flight offer onto a trip
func (bc *BookingController) CreateFlight(c *fiber.Ctx) error {
	var req bookingTypes.FlightOfferRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse flight offer body", err)
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	b, conflicts, err := bc.Service.CreateFlight(&req)
	if err != nil {
		return bc.respondServiceError(c, "Failed to create flight booking", err)
	}
	return bc.created(c, b, conflicts)
}

// CreateHotel books a hotel offer onto a trip
func (bc *BookingController) CreateHotel(c *fiber.Ctx) error {
	var req bookingTypes.HotelOfferRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse hotel offer body", err)
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	b, conflicts, err := bc.Service.CreateHotel(&req)
	if err != nil {
		return bc.respondServiceError(c, "Failed to create hotel booking", err)
	}
	return bc.created(c, b, conflicts)
}

// CreateCarRental books a car rental offer onto a trip
func (bc *BookingController) CreateCarRental(c *fiber.Ctx) error {
	var req bookingTypes.CarRentalOfferRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse car rental offer body", err)
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	b, conflicts, err := bc.Service.CreateCarRental(&req)
	if err != nil {
		return bc.respondServiceError(c, "Failed to create car rental booking", err)
	}
	return bc.created(c, b, conflicts)
}

// CreateActivity books an activity offer onto a trip
func (bc *BookingController) CreateActivity(c *fiber.Ctx) error {
	var req bookingTypes.ActivityOfferRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse activity offer body", err)
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	b, conflicts, err := bc.Service.CreateActivity(&req)
	if err != nil {
		return bc.respondServiceError(c, "Failed to create activity booking", err)
	}
	return bc.created(c, b, conflicts)
}

// Cancel transitions a booking to cancelled and returns the updated record
func (bc *BookingController) Cancel(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid booking id")
	}

	b, err := bc.Service.Cancel(bookingID)
	if err != nil {
		return bc.respondServiceError(c, "Failed to cancel booking", err)
	}

	logger.Success(fmt.Sprintf("Booking %s cancelled", b.ConfirmationCode))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking cancelled successfully",
		Data:    b,
	})
}

// ListTripBookings returns a trip's bookings ordered by start date. An
// optional ?date=YYYY-MM-DD query narrows the list to bookings starting on
// that calendar day.
func (bc *BookingController) ListTripBookings(c *fiber.Ctx) error {
	tripID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid trip id")
	}

	bookings, err := bc.Service.ListTripBookings(tripID)
	if err != nil {
		return bc.respondServiceError(c, "Failed to list bookings", err)
	}

	if day := c.Query("date"); day != "" {
		parsed, err := time.Parse("2006-01-02", day)
		if err != nil {
			return badRequest(c, "Invalid date filter, expected YYYY-MM-DD")
		}
		from := now.With(parsed).BeginningOfDay()
		to := now.With(parsed).EndOfDay()
		filtered := make([]bookingModel.Booking, 0, len(bookings))
		for _, b := range bookings {
			if !b.StartDate.Before(from) && !b.StartDate.After(to) {
				filtered = append(filtered, b)
			}
		}
		bookings = filtered
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bookings retrieved successfully",
		Data:    bookings,
	})
}

// ValidateTrip re-runs the conflict rules without writing anything. Used by
// clients to refresh the conflict panel.
func (bc *BookingController) ValidateTrip(c *fiber.Ctx) error {
	tripID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid trip id")
	}

	conflicts, err := bc.Service.Validate(tripID)
	if err != nil {
		return bc.respondServiceError(c, "Failed to validate trip", err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Trip validated successfully",
		Data:    conflicts,
	})
}

func (bc *BookingController) created(c *fiber.Ctx, b *bookingModel.Booking, conflicts []validation.ConflictCheck) error {
	if conflicts == nil {
		conflicts = []validation.ConflictCheck{}
	}
	logger.Success(fmt.Sprintf("Booking %s created for trip %s (%d conflicts)",
		b.ConfirmationCode, b.TripID, len(conflicts)))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking created successfully",
		Data: bookingResult{
			Booking:   b,
			Conflicts: conflicts,
		},
	})
}

func (bc *BookingController) respondServiceError(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, bookingService.ErrInvalidInput),
		errors.Is(err, bookingService.ErrInvalidAmount):
		return badRequest(c, err.Error())
	case errors.Is(err, bookingService.ErrTripNotFound):
		return notFound(c, "Trip not found")
	case errors.Is(err, bookingService.ErrBookingNotFound):
		return notFound(c, "Booking not found")
	default:
		logger.Error(message, err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: message,
		})
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
		Status:  fiber.StatusBadRequest,
		Message: message,
	})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
		Status:  fiber.StatusNotFound,
		Message: message,
	})
}
