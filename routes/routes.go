package routes

import (
	bookingController "trip-planner/controllers/booking"
	tripController "trip-planner/controllers/trip"
	"trip-planner/logger"
	"trip-planner/middleware"
	bookingService "trip-planner/services/booking"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)
	bookingSvc := bookingService.NewService(db)
	bookings := bookingController.NewBookingController(bookingSvc, asyncLogger)
	trips := tripController.NewTripController(db, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Use(middleware.RequestLogger(asyncLogger))

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "trip-planner",
			"status":  "ok",
		})
	})

	api := app.Group("/api")

	/*=============================================================================
	| Trip Routes
	===============================================================================*/
	tripGroup := api.Group("/trip")
	tripGroup.Post("/create", trips.Store)
	tripGroup.Get("/:id", trips.Show)
	tripGroup.Get("/:id/bookings", bookings.ListTripBookings)
	tripGroup.Get("/:id/conflicts", bookings.ValidateTrip)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	bookingGroup := api.Group("/booking")
	bookingGroup.Post("/flight", bookings.CreateFlight)
	bookingGroup.Post("/hotel", bookings.CreateHotel)
	bookingGroup.Post("/car-rental", bookings.CreateCarRental)
	bookingGroup.Post("/activity", bookings.CreateActivity)
	bookingGroup.Post("/:id/cancel", bookings.Cancel)
}
