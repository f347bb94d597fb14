package trip

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"trip-planner/logger"
	tripModel "trip-planner/models/trip"
	"trip-planner/types"
	tripTypes "trip-planner/types/trip"
)

// TripController handles trip-related HTTP requests
type TripController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewTripController creates a new trip controller
func NewTripController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *TripController {
	return &TripController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Store creates a new trip aggregate
func (tc *TripController) Store(c *fiber.Ctx) error {
	var req tripTypes.TripCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse trip create body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user id",
		})
	}

	trip := tripModel.Trip{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           req.Name,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		BudgetAmount:   req.BudgetAmount,
		BudgetCurrency: req.BudgetCurrency,
	}

	if err := tc.DB.Create(&trip).Error; err != nil {
		logger.Error("Failed to create trip", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create trip",
		})
	}

	logger.Success(fmt.Sprintf("Trip %s created", trip.ID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Trip created successfully",
		Data:    trip,
	})
}

// Show returns a trip with its cached conflict snapshot
func (tc *TripController) Show(c *fiber.Ctx) error {
	tripID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid trip id",
		})
	}

	var trip tripModel.Trip
	if err := tc.DB.First(&trip, "id = ?", tripID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Trip not found",
			})
		}
		logger.Error("Failed to load trip", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Trip retrieved successfully",
		Data:    trip,
	})
}
