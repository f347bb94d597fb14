package trip

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// TripCreateRequest is the payload for creating a trip aggregate.
type TripCreateRequest struct {
	UserID         string     `json:"user_id" validate:"required,uuid"`
	Name           string     `json:"name" validate:"required,min=1,max=255"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	BudgetAmount   *float64   `json:"budget_amount" validate:"omitempty,gt=0"`
	BudgetCurrency string     `json:"budget_currency" validate:"omitempty,len=3"`
}

func (r TripCreateRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return fmt.Errorf("end_date must not be before start_date")
	}
	return nil
}
