// models/booking/booking_event.go
package booking

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BookingEvent is a full snapshot of a Booking row at the moment of a
// lifecycle transition. One booking produces many event rows, so none of the
// columns carry unique constraints.
type BookingEvent struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	BookingID uuid.UUID `gorm:"type:uuid;not null;index" json:"booking_id"`
	TripID    uuid.UUID `gorm:"type:uuid;not null;index" json:"trip_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`

	Kind   BookingKind   `gorm:"type:varchar(20);not null" json:"kind"`
	Status BookingStatus `gorm:"type:varchar(20);not null" json:"status"`

	StartDate time.Time  `gorm:"not null" json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	StartLocation string  `gorm:"type:varchar(255);not null" json:"start_location"`
	EndLocation   *string `gorm:"type:varchar(255)" json:"end_location,omitempty"`

	ConfirmationCode string  `gorm:"type:varchar(20);not null" json:"confirmation_code"`
	SupplierName     string  `gorm:"type:varchar(255)" json:"supplier_name"`
	TotalAmount      float64 `gorm:"not null" json:"total_amount"`
	Currency         string  `gorm:"type:varchar(3);not null" json:"currency"`

	KindDetails datatypes.JSON `gorm:"type:jsonb" json:"kind_details,omitempty"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	EventType string    `gorm:"type:varchar(50);not null;index" json:"event_type"` // created, cancelled
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
