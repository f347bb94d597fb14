package booking

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Booking is the canonical record for one reserved trip component. Every kind
// (flight, hotel, car rental, activity) is normalized into this shape; the
// kind-specific payload lives in KindDetails and is never read by the
// validation rules.
type Booking struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TripID uuid.UUID `gorm:"type:uuid;not null;index" json:"trip_id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	Kind   BookingKind   `gorm:"type:varchar(20);not null;index" json:"kind"`
	Status BookingStatus `gorm:"type:varchar(20);not null;default:reserved;index" json:"status"`

	StartDate time.Time  `gorm:"not null;index" json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"` // nil for point-in-time bookings

	StartLocation string  `gorm:"type:varchar(255);not null" json:"start_location"`
	EndLocation   *string `gorm:"type:varchar(255)" json:"end_location,omitempty"`

	ConfirmationCode string  `gorm:"type:varchar(20);not null" json:"confirmation_code"`
	SupplierName     string  `gorm:"type:varchar(255)" json:"supplier_name"`
	TotalAmount      float64 `gorm:"not null" json:"total_amount"`
	Currency         string  `gorm:"type:varchar(3);not null" json:"currency"`

	KindDetails datatypes.JSON `gorm:"type:jsonb" json:"kind_details,omitempty"`

	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

// IsActive reports whether the booking still counts toward trip validation.
// Cancelled bookings are kept for history but excluded from every rule.
func (b *Booking) IsActive() bool {
	return b.Status != BookingStatusCancelled
}
