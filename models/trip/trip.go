package trip

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Trip is the aggregate root being validated. HasConflicts, LastValidatedAt
// and ConflictDetails are a denormalized snapshot of the last validation run;
// they are fully rewritten on every booking mutation and never patched
// incrementally.
type Trip struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	BudgetAmount   *float64 `json:"budget_amount,omitempty"`
	BudgetCurrency string   `gorm:"type:varchar(3)" json:"budget_currency,omitempty"`

	HasConflicts    bool           `gorm:"not null;default:false" json:"has_conflicts"`
	LastValidatedAt *time.Time     `json:"last_validated_at,omitempty"`
	ConflictDetails datatypes.JSON `gorm:"type:jsonb" json:"conflict_details,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
