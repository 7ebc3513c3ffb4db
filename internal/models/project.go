package models

import "time"

// Project types.
const (
	ProjectHourly = "hourly"
	ProjectFixed  = "fixed"
)

// Project is a client engagement. For hourly projects Rate is the USD
// hourly rate; for fixed projects it is the total contracted amount
// that milestone entries draw down.
type Project struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"size:128;not null"`
	Type      string  `gorm:"size:16;not null"` // hourly / fixed
	Rate      float64 `gorm:"not null"`
	Color     string  `gorm:"size:16"` // dashboard display color, e.g. #22c55e
	CreatedAt time.Time
	UpdatedAt time.Time
}
