package models

import "time"

// Availability is a singleton row holding the global booking horizon.
type Availability struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	MaxDate string `gorm:"size:10;not null" json:"maxDate"`

	UpdatedAt time.Time `json:"updatedAt"`
}
