package models

import "time"

// Day lists the hour-slots still bookable on a calendar date. An entry in
// Hours with Enabled=true means a client may book that slot.
type Day struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date     string `gorm:"size:10;uniqueIndex;not null" json:"date"`
	Disabled bool   `gorm:"not null;default:false" json:"disabled"`

	Hours []HourBlock `gorm:"foreignKey:DayID;constraint:OnDelete:CASCADE" json:"hours"`

	// Version guards the read-modify-write cycle on Hours (optimistic
	// concurrency; conditional update at the store boundary).
	Version int `gorm:"not null;default:0" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type HourBlock struct {
	ID    uint `gorm:"primaryKey" json:"-"`
	DayID uint `gorm:"index;not null" json:"-"`

	Hour    string `gorm:"size:50;not null" json:"hour"`
	Enabled bool   `gorm:"not null;default:true" json:"enabled"`
}
