package models

import "time"

// JSON field names keep the legacy camelCase wire contract the frontend
// already depends on.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name          string `gorm:"size:100;not null" json:"name"`
	Email         string `gorm:"size:100;not null" json:"email"`
	PhoneNumber   string `gorm:"size:20;not null" json:"phoneNumber"`
	Message       string `gorm:"size:500" json:"message"`
	HowDidYouHear string `gorm:"size:100" json:"howDidYouHear"`

	Date  string `gorm:"size:10;index;not null" json:"date"`
	Hours string `gorm:"size:50;not null" json:"hours"`

	Status        string `gorm:"size:20;default:'unconfirmed'" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'unpaid'" json:"paymentStatus"`
	PaymentMethod string `gorm:"size:20;default:'none'" json:"paymentMethod"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
