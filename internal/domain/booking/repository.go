package booking

import (
	"context"
	"errors"

	"github.com/northlightstudio/studio-booking/internal/models"
)

// ErrDayVersionConflict signals that a conditional day write lost the race
// to a concurrent mutation; callers reload and retry.
var ErrDayVersionConflict = errors.New("day version conflict")

type Repository interface {
	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	ListBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		id uint,
	) error

	// -------- Day --------
	GetDay(
		ctx context.Context,
		date string,
	) (*models.Day, error)

	DayExists(
		ctx context.Context,
		date string,
	) (bool, error)

	CreateDay(
		ctx context.Context,
		d *models.Day,
	) error

	// SaveDay persists the day and its hour list, conditional on the
	// loaded version. Returns ErrDayVersionConflict when outdated.
	SaveDay(
		ctx context.Context,
		d *models.Day,
	) error

	ListDays(
		ctx context.Context,
	) ([]models.Day, error)

	ListBlackoutDays(
		ctx context.Context,
	) ([]models.Day, error)

	// -------- Availability (singleton) --------
	GetMaxDate(
		ctx context.Context,
	) (*models.Availability, error)

	SaveMaxDate(
		ctx context.Context,
		a *models.Availability,
	) error
}
