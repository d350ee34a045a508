package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/northlightstudio/studio-booking/internal/audit"
	"github.com/northlightstudio/studio-booking/internal/dates"
	domain "github.com/northlightstudio/studio-booking/internal/domain/booking"
	"github.com/northlightstudio/studio-booking/internal/httperr"
	"github.com/northlightstudio/studio-booking/internal/models"
	"github.com/northlightstudio/studio-booking/pkg/logging"
)

// ======================================================
// USE CASE
// ======================================================

type RescheduleBooking struct {
	repo   domain.Repository
	cat    domain.Catalogue
	audit  *audit.Dispatcher
	logger *logging.Logger
}

func NewRescheduleBooking(
	repo domain.Repository,
	cat domain.Catalogue,
	auditor *audit.Dispatcher,
	logger *logging.Logger,
) *RescheduleBooking {
	if logger == nil {
		logger = logging.Default()
	}
	return &RescheduleBooking{
		repo:   repo,
		cat:    cat,
		audit:  auditor,
		logger: logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RescheduleBooking) Execute(
	ctx context.Context,
	bookingID uint,
	newDate string,
	newHours string,
) (*models.Booking, error) {

	if !dates.IsValid(newDate) {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if !uc.cat.Contains(newHours) {
		return nil, httperr.ErrBusiness("invalid_hours")
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	oldDate := b.Date
	oldHours := b.Hours

	b.Date = newDate
	b.Hours = newHours

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.releaseOldSlot(ctx, b.ID, oldDate, oldHours)
	uc.claimNewSlot(ctx, b.ID, newDate, newHours)

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_rescheduled",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"from_date":  oldDate,
			"from_hours": oldHours,
			"to_date":    newDate,
			"to_hours":   newHours,
		},
	})

	return b, nil
}

// releaseOldSlot returns the vacated slot on the old day. Soft: the
// booking move has already committed, so failures only log.
func (uc *RescheduleBooking) releaseOldSlot(ctx context.Context, bookingID uint, date, hours string) {
	exists, err := uc.repo.DayExists(ctx, date)
	if err != nil {
		uc.logger.Error("old day lookup failed during reschedule",
			"booking_id", bookingID, "date", date, "error", err)
		return
	}
	if !exists {
		return
	}

	err = applyDayChange(ctx, uc.repo, date, func(day *models.Day) {
		domain.ReleaseHour(day, uc.cat, hours)
	})
	if err != nil {
		uc.logger.Error("failed to release old slot during reschedule",
			"booking_id", bookingID, "date", date, "error", err)
	}
}

// claimNewSlot holds the slot on the new day without making it bookable:
// the booking is still pending re-confirmation, so the slot is stored
// disabled rather than removed.
func (uc *RescheduleBooking) claimNewSlot(ctx context.Context, bookingID uint, date, hours string) {
	err := applyDayChange(ctx, uc.repo, date, func(day *models.Day) {
		domain.DisableHour(day, uc.cat, hours)
	})
	if err == nil {
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		day := &models.Day{
			Date:     date,
			Disabled: false,
			Hours: []models.HourBlock{
				{Hour: hours, Enabled: false},
			},
		}
		if err := uc.repo.CreateDay(ctx, day); err != nil {
			uc.logger.Error("failed to create day for rescheduled booking",
				"booking_id", bookingID, "date", date, "error", err)
		}
		return
	}

	uc.logger.Error("failed to hold new slot during reschedule",
		"booking_id", bookingID, "date", date, "error", err)
}
