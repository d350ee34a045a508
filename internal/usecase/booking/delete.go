package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/northlightstudio/studio-booking/internal/audit"
	domain "github.com/northlightstudio/studio-booking/internal/domain/booking"
	"github.com/northlightstudio/studio-booking/internal/models"
	"github.com/northlightstudio/studio-booking/pkg/logging"
)

type DeleteBooking struct {
	repo   domain.Repository
	cat    domain.Catalogue
	audit  *audit.Dispatcher
	logger *logging.Logger
}

func NewDeleteBooking(
	repo domain.Repository,
	cat domain.Catalogue,
	auditor *audit.Dispatcher,
	logger *logging.Logger,
) *DeleteBooking {
	if logger == nil {
		logger = logging.Default()
	}
	return &DeleteBooking{
		repo:   repo,
		cat:    cat,
		audit:  auditor,
		logger: logger,
	}
}

// Execute removes the booking and hands its slot back to the day. Slot
// release uses the title-based fuzzy match because stored labels may have
// drifted from the catalogue over time.
func (uc *DeleteBooking) Execute(ctx context.Context, bookingID uint) error {
	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	err = applyDayChange(ctx, uc.repo, b.Date, func(day *models.Day) {
		domain.ReleaseHourByTitle(day, uc.cat, b.Hours)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			uc.logger.Warn("no day record for deleted booking, skipping slot release",
				"booking_id", b.ID, "date", b.Date)
		} else {
			uc.logger.Error("slot release failed for deleted booking",
				"booking_id", b.ID, "date", b.Date, "error", err)
		}
	}

	if err := uc.repo.DeleteBooking(ctx, bookingID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &bookingID,
		Metadata: map[string]any{"date": b.Date, "hours": b.Hours},
	})

	return nil
}
