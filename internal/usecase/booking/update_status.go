package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/northlightstudio/studio-booking/internal/audit"
	domain "github.com/northlightstudio/studio-booking/internal/domain/booking"
	"github.com/northlightstudio/studio-booking/internal/httperr"
	"github.com/northlightstudio/studio-booking/internal/models"
	"github.com/northlightstudio/studio-booking/pkg/logging"
)

// ======================================================
// INPUT
// ======================================================

// Empty fields are left unchanged.
type UpdateBookingInput struct {
	Status        string
	PaymentStatus string
	PaymentMethod string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateBookingStatus struct {
	repo   domain.Repository
	cat    domain.Catalogue
	audit  *audit.Dispatcher
	logger *logging.Logger
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	cat domain.Catalogue,
	auditor *audit.Dispatcher,
	logger *logging.Logger,
) *UpdateBookingStatus {
	if logger == nil {
		logger = logging.Default()
	}
	return &UpdateBookingStatus{
		repo:   repo,
		cat:    cat,
		audit:  auditor,
		logger: logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	bookingID uint,
	in UpdateBookingInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	statusChanged := false

	if in.Status != "" {
		if !domain.IsValidStatus(in.Status) {
			return nil, httperr.ErrBusiness("invalid_status")
		}

		next := domain.Status(in.Status)
		if err := domain.CanTransition(domain.Status(b.Status), next); err != nil {
			return nil, err
		}

		statusChanged = string(next) != b.Status
		b.Status = in.Status
	}

	if in.PaymentStatus != "" {
		if !domain.IsValidPaymentStatus(in.PaymentStatus) {
			return nil, httperr.ErrBusiness("invalid_payment_status")
		}
		b.PaymentStatus = in.PaymentStatus
	}

	if in.PaymentMethod != "" {
		if !domain.IsValidPaymentMethod(in.PaymentMethod) {
			return nil, httperr.ErrBusiness("invalid_payment_method")
		}
		b.PaymentMethod = in.PaymentMethod
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	action := "booking_updated"
	if statusChanged {
		uc.reconcile(ctx, b)
		action = "booking_" + b.Status
	}

	uc.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"date": b.Date, "hours": b.Hours},
	})

	return b, nil
}

// reconcile adjusts the day's hour-slots after a status change. Errors
// here are soft: the booking update has already committed, so slot
// accounting is skipped rather than rolled back.
func (uc *UpdateBookingStatus) reconcile(ctx context.Context, b *models.Booking) {
	var mutate func(*models.Day)

	switch domain.Status(b.Status) {
	case domain.StatusConfirmed:
		mutate = func(day *models.Day) {
			domain.TakeHour(day, uc.cat, b.Hours)
		}
	case domain.StatusDenied:
		mutate = func(day *models.Day) {
			domain.PushHourIfAbsent(day, uc.cat, b.Hours)
		}
	default:
		return
	}

	err := applyDayChange(ctx, uc.repo, b.Date, mutate)
	if err == nil {
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		uc.logger.Warn("no day record for booking date, skipping slot accounting",
			"booking_id", b.ID, "date", b.Date)
		return
	}

	uc.logger.Error("slot accounting failed after status change",
		"booking_id", b.ID, "date", b.Date, "error", err)
}
