package booking

import (
	"context"

	"github.com/northlightstudio/studio-booking/internal/audit"
	"github.com/northlightstudio/studio-booking/internal/dates"
	domain "github.com/northlightstudio/studio-booking/internal/domain/booking"
	"github.com/northlightstudio/studio-booking/internal/httperr"
	"github.com/northlightstudio/studio-booking/internal/models"
	"github.com/northlightstudio/studio-booking/pkg/logging"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateBookingInput struct {
	Name          string
	Email         string
	PhoneNumber   string
	Message       string
	HowDidYouHear string
	Date          string
	Hours         string
}

// EmailStatus reports each notification channel separately; a failed email
// never fails the booking itself.
type EmailStatus struct {
	Customer string `json:"customer"`
	Admin    string `json:"admin"`
}

// Mailer is the slice of the notification dispatcher the create flow needs.
type Mailer interface {
	SendBookingReceived(ctx context.Context, b *models.Booking) error
	SendAdminAlert(ctx context.Context, b *models.Booking) error
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	cat    domain.Catalogue
	mailer Mailer
	audit  *audit.Dispatcher
	logger *logging.Logger
}

func NewCreateBooking(
	repo domain.Repository,
	cat domain.Catalogue,
	mailer Mailer,
	auditor *audit.Dispatcher,
	logger *logging.Logger,
) *CreateBooking {
	if logger == nil {
		logger = logging.Default()
	}
	return &CreateBooking{
		repo:   repo,
		cat:    cat,
		mailer: mailer,
		audit:  auditor,
		logger: logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, EmailStatus, error) {

	emailStatus := EmailStatus{Customer: "sent", Admin: "sent"}

	if !dates.IsValid(in.Date) {
		return nil, emailStatus, httperr.ErrBusiness("invalid_date")
	}
	if !uc.cat.Contains(in.Hours) {
		return nil, emailStatus, httperr.ErrBusiness("invalid_hours")
	}

	// Lazily create the day record; slots are only pruned on confirm, so
	// a fresh day starts with an empty hour list.
	exists, err := uc.repo.DayExists(ctx, in.Date)
	if err != nil {
		return nil, emailStatus, err
	}
	if !exists {
		day := &models.Day{
			Date:     in.Date,
			Disabled: false,
			Hours:    []models.HourBlock{},
		}
		if err := uc.repo.CreateDay(ctx, day); err != nil {
			return nil, emailStatus, err
		}
	}

	b := &models.Booking{
		Name:          in.Name,
		Email:         in.Email,
		PhoneNumber:   in.PhoneNumber,
		Message:       in.Message,
		HowDidYouHear: in.HowDidYouHear,
		Date:          in.Date,
		Hours:         in.Hours,
		Status:        string(domain.InitialStatus()),
		PaymentStatus: string(domain.PaymentUnpaid),
		PaymentMethod: string(domain.MethodNone),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, emailStatus, err
	}

	// Customer then admin, each failure isolated.
	if err := uc.mailer.SendBookingReceived(ctx, b); err != nil {
		uc.logger.Error("customer acknowledgment email failed", "booking_id", b.ID, "error", err)
		emailStatus.Customer = "failed"
	}
	if err := uc.mailer.SendAdminAlert(ctx, b); err != nil {
		uc.logger.Error("admin alert email failed", "booking_id", b.ID, "error", err)
		emailStatus.Admin = "failed"
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"date": b.Date, "hours": b.Hours},
	})

	return b, emailStatus, nil
}
