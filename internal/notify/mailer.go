package notify

import (
	"context"
	"fmt"

	"github.com/northlightstudio/studio-booking/internal/models"
	"github.com/northlightstudio/studio-booking/pkg/logging"
)

// MailerConfig carries the studio identity the templates need. Passed in
// explicitly; no process-wide transporter state.
type MailerConfig struct {
	StudioName    string
	AdminEmail    string
	PublicBaseURL string
}

// Mailer renders and sends the transactional booking emails.
type Mailer struct {
	sender EmailSender
	cfg    MailerConfig
	logger *logging.Logger
}

func NewMailer(sender EmailSender, cfg MailerConfig, logger *logging.Logger) *Mailer {
	if logger == nil {
		logger = logging.Default()
	}
	return &Mailer{
		sender: sender,
		cfg:    cfg,
		logger: logger,
	}
}

// Send delivers a free-form email.
func (m *Mailer) Send(ctx context.Context, to, subject, text string) error {
	return m.sender.Send(ctx, EmailMessage{
		To:      to,
		Subject: subject,
		Body:    text,
	})
}

// SendBookingReceived acknowledges a new booking request to the customer.
func (m *Mailer) SendBookingReceived(ctx context.Context, b *models.Booking) error {
	body := fmt.Sprintf(`Hi %s,

Thanks for your booking request! We've received it and will confirm your session shortly.

%s

— %s`, b.Name, bookingDetails(b), m.cfg.StudioName)

	return m.sender.Send(ctx, EmailMessage{
		To:      b.Email,
		ToName:  b.Name,
		Subject: fmt.Sprintf("We received your booking request — %s", m.cfg.StudioName),
		Body:    body,
	})
}

// SendAdminAlert notifies the studio inbox about a new booking request.
func (m *Mailer) SendAdminAlert(ctx context.Context, b *models.Booking) error {
	body := fmt.Sprintf(`A new booking request has come in.

%s

Confirm or deny it from the dashboard: %s/admin/bookings/%d`,
		bookingDetails(b), m.cfg.PublicBaseURL, b.ID)

	return m.sender.Send(ctx, EmailMessage{
		To:      m.cfg.AdminEmail,
		Subject: fmt.Sprintf("New booking request: %s on %s", b.Name, b.Date),
		Body:    body,
	})
}

// SendStatusEmail tells a customer their booking was confirmed or denied.
// The deposit link is only included on confirmations.
func (m *Mailer) SendStatusEmail(ctx context.Context, to, status string, bookingID uint, depositLink string) error {
	var subject, body string

	switch status {
	case "confirmed":
		subject = fmt.Sprintf("Your booking is confirmed — %s", m.cfg.StudioName)
		body = fmt.Sprintf(`Good news! Your booking (#%d) has been confirmed.

To lock in your session, please pay the deposit:
%s

See you soon,
%s`, bookingID, depositLink, m.cfg.StudioName)
	case "denied":
		subject = fmt.Sprintf("Update on your booking — %s", m.cfg.StudioName)
		body = fmt.Sprintf(`Unfortunately we couldn't accommodate your booking request (#%d).

Feel free to submit a new request for another date or time.

— %s`, bookingID, m.cfg.StudioName)
	default:
		subject = fmt.Sprintf("Update on your booking — %s", m.cfg.StudioName)
		body = fmt.Sprintf(`Your booking (#%d) status is now: %s.

— %s`, bookingID, status, m.cfg.StudioName)
	}

	return m.sender.Send(ctx, EmailMessage{
		To:      to,
		Subject: subject,
		Body:    body,
	})
}

// SendBookingChange tells a customer their session was rescheduled.
func (m *Mailer) SendBookingChange(ctx context.Context, to, name string, bookingID uint, newDate, newHours string) error {
	body := fmt.Sprintf(`Hi %s,

Your booking (#%d) has been moved.

New date: %s
New session: %s

If this doesn't work for you, just reply to this email.

— %s`, name, bookingID, newDate, newHours, m.cfg.StudioName)

	return m.sender.Send(ctx, EmailMessage{
		To:      to,
		ToName:  name,
		Subject: fmt.Sprintf("Your booking has been rescheduled — %s", m.cfg.StudioName),
		Body:    body,
	})
}

// SendPaymentStatus tells a customer their payment status changed.
func (m *Mailer) SendPaymentStatus(ctx context.Context, to, name string, bookingID uint, paymentStatus string) error {
	body := fmt.Sprintf(`Hi %s,

The payment status of your booking (#%d) is now: %s.

— %s`, name, bookingID, paymentStatus, m.cfg.StudioName)

	return m.sender.Send(ctx, EmailMessage{
		To:      to,
		ToName:  name,
		Subject: fmt.Sprintf("Payment update for your booking — %s", m.cfg.StudioName),
		Body:    body,
	})
}

func bookingDetails(b *models.Booking) string {
	return fmt.Sprintf(`Booking Details:
----------------
Name: %s
Email: %s
Phone Number: %s
Message: %s
How Did You Hear: %s
Date: %s
Hours: %s`,
		b.Name, b.Email, b.PhoneNumber, b.Message, b.HowDidYouHear, b.Date, b.Hours)
}
