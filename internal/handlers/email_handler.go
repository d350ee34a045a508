package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/northlightstudio/studio-booking/internal/domain/booking"
	"github.com/northlightstudio/studio-booking/internal/httperr"
)

// BookingMailer is the slice of the notification dispatcher the manual
// email endpoints need.
type BookingMailer interface {
	Send(ctx context.Context, to, subject, text string) error
	SendStatusEmail(ctx context.Context, to, status string, bookingID uint, depositLink string) error
	SendBookingChange(ctx context.Context, to, name string, bookingID uint, newDate, newHours string) error
	SendPaymentStatus(ctx context.Context, to, name string, bookingID uint, paymentStatus string) error
}

// ======================================================
// HANDLER
// ======================================================

type EmailHandler struct {
	repo   domain.Repository
	mailer BookingMailer
}

func NewEmailHandler(repo domain.Repository, mailer BookingMailer) *EmailHandler {
	return &EmailHandler{
		repo:   repo,
		mailer: mailer,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SendEmailRequest struct {
	To      string `json:"to" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Text    string `json:"text" binding:"required"`
}

type SendStatusEmailRequest struct {
	To          string `json:"to" binding:"required,email"`
	Status      string `json:"status" binding:"required"`
	BookingID   uint   `json:"bookingId" binding:"required"`
	DepositLink string `json:"depositLink"`
}

type SendBookingChangeEmailRequest struct {
	To       string `json:"to" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	ID       uint   `json:"id" binding:"required"`
	NewDate  string `json:"newDate" binding:"required"`
	NewHours string `json:"newHours" binding:"required"`
}

type SendPaymentStatusEmailRequest struct {
	To            string `json:"to" binding:"required,email"`
	Name          string `json:"name" binding:"required"`
	ID            uint   `json:"id" binding:"required"`
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

// ======================================================
// SEND (free-form)
// ======================================================

func (h *EmailHandler) Send(c *gin.Context) {
	var req SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "to, subject and text are required.")
		return
	}

	if err := h.mailer.Send(c.Request.Context(), req.To, req.Subject, req.Text); err != nil {
		httperr.Internal(c, "email_send_failed", "Error sending email.")
		return
	}

	c.JSON(200, gin.H{"message": "Email sent successfully"})
}

// ======================================================
// SEND STATUS
// ======================================================

// SendStatus emails a confirmation or denial notice. A booking that is
// already confirmed is never re-notified.
func (h *EmailHandler) SendStatus(c *gin.Context) {
	var req SendStatusEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "to, status and bookingId are required.")
		return
	}

	ctx := c.Request.Context()

	b, err := h.repo.GetBooking(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		httperr.Internal(c, "booking_store_error", "Failed to load booking.")
		return
	}

	if b.Status == string(domain.StatusConfirmed) {
		c.JSON(200, gin.H{"message": "Booking already confirmed; no email sent."})
		return
	}

	if err := h.mailer.SendStatusEmail(ctx, req.To, req.Status, req.BookingID, req.DepositLink); err != nil {
		httperr.Internal(c, "email_send_failed", "Error sending status email.")
		return
	}

	c.JSON(200, gin.H{
		"message": fmt.Sprintf("Status email (%s) sent successfully to %s", req.Status, req.To),
	})
}

// ======================================================
// SEND BOOKING CHANGE
// ======================================================

func (h *EmailHandler) SendBookingChange(c *gin.Context) {
	var req SendBookingChangeEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "to, name, id, newDate and newHours are required.")
		return
	}

	err := h.mailer.SendBookingChange(c.Request.Context(), req.To, req.Name, req.ID, req.NewDate, req.NewHours)
	if err != nil {
		httperr.Internal(c, "email_send_failed", "Error sending booking change email.")
		return
	}

	c.JSON(200, gin.H{
		"message": fmt.Sprintf("Booking change email sent successfully to %s", req.To),
	})
}

// ======================================================
// SEND PAYMENT STATUS
// ======================================================

func (h *EmailHandler) SendPaymentStatus(c *gin.Context) {
	var req SendPaymentStatusEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "to, name, id and paymentStatus are required.")
		return
	}

	err := h.mailer.SendPaymentStatus(c.Request.Context(), req.To, req.Name, req.ID, req.PaymentStatus)
	if err != nil {
		httperr.Internal(c, "email_send_failed", "Error sending payment status email.")
		return
	}

	c.JSON(200, gin.H{
		"message": fmt.Sprintf("Payment status email sent successfully to %s", req.To),
	})
}
