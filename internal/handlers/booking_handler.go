package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/northlightstudio/studio-booking/internal/domain/booking"
	"github.com/northlightstudio/studio-booking/internal/httperr"
	"github.com/northlightstudio/studio-booking/internal/httpresp"
	ucBooking "github.com/northlightstudio/studio-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	repo         domain.Repository
	createUC     *ucBooking.CreateBooking
	updateUC     *ucBooking.UpdateBookingStatus
	rescheduleUC *ucBooking.RescheduleBooking
	deleteUC     *ucBooking.DeleteBooking
}

func NewBookingHandler(
	repo domain.Repository,
	createUC *ucBooking.CreateBooking,
	updateUC *ucBooking.UpdateBookingStatus,
	rescheduleUC *ucBooking.RescheduleBooking,
	deleteUC *ucBooking.DeleteBooking,
) *BookingHandler {
	return &BookingHandler{
		repo:         repo,
		createUC:     createUC,
		updateUC:     updateUC,
		rescheduleUC: rescheduleUC,
		deleteUC:     deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	PhoneNumber   string `json:"phoneNumber" binding:"required"`
	Message       string `json:"message"`
	HowDidYouHear string `json:"howDidYouHear"`
	Date          string `json:"date" binding:"required"`
	Hours         string `json:"hours" binding:"required"`
}

type UpdateBookingRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	PaymentMethod string `json:"paymentMethod"`
}

type RescheduleBookingRequest struct {
	Date  string `json:"date" binding:"required"`
	Hours string `json:"hours" binding:"required"`
}

// ======================================================
// HELPERS
// ======================================================

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Booking id must be a positive integer.")
		return 0, false
	}
	return uint(id), true
}

// writeBookingError maps use-case errors onto the HTTP surface: business
// rule violations are 400, a missing booking is 404, everything else 500.
func writeBookingError(c *gin.Context, err error) {
	if code := httperr.BusinessCode(err); code != "" {
		httperr.BadRequest(c, code, "Invalid booking request.")
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}
	httperr.Internal(c, "booking_store_error", "Failed to process booking.")
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing or malformed booking fields.")
		return
	}

	b, emailStatus, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		Name:          req.Name,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		Message:       req.Message,
		HowDidYouHear: req.HowDidYouHear,
		Date:          req.Date,
		Hours:         req.Hours,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(201, gin.H{
		"booking":     b,
		"emailStatus": emailStatus,
		"message":     "Booking request received.",
	})
}

// ======================================================
// LIST / GET
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.repo.ListBookings(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "booking_store_error", "Failed to list bookings.")
		return
	}
	httpresp.List(c, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.repo.GetBooking(c.Request.Context(), id)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	httpresp.OK(c, b)
}

// ======================================================
// UPDATE (status / payment)
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing or malformed update fields.")
		return
	}

	if req.Status == "" && req.PaymentStatus == "" && req.PaymentMethod == "" {
		httperr.BadRequest(c, "empty_update", "Nothing to update.")
		return
	}

	b, err := h.updateUC.Execute(c.Request.Context(), id, ucBooking.UpdateBookingInput{
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	httpresp.OK(c, b)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *BookingHandler) Reschedule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date and hours are required.")
		return
	}

	b, err := h.rescheduleUC.Execute(c.Request.Context(), id, req.Date, req.Hours)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	httpresp.OK(c, b)
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(200, gin.H{"message": "Booking deleted."})
}
