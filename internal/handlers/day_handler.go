package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/northlightstudio/studio-booking/internal/cache"
	"github.com/northlightstudio/studio-booking/internal/dates"
	domain "github.com/northlightstudio/studio-booking/internal/domain/booking"
	"github.com/northlightstudio/studio-booking/internal/httperr"
	"github.com/northlightstudio/studio-booking/internal/httpresp"
	"github.com/northlightstudio/studio-booking/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type DayHandler struct {
	repo     domain.Repository
	cat      domain.Catalogue
	dayCache *cache.DayCache
}

// NewDayHandler wires the day/availability endpoints; dayCache may be nil.
func NewDayHandler(repo domain.Repository, cat domain.Catalogue, dayCache *cache.DayCache) *DayHandler {
	return &DayHandler{
		repo:     repo,
		cat:      cat,
		dayCache: dayCache,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateDayRequest struct {
	Date     string `json:"date" binding:"required"`
	Disabled bool   `json:"disabled"`
}

type EditDayRequest struct {
	Date     string `json:"date" binding:"required"`
	Disabled bool   `json:"disabled"`
}

type SelectedHour struct {
	Hour    string `json:"hour" binding:"required"`
	Enabled *bool  `json:"enabled"`
}

type UpdateOrCreateDayRequest struct {
	Date          string         `json:"date" binding:"required"`
	SelectedHours []SelectedHour `json:"selectedHours"`
}

type UpdateMaxDateRequest struct {
	MaxDate string `json:"maxDate" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *DayHandler) List(c *gin.Context) {
	days, err := h.repo.ListDays(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "day_store_error", "Failed to list days.")
		return
	}
	httpresp.List(c, days)
}

func (h *DayHandler) ListBlackout(c *gin.Context) {
	days, err := h.repo.ListBlackoutDays(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "day_store_error", "Failed to list blackout days.")
		return
	}
	httpresp.List(c, days)
}

// ======================================================
// GET
// ======================================================

func (h *DayHandler) Get(c *gin.Context) {
	date := c.Param("date")
	if !dates.IsValid(date) {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	ctx := c.Request.Context()

	if day, ok := h.dayCache.Get(ctx, date); ok {
		httpresp.OK(c, day)
		return
	}

	day, err := h.repo.GetDay(ctx, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "day_not_found", "Day not found.")
			return
		}
		httperr.Internal(c, "day_store_error", "Failed to load day.")
		return
	}

	h.dayCache.Set(ctx, date, day)
	httpresp.OK(c, day)
}

// ======================================================
// CREATE
// ======================================================

func (h *DayHandler) Create(c *gin.Context) {
	var req CreateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date is required.")
		return
	}
	if !dates.IsValid(req.Date) {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	ctx := c.Request.Context()

	exists, err := h.repo.DayExists(ctx, req.Date)
	if err != nil {
		httperr.Internal(c, "day_store_error", "Failed to check day.")
		return
	}
	if exists {
		httperr.BadRequest(c, "date_already_exists", "Date already exists.")
		return
	}

	day := &models.Day{
		Date:     req.Date,
		Disabled: req.Disabled,
		Hours:    []models.HourBlock{},
	}
	if err := h.repo.CreateDay(ctx, day); err != nil {
		httperr.Internal(c, "day_store_error", "Failed to create day.")
		return
	}

	c.JSON(201, day)
}

// ======================================================
// EDIT (enable / disable)
// ======================================================

// Edit upserts the disabled flag for a date. Disabling a day clears its
// hour list so nothing on it remains bookable.
func (h *DayHandler) Edit(c *gin.Context) {
	var req EditDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date is required.")
		return
	}
	if !dates.IsValid(req.Date) {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	ctx := c.Request.Context()

	day, err := h.repo.GetDay(ctx, req.Date)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Internal(c, "day_store_error", "Failed to load day.")
			return
		}

		day = &models.Day{
			Date:     req.Date,
			Disabled: req.Disabled,
			Hours:    []models.HourBlock{},
		}
		if err := h.repo.CreateDay(ctx, day); err != nil {
			httperr.Internal(c, "day_store_error", "Failed to create day.")
			return
		}
		httpresp.OK(c, day)
		return
	}

	day.Disabled = req.Disabled
	if req.Disabled {
		day.Hours = []models.HourBlock{}
	}

	if err := h.repo.SaveDay(ctx, day); err != nil {
		httperr.Internal(c, "day_store_error", "Failed to save day.")
		return
	}
	httpresp.OK(c, day)
}

// ======================================================
// UPDATE OR CREATE (replace hour list)
// ======================================================

// UpdateOrCreate replaces a day's hour list wholesale and re-enables the
// day; slots default to enabled unless the payload says otherwise.
func (h *DayHandler) UpdateOrCreate(c *gin.Context) {
	var req UpdateOrCreateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date and selectedHours are required.")
		return
	}
	if !dates.IsValid(req.Date) {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	hours := make([]models.HourBlock, 0, len(req.SelectedHours))
	for _, sh := range req.SelectedHours {
		enabled := true
		if sh.Enabled != nil {
			enabled = *sh.Enabled
		}
		hours = append(hours, models.HourBlock{Hour: sh.Hour, Enabled: enabled})
	}
	h.cat.Sort(hours)

	ctx := c.Request.Context()

	day, err := h.repo.GetDay(ctx, req.Date)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Internal(c, "day_store_error", "Failed to load day.")
			return
		}

		day = &models.Day{
			Date:     req.Date,
			Disabled: false,
			Hours:    hours,
		}
		if err := h.repo.CreateDay(ctx, day); err != nil {
			httperr.Internal(c, "day_store_error", "Failed to create day.")
			return
		}
		httpresp.OK(c, day)
		return
	}

	day.Disabled = false
	day.Hours = hours

	if err := h.repo.SaveDay(ctx, day); err != nil {
		httperr.Internal(c, "day_store_error", "Failed to save day.")
		return
	}
	httpresp.OK(c, day)
}

// ======================================================
// MAX DATE (booking horizon)
// ======================================================

func (h *DayHandler) GetMaxDate(c *gin.Context) {
	a, err := h.repo.GetMaxDate(c.Request.Context())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "max_date_not_found", "Max date not set.")
			return
		}
		httperr.Internal(c, "availability_store_error", "Failed to load max date.")
		return
	}

	c.JSON(200, gin.H{"maxDate": a.MaxDate})
}

func (h *DayHandler) UpdateMaxDate(c *gin.Context) {
	var req UpdateMaxDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "maxDate is required.")
		return
	}
	if !dates.IsValid(req.MaxDate) {
		httperr.BadRequest(c, "invalid_date", "maxDate must be YYYY-MM-DD.")
		return
	}

	ctx := c.Request.Context()

	a, err := h.repo.GetMaxDate(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Internal(c, "availability_store_error", "Failed to load max date.")
			return
		}
		a = &models.Availability{}
	}

	a.MaxDate = req.MaxDate
	if err := h.repo.SaveMaxDate(ctx, a); err != nil {
		httperr.Internal(c, "availability_store_error", "Failed to save max date.")
		return
	}
	httpresp.OK(c, a)
}
