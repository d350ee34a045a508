package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/northlightstudio/studio-booking/internal/audit"
	"github.com/northlightstudio/studio-booking/internal/cache"
	"github.com/northlightstudio/studio-booking/internal/config"
	domain "github.com/northlightstudio/studio-booking/internal/domain/booking"
	"github.com/northlightstudio/studio-booking/internal/handlers"
	infraRepo "github.com/northlightstudio/studio-booking/internal/infra/repository"
	"github.com/northlightstudio/studio-booking/internal/middleware"
	"github.com/northlightstudio/studio-booking/internal/notify"
	ucBooking "github.com/northlightstudio/studio-booking/internal/usecase/booking"
	"github.com/northlightstudio/studio-booking/pkg/logging"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *logging.Logger) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	dayCache := cache.NewDayCache(cfg.RedisAddr, cfg.RedisPassword, cfg.DayCacheTTL, logger)

	bookingRepo := infraRepo.NewBookingGormRepository(db, dayCache)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	catalogue := domain.NewCatalogue(cfg.HourCatalogue)

	var sender notify.EmailSender
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger); sg != nil {
		sender = sg
	} else {
		sender = notify.NewStubEmailSender(logger)
	}

	mailer := notify.NewMailer(sender, notify.MailerConfig{
		StudioName:    cfg.StudioName,
		AdminEmail:    cfg.AdminEmail,
		PublicBaseURL: cfg.PublicBaseURL,
	}, logger)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		catalogue,
		mailer,
		auditDispatcher,
		logger,
	)

	updateBookingUC := ucBooking.NewUpdateBookingStatus(
		bookingRepo,
		catalogue,
		auditDispatcher,
		logger,
	)

	rescheduleBookingUC := ucBooking.NewRescheduleBooking(
		bookingRepo,
		catalogue,
		auditDispatcher,
		logger,
	)

	deleteBookingUC := ucBooking.NewDeleteBooking(
		bookingRepo,
		catalogue,
		auditDispatcher,
		logger,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		bookingRepo,
		createBookingUC,
		updateBookingUC,
		rescheduleBookingUC,
		deleteBookingUC,
	)

	dayHandler := handlers.NewDayHandler(bookingRepo, catalogue, dayCache)
	emailHandler := handlers.NewEmailHandler(bookingRepo, mailer)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// BOOKINGS
	// ======================================================
	r.POST("/bookings", bookingHandler.Create)
	r.GET("/bookings", bookingHandler.List)
	r.GET("/bookings/:id", bookingHandler.Get)
	r.PUT("/bookings/:id", bookingHandler.Update)
	r.PUT("/bookings/datehour/:id", bookingHandler.Reschedule)
	r.DELETE("/bookings/:id", bookingHandler.Delete)

	// ======================================================
	// DAYS + AVAILABILITY
	// ======================================================
	r.GET("/days", dayHandler.List)
	r.GET("/days/:date", dayHandler.Get)
	r.GET("/blackoutDays", dayHandler.ListBlackout)
	r.POST("/days", dayHandler.Create)
	r.POST("/editDay", dayHandler.Edit)
	r.POST("/updateOrCreateDay", dayHandler.UpdateOrCreate)
	r.GET("/getMaxDate", dayHandler.GetMaxDate)
	r.POST("/updateMaxDate", dayHandler.UpdateMaxDate)

	// ======================================================
	// EMAILS
	// ======================================================
	r.POST("/send-email", emailHandler.Send)
	r.POST("/send-status-email", emailHandler.SendStatus)
	r.POST("/send-booking-change-email", emailHandler.SendBookingChange)
	r.POST("/send-payment-status-email", emailHandler.SendPaymentStatus)

	// ======================================================
	// AUDIT
	// ======================================================
	r.GET("/auditLogs", auditLogsHandler.List)
}
