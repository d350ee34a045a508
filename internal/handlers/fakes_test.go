package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/northlightstudio/studio-booking/internal/config"
	domain "github.com/northlightstudio/studio-booking/internal/domain/booking"
	"github.com/northlightstudio/studio-booking/internal/models"
	ucBooking "github.com/northlightstudio/studio-booking/internal/usecase/booking"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	bookings map[uint]*models.Booking
	days     map[string]*models.Day
	avail    *models.Availability
	nextID   uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		bookings: make(map[uint]*models.Booking),
		days:     make(map[string]*models.Day),
	}
}

func copyDay(d *models.Day) *models.Day {
	cp := *d
	cp.Hours = append([]models.HourBlock(nil), d.Hours...)
	return &cp
}

func (r *fakeRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	r.nextID++
	b.ID = r.nextID
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeRepo) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeRepo) ListBookings(ctx context.Context) ([]models.Booking, error) {
	out := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeRepo) DeleteBooking(ctx context.Context, id uint) error {
	delete(r.bookings, id)
	return nil
}

func (r *fakeRepo) GetDay(ctx context.Context, date string) (*models.Day, error) {
	d, ok := r.days[date]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return copyDay(d), nil
}

func (r *fakeRepo) DayExists(ctx context.Context, date string) (bool, error) {
	_, ok := r.days[date]
	return ok, nil
}

func (r *fakeRepo) CreateDay(ctx context.Context, d *models.Day) error {
	r.nextID++
	d.ID = r.nextID
	r.days[d.Date] = copyDay(d)
	return nil
}

func (r *fakeRepo) SaveDay(ctx context.Context, d *models.Day) error {
	stored, ok := r.days[d.Date]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if stored.Version != d.Version {
		return domain.ErrDayVersionConflict
	}
	cp := copyDay(d)
	cp.Version++
	r.days[d.Date] = cp
	d.Version++
	return nil
}

func (r *fakeRepo) ListDays(ctx context.Context) ([]models.Day, error) {
	out := make([]models.Day, 0, len(r.days))
	for _, d := range r.days {
		out = append(out, *copyDay(d))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *fakeRepo) ListBlackoutDays(ctx context.Context) ([]models.Day, error) {
	var out []models.Day
	for _, d := range r.days {
		if d.Disabled {
			out = append(out, *copyDay(d))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *fakeRepo) GetMaxDate(ctx context.Context) (*models.Availability, error) {
	if r.avail == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r.avail
	return &cp, nil
}

func (r *fakeRepo) SaveMaxDate(ctx context.Context, a *models.Availability) error {
	cp := *a
	r.avail = &cp
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// ======================================================
// FAKE MAILERS
// ======================================================

type noopCreateMailer struct{}

func (noopCreateMailer) SendBookingReceived(ctx context.Context, b *models.Booking) error { return nil }
func (noopCreateMailer) SendAdminAlert(ctx context.Context, b *models.Booking) error      { return nil }

type recordingMailer struct {
	sent        []string
	statusCalls int
	failAll     bool
}

func (m *recordingMailer) fail() error {
	if m.failAll {
		return errMailerDown
	}
	return nil
}

var errMailerDown = errors.New("mailer down")

func (m *recordingMailer) Send(ctx context.Context, to, subject, text string) error {
	m.sent = append(m.sent, subject)
	return m.fail()
}

func (m *recordingMailer) SendStatusEmail(ctx context.Context, to, status string, bookingID uint, depositLink string) error {
	m.statusCalls++
	return m.fail()
}

func (m *recordingMailer) SendBookingChange(ctx context.Context, to, name string, bookingID uint, newDate, newHours string) error {
	m.sent = append(m.sent, "booking-change")
	return m.fail()
}

func (m *recordingMailer) SendPaymentStatus(ctx context.Context, to, name string, bookingID uint, paymentStatus string) error {
	m.sent = append(m.sent, "payment-status")
	return m.fail()
}

var _ BookingMailer = (*recordingMailer)(nil)

// ======================================================
// ROUTER SETUP
// ======================================================

func testCatalogue() domain.Catalogue {
	return domain.NewCatalogue(config.DefaultHourCatalogue)
}

func newTestRouter(repo *fakeRepo) *gin.Engine {
	cat := testCatalogue()

	createUC := ucBooking.NewCreateBooking(repo, cat, noopCreateMailer{}, nil, nil)
	updateUC := ucBooking.NewUpdateBookingStatus(repo, cat, nil, nil)
	rescheduleUC := ucBooking.NewRescheduleBooking(repo, cat, nil, nil)
	deleteUC := ucBooking.NewDeleteBooking(repo, cat, nil, nil)

	bookingHandler := NewBookingHandler(repo, createUC, updateUC, rescheduleUC, deleteUC)
	dayHandler := NewDayHandler(repo, cat, nil)

	r := gin.New()

	r.POST("/bookings", bookingHandler.Create)
	r.GET("/bookings", bookingHandler.List)
	r.GET("/bookings/:id", bookingHandler.Get)
	r.PUT("/bookings/:id", bookingHandler.Update)
	r.PUT("/bookings/datehour/:id", bookingHandler.Reschedule)
	r.DELETE("/bookings/:id", bookingHandler.Delete)

	r.GET("/days", dayHandler.List)
	r.GET("/days/:date", dayHandler.Get)
	r.GET("/blackoutDays", dayHandler.ListBlackout)
	r.POST("/days", dayHandler.Create)
	r.POST("/editDay", dayHandler.Edit)
	r.POST("/updateOrCreateDay", dayHandler.UpdateOrCreate)
	r.GET("/getMaxDate", dayHandler.GetMaxDate)
	r.POST("/updateMaxDate", dayHandler.UpdateMaxDate)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	body := decodeBody(t, w)
	code, _ := body["error_code"].(string)
	return code
}
