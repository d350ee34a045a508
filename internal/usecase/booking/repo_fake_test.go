package booking

import (
	"context"
	"sort"

	"gorm.io/gorm"

	domain "github.com/northlightstudio/studio-booking/internal/domain/booking"
	"github.com/northlightstudio/studio-booking/internal/models"
)

// fakeRepo is an in-memory Repository. GetDay hands out copies so a
// mutation only becomes visible through SaveDay, like the real store.
type fakeRepo struct {
	bookings map[uint]*models.Booking
	days     map[string]*models.Day
	avail    *models.Availability
	nextID   uint

	saveDayErr error
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

// -------- Booking --------

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

// -------- Day --------

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
	if r.saveDayErr != nil {
		return r.saveDayErr
	}

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

// -------- Availability --------

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

func dayWithHours(date string, hours ...string) *models.Day {
	d := &models.Day{Date: date}
	for _, h := range hours {
		d.Hours = append(d.Hours, models.HourBlock{Hour: h, Enabled: true})
	}
	return d
}

func dayLabels(d *models.Day) []string {
	labels := make([]string, 0, len(d.Hours))
	for _, hb := range d.Hours {
		labels = append(labels, hb.Hour)
	}
	return labels
}

// fakeMailer records calls and can fail a channel on demand.
type fakeMailer struct {
	receivedCalls int
	alertCalls    int

	receivedErr error
	alertErr    error
}

func (m *fakeMailer) SendBookingReceived(ctx context.Context, b *models.Booking) error {
	m.receivedCalls++
	return m.receivedErr
}

func (m *fakeMailer) SendAdminAlert(ctx context.Context, b *models.Booking) error {
	m.alertCalls++
	return m.alertErr
}
