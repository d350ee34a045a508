package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/northlightstudio/studio-booking/internal/cache"
	domain "github.com/northlightstudio/studio-booking/internal/domain/booking"
	"github.com/northlightstudio/studio-booking/internal/models"
)

type BookingGormRepository struct {
	db       *gorm.DB
	dayCache *cache.DayCache
}

// NewBookingGormRepository wires the store; dayCache may be nil.
func NewBookingGormRepository(db *gorm.DB, dayCache *cache.DayCache) *BookingGormRepository {
	return &BookingGormRepository{db: db, dayCache: dayCache}
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, id).Error
}

// --------------------------------------------------
// Day
// --------------------------------------------------

func (r *BookingGormRepository) GetDay(
	ctx context.Context,
	date string,
) (*models.Day, error) {

	var day models.Day
	if err := r.db.WithContext(ctx).
		Preload("Hours", func(db *gorm.DB) *gorm.DB {
			return db.Order("hour_blocks.id ASC")
		}).
		Where("date = ?", date).
		First(&day).Error; err != nil {
		return nil, err
	}
	return &day, nil
}

func (r *BookingGormRepository) DayExists(
	ctx context.Context,
	date string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Day{}).
		Where("date = ?", date).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingGormRepository) CreateDay(
	ctx context.Context,
	d *models.Day,
) error {

	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		return err
	}

	r.dayCache.Invalidate(ctx, d.Date)
	return nil
}

// SaveDay persists day fields plus the full hour list, conditional on the
// version the caller loaded. Hour blocks are replaced wholesale so the
// stored order matches the catalogue-sorted slice.
func (r *BookingGormRepository) SaveDay(
	ctx context.Context,
	d *models.Day,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Day{}).
			Where("id = ? AND version = ?", d.ID, d.Version).
			Updates(map[string]any{
				"disabled": d.Disabled,
				"version":  d.Version + 1,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrDayVersionConflict
		}

		if err := tx.Where("day_id = ?", d.ID).Delete(&models.HourBlock{}).Error; err != nil {
			return err
		}

		for i := range d.Hours {
			d.Hours[i].ID = 0
			d.Hours[i].DayID = d.ID
		}
		if len(d.Hours) > 0 {
			if err := tx.Create(&d.Hours).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return err
	}

	d.Version++
	r.dayCache.Invalidate(ctx, d.Date)
	return nil
}

func (r *BookingGormRepository) ListDays(
	ctx context.Context,
) ([]models.Day, error) {

	var days []models.Day
	if err := r.db.WithContext(ctx).
		Preload("Hours", func(db *gorm.DB) *gorm.DB {
			return db.Order("hour_blocks.id ASC")
		}).
		Order("date ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

func (r *BookingGormRepository) ListBlackoutDays(
	ctx context.Context,
) ([]models.Day, error) {

	var days []models.Day
	if err := r.db.WithContext(ctx).
		Preload("Hours", func(db *gorm.DB) *gorm.DB {
			return db.Order("hour_blocks.id ASC")
		}).
		Where("disabled = true").
		Order("date ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

// --------------------------------------------------
// Availability (singleton)
// --------------------------------------------------

func (r *BookingGormRepository) GetMaxDate(
	ctx context.Context,
) (*models.Availability, error) {

	var a models.Availability
	if err := r.db.WithContext(ctx).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *BookingGormRepository) SaveMaxDate(
	ctx context.Context,
	a *models.Availability,
) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
