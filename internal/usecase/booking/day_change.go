package booking

import (
	"context"
	"errors"

	domain "github.com/northlightstudio/studio-booking/internal/domain/booking"
	"github.com/northlightstudio/studio-booking/internal/models"
)

const maxDayRetries = 3

// applyDayChange runs a read-mutate-save cycle against a day, retrying on
// version conflicts so concurrent slot updates aren't silently lost.
func applyDayChange(
	ctx context.Context,
	repo domain.Repository,
	date string,
	mutate func(*models.Day),
) error {

	var lastErr error

	for attempt := 0; attempt < maxDayRetries; attempt++ {
		day, err := repo.GetDay(ctx, date)
		if err != nil {
			return err
		}

		mutate(day)

		err = repo.SaveDay(ctx, day)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrDayVersionConflict) {
			return err
		}
		lastErr = err
	}

	return lastErr
}
