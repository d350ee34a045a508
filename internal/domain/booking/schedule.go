package booking

import (
	"strings"

	"github.com/northlightstudio/studio-booking/internal/models"
)

// ===============================
// Reconciliation primitives
// ===============================
//
// These mutate a Day's hour-slot list in response to booking lifecycle
// events. Every mutation re-sorts by catalogue order; persistence is the
// caller's job.

// TakeHour removes the confirmed label from the day's bookable slots. If
// that empties the list, the day is repopulated with every other catalogue
// label: exhausting the last listed slot means the rest of the day is
// still bookable under the remaining duration options.
func TakeHour(day *models.Day, cat Catalogue, label string) {
	kept := day.Hours[:0]
	for _, hb := range day.Hours {
		if hb.Hour != label {
			kept = append(kept, hb)
		}
	}
	day.Hours = kept

	if len(day.Hours) == 0 {
		for _, l := range cat.Labels() {
			if l != label {
				day.Hours = append(day.Hours, models.HourBlock{DayID: day.ID, Hour: l, Enabled: true})
			}
		}
	}

	cat.Sort(day.Hours)
}

// PushHourIfAbsent returns a denied booking's slot to the day. A label
// already present is left untouched, even if disabled.
func PushHourIfAbsent(day *models.Day, cat Catalogue, label string) {
	for _, hb := range day.Hours {
		if hb.Hour == label {
			return
		}
	}

	day.Hours = append(day.Hours, models.HourBlock{DayID: day.ID, Hour: label, Enabled: true})
	cat.Sort(day.Hours)
}

// ReleaseHour marks a slot bookable again: re-enables it when present,
// appends it otherwise.
func ReleaseHour(day *models.Day, cat Catalogue, label string) {
	for i := range day.Hours {
		if day.Hours[i].Hour == label {
			day.Hours[i].Enabled = true
			cat.Sort(day.Hours)
			return
		}
	}

	day.Hours = append(day.Hours, models.HourBlock{DayID: day.ID, Hour: label, Enabled: true})
	cat.Sort(day.Hours)
}

// ReleaseHourByTitle is ReleaseHour with the legacy fuzzy match: slots are
// matched on the label title before the price separator, tolerating
// formatting drift in stored data.
func ReleaseHourByTitle(day *models.Day, cat Catalogue, label string) {
	title := LabelTitle(label)

	for i := range day.Hours {
		if strings.Contains(day.Hours[i].Hour, title) {
			day.Hours[i].Enabled = true
			cat.Sort(day.Hours)
			return
		}
	}

	day.Hours = append(day.Hours, models.HourBlock{DayID: day.ID, Hour: label, Enabled: true})
	cat.Sort(day.Hours)
}

// DisableHour marks a slot unavailable when present. Reports whether a
// matching slot was found.
func DisableHour(day *models.Day, cat Catalogue, label string) bool {
	for i := range day.Hours {
		if day.Hours[i].Hour == label {
			day.Hours[i].Enabled = false
			cat.Sort(day.Hours)
			return true
		}
	}
	return false
}
