package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/northlightstudio/studio-booking/internal/models"
)

var testLabels = []string{
	"2 Hours/$70",
	"4 Hours/$130",
	"8 Hours/$270",
	"10 Hours/$340",
	"Full Day 14+ Hours/$550",
}

func TestCatalogueIndex(t *testing.T) {
	cat := NewCatalogue(testLabels)

	assert.Equal(t, 0, cat.Index("2 Hours/$70"))
	assert.Equal(t, 4, cat.Index("Full Day 14+ Hours/$550"))
	assert.Equal(t, -1, cat.Index("Half Day/$200"))
}

func TestCatalogueContains(t *testing.T) {
	cat := NewCatalogue(testLabels)

	assert.True(t, cat.Contains("4 Hours/$130"))
	assert.False(t, cat.Contains("4 Hours"))
	assert.False(t, cat.Contains(""))
}

func TestCatalogueSortOrdersByPosition(t *testing.T) {
	cat := NewCatalogue(testLabels)

	hours := []models.HourBlock{
		{Hour: "Full Day 14+ Hours/$550"},
		{Hour: "2 Hours/$70"},
		{Hour: "8 Hours/$270"},
	}

	cat.Sort(hours)

	assert.Equal(t, "2 Hours/$70", hours[0].Hour)
	assert.Equal(t, "8 Hours/$270", hours[1].Hour)
	assert.Equal(t, "Full Day 14+ Hours/$550", hours[2].Hour)
}

func TestCatalogueSortUnknownLabelsFirst(t *testing.T) {
	cat := NewCatalogue(testLabels)

	hours := []models.HourBlock{
		{Hour: "4 Hours/$130"},
		{Hour: "Legacy Slot A"},
		{Hour: "2 Hours/$70"},
		{Hour: "Legacy Slot B"},
	}

	cat.Sort(hours)

	// unknown labels keep their relative order at the front
	assert.Equal(t, "Legacy Slot A", hours[0].Hour)
	assert.Equal(t, "Legacy Slot B", hours[1].Hour)
	assert.Equal(t, "2 Hours/$70", hours[2].Hour)
	assert.Equal(t, "4 Hours/$130", hours[3].Hour)
}

func TestLabelTitle(t *testing.T) {
	assert.Equal(t, "4 Hours", LabelTitle("4 Hours/$130"))
	assert.Equal(t, "Full Day 14+ Hours", LabelTitle("Full Day 14+ Hours/$550"))
	assert.Equal(t, "No Separator", LabelTitle("No Separator"))
}
