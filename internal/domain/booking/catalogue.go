package booking

import (
	"sort"
	"strings"

	"github.com/northlightstudio/studio-booking/internal/models"
)

// Catalogue is the ordered set of hour-slot labels a studio offers. All
// hour sorting goes through it: a label's position is its index in the
// catalogue, unknown labels get -1 and therefore sort first. The -1
// placement matches what the legacy data already contains, so it must not
// change.
type Catalogue struct {
	labels []string
	index  map[string]int
}

func NewCatalogue(labels []string) Catalogue {
	idx := make(map[string]int, len(labels))
	for i, l := range labels {
		idx[l] = i
	}
	return Catalogue{labels: labels, index: idx}
}

func (c Catalogue) Labels() []string {
	return c.labels
}

// Index returns the catalogue position of label, or -1 if unknown.
func (c Catalogue) Index(label string) int {
	if i, ok := c.index[label]; ok {
		return i
	}
	return -1
}

func (c Catalogue) Contains(label string) bool {
	_, ok := c.index[label]
	return ok
}

// Sort orders hour blocks by catalogue position, stable so unknown labels
// keep their relative order at the front.
func (c Catalogue) Sort(hours []models.HourBlock) {
	sort.SliceStable(hours, func(i, j int) bool {
		return c.Index(hours[i].Hour) < c.Index(hours[j].Hour)
	})
}

// LabelTitle returns the part of a label before the price separator
// ("4 Hours/$130" -> "4 Hours"). Used as a fuzzy join key only where the
// legacy store may hold drifted label formatting.
func LabelTitle(label string) string {
	title, _, _ := strings.Cut(label, "/")
	return strings.TrimSpace(title)
}
