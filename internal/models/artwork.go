// internal/models/artwork.go
package models

type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityReserved  Availability = "reserved"
	AvailabilitySold      Availability = "sold"
)

type Dimensions struct {
	W    float64 `json:"w"`
	H    float64 `json:"h"`
	Unit string  `json:"unit"`
}

type ImageSet struct {
	Cover   string   `json:"cover"`
	Thumb   string   `json:"thumb"`
	Alt     string   `json:"alt"`
	Gallery []string `json:"gallery,omitempty"`
}

// Artwork is a single catalog record. The catalog is loaded once at startup
// and never mutated, so Artwork values are shared freely without copying.
type Artwork struct {
	ID           string       `json:"id"`
	Slug         string       `json:"slug"`
	Title        string       `json:"title"`
	Artist       string       `json:"artist"`
	Medium       string       `json:"medium"`
	Dimensions   Dimensions   `json:"dimensions"`
	Year         int          `json:"year"`
	Price        float64      `json:"price"`
	Currency     string       `json:"currency"`
	Availability Availability `json:"availability"`
	Framed       bool         `json:"framed"`
	Style        []string     `json:"style"`
	Tags         []string     `json:"tags"`
	Images       ImageSet     `json:"images"`
}

// FilterCriteria is the combined filter triple. A zero field imposes no
// constraint; MaxPrice <= 0 means "no price bound". The struct must stay
// comparable: the filter pipeline de-duplicates consecutive triples by value
// equality.
type FilterCriteria struct {
	Query    string
	Style    string
	MaxPrice float64
}

// IsZero reports whether no filter is set.
func (c FilterCriteria) IsZero() bool {
	return c.Query == "" && c.Style == "" && c.MaxPrice <= 0
}
