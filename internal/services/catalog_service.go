// internal/services/catalog_service.go
package services

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ateliernord/gallery/internal/models"
)

// CatalogService holds the immutable artwork collection. It is loaded once at
// process start and shared read-only across handlers, so no locking is needed.
type CatalogService struct {
	artworks []models.Artwork
	byID     map[string]*models.Artwork
	bySlug   map[string]*models.Artwork
}

// NewCatalogService builds a catalog from an in-memory collection. It fails on
// duplicate ids or slugs, which are the collection's uniqueness invariants.
func NewCatalogService(artworks []models.Artwork) (*CatalogService, error) {
	s := &CatalogService{
		artworks: artworks,
		byID:     make(map[string]*models.Artwork, len(artworks)),
		bySlug:   make(map[string]*models.Artwork, len(artworks)),
	}

	for i := range artworks {
		a := &artworks[i]
		if a.ID == "" || a.Slug == "" {
			return nil, fmt.Errorf("artwork %d: id and slug are required", i)
		}
		if _, exists := s.byID[a.ID]; exists {
			return nil, fmt.Errorf("duplicate artwork id %q", a.ID)
		}
		if _, exists := s.bySlug[a.Slug]; exists {
			return nil, fmt.Errorf("duplicate artwork slug %q", a.Slug)
		}
		s.byID[a.ID] = a
		s.bySlug[a.Slug] = a
	}

	return s, nil
}

// LoadCatalog reads the artwork collection from a JSON file.
func LoadCatalog(path string) (*CatalogService, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var artworks []models.Artwork
	if err := json.Unmarshal(raw, &artworks); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	return NewCatalogService(artworks)
}

// List returns the artworks matching criteria, in catalog order. All set
// filters are conjunctive; unset filters impose no constraint. The result is
// never nil so handlers always serialize a JSON array.
func (s *CatalogService) List(criteria models.FilterCriteria) []models.Artwork {
	items := make([]models.Artwork, 0, len(s.artworks))
	needle := strings.ToLower(criteria.Query)

	for _, a := range s.artworks {
		if criteria.Style != "" && !containsString(a.Style, criteria.Style) {
			continue
		}
		if criteria.MaxPrice > 0 && a.Price > criteria.MaxPrice {
			continue
		}
		if needle != "" && !strings.Contains(searchHaystack(a), needle) {
			continue
		}
		items = append(items, a)
	}

	return items
}

// BySlug returns the artwork with the given slug.
func (s *CatalogService) BySlug(slug string) (models.Artwork, bool) {
	a, ok := s.bySlug[slug]
	if !ok {
		return models.Artwork{}, false
	}
	return *a, true
}

// ByID returns the artwork with the given id.
func (s *CatalogService) ByID(id string) (models.Artwork, bool) {
	a, ok := s.byID[id]
	if !ok {
		return models.Artwork{}, false
	}
	return *a, true
}

// Styles returns the sorted union of all style tags in the catalog.
func (s *CatalogService) Styles() []string {
	seen := make(map[string]struct{})
	for _, a := range s.artworks {
		for _, style := range a.Style {
			seen[style] = struct{}{}
		}
	}

	styles := make([]string, 0, len(seen))
	for style := range seen {
		styles = append(styles, style)
	}
	sort.Strings(styles)
	return styles
}

// Len returns the number of artworks in the catalog.
func (s *CatalogService) Len() int {
	return len(s.artworks)
}

// searchHaystack builds the lowercased free-text search target. Missing tags
// are treated as an empty set rather than an error.
func searchHaystack(a models.Artwork) string {
	return strings.ToLower(a.Title + a.Artist + a.Medium + strings.Join(a.Tags, ","))
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
