// internal/storefront/client_test.go
package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ateliernord/gallery/internal/models"
)

func TestClientListArtworksQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/artworks", r.URL.Path)
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode([]models.Artwork{{ID: "aw-001"}})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	items, err := client.ListArtworks(context.Background(), models.FilterCriteria{
		Query: "river", Style: "oil", MaxPrice: 500,
	})

	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, []string{"river"}, gotQuery["q"])
	assert.Equal(t, []string{"oil"}, gotQuery["style"])
	assert.Equal(t, []string{"500"}, gotQuery["maxPrice"])
}

func TestClientListArtworksOmitsUnsetFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		json.NewEncoder(w).Encode([]models.Artwork{})
	}))
	defer server.Close()

	_, err := NewClient(server.URL).ListArtworks(context.Background(), models.FilterCriteria{})

	assert.NoError(t, err)
}

func TestClientGetArtworkNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Not found"})
	}))
	defer server.Close()

	_, err := NewClient(server.URL).GetArtwork(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientCheckoutSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Cart invalid"})
	}))
	defer server.Close()

	err := NewClient(server.URL).CheckoutEmail(context.Background(), models.CheckoutRequest{
		Cart:  []models.CartItem{{ID: "x", Qty: 1}},
		Buyer: models.Buyer{Email: "a@b.com"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cart invalid")
}

func TestClientInquirySuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/inquiry", r.URL.Path)
		var req models.InquiryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "red-river", req.Slug)
		json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	}))
	defer server.Close()

	err := NewClient(server.URL).Inquiry(context.Background(), models.InquiryRequest{
		Slug: "red-river", Email: "a@b.com", Message: "hi",
	})

	assert.NoError(t, err)
}
