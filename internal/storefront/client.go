// internal/storefront/client.go
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ateliernord/gallery/internal/models"
)

// ErrNotFound is returned when the API reports an unknown resource.
var ErrNotFound = errors.New("not found")

// Client is a typed HTTP client for the gallery API. It imposes no timeout
// of its own; transport defaults apply.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// ListArtworks fetches the artworks matching criteria. It satisfies the
// filter pipeline's Querier.
func (c *Client) ListArtworks(ctx context.Context, criteria models.FilterCriteria) ([]models.Artwork, error) {
	params := url.Values{}
	if criteria.Query != "" {
		params.Set("q", criteria.Query)
	}
	if criteria.Style != "" {
		params.Set("style", criteria.Style)
	}
	if criteria.MaxPrice > 0 {
		params.Set("maxPrice", strconv.FormatFloat(criteria.MaxPrice, 'f', -1, 64))
	}

	endpoint := c.baseURL + "/api/artworks"
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var items []models.Artwork
	if err := c.getJSON(ctx, endpoint, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetArtwork fetches a single artwork by slug.
func (c *Client) GetArtwork(ctx context.Context, slug string) (models.Artwork, error) {
	var art models.Artwork
	err := c.getJSON(ctx, c.baseURL+"/api/artworks/"+url.PathEscape(slug), &art)
	return art, err
}

// CheckoutEmail submits the cart as an order/reservation request.
func (c *Client) CheckoutEmail(ctx context.Context, req models.CheckoutRequest) error {
	return c.postJSON(ctx, c.baseURL+"/api/checkout/email", req)
}

// Inquiry submits a single-artwork inquiry.
func (c *Client) Inquiry(ctx context.Context, req models.InquiryRequest) error {
	return c.postJSON(ctx, c.baseURL+"/api/inquiry", req)
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) postJSON(ctx context.Context, endpoint string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	var apiErr struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
		return fmt.Errorf("api error (%d): %s", resp.StatusCode, apiErr.Error)
	}
	return fmt.Errorf("api error (%d)", resp.StatusCode)
}
