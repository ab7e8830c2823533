// internal/services/checkout_service.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ateliernord/gallery/internal/models"
)

// ErrCartInvalid means no submitted cart line resolved to a known artwork.
var ErrCartInvalid = errors.New("no cart item resolves to a known artwork")

type OrderLine struct {
	Artwork models.Artwork
	Qty     int
}

// OrderSummary is the resolved, priced order handed to the notification
// service. The total is non-binding; there is no payment capture.
type OrderSummary struct {
	Reference string
	Lines     []OrderLine
	Total     float64
	Currency  string
}

type CheckoutService struct {
	catalog *CatalogService
}

func NewCheckoutService(catalog *CatalogService) *CheckoutService {
	return &CheckoutService{catalog: catalog}
}

// BuildOrder resolves the submitted cart against the catalog. Lines whose id
// is unknown are dropped from the order rather than failing the request;
// only a cart where nothing resolves is rejected.
func (s *CheckoutService) BuildOrder(cart []models.CartItem) (*OrderSummary, error) {
	order := &OrderSummary{
		Reference: uuid.NewString(),
		Lines:     make([]OrderLine, 0, len(cart)),
	}

	for _, item := range cart {
		art, ok := s.catalog.ByID(item.ID)
		if !ok {
			logrus.WithField("artwork_id", item.ID).Warn("Dropping unknown artwork from order")
			continue
		}
		order.Lines = append(order.Lines, OrderLine{Artwork: art, Qty: item.Qty})
		order.Total += art.Price * float64(item.Qty)
	}

	if len(order.Lines) == 0 {
		return nil, ErrCartInvalid
	}

	order.Currency = order.Lines[0].Artwork.Currency
	return order, nil
}
