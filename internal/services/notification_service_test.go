// internal/services/notification_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ateliernord/gallery/internal/config"
	"github.com/ateliernord/gallery/internal/models"
)

func newTestNotifier() *NotificationService {
	// No SMTP host configured: dispatch degrades to logging and succeeds.
	return NewNotificationService(&config.Config{
		Email: config.EmailConfig{
			FromName:   "Gallery",
			MailDomain: "example.com",
			SalesEmail: "sales@example.com",
		},
	})
}

func TestSendOrderRequestWithoutSMTPSucceeds(t *testing.T) {
	notifier := newTestNotifier()
	order := &OrderSummary{
		Reference: "ref-1",
		Lines: []OrderLine{
			{Artwork: models.Artwork{ID: "aw-001", Title: "Red River", Price: 400, Currency: "USD"}, Qty: 2},
		},
		Total:    800,
		Currency: "USD",
	}

	err := notifier.SendOrderRequest(order, models.Buyer{Name: "Ada", Email: "ada@example.com"})

	assert.NoError(t, err)
}

func TestSendInquiryWithoutSMTPSucceeds(t *testing.T) {
	notifier := newTestNotifier()

	err := notifier.SendInquiry("Red River", models.InquiryRequest{
		Slug: "red-river", Email: "ada@example.com", Message: "Is it framed?",
	})

	assert.NoError(t, err)
}

func TestOrderRequestTemplate(t *testing.T) {
	notifier := newTestNotifier()

	body, err := notifier.renderTemplate(notifier.getEmailTemplate("order_request").Body, map[string]interface{}{
		"Reference": "ref-42",
		"Name":      "Ada",
		"Email":     "ada@example.com",
		"Phone":     "-",
		"Note":      "please hold",
		"Lines":     "- Red River (aw-001) x2 — 400 USD",
		"Total":     "800 USD",
	})

	require.NoError(t, err)
	assert.Contains(t, body, "New order/reservation request")
	assert.Contains(t, body, "ref-42")
	assert.Contains(t, body, "Red River (aw-001) x2")
	assert.Contains(t, body, "800 USD")
	assert.Contains(t, body, "please hold")
}

func TestInquiryTemplate(t *testing.T) {
	notifier := newTestNotifier()

	body, err := notifier.renderTemplate(notifier.getEmailTemplate("inquiry").Body, map[string]interface{}{
		"Title":   "Harbor Light",
		"Message": "Is this still available?",
		"Name":    "Ada",
		"Email":   "ada@example.com",
	})

	require.NoError(t, err)
	assert.Contains(t, body, "Harbor Light")
	assert.Contains(t, body, "Is this still available?")
	assert.Contains(t, body, "ada@example.com")
}

func TestTemplateEscapesHTML(t *testing.T) {
	notifier := newTestNotifier()

	body, err := notifier.renderTemplate(notifier.getEmailTemplate("inquiry").Body, map[string]interface{}{
		"Title":   "<script>alert(1)</script>",
		"Message": "hello",
		"Name":    "Ada",
		"Email":   "ada@example.com",
	})

	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}
