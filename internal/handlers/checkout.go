// internal/handlers/checkout.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ateliernord/gallery/internal/models"
	"github.com/ateliernord/gallery/internal/services"
	"github.com/ateliernord/gallery/internal/utils"
)

// Mailer dispatches outbound order and inquiry mail.
type Mailer interface {
	SendOrderRequest(order *services.OrderSummary, buyer models.Buyer) error
	SendInquiry(title string, req models.InquiryRequest) error
}

type CheckoutHandler struct {
	checkout *services.CheckoutService
	catalog  *services.CatalogService
	mailer   Mailer
}

func NewCheckoutHandler(checkout *services.CheckoutService, catalog *services.CatalogService, mailer Mailer) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		catalog:  catalog,
		mailer:   mailer,
	}
}

// POST /api/checkout/email
func (h *CheckoutHandler) CheckoutEmail(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Bad input")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		logrus.WithField("details", utils.GetValidationErrors(err)).Warn("Rejected checkout request")
		utils.BadRequestResponse(c, "Bad input")
		return
	}

	order, err := h.checkout.BuildOrder(req.Cart)
	if err != nil {
		if errors.Is(err, services.ErrCartInvalid) {
			utils.BadRequestResponse(c, "Cart invalid")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	if err := h.mailer.SendOrderRequest(order, req.Buyer); err != nil {
		logrus.WithError(err).WithField("reference", order.Reference).Error("Failed to send order email")
		utils.InternalErrorResponse(c, "Email failed")
		return
	}

	utils.OKResponse(c)
}

// POST /api/inquiry
func (h *CheckoutHandler) Inquiry(c *gin.Context) {
	var req models.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Bad input")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		logrus.WithField("details", utils.GetValidationErrors(err)).Warn("Rejected inquiry request")
		utils.BadRequestResponse(c, "Bad input")
		return
	}

	// Unknown slugs still produce an inquiry; the mail falls back to the slug.
	title := ""
	if art, ok := h.catalog.BySlug(req.Slug); ok {
		title = art.Title
	}

	if err := h.mailer.SendInquiry(title, req); err != nil {
		logrus.WithError(err).WithField("slug", req.Slug).Error("Failed to send inquiry email")
		utils.InternalErrorResponse(c, "Email failed")
		return
	}

	utils.OKResponse(c)
}
