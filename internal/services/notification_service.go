// internal/services/notification_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ateliernord/gallery/internal/config"
	"github.com/ateliernord/gallery/internal/models"
)

type NotificationService struct {
	config *config.Config
}

func NewNotificationService(config *config.Config) *NotificationService {
	return &NotificationService{config: config}
}

// SendOrderRequest mails the order summary to the sales address with the
// buyer set as Reply-To. Dispatch is not retried; callers surface the error.
func (s *NotificationService) SendOrderRequest(order *OrderSummary, buyer models.Buyer) error {
	titles := make([]string, 0, len(order.Lines))
	lines := make([]string, 0, len(order.Lines))
	for _, l := range order.Lines {
		titles = append(titles, l.Artwork.Title)
		lines = append(lines, fmt.Sprintf("- %s (%s) x%d — %g %s",
			l.Artwork.Title, l.Artwork.ID, l.Qty, l.Artwork.Price, order.Currency))
	}

	data := map[string]interface{}{
		"Reference": order.Reference,
		"Name":      buyer.Name,
		"Email":     buyer.Email,
		"Phone":     orDash(buyer.Phone),
		"Note":      orDash(buyer.Note),
		"Lines":     strings.Join(lines, "\n"),
		"Total":     fmt.Sprintf("%g %s", order.Total, order.Currency),
	}

	body, err := s.renderTemplate(s.getEmailTemplate("order_request").Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := "Order/Reserve: " + strings.Join(titles, ", ")
	return s.sendEmail(s.config.Email.SalesEmail, buyer.Email, subject, body)
}

// SendInquiry mails a single-artwork inquiry to the sales address. The title
// falls back to the submitted slug when the artwork is unknown.
func (s *NotificationService) SendInquiry(title string, req models.InquiryRequest) error {
	if title == "" {
		title = req.Slug
	}

	data := map[string]interface{}{
		"Title":   title,
		"Message": req.Message,
		"Name":    req.Name,
		"Email":   req.Email,
	}

	body, err := s.renderTemplate(s.getEmailTemplate("inquiry").Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(s.config.Email.SalesEmail, req.Email, "Inquiry: "+title, body)
}

func (s *NotificationService) sendEmail(to, replyTo, subject, body string) error {
	from := fmt.Sprintf("no-reply@%s", s.config.Email.MailDomain)

	if s.config.Email.SMTPHost == "" {
		// Email not configured, just log
		logrus.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Info("Email not configured, skipping dispatch")
		return nil
	}

	// Setup authentication
	var auth smtp.Auth
	if s.config.Email.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)
	}

	// Compose message
	msg := []byte(fmt.Sprintf(
		"From: %q <%s>\r\nTo: %s\r\nReply-To: %s\r\nSubject: %s\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		s.config.Email.FromName, from, to, replyTo, subject, body))

	// Send email
	addr := fmt.Sprintf("%s:%s", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	return smtp.SendMail(addr, auth, from, []string{to}, msg)
}

func (s *NotificationService) renderTemplate(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

type EmailTemplate struct {
	Subject string
	Body    string
}

func (s *NotificationService) getEmailTemplate(templateType string) EmailTemplate {
	templates := map[string]EmailTemplate{
		"order_request": {
			Subject: "New order/reservation request",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>New order/reservation request</h2>
	<p><b>Reference:</b> {{.Reference}}</p>
	<p><b>Name:</b> {{.Name}}<br/>
	<b>Email:</b> {{.Email}}<br/>
	<b>Phone:</b> {{.Phone}}</p>
	<p><b>Items:</b><br/><pre>{{.Lines}}</pre></p>
	<p><b>Total (non-binding):</b> {{.Total}}</p>
	<p><b>Note:</b> {{.Note}}</p>
</body>
</html>`,
		},
		"inquiry": {
			Subject: "Artwork inquiry",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<p>Inquiry about <b>{{.Title}}</b></p>
	<p>{{.Message}}</p>
	<p>From: {{.Name}} / {{.Email}}</p>
</body>
</html>`,
		},
	}

	if template, exists := templates[templateType]; exists {
		return template
	}

	return EmailTemplate{
		Subject: "Notification",
		Body:    `<p>{{.Message}}</p>`,
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
