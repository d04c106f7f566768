package services

import (
	"fmt"
	"html"
	"log"
	"net/smtp"

	"github.com/devanshpatil/zipcatalog/app/models"
)

type MailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type Mailer struct {
	config MailConfig
}

func NewMailer(cfg MailConfig) *Mailer {
	return &Mailer{
		config: cfg,
	}
}

func (m *Mailer) SendHTMLEmail(to, subject, htmlBody string) error {

	headers := map[string]string{
		"From":         m.config.From,
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=\"UTF-8\"",
	}

	var msg string
	for k, v := range headers {
		msg += fmt.Sprintf("%s: %s\r\n", k, v)
	}
	msg += "\r\n" + htmlBody

	auth := smtp.PlainAuth(m.config.From, m.config.Username, m.config.Password, m.config.Host)

	addr := fmt.Sprintf("%s:%s", m.config.Host, m.config.Port)

	err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg))
	if err != nil {
		log.Printf("Failed to send HTML email to %s: %v", to, err)
		return fmt.Errorf("failed to send HTML email: %w", err)
	}

	return nil
}

func BuildQuoteEmailBody(quote *models.QuoteRequest) string {
	return fmt.Sprintf(`
        <!DOCTYPE html>
        <html>
        <head>
            <meta charset="utf-8">
            <title>New Quote Request</title>
        </head>
        <body>
            <h2>New quote request</h2>
            <p><strong>Name:</strong> %s</p>
            <p><strong>Company:</strong> %s</p>
            <p><strong>Email:</strong> %s</p>
            <p><strong>Phone:</strong> %s</p>
            <p><strong>Message:</strong></p>
            <p>%s</p>
        </body>
        </html>
    `,
		html.EscapeString(quote.Name),
		html.EscapeString(quote.CompanyName),
		html.EscapeString(quote.Email),
		html.EscapeString(quote.Phone),
		html.EscapeString(quote.Message),
	)
}
