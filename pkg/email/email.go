package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"testimonial-wall-backend/config"
)

// EmailService handles sending contact-form emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	toEmail   string

	// send is swappable so tests can capture outgoing messages
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Message     string
}

// NewEmailService creates a new email service with Brevo SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		toEmail:   cfg.ContactEmailTo,
		send:      smtp.SendMail,
	}
}

// notificationTemplate is the HTML template for the operator notification
const notificationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #0066cc; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Form Submission</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">From:</div>
                <div>{{.SenderName}} ({{.SenderEmail}})</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the testimonial wall contact form.</p>
            <p>To reply, send an email to: {{.SenderEmail}}</p>
        </div>
    </div>
</body>
</html>`

// confirmationTemplate is the HTML template echoed back to the submitter
const confirmationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Thank you for your message</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        blockquote { border-left: 2px solid #ccc; padding-left: 1em; margin-left: 0.5em; font-style: italic; }
    </style>
</head>
<body>
    <div class="container">
        <p>Hi {{.SenderName}},</p>
        <p>Thank you for reaching out! We have received your message and will get back to you as soon as possible (typically within 24-48 hours).</p>
        <p>For your records, here is a copy of the message you sent:</p>
        <blockquote>
            <p><strong>Name:</strong> {{.SenderName}}</p>
            <p><strong>Email:</strong> {{.SenderEmail}}</p>
            <p><strong>Message:</strong></p>
            <p>{{.Message}}</p>
        </blockquote>
        <p>Best regards,</p>
        <p>The Testimonial Wall Team</p>
    </div>
</body>
</html>`

// SendContactNotification sends the operator notification. Reply-To is set to
// the submitter so a plain reply reaches them directly.
func (s *EmailService) SendContactNotification(data ContactEmailData) error {
	body, err := renderTemplate("notification", notificationTemplate, data)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Testimonial wall feedback from %s (%s)", data.SenderName, data.SenderEmail)
	msg := buildMessage(s.fromEmail, s.toEmail, data.SenderEmail, subject, body)

	return s.sendMail([]string{s.toEmail}, msg)
}

// SendContactConfirmation echoes a copy of the message back to the submitter.
func (s *EmailService) SendContactConfirmation(data ContactEmailData) error {
	body, err := renderTemplate("confirmation", confirmationTemplate, data)
	if err != nil {
		return err
	}

	subject := "Thank you for contacting the Testimonial Wall team!"
	msg := buildMessage(s.fromEmail, data.SenderEmail, "", subject, body)

	return s.sendMail([]string{data.SenderEmail}, msg)
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != "" && s.toEmail != ""
}

func (s *EmailService) sendMail(to []string, msg []byte) error {
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	if err := s.send(addr, auth, s.fromEmail, to, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func renderTemplate(name, tmplText string, data ContactEmailData) (string, error) {
	tmpl, err := template.New(name).Parse(tmplText)
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

// sanitizeHeader strips CR/LF from a header value. Subject and Reply-To carry
// submitter input, so an unsanitized value could smuggle extra SMTP headers.
func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}

// buildMessage constructs a MIME message. replyTo may be empty.
func buildMessage(from, to, replyTo, subject, body string) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", sanitizeHeader(from))
	fmt.Fprintf(&b, "To: %s\r\n", sanitizeHeader(to))
	if replyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", sanitizeHeader(replyTo))
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", sanitizeHeader(subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return b.Bytes()
}
