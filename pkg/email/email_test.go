package email

import (
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"testimonial-wall-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func newTestService(t *testing.T) (*EmailService, *[]sentMail) {
	t.Helper()
	svc := NewEmailService(&config.Config{
		SMTPHost:       "smtp.example.com",
		SMTPPort:       "587",
		SMTPUsername:   "login@example.com",
		SMTPPassword:   "secret",
		SMTPFromEmail:  "noreply@example.com",
		ContactEmailTo: "owner@example.com",
	})

	var sent []sentMail
	svc.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		sent = append(sent, sentMail{addr: addr, from: from, to: to, msg: string(msg)})
		return nil
	}
	return svc, &sent
}

func TestSendContactNotification(t *testing.T) {
	svc, sent := newTestService(t)

	err := svc.SendContactNotification(ContactEmailData{
		SenderName:  "Jane",
		SenderEmail: "jane@example.com",
		Message:     "Great service!",
	})
	require.NoError(t, err)
	require.Len(t, *sent, 1)

	mail := (*sent)[0]
	assert.Equal(t, "smtp.example.com:587", mail.addr)
	assert.Equal(t, "noreply@example.com", mail.from)
	assert.Equal(t, []string{"owner@example.com"}, mail.to)
	// Replies must reach the submitter directly
	assert.Contains(t, mail.msg, "Reply-To: jane@example.com")
	assert.Contains(t, mail.msg, "Jane")
	assert.Contains(t, mail.msg, "Great service!")
	assert.Contains(t, mail.msg, "Content-Type: text/html")
}

func TestSendContactConfirmation(t *testing.T) {
	svc, sent := newTestService(t)

	err := svc.SendContactConfirmation(ContactEmailData{
		SenderName:  "Jane",
		SenderEmail: "jane@example.com",
		Message:     "Great service!",
	})
	require.NoError(t, err)
	require.Len(t, *sent, 1)

	mail := (*sent)[0]
	assert.Equal(t, []string{"jane@example.com"}, mail.to)
	assert.NotContains(t, mail.msg, "Reply-To:")
	// The confirmation embeds a copy of the submitter's own message
	assert.Contains(t, mail.msg, "Great service!")
}

func TestSendMailErrorPropagates(t *testing.T) {
	svc, _ := newTestService(t)
	svc.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	err := svc.SendContactNotification(ContactEmailData{SenderName: "Jane", SenderEmail: "jane@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send email")
}

func TestIsConfigured(t *testing.T) {
	svc, _ := newTestService(t)
	assert.True(t, svc.IsConfigured())

	unconfigured := NewEmailService(&config.Config{SMTPHost: "smtp.example.com"})
	assert.False(t, unconfigured.IsConfigured())
}

// headerSection returns everything before the blank line separating the MIME
// headers from the body. Only that region is reachable by header injection.
func headerSection(t *testing.T, msg string) string {
	t.Helper()
	headers, _, found := strings.Cut(msg, "\r\n\r\n")
	require.True(t, found, "message has no header/body separator")
	return headers + "\r\n"
}

func TestHeaderValuesCannotInjectHeaders(t *testing.T) {
	svc, sent := newTestService(t)

	err := svc.SendContactNotification(ContactEmailData{
		SenderName:  "Jane\r\nBcc: attacker@evil.example",
		SenderEmail: "jane@example.com",
		Message:     "Hello",
	})
	require.NoError(t, err)
	require.Len(t, *sent, 1)

	headers := headerSection(t, (*sent)[0].msg)
	assert.NotContains(t, headers, "\r\nBcc:")
	// The name survives in the subject, flattened onto one line
	assert.Contains(t, headers, "Subject: Testimonial wall feedback from Jane  Bcc: attacker@evil.example (jane@example.com)\r\n")

	// Reply-To is also submitter-controlled
	*sent = nil
	err = svc.SendContactNotification(ContactEmailData{
		SenderName:  "Jane",
		SenderEmail: "jane@example.com\r\nBcc: attacker@evil.example",
		Message:     "Hello",
	})
	require.NoError(t, err)
	require.Len(t, *sent, 1)

	headers = headerSection(t, (*sent)[0].msg)
	assert.NotContains(t, headers, "\r\nBcc:")
	assert.Contains(t, headers, "Reply-To: jane@example.com  Bcc: attacker@evil.example\r\n")
}

func TestTemplateEscapesHTML(t *testing.T) {
	svc, sent := newTestService(t)

	err := svc.SendContactNotification(ContactEmailData{
		SenderName:  "Jane",
		SenderEmail: "jane@example.com",
		Message:     `<script>alert("x")</script>`,
	})
	require.NoError(t, err)
	require.Len(t, *sent, 1)
	assert.NotContains(t, (*sent)[0].msg, "<script>")
}
