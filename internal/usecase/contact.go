package usecase

import (
	"context"
	"net/http"
	"strings"

	"testimonial-wall-backend/internal/domain"
	"testimonial-wall-backend/pkg/apperror"
	"testimonial-wall-backend/pkg/email"
	"testimonial-wall-backend/pkg/logger"
	"testimonial-wall-backend/pkg/validation"
)

// ContactMailer abstracts the SMTP mailer so tests can substitute a double
type ContactMailer interface {
	IsConfigured() bool
	SendContactNotification(data email.ContactEmailData) error
	SendContactConfirmation(data email.ContactEmailData) error
}

type contactUsecase struct {
	mailer ContactMailer
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(mailer ContactMailer) domain.ContactUsecase {
	return &contactUsecase{
		mailer: mailer,
	}
}

// SendContactMessage validates the contact request and sends both emails.
// The operator notification is the business-critical send: if it fails the
// whole operation fails. The submitter confirmation is best effort only; its
// failure is logged and deliberately discarded so the caller still gets a
// success response. Do not make this symmetric.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	name := strings.TrimSpace(req.Name)
	mail := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)

	// Presence before format
	if name == "" || mail == "" || message == "" {
		return apperror.BadRequest("All fields are required.")
	}
	if !validation.IsEmail(mail) {
		return apperror.BadRequest("Please enter a valid email address.")
	}

	if !uc.mailer.IsConfigured() {
		return apperror.New(http.StatusInternalServerError, "Contact service is not configured.", nil)
	}

	data := email.ContactEmailData{
		SenderName:  name,
		SenderEmail: mail,
		Message:     message,
	}

	if err := uc.mailer.SendContactNotification(data); err != nil {
		logger.Log.Error("Failed to send contact notification", "from", mail, "error", err)
		return apperror.New(http.StatusInternalServerError, "Failed to send message. Please try again later.", err)
	}
	logger.Log.Info("Contact notification sent", "from", mail)

	if err := uc.mailer.SendContactConfirmation(data); err != nil {
		// Confirmation failure must not fail the request: the operator
		// already has the message, which is the event that matters
		logger.Log.Error("Failed to send confirmation email", "to", mail, "error", err)
	} else {
		logger.Log.Info("Confirmation email sent", "to", mail)
	}

	return nil
}
