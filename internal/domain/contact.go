package domain

import "context"

// ContactRequest represents a contact form submission. It lives only for the
// duration of one request and is never persisted.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,simple_email"`
	Message string `json:"message" binding:"required"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the submission and delivers both the
	// operator notification and the submitter confirmation emails
	SendContactMessage(ctx context.Context, req *ContactRequest) error
}
