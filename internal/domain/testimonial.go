package domain

import (
	"context"
	"time"
)

// Testimonial is a single wall entry. IsPublished is always false at
// creation; only the out-of-band moderation flow flips it to true.
type Testimonial struct {
	ID              string    `json:"id"`
	AuthorName      string    `json:"author_name"`
	AuthorTitle     *string   `json:"author_title,omitempty"` // nil when the author gave no title
	TestimonialText string    `json:"testimonial_text"`
	UserID          string    `json:"user_id"`
	IsPublished     bool      `json:"is_published"`
	CreatedAt       time.Time `json:"created_at"`
}

// TestimonialRequest is the public (anonymous) submission payload. The
// caller-supplied user_id is trusted only after UUID-shape validation.
type TestimonialRequest struct {
	AuthorName      string  `json:"author_name" binding:"required"`
	AuthorTitle     *string `json:"author_title"`
	TestimonialText string  `json:"testimonial_text" binding:"required"`
	UserID          string  `json:"user_id" binding:"required,uuid_v15"`
}

// AuthTestimonialRequest is the authenticated submission payload. The user id
// comes from the verified bearer token, never from the body.
type AuthTestimonialRequest struct {
	AuthorName      string  `json:"author_name" binding:"required"`
	AuthorTitle     *string `json:"author_title"`
	TestimonialText string  `json:"testimonial_text" binding:"required"`
}

type TestimonialRepository interface {
	// Insert performs exactly one insert; it is never retried
	Insert(ctx context.Context, t *Testimonial) error
}

type TestimonialUsecase interface {
	// SubmitPublic ingests an anonymous submission carrying its own user_id
	SubmitPublic(ctx context.Context, req *TestimonialRequest) error
	// SubmitAuthenticated ingests a submission for the identity resolved
	// from the request's bearer token (read from ctx)
	SubmitAuthenticated(ctx context.Context, req *AuthTestimonialRequest) error
}
