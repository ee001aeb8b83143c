package usecase

import (
	"context"
	"net/http"
	"strings"

	"testimonial-wall-backend/internal/domain"
	"testimonial-wall-backend/pkg/apperror"
	"testimonial-wall-backend/pkg/logger"
	"testimonial-wall-backend/pkg/validation"
)

type testimonialUsecase struct {
	repo domain.TestimonialRepository
}

// NewTestimonialUsecase creates a new testimonial ingestion usecase
func NewTestimonialUsecase(repo domain.TestimonialRepository) domain.TestimonialUsecase {
	return &testimonialUsecase{
		repo: repo,
	}
}

// SubmitPublic handles the anonymous submission path. The caller-supplied
// user_id is only trusted after it passes UUID-shape validation; the
// datastore is never touched for an invalid id.
func (uc *testimonialUsecase) SubmitPublic(ctx context.Context, req *domain.TestimonialRequest) error {
	userID := strings.TrimSpace(req.UserID)
	if !validation.IsUUID(userID) {
		return apperror.BadRequest("user_id must be a valid UUID.")
	}

	t, err := buildTestimonial(req.AuthorName, req.AuthorTitle, req.TestimonialText, userID)
	if err != nil {
		return err
	}
	return uc.insert(ctx, t)
}

// SubmitAuthenticated handles the bearer-token path. The identity was
// resolved by the auth middleware; the body carries no user_id. This path is
// intentionally separate from SubmitPublic since the two have different
// trust boundaries.
func (uc *testimonialUsecase) SubmitAuthenticated(ctx context.Context, req *domain.AuthTestimonialRequest) error {
	userID, _ := ctx.Value(domain.KeyUserID).(string)
	if userID == "" {
		return apperror.Unauthorized("User not authenticated.")
	}

	t, err := buildTestimonial(req.AuthorName, req.AuthorTitle, req.TestimonialText, userID)
	if err != nil {
		return err
	}
	return uc.insert(ctx, t)
}

func buildTestimonial(authorName string, authorTitle *string, text, userID string) (*domain.Testimonial, error) {
	name := strings.TrimSpace(authorName)
	if name == "" {
		return nil, apperror.BadRequest("author_name is required.")
	}
	body := strings.TrimSpace(text)
	if body == "" {
		return nil, apperror.BadRequest("testimonial_text is required.")
	}

	// is_published is forced false here no matter what the caller sent;
	// publication happens only through the moderation flow
	return &domain.Testimonial{
		AuthorName:      name,
		AuthorTitle:     normalizeTitle(authorTitle),
		TestimonialText: body,
		UserID:          userID,
		IsPublished:     false,
	}, nil
}

// normalizeTitle maps both a missing field and a blank string to nil so the
// store always sees NULL for an absent title
func normalizeTitle(title *string) *string {
	if title == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*title)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (uc *testimonialUsecase) insert(ctx context.Context, t *domain.Testimonial) error {
	if err := uc.repo.Insert(ctx, t); err != nil {
		logger.Log.Error("Failed to insert testimonial", "user_id", t.UserID, "error", err)
		return apperror.New(http.StatusInternalServerError, "Could not save your testimonial. Please try again later.", err)
	}
	logger.Log.Info("Testimonial submitted", "user_id", t.UserID)
	return nil
}
