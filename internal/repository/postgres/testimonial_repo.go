package postgres

import (
	"context"

	"testimonial-wall-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type testimonialRepository struct {
	db *pgxpool.Pool
}

func NewTestimonialRepository(db *pgxpool.Pool) domain.TestimonialRepository {
	return &testimonialRepository{db: db}
}

// Insert performs the single append-only write. A nil AuthorTitle is stored
// as NULL. The id and timestamps are owned by the database; nothing is read
// back after the insert.
func (r *testimonialRepository) Insert(ctx context.Context, t *domain.Testimonial) error {
	query := `
		INSERT INTO testimonials (author_name, author_title, testimonial_text, user_id, is_published, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())`

	_, err := r.db.Exec(ctx, query,
		t.AuthorName, t.AuthorTitle, t.TestimonialText, t.UserID, t.IsPublished,
	)
	return err
}
