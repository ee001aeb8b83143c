package domain

// AuthenticatedUser is the identity carried by a verified bearer token.
// Resolved per request, never cached or persisted.
type AuthenticatedUser struct {
	ID    string `json:"id"` // Supabase UUID subject
	Email string `json:"email"`
}
