package domain

// Trainer is an account that can log in to the API. The password hash is kept
// out of JSON responses; the API layer additionally maps trainers through a
// response DTO that omits it entirely.
type Trainer struct {
	TrainerID    string `json:"trainerId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	CreatedAt    string `json:"createdAt"` // RFC 3339 timestamp
}
