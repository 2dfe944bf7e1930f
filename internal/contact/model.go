package contact

import "time"

const StatusNew = "new"

type Submission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
	Status      string    `json:"status"`
}

type Subscription struct {
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
	Active       bool      `json:"active"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email,max=254"`
	Phone   string `json:"phone" binding:"max=30"`
	Message string `json:"message" binding:"required,max=5000"`
}

type NewsletterRequest struct {
	Email string `json:"email" binding:"required,email,max=254"`
}
