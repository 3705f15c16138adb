package types

import "time"

// ContactSubmission is one stored contact-form attempt. ID and CreatedAt are
// assigned by the store; rows are never updated or deleted.
type ContactSubmission struct {
	ID        string    `json:"id,omitempty"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// FullName returns "First Last".
func (s *ContactSubmission) FullName() string {
	return s.FirstName + " " + s.LastName
}

// ContactRequest represents the request body of a contact-form submission.
type ContactRequest struct {
	FirstName string `json:"firstName" validate:"required" example:"Ada"`
	LastName  string `json:"lastName" validate:"required" example:"Lovelace"`
	Email     string `json:"email" validate:"required,contactemail" example:"ada@example.com"`
	Subject   string `json:"subject" validate:"required" example:"Hello"`
	Message   string `json:"message" validate:"required" example:"Hi there"`
}

// ToSubmission converts the request into a record ready to be stored.
func (r ContactRequest) ToSubmission() *ContactSubmission {
	return &ContactSubmission{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Subject:   r.Subject,
		Message:   r.Message,
	}
}

// ContactResponse is returned when both emails went out.
type ContactResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Emails sent successfully"`
}
