package model

// ContactMessage is a contact form submission.
type ContactMessage struct {
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	Message   string `json:"message"`
}

// ContactResponse represents the response payload for a delivered message.
type ContactResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
