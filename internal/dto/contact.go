package dto

// SubmitMessageRequest is the contact form payload, accepted as JSON or url-encoded form.
type SubmitMessageRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

// SubmitMessageResponse acknowledges a stored submission.
type SubmitMessageResponse struct {
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
}

// MessageResponse carries a single human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports store connectivity.
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}
