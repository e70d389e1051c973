package handler

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Code      string `json:"code"`
	Detail    string `json:"detail"`
	RequestID string `json:"request_id,omitempty"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is the response body for POST /auth/login.
type LoginResponse struct {
	Message     string `json:"message"`
	Token       string `json:"token"`
	TeacherName string `json:"teacher_name"`
}

// WhoAmIResponse is the response body for GET /auth/me.
type WhoAmIResponse struct {
	Authenticated bool   `json:"authenticated"`
	TeacherName   string `json:"teacher_name,omitempty"`
	Username      string `json:"username,omitempty"`
}

// ActivityResponse is one entry of the GET /activities listing.
type ActivityResponse struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// HealthResponse is the response body for GET /health and GET /ready.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}
