package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// sessionResponse is the transport view of the active session.
type sessionResponse struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar,omitempty"`
}

type authResponse struct {
	Token   string          `json:"token"`
	Session sessionResponse `json:"session"`
}

type acceptedResponse struct {
	Message string `json:"message"`
}
