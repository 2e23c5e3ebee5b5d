package dto

// AuthRequest describes login/password payload for staff endpoints.
type AuthRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}
