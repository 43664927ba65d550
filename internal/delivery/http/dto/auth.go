package dto

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthSuccessResponse is the flat body answered by register and login.
type AuthSuccessResponse struct {
	Status   int    `json:"status"`
	Message  string `json:"message"`
	Name     string `json:"name"`
	JwtToken string `json:"jwtToken"`
}
