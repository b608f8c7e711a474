package dto

// LoginRequest is the login payload. The password is compared as an
// exact string against the stored value.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"warden@hostel.edu"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
	ExpiresIn   int    `json:"expires_in" example:"3600"`
}

// AuthUserResponse is the authenticated caller's identity.
type AuthUserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role" example:"warden"`
}
