package dto

// SignInRequest carries an OAuth provider token for the web surface.
type SignInRequest struct {
	Provider    string `json:"provider"`
	AccessToken string `json:"accessToken"`
}

// MobileLoginRequest carries admin credentials for the mobile surface.
type MobileLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public shape of a principal.
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
	Role  string `json:"role"`
}

// TokenResponse returns an issued credential together with its owner.
type TokenResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// FCMTokenRequest registers a push device token.
type FCMTokenRequest struct {
	Token string `json:"token"`
}
