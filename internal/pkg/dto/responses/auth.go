package responses

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type ForgotPassword struct {
	Method    string `json:"method"`
	ExpiresAt string `json:"expiresAt"`
	// Code is only filled when the deployment allows returning it directly.
	Code string `json:"code,omitempty"`
}
