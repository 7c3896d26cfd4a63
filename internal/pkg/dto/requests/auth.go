package requests

type Signup struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type Login struct {
	EmailOrUsername string `json:"emailOrUsername" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

type ForgotPassword struct {
	Email  string `json:"email" validate:"omitempty,email"`
	Phone  string `json:"phone" validate:"required_without=Email"`
	Method string `json:"method" validate:"required,oneof=email sms"`
}

type VerifyCode struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

type ResetPassword struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required,len=6,numeric"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type ChangePassword struct {
	UserID          string `json:"userId"`
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}
