package contract

const (
	MinUsernameChars = 3
	MaxUsernameChars = 20
)

const (
	MessageNewUser     = "New user created"
	MessageWelcomeBack = "Welcome back"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20,usernamechars"`
}

type LoginResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username"`
	Message  string `json:"message"`
}
