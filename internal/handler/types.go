package handler

// Response is what both handlers return: a status code and a JSON body.
type Response struct {
	StatusCode int
	Body       string
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type messageBody struct {
	Message string `json:"message"`
}

type errorBody struct {
	Error string `json:"error"`
}

type loginSuccessBody struct {
	Message      string  `json:"message"`
	IDToken      *string `json:"idToken,omitempty"`
	AccessToken  *string `json:"accessToken,omitempty"`
	RefreshToken *string `json:"refreshToken,omitempty"`
}

// Response messages.
const (
	msgMissingFields      = "email & password required"
	msgUserRegistered     = "user registered"
	msgUserExists         = "user already exists, try to login"
	msgLoginSuccessful    = "login successful"
	msgInvalidCredentials = "invalid credentials"
	msgUserNotConfirmed   = "user not confirmed"
	msgUserNotFound       = "user not found"
)

// Login outcome metric names.
const (
	MetricLoginSuccess                   = "LoginSuccess"
	MetricLoginFailureMissingFields      = "LoginFailure_MissingFields"
	MetricLoginFailureInvalidCredentials = "LoginFailure_InvalidCredentials"
	MetricLoginFailureUserNotConfirmed   = "LoginFailure_UserNotConfirmed"
	MetricLoginFailureUserNotFound       = "LoginFailure_UserNotFound"
	MetricLoginFailureUnknownError       = "LoginFailure_UnknownError"
)

const emailDimension = "Email"
