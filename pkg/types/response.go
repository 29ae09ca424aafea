package types

// SuccessEnvelope is the uniform body for successful responses:
// { data, message, success }.
type SuccessEnvelope struct {
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
	Success bool   `json:"success"`
}

type APIError struct {
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope keeps the message at the top level so every failure,
// including 401s from the auth middleware, carries a JSON { message } body.
type ErrorEnvelope struct {
	Error   APIError `json:"error"`
	Message string   `json:"message"`
	Success bool     `json:"success"`
}
