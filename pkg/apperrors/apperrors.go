package apperrors

import "fmt"

// Error is the single error type crossing service boundaries. Status and
// Code are what the client sees; Err is the wrapped cause and is only ever
// logged server-side.
type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %v", e.Message, e.Code, e.Err)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports client-supplied data that fails shape/type checks.
func Validation(message string) *Error {
	return &Error{Status: 422, Code: "validation_error", Message: message}
}

// Unauthenticated reports a request without a verified identity.
func Unauthenticated() *Error {
	return &Error{Status: 401, Code: "unauthorized", Message: "User not authenticated"}
}

// InvalidCredentials reports a wrong username/password pair.
func InvalidCredentials() *Error {
	return &Error{Status: 401, Code: "invalid_credentials", Message: "Invalid credentials"}
}

// AccountNotFound reports that the identity provider knows no such user.
func AccountNotFound() *Error {
	return &Error{Status: 404, Code: "user_not_found", Message: "User does not exist"}
}

// DuplicateAccount reports an already-registered email.
func DuplicateAccount() *Error {
	return &Error{Status: 409, Code: "user_exists", Message: "Email is already registered"}
}

// InvalidPassword reports a password rejected by the provider's policy.
func InvalidPassword() *Error {
	return &Error{Status: 400, Code: "invalid_password", Message: "Password does not meet the requirements"}
}

// TaskNotFound covers both a missing task and a task owned by someone else;
// the two are indistinguishable to the caller.
func TaskNotFound() *Error {
	return &Error{Status: 404, Code: "task_not_found", Message: "Task not found"}
}

// MissingTaskID reports a request without the task id path parameter.
func MissingTaskID() *Error {
	return &Error{Status: 400, Code: "missing_task_id", Message: "Task ID not provided"}
}

// Upstream wraps an unclassified provider rejection; the provider's own
// code and message pass through.
func Upstream(code, message string) *Error {
	return &Error{Status: 400, Code: code, Message: message}
}

// Internal wraps anything unexpected. The cause stays server-side; the
// client only sees the generic message.
func Internal(message string, err error) *Error {
	return &Error{Status: 500, Code: "server_error", Message: message, Err: err}
}

// From returns err as *Error when it already is one, and classifies
// everything else as internal.
func From(err error) *Error {
	if appErr, ok := err.(*Error); ok {
		return appErr
	}
	return Internal("Unexpected server error", err)
}
