// Package apperrors defines the recoverable, request-scoped failure kinds
// this service reports. Every kind carries a stable machine-readable name
// and an HTTP status. Anything outside this taxonomy is an internal failure.
package apperrors

// AppError is a recoverable failure with a stable kind.
type AppError struct {
	HTTPCode int    `json:"httpCode"`
	Kind     string `json:"name"`
	Message  string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so a
	// caller cannot probe which emails have accounts.
	ErrInvalidCredentials = &AppError{HTTPCode: 422, Kind: "InvalidCredentials", Message: "Incorrect Email or Password."}

	// ErrSessionNotFound means the bearer session secret matches no live
	// session (logged out elsewhere); the client must re-authenticate.
	ErrSessionNotFound = &AppError{HTTPCode: 401, Kind: "SessionNotFound", Message: "Your session has expired."}

	// ErrSessionExpired means the session exists but is past expiry. The row
	// is deleted before this is surfaced.
	ErrSessionExpired = &AppError{HTTPCode: 401, Kind: "SessionExpired", Message: "Your session has expired."}

	// ErrUnauthenticated means the request carried no usable credential.
	ErrUnauthenticated = &AppError{HTTPCode: 401, Kind: "Unauthenticated", Message: "Unauthenticated."}

	// ErrResourceNotFound is returned both for truly absent resources and for
	// privacy-denied ones, so an unauthorized caller cannot learn that a
	// private resource exists.
	ErrResourceNotFound = &AppError{HTTPCode: 404, Kind: "NotFound", Message: "Resource not found."}

	// ErrRelationshipNotFound means an unfollow targeted a follow edge that
	// does not exist.
	ErrRelationshipNotFound = &AppError{HTTPCode: 404, Kind: "RelationshipNotFound", Message: "User relationship not found."}

	// ErrSelfAction means an account tried to follow itself.
	ErrSelfAction = &AppError{HTTPCode: 422, Kind: "SelfActionRejected", Message: "You cannot follow yourself."}

	// ErrOTCExpired means the one-time code exists but is past expiry.
	ErrOTCExpired = &AppError{HTTPCode: 410, Kind: "OTCExpired", Message: "The code you provided is expired."}

	// ErrOTCInvalid means the submitted one-time code does not match.
	ErrOTCInvalid = &AppError{HTTPCode: 400, Kind: "OTCInvalid", Message: "The verification code is incorrect."}
)

// Conflict reports that a unique field (email, handle, follow edge, like) is
// already taken, with a message naming which.
func Conflict(message string) *AppError {
	return &AppError{HTTPCode: 409, Kind: "Conflict", Message: message}
}
