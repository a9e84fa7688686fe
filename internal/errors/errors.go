package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when the requested row does not exist, or an
	// update/delete touched zero rows.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateAccount is returned when signing up with an email that is
	// already registered.
	ErrDuplicateAccount = errors.New("account already registered")
	// ErrInvalidCredentials is returned on login when the email is unknown or
	// the password is wrong. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNoToken is returned when the Authorization header is absent.
	ErrNoToken = errors.New("missing bearer token")
	// ErrInvalidToken is returned when a bearer token is malformed, has a bad
	// signature, or is expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized is
// downgraded to a generic 500 with no detail.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrDuplicateAccount):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "DUPLICATE_ACCOUNT")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrNoToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "NO_TOKEN")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusForbidden, err.Error(), "INVALID_TOKEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
