package apperrors

import "errors"

// Common errors
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrNoAccessToken      = errors.New("no access token stored")
	ErrNoRefreshToken     = errors.New("no refresh token stored")
	ErrNotAuthenticated   = errors.New("not authenticated")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
	ErrRoleMismatch     = errors.New("role not permitted for this page")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidRole      = errors.New("invalid role")

	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Transport errors
	ErrRequestFailed = errors.New("request failed")
)
