package service

import "errors"

var (
	// ErrForbidden is returned when the caller lacks the admin capability.
	ErrForbidden = errors.New("access denied")

	// ErrUsernameTaken is returned when an active account already uses the
	// requested username.
	ErrUsernameTaken = errors.New("username already used")

	// ErrEmailAlreadyRequested is returned when a registration request of
	// any status already exists for the email.
	ErrEmailAlreadyRequested = errors.New("email already requested")

	// ErrRequestNotFound covers both a missing request and one that was
	// already approved or rejected. The two cases are deliberately
	// indistinguishable to the caller so that re-processing is idempotent.
	ErrRequestNotFound = errors.New("request not found or already processed")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
