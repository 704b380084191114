package domain

import "errors"

// Sentinel errors surfaced to clients as the response detail string,
// so the messages match the public API contract verbatim.
var (
	ErrActivityNotFound = errors.New("Activity not found")
	ErrAlreadySignedUp  = errors.New("Student is already signed up for this activity")
	ErrNotRegistered    = errors.New("Student is not registered for this activity")
	ErrEmailRequired    = errors.New("email is required")
)
