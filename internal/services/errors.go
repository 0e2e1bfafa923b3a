package services

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP
// status codes; everything else surfaces as an internal error.
var (
	ErrEventNotFound    = errors.New("event not found")
	ErrAttendeeNotFound = errors.New("attendee not found")
	ErrEventFinished    = errors.New("event is finished, restart it to modify attendees")
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidSecret    = errors.New("invalid event secret")
)
