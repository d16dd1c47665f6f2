package utils

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrItineraryNotFound = errors.New("itinerary not found")
	ErrShareExpired      = errors.New("share link expired")
	ErrInvalidToken      = errors.New("invalid delete token")
	ErrRateLimited       = errors.New("rate limited")
	ErrUpstreamFailure   = errors.New("generation upstream failure")
	ErrDatabaseError     = errors.New("database error")
)
