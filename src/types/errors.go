package types

import "errors"

var (
	// ErrInvalidFloorRequest is returned when a call origin or destination lies outside the building.
	ErrInvalidFloorRequest = errors.New("invalid floor request")
	// ErrInvalidDirection is returned when a hall call is neither up nor down.
	ErrInvalidDirection = errors.New("invalid direction")
	ErrInvalidConfig    = errors.New("invalid config")
	ErrUnknownScenario  = errors.New("unknown scenario")
	// ErrExpectationFailed is returned when a scenario run does not visit the expected floors.
	ErrExpectationFailed = errors.New("expectation failed")
)
