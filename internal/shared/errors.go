package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")
	ErrMissingAPIKey = fmt.Errorf("missing API key")

	// Authentication errors
	ErrAuthFailed       = fmt.Errorf("authentication failed")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrTimeout          = fmt.Errorf("operation timed out")

	// API and import errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrInvalidPlaylistURL = fmt.Errorf("invalid playlist URL")
	ErrPlaylistNotFound   = fmt.Errorf("playlist not found")

	// Store and repository errors
	ErrDecodeFailure   = fmt.Errorf("stored record is not well-formed")
	ErrDuplicateCourse = fmt.Errorf("course name already exists")
	ErrCourseNotFound  = fmt.Errorf("course not found")
	ErrVideoNotFound   = fmt.Errorf("video not found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
