package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")
	ErrInitDeclined  = fmt.Errorf("initialization declined")

	// Persistence errors
	ErrStoreCorrupt = fmt.Errorf("persisted record is corrupt")
	ErrStoreWrite   = fmt.Errorf("failed to write persisted record")

	// Library errors
	ErrPlaylistNotFound = fmt.Errorf("playlist not found")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
