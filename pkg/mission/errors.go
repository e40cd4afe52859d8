package mission

import "errors"

var (
	ErrMissingMissionFile = errors.New("mission file not found")
)
