package catalog

import "errors"

var (
	ErrPlatformNotFound = errors.New("platform not found")
	ErrFeatureNotFound  = errors.New("feature not found")
	ErrAddonNotFound    = errors.New("addon not found")
)
