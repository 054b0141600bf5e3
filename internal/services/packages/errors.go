package packages

import "errors"

var (
	ErrGroupNotFound = errors.New("service package group not found")
	ErrTierNotFound  = errors.New("service package tier not found")
	ErrInvalidEmail  = errors.New("a valid email is required")
)
