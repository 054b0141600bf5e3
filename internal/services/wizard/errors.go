package wizard

import "errors"

var (
	ErrSessionNotFound  = errors.New("wizard session not found")
	ErrStepIncomplete   = errors.New("current step is not complete")
	ErrWrongStep        = errors.New("action not allowed on current step")
	ErrAtFirstStep      = errors.New("already at the first step")
	ErrAlreadySubmitted = errors.New("request already submitted")
	ErrSubmitInFlight   = errors.New("a submission is already in progress")
	ErrInvalidContact   = errors.New("a valid contact email is required")
)
