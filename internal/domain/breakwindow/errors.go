package breakwindow

import "errors"

// Break window domain errors
var (
	ErrBreakWindowNotFound = errors.New("break window not found")
	ErrMorningBreakExists  = errors.New("an active morning break window already exists")
)
