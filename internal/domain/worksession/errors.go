package worksession

import "errors"

var (
	ErrAlreadyStarted    = errors.New("work session already started today")
	ErrNotStarted        = errors.New("work session has not been started today")
	ErrAlreadyOnLunch    = errors.New("lunch has already been started")
	ErrLunchNotStarted   = errors.New("lunch has not been started")
	ErrLunchAlreadyEnded = errors.New("lunch has already been ended")
	ErrAlreadyEnded      = errors.New("work session has already been ended")
	ErrSessionNotFound   = errors.New("work session not found")
	ErrInvalidInterval   = errors.New("recorded times produce a negative interval")
)
