package errorz

import "errors"

var (
	EventFull        = errors.New("event is full")
	AlreadyAttending = errors.New("user is already attending this event")
	EventCancelled   = errors.New("event is cancelled")
	NoSlides         = errors.New("no slides available")
	SlideOutOfRange  = errors.New("slide index out of range")
	Unauthorized     = errors.New("unauthorized")
	Forbidden        = errors.New("forbidden")
)
