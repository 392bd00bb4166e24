package workingday

import "errors"

var (
	ErrWorkingDayNotFound = errors.New("working day not found")
	ErrOpenDayExists      = errors.New("an open working day already exists for this user and date")
)
