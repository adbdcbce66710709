package game

import "errors"

var (
	ErrInvalidAssignment = errors.New("invalid assignment")
	ErrUnknownEntity     = errors.New("unknown entity")
	ErrRoundsExhausted   = errors.New("all couriers already deployed")
	ErrNotStarted        = errors.New("game not started")
	ErrUnknownCommand    = errors.New("unknown command")
)
