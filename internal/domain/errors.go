package domain

import "errors"

var (
	ErrRentalNotFound        = errors.New("rental not found")
	ErrGeneratorNotFound     = errors.New("generator not found")
	ErrInvalidState          = errors.New("rental is not in a valid state for this transition")
	ErrNoGeneratorsAvailable = errors.New("no generators available to assign")
	ErrInvalidInput          = errors.New("invalid input")
)
