package domain

import "errors"

var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrLocationNotFound       = errors.New("location not found")
	ErrMalformedRecord        = errors.New("malformed location record")
	ErrInvalidLocationName    = errors.New("invalid location name")
	ErrInvalidAccountIdentity = errors.New("invalid account identity")
	ErrModelClosed            = errors.New("locations model is torn down")
)
