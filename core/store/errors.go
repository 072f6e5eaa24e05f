package store

import "errors"

// errors
var (
	ErrStoreClosed      = errors.New("store closed")
	ErrNotExistKey      = errors.New("not exist key")
	ErrInvalidHeight    = errors.New("invalid height")
	ErrAlreadyGenesised = errors.New("already genesised")
)
