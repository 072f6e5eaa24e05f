package types

import "errors"

// runtime errors
var (
	ErrExistContractType = errors.New("exist contract type")
	ErrInvalidClassID    = errors.New("invalid class id")
	ErrNotExistContract  = errors.New("not exist contract")
	ErrExistAddress      = errors.New("exist address")
	ErrMethodNotGiven    = errors.New("method not given")
	ErrMethodNotExist    = errors.New("method not exist")
	ErrInteractorExpired = errors.New("interactor expired")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotExistMainToken = errors.New("not exist main token")
)
