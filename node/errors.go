package node

import "errors"

// node errors
var (
	ErrNodeClosed         = errors.New("node closed")
	ErrNotGenesised       = errors.New("not genesised")
	ErrEmptyTransaction   = errors.New("empty transaction")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidAddressBook = errors.New("invalid address book")
)
