package txsearch

import "errors"

// txsearch errors
var (
	ErrSearchClosed    = errors.New("txsearch closed")
	ErrAlreadyIndexed  = errors.New("already indexed height")
	ErrNotExistRecord  = errors.New("not exist record")
	ErrInvalidPageSize = errors.New("invalid page index")
)
