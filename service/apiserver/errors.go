package apiserver

import (
	"errors"
)

// errors
var (
	ErrInvalidArgumentIndex = errors.New("invalid argument index")
	ErrInvalidArgumentType  = errors.New("invalid argument type")
	ErrInvalidMethod        = errors.New("invalid method")
	ErrInvalidRequest       = errors.New("invalid request")
	ErrExistSubName         = errors.New("exist sub name")
	ErrServerClosed         = errors.New("server closed")
)

// json rpc error codes
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeExecution      = -32000
)

// CodedError is an error carrying its json rpc error code
type CodedError struct {
	error
	code int
}

// NewCodedError returns the error wrapped with the code
func NewCodedError(code int, err error) *CodedError {
	return &CodedError{
		error: err,
		code:  code,
	}
}

// ErrorCode returns the json rpc error code
func (e *CodedError) ErrorCode() int {
	return e.code
}

// Unwrap returns the wrapped error
func (e *CodedError) Unwrap() error {
	return e.error
}

func toJRPCError(err error) *JRPCError {
	var ce *CodedError
	if errors.As(err, &ce) {
		return &JRPCError{Code: ce.ErrorCode(), Message: err.Error()}
	}
	if errors.Is(err, ErrInvalidArgumentIndex) || errors.Is(err, ErrInvalidArgumentType) {
		return &JRPCError{Code: CodeInvalidParams, Message: err.Error()}
	}
	return &JRPCError{Code: CodeExecution, Message: err.Error()}
}
