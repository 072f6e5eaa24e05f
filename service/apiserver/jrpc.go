package apiserver

import (
	"sync"
)

// Handler handles a rpc method
type Handler func(ID interface{}, arg *Argument) (interface{}, error)

// JRPCSub provides the json rpc feature of the sub name
type JRPCSub struct {
	sync.Mutex
	funcMap map[string]Handler
}

// NewJRPCSub returns a JRPCSub
func NewJRPCSub() *JRPCSub {
	s := &JRPCSub{
		funcMap: map[string]Handler{},
	}
	return s
}

// Set sets a handler of the method
func (s *JRPCSub) Set(Method string, h Handler) {
	s.Lock()
	defer s.Unlock()

	s.funcMap[Method] = h
}

func (s *JRPCSub) get(Method string) (Handler, bool) {
	s.Lock()
	defer s.Unlock()

	h, has := s.funcMap[Method]
	return h, has
}

// JRPCRequest is a jrpc request
type JRPCRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      interface{}   `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

// JRPCResponse is a jrpc response
type JRPCResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *JRPCError  `json:"error,omitempty"`
}

// JRPCError is the error object of a jrpc response
type JRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
