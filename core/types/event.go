package types

import (
	"fmt"

	"github.com/meverselabs/defizap/common"
)

// EventType is the kind of the event
type EventType uint8

// event types
const (
	EventTagCallHistory = EventType(0x01)
)

// Event is a record emitted while executing a transaction
type Event struct {
	Index uint16           `json:"index"`
	Type  EventType        `json:"type"`
	Call  *MethodCallEvent `json:"call,omitempty"`
}

// MethodCallEvent records a contract method call and its outcome
type MethodCallEvent struct {
	From   common.Address `json:"from"`
	To     common.Address `json:"to"`
	Method string         `json:"method"`
	Args   []interface{}  `json:"args"`
	Result []interface{}  `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// String returns the readable form of the call
func (mc *MethodCallEvent) String() string {
	if mc.Error != "" {
		return fmt.Sprintf("%v -> %v.%v(%v) error %v", mc.From.String(), mc.To.String(), mc.Method, mc.Args, mc.Error)
	}
	return fmt.Sprintf("%v -> %v.%v(%v) = %v", mc.From.String(), mc.To.String(), mc.Method, mc.Args, mc.Result)
}
