package node

import (
	"github.com/meverselabs/defizap/common"
)

// Listener is notified after every transaction the node runs
// Calls are made while the node lock is held, in execution order
type Listener interface {
	OnExecuted(from common.Address, txs []*Tx, receipt *Receipt)
	OnFailed(height uint32, from common.Address, txs []*Tx, err error)
}

// AddListener registers the listener
func (nd *Node) AddListener(l Listener) {
	nd.Lock()
	defer nd.Unlock()

	nd.listeners = append(nd.listeners, l)
}
