package node

import (
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	"github.com/meverselabs/defizap/common/bin"
	"github.com/meverselabs/defizap/common/hash"
	"github.com/meverselabs/defizap/core/store"
	"github.com/meverselabs/defizap/core/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Tx is a single contract call of a transaction
type Tx struct {
	To     common.Address
	Method string
	Args   []interface{}
}

// Receipt is the result of an executed transaction
type Receipt struct {
	Height    uint32          `json:"height"`
	Hash      hash.Hash256    `json:"hash"`
	Timestamp uint64          `json:"timestamp"`
	Results   [][]interface{} `json:"results"`
	Events    []*types.Event  `json:"events"`
}

// Node runs contract calls on the devnet state and persists every executed transaction
type Node struct {
	sync.Mutex
	cfg       *Config
	st        *store.Store
	logger    *zap.Logger
	classMap  *ClassMap
	book      *AddressBook
	listeners []Listener
	closeLock sync.RWMutex
	isClose   bool
}

// NewNode returns a Node
func NewNode(cfg *Config, st *store.Store, logger *zap.Logger) (*Node, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	cm, err := RegisterContracts()
	if err != nil {
		return nil, err
	}
	return &Node{
		cfg:      cfg,
		st:       st,
		logger:   logger,
		classMap: cm,
	}, nil
}

// Close terminates the node and its store
func (nd *Node) Close() {
	nd.closeLock.Lock()
	defer nd.closeLock.Unlock()

	nd.Lock()
	defer nd.Unlock()

	nd.isClose = true
	nd.st.Close()
	nd.logger.Info("node closed")
}

// Config returns the genesis config of the node
func (nd *Node) Config() *Config {
	return nd.cfg
}

// Height returns the last stored height
func (nd *Node) Height() uint32 {
	return nd.st.Height()
}

// Addresses returns the contracts deployed at genesis
func (nd *Node) Addresses() (*AddressBook, error) {
	if nd.book == nil {
		return nil, errors.WithStack(ErrNotGenesised)
	}
	book := *nd.book
	return &book, nil
}

// Call runs the method on a throwaway snapshot; nothing is persisted
func (nd *Node) Call(from common.Address, to common.Address, method string, args []interface{}) ([]interface{}, error) {
	nd.closeLock.RLock()
	defer nd.closeLock.RUnlock()
	if nd.isClose {
		return nil, errors.WithStack(ErrNodeClosed)
	}

	ctx := types.NewContext(nd.st)
	sn := ctx.Snapshot()
	defer ctx.Revert(sn)

	is, _, err := execTx(ctx, from, &Tx{To: to, Method: method, Args: args}, 0, false)
	if err != nil {
		return nil, err
	}
	return is, nil
}

// Execute runs the method and persists its changes as a new height
func (nd *Node) Execute(from common.Address, to common.Address, method string, args []interface{}) (*Receipt, error) {
	return nd.ExecuteBatch(from, []*Tx{{To: to, Method: method, Args: args}})
}

// ExecuteBatch runs the calls in order as one transaction
// If any call fails, none of the changes are persisted
func (nd *Node) ExecuteBatch(from common.Address, txs []*Tx) (*Receipt, error) {
	nd.closeLock.RLock()
	defer nd.closeLock.RUnlock()
	if nd.isClose {
		return nil, errors.WithStack(ErrNodeClosed)
	}
	if len(txs) == 0 {
		return nil, errors.WithStack(ErrEmptyTransaction)
	}

	nd.Lock()
	defer nd.Unlock()

	ctx := types.NewContext(nd.st)
	receipt := &Receipt{
		Height:  ctx.TargetHeight(),
		Results: [][]interface{}{},
		Events:  []*types.Event{},
	}
	for i, tx := range txs {
		is, evs, err := execTx(ctx, from, tx, uint16(i), true)
		if err != nil {
			nd.logger.Debug("transaction failed",
				zap.String("from", from.String()),
				zap.String("to", tx.To.String()),
				zap.String("method", tx.Method),
				zap.Error(err),
			)
			for _, l := range nd.listeners {
				l.OnFailed(receipt.Height, from, txs, err)
			}
			return nil, err
		}
		receipt.Results = append(receipt.Results, is)
		receipt.Events = append(receipt.Events, evs...)
	}

	receipt.Timestamp = uint64(time.Now().UnixNano())
	if err := nd.st.StoreContext(ctx, receipt.Timestamp); err != nil {
		return nil, errors.Wrap(err, "store context")
	}
	receipt.Hash = ctx.Hash()
	nd.logger.Info("transaction executed",
		zap.Uint32("height", receipt.Height),
		zap.String("hash", receipt.Hash.String()),
		zap.String("from", from.String()),
		zap.Int("calls", len(txs)),
	)
	for _, l := range nd.listeners {
		l.OnExecuted(from, txs, receipt)
	}
	return receipt, nil
}

func execTx(ctx *types.Context, from common.Address, tx *Tx, index uint16, saveEvent bool) ([]interface{}, []*types.Event, error) {
	cont, err := ctx.Contract(tx.To)
	if err != nil {
		return nil, nil, err
	}
	cc := ctx.ContractContext(cont, from)
	intr := types.NewInteractor(ctx, cont, cc, index, saveEvent)
	cc.Exec = intr.Exec
	defer intr.Distroy()

	is, err := cc.Exec(cc, tx.To, tx.Method, tx.Args)
	if err != nil {
		return nil, nil, err
	}
	return is, intr.EventList(), nil
}

// Faucet sends the native coin from the admin to the address
func (nd *Node) Faucet(to common.Address, am *amount.Amount) (*Receipt, error) {
	if nd.book == nil {
		return nil, errors.WithStack(ErrNotGenesised)
	}
	if am == nil || !am.IsPlus() {
		return nil, errors.WithStack(ErrInvalidAmount)
	}
	if nd.cfg.FaucetLimit != nil && nd.cfg.FaucetLimit.Less(am) {
		return nil, errors.Wrapf(ErrInvalidAmount, "faucet limit is %v", nd.cfg.FaucetLimit.String())
	}
	return nd.Execute(nd.cfg.Admin, nd.book.Coin, "Mint", []interface{}{to, am})
}

// Dump returns a readable listing of the deployed contracts
func (nd *Node) Dump() (string, error) {
	cds, err := nd.st.Contracts()
	if err != nil {
		return "", err
	}
	list := make([]string, 0, len(cds))
	for _, cd := range cds {
		list = append(list, cd.String())
	}
	cfg := spew.NewDefaultConfig()
	cfg.DisablePointerAddresses = true
	cfg.DisableCapacities = true
	return cfg.Sdump(nd.book, list), nil
}

func (nd *Node) loadAddressBook() (*AddressBook, error) {
	bs := nd.st.Data(common.ZeroAddr, common.ZeroAddr, addressBookKey)
	if len(bs) == 0 {
		return nil, errors.WithStack(ErrInvalidAddressBook)
	}
	book := &AddressBook{}
	if _, err := bin.ReadFromBytes(book, bs); err != nil {
		return nil, err
	}
	return book, nil
}
