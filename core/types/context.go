package types

import (
	"math/big"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/hash"
)

// Context is an intermediate in-memory state using the context data stack between blocks
type Context struct {
	loader          Loader
	genTargetHeight uint32
	genPrevHash     hash.Hash256
	genTimestamp    uint64
	cache           *contextCache
	stack           []*ContextData
	isLatestHash    bool
	dataHash        hash.Hash256
}

// NewContext returns a Context
func NewContext(loader Loader) *Context {
	ctx := &Context{
		loader:          loader,
		genTargetHeight: loader.TargetHeight(),
		genPrevHash:     loader.PrevHash(),
		genTimestamp:    loader.LastTimestamp(),
	}
	ctx.cache = newContextCache(ctx)
	ctx.stack = []*ContextData{NewContextData(ctx.cache, nil)}
	return ctx
}

// NewEmptyContext returns a EmptyContext
func NewEmptyContext() *Context {
	return NewContext(newEmptyLoader())
}

// NextContext returns the next Context of the Context
func (ctx *Context) NextContext(PrevHash hash.Hash256, Timestamp uint64) *Context {
	nctx := NewContext(ctx)
	nctx.genTargetHeight = ctx.genTargetHeight + 1
	nctx.genPrevHash = PrevHash
	nctx.genTimestamp = Timestamp
	return nctx
}

// ChainID returns the id of the chain
func (ctx *Context) ChainID() *big.Int {
	return ctx.loader.ChainID()
}

// Version returns the version of the chain
func (ctx *Context) Version() uint16 {
	return ctx.loader.Version()
}

// Hash returns the hash value of it
func (ctx *Context) Hash() hash.Hash256 {
	if !ctx.isLatestHash {
		ctx.dataHash = hash.Hashes(ctx.genPrevHash, ctx.Top().Hash())
		ctx.isLatestHash = true
	}
	return ctx.dataHash
}

// TargetHeight returns the recorded target height when context generation
func (ctx *Context) TargetHeight() uint32 {
	return ctx.genTargetHeight
}

// PrevHash returns the recorded prev hash when context generation
func (ctx *Context) PrevHash() hash.Hash256 {
	return ctx.genPrevHash
}

// LastTimestamp returns the last timestamp of the chain
func (ctx *Context) LastTimestamp() uint64 {
	return ctx.genTimestamp
}

// Top returns the top snapshot
func (ctx *Context) Top() *ContextData {
	return ctx.stack[len(ctx.stack)-1]
}

// MainToken returns the main token address
func (ctx *Context) MainToken() *common.Address {
	return ctx.Top().MainToken()
}

// SetMainToken sets the main token address
func (ctx *Context) SetMainToken(addr common.Address) {
	ctx.isLatestHash = false
	ctx.Top().SetMainToken(addr)
}

// IsContract returns is the contract
func (ctx *Context) IsContract(addr common.Address) bool {
	return ctx.Top().IsContract(addr)
}

// Contract returns the contract of the address
func (ctx *Context) Contract(addr common.Address) (Contract, error) {
	return ctx.Top().Contract(addr)
}

// DeployContract deploys the contract to a derived address
func (ctx *Context) DeployContract(owner common.Address, ClassID uint64, Args []byte) (Contract, error) {
	ctx.isLatestHash = false
	return ctx.Top().DeployContract(owner, ClassID, Args)
}

// DeployContractWithAddress deploys the contract to the given address
func (ctx *Context) DeployContractWithAddress(owner common.Address, ClassID uint64, addr common.Address, Args []byte) (Contract, error) {
	ctx.isLatestHash = false
	return ctx.Top().DeployContractWithAddress(owner, ClassID, addr, Args)
}

// Data returns the data from the top snapshot
func (ctx *Context) Data(cont common.Address, addr common.Address, name []byte) []byte {
	return ctx.Top().Data(cont, addr, name)
}

// SetData inserts the data to the top snapshot
func (ctx *Context) SetData(cont common.Address, addr common.Address, name []byte, value []byte) {
	ctx.isLatestHash = false
	ctx.Top().SetData(cont, addr, name, value)
}

// ContractContext returns a ContractContext
func (ctx *Context) ContractContext(cont Contract, from common.Address) *ContractContext {
	return &ContractContext{
		cont: cont.Address(),
		from: from,
		ctx:  ctx,
	}
}

// Dump prints the top context data of the context
func (ctx *Context) Dump() string {
	return ctx.Top().Dump()
}

// Snapshot push a snapshot and returns the snapshot number of it
func (ctx *Context) Snapshot() int {
	ctx.isLatestHash = false
	ctd := NewContextData(ctx.cache, ctx.Top())
	ctx.stack = append(ctx.stack, ctd)
	return len(ctx.stack)
}

// Revert removes snapshots after the snapshot number
func (ctx *Context) Revert(sn int) {
	ctx.isLatestHash = false
	if sn < 2 {
		sn = 2
	}
	if len(ctx.stack) >= sn {
		ctx.stack = ctx.stack[:sn-1]
	}
}

// Commit apply snapshots to the top after the snapshot number
func (ctx *Context) Commit(sn int) {
	ctx.isLatestHash = false
	if sn < 2 {
		sn = 2
	}
	for len(ctx.stack) >= sn {
		ctd := ctx.Top()
		ctx.stack = ctx.stack[:len(ctx.stack)-1]
		ctx.Top().merge(ctd)
	}
}

// StackSize returns the size of the context data stack
func (ctx *Context) StackSize() int {
	return len(ctx.stack)
}
