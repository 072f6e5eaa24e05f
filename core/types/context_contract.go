package types

import (
	"math/big"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/hash"
)

// ContractContext is an context for the contract
type ContractContext struct {
	cont common.Address
	from common.Address
	ctx  *Context
	Exec ExecFunc
}

// ChainID returns the id of the chain
func (cc *ContractContext) ChainID() *big.Int {
	return cc.ctx.ChainID()
}

// Hash returns the hash value of it
func (cc *ContractContext) Hash() hash.Hash256 {
	return cc.ctx.Hash()
}

// TargetHeight returns the recorded target height when ContractContext generation
func (cc *ContractContext) TargetHeight() uint32 {
	return cc.ctx.TargetHeight()
}

// LastTimestamp returns the recorded prev timestamp when ContractContext generation
func (cc *ContractContext) LastTimestamp() uint64 {
	return cc.ctx.LastTimestamp()
}

// From returns current caller address
func (cc *ContractContext) From() common.Address {
	return cc.from
}

// Address returns the address of the running contract
func (cc *ContractContext) Address() common.Address {
	return cc.cont
}

// MainToken returns the MainToken
func (cc *ContractContext) MainToken() *common.Address {
	return cc.ctx.Top().MainToken()
}

// ContractData returns the contract data from the top snapshot
func (cc *ContractContext) ContractData(name []byte) []byte {
	return cc.ctx.Top().Data(cc.cont, common.Address{}, name)
}

// SetContractData inserts the contract data to the top snapshot
func (cc *ContractContext) SetContractData(name []byte, value []byte) {
	cc.ctx.SetData(cc.cont, common.Address{}, name, value)
}

// AccountData returns the account data from the top snapshot
func (cc *ContractContext) AccountData(addr common.Address, name []byte) []byte {
	return cc.ctx.Top().Data(cc.cont, addr, name)
}

// SetAccountData inserts the account data to the top snapshot
func (cc *ContractContext) SetAccountData(addr common.Address, name []byte, value []byte) {
	cc.ctx.SetData(cc.cont, addr, name, value)
}

// DeployContract deploys a contract owned by the owner
func (cc *ContractContext) DeployContract(owner common.Address, ClassID uint64, Args []byte) (Contract, error) {
	return cc.ctx.DeployContract(owner, ClassID, Args)
}

// IsContract returns is the contract
func (cc *ContractContext) IsContract(addr common.Address) bool {
	return cc.ctx.Top().IsContract(addr)
}

// DeployContractWithAddress deploys a contract owned by the owner to the given address
func (cc *ContractContext) DeployContractWithAddress(owner common.Address, ClassID uint64, addr common.Address, Args []byte) (Contract, error) {
	return cc.ctx.DeployContractWithAddress(owner, ClassID, addr, Args)
}
