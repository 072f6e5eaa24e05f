package types

import (
	"github.com/meverselabs/defizap/common"
)

// Contract defines chain Contract functions
type Contract interface {
	Address() common.Address
	Master() common.Address
	Init(addr common.Address, master common.Address)
	OnCreate(cc *ContractContext, Args []byte) error
	Front() interface{}
}

// ContractLoader is the read-only view of the contract state
type ContractLoader interface {
	ContractData(name []byte) []byte
	AccountData(addr common.Address, name []byte) []byte
}
