package types

import (
	"math/big"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/hash"
)

// Loader defines functions that loads state data from the target chain
type Loader interface {
	ChainID() *big.Int
	Version() uint16
	TargetHeight() uint32
	PrevHash() hash.Hash256
	LastTimestamp() uint64
	MainToken() *common.Address
	IsContract(addr common.Address) bool
	Contract(addr common.Address) (Contract, error)
	Data(cont common.Address, addr common.Address, name []byte) []byte
}

type emptyLoader struct {
}

// newEmptyLoader is used for generating genesis state
func newEmptyLoader() Loader {
	return &emptyLoader{}
}

func (st *emptyLoader) ChainID() *big.Int {
	return big.NewInt(0)
}

func (st *emptyLoader) Version() uint16 {
	return 0
}

func (st *emptyLoader) TargetHeight() uint32 {
	return 0
}

func (st *emptyLoader) PrevHash() hash.Hash256 {
	return hash.Hash256{}
}

func (st *emptyLoader) LastTimestamp() uint64 {
	return 0
}

func (st *emptyLoader) MainToken() *common.Address {
	return nil
}

func (st *emptyLoader) IsContract(addr common.Address) bool {
	return false
}

func (st *emptyLoader) Contract(addr common.Address) (Contract, error) {
	return nil, ErrNotExistContract
}

func (st *emptyLoader) Data(cont common.Address, addr common.Address, name []byte) []byte {
	return nil
}
