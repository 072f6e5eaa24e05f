package types

import (
	"github.com/meverselabs/defizap/common"
)

// contextCache memoizes loader reads for the lifetime of a Context
type contextCache struct {
	ctx         *Context
	mainToken   *common.Address
	ContractMap map[common.Address]Contract
	DataMap     map[string][]byte
}

func newContextCache(ctx *Context) *contextCache {
	return &contextCache{
		ctx:         ctx,
		ContractMap: map[common.Address]Contract{},
		DataMap:     map[string][]byte{},
	}
}

func (cc *contextCache) MainToken() *common.Address {
	if cc.mainToken == nil {
		cc.mainToken = cc.ctx.loader.MainToken()
	}
	return cc.mainToken
}

// IsContract returns is the contract
func (cc *contextCache) IsContract(addr common.Address) bool {
	if _, has := cc.ContractMap[addr]; has {
		return true
	}
	return cc.ctx.loader.IsContract(addr)
}

// Contract returns the contract of the address
func (cc *contextCache) Contract(addr common.Address) (Contract, error) {
	if cont, has := cc.ContractMap[addr]; has {
		return cont, nil
	}
	cont, err := cc.ctx.loader.Contract(addr)
	if err != nil {
		return nil, err
	}
	cc.ContractMap[addr] = cont
	return cont, nil
}

// Data returns the data
func (cc *contextCache) Data(cont common.Address, addr common.Address, name []byte) []byte {
	key := dataKey(cont, addr, name)
	if value, has := cc.DataMap[key]; has {
		return value
	}
	value := cc.ctx.loader.Data(cont, addr, name)
	cc.DataMap[key] = value
	return value
}
