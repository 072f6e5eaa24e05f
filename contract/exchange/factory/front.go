package factory

import (
	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/core/types"
)

func (cont *FactoryContract) Front() interface{} {
	return &FactoryFront{
		cont: cont,
	}
}

type FactoryFront struct {
	cont *FactoryContract
}

//////////////////////////////////////////////////
// Factory Reader Functions
//////////////////////////////////////////////////
func (f *FactoryFront) Owner(cc types.ContractLoader) common.Address {
	return f.cont.owner(cc)
}
func (f *FactoryFront) ExchangeClassID(cc types.ContractLoader) uint64 {
	return f.cont.exchangeClassID(cc)
}
func (f *FactoryFront) Fee(cc types.ContractLoader) uint64 {
	return f.cont.fee(cc)
}
func (f *FactoryFront) GetExchange(cc types.ContractLoader, token common.Address) common.Address {
	return f.cont.getExchange(cc, token)
}
func (f *FactoryFront) GetToken(cc types.ContractLoader, exchange common.Address) common.Address {
	return f.cont.getToken(cc, exchange)
}
func (f *FactoryFront) AllExchanges(cc types.ContractLoader) []common.Address {
	return f.cont.allExchanges(cc)
}
func (f *FactoryFront) ExchangeCount(cc types.ContractLoader) uint32 {
	return f.cont.exchangeCount(cc)
}

//////////////////////////////////////////////////
// Factory Writer Functions
//////////////////////////////////////////////////
func (f *FactoryFront) CreateExchange(cc *types.ContractContext, token common.Address) (common.Address, error) {
	return f.cont.createExchange(cc, token)
}
func (f *FactoryFront) SetOwner(cc *types.ContractContext, _owner common.Address) error {
	return f.cont.setOwner(cc, _owner)
}
