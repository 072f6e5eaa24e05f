package factory

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/bin"
	"github.com/meverselabs/defizap/contract/exchange/trade"
	"github.com/meverselabs/defizap/core/types"

	. "github.com/meverselabs/defizap/contract/util"
)

// FactoryContract deploys at most one exchange per token
type FactoryContract struct {
	addr   common.Address
	master common.Address
}

func (cont *FactoryContract) Address() common.Address {
	return cont.addr
}
func (cont *FactoryContract) Master() common.Address {
	return cont.master
}
func (cont *FactoryContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}
func (cont *FactoryContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &FactoryContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	if !types.IsValidClassID(data.ExchangeClassID) {
		return errors.WithStack(types.ErrInvalidClassID)
	}
	if data.Fee >= trade.FEE_DENOMINATOR {
		return errors.New("Exchange: INVALID_FEE")
	}

	cc.SetContractData([]byte{tagOwner}, data.Owner[:])
	cc.SetContractData([]byte{tagExchangeClassID}, bin.Uint64Bytes(data.ExchangeClassID))
	cc.SetContractData([]byte{tagFee}, bin.Uint64Bytes(data.Fee))
	return nil
}

//////////////////////////////////////////////////
// Factory : reader function
//////////////////////////////////////////////////
func (cont *FactoryContract) owner(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagOwner}))
}
func (cont *FactoryContract) exchangeClassID(cc types.ContractLoader) uint64 {
	return bin.Uint64(cc.ContractData([]byte{tagExchangeClassID}))
}
func (cont *FactoryContract) fee(cc types.ContractLoader) uint64 {
	return bin.Uint64(cc.ContractData([]byte{tagFee}))
}
func (cont *FactoryContract) getExchange(cc types.ContractLoader, token common.Address) common.Address {
	bs := cc.ContractData(makeAddressKey(tagTokenToExchange, token))
	if bs == nil {
		return ZeroAddress
	}
	return common.BytesToAddress(bs)
}
func (cont *FactoryContract) getToken(cc types.ContractLoader, exchange common.Address) common.Address {
	bs := cc.ContractData(makeAddressKey(tagExchangeToToken, exchange))
	if bs == nil {
		return ZeroAddress
	}
	return common.BytesToAddress(bs)
}
func (cont *FactoryContract) allExchanges(cc types.ContractLoader) []common.Address {
	bs := cc.ContractData([]byte{tagAllExchanges})
	list := []common.Address{}
	for i := 0; i+common.AddressLength <= len(bs); i += common.AddressLength {
		list = append(list, common.BytesToAddress(bs[i:i+common.AddressLength]))
	}
	return list
}
func (cont *FactoryContract) exchangeCount(cc types.ContractLoader) uint32 {
	return uint32(len(cc.ContractData([]byte{tagAllExchanges})) / common.AddressLength)
}

//////////////////////////////////////////////////
// Factory : writer function
//////////////////////////////////////////////////
func (cont *FactoryContract) onlyOwner(cc *types.ContractContext) error {
	if cc.From() != cont.owner(cc) {
		return errors.New("Exchange: FORBIDDEN")
	}
	return nil
}
func (cont *FactoryContract) setOwner(cc *types.ContractContext, _owner common.Address) error {
	if err := cont.onlyOwner(cc); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagOwner}, _owner.Bytes())
	return nil
}
func (cont *FactoryContract) _setData(cc *types.ContractContext, exchange, token common.Address) {
	cc.SetContractData(makeAddressKey(tagTokenToExchange, token), exchange.Bytes())
	cc.SetContractData(makeAddressKey(tagExchangeToToken, exchange), token.Bytes())

	bs := cc.ContractData([]byte{tagAllExchanges})
	list := make([]byte, 0, len(bs)+common.AddressLength)
	list = append(list, bs...)
	list = append(list, exchange.Bytes()...)
	cc.SetContractData([]byte{tagAllExchanges}, list)
}
func (cont *FactoryContract) createExchange(cc *types.ContractContext, token common.Address) (common.Address, error) {
	if token == ZeroAddress {
		return ZeroAddress, errors.New("Exchange: ZERO_ADDRESS")
	}
	if mt := cc.MainToken(); mt != nil && *mt == token {
		return ZeroAddress, errors.New("Exchange: MAIN_TOKEN")
	}
	if !cc.IsContract(token) {
		return ZeroAddress, errors.New("Exchange: NOT_CONTRACT")
	}
	if cont.getExchange(cc, token) != ZeroAddress {
		return ZeroAddress, errors.New("Exchange: EXCHANGE_EXISTS")
	}

	classID := cont.exchangeClassID(cc)
	exchange := trade.ExchangeFor(cont.addr, token, classID)
	bs, _, err := bin.WriterToBytes(&trade.ExchangeConstruction{
		Name:    "Exchange V1",
		Symbol:  "EXV1",
		Factory: cont.addr,
		Token:   token,
		Fee:     cont.fee(cc),
	})
	if err != nil {
		return ZeroAddress, err
	}
	if _, err := cc.DeployContractWithAddress(cont.addr, classID, exchange, bs); err != nil {
		return ZeroAddress, err
	}

	cont._setData(cc, exchange, token)
	return exchange, nil
}
