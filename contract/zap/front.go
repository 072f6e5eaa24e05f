package zap

import (
	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	"github.com/meverselabs/defizap/core/types"

	. "github.com/meverselabs/defizap/contract/util"
)

func (cont *ZapContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *ZapContract
}

//////////////////////////////////////////////////
// Parameters
//////////////////////////////////////////////////

func (f *front) NEWDAI_TOKEN_ADDRESS(cc types.ContractLoader) common.Address {
	return f.cont.newDai(cc)
}

func (f *front) COMPOUND_TOKEN_ADDRESS(cc types.ContractLoader) common.Address {
	return f.cont.cToken(cc)
}

func (f *front) DAI_TOKEN_ADDRESS(cc types.ContractLoader) common.Address {
	return f.cont.dai(cc)
}

func (f *front) ETH_TOKEN_ADDRESS(cc types.ContractLoader) common.Address {
	return EthTokenAddress
}

func (f *front) Factory(cc types.ContractLoader) common.Address {
	return f.cont.factory(cc)
}

func (f *front) Owner(cc types.ContractLoader) common.Address {
	return f.cont.owner(cc)
}

func (f *front) IsOwner(cc *types.ContractContext) bool {
	return f.cont.IsOwner(cc)
}

func (f *front) Slippage(cc types.ContractLoader) uint64 {
	return f.cont.slippage(cc)
}

func (f *front) IsStopped(cc types.ContractLoader) bool {
	return f.cont.isStopped(cc)
}

func (f *front) IsInitialized(cc types.ContractLoader) bool {
	return f.cont.isInitialized(cc)
}

//////////////////////////////////////////////////
// Quotes
//////////////////////////////////////////////////

func (f *front) GetReturn(cc *types.ContractContext, from common.Address, to common.Address, am *amount.Amount) (*amount.Amount, error) {
	out, err := f.cont.GetReturn(cc, from, to, am.Int)
	if err != nil {
		return nil, err
	}
	return ToAmount(out), nil
}

func (f *front) GetMaxTokens(cc *types.ContractContext, exchange common.Address, token common.Address, value *amount.Amount) (*amount.Amount, error) {
	out, err := f.cont.GetMaxTokens(cc, exchange, token, value.Int)
	if err != nil {
		return nil, err
	}
	return ToAmount(out), nil
}

func (f *front) GetMinTokens(cc *types.ContractContext, am *amount.Amount) (*amount.Amount, error) {
	out, err := f.cont.GetMinTokens(cc, am.Int)
	if err != nil {
		return nil, err
	}
	return ToAmount(out), nil
}

//////////////////////////////////////////////////
// Invest and redeem
//////////////////////////////////////////////////

func (f *front) Initialize(cc *types.ContractContext) error {
	return f.cont.Initialize(cc)
}

func (f *front) Send(cc *types.ContractContext, am *amount.Amount) (*amount.Amount, error) {
	return f.LetsInvest(cc, am)
}

func (f *front) LetsInvest(cc *types.ContractContext, am *amount.Amount) (*amount.Amount, error) {
	minted, err := f.cont.LetsInvest(cc, am.Int)
	if err != nil {
		return nil, err
	}
	return ToAmount(minted), nil
}

func (f *front) Redeem(cc *types.ContractContext, account common.Address, am *amount.Amount) (*amount.Amount, error) {
	released, err := f.cont.Redeem(cc, account, am.Int)
	if err != nil {
		return nil, err
	}
	return ToAmount(released), nil
}

//////////////////////////////////////////////////
// Owner
//////////////////////////////////////////////////

func (f *front) TransferOwnership(cc *types.ContractContext, newOwner common.Address) error {
	return f.cont.TransferOwnership(cc, newOwner)
}

func (f *front) ToggleContractActive(cc *types.ContractContext) error {
	return f.cont.ToggleContractActive(cc)
}

func (f *front) SetSlippage(cc *types.ContractContext, slippage uint64) error {
	return f.cont.SetSlippage(cc, slippage)
}

func (f *front) WithdrawTokens(cc *types.ContractContext, token common.Address) (*amount.Amount, error) {
	bal, err := f.cont.WithdrawTokens(cc, token)
	if err != nil {
		return nil, err
	}
	return ToAmount(bal), nil
}
