package lending

import (
	"math/big"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	"github.com/meverselabs/defizap/core/types"
)

func (cont *CTokenContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *CTokenContract
}

func (f *front) Mint(cc *types.ContractContext, am *amount.Amount) (*amount.Amount, error) {
	return f.cont.Mint(cc, am)
}

func (f *front) Redeem(cc *types.ContractContext, cTokens *amount.Amount) (*amount.Amount, error) {
	return f.cont.Redeem(cc, cTokens)
}

func (f *front) RedeemUnderlying(cc *types.ContractContext, am *amount.Amount) (*amount.Amount, error) {
	return f.cont.RedeemUnderlying(cc, am)
}

func (f *front) Transfer(cc *types.ContractContext, To common.Address, Amount *amount.Amount) (bool, error) {
	err := f.cont.Transfer(cc, To, Amount)
	return err == nil, err
}

func (f *front) Approve(cc *types.ContractContext, To common.Address, Amount *amount.Amount) (bool, error) {
	err := f.cont.Approve(cc, To, Amount)
	return err == nil, err
}

func (f *front) TransferFrom(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) (bool, error) {
	err := f.cont.TransferFrom(cc, From, To, Amount)
	return err == nil, err
}

func (f *front) SetExchangeRate(cc *types.ContractContext, rate *amount.Amount) error {
	return f.cont.SetExchangeRate(cc, rate)
}

func (f *front) TransferOwnership(cc *types.ContractContext, owner common.Address) error {
	return f.cont.TransferOwnership(cc, owner)
}

func (f *front) Name(cc types.ContractLoader) string {
	return f.cont.Name(cc)
}

func (f *front) Symbol(cc types.ContractLoader) string {
	return f.cont.Symbol(cc)
}

func (f *front) Decimals(cc types.ContractLoader) *big.Int {
	return f.cont.Decimals(cc)
}

func (f *front) TotalSupply(cc types.ContractLoader) *amount.Amount {
	return f.cont.TotalSupply(cc)
}

func (f *front) BalanceOf(cc types.ContractLoader, from common.Address) *amount.Amount {
	return f.cont.BalanceOf(cc, from)
}

func (f *front) Allowance(cc types.ContractLoader, owner common.Address, spender common.Address) *amount.Amount {
	return f.cont.Allowance(cc, owner, spender)
}

func (f *front) Owner(cc types.ContractLoader) common.Address {
	return f.cont.Owner(cc)
}

func (f *front) Underlying(cc types.ContractLoader) common.Address {
	return f.cont.Underlying(cc)
}

func (f *front) ExchangeRateStored(cc types.ContractLoader) *amount.Amount {
	return f.cont.ExchangeRateStored(cc)
}

func (f *front) ExchangeRateCurrent(cc types.ContractLoader) *amount.Amount {
	return f.cont.ExchangeRateStored(cc)
}

func (f *front) BalanceOfUnderlying(cc types.ContractLoader, owner common.Address) *amount.Amount {
	return f.cont.BalanceOfUnderlying(cc, owner)
}

func (f *front) GetCash(cc *types.ContractContext) (*amount.Amount, error) {
	return f.cont.GetCash(cc)
}
