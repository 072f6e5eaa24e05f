package trade

import (
	"math/big"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	"github.com/meverselabs/defizap/core/types"

	. "github.com/meverselabs/defizap/contract/util"
)

func (self *Exchange) Front() interface{} {
	return &ExchangeFront{
		cont: self,
	}
}

type ExchangeFront struct {
	cont *Exchange
}

//////////////////////////////////////////////////
// Token
//////////////////////////////////////////////////
func (f *ExchangeFront) Name(cc types.ContractLoader) string {
	return f.cont.name(cc)
}
func (f *ExchangeFront) Symbol(cc types.ContractLoader) string {
	return f.cont.symbol(cc)
}
func (f *ExchangeFront) Decimals(cc types.ContractLoader) *big.Int {
	return f.cont.decimals(cc)
}
func (f *ExchangeFront) TotalSupply(cc types.ContractLoader) *amount.Amount {
	return ToAmount(f.cont.totalSupply(cc))
}
func (f *ExchangeFront) BalanceOf(cc types.ContractLoader, from common.Address) *amount.Amount {
	return ToAmount(f.cont.balanceOf(cc, from))
}
func (f *ExchangeFront) Allowance(cc types.ContractLoader, owner, spender common.Address) *amount.Amount {
	return ToAmount(f.cont.allowance(cc, owner, spender))
}
func (f *ExchangeFront) Transfer(cc *types.ContractContext, To common.Address, Amount *amount.Amount) (bool, error) {
	err := f.cont.transfer(cc, To, Amount.Int)
	return err == nil, err
}
func (f *ExchangeFront) Approve(cc *types.ContractContext, To common.Address, Amount *amount.Amount) (bool, error) {
	err := f.cont.approve(cc, To, Amount.Int)
	return err == nil, err
}
func (f *ExchangeFront) TransferFrom(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) (bool, error) {
	err := f.cont.transferFrom(cc, From, To, Amount.Int)
	return err == nil, err
}

//////////////////////////////////////////////////
// Exchange
//////////////////////////////////////////////////
func (f *ExchangeFront) FactoryAddress(cc types.ContractLoader) common.Address {
	return f.cont.factory(cc)
}
func (f *ExchangeFront) TokenAddress(cc types.ContractLoader) common.Address {
	return f.cont.tokenAddress(cc)
}
func (f *ExchangeFront) Fee(cc types.ContractLoader) uint64 {
	return f.cont.fee(cc)
}
func (f *ExchangeFront) Reserves(cc *types.ContractContext) (*amount.Amount, *amount.Amount, error) {
	ethReserve, tokenReserve, err := f.cont.reserves(cc)
	if err != nil {
		return nil, nil, err
	}
	return ToAmount(ethReserve), ToAmount(tokenReserve), nil
}
func (f *ExchangeFront) AddLiquidity(cc *types.ContractContext, minLiquidity, maxTokens, ethAmount *amount.Amount) (*amount.Amount, error) {
	liquidity, err := f.cont.addLiquidity(cc, minLiquidity.Int, maxTokens.Int, ethAmount.Int)
	if err != nil {
		return nil, err
	}
	return ToAmount(liquidity), nil
}
func (f *ExchangeFront) RemoveLiquidity(cc *types.ContractContext, liquidity, minEth, minTokens *amount.Amount) (*amount.Amount, *amount.Amount, error) {
	ethAmount, tokenAmount, err := f.cont.removeLiquidity(cc, liquidity.Int, minEth.Int, minTokens.Int)
	if err != nil {
		return nil, nil, err
	}
	return ToAmount(ethAmount), ToAmount(tokenAmount), nil
}
func (f *ExchangeFront) EthToTokenSwapInput(cc *types.ContractContext, ethSold, minTokens *amount.Amount) (*amount.Amount, error) {
	bought, err := f.cont.ethToTokenInput(cc, ethSold.Int, minTokens.Int, cc.From(), cc.From())
	if err != nil {
		return nil, err
	}
	return ToAmount(bought), nil
}
func (f *ExchangeFront) EthToTokenTransferInput(cc *types.ContractContext, ethSold, minTokens *amount.Amount, recipient common.Address) (*amount.Amount, error) {
	bought, err := f.cont.ethToTokenInput(cc, ethSold.Int, minTokens.Int, cc.From(), recipient)
	if err != nil {
		return nil, err
	}
	return ToAmount(bought), nil
}
func (f *ExchangeFront) TokenToEthSwapInput(cc *types.ContractContext, tokensSold, minEth *amount.Amount) (*amount.Amount, error) {
	bought, err := f.cont.tokenToEthInput(cc, tokensSold.Int, minEth.Int, cc.From(), cc.From())
	if err != nil {
		return nil, err
	}
	return ToAmount(bought), nil
}
func (f *ExchangeFront) TokenToEthTransferInput(cc *types.ContractContext, tokensSold, minEth *amount.Amount, recipient common.Address) (*amount.Amount, error) {
	bought, err := f.cont.tokenToEthInput(cc, tokensSold.Int, minEth.Int, cc.From(), recipient)
	if err != nil {
		return nil, err
	}
	return ToAmount(bought), nil
}
func (f *ExchangeFront) GetEthToTokenInputPrice(cc *types.ContractContext, ethSold *amount.Amount) (*amount.Amount, error) {
	out, err := f.cont.getEthToTokenInputPrice(cc, ethSold.Int)
	if err != nil {
		return nil, err
	}
	return ToAmount(out), nil
}
func (f *ExchangeFront) GetEthToTokenOutputPrice(cc *types.ContractContext, tokensBought *amount.Amount) (*amount.Amount, error) {
	in, err := f.cont.getEthToTokenOutputPrice(cc, tokensBought.Int)
	if err != nil {
		return nil, err
	}
	return ToAmount(in), nil
}
func (f *ExchangeFront) GetTokenToEthInputPrice(cc *types.ContractContext, tokensSold *amount.Amount) (*amount.Amount, error) {
	out, err := f.cont.getTokenToEthInputPrice(cc, tokensSold.Int)
	if err != nil {
		return nil, err
	}
	return ToAmount(out), nil
}
func (f *ExchangeFront) GetTokenToEthOutputPrice(cc *types.ContractContext, ethBought *amount.Amount) (*amount.Amount, error) {
	in, err := f.cont.getTokenToEthOutputPrice(cc, ethBought.Int)
	if err != nil {
		return nil, err
	}
	return ToAmount(in), nil
}
