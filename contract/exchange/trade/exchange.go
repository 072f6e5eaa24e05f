package trade

import (
	"bytes"
	"math/big"

	"github.com/pkg/errors"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/bin"
	"github.com/meverselabs/defizap/core/types"

	. "github.com/meverselabs/defizap/contract/util"
)

// Exchange pairs the main token of the chain with one token.
// Reserves are the balances the exchange holds on both token contracts.
type Exchange struct {
	LPToken
	addr   common.Address
	master common.Address
}

func (self *Exchange) Address() common.Address {
	return self.addr
}
func (self *Exchange) Master() common.Address {
	return self.master
}
func (self *Exchange) Init(addr common.Address, master common.Address) {
	self.addr = addr
	self.master = master
}
func (self *Exchange) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &ExchangeConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	if data.Token == ZeroAddress {
		return errors.New("Exchange: INVALID_TOKEN")
	}
	if data.Fee >= FEE_DENOMINATOR {
		return errors.New("Exchange: INVALID_FEE")
	}

	self._setName(cc, data.Name)
	self._setSymbol(cc, data.Symbol)
	cc.SetContractData([]byte{tagFactory}, data.Factory[:])
	cc.SetContractData([]byte{tagToken}, data.Token[:])
	cc.SetContractData([]byte{tagFee}, bin.Uint64Bytes(data.Fee))
	return nil
}

//////////////////////////////////////////////////
// Exchange : getter function
//////////////////////////////////////////////////
func (self *Exchange) factory(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagFactory}))
}
func (self *Exchange) tokenAddress(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagToken}))
}
func (self *Exchange) fee(cc types.ContractLoader) uint64 {
	return bin.Uint64(cc.ContractData([]byte{tagFee}))
}
func (self *Exchange) coin(cc *types.ContractContext) (common.Address, error) {
	mt := cc.MainToken()
	if mt == nil {
		return ZeroAddress, errors.WithStack(types.ErrNotExistMainToken)
	}
	return *mt, nil
}

// reserves returns the coin and token balances held by the exchange
func (self *Exchange) reserves(cc *types.ContractContext) (*big.Int, *big.Int, error) {
	coin, err := self.coin(cc)
	if err != nil {
		return nil, nil, err
	}
	ethReserve, err := TokenBalanceOf(cc, coin, self.addr)
	if err != nil {
		return nil, nil, err
	}
	tokenReserve, err := TokenBalanceOf(cc, self.tokenAddress(cc), self.addr)
	if err != nil {
		return nil, nil, err
	}
	return ethReserve, tokenReserve, nil
}

//////////////////////////////////////////////////
// Exchange : liquidity
//////////////////////////////////////////////////
func (self *Exchange) addLiquidity(cc *types.ContractContext, minLiquidity, maxTokens, ethAmount *big.Int) (*big.Int, error) {
	if !IsPlus(ethAmount) || !IsPlus(maxTokens) {
		return nil, errors.New("Exchange: INSUFFICIENT_INPUT_AMOUNT")
	}
	coin, err := self.coin(cc)
	if err != nil {
		return nil, err
	}
	token := self.tokenAddress(cc)

	var tokenAmount, liquidityMinted *big.Int
	totalLiquidity := self.totalSupply(cc)
	if totalLiquidity.Cmp(Zero) > 0 {
		if !IsPlus(minLiquidity) {
			return nil, errors.New("Exchange: INVALID_MIN_LIQUIDITY")
		}
		ethReserve, tokenReserve, err := self.reserves(cc)
		if err != nil {
			return nil, err
		}
		if !IsPlus(ethReserve) {
			return nil, errors.New("Exchange: INSUFFICIENT_LIQUIDITY")
		}
		tokenAmount = AddC(MulDiv(ethAmount, tokenReserve, ethReserve), 1)
		liquidityMinted = MulDiv(ethAmount, totalLiquidity, ethReserve)
		if tokenAmount.Cmp(maxTokens) > 0 {
			return nil, errors.New("Exchange: EXCESSIVE_INPUT_AMOUNT")
		}
		if liquidityMinted.Cmp(minLiquidity) < 0 {
			return nil, errors.New("Exchange: INSUFFICIENT_LIQUIDITY_MINTED")
		}
	} else {
		if self.factory(cc) == ZeroAddress || token == ZeroAddress {
			return nil, errors.New("Exchange: NOT_INITIALIZED")
		}
		if ethAmount.Cmp(big.NewInt(MIN_INITIAL_COIN)) < 0 {
			return nil, errors.New("Exchange: INSUFFICIENT_INITIAL_AMOUNT")
		}
		tokenAmount = Clone(maxTokens)
		liquidityMinted = Clone(ethAmount)
	}

	if err := SafeTransferFrom(cc, coin, cc.From(), self.addr, ethAmount); err != nil {
		return nil, err
	}
	if err := SafeTransferFrom(cc, token, cc.From(), self.addr, tokenAmount); err != nil {
		return nil, err
	}
	if err := self._mint(cc, cc.From(), liquidityMinted); err != nil {
		return nil, err
	}
	return liquidityMinted, nil
}

func (self *Exchange) removeLiquidity(cc *types.ContractContext, liquidity, minEth, minTokens *big.Int) (*big.Int, *big.Int, error) {
	if !IsPlus(liquidity) {
		return nil, nil, errors.New("Exchange: INSUFFICIENT_LIQUIDITY_BURNED")
	}
	totalLiquidity := self.totalSupply(cc)
	if !IsPlus(totalLiquidity) {
		return nil, nil, errors.New("Exchange: INSUFFICIENT_LIQUIDITY")
	}
	coin, err := self.coin(cc)
	if err != nil {
		return nil, nil, err
	}
	ethReserve, tokenReserve, err := self.reserves(cc)
	if err != nil {
		return nil, nil, err
	}
	ethAmount := MulDiv(liquidity, ethReserve, totalLiquidity)
	tokenAmount := MulDiv(liquidity, tokenReserve, totalLiquidity)
	if ethAmount.Cmp(minEth) < 0 || tokenAmount.Cmp(minTokens) < 0 {
		return nil, nil, errors.New("Exchange: INSUFFICIENT_OUTPUT_AMOUNT")
	}

	if err := self._burn(cc, cc.From(), liquidity); err != nil {
		return nil, nil, err
	}
	if IsPlus(ethAmount) {
		if err := SafeTransfer(cc, coin, cc.From(), ethAmount); err != nil {
			return nil, nil, err
		}
	}
	if IsPlus(tokenAmount) {
		if err := SafeTransfer(cc, self.tokenAddress(cc), cc.From(), tokenAmount); err != nil {
			return nil, nil, err
		}
	}
	return ethAmount, tokenAmount, nil
}

//////////////////////////////////////////////////
// Exchange : trade
//////////////////////////////////////////////////
func (self *Exchange) ethToTokenInput(cc *types.ContractContext, ethSold, minTokens *big.Int, buyer, recipient common.Address) (*big.Int, error) {
	if recipient == ZeroAddress || recipient == self.addr {
		return nil, errors.New("Exchange: INVALID_RECIPIENT")
	}
	coin, err := self.coin(cc)
	if err != nil {
		return nil, err
	}
	ethReserve, tokenReserve, err := self.reserves(cc)
	if err != nil {
		return nil, err
	}
	tokensBought, err := GetInputPrice(self.fee(cc), ethSold, ethReserve, tokenReserve)
	if err != nil {
		return nil, err
	}
	if !IsPlus(tokensBought) || tokensBought.Cmp(minTokens) < 0 {
		return nil, errors.New("Exchange: INSUFFICIENT_OUTPUT_AMOUNT")
	}

	if err := SafeTransferFrom(cc, coin, buyer, self.addr, ethSold); err != nil {
		return nil, err
	}
	if err := SafeTransfer(cc, self.tokenAddress(cc), recipient, tokensBought); err != nil {
		return nil, err
	}
	return tokensBought, nil
}

func (self *Exchange) tokenToEthInput(cc *types.ContractContext, tokensSold, minEth *big.Int, buyer, recipient common.Address) (*big.Int, error) {
	if recipient == ZeroAddress || recipient == self.addr {
		return nil, errors.New("Exchange: INVALID_RECIPIENT")
	}
	coin, err := self.coin(cc)
	if err != nil {
		return nil, err
	}
	ethReserve, tokenReserve, err := self.reserves(cc)
	if err != nil {
		return nil, err
	}
	ethBought, err := GetInputPrice(self.fee(cc), tokensSold, tokenReserve, ethReserve)
	if err != nil {
		return nil, err
	}
	if !IsPlus(ethBought) || ethBought.Cmp(minEth) < 0 {
		return nil, errors.New("Exchange: INSUFFICIENT_OUTPUT_AMOUNT")
	}

	if err := SafeTransferFrom(cc, self.tokenAddress(cc), buyer, self.addr, tokensSold); err != nil {
		return nil, err
	}
	if err := SafeTransfer(cc, coin, recipient, ethBought); err != nil {
		return nil, err
	}
	return ethBought, nil
}

//////////////////////////////////////////////////
// Exchange : price
//////////////////////////////////////////////////
func (self *Exchange) getEthToTokenInputPrice(cc *types.ContractContext, ethSold *big.Int) (*big.Int, error) {
	ethReserve, tokenReserve, err := self.reserves(cc)
	if err != nil {
		return nil, err
	}
	return GetInputPrice(self.fee(cc), ethSold, ethReserve, tokenReserve)
}
func (self *Exchange) getEthToTokenOutputPrice(cc *types.ContractContext, tokensBought *big.Int) (*big.Int, error) {
	ethReserve, tokenReserve, err := self.reserves(cc)
	if err != nil {
		return nil, err
	}
	return GetOutputPrice(self.fee(cc), tokensBought, ethReserve, tokenReserve)
}
func (self *Exchange) getTokenToEthInputPrice(cc *types.ContractContext, tokensSold *big.Int) (*big.Int, error) {
	ethReserve, tokenReserve, err := self.reserves(cc)
	if err != nil {
		return nil, err
	}
	return GetInputPrice(self.fee(cc), tokensSold, tokenReserve, ethReserve)
}
func (self *Exchange) getTokenToEthOutputPrice(cc *types.ContractContext, ethBought *big.Int) (*big.Int, error) {
	ethReserve, tokenReserve, err := self.reserves(cc)
	if err != nil {
		return nil, err
	}
	return GetOutputPrice(self.fee(cc), ethBought, tokenReserve, ethReserve)
}
