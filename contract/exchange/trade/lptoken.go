package trade

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	"github.com/meverselabs/defizap/core/types"

	. "github.com/meverselabs/defizap/contract/util"
)

// LPToken is the liquidity share ledger of an exchange
type LPToken struct {
}

//////////////////////////////////////////////////
// LPToken : private reader function
//////////////////////////////////////////////////
func (self *LPToken) name(cc types.ContractLoader) string {
	return string(cc.ContractData([]byte{tagTokenName}))
}
func (self *LPToken) symbol(cc types.ContractLoader) string {
	return string(cc.ContractData([]byte{tagTokenSymbol}))
}
func (self *LPToken) decimals(cc types.ContractLoader) *big.Int {
	return big.NewInt(amount.FractionalCount)
}
func (self *LPToken) totalSupply(cc types.ContractLoader) *big.Int {
	bs := cc.ContractData([]byte{tagTokenTotalSupply})
	return big.NewInt(0).SetBytes(bs)
}
func (self *LPToken) balanceOf(cc types.ContractLoader, _owner common.Address) *big.Int {
	bs := cc.AccountData(_owner, []byte{tagTokenAmount})
	return big.NewInt(0).SetBytes(bs)
}
func (self *LPToken) allowance(cc types.ContractLoader, owner, spender common.Address) *big.Int {
	bs := cc.AccountData(owner, makeTokenKey(spender, tagTokenApprove))
	return big.NewInt(0).SetBytes(bs)
}

//////////////////////////////////////////////////
// LPToken : private writer function
//////////////////////////////////////////////////
func (self *LPToken) _setName(cc *types.ContractContext, name string) {
	cc.SetContractData([]byte{tagTokenName}, []byte(name))
}
func (self *LPToken) _setSymbol(cc *types.ContractContext, symbol string) {
	cc.SetContractData([]byte{tagTokenSymbol}, []byte(symbol))
}
func (self *LPToken) _setBalance(cc *types.ContractContext, owner common.Address, balance *big.Int) {
	cc.SetAccountData(owner, []byte{tagTokenAmount}, balance.Bytes())
}
func (self *LPToken) _mint(cc *types.ContractContext, to common.Address, am *big.Int) error {
	if to == ZeroAddress {
		return errors.New("LPToken: MINT_TO_ZEROADDRESS")
	}
	if am.Cmp(Zero) < 0 {
		return errors.New("LPToken: MINT_NEGATIVE_AMOUNT")
	}
	self._setBalance(cc, to, Add(self.balanceOf(cc, to), am))
	cc.SetContractData([]byte{tagTokenTotalSupply}, Add(self.totalSupply(cc), am).Bytes())
	return nil
}
func (self *LPToken) _burn(cc *types.ContractContext, from common.Address, am *big.Int) error {
	if am.Cmp(Zero) < 0 {
		return errors.New("LPToken: BURN_NEGATIVE_AMOUNT")
	}
	balance := self.balanceOf(cc, from)
	if balance.Cmp(am) < 0 {
		return errors.New("LPToken: BURN_EXCEED_BALANCE")
	}
	self._setBalance(cc, from, Sub(balance, am))
	cc.SetContractData([]byte{tagTokenTotalSupply}, Sub(self.totalSupply(cc), am).Bytes())
	return nil
}
func (self *LPToken) _approve(cc *types.ContractContext, owner, spender common.Address, am *big.Int) error {
	if owner == ZeroAddress {
		return errors.New("LPToken: APPROVE_FROM_ZEROADDRESS")
	}
	if spender == ZeroAddress {
		return errors.New("LPToken: APPROVE_TO_ZEROADDRESS")
	}
	if am.Cmp(Zero) < 0 {
		return errors.New("LPToken: APPROVE_NEGATIVE_AMOUNT")
	}
	cc.SetAccountData(owner, makeTokenKey(spender, tagTokenApprove), am.Bytes())
	return nil
}
func (self *LPToken) _transfer(cc *types.ContractContext, from, to common.Address, am *big.Int) error {
	if from == ZeroAddress {
		return errors.New("LPToken: TRANSFER_FROM_ZEROADDRESS")
	}
	if to == ZeroAddress {
		return errors.New("LPToken: TRANSFER_TO_ZEROADDRESS")
	}
	if am.Cmp(Zero) < 0 {
		return errors.New("LPToken: TRANSFER_NEGATIVE_AMOUNT")
	}
	fromBalance := self.balanceOf(cc, from)
	if fromBalance.Cmp(am) < 0 {
		return errors.New("LPToken: TRANSFER_EXCEED_BALANCE")
	}
	self._setBalance(cc, from, Sub(fromBalance, am))
	self._setBalance(cc, to, Add(self.balanceOf(cc, to), am))
	return nil
}

//////////////////////////////////////////////////
// LPToken : public writer function
//////////////////////////////////////////////////
func (self *LPToken) approve(cc *types.ContractContext, spender common.Address, am *big.Int) error {
	return self._approve(cc, cc.From(), spender, am)
}
func (self *LPToken) transfer(cc *types.ContractContext, to common.Address, am *big.Int) error {
	return self._transfer(cc, cc.From(), to, am)
}

// transferFrom moves am from `from` to `to` out of the caller's allowance
func (self *LPToken) transferFrom(cc *types.ContractContext, from, to common.Address, am *big.Int) error {
	spender := cc.From()
	currentAllowance := self.allowance(cc, from, spender)
	if am.Cmp(currentAllowance) > 0 {
		return errors.New("LPToken: TRANSFER_EXCEED_ALLOWANCE")
	}
	if currentAllowance.Cmp(MaxUint256.Int) != 0 {
		if err := self._approve(cc, from, spender, Sub(currentAllowance, am)); err != nil {
			return err
		}
	}
	return self._transfer(cc, from, to, am)
}
