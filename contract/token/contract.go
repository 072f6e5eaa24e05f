package token

import (
	"bytes"
	"math/big"

	"github.com/pkg/errors"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	"github.com/meverselabs/defizap/core/types"
)

type TokenContract struct {
	addr   common.Address
	master common.Address
}

func (cont *TokenContract) Address() common.Address {
	return cont.addr
}

func (cont *TokenContract) Master() common.Address {
	return cont.master
}

func (cont *TokenContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *TokenContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &TokenContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagTokenName}, []byte(data.Name))
	cc.SetContractData([]byte{tagTokenSymbol}, []byte(data.Symbol))
	for _, k := range sortedAddresses(data.InitialSupplyMap) {
		if err := cont.addBalance(cc, k, data.InitialSupplyMap[k]); err != nil {
			return err
		}
	}
	return nil
}

//////////////////////////////////////////////////
// Private Functions
//////////////////////////////////////////////////

func (cont *TokenContract) addBalance(cc *types.ContractContext, addr common.Address, am *amount.Amount) error {
	if !am.IsPlus() {
		return errors.Errorf("Token: INVALID_AMOUNT %v", am.String())
	}
	if cont.isPause(cc) {
		return errors.New("Token: PAUSED")
	}
	bal := cont.BalanceOf(cc, addr).Add(am)
	cc.SetAccountData(addr, []byte{tagTokenAmount}, bal.Bytes())

	total := amount.NewAmountFromBytes(cc.ContractData([]byte{tagTokenTotalSupply})).Add(am)
	cc.SetContractData([]byte{tagTokenTotalSupply}, total.Bytes())
	return nil
}

func (cont *TokenContract) subBalance(cc *types.ContractContext, addr common.Address, am *amount.Amount) error {
	if !am.IsPlus() {
		return errors.Errorf("Token: INVALID_AMOUNT %v", am.String())
	}
	if cont.isPause(cc) {
		return errors.New("Token: PAUSED")
	}
	bal := cont.BalanceOf(cc, addr)
	if bal.Less(am) {
		return errors.Errorf("Token: EXCEED_BALANCE %v less then %v", bal.String(), am.String())
	}
	bal = bal.Sub(am)
	if bal.IsZero() {
		cc.SetAccountData(addr, []byte{tagTokenAmount}, nil)
	} else {
		cc.SetAccountData(addr, []byte{tagTokenAmount}, bal.Bytes())
	}

	total := amount.NewAmountFromBytes(cc.ContractData([]byte{tagTokenTotalSupply})).Sub(am)
	cc.SetContractData([]byte{tagTokenTotalSupply}, total.Bytes())
	return nil
}

func (cont *TokenContract) isMaster(cc *types.ContractContext) bool {
	return cc.From() == cont.Master()
}

func (cont *TokenContract) isPause(cc types.ContractLoader) bool {
	bs := cc.ContractData([]byte{tagPause})
	return len(bs) == 1 && bs[0] == 1
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

func (cont *TokenContract) Transfer(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	if cc.From() == common.ZeroAddr {
		return errors.New("Token: TRANSFER_FROM_ZEROADDRESS")
	}
	if To == common.ZeroAddr {
		return errors.New("Token: TRANSFER_TO_ZEROADDRESS")
	}
	if Amount.IsMinus() {
		return errors.New("Token: NEGATIVE_AMOUNT")
	}

	fromBalance := cont.BalanceOf(cc, cc.From())
	if fromBalance.Cmp(Amount.Int) < 0 {
		return errors.Errorf("Token: TRANSFER_EXCEED_BALANCE %v %v %v %v", cc.From().String(), To.String(), fromBalance.String(), Amount.String())
	}
	if Amount.IsZero() {
		return nil
	}
	if err := cont.subBalance(cc, cc.From(), Amount); err != nil {
		return err
	}
	return cont.addBalance(cc, To, Amount)
}

func (cont *TokenContract) Burn(cc *types.ContractContext, am *amount.Amount) error {
	if am.IsMinus() {
		return errors.New("Token: NEGATIVE_AMOUNT")
	}
	return cont.subBalance(cc, cc.From(), am)
}

func (cont *TokenContract) Mint(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	if !cont.isMaster(cc) && !cont.IsMinter(cc, cc.From()) {
		return errors.New("Token: NOT_MINTER")
	}
	if To == common.ZeroAddr {
		return errors.New("Token: MINT_TO_ZEROADDRESS")
	}
	if Amount.IsPlus() {
		return cont.addBalance(cc, To, Amount)
	}
	return nil
}

func (cont *TokenContract) MintBatch(cc *types.ContractContext, Tos []common.Address, Amounts []*amount.Amount) error {
	if !cont.isMaster(cc) && !cont.IsMinter(cc, cc.From()) {
		return errors.New("Token: NOT_MINTER")
	}
	if len(Tos) != len(Amounts) {
		return errors.New("Token: LENGTH_MISMATCH")
	}
	for i, To := range Tos {
		if err := cont.addBalance(cc, To, Amounts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (cont *TokenContract) SetMinter(cc *types.ContractContext, To common.Address, Is bool) error {
	if !cont.isMaster(cc) {
		return errors.New("Token: NOT_MASTER")
	}
	isMinter := cont.IsMinter(cc, To)
	if Is {
		if isMinter {
			return errors.New("Token: ALREADY_MINTER")
		}
		cc.SetAccountData(To, []byte{tagTokenMinter}, []byte{1})
	} else {
		if !isMinter {
			return errors.New("Token: NOT_MINTER")
		}
		cc.SetAccountData(To, []byte{tagTokenMinter}, nil)
	}
	return nil
}

func (cont *TokenContract) Approve(cc *types.ContractContext, spender common.Address, Amount *amount.Amount) error {
	if cc.From() == common.ZeroAddr {
		return errors.New("Token: APPROVE_FROM_ZEROADDRESS")
	}
	if spender == common.ZeroAddr {
		return errors.New("Token: APPROVE_TO_ZEROADDRESS")
	}
	if Amount.IsMinus() {
		return errors.New("Token: APPROVE_NEGATIVE_AMOUNT")
	}
	cont._approve(cc, cc.From(), spender, Amount)
	return nil
}

func (cont *TokenContract) _approve(cc *types.ContractContext, owner common.Address, spender common.Address, Amount *amount.Amount) {
	cc.SetAccountData(owner, MakeAllowanceTokenKey(spender), Amount.Bytes())
}

func (cont *TokenContract) TransferFrom(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) error {
	if To == common.ZeroAddr {
		return errors.New("Token: TRANSFER_TO_ZEROADDRESS")
	}
	if Amount.IsMinus() {
		return errors.New("Token: NEGATIVE_AMOUNT")
	}
	if Amount.IsZero() {
		return nil
	}
	balance := cont.BalanceOf(cc, From)
	if Amount.Cmp(balance.Int) > 0 {
		return errors.Errorf("Token: TRANSFER_EXCEED_BALANCE %v %v %v", From.String(), balance.String(), Amount.String())
	}

	allowedValue := cont.Allowance(cc, From, cc.From())
	if Amount.Cmp(allowedValue.Int) > 0 {
		return errors.Errorf("Token: TRANSFER_EXCEED_ALLOWANCE %v %v %v", cc.From().String(), allowedValue.String(), Amount.String())
	}
	cont._approve(cc, From, cc.From(), allowedValue.Sub(Amount))

	if err := cont.subBalance(cc, From, Amount); err != nil {
		return err
	}
	return cont.addBalance(cc, To, Amount)
}

func (cont *TokenContract) SetName(cc *types.ContractContext, name string) error {
	if !cont.isMaster(cc) {
		return errors.New("Token: NOT_MASTER")
	}
	cc.SetContractData([]byte{tagTokenName}, []byte(name))
	return nil
}

func (cont *TokenContract) SetSymbol(cc *types.ContractContext, symbol string) error {
	if !cont.isMaster(cc) {
		return errors.New("Token: NOT_MASTER")
	}
	cc.SetContractData([]byte{tagTokenSymbol}, []byte(symbol))
	return nil
}

func (cont *TokenContract) Pause(cc *types.ContractContext) error {
	if !cont.isMaster(cc) {
		return errors.New("Token: NOT_MASTER")
	}
	cc.SetContractData([]byte{tagPause}, []byte{1})
	return nil
}

func (cont *TokenContract) Unpause(cc *types.ContractContext) error {
	if !cont.isMaster(cc) {
		return errors.New("Token: NOT_MASTER")
	}
	cc.SetContractData([]byte{tagPause}, nil)
	return nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *TokenContract) Name(cc types.ContractLoader) string {
	return string(cc.ContractData([]byte{tagTokenName}))
}

func (cont *TokenContract) Symbol(cc types.ContractLoader) string {
	return string(cc.ContractData([]byte{tagTokenSymbol}))
}

func (cont *TokenContract) TotalSupply(cc types.ContractLoader) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{tagTokenTotalSupply}))
}

func (cont *TokenContract) Decimals(cc types.ContractLoader) *big.Int {
	return big.NewInt(amount.FractionalCount)
}

func (cont *TokenContract) BalanceOf(cc types.ContractLoader, from common.Address) *amount.Amount {
	return amount.NewAmountFromBytes(cc.AccountData(from, []byte{tagTokenAmount}))
}

func (cont *TokenContract) IsMinter(cc types.ContractLoader, addr common.Address) bool {
	bs := cc.AccountData(addr, []byte{tagTokenMinter})
	return len(bs) == 1 && bs[0] == 1
}

func (cont *TokenContract) IsPaused(cc types.ContractLoader) bool {
	return cont.isPause(cc)
}

func (cont *TokenContract) Allowance(cc types.ContractLoader, _owner common.Address, _spender common.Address) *amount.Amount {
	return amount.NewAmountFromBytes(cc.AccountData(_owner, MakeAllowanceTokenKey(_spender)))
}
