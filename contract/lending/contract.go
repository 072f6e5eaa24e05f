package lending

import (
	"bytes"
	"math/big"

	"github.com/pkg/errors"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	"github.com/meverselabs/defizap/core/types"

	. "github.com/meverselabs/defizap/contract/util"
)

// CTokenContract is a money market for one underlying token.
// Holders of cTokens can redeem them for underlying at the stored exchange rate.
type CTokenContract struct {
	addr   common.Address
	master common.Address
}

func (cont *CTokenContract) Address() common.Address {
	return cont.addr
}

func (cont *CTokenContract) Master() common.Address {
	return cont.master
}

func (cont *CTokenContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *CTokenContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &CTokenContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	if data.Underlying == ZeroAddress {
		return errors.New("CToken: INVALID_UNDERLYING")
	}
	rate := data.ExchangeRate
	if rate == nil || !rate.IsPlus() {
		rate = DefaultExchangeRate
	}
	owner := data.Owner
	if owner == ZeroAddress {
		owner = cc.From()
	}

	cc.SetContractData([]byte{tagTokenName}, []byte(data.Name))
	cc.SetContractData([]byte{tagTokenSymbol}, []byte(data.Symbol))
	cc.SetContractData([]byte{tagUnderlying}, data.Underlying[:])
	cc.SetContractData([]byte{tagOwner}, owner[:])
	cc.SetContractData([]byte{tagExchangeRate}, rate.Bytes())
	return nil
}

//////////////////////////////////////////////////
// Private Functions
//////////////////////////////////////////////////

func (cont *CTokenContract) addBalance(cc *types.ContractContext, addr common.Address, am *amount.Amount) {
	cc.SetAccountData(addr, []byte{tagTokenAmount}, cont.BalanceOf(cc, addr).Add(am).Bytes())
	cc.SetContractData([]byte{tagTokenTotalSupply}, cont.TotalSupply(cc).Add(am).Bytes())
}

func (cont *CTokenContract) subBalance(cc *types.ContractContext, addr common.Address, am *amount.Amount) error {
	bal := cont.BalanceOf(cc, addr)
	if bal.Less(am) {
		return errors.Errorf("CToken: EXCEED_BALANCE %v less then %v", bal.String(), am.String())
	}
	cc.SetAccountData(addr, []byte{tagTokenAmount}, bal.Sub(am).Bytes())
	cc.SetContractData([]byte{tagTokenTotalSupply}, cont.TotalSupply(cc).Sub(am).Bytes())
	return nil
}

func (cont *CTokenContract) transfer(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) error {
	if From == common.ZeroAddr {
		return errors.New("CToken: TRANSFER_FROM_ZEROADDRESS")
	}
	if To == common.ZeroAddr {
		return errors.New("CToken: TRANSFER_TO_ZEROADDRESS")
	}
	if Amount.IsMinus() {
		return errors.New("CToken: NEGATIVE_AMOUNT")
	}
	if Amount.IsZero() {
		return nil
	}
	bal := cont.BalanceOf(cc, From)
	if bal.Less(Amount) {
		return errors.Errorf("CToken: TRANSFER_EXCEED_BALANCE %v %v %v", From.String(), bal.String(), Amount.String())
	}
	cc.SetAccountData(From, []byte{tagTokenAmount}, bal.Sub(Amount).Bytes())
	cc.SetAccountData(To, []byte{tagTokenAmount}, cont.BalanceOf(cc, To).Add(Amount).Bytes())
	return nil
}

func (cont *CTokenContract) isOwner(cc *types.ContractContext) bool {
	return cc.From() == cont.Owner(cc)
}

// toUnderlying converts cTokens at the stored rate, rounding down
func (cont *CTokenContract) toUnderlying(cc types.ContractLoader, cTokens *big.Int) *big.Int {
	return MulDiv(cTokens, cont.ExchangeRateStored(cc).Int, Ether)
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *CTokenContract) Name(cc types.ContractLoader) string {
	return string(cc.ContractData([]byte{tagTokenName}))
}

func (cont *CTokenContract) Symbol(cc types.ContractLoader) string {
	return string(cc.ContractData([]byte{tagTokenSymbol}))
}

func (cont *CTokenContract) Decimals(cc types.ContractLoader) *big.Int {
	return big.NewInt(amount.FractionalCount)
}

func (cont *CTokenContract) TotalSupply(cc types.ContractLoader) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{tagTokenTotalSupply}))
}

func (cont *CTokenContract) BalanceOf(cc types.ContractLoader, from common.Address) *amount.Amount {
	return amount.NewAmountFromBytes(cc.AccountData(from, []byte{tagTokenAmount}))
}

func (cont *CTokenContract) Allowance(cc types.ContractLoader, owner common.Address, spender common.Address) *amount.Amount {
	return amount.NewAmountFromBytes(cc.AccountData(owner, makeAllowanceKey(spender)))
}

func (cont *CTokenContract) Owner(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagOwner}))
}

func (cont *CTokenContract) Underlying(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagUnderlying}))
}

func (cont *CTokenContract) ExchangeRateStored(cc types.ContractLoader) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{tagExchangeRate}))
}

func (cont *CTokenContract) BalanceOfUnderlying(cc types.ContractLoader, owner common.Address) *amount.Amount {
	return ToAmount(cont.toUnderlying(cc, cont.BalanceOf(cc, owner).Int))
}

// GetCash returns the underlying held by the market
func (cont *CTokenContract) GetCash(cc *types.ContractContext) (*amount.Amount, error) {
	cash, err := TokenBalanceOf(cc, cont.Underlying(cc), cont.addr)
	if err != nil {
		return nil, err
	}
	return ToAmount(cash), nil
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

// Mint supplies underlying from the caller and returns the cTokens minted to it
func (cont *CTokenContract) Mint(cc *types.ContractContext, am *amount.Amount) (*amount.Amount, error) {
	if !am.IsPlus() {
		return nil, errors.New("CToken: INVALID_AMOUNT")
	}
	minted := ToAmount(MulDiv(am.Int, Ether, cont.ExchangeRateStored(cc).Int))
	if !minted.IsPlus() {
		return nil, errors.New("CToken: MINT_TOO_SMALL")
	}
	if err := SafeTransferFrom(cc, cont.Underlying(cc), cc.From(), cont.addr, am.Int); err != nil {
		return nil, err
	}
	cont.addBalance(cc, cc.From(), minted)
	return minted, nil
}

func (cont *CTokenContract) redeem(cc *types.ContractContext, cTokens *amount.Amount, underlying *amount.Amount) error {
	cash, err := cont.GetCash(cc)
	if err != nil {
		return err
	}
	if cash.Less(underlying) {
		return errors.New("CToken: INSUFFICIENT_CASH")
	}
	if err := cont.subBalance(cc, cc.From(), cTokens); err != nil {
		return err
	}
	if !underlying.IsPlus() {
		return nil
	}
	return SafeTransfer(cc, cont.Underlying(cc), cc.From(), underlying.Int)
}

// Redeem burns cTokens of the caller and returns the underlying sent to it
func (cont *CTokenContract) Redeem(cc *types.ContractContext, cTokens *amount.Amount) (*amount.Amount, error) {
	if !cTokens.IsPlus() {
		return nil, errors.New("CToken: INVALID_AMOUNT")
	}
	underlying := ToAmount(cont.toUnderlying(cc, cTokens.Int))
	if err := cont.redeem(cc, cTokens, underlying); err != nil {
		return nil, err
	}
	return underlying, nil
}

// RedeemUnderlying sends am underlying to the caller and returns the cTokens burned for it
func (cont *CTokenContract) RedeemUnderlying(cc *types.ContractContext, am *amount.Amount) (*amount.Amount, error) {
	if !am.IsPlus() {
		return nil, errors.New("CToken: INVALID_AMOUNT")
	}
	cTokens := ToAmount(MulDivRoundUp(am.Int, Ether, cont.ExchangeRateStored(cc).Int))
	if err := cont.redeem(cc, cTokens, am); err != nil {
		return nil, err
	}
	return cTokens, nil
}

func (cont *CTokenContract) Transfer(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	return cont.transfer(cc, cc.From(), To, Amount)
}

func (cont *CTokenContract) Approve(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	if To == common.ZeroAddr {
		return errors.New("CToken: APPROVE_TO_ZEROADDRESS")
	}
	if Amount.IsMinus() {
		return errors.New("CToken: NEGATIVE_AMOUNT")
	}
	cc.SetAccountData(cc.From(), makeAllowanceKey(To), Amount.Bytes())
	return nil
}

func (cont *CTokenContract) TransferFrom(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) error {
	allowed := cont.Allowance(cc, From, cc.From())
	if Amount.Cmp(allowed.Int) > 0 {
		return errors.Errorf("CToken: TRANSFER_EXCEED_ALLOWANCE %v %v %v", cc.From().String(), allowed.String(), Amount.String())
	}
	if allowed.Cmp(MaxUint256.Int) != 0 {
		cc.SetAccountData(From, makeAllowanceKey(cc.From()), allowed.Sub(Amount).Bytes())
	}
	return cont.transfer(cc, From, To, Amount)
}

// SetExchangeRate moves the stored rate; interest accrual is not modeled
func (cont *CTokenContract) SetExchangeRate(cc *types.ContractContext, rate *amount.Amount) error {
	if !cont.isOwner(cc) {
		return errors.New("CToken: NOT_OWNER")
	}
	if !rate.IsPlus() {
		return errors.New("CToken: INVALID_EXCHANGE_RATE")
	}
	cc.SetContractData([]byte{tagExchangeRate}, rate.Bytes())
	return nil
}

func (cont *CTokenContract) TransferOwnership(cc *types.ContractContext, owner common.Address) error {
	if !cont.isOwner(cc) {
		return errors.New("CToken: NOT_OWNER")
	}
	if owner == ZeroAddress {
		return errors.New("CToken: OWNER_ZEROADDRESS")
	}
	cc.SetContractData([]byte{tagOwner}, owner[:])
	return nil
}
