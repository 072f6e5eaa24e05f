package zap

import (
	"bytes"
	"math/big"

	"github.com/pkg/errors"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/bin"
	"github.com/meverselabs/defizap/core/types"

	. "github.com/meverselabs/defizap/contract/util"
)

// ZapContract turns the main token into cDAI in one call:
// it swaps on the DAI exchange and supplies the DAI to the money market.
type ZapContract struct {
	addr   common.Address
	master common.Address
}

func (cont *ZapContract) Address() common.Address {
	return cont.addr
}

func (cont *ZapContract) Master() common.Address {
	return cont.master
}

func (cont *ZapContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *ZapContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &ZapContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	if data.Slippage > SLIPPAGE_DENOMINATOR {
		return errors.New("Zap: INVALID_SLIPPAGE")
	}
	newDai := orDefault(data.NewDai, NewDaiTokenAddress)
	dai := orDefault(data.Dai, DaiTokenAddress)
	cToken := orDefault(data.CToken, CompoundTokenAddress)

	cc.SetContractData([]byte{tagFactory}, data.Factory[:])
	cc.SetContractData([]byte{tagNewDai}, newDai[:])
	cc.SetContractData([]byte{tagDai}, dai[:])
	cc.SetContractData([]byte{tagCToken}, cToken[:])
	cc.SetContractData([]byte{tagSlippage}, bin.Uint64Bytes(data.Slippage))
	return nil
}

//////////////////////////////////////////////////
// Private Functions
//////////////////////////////////////////////////

func (cont *ZapContract) owner(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagOwner}))
}

func (cont *ZapContract) isInitialized(cc types.ContractLoader) bool {
	return bin.Bool(cc.ContractData([]byte{tagInitialized}))
}

func (cont *ZapContract) isStopped(cc types.ContractLoader) bool {
	return bin.Bool(cc.ContractData([]byte{tagStopped}))
}

func (cont *ZapContract) factory(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagFactory}))
}

func (cont *ZapContract) newDai(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagNewDai}))
}

func (cont *ZapContract) dai(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagDai}))
}

func (cont *ZapContract) cToken(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagCToken}))
}

func (cont *ZapContract) slippage(cc types.ContractLoader) uint64 {
	return bin.Uint64(cc.ContractData([]byte{tagSlippage}))
}

func (cont *ZapContract) onlyOwner(cc *types.ContractContext) error {
	if !cont.isInitialized(cc) {
		return errors.New("Zap: NOT_INITIALIZED")
	}
	if cc.From() != cont.owner(cc) {
		return errors.New("Zap: NOT_OWNER")
	}
	return nil
}

func (cont *ZapContract) coin(cc *types.ContractContext) (common.Address, error) {
	mt := cc.MainToken()
	if mt == nil {
		return ZeroAddress, errors.WithStack(types.ErrNotExistMainToken)
	}
	return *mt, nil
}

// isCoin reports whether addr names the main token, either directly or by the ETH sentinel
func (cont *ZapContract) isCoin(cc *types.ContractContext, addr common.Address) bool {
	if addr == EthTokenAddress {
		return true
	}
	mt := cc.MainToken()
	return mt != nil && *mt == addr
}

func (cont *ZapContract) exchangeOf(cc *types.ContractContext, token common.Address) (common.Address, error) {
	factory := cont.factory(cc)
	if factory == ZeroAddress {
		return ZeroAddress, errors.New("Zap: FACTORY_NOT_SET")
	}
	exchange, err := factoryGetExchange(cc, factory, token)
	if err != nil {
		return ZeroAddress, err
	}
	if exchange == ZeroAddress {
		return ZeroAddress, errors.Errorf("Zap: EXCHANGE_NOT_FOUND %v", token.String())
	}
	return exchange, nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *ZapContract) IsOwner(cc *types.ContractContext) bool {
	return cont.isInitialized(cc) && cc.From() == cont.owner(cc)
}

// GetReturn quotes how much `to` selling am of `from` yields on the exchanges
func (cont *ZapContract) GetReturn(cc *types.ContractContext, from common.Address, to common.Address, am *big.Int) (*big.Int, error) {
	if am.Sign() < 0 {
		return nil, errors.New("Zap: INVALID_AMOUNT")
	}
	if from == to || (cont.isCoin(cc, from) && cont.isCoin(cc, to)) {
		return Clone(am), nil
	}
	if am.Sign() == 0 {
		return big.NewInt(0), nil
	}

	switch {
	case cont.isCoin(cc, from):
		exchange, err := cont.exchangeOf(cc, to)
		if err != nil {
			return nil, err
		}
		return getEthToTokenInputPrice(cc, exchange, am)
	case cont.isCoin(cc, to):
		exchange, err := cont.exchangeOf(cc, from)
		if err != nil {
			return nil, err
		}
		return getTokenToEthInputPrice(cc, exchange, am)
	default:
		fromExchange, err := cont.exchangeOf(cc, from)
		if err != nil {
			return nil, err
		}
		toExchange, err := cont.exchangeOf(cc, to)
		if err != nil {
			return nil, err
		}
		ethBought, err := getTokenToEthInputPrice(cc, fromExchange, am)
		if err != nil {
			return nil, err
		}
		return getEthToTokenInputPrice(cc, toExchange, ethBought)
	}
}

// GetMaxTokens bounds the tokens value of coin can buy from exchange, fee excluded:
// value * tokenReserve / (coinReserve + value)
func (cont *ZapContract) GetMaxTokens(cc *types.ContractContext, exchange common.Address, token common.Address, value *big.Int) (*big.Int, error) {
	if value.Sign() <= 0 || !cc.IsContract(token) {
		return big.NewInt(0), nil
	}
	coin, err := cont.coin(cc)
	if err != nil {
		return nil, err
	}
	tokenReserve, err := TokenBalanceOf(cc, token, exchange)
	if err != nil {
		return nil, err
	}
	coinReserve, err := TokenBalanceOf(cc, coin, exchange)
	if err != nil {
		return nil, err
	}
	if tokenReserve.Sign() == 0 {
		return big.NewInt(0), nil
	}
	return MulDiv(value, tokenReserve, Add(coinReserve, value)), nil
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

// Initialize makes the caller the owner; it succeeds once
func (cont *ZapContract) Initialize(cc *types.ContractContext) error {
	if cont.isInitialized(cc) {
		return errors.New("Zap: ALREADY_INITIALIZED")
	}
	owner := cc.From()
	cc.SetContractData([]byte{tagOwner}, owner[:])
	cc.SetContractData([]byte{tagInitialized}, bin.BoolBytes(true))
	return nil
}

// LetsInvest pulls am of the main token from the caller and sends back the cDAI it buys
func (cont *ZapContract) LetsInvest(cc *types.ContractContext, am *big.Int) (*big.Int, error) {
	if !cont.isInitialized(cc) {
		return nil, errors.New("Zap: NOT_INITIALIZED")
	}
	if cont.isStopped(cc) {
		return nil, errors.New("Zap: STOPPED")
	}
	if am.Sign() <= 0 {
		return nil, errors.New("Zap: INVALID_AMOUNT")
	}
	coin, err := cont.coin(cc)
	if err != nil {
		return nil, err
	}
	dai := cont.newDai(cc)
	cToken := cont.cToken(cc)
	exchange, err := cont.exchangeOf(cc, dai)
	if err != nil {
		return nil, err
	}

	if err := SafeTransferFrom(cc, coin, cc.From(), cont.addr, am); err != nil {
		return nil, err
	}

	// the quote reads the reserves the swap trades against, so the swap always meets minTokens
	minTokens, err := cont.minTokens(cc, exchange, am)
	if err != nil {
		return nil, err
	}
	if err := TokenApprove(cc, coin, exchange, am); err != nil {
		return nil, err
	}
	daiBought, err := ethToTokenSwapInput(cc, exchange, am, minTokens)
	if err != nil {
		return nil, err
	}

	if err := TokenApprove(cc, dai, cToken, daiBought); err != nil {
		return nil, err
	}
	minted, err := cTokenMint(cc, cToken, daiBought)
	if err != nil {
		return nil, err
	}
	if err := SafeTransfer(cc, cToken, cc.From(), minted); err != nil {
		return nil, err
	}
	return minted, nil
}

func (cont *ZapContract) minTokens(cc *types.ContractContext, exchange common.Address, am *big.Int) (*big.Int, error) {
	quote, err := getEthToTokenInputPrice(cc, exchange, am)
	if err != nil {
		return nil, err
	}
	return MulDivC(quote, big.NewInt(int64(SLIPPAGE_DENOMINATOR-cont.slippage(cc))), SLIPPAGE_DENOMINATOR), nil
}

// GetMinTokens returns the least DAI an invest of am accepts from the swap
func (cont *ZapContract) GetMinTokens(cc *types.ContractContext, am *big.Int) (*big.Int, error) {
	exchange, err := cont.exchangeOf(cc, cont.newDai(cc))
	if err != nil {
		return nil, err
	}
	return cont.minTokens(cc, exchange, am)
}

// Redeem releases the DAI behind up to am of the zap's own cDAI to account
func (cont *ZapContract) Redeem(cc *types.ContractContext, account common.Address, am *big.Int) (*big.Int, error) {
	if err := cont.onlyOwner(cc); err != nil {
		return nil, err
	}
	if account == ZeroAddress {
		return nil, errors.New("Zap: INVALID_ACCOUNT")
	}
	if am.Sign() < 0 {
		return nil, errors.New("Zap: INVALID_AMOUNT")
	}
	if am.Sign() == 0 {
		return big.NewInt(0), nil
	}

	cToken := cont.cToken(cc)
	if !cc.IsContract(cToken) {
		return nil, errors.Errorf("Zap: CTOKEN_NOT_FOUND %v", cToken.String())
	}
	held, err := TokenBalanceOf(cc, cToken, cont.addr)
	if err != nil {
		return nil, err
	}
	cTokens := Min(am, held)
	if cTokens.Sign() == 0 {
		return big.NewInt(0), nil
	}

	released, err := cTokenRedeem(cc, cToken, cTokens)
	if err != nil {
		return nil, err
	}
	if released.Sign() > 0 {
		if err := SafeTransfer(cc, cont.newDai(cc), account, released); err != nil {
			return nil, err
		}
	}
	return released, nil
}

func (cont *ZapContract) TransferOwnership(cc *types.ContractContext, newOwner common.Address) error {
	if err := cont.onlyOwner(cc); err != nil {
		return err
	}
	if newOwner == ZeroAddress {
		return errors.New("Zap: OWNER_ZEROADDRESS")
	}
	cc.SetContractData([]byte{tagOwner}, newOwner[:])
	return nil
}

func (cont *ZapContract) ToggleContractActive(cc *types.ContractContext) error {
	if err := cont.onlyOwner(cc); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagStopped}, bin.BoolBytes(!cont.isStopped(cc)))
	return nil
}

func (cont *ZapContract) SetSlippage(cc *types.ContractContext, slippage uint64) error {
	if err := cont.onlyOwner(cc); err != nil {
		return err
	}
	if slippage > SLIPPAGE_DENOMINATOR {
		return errors.New("Zap: INVALID_SLIPPAGE")
	}
	cc.SetContractData([]byte{tagSlippage}, bin.Uint64Bytes(slippage))
	return nil
}

// WithdrawTokens sweeps the zap's balance of token to the owner
func (cont *ZapContract) WithdrawTokens(cc *types.ContractContext, token common.Address) (*big.Int, error) {
	if err := cont.onlyOwner(cc); err != nil {
		return nil, err
	}
	if token == EthTokenAddress {
		coin, err := cont.coin(cc)
		if err != nil {
			return nil, err
		}
		token = coin
	}
	bal, err := TokenBalanceOf(cc, token, cont.addr)
	if err != nil {
		return nil, err
	}
	if bal.Sign() == 0 {
		return bal, nil
	}
	if err := SafeTransfer(cc, token, cont.owner(cc), bal); err != nil {
		return nil, err
	}
	return bal, nil
}
