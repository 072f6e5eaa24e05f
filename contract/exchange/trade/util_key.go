package trade

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/bin"
	"github.com/meverselabs/defizap/common/hash"

	. "github.com/meverselabs/defizap/contract/util"
)

const (
	FEE_DENOMINATOR = 1000
	DEFAULT_FEE     = 3 // 0.3%

	// first deposit must carry at least 1 gwei of coin
	MIN_INITIAL_COIN = 1000000000
)

var (
	//token
	tagTokenName        = byte(0x01)
	tagTokenSymbol      = byte(0x02)
	tagTokenTotalSupply = byte(0x03)
	tagTokenAmount      = byte(0x04)
	tagTokenApprove     = byte(0x05)

	//exchange
	tagFactory = byte(0x21)
	tagToken   = byte(0x22)
	tagFee     = byte(0x23)
)

func makeTokenKey(sender common.Address, key byte) []byte {
	bs := make([]byte, 1+common.AddressLength)
	bs[0] = key
	copy(bs[1:], sender[:])
	return bs
}

// GetInputPrice returns the amount bought by selling inputAmount into a pool
// out = in*(1-fee)*outputReserve / (inputReserve + in*(1-fee))
func GetInputPrice(fee uint64, inputAmount, inputReserve, outputReserve *big.Int) (*big.Int, error) {
	if !(inputAmount.Cmp(Zero) > 0) {
		return nil, errors.New("Exchange: INSUFFICIENT_INPUT_AMOUNT")
	}
	if !(inputReserve.Cmp(Zero) > 0) || !(outputReserve.Cmp(Zero) > 0) {
		return nil, errors.New("Exchange: INSUFFICIENT_LIQUIDITY")
	}
	inputAmountWithFee := Mul(inputAmount, big.NewInt(FEE_DENOMINATOR-int64(fee)))
	numerator := Mul(inputAmountWithFee, outputReserve)
	denominator := Add(MulC(inputReserve, FEE_DENOMINATOR), inputAmountWithFee)
	return Div(numerator, denominator), nil
}

// GetOutputPrice returns the amount that must be sold to buy outputAmount from a pool
func GetOutputPrice(fee uint64, outputAmount, inputReserve, outputReserve *big.Int) (*big.Int, error) {
	if !(outputAmount.Cmp(Zero) > 0) {
		return nil, errors.New("Exchange: INSUFFICIENT_OUTPUT_AMOUNT")
	}
	if !(inputReserve.Cmp(Zero) > 0) || !(outputAmount.Cmp(outputReserve) < 0) {
		return nil, errors.New("Exchange: INSUFFICIENT_LIQUIDITY")
	}
	numerator := MulC(Mul(inputReserve, outputAmount), FEE_DENOMINATOR)
	denominator := Mul(Sub(outputReserve, outputAmount), big.NewInt(FEE_DENOMINATOR-int64(fee)))
	return AddC(Div(numerator, denominator), 1), nil
}

// ExchangeFor returns the address the factory deploys the exchange of token to
func ExchangeFor(factory, token common.Address, ClassID uint64) common.Address {
	base := make([]byte, 1+common.AddressLength*2+8)
	base[0] = 0xff
	copy(base[1:], factory[:])
	copy(base[1+common.AddressLength:], token[:])
	copy(base[1+common.AddressLength*2:], bin.Uint64Bytes(ClassID))
	h := hash.Hash(base)
	return common.BytesToAddress(h[12:])
}
