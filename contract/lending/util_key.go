package lending

import (
	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
)

var (
	tagTokenName        = byte(0x01)
	tagTokenSymbol      = byte(0x02)
	tagTokenTotalSupply = byte(0x04)
	tagTokenAmount      = byte(0x10)
	tagTokenApprove     = byte(0x12)

	tagOwner        = byte(0x20)
	tagUnderlying   = byte(0x21)
	tagExchangeRate = byte(0x22)
)

// DefaultExchangeRate is 0.02 underlying per cToken
var DefaultExchangeRate = amount.NewAmount(0, 20000000000000000)

func makeAllowanceKey(spender common.Address) []byte {
	bs := make([]byte, 1+common.AddressLength)
	bs[0] = tagTokenApprove
	copy(bs[1:], spender[:])
	return bs
}
