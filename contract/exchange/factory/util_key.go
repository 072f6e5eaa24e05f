package factory

import (
	"github.com/meverselabs/defizap/common"
)

var (
	tagOwner           = byte(0x00)
	tagAllExchanges    = byte(0x01)
	tagExchangeClassID = byte(0x02)
	tagFee             = byte(0x03)
	tagTokenToExchange = byte(0x10)
	tagExchangeToToken = byte(0x11)
)

func makeAddressKey(tag byte, addr common.Address) []byte {
	bs := make([]byte, 1+common.AddressLength)
	bs[0] = tag
	copy(bs[1:], addr[:])
	return bs
}
