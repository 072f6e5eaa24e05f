package zap

import (
	"github.com/meverselabs/defizap/common"
)

const (
	SLIPPAGE_DENOMINATOR = 10000
)

var (
	NewDaiTokenAddress   = common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F")
	CompoundTokenAddress = common.HexToAddress("0x5d3a536E4D6DbD6114cc1Ead35777bAB948E3643")
	DaiTokenAddress      = common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F")
	EthTokenAddress      = common.HexToAddress("0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE")
)

var (
	tagOwner       = byte(0x01)
	tagInitialized = byte(0x02)
	tagStopped     = byte(0x03)

	tagFactory  = byte(0x10)
	tagNewDai   = byte(0x11)
	tagDai      = byte(0x12)
	tagCToken   = byte(0x13)
	tagSlippage = byte(0x14)
)

func orDefault(addr common.Address, def common.Address) common.Address {
	if addr == (common.Address{}) {
		return def
	}
	return addr
}
