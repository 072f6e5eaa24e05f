package token

import (
	"bytes"
	"sort"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
)

var (
	tagTokenName        = byte(0x01)
	tagTokenSymbol      = byte(0x02)
	tagTokenMinter      = byte(0x03)
	tagTokenTotalSupply = byte(0x04)
	tagTokenAmount      = byte(0x10)
	tagTokenApprove     = byte(0x12)
	tagPause            = byte(0x15)
)

func MakeAllowanceTokenKey(spender common.Address) []byte {
	return makeTokenKey(spender, tagTokenApprove)
}
func makeTokenKey(sender common.Address, key byte) []byte {
	bs := make([]byte, 1+common.AddressLength)
	bs[0] = key
	copy(bs[1:], sender[:])
	return bs
}

func sortedAddresses(m map[common.Address]*amount.Amount) []common.Address {
	addrs := make([]common.Address, 0, len(m))
	for k := range m {
		addrs = append(addrs, k)
	}
	sort.Slice(addrs, func(i, j int) bool {
		return bytes.Compare(addrs[i][:], addrs[j][:]) < 0
	})
	return addrs
}
