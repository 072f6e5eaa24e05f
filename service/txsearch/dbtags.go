package txsearch

import (
	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/bin"
	"github.com/meverselabs/defizap/common/hash"
)

// tags
var (
	//process
	tagHeight = byte(0x10)

	//height
	tagBlockHash = byte(0x20)
	tagTx        = byte(0x21)

	//index
	tagID      = byte(0x30)
	tagAddress = byte(0x35)
	tagFail    = byte(0x36)
)

// PageSize is the number of records in a page of a list
const PageSize = 20

func toTxKey(height uint32) []byte {
	return append([]byte{tagTx}, bin.Uint32Bytes(height)...)
}

func toBlockHashKey(h hash.Hash256) []byte {
	return append([]byte{tagBlockHash}, h[:]...)
}

func toAddressKey(addr common.Address) []byte {
	bs := make([]byte, 1+common.AddressLength)
	bs[0] = tagAddress
	copy(bs[1:], addr[:])
	return bs
}

func toIndexKey(countKey []byte, seq uint64) []byte {
	bs := make([]byte, len(countKey), len(countKey)+8)
	copy(bs, countKey)
	return append(bs, bin.Uint64Bytes(seq)...)
}
