package store

import (
	"encoding/binary"

	"github.com/meverselabs/defizap/common"
)

var (
	tagHeight    = byte(0x01)
	tagHash      = byte(0x02)
	tagTimestamp = byte(0x03)
	tagMainToken = byte(0x04)
	tagContract  = byte(0x10)
	tagData      = byte(0x11)
)

func toHashKey(height uint32) []byte {
	bs := make([]byte, 5)
	bs[0] = tagHash
	binary.BigEndian.PutUint32(bs[1:], height)
	return bs
}

func toContractKey(addr common.Address) []byte {
	bs := make([]byte, 1+common.AddressLength)
	bs[0] = tagContract
	copy(bs[1:], addr[:])
	return bs
}

func toDataKey(key string) []byte {
	bs := make([]byte, 1+len(key))
	bs[0] = tagData
	copy(bs[1:], key)
	return bs
}

func dataKey(cont common.Address, addr common.Address, name []byte) string {
	return string(cont[:]) + string(addr[:]) + string(name)
}
