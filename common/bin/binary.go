package bin

import (
	"encoding/binary"
	"math/big"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
)

// Uint32Bytes returns a byte array of the uint32 number
func Uint32Bytes(v uint32) []byte {
	BNum := make([]byte, 4)
	binary.LittleEndian.PutUint32(BNum, v)
	return BNum
}

// Uint64Bytes returns a byte array of the uint64 number
func Uint64Bytes(v uint64) []byte {
	BNum := make([]byte, 8)
	binary.LittleEndian.PutUint64(BNum, v)
	return BNum
}

// Uint32 returns a uint32 number of the byte array
func Uint32(v []byte) uint32 {
	return binary.LittleEndian.Uint32(v)
}

// Uint64 returns a uint64 number of the byte array
func Uint64(v []byte) uint64 {
	if len(v) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(v)
}

// Amount returns a Amount of the byte array
func Amount(v []byte) *amount.Amount {
	return &amount.Amount{Int: big.NewInt(0).SetBytes(v)}
}

// Address returns a Address of the byte array
func Address(v []byte) common.Address {
	return common.BytesToAddress(v)
}

// Bool returns true when the byte array holds a single 1
func Bool(v []byte) bool {
	return len(v) == 1 && v[0] == 1
}

// BoolBytes is the stored form of a bool; false is empty so it deletes the key
func BoolBytes(v bool) []byte {
	if v {
		return []byte{1}
	}
	return nil
}
