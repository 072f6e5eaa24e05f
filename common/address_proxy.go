package common

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

type Address = common.Address

var ZeroAddr = Address{}

// AddressLength is the expected length of the address
const AddressLength = common.AddressLength

// BytesToAddress returns Address with value b.
// If b is larger than len(h), b will be cropped from the left.
func BytesToAddress(b []byte) Address {
	return common.BytesToAddress(b)
}

// BigToAddress returns Address with byte values of b.
func BigToAddress(b *big.Int) Address {
	return common.BigToAddress(b)
}

// HexToAddress returns Address with byte values of s.
func HexToAddress(s string) Address {
	return common.HexToAddress(s)
}

// IsHexAddress verifies whether a string can represent a valid hex-encoded address
func IsHexAddress(s string) bool {
	return common.IsHexAddress(s)
}

// ParseAddress parses a hex address, rejecting malformed input
func ParseAddress(s string) (Address, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	addr := Address{}
	if len(s) != AddressLength*2 {
		return addr, errors.WithStack(ErrInvalidAddressFormat)
	}
	h, err := hex.DecodeString(s)
	if err != nil {
		return addr, errors.WithStack(ErrInvalidAddressFormat)
	}
	copy(addr[:], h)
	return addr, nil
}
