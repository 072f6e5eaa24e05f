package apiserver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	"github.com/pkg/errors"
)

// Argument parses rpc arguments
type Argument struct {
	args []interface{}
}

// NewArgument returns a Argument
func NewArgument(args []interface{}) *Argument {
	arg := &Argument{
		args: args,
	}
	return arg
}

// Len returns length of arguments
func (arg *Argument) Len() int {
	return len(arg.args)
}

// text returns the argument of the index in its printed form
// json numbers, strings and bools all read back the way they were sent
func (arg *Argument) text(index int) (string, error) {
	if index < 0 || index >= len(arg.args) {
		return "", errors.WithStack(ErrInvalidArgumentIndex)
	}
	a := arg.args[index]
	if a == nil {
		return "", errors.WithStack(ErrInvalidArgumentType)
	}
	return fmt.Sprintf("%v", a), nil
}

func (arg *Argument) parseUint(index int, bitSize int) (uint64, error) {
	str, err := arg.text(index)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(str, 10, bitSize)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidArgumentType, "%v is not a uint%v", str, bitSize)
	}
	return n, nil
}

// Int returns a int value of the index
func (arg *Argument) Int(index int) (int, error) {
	str, err := arg.text(index)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(str, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidArgumentType, "%v is not an int", str)
	}
	return int(n), nil
}

// Uint32 returns a uint32 value of the index
func (arg *Argument) Uint32(index int) (uint32, error) {
	n, err := arg.parseUint(index, 32)
	return uint32(n), err
}

// Uint64 returns a uint64 value of the index
func (arg *Argument) Uint64(index int) (uint64, error) {
	return arg.parseUint(index, 64)
}

// String returns a string value of the index
func (arg *Argument) String(index int) (string, error) {
	return arg.text(index)
}

// Bool returns a bool value of the index
func (arg *Argument) Bool(index int) (bool, error) {
	str, err := arg.text(index)
	if err != nil {
		return false, err
	}
	v, err := strconv.ParseBool(str)
	if err != nil {
		return false, errors.Wrapf(ErrInvalidArgumentType, "%v is not a bool", str)
	}
	return v, nil
}

// Address returns a hex address value of the index
func (arg *Argument) Address(index int) (common.Address, error) {
	str, err := arg.text(index)
	if err != nil {
		return common.Address{}, err
	}
	bs, err := hexutil.Decode(str)
	if err != nil || len(bs) != common.AddressLength {
		return common.Address{}, errors.Wrapf(ErrInvalidArgumentType, "invalid address %v", str)
	}
	return common.BytesToAddress(bs), nil
}

// Amount returns a decimal amount value of the index
// A value with the 0x prefix is read as a raw integer amount
func (arg *Argument) Amount(index int) (*amount.Amount, error) {
	str, err := arg.text(index)
	if err != nil {
		return nil, err
	}
	if strings.HasPrefix(str, "0x") {
		bi, err := hexutil.DecodeBig(str)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidArgumentType, "invalid amount %v", str)
		}
		return amount.NewAmountFromBig(bi), nil
	}
	am, err := amount.ParseAmount(str)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidArgumentType, "invalid amount %v", str)
	}
	return am, nil
}
