package types

import (
	"io"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/bin"
)

// ContractDefine is the stored record of a deployed contract
type ContractDefine struct {
	Address common.Address
	Owner   common.Address
	ClassID uint64
}

// String returns the address with the registered name of the class
func (cd *ContractDefine) String() string {
	return cd.Address.String() + " " + ContractName(cd.ClassID) + " owner " + cd.Owner.String()
}

func (cd *ContractDefine) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, cd.Address); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, cd.Owner); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint64(w, cd.ClassID); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (cd *ContractDefine) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &cd.Address); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &cd.Owner); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint64(r, &cd.ClassID); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
