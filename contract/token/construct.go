package token

import (
	"io"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	"github.com/meverselabs/defizap/common/bin"
)

type TokenContractConstruction struct {
	Name             string
	Symbol           string
	InitialSupplyMap map[common.Address]*amount.Amount
}

func (s *TokenContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.String(w, s.Name); err != nil {
		return sum, err
	}
	if sum, err := sw.String(w, s.Symbol); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint32(w, uint32(len(s.InitialSupplyMap))); err != nil {
		return sum, err
	}
	for _, k := range sortedAddresses(s.InitialSupplyMap) {
		if sum, err := sw.Address(w, k); err != nil {
			return sum, err
		}
		if sum, err := sw.Amount(w, s.InitialSupplyMap[k]); err != nil {
			return sum, err
		}
	}
	return sw.Sum(), nil
}

func (s *TokenContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.String(r, &s.Name); err != nil {
		return sum, err
	}
	if sum, err := sr.String(r, &s.Symbol); err != nil {
		return sum, err
	}
	Len, sum, err := sr.GetUint32(r)
	if err != nil {
		return sum, err
	}
	s.InitialSupplyMap = map[common.Address]*amount.Amount{}
	for i := uint32(0); i < Len; i++ {
		var addr common.Address
		if sum, err := sr.Address(r, &addr); err != nil {
			return sum, err
		}
		var am *amount.Amount
		if sum, err := sr.Amount(r, &am); err != nil {
			return sum, err
		}
		s.InitialSupplyMap[addr] = am
	}
	return sr.Sum(), nil
}
