package lending

import (
	"io"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	"github.com/meverselabs/defizap/common/bin"
)

type CTokenContractConstruction struct {
	Name         string
	Symbol       string
	Underlying   common.Address
	Owner        common.Address
	ExchangeRate *amount.Amount
}

func (s *CTokenContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.String(w, s.Name); err != nil {
		return sum, err
	}
	if sum, err := sw.String(w, s.Symbol); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.Underlying); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.Owner); err != nil {
		return sum, err
	}
	if sum, err := sw.Amount(w, s.ExchangeRate); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *CTokenContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.String(r, &s.Name); err != nil {
		return sum, err
	}
	if sum, err := sr.String(r, &s.Symbol); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.Underlying); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.Owner); err != nil {
		return sum, err
	}
	if sum, err := sr.Amount(r, &s.ExchangeRate); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
