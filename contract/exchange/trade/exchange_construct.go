package trade

import (
	"io"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/bin"
)

type ExchangeConstruction struct {
	Name    string
	Symbol  string
	Factory common.Address
	Token   common.Address
	Fee     uint64
}

func (s *ExchangeConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.String(w, s.Name); err != nil {
		return sum, err
	}
	if sum, err := sw.String(w, s.Symbol); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.Factory); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.Token); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint64(w, s.Fee); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *ExchangeConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.String(r, &s.Name); err != nil {
		return sum, err
	}
	if sum, err := sr.String(r, &s.Symbol); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.Factory); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.Token); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint64(r, &s.Fee); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
