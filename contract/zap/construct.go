package zap

import (
	"io"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/bin"
)

// ZapContractConstruction holds the collaborators of a zap.
// Zero token addresses fall back to the mainnet ones.
type ZapContractConstruction struct {
	Factory  common.Address
	NewDai   common.Address
	Dai      common.Address
	CToken   common.Address
	Slippage uint64
}

func (s *ZapContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.Factory); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.NewDai); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.Dai); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.CToken); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint64(w, s.Slippage); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *ZapContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.Factory); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.NewDai); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.Dai); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.CToken); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint64(r, &s.Slippage); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
