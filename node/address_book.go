package node

import (
	"io"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/bin"
)

var addressBookKey = []byte("node.addresses")

// AddressBook lists the contracts deployed at genesis
type AddressBook struct {
	Coin     common.Address `json:"coin"`
	Dai      common.Address `json:"dai"`
	Factory  common.Address `json:"factory"`
	Exchange common.Address `json:"exchange"`
	CToken   common.Address `json:"ctoken"`
	Zap      common.Address `json:"zap"`
}

func (s *AddressBook) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	for _, addr := range []common.Address{s.Coin, s.Dai, s.Factory, s.Exchange, s.CToken, s.Zap} {
		if sum, err := sw.Address(w, addr); err != nil {
			return sum, err
		}
	}
	return sw.Sum(), nil
}

func (s *AddressBook) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	for _, p := range []*common.Address{&s.Coin, &s.Dai, &s.Factory, &s.Exchange, &s.CToken, &s.Zap} {
		if sum, err := sr.Address(r, p); err != nil {
			return sum, err
		}
	}
	return sr.Sum(), nil
}
