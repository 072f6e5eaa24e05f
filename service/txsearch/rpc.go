package txsearch

import (
	"github.com/meverselabs/defizap/common/hash"
	"github.com/meverselabs/defizap/service/apiserver"
	"github.com/pkg/errors"
)

// pageIndex reads an optional page argument; a missing one is the first page
func pageIndex(arg *apiserver.Argument, index int) (int, error) {
	if index >= arg.Len() {
		return 0, nil
	}
	page, err := arg.Int(index)
	if err != nil {
		return 0, err
	}
	if page < 0 {
		return 0, errors.Wrapf(apiserver.ErrInvalidArgumentType, "negative page %v", page)
	}
	return page, nil
}

// SetupApi binds the search methods to the apiserver
func (t *TxSearch) SetupApi(api *apiserver.APIServer) error {
	s, err := api.JRPC("search")
	if err != nil {
		return err
	}

	s.Set("height", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		return t.Height(), nil
	})
	s.Set("size", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		return t.TxSize(), nil
	})
	s.Set("tx", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		height, err := arg.Uint32(0)
		if err != nil {
			str, serr := arg.String(0)
			if serr != nil {
				return nil, err
			}
			height, err = t.BlockHeight(hash.HexToHash(str))
			if err != nil {
				return nil, err
			}
		}
		return t.Tx(height)
	})
	s.Set("txs", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		index, err := pageIndex(arg, 0)
		if err != nil {
			return nil, err
		}
		return t.TxList(index)
	})
	s.Set("addressTxs", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		addr, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		index, err := pageIndex(arg, 1)
		if err != nil {
			return nil, err
		}
		return t.AddressTxList(addr, index)
	})
	s.Set("fails", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		index, err := pageIndex(arg, 0)
		if err != nil {
			return nil, err
		}
		return t.FailList(index)
	})
	return nil
}
