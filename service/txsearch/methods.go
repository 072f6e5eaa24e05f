package txsearch

import (
	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/bin"
	"github.com/meverselabs/defizap/common/hash"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// BlockHeight returns the height of the transaction hash
func (t *TxSearch) BlockHeight(h hash.Hash256) (uint32, error) {
	v, err := t.db.Get(toBlockHashKey(h), nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return 0, errors.WithStack(ErrNotExistRecord)
		}
		return 0, errors.WithStack(err)
	}
	if len(v) != 4 {
		return 0, errors.New("invalid length")
	}
	return bin.Uint32(v), nil
}

// Tx returns the record stored at the height
func (t *TxSearch) Tx(height uint32) (*Record, error) {
	bs, err := t.db.Get(toTxKey(height), nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, errors.Wrapf(ErrNotExistRecord, "height %v", height)
		}
		return nil, errors.WithStack(err)
	}
	r := &Record{}
	if _, err := bin.ReadFromBytes(r, bs); err != nil {
		return nil, err
	}
	return r, nil
}

// TxSize returns the number of indexed transactions
func (t *TxSearch) TxSize() uint64 {
	return t.count([]byte{tagID})
}

// TxList returns a page of transactions, newest first
func (t *TxSearch) TxList(index int) ([]*Record, error) {
	return t.heightList([]byte{tagID}, index)
}

// AddressTxList returns a page of transactions that the address sent or called, newest first
func (t *TxSearch) AddressTxList(addr common.Address, index int) ([]*Record, error) {
	return t.heightList(toAddressKey(addr), index)
}

// FailList returns a page of failed transactions, newest first
func (t *TxSearch) FailList(index int) ([]*Record, error) {
	list, err := t.pageValues([]byte{tagFail}, index)
	if err != nil {
		return nil, err
	}
	rs := make([]*Record, 0, len(list))
	for _, bs := range list {
		r := &Record{}
		if _, err := bin.ReadFromBytes(r, bs); err != nil {
			return nil, err
		}
		rs = append(rs, r)
	}
	return rs, nil
}

func (t *TxSearch) heightList(countKey []byte, index int) ([]*Record, error) {
	list, err := t.pageValues(countKey, index)
	if err != nil {
		return nil, err
	}
	rs := make([]*Record, 0, len(list))
	for _, bs := range list {
		r, err := t.Tx(bin.Uint32(bs))
		if err != nil {
			return nil, err
		}
		rs = append(rs, r)
	}
	return rs, nil
}

// pageValues returns the values of the page in descending sequence order
func (t *TxSearch) pageValues(countKey []byte, index int) ([][]byte, error) {
	if index < 0 {
		return nil, errors.WithStack(ErrInvalidPageSize)
	}
	tlen, from, to := t.getRange(countKey, index)
	list := make([][]byte, tlen)
	iter := t.db.NewIterator(&util.Range{Start: from, Limit: to}, nil)
	defer iter.Release()

	var i int
	for iter.Next() && i < len(list) {
		i++
		list[len(list)-i] = append([]byte{}, iter.Value()...)
	}
	if err := iter.Error(); err != nil {
		return nil, errors.WithStack(err)
	}
	return list[len(list)-i:], nil
}

// getRange returns the length and the key range [from, to) of the page
func (t *TxSearch) getRange(countKey []byte, index int) (uint64, []byte, []byte) {
	s := int64(t.count(countKey))
	_to := s - int64(index*PageSize) + 1
	if _to < 1 {
		_to = 1
	}
	_from := _to - PageSize
	if _from < 1 {
		_from = 1
	}
	from := uint64(_from)
	to := uint64(_to)
	return to - from, toIndexKey(countKey, from), toIndexKey(countKey, to)
}
