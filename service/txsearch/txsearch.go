package txsearch

import (
	"sync"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/bin"
	"github.com/meverselabs/defizap/node"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"go.uber.org/zap"
)

// TxSearch indexes the receipts of the node by height, hash and address
type TxSearch struct {
	sync.Mutex
	db      *leveldb.DB
	logger  *zap.Logger
	isClose bool
}

// NewTxSearch opens the index database at the path
func NewTxSearch(path string, logger *zap.Logger) (*TxSearch, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return newTxSearch(db, logger), nil
}

// NewMemoryTxSearch returns a TxSearch that keeps the index in memory
func NewMemoryTxSearch(logger *zap.Logger) (*TxSearch, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return newTxSearch(db, logger), nil
}

func newTxSearch(db *leveldb.DB, logger *zap.Logger) *TxSearch {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TxSearch{
		db:     db,
		logger: logger.Named("txsearch"),
	}
}

// Name returns the name of the service
func (t *TxSearch) Name() string {
	return "defizap.txsearch"
}

// Close closes the index database
func (t *TxSearch) Close() {
	t.Lock()
	defer t.Unlock()

	if t.isClose {
		return
	}
	t.isClose = true
	t.db.Close()
}

// OnExecuted indexes the receipt of a stored transaction
func (t *TxSearch) OnExecuted(from common.Address, txs []*node.Tx, receipt *node.Receipt) {
	r := newRecord(receipt.Height, from, txs)
	r.Hash = receipt.Hash
	r.Timestamp = receipt.Timestamp
	r.Events = uint32(len(receipt.Events))
	if err := t.index(r); err != nil {
		t.logger.Warn("index receipt", zap.Uint32("height", receipt.Height), zap.Error(err))
	}
}

// OnFailed keeps the failed transaction in the fail list
func (t *TxSearch) OnFailed(height uint32, from common.Address, txs []*node.Tx, err error) {
	r := newRecord(height, from, txs)
	r.Err = err.Error()
	if err := t.indexFail(r); err != nil {
		t.logger.Warn("index failure", zap.Uint32("height", height), zap.Error(err))
	}
}

// Height returns the last indexed height
func (t *TxSearch) Height() uint32 {
	bs, err := t.db.Get([]byte{tagHeight}, nil)
	if err != nil {
		return 0
	}
	return bin.Uint32(bs)
}

func (t *TxSearch) index(r *Record) error {
	t.Lock()
	defer t.Unlock()
	if t.isClose {
		return errors.WithStack(ErrSearchClosed)
	}

	height := t.Height()
	if r.Height <= height {
		return errors.Wrapf(ErrAlreadyIndexed, "%v <= %v", r.Height, height)
	}
	if r.Height != height+1 {
		t.logger.Warn("index gap", zap.Uint32("from", height+1), zap.Uint32("to", r.Height-1))
	}

	bs, _, err := bin.WriterToBytes(r)
	if err != nil {
		return err
	}
	heightbs := bin.Uint32Bytes(r.Height)

	batch := new(leveldb.Batch)
	batch.Put(toTxKey(r.Height), bs)
	batch.Put(toBlockHashKey(r.Hash), heightbs)
	t.appendIndex(batch, []byte{tagID}, heightbs)
	for _, addr := range r.Addresses() {
		t.appendIndex(batch, toAddressKey(addr), heightbs)
	}
	batch.Put([]byte{tagHeight}, heightbs)
	if err := t.db.Write(batch, nil); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func (t *TxSearch) indexFail(r *Record) error {
	t.Lock()
	defer t.Unlock()
	if t.isClose {
		return errors.WithStack(ErrSearchClosed)
	}

	bs, _, err := bin.WriterToBytes(r)
	if err != nil {
		return err
	}
	batch := new(leveldb.Batch)
	t.appendIndex(batch, []byte{tagFail}, bs)
	if err := t.db.Write(batch, nil); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// appendIndex stores the value at the next sequence of the count key
// Sequences start at 1
func (t *TxSearch) appendIndex(batch *leveldb.Batch, countKey []byte, value []byte) {
	seq := t.count(countKey) + 1
	batch.Put(toIndexKey(countKey, seq), value)
	batch.Put(countKey, bin.Uint64Bytes(seq))
}

func (t *TxSearch) count(countKey []byte) uint64 {
	bs, err := t.db.Get(countKey, nil)
	if err != nil || len(bs) != 8 {
		return 0
	}
	return bin.Uint64(bs)
}
