package store

import (
	"bytes"
	"math/big"
	"sync"

	"github.com/bluele/gcache"
	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/bin"
	"github.com/meverselabs/defizap/common/hash"
	"github.com/meverselabs/defizap/core/types"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// Store saves the chain state
// All updates of a context are written in one leveldb transaction
// Cache fills of Data hold the read lock so a commit cannot interleave them
type Store struct {
	sync.RWMutex
	db        *leveldb.DB
	chainID   *big.Int
	version   uint16
	dataCache gcache.Cache
	closeLock sync.RWMutex
	isClose   bool
}

// Open returns a Store backed by a leveldb directory
func Open(path string, ChainID *big.Int, Version uint16) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return newStore(db, ChainID, Version), nil
}

// OpenMemory returns a Store that keeps everything in memory
func OpenMemory(ChainID *big.Int, Version uint16) (*Store, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return newStore(db, ChainID, Version), nil
}

func newStore(db *leveldb.DB, ChainID *big.Int, Version uint16) *Store {
	return &Store{
		db:        db,
		chainID:   ChainID,
		version:   Version,
		dataCache: gcache.New(4096).LRU().Build(),
	}
}

// Close terminate and clean store
func (st *Store) Close() {
	st.closeLock.Lock()
	defer st.closeLock.Unlock()

	st.isClose = true
	if st.db != nil {
		st.db.Close()
	}
	st.db = nil
	st.dataCache.Purge()
}

// ChainID returns the chain id of the target chain
func (st *Store) ChainID() *big.Int {
	return st.chainID
}

// Version returns the version of the target chain
func (st *Store) Version() uint16 {
	return st.version
}

// Height returns the last stored height
func (st *Store) Height() uint32 {
	st.closeLock.RLock()
	defer st.closeLock.RUnlock()
	if st.isClose {
		return 0
	}

	value, err := st.db.Get([]byte{tagHeight}, nil)
	if err != nil {
		return 0
	}
	return bin.Uint32(value)
}

// TargetHeight returns the height of the next context
func (st *Store) TargetHeight() uint32 {
	return st.Height() + 1
}

// Hash returns the context hash stored at the height
func (st *Store) Hash(height uint32) (hash.Hash256, error) {
	st.closeLock.RLock()
	defer st.closeLock.RUnlock()
	if st.isClose {
		return hash.Hash256{}, errors.WithStack(ErrStoreClosed)
	}

	value, err := st.db.Get(toHashKey(height), nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return hash.Hash256{}, errors.WithStack(ErrNotExistKey)
		}
		return hash.Hash256{}, errors.WithStack(err)
	}
	var h hash.Hash256
	h.SetBytes(value)
	return h, nil
}

// PrevHash returns the hash of the last stored context
func (st *Store) PrevHash() hash.Hash256 {
	h, err := st.Hash(st.Height())
	if err != nil {
		return hash.Hash256{}
	}
	return h
}

// LastTimestamp returns the timestamp of the last stored context
func (st *Store) LastTimestamp() uint64 {
	st.closeLock.RLock()
	defer st.closeLock.RUnlock()
	if st.isClose {
		return 0
	}

	value, err := st.db.Get([]byte{tagTimestamp}, nil)
	if err != nil {
		return 0
	}
	return bin.Uint64(value)
}

// MainToken returns the main token address
func (st *Store) MainToken() *common.Address {
	st.closeLock.RLock()
	defer st.closeLock.RUnlock()
	if st.isClose {
		return nil
	}

	value, err := st.db.Get([]byte{tagMainToken}, nil)
	if err != nil {
		return nil
	}
	addr := bin.Address(value)
	return &addr
}

// IsContract returns the address is a deployed contract or not
func (st *Store) IsContract(addr common.Address) bool {
	st.closeLock.RLock()
	defer st.closeLock.RUnlock()
	if st.isClose {
		return false
	}

	has, err := st.db.Has(toContractKey(addr), nil)
	if err != nil {
		return false
	}
	return has
}

// Contract returns the contract form the store
func (st *Store) Contract(addr common.Address) (types.Contract, error) {
	st.closeLock.RLock()
	defer st.closeLock.RUnlock()
	if st.isClose {
		return nil, errors.WithStack(ErrStoreClosed)
	}

	value, err := st.db.Get(toContractKey(addr), nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, errors.WithStack(types.ErrNotExistContract)
		}
		return nil, errors.WithStack(err)
	}
	cd := &types.ContractDefine{}
	if _, err := cd.ReadFrom(bytes.NewReader(value)); err != nil {
		return nil, err
	}
	return types.CreateContract(cd)
}

// Contracts returns every deployed contract in address order
func (st *Store) Contracts() ([]*types.ContractDefine, error) {
	st.closeLock.RLock()
	defer st.closeLock.RUnlock()
	if st.isClose {
		return nil, errors.WithStack(ErrStoreClosed)
	}

	cds := []*types.ContractDefine{}
	iter := st.db.NewIterator(util.BytesPrefix([]byte{tagContract}), nil)
	defer iter.Release()
	for iter.Next() {
		cd := &types.ContractDefine{}
		if _, err := cd.ReadFrom(bytes.NewReader(iter.Value())); err != nil {
			return nil, err
		}
		cds = append(cds, cd)
	}
	if err := iter.Error(); err != nil {
		return nil, errors.WithStack(err)
	}
	return cds, nil
}

// Data returns the account data from the store
func (st *Store) Data(cont common.Address, addr common.Address, name []byte) []byte {
	st.closeLock.RLock()
	defer st.closeLock.RUnlock()
	if st.isClose {
		return nil
	}

	st.RLock()
	defer st.RUnlock()

	key := dataKey(cont, addr, name)
	if v, err := st.dataCache.Get(key); err == nil {
		return copyBytes(v.([]byte))
	}
	value, err := st.db.Get(toDataKey(key), nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			st.dataCache.Set(key, []byte(nil))
		}
		return nil
	}
	st.dataCache.Set(key, value)
	return copyBytes(value)
}

// StoreGenesis stores the genesis context as height 0
func (st *Store) StoreGenesis(ctx *types.Context, Timestamp uint64) error {
	if st.Height() > 0 || st.hasGenesis() {
		return errors.WithStack(ErrAlreadyGenesised)
	}
	return st.store(0, ctx, Timestamp)
}

// StoreContext stores the changes of the context at its target height
func (st *Store) StoreContext(ctx *types.Context, Timestamp uint64) error {
	if ctx.TargetHeight() != st.TargetHeight() {
		return errors.Wrapf(ErrInvalidHeight, "expected %v, got %v", st.TargetHeight(), ctx.TargetHeight())
	}
	return st.store(ctx.TargetHeight(), ctx, Timestamp)
}

func (st *Store) hasGenesis() bool {
	_, err := st.Hash(0)
	return err == nil
}

func (st *Store) store(height uint32, ctx *types.Context, Timestamp uint64) error {
	st.closeLock.RLock()
	defer st.closeLock.RUnlock()
	if st.isClose {
		return errors.WithStack(ErrStoreClosed)
	}

	st.Lock()
	defer st.Unlock()

	ctd := ctx.Top()
	h := ctx.Hash()

	txn, err := st.db.OpenTransaction()
	if err != nil {
		return errors.WithStack(err)
	}
	if err := applyContextData(txn, ctd); err != nil {
		txn.Discard()
		return err
	}
	if mt := ctx.MainToken(); mt != nil {
		if err := txn.Put([]byte{tagMainToken}, mt[:], nil); err != nil {
			txn.Discard()
			return errors.WithStack(err)
		}
	}
	if err := txn.Put(toHashKey(height), h[:], nil); err != nil {
		txn.Discard()
		return errors.WithStack(err)
	}
	if err := txn.Put([]byte{tagHeight}, bin.Uint32Bytes(height), nil); err != nil {
		txn.Discard()
		return errors.WithStack(err)
	}
	if err := txn.Put([]byte{tagTimestamp}, bin.Uint64Bytes(Timestamp), nil); err != nil {
		txn.Discard()
		return errors.WithStack(err)
	}
	if err := txn.Commit(); err != nil {
		txn.Discard()
		return errors.WithStack(err)
	}

	ctd.EachData(func(key string, value []byte) bool {
		st.dataCache.Set(key, copyBytes(value))
		return true
	})
	ctd.EachDeleted(func(key string) bool {
		st.dataCache.Remove(key)
		return true
	})
	return nil
}

func applyContextData(txn *leveldb.Transaction, ctd *types.ContextData) error {
	var inErr error
	ctd.EachContractDefine(func(cd *types.ContractDefine) bool {
		bs, _, err := bin.WriterToBytes(cd)
		if err != nil {
			inErr = err
			return false
		}
		if err := txn.Put(toContractKey(cd.Address), bs, nil); err != nil {
			inErr = errors.WithStack(err)
			return false
		}
		return true
	})
	if inErr != nil {
		return inErr
	}
	ctd.EachData(func(key string, value []byte) bool {
		if err := txn.Put(toDataKey(key), value, nil); err != nil {
			inErr = errors.WithStack(err)
			return false
		}
		return true
	})
	if inErr != nil {
		return inErr
	}
	ctd.EachDeleted(func(key string) bool {
		if err := txn.Delete(toDataKey(key), nil); err != nil {
			inErr = errors.WithStack(err)
			return false
		}
		return true
	})
	return inErr
}

func copyBytes(bs []byte) []byte {
	if bs == nil {
		return nil
	}
	data := make([]byte, len(bs))
	copy(data, bs)
	return data
}
