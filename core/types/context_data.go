package types

import (
	"bytes"
	"encoding/hex"
	"strconv"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/bin"
	"github.com/meverselabs/defizap/common/hash"
	"github.com/pkg/errors"
	"github.com/tidwall/btree"
)

var deploySeqKey = []byte("deploy.seq")

// ContextData is a state data of the context
type ContextData struct {
	cache             *contextCache
	Parent            *ContextData
	mainToken         *common.Address
	ContractDefineMap map[common.Address]*ContractDefine
	DataMap           map[string][]byte
	DeletedDataMap    map[string]bool
}

// NewContextData returns a ContextData
func NewContextData(cache *contextCache, Parent *ContextData) *ContextData {
	return &ContextData{
		cache:             cache,
		Parent:            Parent,
		ContractDefineMap: map[common.Address]*ContractDefine{},
		DataMap:           map[string][]byte{},
		DeletedDataMap:    map[string]bool{},
	}
}

func dataKey(cont common.Address, addr common.Address, name []byte) string {
	return string(cont[:]) + string(addr[:]) + string(name)
}

// SplitDataKey returns the contract, account and name of the data key
func SplitDataKey(key string) (common.Address, common.Address, []byte) {
	var cont, addr common.Address
	copy(cont[:], key[:common.AddressLength])
	copy(addr[:], key[common.AddressLength:common.AddressLength*2])
	return cont, addr, []byte(key[common.AddressLength*2:])
}

// MainToken returns the main token address
func (ctd *ContextData) MainToken() *common.Address {
	if ctd.mainToken != nil {
		return ctd.mainToken
	}
	if ctd.Parent != nil {
		return ctd.Parent.MainToken()
	}
	return ctd.cache.MainToken()
}

// SetMainToken sets the main token address
func (ctd *ContextData) SetMainToken(addr common.Address) {
	ctd.mainToken = &addr
}

// IsContract returns is the contract
func (ctd *ContextData) IsContract(addr common.Address) bool {
	if _, has := ctd.ContractDefineMap[addr]; has {
		return true
	}
	if ctd.Parent != nil {
		return ctd.Parent.IsContract(addr)
	}
	return ctd.cache.IsContract(addr)
}

// Contract returns the contract of the address
func (ctd *ContextData) Contract(addr common.Address) (Contract, error) {
	if cd, has := ctd.ContractDefineMap[addr]; has {
		return CreateContract(cd)
	}
	if ctd.Parent != nil {
		return ctd.Parent.Contract(addr)
	}
	return ctd.cache.Contract(addr)
}

// NextSeq returns the next deploy sequence
func (ctd *ContextData) NextSeq() uint64 {
	seq := bin.Uint64(ctd.Data(common.ZeroAddr, common.ZeroAddr, deploySeqKey)) + 1
	ctd.SetData(common.ZeroAddr, common.ZeroAddr, deploySeqKey, bin.Uint64Bytes(seq))
	return seq
}

// DeployContract deploys the contract to the address derived from the sender, class and sequence
func (ctd *ContextData) DeployContract(sender common.Address, ClassID uint64, Args []byte) (Contract, error) {
	if !IsValidClassID(ClassID) {
		return nil, errors.WithStack(ErrInvalidClassID)
	}

	base := make([]byte, 1+common.AddressLength+8+8)
	base[0] = 0xff
	copy(base[1:], sender[:])
	copy(base[1+common.AddressLength:], bin.Uint64Bytes(ClassID))
	copy(base[1+common.AddressLength+8:], bin.Uint64Bytes(ctd.NextSeq()))
	h := hash.Hash(base)
	addr := common.BytesToAddress(h[12:])
	return ctd.DeployContractWithAddress(sender, ClassID, addr, Args)
}

// DeployContractWithAddress deploys the contract to the given address
func (ctd *ContextData) DeployContractWithAddress(sender common.Address, ClassID uint64, addr common.Address, Args []byte) (Contract, error) {
	if ctd.IsContract(addr) {
		return nil, errors.WithStack(ErrExistAddress)
	}
	cd := &ContractDefine{
		Address: addr,
		Owner:   sender,
		ClassID: ClassID,
	}
	cont, err := CreateContract(cd)
	if err != nil {
		return nil, err
	}
	ctd.ContractDefineMap[addr] = cd
	if err := cont.OnCreate(ctd.cache.ctx.ContractContext(cont, sender), Args); err != nil {
		return nil, err
	}
	return cont, nil
}

// Data returns the data of the key
func (ctd *ContextData) Data(cont common.Address, addr common.Address, name []byte) []byte {
	key := dataKey(cont, addr, name)
	if _, has := ctd.DeletedDataMap[key]; has {
		return nil
	}
	var value []byte
	if v, has := ctd.DataMap[key]; has {
		return v
	} else if ctd.Parent != nil {
		value = ctd.Parent.Data(cont, addr, name)
	} else {
		value = ctd.cache.Data(cont, addr, name)
	}
	if len(value) == 0 {
		return nil
	}
	nvalue := make([]byte, len(value))
	copy(nvalue, value)
	return nvalue
}

// SetData stores the value; an empty value deletes the key
func (ctd *ContextData) SetData(cont common.Address, addr common.Address, name []byte, value []byte) {
	key := dataKey(cont, addr, name)
	if len(value) == 0 {
		delete(ctd.DataMap, key)
		ctd.DeletedDataMap[key] = true
	} else {
		delete(ctd.DeletedDataMap, key)
		ctd.DataMap[key] = value
	}
}

// merge applies the changes of the child to it
func (ctd *ContextData) merge(child *ContextData) {
	if child.mainToken != nil {
		ctd.mainToken = child.mainToken
	}
	for addr, cd := range child.ContractDefineMap {
		ctd.ContractDefineMap[addr] = cd
	}
	for key, value := range child.DataMap {
		delete(ctd.DeletedDataMap, key)
		ctd.DataMap[key] = value
	}
	for key := range child.DeletedDataMap {
		delete(ctd.DataMap, key)
		ctd.DeletedDataMap[key] = true
	}
}

type sortedItem struct {
	key   string
	value []byte
}

func (a *sortedItem) Less(item btree.Item, ctx interface{}) bool {
	return a.key < item.(*sortedItem).key
}

// EachData iterates the changed data in key order
func (ctd *ContextData) EachData(fn func(key string, value []byte) bool) {
	tr := btree.New(32, nil)
	for k, v := range ctd.DataMap {
		tr.ReplaceOrInsert(&sortedItem{key: k, value: v})
	}
	tr.Ascend(func(item btree.Item) bool {
		it := item.(*sortedItem)
		return fn(it.key, it.value)
	})
}

// EachDeleted iterates the deleted keys in key order
func (ctd *ContextData) EachDeleted(fn func(key string) bool) {
	tr := btree.New(32, nil)
	for k := range ctd.DeletedDataMap {
		tr.ReplaceOrInsert(&sortedItem{key: k})
	}
	tr.Ascend(func(item btree.Item) bool {
		return fn(item.(*sortedItem).key)
	})
}

// EachContractDefine iterates the deployed contracts in address order
func (ctd *ContextData) EachContractDefine(fn func(cd *ContractDefine) bool) {
	tr := btree.New(32, nil)
	for addr, cd := range ctd.ContractDefineMap {
		var buffer bytes.Buffer
		cd.WriteTo(&buffer)
		tr.ReplaceOrInsert(&sortedItem{key: string(addr[:]), value: buffer.Bytes()})
	}
	tr.Ascend(func(item btree.Item) bool {
		var addr common.Address
		copy(addr[:], item.(*sortedItem).key)
		return fn(ctd.ContractDefineMap[addr])
	})
}

// Hash returns the hash value of the changes
func (ctd *ContextData) Hash() hash.Hash256 {
	var buffer bytes.Buffer
	buffer.WriteString("MainToken")
	if ctd.mainToken != nil {
		buffer.Write((*ctd.mainToken)[:])
	}
	buffer.WriteString("ContractDefineMap")
	ctd.EachContractDefine(func(cd *ContractDefine) bool {
		cd.WriteTo(&buffer)
		return true
	})
	buffer.WriteString("DataMap")
	ctd.EachData(func(key string, value []byte) bool {
		bin.WriteString(&buffer, key)
		bin.WriteBytes(&buffer, value)
		return true
	})
	buffer.WriteString("DeletedDataMap")
	ctd.EachDeleted(func(key string) bool {
		bin.WriteString(&buffer, key)
		return true
	})
	return hash.Hash(buffer.Bytes())
}

// Dump returns a readable listing of the changes
func (ctd *ContextData) Dump() string {
	var buffer bytes.Buffer
	buffer.WriteString("MainToken\n")
	if ctd.mainToken != nil {
		buffer.WriteString(ctd.mainToken.String())
		buffer.WriteString("\n")
	}
	buffer.WriteString("ContractDefineMap\n")
	ctd.EachContractDefine(func(cd *ContractDefine) bool {
		buffer.WriteString(cd.Address.String())
		buffer.WriteString(":")
		buffer.WriteString(ContractName(cd.ClassID))
		buffer.WriteString(":")
		buffer.WriteString(strconv.FormatUint(cd.ClassID, 10))
		buffer.WriteString("\n")
		return true
	})
	buffer.WriteString("DataMap\n")
	ctd.EachData(func(key string, value []byte) bool {
		buffer.WriteString(hex.EncodeToString([]byte(key)))
		buffer.WriteString(":")
		buffer.WriteString(hex.EncodeToString(value))
		buffer.WriteString("\n")
		return true
	})
	buffer.WriteString("DeletedDataMap\n")
	ctd.EachDeleted(func(key string) bool {
		buffer.WriteString(hex.EncodeToString([]byte(key)))
		buffer.WriteString("\n")
		return true
	})
	return buffer.String()
}
