package types

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	"github.com/meverselabs/defizap/common/hash"
	"github.com/pkg/errors"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

type IInteractor interface {
	Distroy()
	Exec(Cc *ContractContext, Addr common.Address, MethodName string, Args []interface{}) ([]interface{}, error)
	EventList() []*Event
}

type ExecFunc = func(Cc *ContractContext, Addr common.Address, MethodName string, Args []interface{}) ([]interface{}, error)

type interactor struct {
	ctx       *Context
	cont      Contract
	conMap    map[common.Address]Contract
	exit      bool
	index     uint16
	eventList []*Event
	saveEvent bool
}

var (
	bigIntType  = reflect.TypeOf(&big.Int{})
	amountType  = reflect.TypeOf(&amount.Amount{})
	addressType = reflect.TypeOf(common.Address{})
	hashType    = reflect.TypeOf(hash.Hash256{})
	bytesType   = reflect.TypeOf([]byte{})
)

// NewInteractor returns the interactor that dispatches calls starting from the contract
func NewInteractor(ctx *Context, cont Contract, cc *ContractContext, index uint16, saveEvent bool) IInteractor {
	return &interactor{
		ctx:       ctx,
		cont:      cont,
		conMap:    map[common.Address]Contract{},
		index:     index,
		eventList: []*Event{},
		saveEvent: saveEvent,
	}
}

func (i *interactor) Distroy() {
	i.exit = true
}

func (i *interactor) Exec(Cc *ContractContext, ContAddr common.Address, MethodName string, Args []interface{}) (result []interface{}, err error) {
	if i.exit {
		return nil, errors.WithStack(ErrInteractorExpired)
	}
	if MethodName == "" {
		return nil, errors.WithStack(ErrMethodNotGiven)
	}
	cont, err := i.getContract(ContAddr)
	if err != nil {
		return nil, err
	}
	MethodName = strings.ToUpper(MethodName[:1]) + MethodName[1:]
	ecc := i.currentContractContext(Cc, ContAddr)

	if i.saveEvent {
		mc := &MethodCallEvent{
			From:   ecc.From(),
			To:     ContAddr,
			Method: MethodName,
			Args:   Args,
		}
		i.eventList = append(i.eventList, &Event{
			Index: i.index,
			Type:  EventTagCallHistory,
			Call:  mc,
		})
		defer func() {
			if err != nil {
				mc.Error = err.Error()
			} else {
				mc.Result = result
			}
		}()
	}
	return _exec(ecc, cont, MethodName, Args)
}

func _exec(ecc *ContractContext, cont Contract, MethodName string, Args []interface{}) (result []interface{}, err error) {
	ContAddr := cont.Address()
	rMethod, err := contractMethod(cont.Front(), ContAddr, MethodName)
	if err != nil {
		return nil, err
	}

	in, err := ContractInputsConv(Args, rMethod)
	if err != nil {
		return nil, err
	}
	in = append([]reflect.Value{reflect.ValueOf(ecc)}, in...)

	sn := ecc.ctx.Snapshot()
	vs, err := func() (vs []reflect.Value, err error) {
		defer func() {
			if v := recover(); v != nil {
				err = errors.Errorf("occur error call method(%v) of contract(%v) message: %v", MethodName, ContAddr.String(), v)
			}
		}()
		return rMethod.Call(in), nil
	}()
	if err != nil {
		ecc.ctx.Revert(sn)
		return nil, err
	}

	result, err = getResults(rMethod.Type(), vs)
	if err != nil {
		ecc.ctx.Revert(sn)
		return nil, err
	}
	ecc.ctx.Commit(sn)
	return result, nil
}

// ContractInputsConv converts the arguments to the parameter types of the method
func ContractInputsConv(Args []interface{}, rMethod reflect.Value) ([]reflect.Value, error) {
	mt := rMethod.Type()
	if mt.NumIn() < 1 {
		return nil, errors.WithStack(ErrMethodNotExist)
	}
	if mt.NumIn() != len(Args)+1 {
		return nil, errors.Errorf("invalid inputs count got %v want %v", len(Args), mt.NumIn()-1)
	}
	in := make([]reflect.Value, len(Args))
	for i, v := range Args {
		mType := mt.In(i + 1)
		param, err := convertParam(v, mType)
		if err != nil {
			return nil, errors.Wrapf(err, "input(%v)", i)
		}
		in[i] = param
	}
	return in, nil
}

func convertParam(v interface{}, mType reflect.Type) (reflect.Value, error) {
	if v == nil {
		switch mType.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Interface, reflect.Map:
			return reflect.Zero(mType), nil
		}
		return reflect.Value{}, errors.Errorf("nil given want %v", mType)
	}
	param := reflect.ValueOf(v)
	if param.Type() == mType {
		return param, nil
	}
	if mType.Kind() == reflect.Interface && param.Type().Implements(mType) {
		return param, nil
	}

	switch pv := v.(type) {
	case *big.Int:
		if rv, ok := fromBigInt(pv, mType); ok {
			return rv, nil
		}
	case *amount.Amount:
		if rv, ok := fromBigInt(pv.Int, mType); ok {
			return rv, nil
		}
		if mType.Kind() == reflect.String {
			return reflect.ValueOf(pv.Int.String()), nil
		}
	case int, int64, uint32, uint64:
		bi, _ := new(big.Int).SetString(fmt.Sprint(pv), 10)
		if rv, ok := fromBigInt(bi, mType); ok {
			return rv, nil
		}
	case float64:
		if pv == float64(int64(pv)) && mType != amountType {
			if rv, ok := fromBigInt(big.NewInt(int64(pv)), mType); ok {
				return rv, nil
			}
		}
	case string:
		if rv, ok := fromString(pv, mType); ok {
			return rv, nil
		}
	case []byte:
		switch mType {
		case hashType:
			h := hash.Hash256{}
			copy(h[:], pv)
			return reflect.ValueOf(h), nil
		case addressType:
			return reflect.ValueOf(common.BytesToAddress(pv)), nil
		case amountType:
			return reflect.ValueOf(amount.NewAmountFromBytes(pv)), nil
		case bigIntType:
			return reflect.ValueOf(big.NewInt(0).SetBytes(pv)), nil
		}
	case []interface{}:
		if mType.Kind() == reflect.Slice {
			out := reflect.MakeSlice(mType, 0, len(pv))
			for _, e := range pv {
				ev, err := convertParam(e, mType.Elem())
				if err != nil {
					return reflect.Value{}, err
				}
				out = reflect.Append(out, ev)
			}
			return out, nil
		}
	}
	return reflect.Value{}, errors.Errorf("invalid input type get %v want %v value %v", param.Type(), mType, v)
}

func fromBigInt(bi *big.Int, mType reflect.Type) (reflect.Value, bool) {
	switch mType {
	case amountType:
		return reflect.ValueOf(amount.NewAmountFromBig(bi)), true
	case bigIntType:
		return reflect.ValueOf(new(big.Int).Set(bi)), true
	case addressType:
		return reflect.ValueOf(common.BigToAddress(bi)), true
	case hashType:
		return reflect.ValueOf(hash.BigToHash(bi)), true
	}
	switch mType.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if !bi.IsInt64() {
			return reflect.Value{}, false
		}
		rv := reflect.New(mType).Elem()
		rv.SetInt(bi.Int64())
		return rv, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if !bi.IsUint64() {
			return reflect.Value{}, false
		}
		rv := reflect.New(mType).Elem()
		rv.SetUint(bi.Uint64())
		return rv, true
	case reflect.String:
		return reflect.ValueOf(bi.String()), true
	}
	return reflect.Value{}, false
}

func fromString(pv string, mType reflect.Type) (reflect.Value, bool) {
	switch mType {
	case addressType:
		if !common.IsHexAddress(pv) {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(common.HexToAddress(pv)), true
	case hashType:
		return reflect.ValueOf(hash.HexToHash(pv)), true
	case amountType:
		if strings.HasPrefix(pv, "0x") {
			bi, ok := new(big.Int).SetString(pv[2:], 16)
			if !ok {
				return reflect.Value{}, false
			}
			return reflect.ValueOf(amount.NewAmountFromBig(bi)), true
		}
		am, err := amount.ParseAmount(pv)
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(am), true
	case bytesType:
		bs, err := hex.DecodeString(strings.TrimPrefix(pv, "0x"))
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(bs), true
	}
	if mType.Kind() == reflect.Bool {
		b, err := strconv.ParseBool(pv)
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(b), true
	}
	bi, ok := big.NewInt(0).SetString(pv, 10)
	if !ok && strings.HasPrefix(pv, "0x") {
		bi, ok = big.NewInt(0).SetString(pv[2:], 16)
	}
	if !ok {
		return reflect.Value{}, false
	}
	if mType.Kind() == reflect.String {
		return reflect.Value{}, false
	}
	return fromBigInt(bi, mType)
}

func (i *interactor) EventList() []*Event {
	return i.eventList
}

func getResults(mType reflect.Type, vs []reflect.Value) (result []interface{}, err error) {
	result = []interface{}{}
	for i, v := range vs {
		if mType.Out(i).Kind() == reflect.Interface && mType.Out(i).Implements(errType) {
			if !v.IsNil() {
				err = v.Interface().(error)
			}
			continue
		}
		result = append(result, v.Interface())
	}
	return
}

func (i *interactor) getContract(Addr common.Address) (Contract, error) {
	if cont, ok := i.conMap[Addr]; ok {
		return cont, nil
	}
	cont, err := i.ctx.Contract(Addr)
	if err != nil {
		return nil, err
	}
	i.conMap[Addr] = cont
	return cont, nil
}

func contractMethod(cont interface{}, addr common.Address, MethodName string) (reflect.Value, error) {
	vo := reflect.ValueOf(cont)
	if !vo.IsValid() {
		return reflect.Value{}, errors.New("wrong contract")
	}
	if vo.Kind() == reflect.Ptr && vo.IsNil() {
		return reflect.Value{}, errors.New("nil contract")
	}
	method := vo.MethodByName(MethodName)
	if !method.IsValid() {
		return reflect.Value{}, errors.Wrapf(ErrMethodNotExist, "%v of contract %v", MethodName, addr.String())
	}
	return method, nil
}

func (i *interactor) currentContractContext(Cc *ContractContext, Addr common.Address) *ContractContext {
	if i.cont != nil && i.cont.Address() == Addr && Cc.cont == Addr {
		return Cc
	}
	return &ContractContext{
		cont: Addr,
		from: Cc.cont,
		ctx:  Cc.ctx,
		Exec: i.Exec,
	}
}
