package node

import (
	"github.com/meverselabs/defizap/contract/exchange/factory"
	"github.com/meverselabs/defizap/contract/exchange/trade"
	"github.com/meverselabs/defizap/contract/lending"
	"github.com/meverselabs/defizap/contract/token"
	"github.com/meverselabs/defizap/contract/zap"
	"github.com/meverselabs/defizap/core/types"
)

// ClassMap is the class id of every contract the node deploys
type ClassMap struct {
	Token    uint64
	Exchange uint64
	Factory  uint64
	CToken   uint64
	Zap      uint64
}

// RegisterContracts registers the contract types and returns their class ids
func RegisterContracts() (*ClassMap, error) {
	cm := &ClassMap{}
	for _, v := range []struct {
		cont types.Contract
		id   *uint64
	}{
		{&token.TokenContract{}, &cm.Token},
		{&trade.Exchange{}, &cm.Exchange},
		{&factory.FactoryContract{}, &cm.Factory},
		{&lending.CTokenContract{}, &cm.CToken},
		{&zap.ZapContract{}, &cm.Zap},
	} {
		id, err := types.RegisterContractType(v.cont)
		if err != nil {
			return nil, err
		}
		*v.id = id
	}
	return cm, nil
}
