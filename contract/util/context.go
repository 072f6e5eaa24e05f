package util

import (
	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	"github.com/meverselabs/defizap/core/types"
)

func GetCC(ctx *types.Context, contAddr common.Address, user common.Address) (*types.ContractContext, types.IInteractor, error) {
	cont, err := ctx.Contract(contAddr)
	if err != nil {
		return nil, nil, err
	}
	cc := ctx.ContractContext(cont, user)
	intr := types.NewInteractor(ctx, cont, cc, 0, false)
	cc.Exec = intr.Exec
	return cc, intr, nil
}

func Exec(ctx *types.Context, user common.Address, contAddr common.Address, methodName string, args []interface{}) ([]interface{}, error) {
	cc, intr, err := GetCC(ctx, contAddr, user)
	if err != nil {
		return nil, err
	}
	defer intr.Distroy()
	return cc.Exec(cc, contAddr, methodName, args)
}

func ViewAmount(ctx *types.Context, contAddr common.Address, methodName string, args ...interface{}) (*amount.Amount, error) {
	is, err := Exec(ctx, ZeroAddress, contAddr, methodName, args)
	if err != nil {
		return nil, err
	}
	return is[0].(*amount.Amount), nil
}

func ViewAddress(ctx *types.Context, contAddr common.Address, methodName string, args ...interface{}) (common.Address, error) {
	is, err := Exec(ctx, ZeroAddress, contAddr, methodName, args)
	if err != nil {
		return ZeroAddress, err
	}
	return is[0].(common.Address), nil
}

// BalanceOf returns the token balance of the user read from the context
func BalanceOf(ctx *types.Context, token common.Address, user common.Address) (*amount.Amount, error) {
	return ViewAmount(ctx, token, "BalanceOf", user)
}
