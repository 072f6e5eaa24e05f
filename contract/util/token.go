package util

import (
	"math/big"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	"github.com/meverselabs/defizap/core/types"
)

// token.TotalSupply()
func TokenTotalSupply(cc *types.ContractContext, token common.Address) (*big.Int, error) {
	is, err := cc.Exec(cc, token, "TotalSupply", []interface{}{})
	if err != nil {
		return nil, err
	}
	return is[0].(*amount.Amount).Int, nil
}

// token.BalanceOf(from)
func TokenBalanceOf(cc *types.ContractContext, token, from common.Address) (*big.Int, error) {
	is, err := cc.Exec(cc, token, "BalanceOf", []interface{}{from})
	if err != nil {
		return nil, err
	}
	return is[0].(*amount.Amount).Int, nil
}

// token.Allowance(owner, spender)
func TokenAllowance(cc *types.ContractContext, token, owner, spender common.Address) (*big.Int, error) {
	is, err := cc.Exec(cc, token, "Allowance", []interface{}{owner, spender})
	if err != nil {
		return nil, err
	}
	return is[0].(*amount.Amount).Int, nil
}

// token.Transfer(to,Amount)
func SafeTransfer(cc *types.ContractContext, token, to common.Address, am *big.Int) error {
	_, err := cc.Exec(cc, token, "Transfer", []interface{}{to, ToAmount(am)})
	return err
}

// token.TansferFrom(from, to, Amount)
func SafeTransferFrom(cc *types.ContractContext, token, from, to common.Address, am *big.Int) error {
	_, err := cc.Exec(cc, token, "TransferFrom", []interface{}{from, to, ToAmount(am)})
	return err
}

// token.Approve(to,Amount)
func TokenApprove(cc *types.ContractContext, token, to common.Address, am *big.Int) error {
	_, err := cc.Exec(cc, token, "Approve", []interface{}{to, ToAmount(am)})
	return err
}
