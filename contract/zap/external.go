package zap

import (
	"math/big"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	"github.com/meverselabs/defizap/core/types"

	. "github.com/meverselabs/defizap/contract/util"
)

func execAmount(cc *types.ContractContext, cont common.Address, method string, args ...interface{}) (*big.Int, error) {
	is, err := cc.Exec(cc, cont, method, args)
	if err != nil {
		return nil, err
	}
	return is[0].(*amount.Amount).Int, nil
}

// factory.GetExchange(token)
func factoryGetExchange(cc *types.ContractContext, factory, token common.Address) (common.Address, error) {
	is, err := cc.Exec(cc, factory, "GetExchange", []interface{}{token})
	if err != nil {
		return ZeroAddress, err
	}
	return is[0].(common.Address), nil
}

// exchange.GetEthToTokenInputPrice(ethSold)
func getEthToTokenInputPrice(cc *types.ContractContext, exchange common.Address, ethSold *big.Int) (*big.Int, error) {
	return execAmount(cc, exchange, "GetEthToTokenInputPrice", ToAmount(ethSold))
}

// exchange.GetTokenToEthInputPrice(tokensSold)
func getTokenToEthInputPrice(cc *types.ContractContext, exchange common.Address, tokensSold *big.Int) (*big.Int, error) {
	return execAmount(cc, exchange, "GetTokenToEthInputPrice", ToAmount(tokensSold))
}

// exchange.EthToTokenSwapInput(ethSold, minTokens)
func ethToTokenSwapInput(cc *types.ContractContext, exchange common.Address, ethSold, minTokens *big.Int) (*big.Int, error) {
	return execAmount(cc, exchange, "EthToTokenSwapInput", ToAmount(ethSold), ToAmount(minTokens))
}

// cToken.Mint(amount)
func cTokenMint(cc *types.ContractContext, cToken common.Address, am *big.Int) (*big.Int, error) {
	return execAmount(cc, cToken, "Mint", ToAmount(am))
}

// cToken.Redeem(cTokens)
func cTokenRedeem(cc *types.ContractContext, cToken common.Address, cTokens *big.Int) (*big.Int, error) {
	return execAmount(cc, cToken, "Redeem", ToAmount(cTokens))
}
