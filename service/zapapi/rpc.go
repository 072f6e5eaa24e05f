package zapapi

import (
	"github.com/meverselabs/defizap/service/apiserver"
)

// Register binds the zap, token and chain methods to the apiserver
func (z *ZapAPI) Register(api *apiserver.APIServer) error {
	zs, err := api.JRPC("zap")
	if err != nil {
		return err
	}
	zs.Set("params", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		return z.Params()
	})
	zs.Set("isOwner", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		from, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		return z.IsOwner(from)
	})
	zs.Set("getReturn", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		from, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		to, err := arg.Address(1)
		if err != nil {
			return nil, err
		}
		am, err := arg.Amount(2)
		if err != nil {
			return nil, err
		}
		return z.GetReturn(from, to, am)
	})
	zs.Set("getMaxTokens", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		exchange, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		token, err := arg.Address(1)
		if err != nil {
			return nil, err
		}
		value, err := arg.Amount(2)
		if err != nil {
			return nil, err
		}
		return z.GetMaxTokens(exchange, token, value)
	})
	zs.Set("invest", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		from, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		am, err := arg.Amount(1)
		if err != nil {
			return nil, err
		}
		return z.Invest(from, am)
	})
	zs.Set("redeem", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		from, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		account, err := arg.Address(1)
		if err != nil {
			return nil, err
		}
		am, err := arg.Amount(2)
		if err != nil {
			return nil, err
		}
		return z.Redeem(from, account, am)
	})

	ts, err := api.JRPC("token")
	if err != nil {
		return err
	}
	ts.Set("balanceOf", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		token, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		owner, err := arg.Address(1)
		if err != nil {
			return nil, err
		}
		return z.BalanceOf(token, owner)
	})

	cs, err := api.JRPC("chain")
	if err != nil {
		return err
	}
	cs.Set("height", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		return z.nd.Height(), nil
	})
	cs.Set("addresses", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		return z.nd.Addresses()
	})
	cs.Set("faucet", func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		to, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		am, err := arg.Amount(1)
		if err != nil {
			return nil, err
		}
		receipt, err := z.nd.Faucet(to, am)
		if err != nil {
			return nil, err
		}
		return receipt.Height, nil
	})
	return nil
}
