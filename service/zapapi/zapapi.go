package zapapi

import (
	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	zapcontract "github.com/meverselabs/defizap/contract/zap"
	"github.com/meverselabs/defizap/node"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ZapAPI serves the zap and its collaborators through json rpc
type ZapAPI struct {
	nd     *node.Node
	logger *zap.Logger
}

// NewZapAPI returns a ZapAPI
func NewZapAPI(nd *node.Node, logger *zap.Logger) *ZapAPI {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapAPI{
		nd:     nd,
		logger: logger,
	}
}

// Params is the configuration the zap reports about itself
type Params struct {
	NewDaiToken   common.Address `json:"newDaiToken"`
	CompoundToken common.Address `json:"compoundToken"`
	DaiToken      common.Address `json:"daiToken"`
	EthToken      common.Address `json:"ethToken"`
	Factory       common.Address `json:"factory"`
	Owner         common.Address `json:"owner"`
	Slippage      uint64         `json:"slippage"`
	Stopped       bool           `json:"stopped"`
	Initialized   bool           `json:"initialized"`
}

// InvestResult is the outcome of an invest
type InvestResult struct {
	Height uint32         `json:"height"`
	Hash   string         `json:"hash"`
	Minted *amount.Amount `json:"minted"`
}

// RedeemResult is the outcome of a redeem
type RedeemResult struct {
	Height   uint32         `json:"height"`
	Hash     string         `json:"hash"`
	Released *amount.Amount `json:"released"`
}

func (z *ZapAPI) zapAddress() (common.Address, error) {
	book, err := z.nd.Addresses()
	if err != nil {
		return common.Address{}, err
	}
	return book.Zap, nil
}

func (z *ZapAPI) call(to common.Address, method string, args ...interface{}) (interface{}, error) {
	is, err := z.nd.Call(common.ZeroAddr, to, method, args)
	if err != nil {
		return nil, err
	}
	if len(is) == 0 {
		return nil, errors.Errorf("no result of %v", method)
	}
	return is[0], nil
}

// Params returns the zap configuration
func (z *ZapAPI) Params() (*Params, error) {
	zapAddr, err := z.zapAddress()
	if err != nil {
		return nil, err
	}
	p := &Params{}
	for _, v := range []struct {
		method string
		addr   *common.Address
	}{
		{"NEWDAI_TOKEN_ADDRESS", &p.NewDaiToken},
		{"COMPOUND_TOKEN_ADDRESS", &p.CompoundToken},
		{"DAI_TOKEN_ADDRESS", &p.DaiToken},
		{"ETH_TOKEN_ADDRESS", &p.EthToken},
		{"Factory", &p.Factory},
		{"Owner", &p.Owner},
	} {
		ret, err := z.call(zapAddr, v.method)
		if err != nil {
			return nil, err
		}
		*v.addr = ret.(common.Address)
	}
	ret, err := z.call(zapAddr, "Slippage")
	if err != nil {
		return nil, err
	}
	p.Slippage = ret.(uint64)
	if ret, err = z.call(zapAddr, "IsStopped"); err != nil {
		return nil, err
	}
	p.Stopped = ret.(bool)
	if ret, err = z.call(zapAddr, "IsInitialized"); err != nil {
		return nil, err
	}
	p.Initialized = ret.(bool)
	return p, nil
}

// IsOwner returns the address owns the zap or not
func (z *ZapAPI) IsOwner(from common.Address) (bool, error) {
	zapAddr, err := z.zapAddress()
	if err != nil {
		return false, err
	}
	is, err := z.nd.Call(from, zapAddr, "IsOwner", nil)
	if err != nil {
		return false, err
	}
	return is[0].(bool), nil
}

// GetReturn quotes the amount of to received for am of from
func (z *ZapAPI) GetReturn(from, to common.Address, am *amount.Amount) (*amount.Amount, error) {
	zapAddr, err := z.zapAddress()
	if err != nil {
		return nil, err
	}
	ret, err := z.call(zapAddr, "GetReturn", from, to, am)
	if err != nil {
		return nil, err
	}
	return ret.(*amount.Amount), nil
}

// GetMaxTokens returns the upper bound of tokens bought with value from the exchange
func (z *ZapAPI) GetMaxTokens(exchange, token common.Address, value *amount.Amount) (*amount.Amount, error) {
	zapAddr, err := z.zapAddress()
	if err != nil {
		return nil, err
	}
	ret, err := z.call(zapAddr, "GetMaxTokens", exchange, token, value)
	if err != nil {
		return nil, err
	}
	return ret.(*amount.Amount), nil
}

// Invest approves the zap and sends am of the native coin into it in one transaction
func (z *ZapAPI) Invest(from common.Address, am *amount.Amount) (*InvestResult, error) {
	book, err := z.nd.Addresses()
	if err != nil {
		return nil, err
	}
	receipt, err := z.nd.ExecuteBatch(from, []*node.Tx{
		{To: book.Coin, Method: "Approve", Args: []interface{}{book.Zap, am}},
		{To: book.Zap, Method: "Send", Args: []interface{}{am}},
	})
	if err != nil {
		return nil, err
	}
	z.logger.Info("invested",
		zap.String("from", from.String()),
		zap.String("amount", am.String()),
		zap.Uint32("height", receipt.Height),
	)
	return &InvestResult{
		Height: receipt.Height,
		Hash:   receipt.Hash.String(),
		Minted: receipt.Results[1][0].(*amount.Amount),
	}, nil
}

// Redeem redeems am cDAI held by the zap for the account
func (z *ZapAPI) Redeem(from, account common.Address, am *amount.Amount) (*RedeemResult, error) {
	zapAddr, err := z.zapAddress()
	if err != nil {
		return nil, err
	}
	receipt, err := z.nd.Execute(from, zapAddr, "Redeem", []interface{}{account, am})
	if err != nil {
		return nil, err
	}
	return &RedeemResult{
		Height:   receipt.Height,
		Hash:     receipt.Hash.String(),
		Released: receipt.Results[0][0].(*amount.Amount),
	}, nil
}

// BalanceOf returns the token balance of the owner
// The eth sentinel address reads the native coin
func (z *ZapAPI) BalanceOf(token, owner common.Address) (*amount.Amount, error) {
	if token == zapcontract.EthTokenAddress {
		book, err := z.nd.Addresses()
		if err != nil {
			return nil, err
		}
		token = book.Coin
	}
	ret, err := z.call(token, "BalanceOf", owner)
	if err != nil {
		return nil, err
	}
	return ret.(*amount.Amount), nil
}
