package node

import (
	"io"
	"time"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	"github.com/meverselabs/defizap/common/bin"
	"github.com/meverselabs/defizap/contract/exchange/factory"
	"github.com/meverselabs/defizap/contract/exchange/trade"
	"github.com/meverselabs/defizap/contract/lending"
	"github.com/meverselabs/defizap/contract/token"
	"github.com/meverselabs/defizap/contract/util"
	zapcontract "github.com/meverselabs/defizap/contract/zap"
	"github.com/meverselabs/defizap/core/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Genesis deploys the devnet contracts and stores them as height 0
// When the store already holds a genesis, the address book is loaded instead
func (nd *Node) Genesis() error {
	nd.Lock()
	defer nd.Unlock()

	if _, err := nd.st.Hash(0); err == nil {
		book, err := nd.loadAddressBook()
		if err != nil {
			return err
		}
		nd.book = book
		nd.logger.Info("state loaded",
			zap.Uint32("height", nd.st.Height()),
			zap.String("zap", book.Zap.String()),
		)
		return nil
	}

	ctx := types.NewContext(nd.st)
	book, err := nd.deployGenesis(ctx)
	if err != nil {
		return errors.Wrap(err, "genesis")
	}
	bs, _, err := bin.WriterToBytes(book)
	if err != nil {
		return err
	}
	ctx.SetData(common.ZeroAddr, common.ZeroAddr, addressBookKey, bs)
	if err := nd.st.StoreGenesis(ctx, uint64(time.Now().UnixNano())); err != nil {
		return err
	}
	nd.book = book
	nd.logger.Info("genesis stored",
		zap.String("hash", ctx.Hash().String()),
		zap.String("coin", book.Coin.String()),
		zap.String("dai", book.Dai.String()),
		zap.String("factory", book.Factory.String()),
		zap.String("exchange", book.Exchange.String()),
		zap.String("ctoken", book.CToken.String()),
		zap.String("zap", book.Zap.String()),
	)
	return nil
}

func (nd *Node) deployGenesis(ctx *types.Context) (*AddressBook, error) {
	cfg := nd.cfg
	cm := nd.classMap
	admin := cfg.Admin
	book := &AddressBook{}

	coin, err := deploy(ctx, admin, cm.Token, common.ZeroAddr, &token.TokenContractConstruction{
		Name:   "Ether",
		Symbol: "ETH",
		InitialSupplyMap: map[common.Address]*amount.Amount{
			admin: cfg.CoinSupply,
		},
	})
	if err != nil {
		return nil, err
	}
	ctx.SetMainToken(coin)
	book.Coin = coin

	book.Dai, err = deploy(ctx, admin, cm.Token, zapcontract.NewDaiTokenAddress, &token.TokenContractConstruction{
		Name:   "Dai Stablecoin",
		Symbol: "DAI",
		InitialSupplyMap: map[common.Address]*amount.Amount{
			admin: cfg.DaiSupply,
		},
	})
	if err != nil {
		return nil, err
	}

	book.Factory, err = deploy(ctx, admin, cm.Factory, common.ZeroAddr, &factory.FactoryContractConstruction{
		Owner:           admin,
		ExchangeClassID: cm.Exchange,
		Fee:             trade.DEFAULT_FEE,
	})
	if err != nil {
		return nil, err
	}

	is, err := util.Exec(ctx, admin, book.Factory, "CreateExchange", []interface{}{book.Dai})
	if err != nil {
		return nil, err
	}
	book.Exchange = is[0].(common.Address)
	if cfg.SeedCoin != nil && cfg.SeedCoin.IsPlus() {
		for _, tk := range []common.Address{book.Coin, book.Dai} {
			if _, err := util.Exec(ctx, admin, tk, "Approve", []interface{}{book.Exchange, util.MaxUint256}); err != nil {
				return nil, err
			}
		}
		if _, err := util.Exec(ctx, admin, book.Exchange, "AddLiquidity", []interface{}{util.ZeroAmount, cfg.SeedDai, cfg.SeedCoin}); err != nil {
			return nil, err
		}
	}

	book.CToken, err = deploy(ctx, admin, cm.CToken, zapcontract.CompoundTokenAddress, &lending.CTokenContractConstruction{
		Name:         "Compound Dai",
		Symbol:       "cDAI",
		Underlying:   book.Dai,
		Owner:        admin,
		ExchangeRate: cfg.ExchangeRate,
	})
	if err != nil {
		return nil, err
	}

	book.Zap, err = deploy(ctx, admin, cm.Zap, common.ZeroAddr, &zapcontract.ZapContractConstruction{
		Factory:  book.Factory,
		NewDai:   book.Dai,
		Dai:      book.Dai,
		CToken:   book.CToken,
		Slippage: cfg.Slippage,
	})
	if err != nil {
		return nil, err
	}
	if _, err := util.Exec(ctx, admin, book.Zap, "Initialize", nil); err != nil {
		return nil, err
	}
	return book, nil
}

func deploy(ctx *types.Context, owner common.Address, classID uint64, addr common.Address, args io.WriterTo) (common.Address, error) {
	bs, _, err := bin.WriterToBytes(args)
	if err != nil {
		return common.Address{}, err
	}
	var cont types.Contract
	if addr == common.ZeroAddr {
		cont, err = ctx.DeployContract(owner, classID, bs)
	} else {
		cont, err = ctx.DeployContractWithAddress(owner, classID, addr, bs)
	}
	if err != nil {
		return common.Address{}, err
	}
	return cont.Address(), nil
}
