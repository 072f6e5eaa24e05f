package node

import (
	"math/big"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	"github.com/meverselabs/defizap/contract/lending"
)

// Config is the genesis setup of the devnet
type Config struct {
	ChainID      *big.Int
	Version      uint16
	Admin        common.Address
	CoinSupply   *amount.Amount
	DaiSupply    *amount.Amount
	SeedCoin     *amount.Amount
	SeedDai      *amount.Amount
	ExchangeRate *amount.Amount
	Slippage     uint64
	FaucetLimit  *amount.Amount
}

// DefaultConfig returns the config used when nothing is given
func DefaultConfig() *Config {
	return &Config{
		ChainID:      big.NewInt(1337),
		Version:      1,
		Admin:        common.HexToAddress("0x477C578843cBe53C3568736347f640c2cdA4616F"),
		CoinSupply:   amount.NewAmount(1000000, 0),
		DaiSupply:    amount.NewAmount(100000000, 0),
		SeedCoin:     amount.NewAmount(100, 0),
		SeedDai:      amount.NewAmount(200000, 0),
		ExchangeRate: lending.DefaultExchangeRate,
		Slippage:     50,
		FaucetLimit:  amount.NewAmount(100, 0),
	}
}
