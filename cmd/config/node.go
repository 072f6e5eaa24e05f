package config

import (
	"math/big"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	"github.com/meverselabs/defizap/node"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Config is the configuration of the zap node
type Config struct {
	DataDir   string  `toml:"data_dir" yaml:"data_dir"`
	SearchDir string  `toml:"search_dir" yaml:"search_dir"`
	Bind      string  `toml:"bind" yaml:"bind"`
	ChainID   uint64  `toml:"chain_id" yaml:"chain_id"`
	LogMode   string  `toml:"log_mode" yaml:"log_mode"`
	Genesis   Genesis `toml:"genesis" yaml:"genesis"`
}

// Genesis is the devnet setup deployed on first start
type Genesis struct {
	Admin        string `toml:"admin" yaml:"admin"`
	CoinSupply   string `toml:"coin_supply" yaml:"coin_supply"`
	DaiSupply    string `toml:"dai_supply" yaml:"dai_supply"`
	SeedCoin     string `toml:"seed_coin" yaml:"seed_coin"`
	SeedDai      string `toml:"seed_dai" yaml:"seed_dai"`
	ExchangeRate string `toml:"exchange_rate" yaml:"exchange_rate"`
	Slippage     uint64 `toml:"slippage" yaml:"slippage"`
	FaucetLimit  string `toml:"faucet_limit" yaml:"faucet_limit"`
}

// Default returns the config of a local devnet
func Default() *Config {
	return &Config{
		DataDir:   "./zapdata",
		SearchDir: "./zapsearch",
		Bind:      ":48000",
		ChainID:   1337,
		LogMode:   "production",
	}
}

// NodeConfig returns the node config; empty fields keep the node defaults
func (cfg *Config) NodeConfig() (*node.Config, error) {
	nc := node.DefaultConfig()
	if cfg.ChainID != 0 {
		nc.ChainID = new(big.Int).SetUint64(cfg.ChainID)
	}
	g := cfg.Genesis
	if len(g.Admin) > 0 {
		if !common.IsHexAddress(g.Admin) {
			return nil, errors.Errorf("invalid admin address %v", g.Admin)
		}
		nc.Admin = common.HexToAddress(g.Admin)
	}
	for _, v := range []struct {
		name  string
		value string
		am    **amount.Amount
	}{
		{"coin_supply", g.CoinSupply, &nc.CoinSupply},
		{"dai_supply", g.DaiSupply, &nc.DaiSupply},
		{"seed_coin", g.SeedCoin, &nc.SeedCoin},
		{"seed_dai", g.SeedDai, &nc.SeedDai},
		{"exchange_rate", g.ExchangeRate, &nc.ExchangeRate},
		{"faucet_limit", g.FaucetLimit, &nc.FaucetLimit},
	} {
		if len(v.value) == 0 {
			continue
		}
		am, err := amount.ParseAmount(v.value)
		if err != nil {
			return nil, errors.Wrapf(err, "genesis.%v", v.name)
		}
		*v.am = am
	}
	if g.Slippage != 0 {
		nc.Slippage = g.Slippage
	}
	return nc, nil
}

// Logger returns the logger of the log mode
func (cfg *Config) Logger() (*zap.Logger, error) {
	switch cfg.LogMode {
	case "", "production":
		return zap.NewProduction()
	case "development":
		return zap.NewDevelopment()
	case "none":
		return zap.NewNop(), nil
	default:
		return nil, errors.Errorf("unknown log mode %v", cfg.LogMode)
	}
}
