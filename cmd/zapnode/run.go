package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meverselabs/defizap/cmd/closer"
	"github.com/meverselabs/defizap/cmd/config"
	"github.com/meverselabs/defizap/core/store"
	"github.com/meverselabs/defizap/node"
	"github.com/meverselabs/defizap/service/apiserver"
	"github.com/meverselabs/defizap/service/txsearch"
	"github.com/meverselabs/defizap/service/zapapi"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type closeFunc func()

func (fn closeFunc) Close() {
	fn()
}

func loadConfig(path string) (*config.Config, error) {
	cfg := config.Default()
	if len(path) == 0 {
		if err := config.LoadEnv(".env"); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err := config.LoadFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openNode(cfg *config.Config, logger *zap.Logger) (*node.Node, error) {
	nc, err := cfg.NodeConfig()
	if err != nil {
		return nil, err
	}
	st, err := store.Open(cfg.DataDir, nc.ChainID, nc.Version)
	if err != nil {
		return nil, err
	}
	nd, err := node.NewNode(nc, st, logger)
	if err != nil {
		st.Close()
		return nil, err
	}
	if err := nd.Genesis(); err != nil {
		nd.Close()
		return nil, err
	}
	return nd, nil
}

func runCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "run the node and serve json rpc",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			logger, err := cfg.Logger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			nd, err := openNode(cfg, logger)
			if err != nil {
				return err
			}

			cm := closer.NewManager(logger)
			cm.Add("node", nd)

			api := apiserver.NewAPIServer(logger)
			if err := zapapi.NewZapAPI(nd, logger).Register(api); err != nil {
				cm.CloseAll()
				return err
			}
			// empty search_dir disables the history index
			if len(cfg.SearchDir) > 0 {
				ts, err := txsearch.NewTxSearch(cfg.SearchDir, logger)
				if err != nil {
					cm.CloseAll()
					return err
				}
				cm.Add("txsearch", ts)
				nd.AddListener(ts)
				if err := ts.SetupApi(api); err != nil {
					cm.CloseAll()
					return err
				}
			}
			cm.Add("apiserver", closeFunc(func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := api.Shutdown(ctx); err != nil {
					logger.Warn("apiserver shutdown", zap.Error(err))
				}
			}))

			sigc := make(chan os.Signal, 1)
			signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				sig := <-sigc
				logger.Info("signal received", zap.String("signal", sig.String()))
				cm.CloseAll()
			}()

			go func() {
				if err := api.Run(cfg.Bind); err != nil {
					logger.Error("apiserver stopped", zap.Error(err))
					cm.CloseAll()
				}
			}()
			cm.Wait()
			return nil
		},
	}
}

func dumpCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "print the deployed contracts of the stored state",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			nd, err := openNode(cfg, zap.NewNop())
			if err != nil {
				return err
			}
			defer nd.Close()

			out, err := nd.Dump()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "height", nd.Height())
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
