package main

import (
	"github.com/spf13/cobra"
)

func zapCommands(hostURL *string) []*cobra.Command {
	return []*cobra.Command{
		rpcCommand(hostURL, "params", "show the zap configuration", "zap.params", 0),
		rpcCommand(hostURL, "owner [address]", "check the address owns the zap", "zap.isOwner", 1),
		rpcCommand(hostURL, "quote [from] [to] [amount]", "quote the amount of to received for amount of from", "zap.getReturn", 3),
		rpcCommand(hostURL, "max [exchange] [token] [value]", "upper bound of tokens bought with value", "zap.getMaxTokens", 3),
		rpcCommand(hostURL, "invest [from] [amount]", "swap amount of the native coin into cDAI", "zap.invest", 2),
		rpcCommand(hostURL, "redeem [from] [account] [amount]", "redeem cDAI held by the zap for the account", "zap.redeem", 3),
	}
}

func chainCommands(hostURL *string) []*cobra.Command {
	return []*cobra.Command{
		rpcCommand(hostURL, "balance [token] [owner]", "show the token balance", "token.balanceOf", 2),
		rpcCommand(hostURL, "faucet [to] [amount]", "send the native coin from the devnet admin", "chain.faucet", 2),
		rpcCommand(hostURL, "addresses", "show the deployed contracts", "chain.addresses", 0),
		rpcCommand(hostURL, "height", "show the stored height", "chain.height", 0),
	}
}

func searchCommands(hostURL *string) []*cobra.Command {
	return []*cobra.Command{
		rpcCommand(hostURL, "tx [height|hash]", "show the transaction at the height or with the hash", "search.tx", 1),
		rpcCommand(hostURL, "txs [page]", "list the transactions, newest first", "search.txs", 1),
		rpcCommand(hostURL, "address [address] [page]", "list the transactions of the address", "search.addressTxs", 2),
		rpcCommand(hostURL, "fails [page]", "list the failed transactions", "search.fails", 1),
	}
}
