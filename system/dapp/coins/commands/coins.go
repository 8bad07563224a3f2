// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands coins 的命令行
package commands

import (
	"fmt"
	"os"

	"github.com/33cn/deershooter/common/crypto/secp256k1"
	cty "github.com/33cn/deershooter/system/dapp/coins/types"
	commandtypes "github.com/33cn/deershooter/system/dapp/commands/types"
	"github.com/33cn/deershooter/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// CoinsCmd coins command func
func CoinsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coins",
		Short: "Native coins and token operation",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		GenesisCmd(),
		TransferCmd(),
		BalanceCmd(),
	)
	return cmd
}

// GenesisCmd 执行创世区块
func GenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Mint the genesis coins (and optionally reward tokens) of the local chain",
		Run:   genesis,
	}
	cmd.Flags().StringP("token", "s", "", "token symbol minted together with the coins")
	cmd.Flags().StringP("token_amount", "a", "0", "token amount")
	cmd.Flags().StringP("token_to", "t", "", "token receiver, default genesis address")
	return cmd
}

func genesis(cmd *cobra.Command, args []string) {
	result, err := runGenesis(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	commandtypes.PrintJSON(result)
}

func runGenesis(cmd *cobra.Command) ([]*commandtypes.ReceiptResult, error) {
	cfg, _ := commandtypes.LoadConfig(cmd)
	priv, err := commandtypes.LoadPrivKey(cmd)
	if err != nil {
		return nil, err
	}
	payloads := []*cty.CoinsGenesis{{To: cfg.Exec.GenesisAddr, Amount: cfg.Exec.GenesisAmount}}
	symbol, _ := cmd.Flags().GetString("token")
	if symbol != "" {
		amount, _ := cmd.Flags().GetString("token_amount")
		to, _ := cmd.Flags().GetString("token_to")
		if to == "" {
			to = cfg.Exec.GenesisAddr
		}
		value, err := commandtypes.ParseCoins(amount)
		if err != nil {
			return nil, err
		}
		payloads = append(payloads, &cty.CoinsGenesis{To: to, Amount: types.FormatAmount(value), Symbol: symbol})
	}
	var txs []*types.Transaction
	for _, payload := range payloads {
		tx, err := types.CreateTx(cty.CoinsX, cty.ActionGenesis, payload)
		if err != nil {
			return nil, err
		}
		tx.Sign(secp256k1.ID, priv)
		txs = append(txs, tx)
	}
	exec, err := commandtypes.OpenExecutor(cmd)
	if err != nil {
		return nil, err
	}
	defer exec.Close()
	receipts, err := exec.Genesis(txs...)
	if err != nil {
		return nil, errors.Wrap(err, "genesis")
	}
	var result []*commandtypes.ReceiptResult
	for _, rd := range receipts {
		result = append(result, commandtypes.DecodeReceipt(rd))
	}
	return result, nil
}

// TransferCmd 转账
func TransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer coins or tokens",
		Run:   transfer,
	}
	cmd.Flags().StringP("to", "t", "", "receiver account address")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "a", "", "transaction amount, e.g. 1.5")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("symbol", "s", "", "token symbol, empty for native coins")
	cmd.Flags().StringP("note", "n", "", "transaction note")
	return cmd
}

func transfer(cmd *cobra.Command, args []string) {
	to, _ := cmd.Flags().GetString("to")
	amount, _ := cmd.Flags().GetString("amount")
	symbol, _ := cmd.Flags().GetString("symbol")
	note, _ := cmd.Flags().GetString("note")
	value, err := commandtypes.ParseCoins(amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	params := &cty.CoinsTransfer{
		To:     to,
		Amount: types.FormatAmount(value),
		Symbol: symbol,
		Note:   note,
	}
	ctx := commandtypes.NewLocalCtx(cmd, cty.CoinsX, cty.ActionTransfer, params)
	ctx.Send()
}

// BalanceCmd 查询余额
func BalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get balance of an address",
		Run:   balance,
	}
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("symbol", "s", "", "token symbol, empty for native coins")
	return cmd
}

func balance(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	symbol, _ := cmd.Flags().GetString("symbol")
	params := &cty.ReqBalance{Addr: addr, Symbol: symbol}
	ctx := commandtypes.NewLocalCtx(cmd, cty.CoinsX, "GetBalance", params)
	ctx.SetResultCb(parseBalance)
	ctx.Run()
}

func parseBalance(res interface{}) (interface{}, error) {
	reply := res.(*cty.ReplyBalance)
	raw, err := types.ParseAmount(reply.Balance)
	if err != nil {
		return nil, err
	}
	return &commandtypes.AccountResult{
		Addr:    reply.Addr,
		Symbol:  reply.Symbol,
		Balance: commandtypes.FormatCoins(raw),
		Raw:     reply.Balance,
	}, nil
}
