// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"

	"github.com/33cn/deershooter/common"
	commandtypes "github.com/33cn/deershooter/system/dapp/commands/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// TxCmd transaction command
func TxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		QueryTxCmd(),
	)

	return cmd
}

// QueryTxCmd 按哈希查询回执
func QueryTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query transaction receipt by hash",
		Run:   queryTx,
	}
	cmd.Flags().StringP("hash", "s", "", "transaction hash")
	cmd.MarkFlagRequired("hash")
	return cmd
}

func queryTx(cmd *cobra.Command, args []string) {
	hash, _ := cmd.Flags().GetString("hash")
	bhash, err := common.FromHex(hash)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "decode hash"))
		return
	}
	exec, err := commandtypes.OpenExecutor(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer exec.Close()
	rd, err := exec.GetTxReceipt(bhash)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrapf(err, "tx %s", hash))
		return
	}
	commandtypes.PrintJSON(commandtypes.DecodeReceipt(rd))
}

// ChainCmd 区块头和状态
func ChainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Local chain information",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		LastHeaderCmd(),
		DumpStateCmd(),
	)
	return cmd
}

// LastHeaderCmd 最新区块头
func LastHeaderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "last_header",
		Short: "Get the last block header",
		Run:   lastHeader,
	}
	return cmd
}

func lastHeader(cmd *cobra.Command, args []string) {
	exec, err := commandtypes.OpenExecutor(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer exec.Close()
	header, err := exec.LastHeader()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	commandtypes.PrintJSON(&commandtypes.HeaderResult{
		Height:     header.Height,
		BlockTime:  header.BlockTime,
		ParentHash: common.ToHex(header.ParentHash),
		Hash:       common.ToHex(header.Hash),
		TxCount:    header.TxCount,
	})
}

// DumpStateCmd 按前缀列出状态
func DumpStateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump state key-values by prefix",
		Run:   dumpState,
	}
	cmd.Flags().StringP("prefix", "p", "mavl-", "key prefix")
	cmd.Flags().Int32P("count", "c", 100, "max count, 0 for all")
	return cmd
}

func dumpState(cmd *cobra.Command, args []string) {
	prefix, _ := cmd.Flags().GetString("prefix")
	count, _ := cmd.Flags().GetInt32("count")
	exec, err := commandtypes.OpenExecutor(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer exec.Close()
	keys, values := exec.ListState([]byte(prefix), count)
	result := make([]*commandtypes.KVResult, 0, len(keys))
	for i := range keys {
		result = append(result, &commandtypes.KVResult{Key: string(keys[i]), Value: common.ToHex(values[i])})
	}
	commandtypes.PrintJSON(result)
}
