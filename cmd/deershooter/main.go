// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// deershooter 本地单节点链的命令行：签名并执行交易，查询状态
package main

import (
	"fmt"
	"os"

	"github.com/33cn/deershooter/common/log"
	"github.com/33cn/deershooter/metrics"
	_ "github.com/33cn/deershooter/plugin"
	"github.com/33cn/deershooter/pluginmgr"
	_ "github.com/33cn/deershooter/system"
	"github.com/33cn/deershooter/system/dapp/commands"
	commandtypes "github.com/33cn/deershooter/system/dapp/commands/types"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "deershooter",
	Short: "deershooter local chain tools",
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		dump, _ := cmd.Flags().GetBool(commandtypes.FlagMetrics)
		if dump {
			metrics.WriteOnce(os.Stdout)
		}
	},
}

func init() {
	commandtypes.AddCommonFlags(rootCmd)
	rootCmd.AddCommand(
		commands.AccountCmd(),
		commands.TxCmd(),
		commands.ChainCmd(),
	)
	pluginmgr.AddCmd(rootCmd)
}

func main() {
	log.SetLogLevel("error")
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
